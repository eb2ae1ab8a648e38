package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// ConnectDB opens the configured database. Driver errors are translated so a
// uniqueness violation surfaces as gorm.ErrDuplicatedKey on every backend.
// gorm's own warnings and slow queries go through log.
func ConnectDB(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	gormLog, err := NewGormLogger(log)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// NewGormLogger routes gorm's log lines into log at warn level.
func NewGormLogger(log *zap.Logger) (logger.Interface, error) {
	std, err := zap.NewStdLogAt(log.Named("gorm"), zap.WarnLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(std, logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	}), nil
}

// Migrate creates or updates every table the clinic needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Admin{},
		&models.Appointment{},
		&models.Session{},
	)
}

// SeedAdmin makes sure the pre-provisioned admin exists. An existing account
// is left untouched.
func SeedAdmin(db *gorm.DB, log *zap.Logger, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	if err := db.Create(&models.Admin{Username: username, PasswordHash: hash}).Error; err != nil {
		return err
	}
	log.Info("provisioned admin account", zap.String("username", username))
	return nil
}
