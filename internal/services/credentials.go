package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// CredentialStore verifies logins against the three account tables.
type CredentialStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCredentialStore(db *gorm.DB, log *zap.Logger) *CredentialStore {
	return &CredentialStore{db: db, log: log}
}

// Verify returns the id of the single account of class whose identifying
// field equals identifying and whose hash matches password.
func (s *CredentialStore) Verify(ctx context.Context, class models.AccountClass, identifying, password string) (uint64, error) {
	table := class.Table()
	if table == "" {
		return 0, apperr.AuthFailure()
	}

	var rows []models.Credential
	err := s.db.WithContext(ctx).
		Table(table).
		Select("id", "password_hash").
		Where(clause.Eq{Column: clause.Column{Name: class.IdentifyingColumn()}, Value: identifying}).
		Limit(2).
		Find(&rows).Error
	if err != nil {
		s.log.Error("credential lookup failed", zap.String("class", string(class)), zap.Error(err))
		return 0, apperr.Persistence("Oops! An error occurred!", err)
	}

	if len(rows) != 1 || !utils.CheckPassword(password, rows[0].PasswordHash) {
		s.log.Info("login rejected", zap.String("class", string(class)))
		return 0, apperr.AuthFailure()
	}
	return rows[0].ID, nil
}
