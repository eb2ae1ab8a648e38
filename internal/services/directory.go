package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
)

// Directory answers read-only account lookups. Lists come back in insertion
// order.
type Directory struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewDirectory(db *gorm.DB, log *zap.Logger) *Directory {
	return &Directory{db: db, log: log}
}

// DisplayName returns "First Last" for a patient or doctor. Admin accounts
// have no name and are reported as not found.
func (d *Directory) DisplayName(ctx context.Context, class models.AccountClass, id uint64) (string, error) {
	switch class {
	case models.ClassPatient:
		p, err := d.Patient(ctx, id)
		if err != nil {
			return "", err
		}
		return p.DisplayName(), nil
	case models.ClassDoctor:
		var doc models.Doctor
		if err := d.first(ctx, &doc, id, "doctor"); err != nil {
			return "", err
		}
		return doc.DisplayName(), nil
	}
	return "", apperr.NotFound(string(class))
}

// Patient loads one patient account.
func (d *Directory) Patient(ctx context.Context, id uint64) (*models.Patient, error) {
	var p models.Patient
	if err := d.first(ctx, &p, id, "patient"); err != nil {
		return nil, err
	}
	return &p, nil
}

// PatientsByID loads the given patients keyed by id. Unknown ids are simply
// absent from the result.
func (d *Directory) PatientsByID(ctx context.Context, ids []uint64) (map[uint64]models.Patient, error) {
	out := make(map[uint64]models.Patient, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var patients []models.Patient
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&patients).Error; err != nil {
		return nil, d.failed("patient lookup", err)
	}
	for _, p := range patients {
		out[p.ID] = p
	}
	return out, nil
}

// ListDoctorNames returns the display names offered when booking.
func (d *Directory) ListDoctorNames(ctx context.Context) ([]string, error) {
	doctors, err := d.ListAllDoctors(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doctors))
	for _, doc := range doctors {
		names = append(names, doc.DisplayName())
	}
	return names, nil
}

func (d *Directory) ListAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	if err := d.db.WithContext(ctx).Order("id asc").Find(&doctors).Error; err != nil {
		return nil, d.failed("doctor list", err)
	}
	return doctors, nil
}

func (d *Directory) ListAllPatients(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	if err := d.db.WithContext(ctx).Order("id asc").Find(&patients).Error; err != nil {
		return nil, d.failed("patient list", err)
	}
	return patients, nil
}

func (d *Directory) first(ctx context.Context, dest interface{}, id uint64, what string) error {
	err := d.db.WithContext(ctx).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what)
	}
	if err != nil {
		return d.failed(what+" lookup", err)
	}
	return nil
}

func (d *Directory) failed(op string, err error) error {
	d.log.Error(op+" failed", zap.Error(err))
	return apperr.Persistence("Oops! An error occurred!", err)
}
