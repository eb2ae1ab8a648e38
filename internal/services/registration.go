package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// rule is one registration check; the first failing rule wins.
type rule struct {
	ok  bool
	msg string
}

func firstFailure(rules ...rule) error {
	for _, r := range rules {
		if !r.ok {
			return apperr.Validation(r.msg)
		}
	}
	return nil
}

func present(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

// Registration creates patient and doctor accounts. Uniqueness of the email
// is left to the store's unique index; the losing insert becomes a conflict.
type Registration struct {
	db       *gorm.DB
	sessions *SessionAuthority
	log      *zap.Logger
}

func NewRegistration(db *gorm.DB, sessions *SessionAuthority, log *zap.Logger) *Registration {
	return &Registration{db: db, sessions: sessions, log: log}
}

// RegisterPatient creates a patient account and logs it in, replacing the
// prior session. It returns the new account and its session token.
func (r *Registration) RegisterPatient(ctx context.Context, prior string, in models.RegisterPatientInput) (*models.Patient, string, error) {
	if err := firstFailure(
		rule{present(in.FirstName, in.LastName), "Please enter your first and last name"},
		rule{present(in.Email, in.Contact), "Please enter your email id and your contact info"},
		rule{present(in.Password, in.Confirmation), "Please enter a password and confirm it"},
	); err != nil {
		return nil, "", err
	}
	gender := in.Gender
	if gender == "" {
		gender = models.DefaultGender
	}
	if in.Password != in.Confirmation {
		return nil, "", apperr.Validation("Your passwords do not match")
	}

	hash, err := utils.HashPassword(in.Confirmation)
	if err != nil {
		return nil, "", apperr.Persistence("Oops! An error occurred!", err)
	}

	patient := &models.Patient{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Contact:      in.Contact,
		PasswordHash: hash,
		Gender:       gender,
	}
	if err := r.insert(ctx, patient, "This user already exists"); err != nil {
		return nil, "", err
	}

	token, _, err := r.sessions.Establish(ctx, prior, models.ClassPatient, patient.ID)
	if err != nil {
		// A failed registration leaves no account behind.
		if delErr := r.db.WithContext(ctx).Delete(patient).Error; delErr != nil {
			r.log.Error("failed to remove patient after session error", zap.Uint64("patient_id", patient.ID), zap.Error(delErr))
		}
		return nil, "", err
	}
	r.log.Info("patient registered", zap.Uint64("patient_id", patient.ID))
	return patient, token, nil
}

// RegisterDoctor creates a doctor account on behalf of an admin. The new
// doctor is not logged in.
func (r *Registration) RegisterDoctor(ctx context.Context, caller *models.Session, in models.RegisterDoctorInput) (*models.Doctor, error) {
	if caller == nil || caller.AccountClass != models.ClassAdmin {
		return nil, apperr.Unauthorized("login required")
	}

	if err := firstFailure(
		rule{present(in.FirstName, in.LastName), "Please enter your first and last name"},
		rule{present(in.Email), "Please enter your email id"},
		rule{present(in.Password, in.Confirmation), "Please enter a password and confirm it"},
		rule{in.Password == in.Confirmation, "Your passwords do not match"},
	); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Confirmation)
	if err != nil {
		return nil, apperr.Persistence("Oops! An error occurred!", err)
	}

	doctor := &models.Doctor{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := r.insert(ctx, doctor, "This email already exists"); err != nil {
		return nil, err
	}
	r.log.Info("doctor registered", zap.Uint64("doctor_id", doctor.ID), zap.Uint64("admin_id", caller.AccountID))
	return doctor, nil
}

func (r *Registration) insert(ctx context.Context, account interface{}, conflictMsg string) error {
	err := r.db.WithContext(ctx).Create(account).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		r.log.Info("registration conflict", zap.String("reason", conflictMsg))
		return apperr.Conflict(conflictMsg, err)
	default:
		r.log.Error("failed to create account", zap.Error(err))
		return apperr.Persistence("Oops! An error occurred!", err)
	}
}
