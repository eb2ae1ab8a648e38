package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"
)

// unavailableStore refuses to save sessions.
type unavailableStore struct{}

func (unavailableStore) Save(context.Context, *models.Session) error {
	return errors.New("session store unavailable")
}

func (unavailableStore) Find(context.Context, string) (*models.Session, error) { return nil, nil }

func (unavailableStore) Delete(context.Context, string) error { return nil }

func johnDoe() models.RegisterPatientInput {
	return models.RegisterPatientInput{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		Contact:      "555-1234",
		Password:     "pw",
		Confirmation: "pw",
		Gender:       "Male",
	}
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	patient, token, err := f.registration.RegisterPatient(ctx, "", johnDoe())
	require.NoError(t, err)
	assert.NotZero(t, patient.ID)
	assert.Equal(t, "Male", patient.Gender)

	var stored models.Patient
	require.NoError(t, f.db.First(&stored, patient.ID).Error)
	assert.NotEqual(t, "pw", stored.PasswordHash)
	assert.True(t, utils.CheckPassword("pw", stored.PasswordHash))

	session, err := f.sessions.Current(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, session, "registration logs the patient in")
	assert.Equal(t, patient.ID, session.AccountID)
	assert.Equal(t, models.ClassPatient, session.AccountClass)
}

func TestRegisterPatient_GenderDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := johnDoe()
	in.Gender = ""
	patient, _, err := f.registration.RegisterPatient(ctx, "", in)
	require.NoError(t, err)

	var stored models.Patient
	require.NoError(t, f.db.First(&stored, patient.ID).Error)
	assert.Equal(t, "N/A", stored.Gender)
}

func TestRegisterPatient_ValidationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*models.RegisterPatientInput)
		msg    string
	}{
		{"missing last name", func(in *models.RegisterPatientInput) { in.LastName = "" }, "Please enter your first and last name"},
		{"names checked before email", func(in *models.RegisterPatientInput) { in.FirstName = ""; in.Email = "" }, "Please enter your first and last name"},
		{"missing contact", func(in *models.RegisterPatientInput) { in.Contact = "" }, "Please enter your email id and your contact info"},
		{"contact checked before password", func(in *models.RegisterPatientInput) { in.Contact = ""; in.Password = "" }, "Please enter your email id and your contact info"},
		{"missing confirmation", func(in *models.RegisterPatientInput) { in.Confirmation = "" }, "Please enter a password and confirm it"},
		{"mismatch", func(in *models.RegisterPatientInput) { in.Confirmation = "other" }, "Your passwords do not match"},
		{"mismatch without gender", func(in *models.RegisterPatientInput) { in.Gender = ""; in.Confirmation = "other" }, "Your passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := johnDoe()
			tt.mutate(&in)
			_, _, err := f.registration.RegisterPatient(ctx, "", in)
			assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
			assert.Equal(t, tt.msg, apperr.PublicMessage(err, ""))
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&models.Patient{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterPatient_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, _, err := f.registration.RegisterPatient(ctx, "", johnDoe())
	require.NoError(t, err)

	again := johnDoe()
	again.FirstName = "Johnny"
	_, token, err := f.registration.RegisterPatient(ctx, "", again)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, "This user already exists", apperr.PublicMessage(err, ""))
	assert.Empty(t, token)

	var count int64
	require.NoError(t, f.db.Model(&models.Patient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPatient_SessionFailureLeavesNoAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	broken := services.NewSessionAuthority(unavailableStore{}, utils.NewTokenSigner("test-secret"), time.Hour, zap.NewNop())
	registration := services.NewRegistration(f.db, broken, zap.NewNop())

	_, token, err := registration.RegisterPatient(ctx, "", johnDoe())
	assert.Equal(t, apperr.CodePersistence, apperr.CodeOf(err))
	assert.Empty(t, token)

	var count int64
	require.NoError(t, f.db.Model(&models.Patient{}).Count(&count).Error)
	assert.Zero(t, count)

	_, token, err = f.registration.RegisterPatient(ctx, "", johnDoe())
	require.NoError(t, err, "retry is not blocked by a leftover account")
	assert.NotEmpty(t, token)
}

func TestRegisterPatient_ConcurrentDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const racers = 4
	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.registration.RegisterPatient(ctx, "", johnDoe())
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.Is(err, apperr.CodeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, racers-1, conflicts)
}

func TestRegisterPatient_ReplacesPriorSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	prior, _, err := f.sessions.Establish(ctx, "", models.ClassDoctor, 1)
	require.NoError(t, err)

	_, _, err = f.registration.RegisterPatient(ctx, prior, johnDoe())
	require.NoError(t, err)

	old, err := f.sessions.Current(ctx, prior)
	require.NoError(t, err)
	assert.Nil(t, old)
}

func drHouse() models.RegisterDoctorInput {
	return models.RegisterDoctorInput{
		FirstName:    "Gregory",
		LastName:     "House",
		Email:        "house@clinic.test",
		Password:     "vicodin",
		Confirmation: "vicodin",
	}
}

func TestRegisterDoctor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.addAdmin(t, "root", "pw")

	doctor, err := f.registration.RegisterDoctor(ctx, adminSession(admin.ID), drHouse())
	require.NoError(t, err)
	assert.NotZero(t, doctor.ID)
	assert.True(t, utils.CheckPassword("vicodin", doctor.PasswordHash))
	assert.NotEqual(t, "vicodin", doctor.PasswordHash)

	var sessions int64
	require.NoError(t, f.db.Model(&models.Session{}).Count(&sessions).Error)
	assert.Zero(t, sessions, "the new doctor is not logged in")

	_, err = f.registration.RegisterDoctor(ctx, adminSession(admin.ID), drHouse())
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
	assert.Equal(t, "This email already exists", apperr.PublicMessage(err, ""))
}

func TestRegisterDoctor_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	callers := map[string]*models.Session{
		"no session":      nil,
		"patient session": {AccountID: 1, AccountClass: models.ClassPatient},
		"doctor session":  {AccountID: 1, AccountClass: models.ClassDoctor},
	}
	for name, caller := range callers {
		t.Run(name, func(t *testing.T) {
			_, err := f.registration.RegisterDoctor(ctx, caller, drHouse())
			assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(err))
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&models.Doctor{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterDoctor_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	caller := adminSession(1)

	tests := []struct {
		name   string
		mutate func(*models.RegisterDoctorInput)
		msg    string
	}{
		{"missing first name", func(in *models.RegisterDoctorInput) { in.FirstName = "" }, "Please enter your first and last name"},
		{"missing email", func(in *models.RegisterDoctorInput) { in.Email = "" }, "Please enter your email id"},
		{"missing password", func(in *models.RegisterDoctorInput) { in.Password = "" }, "Please enter a password and confirm it"},
		{"mismatch", func(in *models.RegisterDoctorInput) { in.Confirmation = "x" }, "Your passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := drHouse()
			tt.mutate(&in)
			_, err := f.registration.RegisterDoctor(ctx, caller, in)
			assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
			assert.Equal(t, tt.msg, apperr.PublicMessage(err, ""))
		})
	}
}
