package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-backend/internal/apperr"
	"clinic-backend/internal/models"
)

// Ledger records appointments. Rows are only ever inserted.
type Ledger struct {
	db        *gorm.DB
	directory *Directory
	log       *zap.Logger
}

func NewLedger(db *gorm.DB, directory *Directory, log *zap.Logger) *Ledger {
	return &Ledger{db: db, directory: directory, log: log}
}

// Book stores an appointment for patientID with the doctor named by display
// name. Any write failure, including an unknown patient, is reported as one
// opaque persistence error.
func (l *Ledger) Book(ctx context.Context, patientID uint64, in models.BookAppointmentInput) (uint64, error) {
	switch {
	case in.Doctor == "":
		return 0, apperr.Validation("Please choose a doctor!")
	case in.Date == "":
		return 0, apperr.Validation("Please choose a date!")
	case in.Time == "":
		return 0, apperr.Validation("Please choose a time!")
	}

	appt := models.Appointment{
		PatientID:  patientID,
		DoctorName: in.Doctor,
		Date:       in.Date,
		Time:       in.Time,
	}
	if err := l.db.WithContext(ctx).Create(&appt).Error; err != nil {
		l.log.Error("failed to book appointment", zap.Uint64("patient_id", patientID), zap.Error(err))
		return 0, apperr.Persistence("Oops! An error occurred!", err)
	}

	l.log.Info("appointment booked", zap.Uint64("appointment_id", appt.ID), zap.Uint64("patient_id", patientID))
	return appt.ID, nil
}

func (l *Ledger) ListForPatient(ctx context.Context, patientID uint64) ([]models.PatientAppointment, error) {
	appts, err := l.find(ctx, "patient_id = ?", patientID)
	if err != nil {
		return nil, err
	}
	rows := make([]models.PatientAppointment, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, models.PatientAppointment{Doctor: a.DoctorName, Date: a.Date, Time: a.Time})
	}
	return rows, nil
}

// ListForDoctor matches appointments on the doctor's display name and adds
// each patient's contact details. Rows whose patient no longer resolves are
// left out.
func (l *Ledger) ListForDoctor(ctx context.Context, doctorName string) ([]models.DoctorAppointment, error) {
	appts, err := l.find(ctx, "doctor_name = ?", doctorName)
	if err != nil {
		return nil, err
	}
	patients, err := l.directory.PatientsByID(ctx, patientIDs(appts))
	if err != nil {
		return nil, err
	}

	rows := []models.DoctorAppointment{}
	for _, a := range appts {
		p, ok := patients[a.PatientID]
		if !ok {
			continue
		}
		rows = append(rows, models.DoctorAppointment{
			PatientID: p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Contact:   p.Contact,
			Email:     p.Email,
			Date:      a.Date,
			Time:      a.Time,
		})
	}
	return rows, nil
}

// ListAll returns every appointment with the patient's name, email and
// contact. Rows whose patient no longer resolves are left out.
func (l *Ledger) ListAll(ctx context.Context) ([]models.BookingRecord, error) {
	appts, err := l.find(ctx, "")
	if err != nil {
		return nil, err
	}
	patients, err := l.directory.PatientsByID(ctx, patientIDs(appts))
	if err != nil {
		return nil, err
	}

	rows := []models.BookingRecord{}
	for _, a := range appts {
		p, ok := patients[a.PatientID]
		if !ok {
			continue
		}
		rows = append(rows, models.BookingRecord{
			PatientID: p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Contact:   p.Contact,
			Doctor:    a.DoctorName,
			Date:      a.Date,
			Time:      a.Time,
		})
	}
	return rows, nil
}

func (l *Ledger) find(ctx context.Context, where string, args ...interface{}) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := l.db.WithContext(ctx).Order("id asc")
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Find(&appts).Error; err != nil {
		return nil, l.failed("appointment list", err)
	}
	return appts, nil
}

func (l *Ledger) failed(op string, err error) error {
	l.log.Error(op+" failed", zap.Error(err))
	return apperr.Persistence("Oops! An error occurred!", err)
}

func patientIDs(appts []models.Appointment) []uint64 {
	seen := make(map[uint64]struct{}, len(appts))
	ids := make([]uint64, 0, len(appts))
	for _, a := range appts {
		if _, ok := seen[a.PatientID]; ok {
			continue
		}
		seen[a.PatientID] = struct{}{}
		ids = append(ids, a.PatientID)
	}
	return ids
}
