package models

import "time"

// Appointment links a patient to a doctor by display name. DoctorName is
// not a foreign key: two doctors with the same name share one schedule.
type Appointment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PatientID  uint64    `gorm:"not null;index" json:"patient_id"`
	DoctorName string    `gorm:"column:doctor_name;size:201;not null;index" json:"doctor"`
	Date       string    `gorm:"size:20;not null" json:"date"`
	Time       string    `gorm:"size:20;not null" json:"time"`
	CreatedAt  time.Time `json:"created_at"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Appointment) TableName() string { return "appointments" }

type BookAppointmentInput struct {
	Doctor string `json:"doctor" form:"doctor"`
	Date   string `json:"date" form:"date"`
	Time   string `json:"time" form:"time"`
}

// PatientAppointment is a row of a patient's own schedule.
type PatientAppointment struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// DoctorAppointment is a row of a doctor's schedule with patient details.
type DoctorAppointment struct {
	PatientID uint64 `json:"patient_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// BookingRecord is a row of the administrative appointment review.
type BookingRecord struct {
	PatientID uint64 `json:"patient_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Doctor    string `json:"doctor"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
