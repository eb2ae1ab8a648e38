package models

import "time"

// DefaultGender is stored when a patient registers without a gender.
const DefaultGender = "N/A"

type Patient struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Contact      string    `gorm:"size:50;not null" json:"contact"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Gender       string    `gorm:"size:20;default:'N/A'" json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Patient) TableName() string { return "patients" }

// DisplayName is "First Last".
func (p Patient) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// RegisterPatientInput is the patient self-registration form.
type RegisterPatientInput struct {
	FirstName    string `json:"firstName" form:"firstName"`
	LastName     string `json:"lastName" form:"lastName"`
	Email        string `json:"email" form:"email"`
	Contact      string `json:"contact" form:"contact"`
	Password     string `json:"password" form:"password"`
	Confirmation string `json:"confirmation" form:"confirmation"`
	Gender       string `json:"gender" form:"gender"`
}
