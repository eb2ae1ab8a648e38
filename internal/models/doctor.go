package models

import "time"

type Doctor struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Doctor) TableName() string { return "doctors" }

// DisplayName is "First Last". Appointments reference doctors by this
// string, so renaming a doctor orphans their past bookings.
func (d Doctor) DisplayName() string {
	return d.FirstName + " " + d.LastName
}

// RegisterDoctorInput is the admin-only doctor creation form.
type RegisterDoctorInput struct {
	FirstName    string `json:"fname" form:"fname"`
	LastName     string `json:"lname" form:"lname"`
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	Confirmation string `json:"confirmation" form:"confirmation"`
}
