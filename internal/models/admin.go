package models

// Admin accounts are pre-provisioned; there is no registration path.
type Admin struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (Admin) TableName() string { return "admins" }
