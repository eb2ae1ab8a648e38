package models

import "time"

// Session binds one caller to exactly one account of one class.
type Session struct {
	Token        string       `gorm:"primaryKey;size:64" json:"token"`
	AccountID    uint64       `gorm:"not null" json:"account_id"`
	AccountClass AccountClass `gorm:"size:16;not null" json:"account_class"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `gorm:"index" json:"expires_at"`
}

func (Session) TableName() string { return "sessions" }

// IsExpiredAt reports whether the session is no longer valid at t.
func (s *Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
