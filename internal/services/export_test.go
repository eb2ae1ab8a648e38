package services

import "time"

// SetClock replaces the clock used to stamp and expire sessions.
func (a *SessionAuthority) SetClock(now func() time.Time) {
	a.now = now
}
