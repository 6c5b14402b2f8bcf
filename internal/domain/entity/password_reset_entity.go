package entity

import "time"

// PasswordReset is a single-use, time-limited ticket proving control of an
// email address. It is deleted immediately on successful use.
type PasswordReset struct {
	ID        string
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the ticket is past its expiry at the given instant.
func (p *PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
