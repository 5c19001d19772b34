package domain

import "time"

// User represents a registered account. PasswordHash is opaque and must never
// be logged or included in a response body.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
