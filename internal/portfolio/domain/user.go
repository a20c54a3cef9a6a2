package domain

import "time"

// User is an admin account. Users are provisioned out of band (cmd/seedadmin)
// and never created or deleted through the API.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt encoded, never serialized
	CreatedAt    time.Time `json:"-"`
}
