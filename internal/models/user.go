// Package models defines the records taskdeck persists: the user catalog,
// the current session pointer, per-user task lists and usage statistics.
// JSON field names are part of the on-device storage format and must stay
// compatible with previously persisted data.
package models

import "time"

// User is the session-facing account record. It never carries the password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoredUser is the catalog form of a user and the only place the password
// lives. Everything handed outside the catalog goes through Sanitized.
type StoredUser struct {
	User
	Password string `json:"password"`
}

// Sanitized returns the password-stripped view of the stored user.
func (u StoredUser) Sanitized() User {
	return u.User
}
