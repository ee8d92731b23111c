// Package common defines shared sentinel errors used across taskdeck
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors.
	ErrMissingFields = errors.New("email, password and name are required")
)
