// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

var (
	// ErrInvalidCredentials indicates a wrong admin password.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrLoginDisabled indicates that ADMIN_PASSWORD_HASH is not configured.
	ErrLoginDisabled = errors.New("admin login is not configured")
)
