// Package common defines shared constants and sentinel errors used across
// userdeck components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")

	// Directory errors.
	ErrNotFound = errors.New("not found")

	// Generic backend failure (non-2xx without a more specific mapping).
	ErrInternal = errors.New("internal error")
)
