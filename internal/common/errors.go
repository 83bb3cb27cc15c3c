// Package common contains shared constants and sentinel errors used across
// gestock components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport / availability errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors. ErrUnauthorized is permanent: it is only returned after
	// the refresh-and-retry cycle has been exhausted.
	ErrUnauthorized = errors.New("unauthorized")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (the API rejected the payload field by field).
	ErrValidation = errors.New("validation error")

	// Generic service-level failure.
	ErrInternal = errors.New("internal error")
)
