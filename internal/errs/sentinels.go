// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/transport layers.
var (
	// ErrNotFound indicates the requested habit does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a required field is missing or the request payload is malformed.
	ErrValidation = errors.New("validation")

	// ErrUnauthorized indicates a missing, malformed, or unverifiable bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)
