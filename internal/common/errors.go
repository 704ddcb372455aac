// Package common defines shared constants and sentinel errors used across
// the layers of charlore-api. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Auth errors. Unknown-user and wrong-password both collapse into
	// ErrInvalidCredentials; callers must not re-split them.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingCredentials = errors.New("missing credentials")
)
