// Package common defines shared constants and sentinel errors used across
// the forum components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication errors. These are resolved at the request boundary
	// and never reach business logic.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenInvalidated   = errors.New("token invalidated")
	ErrUnknownSubject     = errors.New("unknown token subject")
	ErrNoAuthContext      = errors.New("no authentication bound to request")
	ErrInvalidCredentials = errors.New("invalid username/password")

	// Authorization errors.
	ErrInsufficientRole = errors.New("insufficient role")
	ErrNotOwner         = errors.New("not the resource owner")

	// Validation errors, raised before any mutation is performed.
	ErrUserExists      = errors.New("username already taken")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidContent  = errors.New("invalid content")
	ErrInvalidPage     = errors.New("invalid page")
	ErrInvalidSize     = errors.New("invalid size")
	ErrThreadClosed    = errors.New("thread is closed")
)
