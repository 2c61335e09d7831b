// Package common defines shared constants and sentinel errors used across
// the Swadesh server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// AI proxy errors.
	ErrUnknownAction   = errors.New("unknown action")
	ErrUpstreamFailed  = errors.New("generation failed")
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")
)
