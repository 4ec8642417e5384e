// Package common defines shared constants and sentinel errors used across
// the storefront client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote API errors.
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("server unavailable")

	// Newsletter-specific errors.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)
