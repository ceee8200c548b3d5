// Package common defines sentinel errors shared across the service layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Registration conflict: the email already has an account.
	ErrorAlreadyRegistered = errors.New("email already registered")

	// Generic internal failure surfaced to the boundary as 500.
	ErrorInternal = errors.New("internal error")
)
