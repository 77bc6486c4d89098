// Package common defines shared constants and sentinel errors used across
// Origami components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors: user-supplied input failed a precondition
	// (empty entry text, short password, malformed email).
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized = errors.New("incorrect password")
	ErrLocked       = errors.New("journal is temporarily locked")

	// Decryption failed, typically because the content was written
	// with a different key.
	ErrDecrypt = errors.New("unable to decrypt")
)
