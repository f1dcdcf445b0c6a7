package services

import "errors"

var (
	// ErrUserExists is returned by Register when the username is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorageUnavailable marks transient persistence failures. Callers
	// may retry; the transport layer maps it to 503, never to a generic
	// internal error.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
