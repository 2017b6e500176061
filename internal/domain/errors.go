package domain

import "errors"

// Sentinel errors returned by repositories and services. Handlers map
// these to HTTP statuses; everything else surfaces as an internal error.
var (
	// ErrNotFound covers both true absence and access by a non-owner,
	// so existence of another user's record is never leaked.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for malformed, tampered or expired
	// session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
