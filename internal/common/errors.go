// Package common defines shared sentinel errors used across the service and
// repository layers. Callers should use errors.Is to match these values; the
// HTTP boundary translates each kind into a status code.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorConflict     = errors.New("conflict")
	ErrorValidation   = errors.New("validation error")

	// auth errors (invalid, malformed or expired token)
	ErrInvalidToken = errors.New("invalid token")
)
