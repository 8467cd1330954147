package errors

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrValidation            = errors.New("validation error")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrAuthorization         = errors.New("admin role required")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrConsistencyHazard     = errors.New("cascade deletion failed")
)
