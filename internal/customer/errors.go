package customer

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("customer not found")
	ErrForbidden          = errors.New("forbidden")
)
