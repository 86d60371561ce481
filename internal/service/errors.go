package service

import "errors"

// Expected business failures. Handlers map these to HTTP status codes;
// anything else is treated as an internal error.
var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailTaken        = errors.New("email already registered")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrAccountDisabled   = errors.New("account is deactivated")
	ErrTokenInvalid      = errors.New("invalid or expired token")
	ErrAlreadyRegistered = errors.New("already registered")
)
