package errors

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSellerProfileRequired  = errors.New("seller role requires a valid seller id")
	ErrInvalidRegistration    = errors.New("invalid registration input")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidToken           = errors.New("invalid or expired token")
)
