package services

import "errors"

// Business-rule failures surfaced to controllers. Controllers match with
// errors.Is and pick the HTTP status; the wrapped message is user-visible.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrAccessDenied       = errors.New("access denied")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
