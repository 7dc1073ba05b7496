package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmailTaken         = errors.New("an account with this email or phone already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateItem      = errors.New("item is already in the cart")
	ErrUnauthorized       = errors.New("not signed in")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrRateLimited        = errors.New("rate limited by backend")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
