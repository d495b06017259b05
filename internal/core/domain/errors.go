package domain

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")

	ErrUserNotFound  = errors.New("user not found")
	ErrPlaceNotFound = errors.New("place not found")
	ErrForbidden     = errors.New("access forbidden")
	ErrInvalidRole   = errors.New("invalid role")
	ErrMisconfigured = errors.New("misconfigured")

	// ErrPasswordTooLong is returned by hashers that cap the input length.
	ErrPasswordTooLong = errors.New("password too long")
)

// FieldError reports which input field was rejected. It unwraps to
// ErrInvalidInput; the field name is for logs and metrics, not for clients.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return "invalid input: " + e.Field }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }
