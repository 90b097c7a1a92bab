package users

import (
	"errors"
	"fmt"
)

// ErrUserNotFound is returned when a user lookup finds no matching record
var ErrUserNotFound = errors.New("user not found")

// InvalidEmailError is returned when the identity provider hands us an email
// that fails basic shape validation
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Email)
}

// AuthError is a user-facing authentication failure: the message is safe to
// show, internal detail stays in the wrapped error
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
