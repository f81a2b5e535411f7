package services

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Every service operation returns a domain object or one of
// these, possibly wrapped with detail via fmt.Errorf("...: %w", Err...).
// The transport layer maps them to status codes; nothing is retried here.
var (
	// ErrAuthRequired means no authenticated identity was supplied.
	ErrAuthRequired = errors.New("you must be logged in to do that")

	// ErrForbidden means the caller is authenticated but lacks rights or
	// ownership for the requested mutation.
	ErrForbidden = errors.New("you don't have permission to do that")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is a signin password mismatch.
	ErrInvalidCredentials = errors.New("Invalid Password!")

	// ErrInvalidToken is a bad or expired password-reset token.
	ErrInvalidToken = errors.New("this token is either invalid or expired")

	// ErrValidation is malformed input, e.g. a mismatched password confirmation.
	ErrValidation = errors.New("validation failed")

	// ErrPayment is a gateway rejection during checkout.
	ErrPayment = errors.New("payment failed")
)

// messageError carries a verbatim user-facing message while still matching its
// sentinel under errors.Is. Used where the surfaced text must not include the
// sentinel's own wording.
type messageError struct {
	msg      string
	sentinel error
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.sentinel }

func withMessage(sentinel error, format string, args ...interface{}) error {
	return &messageError{msg: fmt.Sprintf(format, args...), sentinel: sentinel}
}
