package service

import (
	"errors"
	"fmt"
)

// ValidationError carries a user-facing precondition or input failure.
// Handlers map it to HTTP 400; everything else is a 500.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a user-facing validation failure.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// ErrConflict marks a uniqueness conflict, e.g. a settlement payment that
// already exists for the order. Handlers map it to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrForbidden marks an access to a resource the caller does not own.
// Handlers map it to HTTP 403.
var ErrForbidden = errors.New("forbidden")
