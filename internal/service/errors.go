package service

import (
	"errors"
	"fmt"

	"github.com/stresscheck/backend/internal/repository"
)

// ErrNotFound mirrors the repository sentinel so handlers only need to
// match against the service package.
var ErrNotFound = repository.ErrNotFound

// ValidationError reports malformed input: empty required fields, unknown
// question ids, out-of-range answer values.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
