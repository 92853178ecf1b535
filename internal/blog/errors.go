package blog

import (
	"errors"
	"fmt"
)

// Domain error kinds. Handlers map these onto HTTP statuses; everything
// else coming out of the Manager is an upstream store failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("already exists")
	ErrValidation      = errors.New("validation failed")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
