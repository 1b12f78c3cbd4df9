package playlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a mutation against an unknown playlist or track.
	ErrNotFound = errors.New("not found")

	// ErrValidation wraps all import/input validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrShareFailed is returned when every share target rejected the link.
	ErrShareFailed = errors.New("share failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
