package bishop

import (
	"errors"
	"fmt"
)

// Domain errors for fingerprint walks.
var (
	// ErrInvalidInput indicates a fingerprint that is not even-length hex.
	ErrInvalidInput = errors.New("bishop: invalid fingerprint input")

	// ErrInvalidConfiguration indicates room dimensions or a start position
	// that cannot form a valid board.
	ErrInvalidConfiguration = errors.New("bishop: invalid board configuration")
)

// DecodeError wraps ErrInvalidInput with the offending byte offset.
type DecodeError struct {
	Offset  int
	Reason  string
	Wrapped error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", e.Wrapped, e.Reason, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Wrapped
}
