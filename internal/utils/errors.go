// Package utils provides error wrapping, buffer pooling, overflow checks
// and little-endian codecs shared by every package in seqidx.
package utils

import (
	"errors"
	"fmt"
)

// Error kinds from the design's error taxonomy. Compare with errors.Is;
// a concrete failure is always wrapped with context via WrapError.
var (
	ErrInputOutOfRange  = errors.New("input out of range")
	ErrIO               = errors.New("i/o failure")
	ErrCorrupt          = errors.New("corrupt index file")
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidSymbol    = errors.New("invalid symbol")
)

// IndexError is a contextual wrap around one of the sentinel kinds above.
type IndexError struct {
	Context string
	Kind    error
	Cause   error
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Cause != nil && e.Cause != e.Kind {
		return fmt.Sprintf("%s: %v: %v", e.Context, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Kind)
}

// Unwrap lets errors.Is/As see through to the sentinel kind.
func (e *IndexError) Unwrap() error {
	return e.Kind
}

// WrapError creates an IndexError of the given kind with context.
// If cause is nil, the kind itself is used as the cause.
func WrapError(kind error, context string, cause error) error {
	if cause == nil {
		cause = kind
	}
	return &IndexError{Context: context, Kind: kind, Cause: cause}
}
