package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("dynarray: array is empty")
)

// RangeError carries the offending index and the array length.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrOutOfRange, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
