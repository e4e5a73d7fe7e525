package arrayutil

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSequence is returned when an operation expects an ordered sequence.
	ErrNotSequence = errors.New("input is not a sequence")

	// ErrNotMapping is returned when an operation expects a mapping.
	ErrNotMapping = errors.New("input is not a mapping")

	// ErrNotCollection is returned by Flatten for scalar input.
	ErrNotCollection = errors.New("input is not a collection")

	// ErrNotScalar is returned when a sequence element cannot be used as a string.
	ErrNotScalar = errors.New("element is not a scalar")
)

// ElementError reports the position of a sequence element that could not be converted.
type ElementError struct {
	Index int
	Value any
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d (%T): %v", e.Index, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ElementError) Unwrap() error { return e.Err }
