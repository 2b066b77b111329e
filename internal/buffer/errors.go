package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports that a line or the line sequence could not grow.
	// The edit that needed the growth has not been applied.
	ErrAllocation = errors.New("allocation failure")

	// ErrIndexOutOfBounds is wrapped by the IndexError panics raised when a
	// caller passes a line or column outside the store.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// IndexError is the panic value for contract violations on LineStore accessors.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d out of range (len %d)", e.What, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func outOfBounds(what string, index, n int) {
	panic(&IndexError{What: what, Index: index, Len: n})
}
