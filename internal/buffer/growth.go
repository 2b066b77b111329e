package buffer

import (
	"fmt"
	"runtime"
)

// MinIncrement is the smallest step by which any container grows.
const MinIncrement = 256

// Limits caps how far edits may grow the store. Content that is loaded is
// never refused by them. Zero means unlimited.
type Limits struct {
	MaxLineLength int
	MaxLines      int
}

// Grow returns the capacity a container currently holding c slots must reach
// to hold need elements. Every step moves c to max(2c, c+MinIncrement), so a
// fresh container (c == 0) starts at MinIncrement. When c already fits, it is
// returned unchanged.
func Grow(c, need int) int {
	for c < need {
		c = max(c*2, c+MinIncrement)
	}
	return c
}

// growTo returns storage of at least need slots holding the first n elements
// of s. A need above limit is ErrAllocation even when s already has room, and
// the result is clamped to limit when one is set. On error s is untouched.
func growTo[T any](s []T, n, need, limit int) ([]T, error) {
	if limit > 0 && need > limit {
		return nil, fmt.Errorf("%w: need %d, limit %d", ErrAllocation, need, limit)
	}
	if need <= len(s) {
		return s, nil
	}
	c := Grow(len(s), need)
	if limit > 0 && c > limit {
		c = limit
	}
	next, err := alloc[T](c)
	if err != nil {
		return nil, err
	}
	copy(next, s[:n])
	return next, nil
}

func alloc[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			s = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, re)
		}
	}()
	return make([]T, n), nil
}
