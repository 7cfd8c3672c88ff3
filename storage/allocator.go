// File: storage/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Block sourcing abstraction. Containers never call make() themselves;
// they ask an Allocator so blocks can come from the Go heap, a recycling
// pool, or a platform-specific source interchangeably.

package storage

import (
	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/grow"
)

// Allocator produces blocks sized for n elements of T. An allocator may
// return a block larger than requested (recycling pools round up to a
// capacity class); it never returns a smaller one. Every slot of a
// returned block holds the zero value of T.
type Allocator[T any] interface {
	// Alloc returns a block for at least n elements. n == 0 yields an
	// empty block with no allocation performed.
	Alloc(n int) (Raw[T], error)
}

// Recycler is implemented by allocators that can take retired blocks back
// for reuse. Callers must have destroyed all live elements first.
type Recycler[T any] interface {
	// Recycle retires the block, leaving it empty.
	Recycle(r *Raw[T])
}

// Heap allocates blocks from the Go heap with exact capacity. It is the
// default allocator and is stateless; the zero value is ready to use.
type Heap[T any] struct{}

// Alloc returns a heap block for exactly n elements.
func (Heap[T]) Alloc(n int) (Raw[T], error) {
	if err := checkCapacity(n); err != nil {
		return Raw[T]{}, err
	}
	if n == 0 {
		return Raw[T]{}, nil
	}
	return Raw[T]{slots: make([]T, n)}, nil
}

// checkCapacity validates a requested element count before it reaches any
// allocation path.
func checkCapacity(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidCapacity, "negative block capacity").
			WithContext("requested", n).
			WithCause(api.ErrInvalidCapacity)
	}
	if !grow.Valid(n) {
		return api.NewError(api.ErrCodeCapacityOverflow, "block capacity above limit").
			WithContext("requested", n).
			WithContext("limit", grow.MaxCapacity).
			WithCause(api.ErrCapacityOverflow)
	}
	return nil
}
