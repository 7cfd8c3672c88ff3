// Package api
// Author: momentics <momentics@gmail.com>
//
// Element capability interfaces for hioload-vec containers.
//
// All capabilities are optional. A container resolves them once per element
// type at construction time and never branches on them per call. Types that
// implement none of these behave as plain values: copies are assignments,
// moves are assignments that zero the source, destruction is re-zeroing.

package api

// Cloner is implemented by element types whose copies must be deep and may
// fail. When present, every copying container operation routes element
// duplication through Clone and propagates its error per the operation's
// documented guarantee.
type Cloner[T any] interface {
	// Clone returns an independent copy of the receiver.
	Clone() (T, error)
}

// Taker is implemented (with a pointer receiver) by element types that can
// transfer their owned state out, leaving the source safe to destroy.
// Take must not fail; containers rely on it as an infallible relocation
// primitive.
type Taker[T any] interface {
	// Take moves the receiver's state into the returned value and resets
	// the receiver to its zero state.
	Take() T
}

// Disposer is implemented by element types that hold resources to release
// on destruction. Containers call Dispose exactly once per live element
// before the slot is re-zeroed.
type Disposer interface {
	Dispose()
}
