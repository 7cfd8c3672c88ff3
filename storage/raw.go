// File: storage/raw.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw[T] is an exclusively owned block of element slots. It knows nothing
// about element lifetimes: a slot that holds no live element must hold the
// zero value of T, and it is the owning container's job to keep that true.
// Blocks transfer between owners only through Swap, MoveFrom and Detach,
// all constant-time and non-failing.

package storage

import "github.com/momentics/hioload-vec/internal/assert"

// Raw owns storage for exactly Cap() elements of T. The zero Raw is a
// valid empty block (capacity 0, no allocation).
//
// Raw is move-only by contract: the struct must not be duplicated, since
// two owners of one block would double-release it. All methods use pointer
// receivers; ownership moves via Swap, MoveFrom and Detach.
type Raw[T any] struct {
	slots   []T
	release func([]T)
}

// FromSlots adopts an already-allocated slot slice as a block. Every slot
// must hold the zero value of T. release, if non-nil, is invoked once with
// the slice when the block is released; allocator implementations use it
// to return non-heap memory.
func FromSlots[T any](slots []T, release func([]T)) Raw[T] {
	return Raw[T]{slots: slots, release: release}
}

// Cap returns the number of element slots in the block.
func (r *Raw[T]) Cap() int {
	return len(r.slots)
}

// At returns the address of slot i. The slot may be uninitialized; callers
// must not read it as a live element until they have constructed one there.
// Bounds are asserted only under the vecdebug build tag.
func (r *Raw[T]) At(i int) *T {
	assert.Index(i, len(r.slots), "storage slot")
	return &r.slots[i]
}

// Slots exposes the whole block as a slice. Slots at or beyond the owning
// container's live boundary are uninitialized.
func (r *Raw[T]) Slots() []T {
	return r.slots
}

// Swap exchanges blocks with other in constant time, no allocation.
func (r *Raw[T]) Swap(other *Raw[T]) {
	r.slots, other.slots = other.slots, r.slots
	r.release, other.release = other.release, r.release
}

// MoveFrom releases r's current block and takes ownership of other's.
// other is left empty and safe to release again.
func (r *Raw[T]) MoveFrom(other *Raw[T]) {
	if r == other {
		return
	}
	r.Release()
	r.slots, r.release = other.slots, other.release
	other.slots, other.release = nil, nil
}

// Detach transfers the block out of r, leaving r empty. The caller assumes
// ownership of the slice and the release hook. Recycling pools use this to
// retire blocks without running the release hook.
func (r *Raw[T]) Detach() (slots []T, release func([]T)) {
	slots, release = r.slots, r.release
	r.slots, r.release = nil, nil
	return slots, release
}

// Release returns the block to its source. It never touches element
// lifetimes; the caller must have destroyed any live elements already.
// No-op on an empty block. r is reusable (empty) afterwards.
func (r *Raw[T]) Release() {
	if r.slots == nil {
		return
	}
	if r.release != nil {
		r.release(r.slots)
	}
	r.slots, r.release = nil, nil
}
