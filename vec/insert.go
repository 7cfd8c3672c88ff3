// File: vec/insert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Insertion and removal. Emplace is the general primitive; PushBack,
// EmplaceBack and Insert all route through it. On a growing insertion
// the new element is constructed in the new block first, so a failing
// constructor leaves the old storage untouched.

package vec

import (
	"github.com/momentics/hioload-vec/internal/assert"
	"github.com/momentics/hioload-vec/internal/grow"
)

// Ctor builds one element. It is the fallible in-place construction
// primitive: emplace operations run it exactly once and only commit its
// result on success.
type Ctor[T any] func() (T, error)

// Of wraps an existing value as a Ctor. Used by the value-taking
// convenience wrappers.
func Of[T any](val T) Ctor[T] {
	return func() (T, error) { return val, nil }
}

// PushBack appends val. Amortized O(1); grows capacity to max(1, 2*cap)
// when full. Strong guarantee on the growth path.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.Emplace(v.size, Of(val))
	return err
}

// EmplaceBack appends an element built by ctor and returns its address.
// Strong guarantee: a failing ctor leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (*T, error) {
	off, err := v.Emplace(v.size, ctor)
	if err != nil {
		return nil, err
	}
	return v.data.At(off), nil
}

// Insert places val at offset off, shifting later elements right, and
// returns the offset of the inserted element.
func (v *Vector[T]) Insert(off int, val T) (int, error) {
	return v.Emplace(off, Of(val))
}

// Emplace inserts an element built by ctor at offset off (0 <= off <=
// Len(), asserted under vecdebug only) and returns its offset.
//
// Guarantees:
//   - at capacity: the element is constructed directly at its target
//     offset in the new block before anything is relocated; strong
//     guarantee on ctor failure and on copy-relocation failure.
//   - with room, off == Len(): constructed into the next free slot;
//     strong guarantee.
//   - with room, interior: the last element is moved up one slot, the
//     range [off, Len()-1) shifted right by backward move-assignment,
//     and the new element move-assigned into the hole. Element moves
//     are infallible here, so only ctor can fail; its failure is
//     reported after the shift machinery has been unwound. As with any
//     in-place shift the operation is documented weak: a shift leaves
//     intermediate states observable to element hooks.
func (v *Vector[T]) Emplace(off int, ctor Ctor[T]) (int, error) {
	assert.Offset(off, v.size, "insertion")

	if v.size == v.Cap() {
		return v.emplaceGrow(off, ctor)
	}

	slots := v.data.Slots()
	if off == v.size {
		val, err := ctor()
		if err != nil {
			return 0, err
		}
		slots[off] = val
		v.size++
		return off, nil
	}

	// Extend the live range by moving the last element up one slot,
	// then shift [off, size-1) rightward and drop the new value into
	// the hole. Minimizes constructions at the cost of the weak
	// guarantee.
	slots[v.size] = v.ops.moveFrom(&slots[v.size-1])
	val, err := ctor()
	if err != nil {
		slots[v.size-1] = v.ops.moveFrom(&slots[v.size])
		return 0, err
	}
	for j := v.size - 1; j > off; j-- {
		slots[j] = v.ops.moveFrom(&slots[j-1])
	}
	slots[off] = val
	v.size++
	return off, nil
}

// emplaceGrow is the reallocating emplace path: new block of
// max(1, 2*cap), new element constructed at its target offset first,
// then prefix and suffix relocated around it.
func (v *Vector[T]) emplaceGrow(off int, ctor Ctor[T]) (int, error) {
	blk, err := v.alloc.Alloc(grow.Next(v.Cap()))
	if err != nil {
		return 0, err
	}
	val, err := ctor()
	if err != nil {
		v.recycleBlock(&blk)
		return 0, err
	}
	*blk.At(off) = val
	if err := v.relocateInto(&blk, off); err != nil {
		// relocateInto already destroyed the new element and any
		// partial copies inside blk.
		v.recycleBlock(&blk)
		return 0, err
	}
	v.size++
	return off, nil
}

// Erase destroys the element at offset off and left-shifts all
// following elements by one move-assignment each. Never fails; weak by
// the same reasoning as interior Emplace. Returns the offset, which now
// names the element that followed the erased one.
func (v *Vector[T]) Erase(off int) int {
	assert.Index(off, v.size, "erase")
	v.ops.destroy(v.data.At(off))
	slots := v.data.Slots()
	for j := off; j < v.size-1; j++ {
		slots[j] = v.ops.moveFrom(&slots[j+1])
	}
	v.size--
	return off
}

// PopBack destroys the last live element. Calling it on an empty vector
// is undefined behavior (asserted under vecdebug).
func (v *Vector[T]) PopBack() {
	assert.That(v.size > 0, "PopBack on empty vector")
	v.size--
	v.ops.destroy(v.data.At(v.size))
}
