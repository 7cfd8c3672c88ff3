// File: vec/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vector[T] core: construction, value semantics, swap, accessors.
// Invariant throughout: slots [0, size) hold live elements, slots
// [size, cap) hold the zero value of T. The size boundary is the single
// source of truth for element liveness.

package vec

import (
	"github.com/momentics/hioload-vec/internal/assert"
	"github.com/momentics/hioload-vec/storage"
)

// Vector is a growable contiguous sequence of T over an owned storage
// block. The zero value is not ready to use; construct with New,
// NewWithAllocator, NewN, or NewFunc. Not safe for concurrent use.
type Vector[T any] struct {
	data  storage.Raw[T]
	size  int
	alloc storage.Allocator[T]
	ops   elemOps[T]
}

// New returns an empty vector with capacity 0 backed by the Go heap.
// No allocation is performed.
func New[T any]() *Vector[T] {
	return NewWithAllocator[T](storage.Heap[T]{})
}

// NewWithAllocator returns an empty vector drawing blocks from a. If a
// also implements storage.Recycler, retired blocks go back to it.
func NewWithAllocator[T any](a storage.Allocator[T]) *Vector[T] {
	return &Vector[T]{alloc: a, ops: resolveOps[T]()}
}

// NewN returns a vector of n value-constructed (zero value) elements.
// Strong guarantee: on allocation failure nothing is leaked.
func NewN[T any](n int) (*Vector[T], error) {
	return NewNWithAllocator[T](n, storage.Heap[T]{})
}

// NewNWithAllocator is NewN drawing storage from a.
func NewNWithAllocator[T any](n int, a storage.Allocator[T]) (*Vector[T], error) {
	v := NewWithAllocator[T](a)
	blk, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}
	v.data = blk
	v.size = n
	return v, nil
}

// NewFunc returns a vector of n elements built by ctor, called once per
// index in order. Strong guarantee: if any call fails, all elements
// constructed so far are destroyed, the storage is released, and the
// error is returned.
func NewFunc[T any](n int, ctor func(i int) (T, error)) (*Vector[T], error) {
	return NewFuncWithAllocator(n, storage.Heap[T]{}, ctor)
}

// NewFuncWithAllocator is NewFunc drawing storage from a.
func NewFuncWithAllocator[T any](n int, a storage.Allocator[T], ctor func(i int) (T, error)) (*Vector[T], error) {
	v := NewWithAllocator[T](a)
	blk, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}
	v.data = blk
	for i := 0; i < n; i++ {
		val, err := ctor(i)
		if err != nil {
			v.size = i
			v.Release()
			return nil, err
		}
		*v.data.At(i) = val
	}
	v.size = n
	return v, nil
}

// Clone copy-constructs an independent vector with the same elements,
// sized for exactly Len(). Strong guarantee: on failure all partially
// constructed elements are destroyed and the storage released.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := NewWithAllocator[T](v.alloc)
	if err := c.cloneFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// cloneFrom fills an empty vector with copies of rhs's elements,
// cleaning up after itself on failure.
func (v *Vector[T]) cloneFrom(rhs *Vector[T]) error {
	blk, err := v.alloc.Alloc(rhs.size)
	if err != nil {
		return err
	}
	for i := 0; i < rhs.size; i++ {
		val, err := v.ops.copyFrom(rhs.data.At(i))
		if err != nil {
			for j := 0; j < i; j++ {
				v.ops.destroy(blk.At(j))
			}
			v.recycleBlock(&blk)
			return err
		}
		*blk.At(i) = val
	}
	v.data.Swap(&blk)
	v.size = rhs.size
	return nil
}

// MoveFrom releases the receiver's current contents and takes ownership
// of rhs's storage and length in constant time. rhs is left empty with
// capacity 0 and remains usable. Never fails. Self-move is a no-op.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Clear()
	v.recycleBlock(&v.data)
	v.data.Swap(&rhs.data)
	v.size = rhs.size
	v.alloc = rhs.alloc
	v.ops = rhs.ops
	rhs.size = 0
}

// CopyFrom copy-assigns rhs's contents into the receiver.
//
// When rhs does not fit in the current capacity, a full copy of rhs is
// built first and swapped in: strong guarantee, the receiver is
// untouched on failure. Otherwise existing storage is reused: the
// overlapping prefix is copy-assigned element-wise, trailing stale
// elements destroyed or trailing new elements copy-constructed. The
// reuse branch offers only a weak guarantee: a mid-sequence copy failure
// leaves the receiver valid but partially updated.
//
// Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.Cap() {
		tmp := NewWithAllocator[T](v.alloc)
		if err := tmp.cloneFrom(rhs); err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	overlap := v.size
	if rhs.size < overlap {
		overlap = rhs.size
	}
	for i := 0; i < overlap; i++ {
		val, err := v.ops.copyFrom(rhs.data.At(i))
		if err != nil {
			return err
		}
		v.ops.destroy(v.data.At(i))
		*v.data.At(i) = val
	}
	if rhs.size < v.size {
		for i := rhs.size; i < v.size; i++ {
			v.ops.destroy(v.data.At(i))
		}
	} else {
		for i := v.size; i < rhs.size; i++ {
			val, err := v.ops.copyFrom(rhs.data.At(i))
			if err != nil {
				v.size = i
				return err
			}
			*v.data.At(i) = val
		}
	}
	v.size = rhs.size
	return nil
}

// Swap exchanges contents with other in constant time. Never fails; this
// is the pivot every reallocating operation relies on.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.alloc, other.alloc = other.alloc, v.alloc
}

// Clear destroys all live elements and keeps the storage. Never fails.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.ops.destroy(v.data.At(i))
	}
	v.size = 0
}

// Release destroys all live elements and returns the storage block to
// its allocator. The vector is empty (capacity 0) and reusable
// afterwards. This is the explicit end-of-life call; a vector simply
// dropped to the garbage collector is also safe, it just recycles
// nothing.
func (v *Vector[T]) Release() {
	v.Clear()
	v.recycleBlock(&v.data)
}

// recycleBlock retires blk through the allocator's recycler when it has
// one, otherwise releases it. blk must hold no live elements.
func (v *Vector[T]) recycleBlock(blk *storage.Raw[T]) {
	if rec, ok := v.alloc.(storage.Recycler[T]); ok {
		rec.Recycle(blk)
		return
	}
	blk.Release()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the element capacity of the owned storage.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of the live element at offset i. Bounds are
// asserted only under the vecdebug build tag; out-of-range offsets are
// undefined behavior in release builds.
func (v *Vector[T]) At(i int) *T {
	assert.Index(i, v.size, "element")
	return v.data.At(i)
}

// Front returns the first live element.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns the last live element.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Slice returns the live range [0, Len()) as a slice view over the
// owned storage. The view is invalidated by any reallocating operation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slots()[:v.size]
}

// Each calls fn for every live element in order until fn returns false.
func (v *Vector[T]) Each(fn func(i int, p *T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.data.At(i)) {
			return
		}
	}
}
