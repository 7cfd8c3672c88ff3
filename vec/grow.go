// File: vec/grow.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity growth and relocation. Relocation moves elements when the
// element type transfers infallibly and deep-copies otherwise, so that a
// failed copy leaves the original elements intact (strong guarantee).

package vec

import (
	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/storage"
)

// Reserve ensures capacity for at least n elements. No-op when n is
// within the current capacity. Otherwise a new block is allocated, all
// live elements are relocated into it, the originals destroyed, and the
// old block retired. Strong guarantee: on any failure the vector is
// observably unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	blk, err := v.alloc.Alloc(n)
	if err != nil {
		return err
	}
	if err := v.relocateInto(&blk, -1); err != nil {
		v.recycleBlock(&blk)
		return err
	}
	return nil
}

// Resize sets the live element count to n. Shrinking destroys the
// trailing elements in place and keeps capacity. Growing reserves room
// if needed, then value-constructs (zero value) the new trailing
// elements. Fails only on allocation or relocation failure, with the
// Reserve guarantee.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidCapacity, "negative resize").
			WithContext("requested", n).
			WithCause(api.ErrInvalidCapacity)
	}
	if n <= v.size {
		for i := n; i < v.size; i++ {
			v.ops.destroy(v.data.At(i))
		}
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	// Slots above the live boundary are already zero-valued, which is
	// exactly value construction for T.
	v.size = n
	return nil
}

// relocateInto transfers all live elements into blk and swaps it in as
// the owned storage, retiring the old block. When gap >= 0, one slot at
// that offset is left untouched for an element the caller has already
// constructed there: the prefix [0, gap) keeps its offsets and the
// suffix [gap, size) lands one slot to the right.
//
// Move relocation vacates the sources as it goes and cannot fail. Copy
// relocation clones every element first and destroys the originals only
// after full success; on failure the clones made so far are destroyed
// and the vector is untouched (blk is left to the caller to retire).
func (v *Vector[T]) relocateInto(blk *storage.Raw[T], gap int) error {
	if v.ops.moveSafe {
		for i := 0; i < v.size; i++ {
			*blk.At(v.relocTarget(i, gap)) = v.ops.moveFrom(v.data.At(i))
		}
	} else {
		for i := 0; i < v.size; i++ {
			val, err := v.ops.copyFrom(v.data.At(i))
			if err != nil {
				for j := 0; j < i; j++ {
					v.ops.destroy(blk.At(v.relocTarget(j, gap)))
				}
				if gap >= 0 {
					v.ops.destroy(blk.At(gap))
				}
				return err
			}
			*blk.At(v.relocTarget(i, gap)) = val
		}
		for i := 0; i < v.size; i++ {
			v.ops.destroy(v.data.At(i))
		}
	}
	v.data.Swap(blk)
	v.recycleBlock(blk)
	return nil
}

// relocTarget maps a source offset to its destination offset around the
// insertion gap.
func (v *Vector[T]) relocTarget(i, gap int) int {
	if gap >= 0 && i >= gap {
		return i + 1
	}
	return i
}
