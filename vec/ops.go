// File: vec/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-type element primitives. Capabilities are resolved once per
// instantiation of Vector[T] via interface probes on *T; no container
// operation branches on element capabilities at the call site.

package vec

import "github.com/momentics/hioload-vec/api"

// elemOps carries the resolved element primitives for one element type.
type elemOps[T any] struct {
	// clone duplicates an element; nil means copies are plain
	// assignment and cannot fail.
	clone func(*T) (T, error)
	// take transfers an element out, zeroing the source; nil means
	// moves are assignment followed by re-zeroing.
	take func(*T) T
	// dispose releases element resources; nil means destruction is
	// re-zeroing only.
	dispose func(*T)
	// moveSafe reports that relocation may move elements: either moves
	// are trivially infallible (no Cloner) or the type provides an
	// explicit infallible transfer (Taker).
	moveSafe bool
}

// resolveOps probes T's capabilities. Probing goes through *T so that
// both value- and pointer-receiver implementations are found.
func resolveOps[T any]() elemOps[T] {
	var probe T
	var ops elemOps[T]

	if _, ok := any(&probe).(api.Cloner[T]); ok {
		ops.clone = func(src *T) (T, error) {
			return any(src).(api.Cloner[T]).Clone()
		}
	}
	if _, ok := any(&probe).(api.Taker[T]); ok {
		ops.take = func(src *T) T {
			return any(src).(api.Taker[T]).Take()
		}
	}
	if _, ok := any(&probe).(api.Disposer); ok {
		ops.dispose = func(p *T) {
			any(p).(api.Disposer).Dispose()
		}
	}
	ops.moveSafe = ops.clone == nil || ops.take != nil
	return ops
}

// moveFrom vacates src into the returned value. The source slot is left
// zero-valued, i.e. uninitialized.
func (o *elemOps[T]) moveFrom(src *T) T {
	if o.take != nil {
		return o.take(src)
	}
	val := *src
	var zero T
	*src = zero
	return val
}

// copyFrom duplicates src. Fallible only for Cloner types.
func (o *elemOps[T]) copyFrom(src *T) (T, error) {
	if o.clone != nil {
		return o.clone(src)
	}
	return *src, nil
}

// destroy ends the element at p and returns the slot to its
// uninitialized (zero) state. Must be called exactly once per live
// element, never on a vacated slot.
func (o *elemOps[T]) destroy(p *T) {
	if o.dispose != nil {
		o.dispose(p)
	}
	var zero T
	*p = zero
}
