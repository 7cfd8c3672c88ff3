// File: internal/grow/grow.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity normalization and growth policy for hioload-vec containers.
// Ensures every allocation request entering the storage layer has been
// validated against negative and overflowing sizes, so allocators and
// pools never need to re-check.

package grow

import "math"

// MaxCapacity bounds any single block. Requests above it report overflow
// instead of handing the runtime an impossible make() size.
const MaxCapacity = math.MaxInt32

// Valid reports whether n is an acceptable capacity request.
func Valid(n int) bool {
	return n >= 0 && n <= MaxCapacity
}

// Next returns the capacity to allocate when a container at capacity cap
// runs out of room: max(1, 2*cap), clamped to MaxCapacity.
func Next(cap int) int {
	if cap == 0 {
		return 1
	}
	if cap > MaxCapacity/2 {
		return MaxCapacity
	}
	return 2 * cap
}

// ClassFor rounds n up to the next power of two, the capacity class used
// by recycling pools. n must already be Valid.
func ClassFor(n int) int {
	if n <= 1 {
		return 1
	}
	c := 1
	for c < n {
		c <<= 1
	}
	return c
}
