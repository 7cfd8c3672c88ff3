// Package vec
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous container over raw storage blocks.
// Vector[T] owns one storage.Raw[T] plus the count of live elements and is
// the only thing that ever constructs or destroys elements inside it.
// Every operation documents its guarantee on failure: strong (the vector
// is observably unchanged) or weak (the vector stays valid but partially
// updated). Relocation during growth moves elements when the element type
// can transfer infallibly and deep-copies otherwise.
// See vector.go, grow.go, insert.go for implementation details.
package vec
