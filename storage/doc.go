// Package storage
// Author: momentics <momentics@gmail.com>
//
// Raw block ownership layer for hioload-vec.
// A Raw[T] owns uninitialized storage for a fixed element count and never
// constructs or destroys elements; containers layered above it track the
// live/uninitialized boundary themselves.
// See raw.go, allocator.go, bytes_linux.go for implementation details.
package storage
