// Package pool
// Author: momentics <momentics@gmail.com>
//
// Block recycling layer for hioload-vec.
// Implements size-classed retention of retired storage blocks so that
// short-lived containers can reuse each other's allocations instead of
// pressuring the garbage collector.
// See blockpool.go for implementation details.
package pool
