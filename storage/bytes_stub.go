// File: storage/bytes_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback byte-block source for platforms without the hugepage path.

package storage

// Bytes sources Raw[byte] blocks. On this platform all blocks come from
// the Go heap.
type Bytes struct{}

// Alloc returns a byte block for exactly n slots.
func (Bytes) Alloc(n int) (Raw[byte], error) {
	if err := checkCapacity(n); err != nil {
		return Raw[byte]{}, err
	}
	if n == 0 {
		return Raw[byte]{}, nil
	}
	return Raw[byte]{slots: make([]byte, n)}, nil
}
