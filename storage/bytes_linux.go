// File: storage/bytes_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux byte-block source backed by anonymous hugepage mappings.
// Blocks at or above one hugepage come from mmap with MAP_HUGETLB and are
// returned to the kernel on release; if the system has no hugepages
// configured the mmap fails and allocation falls back to the Go heap.

package storage

import "golang.org/x/sys/unix"

// hugeSize is the x86-64 hugepage size used for rounding mappings.
const hugeSize = 2 << 20

// Bytes sources Raw[byte] blocks, preferring hugepage mappings for large
// requests. Small blocks always come from the heap.
type Bytes struct{}

// Alloc returns a byte block for exactly n slots.
func (Bytes) Alloc(n int) (Raw[byte], error) {
	if err := checkCapacity(n); err != nil {
		return Raw[byte]{}, err
	}
	if n == 0 {
		return Raw[byte]{}, nil
	}
	if n < hugeSize {
		return Raw[byte]{slots: make([]byte, n)}, nil
	}

	// Round to hugepage boundary; mmap memory arrives zeroed.
	length := ((n + hugeSize - 1) / hugeSize) * hugeSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return Raw[byte]{slots: make([]byte, n)}, nil
	}
	mapping := data
	return Raw[byte]{
		slots:   data[:n:n],
		release: func([]byte) { _ = unix.Munmap(mapping) },
	}, nil
}
