package storage_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/storage"
)

func TestHeapAllocZero(t *testing.T) {
	var h storage.Heap[int]
	blk, err := h.Alloc(0)
	if err != nil {
		t.Fatalf("Alloc(0): %v", err)
	}
	if blk.Cap() != 0 {
		t.Errorf("zero request capacity = %d, want 0", blk.Cap())
	}
	blk.Release() // must be a no-op
}

func TestHeapAllocNegative(t *testing.T) {
	var h storage.Heap[int]
	_, err := h.Alloc(-1)
	if !errors.Is(err, api.ErrInvalidCapacity) {
		t.Fatalf("Alloc(-1) error = %v, want ErrInvalidCapacity", err)
	}
}

func TestRawSlotsZeroed(t *testing.T) {
	var h storage.Heap[string]
	blk, err := h.Alloc(8)
	if err != nil {
		t.Fatal(err)
	}
	if blk.Cap() != 8 {
		t.Fatalf("capacity = %d, want 8", blk.Cap())
	}
	for i := 0; i < blk.Cap(); i++ {
		if *blk.At(i) != "" {
			t.Fatalf("slot %d not zero-valued", i)
		}
	}
}

func TestRawSwap(t *testing.T) {
	var h storage.Heap[int]
	a, _ := h.Alloc(2)
	b, _ := h.Alloc(5)
	*a.At(0) = 11
	*b.At(0) = 22

	a.Swap(&b)
	if a.Cap() != 5 || b.Cap() != 2 {
		t.Fatalf("after swap caps = %d,%d, want 5,2", a.Cap(), b.Cap())
	}
	if *a.At(0) != 22 || *b.At(0) != 11 {
		t.Error("swap did not exchange block contents")
	}
}

func TestRawMoveFrom(t *testing.T) {
	var h storage.Heap[int]
	src, _ := h.Alloc(4)
	*src.At(2) = 7

	var dst storage.Raw[int]
	dst.MoveFrom(&src)
	if src.Cap() != 0 {
		t.Errorf("source capacity after move = %d, want 0", src.Cap())
	}
	if dst.Cap() != 4 || *dst.At(2) != 7 {
		t.Error("destination does not own the moved block")
	}

	// Self-move must not drop the block.
	dst.MoveFrom(&dst)
	if dst.Cap() != 4 {
		t.Error("self move released the block")
	}
}

func TestRawReleaseHook(t *testing.T) {
	released := 0
	blk := storage.FromSlots(make([]int, 3), func([]int) { released++ })
	blk.Release()
	blk.Release()
	if released != 1 {
		t.Errorf("release hook ran %d times, want 1", released)
	}
	if blk.Cap() != 0 {
		t.Error("released block still reports capacity")
	}
}

func TestBytesAllocSmall(t *testing.T) {
	var b storage.Bytes
	blk, err := b.Alloc(4096)
	if err != nil {
		t.Fatal(err)
	}
	if blk.Cap() != 4096 {
		t.Errorf("capacity = %d, want 4096", blk.Cap())
	}
	blk.Release()
}

func TestBytesAllocLarge(t *testing.T) {
	var b storage.Bytes
	blk, err := b.Alloc(3 << 20)
	if err != nil {
		t.Fatal(err)
	}
	if blk.Cap() != 3<<20 {
		t.Errorf("capacity = %d, want %d", blk.Cap(), 3<<20)
	}
	for _, off := range []int{0, 1 << 20, 3<<20 - 1} {
		if *blk.At(off) != 0 {
			t.Fatalf("byte at %d not zeroed", off)
		}
	}
	blk.Release()
}
