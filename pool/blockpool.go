// File: pool/blockpool.go
// Package pool implements size-classed recycling of storage blocks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/grow"
	"github.com/momentics/hioload-vec/storage"
)

// defaultPerClass bounds how many free blocks one capacity class retains.
const defaultPerClass = 64

// BlockPool hands out storage blocks rounded up to power-of-two capacity
// classes and takes retired blocks back for reuse. It implements both
// storage.Allocator[T] and storage.Recycler[T].
//
// The pool is safe for concurrent use by many containers; the containers
// themselves remain single-threaded.
type BlockPool[T any] struct {
	mu       sync.Mutex
	classes  map[int]*queue.Queue // capacity class -> FIFO of []T
	perClass int
	closed   bool

	heap storage.Heap[T]

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewBlockPool creates a pool retaining at most perClass free blocks per
// capacity class. perClass <= 0 selects the default.
func NewBlockPool[T any](perClass int) *BlockPool[T] {
	if perClass <= 0 {
		perClass = defaultPerClass
	}
	return &BlockPool[T]{
		classes:  make(map[int]*queue.Queue),
		perClass: perClass,
	}
}

// Alloc returns a block for at least n elements. The block's capacity is
// n rounded up to its class, so pooled containers may observe more room
// than they asked for. Every slot holds the zero value of T.
func (p *BlockPool[T]) Alloc(n int) (storage.Raw[T], error) {
	if n == 0 {
		return storage.Raw[T]{}, nil
	}
	if !grow.Valid(n) {
		// Route through the heap allocator for the canonical error.
		return p.heap.Alloc(n)
	}
	class := grow.ClassFor(n)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return storage.Raw[T]{}, api.NewError(api.ErrCodePoolClosed, "alloc from closed block pool").
			WithCause(api.ErrPoolClosed)
	}
	if q, ok := p.classes[class]; ok && q.Length() > 0 {
		slots := q.Remove().([]T)
		p.mu.Unlock()
		p.totalAlloc.Add(1)
		return storage.FromSlots(slots, nil), nil
	}
	p.mu.Unlock()

	blk, err := p.heap.Alloc(class)
	if err != nil {
		return storage.Raw[T]{}, err
	}
	p.totalAlloc.Add(1)
	return blk, nil
}

// Recycle retires a block into the pool, leaving it empty. All live
// elements must have been destroyed already; the pool re-zeroes every
// slot before retention so the block comes back uninitialized. Blocks the
// pool has no room for are dropped to the garbage collector.
func (p *BlockPool[T]) Recycle(r *storage.Raw[T]) {
	slots, release := r.Detach()
	if slots == nil {
		return
	}
	if release != nil {
		// Non-heap memory goes back to its own source.
		release(slots)
		return
	}
	clear(slots)

	class := len(slots)
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	q, ok := p.classes[class]
	if !ok {
		q = queue.New()
		p.classes[class] = q
	}
	if q.Length() < p.perClass {
		q.Add(slots)
		p.mu.Unlock()
		p.totalFree.Add(1)
		return
	}
	p.mu.Unlock()
}

// Close drops all retained blocks. Further Alloc calls fail with
// api.ErrPoolClosed; further Recycle calls drop their blocks.
func (p *BlockPool[T]) Close() {
	p.mu.Lock()
	p.closed = true
	p.classes = make(map[int]*queue.Queue)
	p.mu.Unlock()
}

// Stats exposes allocation/reuse accounting.
func (p *BlockPool[T]) Stats() api.BlockPoolStats {
	totalAlloc := p.totalAlloc.Load()
	totalFree := p.totalFree.Load()

	classStats := make(map[int]int64)
	p.mu.Lock()
	for class, q := range p.classes {
		classStats[class] = int64(q.Length())
	}
	p.mu.Unlock()

	return api.BlockPoolStats{
		TotalAlloc: totalAlloc,
		TotalFree:  totalFree,
		InUse:      totalAlloc - totalFree,
		ClassStats: classStats,
	}
}

var (
	_ storage.Allocator[int] = (*BlockPool[int])(nil)
	_ storage.Recycler[int]  = (*BlockPool[int])(nil)
)
