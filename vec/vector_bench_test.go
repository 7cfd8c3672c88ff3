// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// vector_bench_test.go — Append and recycle throughput for Vector.
package vec_test

import (
	"testing"

	"github.com/momentics/hioload-vec/pool"
	"github.com/momentics/hioload-vec/vec"
)

func BenchmarkPushBack(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.New[int]()
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
	}
}

func BenchmarkPushBackPooled(b *testing.B) {
	p := pool.NewBlockPool[int](16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := vec.NewWithAllocator[int](p)
		for j := 0; j < 1024; j++ {
			_ = v.PushBack(j)
		}
		v.Release()
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.New[int]()
		for j := 0; j < 256; j++ {
			_, _ = v.Insert(0, j)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := vec.New[int]()
		for j := 0; j < 256; j++ {
			_ = v.PushBack(j)
		}
		b.StartTimer()
		for v.Len() > 0 {
			v.Erase(0)
		}
	}
}
