package vec_test

import (
	"testing"

	"github.com/momentics/hioload-vec/vec"
)

func TestInsertInterior(t *testing.T) {
	v := intVec(t, 1, 2, 3, 4)
	if err := v.Reserve(8); err != nil {
		t.Fatal(err)
	}
	off, err := v.Insert(2, 99)
	if err != nil {
		t.Fatal(err)
	}
	if off != 2 {
		t.Errorf("Insert returned offset %d, want 2", off)
	}
	wantElems(t, v, 1, 2, 99, 3, 4)
}

func TestInsertAtFront(t *testing.T) {
	v := intVec(t, 2, 3)
	if _, err := v.Insert(0, 1); err != nil {
		t.Fatal(err)
	}
	wantElems(t, v, 1, 2, 3)
}

func TestInsertAtEnd(t *testing.T) {
	v := intVec(t, 1, 2)
	if _, err := v.Insert(v.Len(), 3); err != nil {
		t.Fatal(err)
	}
	wantElems(t, v, 1, 2, 3)
}

func TestInsertTriggersGrowth(t *testing.T) {
	v := intVec(t, 1, 2, 3, 4) // capacity 4, full
	if v.Len() != v.Cap() {
		t.Fatalf("fixture not at capacity: len %d cap %d", v.Len(), v.Cap())
	}
	off, err := v.Insert(2, 99)
	if err != nil {
		t.Fatal(err)
	}
	if off != 2 {
		t.Errorf("offset = %d, want 2", off)
	}
	wantElems(t, v, 1, 2, 99, 3, 4)
	if v.Cap() != 8 {
		t.Errorf("Cap() after growing insert = %d, want 8", v.Cap())
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	v := vec.New[int]()
	if _, err := v.Insert(0, 5); err != nil {
		t.Fatal(err)
	}
	wantElems(t, v, 5)
	if v.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", v.Cap())
	}
}

func TestEmplaceBack(t *testing.T) {
	v := vec.New[int]()
	p, err := v.EmplaceBack(func() (int, error) { return 7, nil })
	if err != nil {
		t.Fatal(err)
	}
	if *p != 7 {
		t.Errorf("EmplaceBack element = %d, want 7", *p)
	}
	if p != v.At(0) {
		t.Error("EmplaceBack did not return the in-place element")
	}
}

func TestEraseInterior(t *testing.T) {
	v := intVec(t, 1, 2, 3, 4)
	off := v.Erase(1)
	if off != 1 {
		t.Errorf("Erase returned %d, want 1", off)
	}
	wantElems(t, v, 1, 3, 4)
}

func TestEraseFirstAndLast(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	v.Erase(0)
	wantElems(t, v, 2, 3)
	v.Erase(v.Len() - 1)
	wantElems(t, v, 2)
}

func TestEraseAll(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	for v.Len() > 0 {
		v.Erase(0)
	}
	if v.Len() != 0 {
		t.Errorf("Len() = %d after erasing all", v.Len())
	}
}

func TestPopBack(t *testing.T) {
	v := intVec(t, 1, 2, 3)
	v.PopBack()
	wantElems(t, v, 1, 2)
	v.PopBack()
	v.PopBack()
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
}

func TestInsertEraseRoundTrip(t *testing.T) {
	v := vec.New[int]()
	for i := 0; i < 100; i++ {
		if _, err := v.Insert(v.Len()/2, i); err != nil {
			t.Fatal(err)
		}
	}
	if v.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", v.Len())
	}
	for v.Len() > 0 {
		v.Erase(v.Len() - 1)
	}
	if v.Len() != 0 {
		t.Error("vector not empty after erasing everything")
	}
}
