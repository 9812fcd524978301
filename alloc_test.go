package flatruntime

import (
	"errors"
	"testing"
	"unsafe"
)

func TestHeapAllocator_AllocFree(t *testing.T) {
	h := NewHeapAllocator()

	p, err := h.Alloc(24, 8)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if p == nil {
		t.Fatal("Alloc returned nil pointer")
	}
	if h.Live() != 1 {
		t.Errorf("expected 1 live allocation, got %d", h.Live())
	}

	// Storage must be zeroed.
	for i := uintptr(0); i < 24; i++ {
		if b := *(*byte)(unsafe.Add(p, i)); b != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b)
		}
	}

	h.Free(p, 24, 8)
	if h.Live() != 0 {
		t.Errorf("expected 0 live allocations, got %d", h.Live())
	}

	// Freeing again is a no-op.
	h.Free(p, 24, 8)
	if h.Live() != 0 {
		t.Errorf("expected 0 live allocations after double free, got %d", h.Live())
	}
}

func TestHeapAllocator_ZeroSize(t *testing.T) {
	h := NewHeapAllocator()
	p, err := h.Alloc(0, 1)
	if err != nil {
		t.Fatalf("Alloc(0) failed: %v", err)
	}
	if p == nil {
		t.Fatal("Alloc(0) returned nil pointer")
	}
	h.Free(p, 0, 1)
}

func TestHeapAllocator_UnsupportedAlignment(t *testing.T) {
	h := NewHeapAllocator()
	if _, err := h.Alloc(16, 16); err == nil {
		t.Fatal("expected error for 16-byte alignment")
	}
}

func TestArena_AllocAligned(t *testing.T) {
	a := NewArena(64)

	p1, err := a.Alloc(3, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	p2, err := a.Alloc(8, 8)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if uintptr(p2)%8 != 0 {
		t.Errorf("second allocation not 8-aligned: %p", p2)
	}
	if p1 == p2 {
		t.Error("allocations alias")
	}
	if a.Live() != 2 {
		t.Errorf("expected 2 live allocations, got %d", a.Live())
	}
}

func TestArena_Exhaustion(t *testing.T) {
	a := NewArena(16)

	if _, err := a.Alloc(16, 1); err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if _, err := a.Alloc(1, 1); !errors.Is(err, ErrArenaFull) {
		t.Fatalf("expected ErrArenaFull, got %v", err)
	}
}

func TestArena_ResetZeroesReusedStorage(t *testing.T) {
	a := NewArena(32)

	p, err := a.Alloc(8, 8)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	*(*uint64)(p) = 0xdeadbeef

	a.Reset()
	if a.Live() != 0 {
		t.Errorf("expected 0 live allocations after Reset, got %d", a.Live())
	}

	p2, err := a.Alloc(8, 8)
	if err != nil {
		t.Fatalf("Alloc after Reset failed: %v", err)
	}
	if v := *(*uint64)(p2); v != 0 {
		t.Errorf("reused storage not zeroed: %#x", v)
	}
}

func TestArena_FreeAdjustsLiveCount(t *testing.T) {
	a := NewArena(32)
	p, err := a.Alloc(4, 4)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	a.Free(p, 4, 4)
	if a.Live() != 0 {
		t.Errorf("expected 0 live allocations, got %d", a.Live())
	}
	a.Free(p, 4, 4)
	if a.Live() != 0 {
		t.Errorf("live count went negative")
	}
}
