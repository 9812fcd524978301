package flatruntime

import (
	"errors"
	"fmt"
	"unsafe"
)

// Allocator provisions raw storage for decoded parameter blocks.
//
// Alloc returns zeroed storage of at least size bytes aligned to align.
// Free releases storage previously returned by Alloc, with the same size and
// align values the storage was requested with. Implementations are not
// required to be safe for concurrent use; callers decoding from multiple
// goroutines must either serialize access or use one Allocator per
// goroutine.
type Allocator interface {
	Alloc(size, align uintptr) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer, size, align uintptr)
}

// ErrArenaFull is returned by Arena.Alloc when the arena's fixed capacity is
// exhausted.
var ErrArenaFull = errors.New("arena: out of capacity")

// HeapAllocator satisfies Allocator with garbage-collected storage.
//
// Each allocation is backed by a distinct Go heap object that stays
// reachable until Free is called for its pointer, so a block handed to the
// caller remains valid regardless of decoder lifetime. Live reports the
// number of outstanding allocations, which makes leak checks trivial.
type HeapAllocator struct {
	live map[unsafe.Pointer][]uint64
}

// NewHeapAllocator returns an empty heap-backed allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: make(map[unsafe.Pointer][]uint64)}
}

// Alloc returns zeroed storage of at least size bytes.
// Storage is backed by a []uint64 so alignment is always at least 8, which
// covers every parameter block layout.
func (h *HeapAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align > 8 {
		return nil, fmt.Errorf("heap allocator: unsupported alignment %d", align)
	}
	words := (size + 7) / 8
	if words == 0 {
		words = 1
	}
	buf := make([]uint64, words)
	ptr := unsafe.Pointer(&buf[0])
	h.live[ptr] = buf
	return ptr, nil
}

// Free releases the allocation at ptr. Freeing a pointer that is not live is
// a no-op.
func (h *HeapAllocator) Free(ptr unsafe.Pointer, size, align uintptr) {
	delete(h.live, ptr)
}

// Live returns the number of allocations that have not been freed.
func (h *HeapAllocator) Live() int {
	return len(h.live)
}

// Arena satisfies Allocator with a fixed-capacity bump allocator.
//
// Arena is intended for static-memory environments: all storage comes from
// one preallocated buffer and Alloc never touches the Go heap. Free only
// adjusts the live-allocation count; storage is reclaimed in bulk by Reset.
// Blocks handed out before Reset must not be used after it.
type Arena struct {
	buf  []byte
	off  uintptr
	live int
}

// NewArena returns an arena with the given capacity in bytes.
func NewArena(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc returns zeroed storage of size bytes aligned to align, or
// ErrArenaFull when the remaining capacity cannot satisfy the request.
func (a *Arena) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	if align == 0 {
		align = 1
	}
	if len(a.buf) == 0 {
		return nil, ErrArenaFull
	}
	base := uintptr(unsafe.Pointer(&a.buf[0]))
	off := ((base + a.off + align - 1) &^ (align - 1)) - base
	if size == 0 {
		size = 1
	}
	if off+size > uintptr(len(a.buf)) {
		return nil, ErrArenaFull
	}
	// The region may have been used before a Reset; the Allocator contract
	// promises zeroed storage.
	clear(a.buf[off : off+size])
	a.off = off + size
	a.live++
	return unsafe.Pointer(&a.buf[off]), nil
}

// Free releases one allocation. The storage itself is only reclaimed by
// Reset.
func (a *Arena) Free(ptr unsafe.Pointer, size, align uintptr) {
	if a.live > 0 {
		a.live--
	}
}

// Live returns the number of allocations that have not been freed.
func (a *Arena) Live() int {
	return a.live
}

// Reset discards every allocation and makes the full capacity available
// again. Pointers handed out before Reset are invalidated.
func (a *Arena) Reset() {
	a.off = 0
	a.live = 0
}
