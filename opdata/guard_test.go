package opdata

import (
	"errors"
	"testing"
	"unsafe"

	flatruntime "github.com/flatml/flat-runtime"
	ferrors "github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

var errAllocRefused = errors.New("alloc refused")

// countingAllocator wraps a heap allocator and records traffic so tests can
// assert alloc/free balance. Setting failAt to n makes the nth Alloc call
// fail.
type countingAllocator struct {
	heap     *flatruntime.HeapAllocator
	attempts int
	allocs   int
	frees    int
	failAt   int
}

func newCountingAllocator() *countingAllocator {
	return &countingAllocator{heap: flatruntime.NewHeapAllocator()}
}

func (a *countingAllocator) Alloc(size, align uintptr) (unsafe.Pointer, error) {
	a.attempts++
	if a.failAt > 0 && a.attempts == a.failAt {
		return nil, errAllocRefused
	}
	ptr, err := a.heap.Alloc(size, align)
	if err != nil {
		return nil, err
	}
	a.allocs++
	return ptr, nil
}

func (a *countingAllocator) Free(ptr unsafe.Pointer, size, align uintptr) {
	a.frees++
	a.heap.Free(ptr, size, align)
}

func (a *countingAllocator) outstanding() int {
	return a.heap.Live()
}

func TestGuard_ReleaseTransfersOwnership(t *testing.T) {
	alloc := newCountingAllocator()

	g, err := acquire[Conv2DParams](alloc, schema.BuiltinOperatorConv2D)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	g.get().StrideWidth = 2

	p := g.release()
	g.discard() // the usual deferred discard, must be a no-op now

	if p == nil || p.StrideWidth != 2 {
		t.Fatalf("released block %+v", p)
	}
	if alloc.frees != 0 {
		t.Errorf("released block was freed %d times", alloc.frees)
	}
	if alloc.outstanding() != 1 {
		t.Errorf("outstanding = %d, want 1", alloc.outstanding())
	}
}

func TestGuard_DiscardFreesOnce(t *testing.T) {
	alloc := newCountingAllocator()

	g, err := acquire[SoftmaxParams](alloc, schema.BuiltinOperatorSoftmax)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	g.discard()
	g.discard()

	if alloc.frees != 1 {
		t.Errorf("frees = %d, want 1", alloc.frees)
	}
	if alloc.outstanding() != 0 {
		t.Errorf("outstanding = %d, want 0", alloc.outstanding())
	}
}

func TestGuard_StorageIsZeroed(t *testing.T) {
	alloc := newCountingAllocator()

	g, err := acquire[LSTMParams](alloc, schema.BuiltinOperatorLSTM)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer g.discard()

	var zero LSTMParams
	if *g.get() != zero {
		t.Errorf("fresh block not zeroed: %+v", *g.get())
	}
}

func TestGuard_AllocFailureTaggedWithOperator(t *testing.T) {
	alloc := newCountingAllocator()
	alloc.failAt = 1

	_, err := acquire[AddParams](alloc, schema.BuiltinOperatorAdd)
	if err == nil {
		t.Fatal("expected allocation error")
	}
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindAllocation, Op: "ADD"}) {
		t.Errorf("wrong error identity: %v", err)
	}
	if !errors.Is(err, errAllocRefused) {
		t.Errorf("cause not preserved: %v", err)
	}
	if alloc.frees != 0 || alloc.outstanding() != 0 {
		t.Errorf("failed acquire left traffic: frees=%d outstanding=%d", alloc.frees, alloc.outstanding())
	}
}
