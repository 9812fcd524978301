package opdata

import (
	"unsafe"

	flatruntime "github.com/flatml/flat-runtime"
	"github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

// guard owns one allocation of T until the decoder either hands it to the
// caller or abandons it. The parse functions pair every acquire with exactly
// one of release or discard, usually as
//
//	g, err := acquire[FooParams](alloc, op)
//	if err != nil { return nil, err }
//	defer g.discard()
//	...
//	return g.release(), nil
//
// so the allocation is returned to the allocator on every error path and
// kept alive only on the success path.
type guard[T any] struct {
	alloc flatruntime.Allocator
	ptr   *T
	size  uintptr
	align uintptr
}

// acquire obtains zeroed storage for one T from alloc. Failures are reported
// as allocation errors tagged with the operator being decoded.
func acquire[T any](alloc flatruntime.Allocator, op schema.BuiltinOperator) (*guard[T], error) {
	var zero T
	size := unsafe.Sizeof(zero)
	align := unsafe.Alignof(zero)

	raw, err := alloc.Alloc(size, align)
	if err != nil {
		return nil, errors.AllocationFailed(op.String(), size, align, err)
	}
	return &guard[T]{alloc: alloc, ptr: (*T)(raw), size: size, align: align}, nil
}

// get returns the guarded storage for the decoder to populate.
func (g *guard[T]) get() *T {
	return g.ptr
}

// release disarms the guard and transfers ownership of the storage to the
// caller.
func (g *guard[T]) release() *T {
	p := g.ptr
	g.ptr = nil
	return p
}

// discard frees the storage unless release already transferred it. Safe to
// call more than once.
func (g *guard[T]) discard() {
	if g.ptr == nil {
		return
	}
	g.alloc.Free(unsafe.Pointer(g.ptr), g.size, g.align)
	g.ptr = nil
}
