// Package flatruntime provides the parameter-decoding core of a flat-model
// inference runtime.
//
// A serialized model is a graph of operators. Each operator carries a builtin
// operator code and an optional, schema-typed options record whose concrete
// field layout depends on the code. Before a kernel can execute an operator,
// those options must be decoded into a fixed-layout parameter block. This
// library performs that decoding.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	flatruntime/     Root package with the core Allocator interface and the
//	                 heap and fixed-arena allocator implementations
//	├── schema/      Borrowed views of the serialized model schema: builtin
//	                 operator codes, schema-level enums, and per-operator
//	                 options records
//	├── opdata/      Decoding of operator options into typed parameter
//	                 blocks, including the per-operator parse functions and
//	                 the ParseOpData dispatcher
//	└── errors/      Structured error types for decode failures
//
// # Quick Start
//
// Decode the parameters of one operator:
//
//	alloc := flatruntime.NewHeapAllocator()
//
//	params, err := opdata.ParseOpData(op, schema.BuiltinOperatorConv2D, alloc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv := params.(*opdata.Conv2DParams)
//	fmt.Println(conv.StrideWidth, conv.StrideHeight)
//
// Operators without configurable parameters (most elementwise math ops)
// decode to a nil block; that absence is part of the contract, not an error.
//
// # Memory Model
//
// Parameter blocks are allocated through a caller-supplied Allocator, so the
// same decoding code serves both general heap-backed environments and
// embedded environments where all storage comes from a preallocated arena.
// Ownership of a block transfers to the caller only when decoding succeeds;
// on any failure the block is returned to the allocator before the error is
// reported. Callers never observe a partially-initialized block.
//
// # Static Builds
//
// Integrators that only need a fixed operator set can call the per-operator
// parse functions (opdata.ParseConv2D, opdata.ParseAdd, ...) directly and
// avoid linking the ParseOpData dispatcher; the linker discards the unused
// decoders. The per-operator functions share no state with the dispatcher.
//
// # Thread Safety
//
// Decoding is a pure function of its inputs and holds no global mutable
// state; concurrent calls are safe as long as each call either uses its own
// Allocator or the shared Allocator is itself safe for concurrent use. The
// allocators in this package are not synchronized.
package flatruntime
