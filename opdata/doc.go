// Package opdata decodes serialized operator options into runtime parameter
// blocks.
//
// # Overview
//
// A loaded model hands each graph node to ParseOpData together with the
// node's builtin operator code and an allocator. The decoder translates the
// schema-level options record into a flat, pointer-free parameter block that
// kernels consume directly:
//
//	params, err := opdata.ParseOpData(op, code, alloc)
//
// Operators without options (ABS, FLOOR, comparisons, and so on) decode to a
// nil block. Every per-operator decoder is also exported on its own
// (ParseConv2D, ParseSoftmax, ...) so builds that register a subset of
// operators can link only the decoders they use; RegistrationFor exposes the
// full catalogue with each operator's decode policy.
//
// # Decode policies
//
// Most decoders are lenient: a missing options record produces a zeroed
// parameter block, because older converters legitimately omitted records
// whose fields were all defaults. ParseLSTM alone is strict, since its
// kernel type selects between incompatible implementations. The DELEGATE
// and placeholder codes are rejected outright.
//
// Enum translation follows the same split. Element types, the
// fully-connected weights format, and the LSTM kernel type fail the decode
// on unrecognized values; fused activations, padding, projection, combiner,
// and mirror-pad modes degrade to a safe default instead.
//
// # Memory
//
// All parameter storage comes from the caller's Allocator. A successful
// decode transfers ownership of exactly one allocation to the caller; a
// failed decode has already freed whatever it obtained, so alloc/free
// balance holds on every path.
package opdata
