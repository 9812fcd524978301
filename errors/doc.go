// Package errors provides structured error types for the flat-runtime
// decoder.
//
// Errors are categorized by Kind; the Error type carries the operator name,
// the schema field involved, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.KindInvalidEnum).
//		Op("CONV_2D").
//		Field("padding").
//		Value(v).
//		Detail("unrecognized padding code").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedOperator("DELEGATE")
//	err := errors.CapacityExceeded("RESHAPE", "new_shape", 10, 8)
//
// All errors implement the standard error interface and support errors.Is,
// which matches on Kind (and on Op when the target sets one).
package errors
