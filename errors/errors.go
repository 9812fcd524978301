package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the decode failure
type Kind string

const (
	// KindUnsupportedOperator marks an operator code outside the known set,
	// or one that must never appear in a serialized model.
	KindUnsupportedOperator Kind = "unsupported_operator"
	// KindMissingOptions marks a required options record or options field
	// that is absent from the serialized operator.
	KindMissingOptions Kind = "missing_options"
	// KindInvalidEnum marks a closed-enumeration field holding an
	// unrecognized code.
	KindInvalidEnum Kind = "invalid_enum"
	// KindCapacityExceeded marks a variable-length field longer than its
	// fixed-capacity destination.
	KindCapacityExceeded Kind = "capacity_exceeded"
	// KindAllocation marks an allocator that could not supply storage.
	KindAllocation Kind = "allocation"
)

// Error is the structured error type used throughout the decoder
type Error struct {
	Kind   Kind
	Op     string // builtin operator name, when known
	Field  string // schema field involved, when known
	Value  any    // offending value, when one exists
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.Op != "" || e.Field != "" {
		b.WriteString(" at ")
		if e.Op != "" {
			b.WriteString(e.Op)
		}
		if e.Field != "" {
			if e.Op != "" {
				b.WriteByte('.')
			}
			b.WriteString(e.Field)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if e.Kind != t.Kind {
			return false
		}
		return t.Op == "" || e.Op == t.Op
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(kind Kind) *Builder {
	return &Builder{err: Error{Kind: kind}}
}

// Op sets the builtin operator name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Field sets the schema field name
func (b *Builder) Field(field string) *Builder {
	b.err.Field = field
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedOperator creates an error for an operator code the decoder does
// not recognize or must reject
func UnsupportedOperator(op string) *Error {
	return &Error{
		Kind:   KindUnsupportedOperator,
		Op:     op,
		Detail: "operator is not supported",
	}
}

// MissingOptions creates an error for an operator whose required options
// record is absent
func MissingOptions(op string) *Error {
	return &Error{
		Kind:   KindMissingOptions,
		Op:     op,
		Detail: "no valid builtin options exist",
	}
}

// MissingField creates an error for a required options field that is absent
func MissingField(op, field string) *Error {
	return &Error{
		Kind:   KindMissingOptions,
		Op:     op,
		Field:  field,
		Detail: "input array not provided",
	}
}

// InvalidEnum creates an error for a closed-enum field holding an
// unrecognized code
func InvalidEnum(op, field string, value any) *Error {
	return &Error{
		Kind:   KindInvalidEnum,
		Op:     op,
		Field:  field,
		Value:  value,
		Detail: fmt.Sprintf("unrecognized code %v", value),
	}
}

// CapacityExceeded creates an error for a variable-length field longer than
// its fixed-capacity destination
func CapacityExceeded(op, field string, length, capacity int) *Error {
	return &Error{
		Kind:   KindCapacityExceeded,
		Op:     op,
		Field:  field,
		Value:  length,
		Detail: fmt.Sprintf("length %d exceeds capacity %d", length, capacity),
	}
}

// AllocationFailed creates an error for an allocator that could not supply
// storage
func AllocationFailed(op string, size, align uintptr, cause error) *Error {
	return &Error{
		Kind:   KindAllocation,
		Op:     op,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
		Cause:  cause,
	}
}
