package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Kind:   KindInvalidEnum,
				Op:     "CONV_2D",
				Field:  "padding",
				Detail: "unrecognized code 9",
			},
			contains: []string{"invalid_enum", "CONV_2D.padding", "unrecognized code 9"},
		},
		{
			name: "minimal error",
			err: &Error{
				Kind: KindCapacityExceeded,
			},
			contains: []string{"capacity_exceeded"},
		},
		{
			name: "error with cause",
			err: &Error{
				Kind:   KindAllocation,
				Op:     "RESHAPE",
				Detail: "failed to allocate 40 bytes",
				Cause:  errors.New("arena: out of capacity"),
			},
			contains: []string{"allocation", "RESHAPE", "caused by", "arena: out of capacity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{Kind: KindAllocation, Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the cause")
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := InvalidEnum("FULLY_CONNECTED", "weights_format", 7)

	if !errors.Is(err, &Error{Kind: KindInvalidEnum}) {
		t.Error("expected match on Kind alone")
	}
	if !errors.Is(err, &Error{Kind: KindInvalidEnum, Op: "FULLY_CONNECTED"}) {
		t.Error("expected match on Kind and Op")
	}
	if errors.Is(err, &Error{Kind: KindInvalidEnum, Op: "CONV_2D"}) {
		t.Error("unexpected match on different Op")
	}
	if errors.Is(err, &Error{Kind: KindMissingOptions}) {
		t.Error("unexpected match on different Kind")
	}
}

func TestBuilder(t *testing.T) {
	err := New(KindCapacityExceeded).
		Op("SQUEEZE").
		Field("squeeze_dims").
		Value(10).
		Detail("length %d exceeds capacity %d", 10, 8).
		Build()

	if err.Kind != KindCapacityExceeded {
		t.Errorf("wrong kind: %s", err.Kind)
	}
	if err.Op != "SQUEEZE" || err.Field != "squeeze_dims" {
		t.Errorf("wrong context: %s.%s", err.Op, err.Field)
	}
	if err.Value != 10 {
		t.Errorf("wrong value: %v", err.Value)
	}
	if err.Detail != "length 10 exceeds capacity 8" {
		t.Errorf("wrong detail: %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"unsupported operator", UnsupportedOperator("DELEGATE"), KindUnsupportedOperator},
		{"missing options", MissingOptions("LSTM"), KindMissingOptions},
		{"missing field", MissingField("reshape", "new_shape"), KindMissingOptions},
		{"invalid enum", InvalidEnum("CAST", "in_data_type", 99), KindInvalidEnum},
		{"capacity exceeded", CapacityExceeded("squeeze", "squeeze_dims", 10, 8), KindCapacityExceeded},
		{"allocation failed", AllocationFailed("ADD", 16, 8, nil), KindAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, tt.err.Kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
