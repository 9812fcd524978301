package schema

import (
	"strings"
	"testing"
)

func TestBuiltinOperator_String(t *testing.T) {
	tests := []struct {
		op   BuiltinOperator
		want string
	}{
		{BuiltinOperatorAdd, "ADD"},
		{BuiltinOperatorConv2D, "CONV_2D"},
		{BuiltinOperatorUnidirectionalSequenceLSTM, "UNIDIRECTIONAL_SEQUENCE_LSTM"},
		{BuiltinOperatorPlaceholder, "PLACEHOLDER_FOR_GREATER_OP_CODES"},
		{BuiltinOperatorBroadcastTo, "BROADCAST_TO"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int32(tt.op), got, tt.want)
		}
	}

	if got := BuiltinOperator(9999).String(); !strings.Contains(got, "9999") {
		t.Errorf("unknown code rendered as %q", got)
	}
}

func TestBuiltinOperators_CompleteAndOrdered(t *testing.T) {
	ops := BuiltinOperators()
	if len(ops) != 131 {
		t.Fatalf("expected 131 declared codes, got %d", len(ops))
	}
	for i, op := range ops {
		if int32(op) != int32(i) {
			t.Fatalf("code gap at index %d: got %d", i, int32(op))
		}
		if strings.HasPrefix(op.String(), "BuiltinOperator(") {
			t.Errorf("code %d has no name", int32(op))
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		val  interface{ String() string }
		want string
	}{
		{TensorTypeFloat32, "FLOAT32"},
		{TensorTypeComplex128, "COMPLEX128"},
		{TensorType(99), "TensorType(99)"},
		{ActivationFunctionTypeRelu6, "RELU6"},
		{ActivationFunctionTypeSignBit, "SIGN_BIT"},
		{PaddingSame, "SAME"},
		{PaddingValid, "VALID"},
		{LSHProjectionTypeDense, "DENSE"},
		{CombinerTypeSqrtn, "SQRTN"},
		{FullyConnectedOptionsWeightsFormatShuffled4x16Int8, "SHUFFLED4x16INT8"},
		{LSTMKernelTypeBasic, "BASIC"},
		{MirrorPadModeSymmetric, "SYMMETRIC"},
	}
	for _, tt := range tests {
		if got := tt.val.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
