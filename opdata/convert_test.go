package opdata

import (
	"errors"
	"testing"

	ferrors "github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

func TestConvertTensorType(t *testing.T) {
	tests := []struct {
		in   schema.TensorType
		want TensorType
	}{
		{schema.TensorTypeFloat32, Float32},
		{schema.TensorTypeFloat16, Float16},
		{schema.TensorTypeInt32, Int32},
		{schema.TensorTypeUInt8, UInt8},
		{schema.TensorTypeInt64, Int64},
		{schema.TensorTypeString, String},
		{schema.TensorTypeBool, Bool},
		{schema.TensorTypeInt16, Int16},
		{schema.TensorTypeComplex64, Complex64},
		{schema.TensorTypeInt8, Int8},
		{schema.TensorTypeFloat64, Float64},
		{schema.TensorTypeComplex128, Complex128},
		{schema.TensorTypeUInt64, UInt64},
	}
	for _, tt := range tests {
		got, err := ConvertTensorType(tt.in, schema.BuiltinOperatorCast, "in_data_type")
		if err != nil {
			t.Fatalf("ConvertTensorType(%v) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ConvertTensorType(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertTensorType_UnknownValueFails(t *testing.T) {
	got, err := ConvertTensorType(schema.TensorType(42), schema.BuiltinOperatorShape, "out_type")
	if err == nil {
		t.Fatal("expected error for unknown tensor type")
	}
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum}) {
		t.Errorf("wrong error kind: %v", err)
	}
	if got != NoType {
		t.Errorf("failed conversion returned %v, want NoType", got)
	}
}

func TestConvertActivation(t *testing.T) {
	tests := []struct {
		in   schema.ActivationFunctionType
		want Activation
	}{
		{schema.ActivationFunctionTypeNone, ActNone},
		{schema.ActivationFunctionTypeRelu, ActRelu},
		{schema.ActivationFunctionTypeReluN1To1, ActReluN1To1},
		{schema.ActivationFunctionTypeRelu6, ActRelu6},
		{schema.ActivationFunctionTypeTanh, ActTanh},
		{schema.ActivationFunctionTypeSignBit, ActSignBit},
		// Unknown values degrade to none rather than failing the load.
		{schema.ActivationFunctionType(77), ActNone},
	}
	for _, tt := range tests {
		if got := convertActivation(tt.in); got != tt.want {
			t.Errorf("convertActivation(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertPadding(t *testing.T) {
	if got := convertPadding(schema.PaddingSame); got != PaddingSame {
		t.Errorf("SAME converted to %v", got)
	}
	if got := convertPadding(schema.PaddingValid); got != PaddingValid {
		t.Errorf("VALID converted to %v", got)
	}
	if got := convertPadding(schema.Padding(9)); got != PaddingUnknown {
		t.Errorf("unknown padding converted to %v, want PaddingUnknown", got)
	}
}

func TestConvertMirrorPadding(t *testing.T) {
	if got := convertMirrorPadding(schema.MirrorPadModeReflect); got != MirrorPaddingReflect {
		t.Errorf("REFLECT converted to %v", got)
	}
	if got := convertMirrorPadding(schema.MirrorPadModeSymmetric); got != MirrorPaddingSymmetric {
		t.Errorf("SYMMETRIC converted to %v", got)
	}
	if got := convertMirrorPadding(schema.MirrorPadMode(5)); got != MirrorPaddingUnknown {
		t.Errorf("unknown mode converted to %v, want MirrorPaddingUnknown", got)
	}
}

func TestConvertLSHProjection(t *testing.T) {
	if got := convertLSHProjection(schema.LSHProjectionTypeSparse); got != LSHProjectionSparse {
		t.Errorf("SPARSE converted to %v", got)
	}
	if got := convertLSHProjection(schema.LSHProjectionTypeDense); got != LSHProjectionDense {
		t.Errorf("DENSE converted to %v", got)
	}
	if got := convertLSHProjection(schema.LSHProjectionType(8)); got != LSHProjectionUnknown {
		t.Errorf("unknown type converted to %v, want LSHProjectionUnknown", got)
	}
}

func TestConvertCombiner(t *testing.T) {
	if got := convertCombiner(schema.CombinerTypeMean); got != CombinerMean {
		t.Errorf("MEAN converted to %v", got)
	}
	if got := convertCombiner(schema.CombinerTypeSqrtn); got != CombinerSqrtn {
		t.Errorf("SQRTN converted to %v", got)
	}
	if got := convertCombiner(schema.CombinerType(6)); got != CombinerSum {
		t.Errorf("unknown combiner converted to %v, want CombinerSum", got)
	}
}

func TestConvertWeightsFormat_Strict(t *testing.T) {
	got, err := convertWeightsFormat(schema.FullyConnectedOptionsWeightsFormatShuffled4x16Int8, schema.BuiltinOperatorFullyConnected)
	if err != nil || got != FullyConnectedWeightsShuffled4x16Int8 {
		t.Errorf("shuffled format: got %v, %v", got, err)
	}

	_, err = convertWeightsFormat(schema.FullyConnectedOptionsWeightsFormat(3), schema.BuiltinOperatorFullyConnected)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum}) {
		t.Errorf("unknown format: want invalid_enum, got %v", err)
	}
}

func TestConvertLSTMKernel_Strict(t *testing.T) {
	got, err := convertLSTMKernel(schema.LSTMKernelTypeBasic, schema.BuiltinOperatorLSTM)
	if err != nil || got != LSTMKernelBasic {
		t.Errorf("basic kernel: got %v, %v", got, err)
	}

	_, err = convertLSTMKernel(schema.LSTMKernelType(2), schema.BuiltinOperatorLSTM)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum}) {
		t.Errorf("unknown kernel: want invalid_enum, got %v", err)
	}
}
