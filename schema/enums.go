package schema

import "fmt"

// TensorType is the schema-level element type of a tensor.
type TensorType int32

const (
	TensorTypeFloat32    TensorType = 0
	TensorTypeFloat16    TensorType = 1
	TensorTypeInt32      TensorType = 2
	TensorTypeUInt8      TensorType = 3
	TensorTypeInt64      TensorType = 4
	TensorTypeString     TensorType = 5
	TensorTypeBool       TensorType = 6
	TensorTypeInt16      TensorType = 7
	TensorTypeComplex64  TensorType = 8
	TensorTypeInt8       TensorType = 9
	TensorTypeFloat64    TensorType = 10
	TensorTypeComplex128 TensorType = 11
	TensorTypeUInt64     TensorType = 12
)

func (t TensorType) String() string {
	switch t {
	case TensorTypeFloat32:
		return "FLOAT32"
	case TensorTypeFloat16:
		return "FLOAT16"
	case TensorTypeInt32:
		return "INT32"
	case TensorTypeUInt8:
		return "UINT8"
	case TensorTypeInt64:
		return "INT64"
	case TensorTypeString:
		return "STRING"
	case TensorTypeBool:
		return "BOOL"
	case TensorTypeInt16:
		return "INT16"
	case TensorTypeComplex64:
		return "COMPLEX64"
	case TensorTypeInt8:
		return "INT8"
	case TensorTypeFloat64:
		return "FLOAT64"
	case TensorTypeComplex128:
		return "COMPLEX128"
	case TensorTypeUInt64:
		return "UINT64"
	}
	return fmt.Sprintf("TensorType(%d)", int32(t))
}

// ActivationFunctionType is the fused activation recorded in an operator's
// options.
type ActivationFunctionType int32

const (
	ActivationFunctionTypeNone      ActivationFunctionType = 0
	ActivationFunctionTypeRelu      ActivationFunctionType = 1
	ActivationFunctionTypeReluN1To1 ActivationFunctionType = 2
	ActivationFunctionTypeRelu6     ActivationFunctionType = 3
	ActivationFunctionTypeTanh      ActivationFunctionType = 4
	ActivationFunctionTypeSignBit   ActivationFunctionType = 5
)

func (a ActivationFunctionType) String() string {
	switch a {
	case ActivationFunctionTypeNone:
		return "NONE"
	case ActivationFunctionTypeRelu:
		return "RELU"
	case ActivationFunctionTypeReluN1To1:
		return "RELU_N1_TO_1"
	case ActivationFunctionTypeRelu6:
		return "RELU6"
	case ActivationFunctionTypeTanh:
		return "TANH"
	case ActivationFunctionTypeSignBit:
		return "SIGN_BIT"
	}
	return fmt.Sprintf("ActivationFunctionType(%d)", int32(a))
}

// Padding is the schema-level padding mode of windowed operators.
type Padding int32

const (
	PaddingSame  Padding = 0
	PaddingValid Padding = 1
)

func (p Padding) String() string {
	switch p {
	case PaddingSame:
		return "SAME"
	case PaddingValid:
		return "VALID"
	}
	return fmt.Sprintf("Padding(%d)", int32(p))
}

// LSHProjectionType selects the LSH projection computation variant.
type LSHProjectionType int32

const (
	LSHProjectionTypeUnknown LSHProjectionType = 0
	LSHProjectionTypeSparse  LSHProjectionType = 1
	LSHProjectionTypeDense   LSHProjectionType = 2
)

func (t LSHProjectionType) String() string {
	switch t {
	case LSHProjectionTypeUnknown:
		return "UNKNOWN"
	case LSHProjectionTypeSparse:
		return "SPARSE"
	case LSHProjectionTypeDense:
		return "DENSE"
	}
	return fmt.Sprintf("LSHProjectionType(%d)", int32(t))
}

// CombinerType selects how sparse embedding lookups are combined.
type CombinerType int32

const (
	CombinerTypeSum   CombinerType = 0
	CombinerTypeMean  CombinerType = 1
	CombinerTypeSqrtn CombinerType = 2
)

func (c CombinerType) String() string {
	switch c {
	case CombinerTypeSum:
		return "SUM"
	case CombinerTypeMean:
		return "MEAN"
	case CombinerTypeSqrtn:
		return "SQRTN"
	}
	return fmt.Sprintf("CombinerType(%d)", int32(c))
}

// FullyConnectedOptionsWeightsFormat selects the fully-connected weights
// memory layout. The decoder validates this against the closed set even
// though the rest of the fully-connected options follow the lenient policy.
type FullyConnectedOptionsWeightsFormat int32

const (
	FullyConnectedOptionsWeightsFormatDefault          FullyConnectedOptionsWeightsFormat = 0
	FullyConnectedOptionsWeightsFormatShuffled4x16Int8 FullyConnectedOptionsWeightsFormat = 1
)

func (f FullyConnectedOptionsWeightsFormat) String() string {
	switch f {
	case FullyConnectedOptionsWeightsFormatDefault:
		return "DEFAULT"
	case FullyConnectedOptionsWeightsFormatShuffled4x16Int8:
		return "SHUFFLED4x16INT8"
	}
	return fmt.Sprintf("FullyConnectedOptionsWeightsFormat(%d)", int32(f))
}

// LSTMKernelType selects between the incompatible LSTM kernel
// implementations. Like the weights format, it is validated against the
// closed set.
type LSTMKernelType int32

const (
	LSTMKernelTypeFull  LSTMKernelType = 0
	LSTMKernelTypeBasic LSTMKernelType = 1
)

func (k LSTMKernelType) String() string {
	switch k {
	case LSTMKernelTypeFull:
		return "FULL"
	case LSTMKernelTypeBasic:
		return "BASIC"
	}
	return fmt.Sprintf("LSTMKernelType(%d)", int32(k))
}

// MirrorPadMode selects whether mirrored padding includes the border.
type MirrorPadMode int32

const (
	MirrorPadModeReflect   MirrorPadMode = 0
	MirrorPadModeSymmetric MirrorPadMode = 1
)

func (m MirrorPadMode) String() string {
	switch m {
	case MirrorPadModeReflect:
		return "REFLECT"
	case MirrorPadModeSymmetric:
		return "SYMMETRIC"
	}
	return fmt.Sprintf("MirrorPadMode(%d)", int32(m))
}
