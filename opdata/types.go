package opdata

import "fmt"

// TensorType is the runtime element type of a tensor. Its numbering is
// independent of the serialized schema's: the runtime reserves 0 for "no
// type", so the converter remaps rather than casts.
type TensorType int32

const (
	NoType     TensorType = 0
	Float32    TensorType = 1
	Int32      TensorType = 2
	UInt8      TensorType = 3
	Int64      TensorType = 4
	String     TensorType = 5
	Bool       TensorType = 6
	Int16      TensorType = 7
	Complex64  TensorType = 8
	Int8       TensorType = 9
	Float16    TensorType = 10
	Float64    TensorType = 11
	Complex128 TensorType = 12
	UInt64     TensorType = 13
)

func (t TensorType) String() string {
	switch t {
	case NoType:
		return "NOTYPE"
	case Float32:
		return "FLOAT32"
	case Int32:
		return "INT32"
	case UInt8:
		return "UINT8"
	case Int64:
		return "INT64"
	case String:
		return "STRING"
	case Bool:
		return "BOOL"
	case Int16:
		return "INT16"
	case Complex64:
		return "COMPLEX64"
	case Int8:
		return "INT8"
	case Float16:
		return "FLOAT16"
	case Float64:
		return "FLOAT64"
	case Complex128:
		return "COMPLEX128"
	case UInt64:
		return "UINT64"
	}
	return fmt.Sprintf("TensorType(%d)", int32(t))
}

// Activation is the runtime fused activation applied by a kernel.
type Activation int32

const (
	ActNone      Activation = 0
	ActRelu      Activation = 1
	ActReluN1To1 Activation = 2
	ActRelu6     Activation = 3
	ActTanh      Activation = 4
	ActSignBit   Activation = 5
)

func (a Activation) String() string {
	switch a {
	case ActNone:
		return "NONE"
	case ActRelu:
		return "RELU"
	case ActReluN1To1:
		return "RELU_N1_TO_1"
	case ActRelu6:
		return "RELU6"
	case ActTanh:
		return "TANH"
	case ActSignBit:
		return "SIGN_BIT"
	}
	return fmt.Sprintf("Activation(%d)", int32(a))
}

// PaddingMode is the runtime padding scheme of windowed kernels. Unlike the
// schema enumeration it has an explicit unknown state, which is what
// unrecognized schema values resolve to.
type PaddingMode int32

const (
	PaddingUnknown PaddingMode = 0
	PaddingSame    PaddingMode = 1
	PaddingValid   PaddingMode = 2
)

func (p PaddingMode) String() string {
	switch p {
	case PaddingUnknown:
		return "UNKNOWN"
	case PaddingSame:
		return "SAME"
	case PaddingValid:
		return "VALID"
	}
	return fmt.Sprintf("PaddingMode(%d)", int32(p))
}

// MirrorPadding selects whether mirrored padding repeats the border value.
type MirrorPadding int32

const (
	MirrorPaddingUnknown   MirrorPadding = 0
	MirrorPaddingReflect   MirrorPadding = 1
	MirrorPaddingSymmetric MirrorPadding = 2
)

func (m MirrorPadding) String() string {
	switch m {
	case MirrorPaddingUnknown:
		return "UNKNOWN"
	case MirrorPaddingReflect:
		return "REFLECT"
	case MirrorPaddingSymmetric:
		return "SYMMETRIC"
	}
	return fmt.Sprintf("MirrorPadding(%d)", int32(m))
}

// FullyConnectedWeightsFormat is the runtime weights layout of the
// fully-connected kernel.
type FullyConnectedWeightsFormat int32

const (
	FullyConnectedWeightsDefault          FullyConnectedWeightsFormat = 0
	FullyConnectedWeightsShuffled4x16Int8 FullyConnectedWeightsFormat = 1
)

// LSHProjection selects the LSH projection computation variant.
type LSHProjection int32

const (
	LSHProjectionUnknown LSHProjection = 0
	LSHProjectionSparse  LSHProjection = 1
	LSHProjectionDense   LSHProjection = 2
)

// CombinerKind selects how sparse embedding lookups are combined.
type CombinerKind int32

const (
	CombinerSum   CombinerKind = 0
	CombinerMean  CombinerKind = 1
	CombinerSqrtn CombinerKind = 2
)

// LSTMKernel selects between the incompatible LSTM kernel implementations.
type LSTMKernel int32

const (
	LSTMKernelFull  LSTMKernel = 0
	LSTMKernelBasic LSTMKernel = 1
)
