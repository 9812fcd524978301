package opdata

import (
	"github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

// ConvertTensorType remaps a schema element type to its runtime value. The
// two numberings differ because the runtime reserves 0 for NoType, so this
// is a translation table, not a cast. Unrecognized schema values are an
// error: silently defaulting an element type would corrupt every kernel
// downstream.
func ConvertTensorType(t schema.TensorType, op schema.BuiltinOperator, field string) (TensorType, error) {
	switch t {
	case schema.TensorTypeFloat32:
		return Float32, nil
	case schema.TensorTypeFloat16:
		return Float16, nil
	case schema.TensorTypeInt32:
		return Int32, nil
	case schema.TensorTypeUInt8:
		return UInt8, nil
	case schema.TensorTypeInt64:
		return Int64, nil
	case schema.TensorTypeString:
		return String, nil
	case schema.TensorTypeBool:
		return Bool, nil
	case schema.TensorTypeInt16:
		return Int16, nil
	case schema.TensorTypeComplex64:
		return Complex64, nil
	case schema.TensorTypeInt8:
		return Int8, nil
	case schema.TensorTypeFloat64:
		return Float64, nil
	case schema.TensorTypeComplex128:
		return Complex128, nil
	case schema.TensorTypeUInt64:
		return UInt64, nil
	}
	return NoType, errors.InvalidEnum(op.String(), field, int32(t))
}

// convertActivation is lenient: models written by newer toolchains may carry
// activations this runtime predates, and an unknown fused activation can
// safely degrade to none.
func convertActivation(a schema.ActivationFunctionType) Activation {
	switch a {
	case schema.ActivationFunctionTypeRelu:
		return ActRelu
	case schema.ActivationFunctionTypeReluN1To1:
		return ActReluN1To1
	case schema.ActivationFunctionTypeRelu6:
		return ActRelu6
	case schema.ActivationFunctionTypeTanh:
		return ActTanh
	case schema.ActivationFunctionTypeSignBit:
		return ActSignBit
	}
	return ActNone
}

func convertPadding(p schema.Padding) PaddingMode {
	switch p {
	case schema.PaddingSame:
		return PaddingSame
	case schema.PaddingValid:
		return PaddingValid
	}
	return PaddingUnknown
}

func convertMirrorPadding(m schema.MirrorPadMode) MirrorPadding {
	switch m {
	case schema.MirrorPadModeReflect:
		return MirrorPaddingReflect
	case schema.MirrorPadModeSymmetric:
		return MirrorPaddingSymmetric
	}
	return MirrorPaddingUnknown
}

func convertLSHProjection(t schema.LSHProjectionType) LSHProjection {
	switch t {
	case schema.LSHProjectionTypeSparse:
		return LSHProjectionSparse
	case schema.LSHProjectionTypeDense:
		return LSHProjectionDense
	}
	return LSHProjectionUnknown
}

func convertCombiner(c schema.CombinerType) CombinerKind {
	switch c {
	case schema.CombinerTypeMean:
		return CombinerMean
	case schema.CombinerTypeSqrtn:
		return CombinerSqrtn
	}
	return CombinerSum
}

// convertWeightsFormat is strict: the two layouts are bit-incompatible, so
// an unrecognized value must fail the load instead of picking one.
func convertWeightsFormat(f schema.FullyConnectedOptionsWeightsFormat, op schema.BuiltinOperator) (FullyConnectedWeightsFormat, error) {
	switch f {
	case schema.FullyConnectedOptionsWeightsFormatDefault:
		return FullyConnectedWeightsDefault, nil
	case schema.FullyConnectedOptionsWeightsFormatShuffled4x16Int8:
		return FullyConnectedWeightsShuffled4x16Int8, nil
	}
	return FullyConnectedWeightsDefault, errors.InvalidEnum(op.String(), "weights_format", int32(f))
}

// convertLSTMKernel is strict for the same reason as convertWeightsFormat.
func convertLSTMKernel(k schema.LSTMKernelType, op schema.BuiltinOperator) (LSTMKernel, error) {
	switch k {
	case schema.LSTMKernelTypeFull:
		return LSTMKernelFull, nil
	case schema.LSTMKernelTypeBasic:
		return LSTMKernelBasic, nil
	}
	return LSTMKernelFull, errors.InvalidEnum(op.String(), "kernel_type", int32(k))
}
