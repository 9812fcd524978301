package opdata

import (
	"go.uber.org/zap"

	flatruntime "github.com/flatml/flat-runtime"
	"github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

// ParseOpData decodes the options record of op into the runtime parameter
// block for code, allocated through alloc. Operators without parameters
// return (nil, nil). On error no allocation is retained: whatever the
// decoder obtained from alloc has already been freed.
//
// op and alloc must be non-nil; that is a programming error, not a model
// error, and it panics.
func ParseOpData(op *schema.Operator, code schema.BuiltinOperator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	params, err := parseOpData(op, code, alloc)
	if err != nil {
		Logger().Warn("operator parameter decode failed",
			zap.Stringer("operator", code),
			zap.Error(err))
		return nil, err
	}
	return params, nil
}

func parseOpData(op *schema.Operator, code schema.BuiltinOperator, alloc flatruntime.Allocator) (Params, error) {
	switch code {
	case schema.BuiltinOperatorAdd:
		return ParseAdd(op, alloc)
	case schema.BuiltinOperatorAveragePool2D:
		return ParseAveragePool2D(op, alloc)
	case schema.BuiltinOperatorConcatenation:
		return ParseConcatenation(op, alloc)
	case schema.BuiltinOperatorConv2D:
		return ParseConv2D(op, alloc)
	case schema.BuiltinOperatorDepthwiseConv2D:
		return ParseDepthwiseConv2D(op, alloc)
	case schema.BuiltinOperatorDepthToSpace:
		return ParseDepthToSpace(op, alloc)
	case schema.BuiltinOperatorFullyConnected:
		return ParseFullyConnected(op, alloc)
	case schema.BuiltinOperatorL2Normalization:
		return ParseL2Normalization(op, alloc)
	case schema.BuiltinOperatorL2Pool2D:
		return ParseL2Pool2D(op, alloc)
	case schema.BuiltinOperatorLocalResponseNormalization:
		return ParseLocalResponseNormalization(op, alloc)
	case schema.BuiltinOperatorLSHProjection:
		return ParseLSHProjection(op, alloc)
	case schema.BuiltinOperatorLSTM:
		return ParseLSTM(op, alloc)
	case schema.BuiltinOperatorMaxPool2D:
		return ParseMaxPool2D(op, alloc)
	case schema.BuiltinOperatorMul:
		return ParseMul(op, alloc)
	case schema.BuiltinOperatorReshape:
		return ParseReshape(op, alloc)
	case schema.BuiltinOperatorResizeBilinear:
		return ParseResizeBilinear(op, alloc)
	case schema.BuiltinOperatorRNN:
		return ParseRNN(op, alloc)
	case schema.BuiltinOperatorSoftmax:
		return ParseSoftmax(op, alloc)
	case schema.BuiltinOperatorSpaceToDepth:
		return ParseSpaceToDepth(op, alloc)
	case schema.BuiltinOperatorSVDF:
		return ParseSVDF(op, alloc)
	case schema.BuiltinOperatorSkipGram:
		return ParseSkipGram(op, alloc)
	case schema.BuiltinOperatorEmbeddingLookupSparse:
		return ParseEmbeddingLookupSparse(op, alloc)
	case schema.BuiltinOperatorUnidirectionalSequenceRNN:
		return ParseUnidirectionalSequenceRNN(op, alloc)
	case schema.BuiltinOperatorGather:
		return ParseGather(op, alloc)
	case schema.BuiltinOperatorMean:
		return ParseMean(op, alloc)
	case schema.BuiltinOperatorSub:
		return ParseSub(op, alloc)
	case schema.BuiltinOperatorDiv:
		return ParseDiv(op, alloc)
	case schema.BuiltinOperatorSqueeze:
		return ParseSqueeze(op, alloc)
	case schema.BuiltinOperatorUnidirectionalSequenceLSTM:
		return ParseUnidirectionalSequenceLSTM(op, alloc)
	case schema.BuiltinOperatorStridedSlice:
		return ParseStridedSlice(op, alloc)
	case schema.BuiltinOperatorBidirectionalSequenceRNN:
		return ParseBidirectionalSequenceRNN(op, alloc)
	case schema.BuiltinOperatorSplit:
		return ParseSplit(op, alloc)
	case schema.BuiltinOperatorBidirectionalSequenceLSTM:
		return ParseBidirectionalSequenceLSTM(op, alloc)
	case schema.BuiltinOperatorCast:
		return ParseCast(op, alloc)
	case schema.BuiltinOperatorArgMax:
		return ParseArgMax(op, alloc)
	case schema.BuiltinOperatorTransposeConv:
		return ParseTransposeConv(op, alloc)
	case schema.BuiltinOperatorSparseToDense:
		return ParseSparseToDense(op, alloc)
	case schema.BuiltinOperatorSum:
		return ParseSum(op, alloc)
	case schema.BuiltinOperatorShape:
		return ParseShape(op, alloc)
	case schema.BuiltinOperatorArgMin:
		return ParseArgMin(op, alloc)
	case schema.BuiltinOperatorFakeQuant:
		return ParseFakeQuant(op, alloc)
	case schema.BuiltinOperatorReduceProd:
		return ParseReduceProd(op, alloc)
	case schema.BuiltinOperatorReduceMax:
		return ParseReduceMax(op, alloc)
	case schema.BuiltinOperatorPack:
		return ParsePack(op, alloc)
	case schema.BuiltinOperatorOneHot:
		return ParseOneHot(op, alloc)
	case schema.BuiltinOperatorUnpack:
		return ParseUnpack(op, alloc)
	case schema.BuiltinOperatorReduceMin:
		return ParseReduceMin(op, alloc)
	case schema.BuiltinOperatorReduceAny:
		return ParseReduceAny(op, alloc)
	case schema.BuiltinOperatorResizeNearestNeighbor:
		return ParseResizeNearestNeighbor(op, alloc)
	case schema.BuiltinOperatorLeakyRelu:
		return ParseLeakyRelu(op, alloc)
	case schema.BuiltinOperatorMirrorPad:
		return ParseMirrorPad(op, alloc)
	case schema.BuiltinOperatorSplitV:
		return ParseSplitV(op, alloc)
	case schema.BuiltinOperatorUnique:
		return ParseUnique(op, alloc)
	case schema.BuiltinOperatorReverseSequence:
		return ParseReverseSequence(op, alloc)
	case schema.BuiltinOperatorIf:
		return ParseIf(op, alloc)
	case schema.BuiltinOperatorWhile:
		return ParseWhile(op, alloc)
	case schema.BuiltinOperatorBatchMatMul:
		return ParseBatchMatMul(op, alloc)
	case schema.BuiltinOperatorCumsum:
		return ParseCumsum(op, alloc)
	case schema.BuiltinOperatorCallOnce:
		return ParseCallOnce(op, alloc)

	// A delegate node is an execution-plan artifact and must never be
	// serialized into a model.
	case schema.BuiltinOperatorDelegate:
		return nil, errors.New(errors.KindUnsupportedOperator).
			Op(code.String()).
			Detail("delegate nodes cannot appear in a serialized model").
			Build()

	// The placeholder sentinel reserves code space and never identifies a
	// real operator.
	case schema.BuiltinOperatorPlaceholder:
		return nil, errors.New(errors.KindUnsupportedOperator).
			Op(code.String()).
			Detail("placeholder code does not identify an operator").
			Build()

	// Operators with no parameter block.
	case schema.BuiltinOperatorDequantize,
		schema.BuiltinOperatorEmbeddingLookup,
		schema.BuiltinOperatorFloor,
		schema.BuiltinOperatorHashtableLookup,
		schema.BuiltinOperatorLogistic,
		schema.BuiltinOperatorRelu,
		schema.BuiltinOperatorReluN1To1,
		schema.BuiltinOperatorRelu6,
		schema.BuiltinOperatorTanh,
		schema.BuiltinOperatorConcatEmbeddings,
		schema.BuiltinOperatorCall,
		schema.BuiltinOperatorCustom,
		schema.BuiltinOperatorPad,
		schema.BuiltinOperatorBatchToSpaceND,
		schema.BuiltinOperatorSpaceToBatchND,
		schema.BuiltinOperatorTranspose,
		schema.BuiltinOperatorExp,
		schema.BuiltinOperatorTopKV2,
		schema.BuiltinOperatorLogSoftmax,
		schema.BuiltinOperatorPrelu,
		schema.BuiltinOperatorMaximum,
		schema.BuiltinOperatorMinimum,
		schema.BuiltinOperatorLess,
		schema.BuiltinOperatorNeg,
		schema.BuiltinOperatorPadV2,
		schema.BuiltinOperatorGreater,
		schema.BuiltinOperatorGreaterEqual,
		schema.BuiltinOperatorLessEqual,
		schema.BuiltinOperatorSelect,
		schema.BuiltinOperatorSlice,
		schema.BuiltinOperatorSin,
		schema.BuiltinOperatorTile,
		schema.BuiltinOperatorExpandDims,
		schema.BuiltinOperatorEqual,
		schema.BuiltinOperatorNotEqual,
		schema.BuiltinOperatorLog,
		schema.BuiltinOperatorSqrt,
		schema.BuiltinOperatorRsqrt,
		schema.BuiltinOperatorPow,
		schema.BuiltinOperatorLogicalOr,
		schema.BuiltinOperatorLogicalAnd,
		schema.BuiltinOperatorLogicalNot,
		schema.BuiltinOperatorFloorDiv,
		schema.BuiltinOperatorSquare,
		schema.BuiltinOperatorZerosLike,
		schema.BuiltinOperatorFill,
		schema.BuiltinOperatorFloorMod,
		schema.BuiltinOperatorRange,
		schema.BuiltinOperatorSquaredDifference,
		schema.BuiltinOperatorAbs,
		schema.BuiltinOperatorCeil,
		schema.BuiltinOperatorReverseV2,
		schema.BuiltinOperatorAddN,
		schema.BuiltinOperatorGatherND,
		schema.BuiltinOperatorCos,
		schema.BuiltinOperatorWhere,
		schema.BuiltinOperatorRank,
		schema.BuiltinOperatorElu,
		schema.BuiltinOperatorMatrixDiag,
		schema.BuiltinOperatorQuantize,
		schema.BuiltinOperatorMatrixSetDiag,
		schema.BuiltinOperatorRound,
		schema.BuiltinOperatorHardSwish,
		schema.BuiltinOperatorNonMaxSuppressionV4,
		schema.BuiltinOperatorNonMaxSuppressionV5,
		schema.BuiltinOperatorScatterND,
		schema.BuiltinOperatorSelectV2,
		schema.BuiltinOperatorDensify,
		schema.BuiltinOperatorSegmentSum,
		schema.BuiltinOperatorBroadcastTo:
		return nil, nil
	}

	return nil, errors.UnsupportedOperator(code.String())
}
