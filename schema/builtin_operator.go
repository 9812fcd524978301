package schema

import "fmt"

// BuiltinOperator identifies which computation kind a graph node performs.
type BuiltinOperator int32

const (
	BuiltinOperatorAdd                        BuiltinOperator = 0
	BuiltinOperatorAveragePool2D              BuiltinOperator = 1
	BuiltinOperatorConcatenation              BuiltinOperator = 2
	BuiltinOperatorConv2D                     BuiltinOperator = 3
	BuiltinOperatorDepthwiseConv2D            BuiltinOperator = 4
	BuiltinOperatorDepthToSpace               BuiltinOperator = 5
	BuiltinOperatorDequantize                 BuiltinOperator = 6
	BuiltinOperatorEmbeddingLookup            BuiltinOperator = 7
	BuiltinOperatorFloor                      BuiltinOperator = 8
	BuiltinOperatorFullyConnected             BuiltinOperator = 9
	BuiltinOperatorHashtableLookup            BuiltinOperator = 10
	BuiltinOperatorL2Normalization            BuiltinOperator = 11
	BuiltinOperatorL2Pool2D                   BuiltinOperator = 12
	BuiltinOperatorLocalResponseNormalization BuiltinOperator = 13
	BuiltinOperatorLogistic                   BuiltinOperator = 14
	BuiltinOperatorLSHProjection              BuiltinOperator = 15
	BuiltinOperatorLSTM                       BuiltinOperator = 16
	BuiltinOperatorMaxPool2D                  BuiltinOperator = 17
	BuiltinOperatorMul                        BuiltinOperator = 18
	BuiltinOperatorRelu                       BuiltinOperator = 19
	BuiltinOperatorReluN1To1                  BuiltinOperator = 20
	BuiltinOperatorRelu6                      BuiltinOperator = 21
	BuiltinOperatorReshape                    BuiltinOperator = 22
	BuiltinOperatorResizeBilinear             BuiltinOperator = 23
	BuiltinOperatorRNN                        BuiltinOperator = 24
	BuiltinOperatorSoftmax                    BuiltinOperator = 25
	BuiltinOperatorSpaceToDepth               BuiltinOperator = 26
	BuiltinOperatorSVDF                       BuiltinOperator = 27
	BuiltinOperatorTanh                       BuiltinOperator = 28
	BuiltinOperatorConcatEmbeddings           BuiltinOperator = 29
	BuiltinOperatorSkipGram                   BuiltinOperator = 30
	BuiltinOperatorCall                       BuiltinOperator = 31
	BuiltinOperatorCustom                     BuiltinOperator = 32
	BuiltinOperatorEmbeddingLookupSparse      BuiltinOperator = 33
	BuiltinOperatorPad                        BuiltinOperator = 34
	BuiltinOperatorUnidirectionalSequenceRNN  BuiltinOperator = 35
	BuiltinOperatorGather                     BuiltinOperator = 36
	BuiltinOperatorBatchToSpaceND             BuiltinOperator = 37
	BuiltinOperatorSpaceToBatchND             BuiltinOperator = 38
	BuiltinOperatorTranspose                  BuiltinOperator = 39
	BuiltinOperatorMean                       BuiltinOperator = 40
	BuiltinOperatorSub                        BuiltinOperator = 41
	BuiltinOperatorDiv                        BuiltinOperator = 42
	BuiltinOperatorSqueeze                    BuiltinOperator = 43
	BuiltinOperatorUnidirectionalSequenceLSTM BuiltinOperator = 44
	BuiltinOperatorStridedSlice               BuiltinOperator = 45
	BuiltinOperatorBidirectionalSequenceRNN   BuiltinOperator = 46
	BuiltinOperatorExp                        BuiltinOperator = 47
	BuiltinOperatorTopKV2                     BuiltinOperator = 48
	BuiltinOperatorSplit                      BuiltinOperator = 49
	BuiltinOperatorLogSoftmax                 BuiltinOperator = 50
	BuiltinOperatorDelegate                   BuiltinOperator = 51
	BuiltinOperatorBidirectionalSequenceLSTM  BuiltinOperator = 52
	BuiltinOperatorCast                       BuiltinOperator = 53
	BuiltinOperatorPrelu                      BuiltinOperator = 54
	BuiltinOperatorMaximum                    BuiltinOperator = 55
	BuiltinOperatorArgMax                     BuiltinOperator = 56
	BuiltinOperatorMinimum                    BuiltinOperator = 57
	BuiltinOperatorLess                       BuiltinOperator = 58
	BuiltinOperatorNeg                        BuiltinOperator = 59
	BuiltinOperatorPadV2                      BuiltinOperator = 60
	BuiltinOperatorGreater                    BuiltinOperator = 61
	BuiltinOperatorGreaterEqual               BuiltinOperator = 62
	BuiltinOperatorLessEqual                  BuiltinOperator = 63
	BuiltinOperatorSelect                     BuiltinOperator = 64
	BuiltinOperatorSlice                      BuiltinOperator = 65
	BuiltinOperatorSin                        BuiltinOperator = 66
	BuiltinOperatorTransposeConv              BuiltinOperator = 67
	BuiltinOperatorSparseToDense              BuiltinOperator = 68
	BuiltinOperatorTile                       BuiltinOperator = 69
	BuiltinOperatorExpandDims                 BuiltinOperator = 70
	BuiltinOperatorEqual                      BuiltinOperator = 71
	BuiltinOperatorNotEqual                   BuiltinOperator = 72
	BuiltinOperatorLog                        BuiltinOperator = 73
	BuiltinOperatorSum                        BuiltinOperator = 74
	BuiltinOperatorSqrt                       BuiltinOperator = 75
	BuiltinOperatorRsqrt                      BuiltinOperator = 76
	BuiltinOperatorShape                      BuiltinOperator = 77
	BuiltinOperatorPow                        BuiltinOperator = 78
	BuiltinOperatorArgMin                     BuiltinOperator = 79
	BuiltinOperatorFakeQuant                  BuiltinOperator = 80
	BuiltinOperatorReduceProd                 BuiltinOperator = 81
	BuiltinOperatorReduceMax                  BuiltinOperator = 82
	BuiltinOperatorPack                       BuiltinOperator = 83
	BuiltinOperatorLogicalOr                  BuiltinOperator = 84
	BuiltinOperatorOneHot                     BuiltinOperator = 85
	BuiltinOperatorLogicalAnd                 BuiltinOperator = 86
	BuiltinOperatorLogicalNot                 BuiltinOperator = 87
	BuiltinOperatorUnpack                     BuiltinOperator = 88
	BuiltinOperatorReduceMin                  BuiltinOperator = 89
	BuiltinOperatorFloorDiv                   BuiltinOperator = 90
	BuiltinOperatorReduceAny                  BuiltinOperator = 91
	BuiltinOperatorSquare                     BuiltinOperator = 92
	BuiltinOperatorZerosLike                  BuiltinOperator = 93
	BuiltinOperatorFill                       BuiltinOperator = 94
	BuiltinOperatorFloorMod                   BuiltinOperator = 95
	BuiltinOperatorRange                      BuiltinOperator = 96
	BuiltinOperatorResizeNearestNeighbor      BuiltinOperator = 97
	BuiltinOperatorLeakyRelu                  BuiltinOperator = 98
	BuiltinOperatorSquaredDifference          BuiltinOperator = 99
	BuiltinOperatorMirrorPad                  BuiltinOperator = 100
	BuiltinOperatorAbs                        BuiltinOperator = 101
	BuiltinOperatorSplitV                     BuiltinOperator = 102
	BuiltinOperatorUnique                     BuiltinOperator = 103
	BuiltinOperatorCeil                       BuiltinOperator = 104
	BuiltinOperatorReverseV2                  BuiltinOperator = 105
	BuiltinOperatorAddN                       BuiltinOperator = 106
	BuiltinOperatorGatherND                   BuiltinOperator = 107
	BuiltinOperatorCos                        BuiltinOperator = 108
	BuiltinOperatorWhere                      BuiltinOperator = 109
	BuiltinOperatorRank                       BuiltinOperator = 110
	BuiltinOperatorElu                        BuiltinOperator = 111
	BuiltinOperatorReverseSequence            BuiltinOperator = 112
	BuiltinOperatorMatrixDiag                 BuiltinOperator = 113
	BuiltinOperatorQuantize                   BuiltinOperator = 114
	BuiltinOperatorMatrixSetDiag              BuiltinOperator = 115
	BuiltinOperatorRound                      BuiltinOperator = 116
	BuiltinOperatorHardSwish                  BuiltinOperator = 117
	BuiltinOperatorIf                         BuiltinOperator = 118
	BuiltinOperatorWhile                      BuiltinOperator = 119
	BuiltinOperatorNonMaxSuppressionV4        BuiltinOperator = 120
	BuiltinOperatorNonMaxSuppressionV5        BuiltinOperator = 121
	BuiltinOperatorScatterND                  BuiltinOperator = 122
	BuiltinOperatorSelectV2                   BuiltinOperator = 123
	BuiltinOperatorDensify                    BuiltinOperator = 124
	BuiltinOperatorSegmentSum                 BuiltinOperator = 125
	BuiltinOperatorBatchMatMul                BuiltinOperator = 126

	// BuiltinOperatorPlaceholder reserves the code space for operators added
	// by future schema versions. It never identifies a real operator.
	BuiltinOperatorPlaceholder BuiltinOperator = 127

	BuiltinOperatorCumsum      BuiltinOperator = 128
	BuiltinOperatorCallOnce    BuiltinOperator = 129
	BuiltinOperatorBroadcastTo BuiltinOperator = 130
)

var builtinOperatorNames = map[BuiltinOperator]string{
	BuiltinOperatorAdd:                        "ADD",
	BuiltinOperatorAveragePool2D:              "AVERAGE_POOL_2D",
	BuiltinOperatorConcatenation:              "CONCATENATION",
	BuiltinOperatorConv2D:                     "CONV_2D",
	BuiltinOperatorDepthwiseConv2D:            "DEPTHWISE_CONV_2D",
	BuiltinOperatorDepthToSpace:               "DEPTH_TO_SPACE",
	BuiltinOperatorDequantize:                 "DEQUANTIZE",
	BuiltinOperatorEmbeddingLookup:            "EMBEDDING_LOOKUP",
	BuiltinOperatorFloor:                      "FLOOR",
	BuiltinOperatorFullyConnected:             "FULLY_CONNECTED",
	BuiltinOperatorHashtableLookup:            "HASHTABLE_LOOKUP",
	BuiltinOperatorL2Normalization:            "L2_NORMALIZATION",
	BuiltinOperatorL2Pool2D:                   "L2_POOL_2D",
	BuiltinOperatorLocalResponseNormalization: "LOCAL_RESPONSE_NORMALIZATION",
	BuiltinOperatorLogistic:                   "LOGISTIC",
	BuiltinOperatorLSHProjection:              "LSH_PROJECTION",
	BuiltinOperatorLSTM:                       "LSTM",
	BuiltinOperatorMaxPool2D:                  "MAX_POOL_2D",
	BuiltinOperatorMul:                        "MUL",
	BuiltinOperatorRelu:                       "RELU",
	BuiltinOperatorReluN1To1:                  "RELU_N1_TO_1",
	BuiltinOperatorRelu6:                      "RELU6",
	BuiltinOperatorReshape:                    "RESHAPE",
	BuiltinOperatorResizeBilinear:             "RESIZE_BILINEAR",
	BuiltinOperatorRNN:                        "RNN",
	BuiltinOperatorSoftmax:                    "SOFTMAX",
	BuiltinOperatorSpaceToDepth:               "SPACE_TO_DEPTH",
	BuiltinOperatorSVDF:                       "SVDF",
	BuiltinOperatorTanh:                       "TANH",
	BuiltinOperatorConcatEmbeddings:           "CONCAT_EMBEDDINGS",
	BuiltinOperatorSkipGram:                   "SKIP_GRAM",
	BuiltinOperatorCall:                       "CALL",
	BuiltinOperatorCustom:                     "CUSTOM",
	BuiltinOperatorEmbeddingLookupSparse:      "EMBEDDING_LOOKUP_SPARSE",
	BuiltinOperatorPad:                        "PAD",
	BuiltinOperatorUnidirectionalSequenceRNN:  "UNIDIRECTIONAL_SEQUENCE_RNN",
	BuiltinOperatorGather:                     "GATHER",
	BuiltinOperatorBatchToSpaceND:             "BATCH_TO_SPACE_ND",
	BuiltinOperatorSpaceToBatchND:             "SPACE_TO_BATCH_ND",
	BuiltinOperatorTranspose:                  "TRANSPOSE",
	BuiltinOperatorMean:                       "MEAN",
	BuiltinOperatorSub:                        "SUB",
	BuiltinOperatorDiv:                        "DIV",
	BuiltinOperatorSqueeze:                    "SQUEEZE",
	BuiltinOperatorUnidirectionalSequenceLSTM: "UNIDIRECTIONAL_SEQUENCE_LSTM",
	BuiltinOperatorStridedSlice:               "STRIDED_SLICE",
	BuiltinOperatorBidirectionalSequenceRNN:   "BIDIRECTIONAL_SEQUENCE_RNN",
	BuiltinOperatorExp:                        "EXP",
	BuiltinOperatorTopKV2:                     "TOPK_V2",
	BuiltinOperatorSplit:                      "SPLIT",
	BuiltinOperatorLogSoftmax:                 "LOG_SOFTMAX",
	BuiltinOperatorDelegate:                   "DELEGATE",
	BuiltinOperatorBidirectionalSequenceLSTM:  "BIDIRECTIONAL_SEQUENCE_LSTM",
	BuiltinOperatorCast:                       "CAST",
	BuiltinOperatorPrelu:                      "PRELU",
	BuiltinOperatorMaximum:                    "MAXIMUM",
	BuiltinOperatorArgMax:                     "ARG_MAX",
	BuiltinOperatorMinimum:                    "MINIMUM",
	BuiltinOperatorLess:                       "LESS",
	BuiltinOperatorNeg:                        "NEG",
	BuiltinOperatorPadV2:                      "PADV2",
	BuiltinOperatorGreater:                    "GREATER",
	BuiltinOperatorGreaterEqual:               "GREATER_EQUAL",
	BuiltinOperatorLessEqual:                  "LESS_EQUAL",
	BuiltinOperatorSelect:                     "SELECT",
	BuiltinOperatorSlice:                      "SLICE",
	BuiltinOperatorSin:                        "SIN",
	BuiltinOperatorTransposeConv:              "TRANSPOSE_CONV",
	BuiltinOperatorSparseToDense:              "SPARSE_TO_DENSE",
	BuiltinOperatorTile:                       "TILE",
	BuiltinOperatorExpandDims:                 "EXPAND_DIMS",
	BuiltinOperatorEqual:                      "EQUAL",
	BuiltinOperatorNotEqual:                   "NOT_EQUAL",
	BuiltinOperatorLog:                        "LOG",
	BuiltinOperatorSum:                        "SUM",
	BuiltinOperatorSqrt:                       "SQRT",
	BuiltinOperatorRsqrt:                      "RSQRT",
	BuiltinOperatorShape:                      "SHAPE",
	BuiltinOperatorPow:                        "POW",
	BuiltinOperatorArgMin:                     "ARG_MIN",
	BuiltinOperatorFakeQuant:                  "FAKE_QUANT",
	BuiltinOperatorReduceProd:                 "REDUCE_PROD",
	BuiltinOperatorReduceMax:                  "REDUCE_MAX",
	BuiltinOperatorPack:                       "PACK",
	BuiltinOperatorLogicalOr:                  "LOGICAL_OR",
	BuiltinOperatorOneHot:                     "ONE_HOT",
	BuiltinOperatorLogicalAnd:                 "LOGICAL_AND",
	BuiltinOperatorLogicalNot:                 "LOGICAL_NOT",
	BuiltinOperatorUnpack:                     "UNPACK",
	BuiltinOperatorReduceMin:                  "REDUCE_MIN",
	BuiltinOperatorFloorDiv:                   "FLOOR_DIV",
	BuiltinOperatorReduceAny:                  "REDUCE_ANY",
	BuiltinOperatorSquare:                     "SQUARE",
	BuiltinOperatorZerosLike:                  "ZEROS_LIKE",
	BuiltinOperatorFill:                       "FILL",
	BuiltinOperatorFloorMod:                   "FLOOR_MOD",
	BuiltinOperatorRange:                      "RANGE",
	BuiltinOperatorResizeNearestNeighbor:      "RESIZE_NEAREST_NEIGHBOR",
	BuiltinOperatorLeakyRelu:                  "LEAKY_RELU",
	BuiltinOperatorSquaredDifference:          "SQUARED_DIFFERENCE",
	BuiltinOperatorMirrorPad:                  "MIRROR_PAD",
	BuiltinOperatorAbs:                        "ABS",
	BuiltinOperatorSplitV:                     "SPLIT_V",
	BuiltinOperatorUnique:                     "UNIQUE",
	BuiltinOperatorCeil:                       "CEIL",
	BuiltinOperatorReverseV2:                  "REVERSE_V2",
	BuiltinOperatorAddN:                       "ADD_N",
	BuiltinOperatorGatherND:                   "GATHER_ND",
	BuiltinOperatorCos:                        "COS",
	BuiltinOperatorWhere:                      "WHERE",
	BuiltinOperatorRank:                       "RANK",
	BuiltinOperatorElu:                        "ELU",
	BuiltinOperatorReverseSequence:            "REVERSE_SEQUENCE",
	BuiltinOperatorMatrixDiag:                 "MATRIX_DIAG",
	BuiltinOperatorQuantize:                   "QUANTIZE",
	BuiltinOperatorMatrixSetDiag:              "MATRIX_SET_DIAG",
	BuiltinOperatorRound:                      "ROUND",
	BuiltinOperatorHardSwish:                  "HARD_SWISH",
	BuiltinOperatorIf:                         "IF",
	BuiltinOperatorWhile:                      "WHILE",
	BuiltinOperatorNonMaxSuppressionV4:        "NON_MAX_SUPPRESSION_V4",
	BuiltinOperatorNonMaxSuppressionV5:        "NON_MAX_SUPPRESSION_V5",
	BuiltinOperatorScatterND:                  "SCATTER_ND",
	BuiltinOperatorSelectV2:                   "SELECT_V2",
	BuiltinOperatorDensify:                    "DENSIFY",
	BuiltinOperatorSegmentSum:                 "SEGMENT_SUM",
	BuiltinOperatorBatchMatMul:                "BATCH_MATMUL",
	BuiltinOperatorPlaceholder:                "PLACEHOLDER_FOR_GREATER_OP_CODES",
	BuiltinOperatorCumsum:                     "CUMSUM",
	BuiltinOperatorCallOnce:                   "CALL_ONCE",
	BuiltinOperatorBroadcastTo:                "BROADCAST_TO",
}

// String returns the schema name of the operator code.
func (op BuiltinOperator) String() string {
	if name, ok := builtinOperatorNames[op]; ok {
		return name
	}
	return fmt.Sprintf("BuiltinOperator(%d)", int32(op))
}

// BuiltinOperators returns every declared operator code in ascending order,
// including the placeholder sentinel.
func BuiltinOperators() []BuiltinOperator {
	ops := make([]BuiltinOperator, 0, len(builtinOperatorNames))
	for op := BuiltinOperator(0); int(op) < 131; op++ {
		if _, ok := builtinOperatorNames[op]; ok {
			ops = append(ops, op)
		}
	}
	return ops
}
