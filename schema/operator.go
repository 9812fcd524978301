package schema

// Operator is an immutable view of one serialized graph node. The model
// container owns it; the decoder only borrows it for the duration of a call.
//
// At most one options field is non-nil, selected by the node's operator
// code. A nil options field means the serialized node carried no options
// record, which older models legitimately do.
type Operator struct {
	OpcodeIndex int32
	Inputs      []int32
	Outputs     []int32

	AddOptions                        *AddOptions
	ArgMaxOptions                     *ArgMaxOptions
	ArgMinOptions                     *ArgMinOptions
	BatchMatMulOptions                *BatchMatMulOptions
	BidirectionalSequenceLSTMOptions  *BidirectionalSequenceLSTMOptions
	BidirectionalSequenceRNNOptions   *BidirectionalSequenceRNNOptions
	CallOnceOptions                   *CallOnceOptions
	CastOptions                       *CastOptions
	ConcatenationOptions              *ConcatenationOptions
	Conv2DOptions                     *Conv2DOptions
	CumsumOptions                     *CumsumOptions
	DepthToSpaceOptions               *DepthToSpaceOptions
	DepthwiseConv2DOptions            *DepthwiseConv2DOptions
	DivOptions                        *DivOptions
	EmbeddingLookupSparseOptions      *EmbeddingLookupSparseOptions
	FakeQuantOptions                  *FakeQuantOptions
	FullyConnectedOptions             *FullyConnectedOptions
	GatherOptions                     *GatherOptions
	IfOptions                         *IfOptions
	L2NormOptions                     *L2NormOptions
	LSHProjectionOptions              *LSHProjectionOptions
	LSTMOptions                       *LSTMOptions
	LeakyReluOptions                  *LeakyReluOptions
	LocalResponseNormalizationOptions *LocalResponseNormalizationOptions
	MirrorPadOptions                  *MirrorPadOptions
	MulOptions                        *MulOptions
	OneHotOptions                     *OneHotOptions
	PackOptions                       *PackOptions
	Pool2DOptions                     *Pool2DOptions
	RNNOptions                        *RNNOptions
	ReducerOptions                    *ReducerOptions
	ReshapeOptions                    *ReshapeOptions
	ResizeBilinearOptions             *ResizeBilinearOptions
	ResizeNearestNeighborOptions      *ResizeNearestNeighborOptions
	ReverseSequenceOptions            *ReverseSequenceOptions
	SVDFOptions                       *SVDFOptions
	SequenceRNNOptions                *SequenceRNNOptions
	ShapeOptions                      *ShapeOptions
	SkipGramOptions                   *SkipGramOptions
	SoftmaxOptions                    *SoftmaxOptions
	SpaceToDepthOptions               *SpaceToDepthOptions
	SparseToDenseOptions              *SparseToDenseOptions
	SplitOptions                      *SplitOptions
	SplitVOptions                     *SplitVOptions
	SqueezeOptions                    *SqueezeOptions
	StridedSliceOptions               *StridedSliceOptions
	SubOptions                        *SubOptions
	TransposeConvOptions              *TransposeConvOptions
	UnidirectionalSequenceLSTMOptions *UnidirectionalSequenceLSTMOptions
	UniqueOptions                     *UniqueOptions
	UnpackOptions                     *UnpackOptions
	WhileOptions                      *WhileOptions
}

type AddOptions struct {
	FusedActivationFunction ActivationFunctionType
	PotScaleInt16           bool
}

type SubOptions struct {
	FusedActivationFunction ActivationFunctionType
	PotScaleInt16           bool
}

type MulOptions struct {
	FusedActivationFunction ActivationFunctionType
}

type DivOptions struct {
	FusedActivationFunction ActivationFunctionType
}

type ArgMaxOptions struct {
	OutputType TensorType
}

type ArgMinOptions struct {
	OutputType TensorType
}

type BatchMatMulOptions struct {
	AdjX bool
	AdjY bool
}

type BidirectionalSequenceLSTMOptions struct {
	FusedActivationFunction  ActivationFunctionType
	CellClip                 float32
	ProjClip                 float32
	MergeOutputs             bool
	TimeMajor                bool
	AsymmetricQuantizeInputs bool
}

type BidirectionalSequenceRNNOptions struct {
	TimeMajor                bool
	FusedActivationFunction  ActivationFunctionType
	MergeOutputs             bool
	AsymmetricQuantizeInputs bool
}

type CallOnceOptions struct {
	InitSubgraphIndex int32
}

type CastOptions struct {
	InDataType  TensorType
	OutDataType TensorType
}

type ConcatenationOptions struct {
	Axis                    int32
	FusedActivationFunction ActivationFunctionType
	FixedPointScaling       bool
}

type Conv2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	FusedActivationFunction ActivationFunctionType
	DilationWFactor         int32
	DilationHFactor         int32
}

type CumsumOptions struct {
	Exclusive bool
	Reverse   bool
}

type DepthToSpaceOptions struct {
	BlockSize int32
}

type DepthwiseConv2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	DepthMultiplier         int32
	FusedActivationFunction ActivationFunctionType
	DilationWFactor         int32
	DilationHFactor         int32
}

type EmbeddingLookupSparseOptions struct {
	Combiner CombinerType
}

type FakeQuantOptions struct {
	Min         float32
	Max         float32
	NumBits     int32
	NarrowRange bool
}

type FullyConnectedOptions struct {
	FusedActivationFunction  ActivationFunctionType
	WeightsFormat            FullyConnectedOptionsWeightsFormat
	KeepNumDims              bool
	AsymmetricQuantizeInputs bool
}

type GatherOptions struct {
	Axis int32
}

type IfOptions struct {
	ThenSubgraphIndex int32
	ElseSubgraphIndex int32
}

type L2NormOptions struct {
	FusedActivationFunction ActivationFunctionType
}

type LSHProjectionOptions struct {
	Type LSHProjectionType
}

type LSTMOptions struct {
	FusedActivationFunction  ActivationFunctionType
	CellClip                 float32
	ProjClip                 float32
	KernelType               LSTMKernelType
	AsymmetricQuantizeInputs bool
}

type LeakyReluOptions struct {
	Alpha float32
}

type LocalResponseNormalizationOptions struct {
	Radius int32
	Bias   float32
	Alpha  float32
	Beta   float32
}

type MirrorPadOptions struct {
	Mode MirrorPadMode
}

type OneHotOptions struct {
	Axis int32
}

type PackOptions struct {
	ValuesCount int32
	Axis        int32
}

type Pool2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	FilterWidth             int32
	FilterHeight            int32
	FusedActivationFunction ActivationFunctionType
}

type RNNOptions struct {
	FusedActivationFunction  ActivationFunctionType
	AsymmetricQuantizeInputs bool
}

type ReducerOptions struct {
	KeepDims bool
}

type ReshapeOptions struct {
	NewShape []int32
}

type ResizeBilinearOptions struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

type ResizeNearestNeighborOptions struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

type ReverseSequenceOptions struct {
	SeqDim   int32
	BatchDim int32
}

type SVDFOptions struct {
	Rank                     int32
	FusedActivationFunction  ActivationFunctionType
	AsymmetricQuantizeInputs bool
}

type SequenceRNNOptions struct {
	TimeMajor                bool
	FusedActivationFunction  ActivationFunctionType
	AsymmetricQuantizeInputs bool
}

type ShapeOptions struct {
	OutType TensorType
}

type SkipGramOptions struct {
	NgramSize        int32
	MaxSkipSize      int32
	IncludeAllNgrams bool
}

type SoftmaxOptions struct {
	Beta float32
}

type SpaceToDepthOptions struct {
	BlockSize int32
}

type SparseToDenseOptions struct {
	ValidateIndices bool
}

type SplitOptions struct {
	NumSplits int32
}

type SplitVOptions struct {
	NumSplits int32
}

type SqueezeOptions struct {
	SqueezeDims []int32
}

type StridedSliceOptions struct {
	BeginMask      int32
	EndMask        int32
	EllipsisMask   int32
	NewAxisMask    int32
	ShrinkAxisMask int32
}

type TransposeConvOptions struct {
	Padding Padding
	StrideW int32
	StrideH int32
}

type UnidirectionalSequenceLSTMOptions struct {
	FusedActivationFunction  ActivationFunctionType
	CellClip                 float32
	ProjClip                 float32
	TimeMajor                bool
	AsymmetricQuantizeInputs bool
}

type UniqueOptions struct {
	IdxOutType TensorType
}

type UnpackOptions struct {
	Num  int32
	Axis int32
}

type WhileOptions struct {
	CondSubgraphIndex int32
	BodySubgraphIndex int32
}
