package opdata

// MaxShapeDims bounds the inline dimension arrays carried by ReshapeParams
// and SqueezeParams. Longer serialized vectors are rejected rather than
// truncated.
const MaxShapeDims = 8

// Params is the decoded, runtime-ready parameter block of one operator.
// Every concrete block is a flat value type: no pointers, no slices, so a
// block allocated through an Allocator can be freed with a single Free and
// copied with a plain assignment.
//
// ParseOpData returns the concrete block for the operator it decoded, or nil
// for operators that carry no parameters.
type Params interface {
	builtinParams()
}

type AddParams struct {
	Activation    Activation
	PotScaleInt16 bool
}

type SubParams struct {
	Activation    Activation
	PotScaleInt16 bool
}

type MulParams struct {
	Activation Activation
}

type DivParams struct {
	Activation Activation
}

type ArgMaxParams struct {
	OutputType TensorType
}

type ArgMinParams struct {
	OutputType TensorType
}

type BatchMatMulParams struct {
	AdjX bool
	AdjY bool
}

type BidirectionalSequenceLSTMParams struct {
	Activation               Activation
	CellClip                 float32
	ProjClip                 float32
	MergeOutputs             bool
	TimeMajor                bool
	AsymmetricQuantizeInputs bool
}

type BidirectionalSequenceRNNParams struct {
	TimeMajor                bool
	Activation               Activation
	MergeOutputs             bool
	AsymmetricQuantizeInputs bool
}

type CallOnceParams struct {
	InitSubgraphIndex int32
}

type CastParams struct {
	InDataType  TensorType
	OutDataType TensorType
}

type ConcatenationParams struct {
	Axis       int32
	Activation Activation
}

type Conv2DParams struct {
	Padding              PaddingMode
	StrideWidth          int32
	StrideHeight         int32
	Activation           Activation
	DilationWidthFactor  int32
	DilationHeightFactor int32
}

type CumsumParams struct {
	Exclusive bool
	Reverse   bool
}

type DepthToSpaceParams struct {
	BlockSize int32
}

type DepthwiseConv2DParams struct {
	Padding              PaddingMode
	StrideWidth          int32
	StrideHeight         int32
	DepthMultiplier      int32
	Activation           Activation
	DilationWidthFactor  int32
	DilationHeightFactor int32
}

type EmbeddingLookupSparseParams struct {
	Combiner CombinerKind
}

type FakeQuantParams struct {
	Min         float32
	Max         float32
	NumBits     int32
	NarrowRange bool
}

type FullyConnectedParams struct {
	Activation               Activation
	WeightsFormat            FullyConnectedWeightsFormat
	KeepNumDims              bool
	AsymmetricQuantizeInputs bool
}

type GatherParams struct {
	Axis int32
}

type IfParams struct {
	ThenSubgraphIndex int32
	ElseSubgraphIndex int32
}

type L2NormParams struct {
	Activation Activation
}

type LSHProjectionParams struct {
	Type LSHProjection
}

type LSTMParams struct {
	Activation               Activation
	CellClip                 float32
	ProjClip                 float32
	KernelType               LSTMKernel
	AsymmetricQuantizeInputs bool
}

type LeakyReluParams struct {
	Alpha float32
}

type LocalResponseNormParams struct {
	Radius int32
	Bias   float32
	Alpha  float32
	Beta   float32
}

type MirrorPadParams struct {
	Mode MirrorPadding
}

type OneHotParams struct {
	Axis int32
}

type PackParams struct {
	ValuesCount int32
	Axis        int32
}

type Pool2DParams struct {
	Padding      PaddingMode
	StrideWidth  int32
	StrideHeight int32
	FilterWidth  int32
	FilterHeight int32
	Activation   Activation
}

type RNNParams struct {
	Activation               Activation
	AsymmetricQuantizeInputs bool
}

type ReducerParams struct {
	KeepDims bool
}

type ReshapeParams struct {
	Shape         [MaxShapeDims]int32
	NumDimensions int32
}

type ResizeBilinearParams struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

type ResizeNearestNeighborParams struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

type ReverseSequenceParams struct {
	SeqDim   int32
	BatchDim int32
}

type SVDFParams struct {
	Rank                     int32
	Activation               Activation
	AsymmetricQuantizeInputs bool
}

type SequenceRNNParams struct {
	TimeMajor                bool
	Activation               Activation
	AsymmetricQuantizeInputs bool
}

type ShapeParams struct {
	OutType TensorType
}

type SkipGramParams struct {
	NgramSize        int32
	MaxSkipSize      int32
	IncludeAllNgrams bool
}

type SoftmaxParams struct {
	Beta float32
}

type SpaceToDepthParams struct {
	BlockSize int32
}

type SparseToDenseParams struct {
	ValidateIndices bool
}

type SplitParams struct {
	NumSplits int32
}

type SplitVParams struct {
	NumSplits int32
}

type SqueezeParams struct {
	SqueezeDims    [MaxShapeDims]int32
	NumSqueezeDims int32
}

type StridedSliceParams struct {
	BeginMask      int32
	EndMask        int32
	EllipsisMask   int32
	NewAxisMask    int32
	ShrinkAxisMask int32
}

type TransposeConvParams struct {
	Padding      PaddingMode
	StrideWidth  int32
	StrideHeight int32
}

type UnidirectionalSequenceLSTMParams struct {
	Activation               Activation
	CellClip                 float32
	ProjClip                 float32
	TimeMajor                bool
	AsymmetricQuantizeInputs bool
}

type UniqueParams struct {
	IndexOutType TensorType
}

type UnpackParams struct {
	Num  int32
	Axis int32
}

type WhileParams struct {
	CondSubgraphIndex int32
	BodySubgraphIndex int32
}

func (*AddParams) builtinParams()                        {}
func (*SubParams) builtinParams()                        {}
func (*MulParams) builtinParams()                        {}
func (*DivParams) builtinParams()                        {}
func (*ArgMaxParams) builtinParams()                     {}
func (*ArgMinParams) builtinParams()                     {}
func (*BatchMatMulParams) builtinParams()                {}
func (*BidirectionalSequenceLSTMParams) builtinParams()  {}
func (*BidirectionalSequenceRNNParams) builtinParams()   {}
func (*CallOnceParams) builtinParams()                   {}
func (*CastParams) builtinParams()                       {}
func (*ConcatenationParams) builtinParams()              {}
func (*Conv2DParams) builtinParams()                     {}
func (*CumsumParams) builtinParams()                     {}
func (*DepthToSpaceParams) builtinParams()               {}
func (*DepthwiseConv2DParams) builtinParams()            {}
func (*EmbeddingLookupSparseParams) builtinParams()      {}
func (*FakeQuantParams) builtinParams()                  {}
func (*FullyConnectedParams) builtinParams()             {}
func (*GatherParams) builtinParams()                     {}
func (*IfParams) builtinParams()                         {}
func (*L2NormParams) builtinParams()                     {}
func (*LSHProjectionParams) builtinParams()              {}
func (*LSTMParams) builtinParams()                       {}
func (*LeakyReluParams) builtinParams()                  {}
func (*LocalResponseNormParams) builtinParams()          {}
func (*MirrorPadParams) builtinParams()                  {}
func (*OneHotParams) builtinParams()                     {}
func (*PackParams) builtinParams()                       {}
func (*Pool2DParams) builtinParams()                     {}
func (*RNNParams) builtinParams()                        {}
func (*ReducerParams) builtinParams()                    {}
func (*ReshapeParams) builtinParams()                    {}
func (*ResizeBilinearParams) builtinParams()             {}
func (*ResizeNearestNeighborParams) builtinParams()      {}
func (*ReverseSequenceParams) builtinParams()            {}
func (*SVDFParams) builtinParams()                       {}
func (*SequenceRNNParams) builtinParams()                {}
func (*ShapeParams) builtinParams()                      {}
func (*SkipGramParams) builtinParams()                   {}
func (*SoftmaxParams) builtinParams()                    {}
func (*SpaceToDepthParams) builtinParams()               {}
func (*SparseToDenseParams) builtinParams()              {}
func (*SplitParams) builtinParams()                      {}
func (*SplitVParams) builtinParams()                     {}
func (*SqueezeParams) builtinParams()                    {}
func (*StridedSliceParams) builtinParams()               {}
func (*TransposeConvParams) builtinParams()              {}
func (*UnidirectionalSequenceLSTMParams) builtinParams() {}
func (*UniqueParams) builtinParams()                     {}
func (*UnpackParams) builtinParams()                     {}
func (*WhileParams) builtinParams()                      {}
