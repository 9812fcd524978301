package opdata

import (
	flatruntime "github.com/flatml/flat-runtime"
	"github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

// The per-operator parse functions below are independently callable so that
// builds registering only a subset of operators can link just the decoders
// they need instead of pulling in ParseOpData's full dispatch.
//
// Shared contract: the operator and allocator must be non-nil (the caller
// owns that check, parse functions panic on a breach), a missing options
// record decodes to a zeroed parameter block unless noted otherwise, and on
// any error the function has already returned its allocation to the
// allocator.

func checkParseArgs(op *schema.Operator, alloc flatruntime.Allocator) {
	if op == nil {
		panic("opdata: nil operator")
	}
	if alloc == nil {
		panic("opdata: nil allocator")
	}
}

func ParseAdd(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[AddParams](alloc, schema.BuiltinOperatorAdd)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.AddOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.PotScaleInt16 = o.PotScaleInt16
	}
	return g.release(), nil
}

func ParseSub(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SubParams](alloc, schema.BuiltinOperatorSub)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SubOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.PotScaleInt16 = o.PotScaleInt16
	}
	return g.release(), nil
}

func ParseMul(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[MulParams](alloc, schema.BuiltinOperatorMul)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.MulOptions; o != nil {
		g.get().Activation = convertActivation(o.FusedActivationFunction)
	}
	return g.release(), nil
}

func ParseDiv(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[DivParams](alloc, schema.BuiltinOperatorDiv)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.DivOptions; o != nil {
		g.get().Activation = convertActivation(o.FusedActivationFunction)
	}
	return g.release(), nil
}

func ParseArgMax(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ArgMaxParams](alloc, schema.BuiltinOperatorArgMax)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ArgMaxOptions; o != nil {
		out, err := ConvertTensorType(o.OutputType, schema.BuiltinOperatorArgMax, "output_type")
		if err != nil {
			return nil, err
		}
		g.get().OutputType = out
	}
	return g.release(), nil
}

func ParseArgMin(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ArgMinParams](alloc, schema.BuiltinOperatorArgMin)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ArgMinOptions; o != nil {
		out, err := ConvertTensorType(o.OutputType, schema.BuiltinOperatorArgMin, "output_type")
		if err != nil {
			return nil, err
		}
		g.get().OutputType = out
	}
	return g.release(), nil
}

func ParseBatchMatMul(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[BatchMatMulParams](alloc, schema.BuiltinOperatorBatchMatMul)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.BatchMatMulOptions; o != nil {
		p := g.get()
		p.AdjX = o.AdjX
		p.AdjY = o.AdjY
	}
	return g.release(), nil
}

func ParseCallOnce(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[CallOnceParams](alloc, schema.BuiltinOperatorCallOnce)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.CallOnceOptions; o != nil {
		g.get().InitSubgraphIndex = o.InitSubgraphIndex
	}
	return g.release(), nil
}

func ParseCast(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[CastParams](alloc, schema.BuiltinOperatorCast)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.CastOptions; o != nil {
		p := g.get()
		p.InDataType, err = ConvertTensorType(o.InDataType, schema.BuiltinOperatorCast, "in_data_type")
		if err != nil {
			return nil, err
		}
		p.OutDataType, err = ConvertTensorType(o.OutDataType, schema.BuiltinOperatorCast, "out_data_type")
		if err != nil {
			return nil, err
		}
	}
	return g.release(), nil
}

func ParseConcatenation(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ConcatenationParams](alloc, schema.BuiltinOperatorConcatenation)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ConcatenationOptions; o != nil {
		p := g.get()
		p.Axis = o.Axis
		p.Activation = convertActivation(o.FusedActivationFunction)
	}
	return g.release(), nil
}

func ParseConv2D(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[Conv2DParams](alloc, schema.BuiltinOperatorConv2D)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.Conv2DOptions; o != nil {
		p := g.get()
		p.Padding = convertPadding(o.Padding)
		p.StrideWidth = o.StrideW
		p.StrideHeight = o.StrideH
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.DilationWidthFactor = o.DilationWFactor
		p.DilationHeightFactor = o.DilationHFactor
	}
	return g.release(), nil
}

func ParseCumsum(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[CumsumParams](alloc, schema.BuiltinOperatorCumsum)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.CumsumOptions; o != nil {
		p := g.get()
		p.Exclusive = o.Exclusive
		p.Reverse = o.Reverse
	}
	return g.release(), nil
}

func ParseDepthToSpace(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[DepthToSpaceParams](alloc, schema.BuiltinOperatorDepthToSpace)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.DepthToSpaceOptions; o != nil {
		g.get().BlockSize = o.BlockSize
	}
	return g.release(), nil
}

func ParseDepthwiseConv2D(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[DepthwiseConv2DParams](alloc, schema.BuiltinOperatorDepthwiseConv2D)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.DepthwiseConv2DOptions; o != nil {
		p := g.get()
		p.Padding = convertPadding(o.Padding)
		p.StrideWidth = o.StrideW
		p.StrideHeight = o.StrideH
		p.DepthMultiplier = o.DepthMultiplier
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.DilationWidthFactor = o.DilationWFactor
		p.DilationHeightFactor = o.DilationHFactor
	}
	return g.release(), nil
}

func ParseEmbeddingLookupSparse(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[EmbeddingLookupSparseParams](alloc, schema.BuiltinOperatorEmbeddingLookupSparse)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.EmbeddingLookupSparseOptions; o != nil {
		g.get().Combiner = convertCombiner(o.Combiner)
	}
	return g.release(), nil
}

func ParseFakeQuant(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[FakeQuantParams](alloc, schema.BuiltinOperatorFakeQuant)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.FakeQuantOptions; o != nil {
		p := g.get()
		p.Min = o.Min
		p.Max = o.Max
		p.NumBits = o.NumBits
		p.NarrowRange = o.NarrowRange
	}
	return g.release(), nil
}

func ParseFullyConnected(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[FullyConnectedParams](alloc, schema.BuiltinOperatorFullyConnected)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.FullyConnectedOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.KeepNumDims = o.KeepNumDims
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
		p.WeightsFormat, err = convertWeightsFormat(o.WeightsFormat, schema.BuiltinOperatorFullyConnected)
		if err != nil {
			return nil, err
		}
	}
	return g.release(), nil
}

func ParseGather(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[GatherParams](alloc, schema.BuiltinOperatorGather)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.GatherOptions; o != nil {
		g.get().Axis = o.Axis
	}
	return g.release(), nil
}

func ParseIf(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[IfParams](alloc, schema.BuiltinOperatorIf)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.IfOptions; o != nil {
		p := g.get()
		p.ThenSubgraphIndex = o.ThenSubgraphIndex
		p.ElseSubgraphIndex = o.ElseSubgraphIndex
	}
	return g.release(), nil
}

func ParseWhile(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[WhileParams](alloc, schema.BuiltinOperatorWhile)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.WhileOptions; o != nil {
		p := g.get()
		p.CondSubgraphIndex = o.CondSubgraphIndex
		p.BodySubgraphIndex = o.BodySubgraphIndex
	}
	return g.release(), nil
}

func ParseL2Normalization(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[L2NormParams](alloc, schema.BuiltinOperatorL2Normalization)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.L2NormOptions; o != nil {
		g.get().Activation = convertActivation(o.FusedActivationFunction)
	}
	return g.release(), nil
}

func ParseLSHProjection(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[LSHProjectionParams](alloc, schema.BuiltinOperatorLSHProjection)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.LSHProjectionOptions; o != nil {
		g.get().Type = convertLSHProjection(o.Type)
	}
	return g.release(), nil
}

// ParseLSTM is the one decoder that refuses a missing options record: the
// kernel type it carries selects between incompatible implementations, and
// there is no safe default to fall back to.
func ParseLSTM(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	o := op.LSTMOptions
	if o == nil {
		return nil, errors.MissingOptions(schema.BuiltinOperatorLSTM.String())
	}

	g, err := acquire[LSTMParams](alloc, schema.BuiltinOperatorLSTM)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	p := g.get()
	p.Activation = convertActivation(o.FusedActivationFunction)
	p.CellClip = o.CellClip
	p.ProjClip = o.ProjClip
	p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	p.KernelType, err = convertLSTMKernel(o.KernelType, schema.BuiltinOperatorLSTM)
	if err != nil {
		return nil, err
	}
	return g.release(), nil
}

func ParseUnidirectionalSequenceLSTM(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[UnidirectionalSequenceLSTMParams](alloc, schema.BuiltinOperatorUnidirectionalSequenceLSTM)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.UnidirectionalSequenceLSTMOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.CellClip = o.CellClip
		p.ProjClip = o.ProjClip
		p.TimeMajor = o.TimeMajor
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseBidirectionalSequenceLSTM(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[BidirectionalSequenceLSTMParams](alloc, schema.BuiltinOperatorBidirectionalSequenceLSTM)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.BidirectionalSequenceLSTMOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.CellClip = o.CellClip
		p.ProjClip = o.ProjClip
		p.MergeOutputs = o.MergeOutputs
		p.TimeMajor = o.TimeMajor
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseRNN(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[RNNParams](alloc, schema.BuiltinOperatorRNN)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.RNNOptions; o != nil {
		p := g.get()
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseUnidirectionalSequenceRNN(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SequenceRNNParams](alloc, schema.BuiltinOperatorUnidirectionalSequenceRNN)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SequenceRNNOptions; o != nil {
		p := g.get()
		p.TimeMajor = o.TimeMajor
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseBidirectionalSequenceRNN(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[BidirectionalSequenceRNNParams](alloc, schema.BuiltinOperatorBidirectionalSequenceRNN)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.BidirectionalSequenceRNNOptions; o != nil {
		p := g.get()
		p.TimeMajor = o.TimeMajor
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.MergeOutputs = o.MergeOutputs
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseLeakyRelu(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[LeakyReluParams](alloc, schema.BuiltinOperatorLeakyRelu)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.LeakyReluOptions; o != nil {
		g.get().Alpha = o.Alpha
	}
	return g.release(), nil
}

func ParseLocalResponseNormalization(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[LocalResponseNormParams](alloc, schema.BuiltinOperatorLocalResponseNormalization)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.LocalResponseNormalizationOptions; o != nil {
		p := g.get()
		p.Radius = o.Radius
		p.Bias = o.Bias
		p.Alpha = o.Alpha
		p.Beta = o.Beta
	}
	return g.release(), nil
}

func ParseMirrorPad(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[MirrorPadParams](alloc, schema.BuiltinOperatorMirrorPad)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.MirrorPadOptions; o != nil {
		g.get().Mode = convertMirrorPadding(o.Mode)
	}
	return g.release(), nil
}

func ParseOneHot(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[OneHotParams](alloc, schema.BuiltinOperatorOneHot)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.OneHotOptions; o != nil {
		g.get().Axis = o.Axis
	}
	return g.release(), nil
}

func ParsePack(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[PackParams](alloc, schema.BuiltinOperatorPack)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.PackOptions; o != nil {
		p := g.get()
		p.ValuesCount = o.ValuesCount
		p.Axis = o.Axis
	}
	return g.release(), nil
}

// parsePool2D decodes the shared pooling options for the three pooling
// operators; code tags errors with the caller's identity.
func parsePool2D(op *schema.Operator, code schema.BuiltinOperator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[Pool2DParams](alloc, code)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.Pool2DOptions; o != nil {
		p := g.get()
		p.Padding = convertPadding(o.Padding)
		p.StrideWidth = o.StrideW
		p.StrideHeight = o.StrideH
		p.FilterWidth = o.FilterWidth
		p.FilterHeight = o.FilterHeight
		p.Activation = convertActivation(o.FusedActivationFunction)
	}
	return g.release(), nil
}

func ParseAveragePool2D(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parsePool2D(op, schema.BuiltinOperatorAveragePool2D, alloc)
}

func ParseMaxPool2D(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parsePool2D(op, schema.BuiltinOperatorMaxPool2D, alloc)
}

func ParseL2Pool2D(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parsePool2D(op, schema.BuiltinOperatorL2Pool2D, alloc)
}

// parseReducer decodes the shared reducer options for the reduction family.
func parseReducer(op *schema.Operator, code schema.BuiltinOperator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ReducerParams](alloc, code)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ReducerOptions; o != nil {
		g.get().KeepDims = o.KeepDims
	}
	return g.release(), nil
}

func ParseMean(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorMean, alloc)
}

func ParseSum(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorSum, alloc)
}

func ParseReduceMax(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorReduceMax, alloc)
}

func ParseReduceMin(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorReduceMin, alloc)
}

func ParseReduceProd(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorReduceProd, alloc)
}

func ParseReduceAny(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseReducer(op, schema.BuiltinOperatorReduceAny, alloc)
}

func ParseReshape(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ReshapeParams](alloc, schema.BuiltinOperatorReshape)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ReshapeOptions; o != nil && o.NewShape != nil {
		p := g.get()
		p.NumDimensions, err = intVectorToArray(o.NewShape, p.Shape[:], schema.BuiltinOperatorReshape, "new_shape")
		if err != nil {
			return nil, err
		}
	}
	return g.release(), nil
}

func ParseResizeBilinear(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ResizeBilinearParams](alloc, schema.BuiltinOperatorResizeBilinear)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ResizeBilinearOptions; o != nil {
		p := g.get()
		p.AlignCorners = o.AlignCorners
		p.HalfPixelCenters = o.HalfPixelCenters
	}
	return g.release(), nil
}

func ParseResizeNearestNeighbor(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ResizeNearestNeighborParams](alloc, schema.BuiltinOperatorResizeNearestNeighbor)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ResizeNearestNeighborOptions; o != nil {
		p := g.get()
		p.AlignCorners = o.AlignCorners
		p.HalfPixelCenters = o.HalfPixelCenters
	}
	return g.release(), nil
}

func ParseReverseSequence(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ReverseSequenceParams](alloc, schema.BuiltinOperatorReverseSequence)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ReverseSequenceOptions; o != nil {
		p := g.get()
		p.SeqDim = o.SeqDim
		p.BatchDim = o.BatchDim
	}
	return g.release(), nil
}

func ParseShape(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[ShapeParams](alloc, schema.BuiltinOperatorShape)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.ShapeOptions; o != nil {
		p := g.get()
		p.OutType, err = ConvertTensorType(o.OutType, schema.BuiltinOperatorShape, "out_type")
		if err != nil {
			return nil, err
		}
	}
	return g.release(), nil
}

func ParseSkipGram(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SkipGramParams](alloc, schema.BuiltinOperatorSkipGram)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SkipGramOptions; o != nil {
		p := g.get()
		p.NgramSize = o.NgramSize
		p.MaxSkipSize = o.MaxSkipSize
		p.IncludeAllNgrams = o.IncludeAllNgrams
	}
	return g.release(), nil
}

func ParseSoftmax(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SoftmaxParams](alloc, schema.BuiltinOperatorSoftmax)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SoftmaxOptions; o != nil {
		g.get().Beta = o.Beta
	}
	return g.release(), nil
}

func ParseSpaceToDepth(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SpaceToDepthParams](alloc, schema.BuiltinOperatorSpaceToDepth)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SpaceToDepthOptions; o != nil {
		g.get().BlockSize = o.BlockSize
	}
	return g.release(), nil
}

func ParseSparseToDense(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SparseToDenseParams](alloc, schema.BuiltinOperatorSparseToDense)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SparseToDenseOptions; o != nil {
		g.get().ValidateIndices = o.ValidateIndices
	}
	return g.release(), nil
}

func ParseSplit(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SplitParams](alloc, schema.BuiltinOperatorSplit)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SplitOptions; o != nil {
		g.get().NumSplits = o.NumSplits
	}
	return g.release(), nil
}

func ParseSplitV(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SplitVParams](alloc, schema.BuiltinOperatorSplitV)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SplitVOptions; o != nil {
		g.get().NumSplits = o.NumSplits
	}
	return g.release(), nil
}

func ParseSqueeze(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SqueezeParams](alloc, schema.BuiltinOperatorSqueeze)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SqueezeOptions; o != nil && o.SqueezeDims != nil {
		p := g.get()
		p.NumSqueezeDims, err = intVectorToArray(o.SqueezeDims, p.SqueezeDims[:], schema.BuiltinOperatorSqueeze, "squeeze_dims")
		if err != nil {
			return nil, err
		}
	}
	return g.release(), nil
}

func ParseStridedSlice(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[StridedSliceParams](alloc, schema.BuiltinOperatorStridedSlice)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.StridedSliceOptions; o != nil {
		p := g.get()
		p.BeginMask = o.BeginMask
		p.EndMask = o.EndMask
		p.EllipsisMask = o.EllipsisMask
		p.NewAxisMask = o.NewAxisMask
		p.ShrinkAxisMask = o.ShrinkAxisMask
	}
	return g.release(), nil
}

func ParseSVDF(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[SVDFParams](alloc, schema.BuiltinOperatorSVDF)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.SVDFOptions; o != nil {
		p := g.get()
		p.Rank = o.Rank
		p.Activation = convertActivation(o.FusedActivationFunction)
		p.AsymmetricQuantizeInputs = o.AsymmetricQuantizeInputs
	}
	return g.release(), nil
}

func ParseTransposeConv(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[TransposeConvParams](alloc, schema.BuiltinOperatorTransposeConv)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.TransposeConvOptions; o != nil {
		p := g.get()
		p.Padding = convertPadding(o.Padding)
		p.StrideWidth = o.StrideW
		p.StrideHeight = o.StrideH
	}
	return g.release(), nil
}

func ParseUnique(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[UniqueParams](alloc, schema.BuiltinOperatorUnique)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	// The index output defaults to INT32; only an explicit INT64 widens it.
	p := g.get()
	p.IndexOutType = Int32
	if o := op.UniqueOptions; o != nil && o.IdxOutType == schema.TensorTypeInt64 {
		p.IndexOutType = Int64
	}
	return g.release(), nil
}

func ParseUnpack(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)

	g, err := acquire[UnpackParams](alloc, schema.BuiltinOperatorUnpack)
	if err != nil {
		return nil, err
	}
	defer g.discard()

	if o := op.UnpackOptions; o != nil {
		p := g.get()
		p.Num = o.Num
		p.Axis = o.Axis
	}
	return g.release(), nil
}
