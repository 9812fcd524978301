package opdata

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	ferrors "github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

func TestParseOpData_Conv2D(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		Conv2DOptions: &schema.Conv2DOptions{
			Padding:                 schema.PaddingValid,
			StrideW:                 2,
			StrideH:                 3,
			FusedActivationFunction: schema.ActivationFunctionTypeRelu6,
			DilationWFactor:         4,
			DilationHFactor:         5,
		},
	}

	params, err := ParseOpData(op, schema.BuiltinOperatorConv2D, alloc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	p, ok := params.(*Conv2DParams)
	if !ok {
		t.Fatalf("wrong block type %T", params)
	}
	want := Conv2DParams{
		Padding:              PaddingValid,
		StrideWidth:          2,
		StrideHeight:         3,
		Activation:           ActRelu6,
		DilationWidthFactor:  4,
		DilationHeightFactor: 5,
	}
	if *p != want {
		t.Errorf("decoded %+v, want %+v", *p, want)
	}
	if alloc.allocs != 1 || alloc.frees != 0 {
		t.Errorf("traffic allocs=%d frees=%d, want 1/0", alloc.allocs, alloc.frees)
	}
}

func TestParseOpData_PoolSharedAcrossVariants(t *testing.T) {
	op := &schema.Operator{
		Pool2DOptions: &schema.Pool2DOptions{
			Padding:                 schema.PaddingSame,
			StrideW:                 1,
			StrideH:                 1,
			FilterWidth:             3,
			FilterHeight:            3,
			FusedActivationFunction: schema.ActivationFunctionTypeRelu,
		},
	}

	for _, code := range []schema.BuiltinOperator{
		schema.BuiltinOperatorAveragePool2D,
		schema.BuiltinOperatorMaxPool2D,
		schema.BuiltinOperatorL2Pool2D,
	} {
		params, err := ParseOpData(op, code, newCountingAllocator())
		if err != nil {
			t.Fatalf("%s: decode failed: %v", code, err)
		}
		p := params.(*Pool2DParams)
		if p.FilterWidth != 3 || p.FilterHeight != 3 || p.Activation != ActRelu {
			t.Errorf("%s: decoded %+v", code, *p)
		}
	}
}

func TestParseOpData_ReducerSharedAcrossVariants(t *testing.T) {
	op := &schema.Operator{ReducerOptions: &schema.ReducerOptions{KeepDims: true}}

	for _, code := range []schema.BuiltinOperator{
		schema.BuiltinOperatorMean,
		schema.BuiltinOperatorSum,
		schema.BuiltinOperatorReduceMax,
		schema.BuiltinOperatorReduceMin,
		schema.BuiltinOperatorReduceProd,
		schema.BuiltinOperatorReduceAny,
	} {
		params, err := ParseOpData(op, code, newCountingAllocator())
		if err != nil {
			t.Fatalf("%s: decode failed: %v", code, err)
		}
		if !params.(*ReducerParams).KeepDims {
			t.Errorf("%s: KeepDims not carried", code)
		}
	}
}

func TestParseOpData_NoParamsOperator(t *testing.T) {
	alloc := newCountingAllocator()

	params, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorFloor, alloc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if params != nil {
		t.Errorf("FLOOR produced a block: %+v", params)
	}
	if alloc.attempts != 0 {
		t.Errorf("FLOOR touched the allocator %d times", alloc.attempts)
	}
}

func TestParseOpData_MissingOptionsDecodesToDefaults(t *testing.T) {
	alloc := newCountingAllocator()

	params, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorConv2D, alloc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p := params.(*Conv2DParams)
	var zero Conv2DParams
	if *p != zero {
		t.Errorf("missing options decoded to %+v, want zero block", *p)
	}
}

func TestParseOpData_GatherDefaultsAxisToZero(t *testing.T) {
	params, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorGather, newCountingAllocator())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if axis := params.(*GatherParams).Axis; axis != 0 {
		t.Errorf("axis = %d, want 0", axis)
	}
}

func TestParseOpData_LSTMRequiresOptions(t *testing.T) {
	alloc := newCountingAllocator()

	_, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorLSTM, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindMissingOptions, Op: "LSTM"}) {
		t.Fatalf("want missing_options for LSTM, got %v", err)
	}
	if alloc.attempts != 0 {
		t.Errorf("rejected decode touched the allocator %d times", alloc.attempts)
	}
}

func TestParseOpData_LSTM(t *testing.T) {
	op := &schema.Operator{
		LSTMOptions: &schema.LSTMOptions{
			FusedActivationFunction:  schema.ActivationFunctionTypeTanh,
			CellClip:                 10,
			ProjClip:                 0.5,
			KernelType:               schema.LSTMKernelTypeBasic,
			AsymmetricQuantizeInputs: true,
		},
	}

	params, err := ParseOpData(op, schema.BuiltinOperatorLSTM, newCountingAllocator())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := LSTMParams{
		Activation:               ActTanh,
		CellClip:                 10,
		ProjClip:                 0.5,
		KernelType:               LSTMKernelBasic,
		AsymmetricQuantizeInputs: true,
	}
	if got := *params.(*LSTMParams); got != want {
		t.Errorf("decoded %+v, want %+v", got, want)
	}
}

func TestParseOpData_LSTMUnknownKernelFreesBlock(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		LSTMOptions: &schema.LSTMOptions{KernelType: schema.LSTMKernelType(7)},
	}

	_, err := ParseOpData(op, schema.BuiltinOperatorLSTM, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum}) {
		t.Fatalf("want invalid_enum, got %v", err)
	}
	if alloc.allocs != 1 || alloc.frees != 1 || alloc.outstanding() != 0 {
		t.Errorf("leak on error path: allocs=%d frees=%d outstanding=%d",
			alloc.allocs, alloc.frees, alloc.outstanding())
	}
}

func TestParseOpData_FullyConnectedUnknownWeightsFormat(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		FullyConnectedOptions: &schema.FullyConnectedOptions{
			WeightsFormat: schema.FullyConnectedOptionsWeightsFormat(5),
		},
	}

	_, err := ParseOpData(op, schema.BuiltinOperatorFullyConnected, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum, Op: "FULLY_CONNECTED"}) {
		t.Fatalf("want invalid_enum, got %v", err)
	}
	if alloc.outstanding() != 0 {
		t.Errorf("leak on error path: outstanding=%d", alloc.outstanding())
	}
}

func TestParseOpData_CastUnknownTensorTypeFreesBlock(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		CastOptions: &schema.CastOptions{
			InDataType:  schema.TensorTypeFloat32,
			OutDataType: schema.TensorType(50),
		},
	}

	_, err := ParseOpData(op, schema.BuiltinOperatorCast, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindInvalidEnum}) {
		t.Fatalf("want invalid_enum, got %v", err)
	}
	if alloc.allocs != 1 || alloc.frees != 1 {
		t.Errorf("traffic allocs=%d frees=%d, want 1/1", alloc.allocs, alloc.frees)
	}
}

func TestParseOpData_Reshape(t *testing.T) {
	op := &schema.Operator{
		ReshapeOptions: &schema.ReshapeOptions{NewShape: []int32{1, -1, 28, 28}},
	}

	params, err := ParseOpData(op, schema.BuiltinOperatorReshape, newCountingAllocator())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p := params.(*ReshapeParams)
	if p.NumDimensions != 4 {
		t.Errorf("NumDimensions = %d, want 4", p.NumDimensions)
	}
	if p.Shape != [MaxShapeDims]int32{1, -1, 28, 28, 0, 0, 0, 0} {
		t.Errorf("Shape = %v", p.Shape)
	}
}

func TestParseOpData_ReshapeTooManyDimsFreesBlock(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		ReshapeOptions: &schema.ReshapeOptions{NewShape: make([]int32, MaxShapeDims+1)},
	}

	_, err := ParseOpData(op, schema.BuiltinOperatorReshape, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindCapacityExceeded, Op: "RESHAPE"}) {
		t.Fatalf("want capacity_exceeded, got %v", err)
	}
	if alloc.allocs != 1 || alloc.frees != 1 || alloc.outstanding() != 0 {
		t.Errorf("leak on error path: allocs=%d frees=%d outstanding=%d",
			alloc.allocs, alloc.frees, alloc.outstanding())
	}
}

func TestParseOpData_Squeeze(t *testing.T) {
	op := &schema.Operator{
		SqueezeOptions: &schema.SqueezeOptions{SqueezeDims: []int32{0, 2}},
	}

	params, err := ParseOpData(op, schema.BuiltinOperatorSqueeze, newCountingAllocator())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p := params.(*SqueezeParams)
	if p.NumSqueezeDims != 2 || p.SqueezeDims[0] != 0 || p.SqueezeDims[1] != 2 {
		t.Errorf("decoded %+v", *p)
	}
}

func TestParseOpData_SqueezeTooManyDimsFreesBlock(t *testing.T) {
	alloc := newCountingAllocator()
	op := &schema.Operator{
		SqueezeOptions: &schema.SqueezeOptions{SqueezeDims: make([]int32, 10)},
	}

	_, err := ParseOpData(op, schema.BuiltinOperatorSqueeze, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindCapacityExceeded, Op: "SQUEEZE"}) {
		t.Fatalf("want capacity_exceeded, got %v", err)
	}
	if alloc.outstanding() != 0 {
		t.Errorf("leak on error path: outstanding=%d", alloc.outstanding())
	}
}

func TestParseOpData_UniqueIndexType(t *testing.T) {
	alloc := newCountingAllocator()

	// Default and anything that is not INT64 narrows to INT32.
	params, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorUnique, alloc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := params.(*UniqueParams).IndexOutType; got != Int32 {
		t.Errorf("default index type = %v, want Int32", got)
	}

	op := &schema.Operator{UniqueOptions: &schema.UniqueOptions{IdxOutType: schema.TensorTypeInt64}}
	params, err = ParseOpData(op, schema.BuiltinOperatorUnique, alloc)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got := params.(*UniqueParams).IndexOutType; got != Int64 {
		t.Errorf("index type = %v, want Int64", got)
	}
}

func TestParseOpData_RejectedCodes(t *testing.T) {
	for _, code := range []schema.BuiltinOperator{
		schema.BuiltinOperatorDelegate,
		schema.BuiltinOperatorPlaceholder,
	} {
		alloc := newCountingAllocator()
		_, err := ParseOpData(&schema.Operator{}, code, alloc)
		if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindUnsupportedOperator}) {
			t.Errorf("%s: want unsupported_operator, got %v", code, err)
		}
		if alloc.attempts != 0 {
			t.Errorf("%s: rejected decode touched the allocator", code)
		}
	}
}

func TestParseOpData_UnknownCode(t *testing.T) {
	_, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperator(999), newCountingAllocator())
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindUnsupportedOperator}) {
		t.Errorf("want unsupported_operator, got %v", err)
	}
}

func TestParseOpData_AllocatorFailurePropagates(t *testing.T) {
	alloc := newCountingAllocator()
	alloc.failAt = 1

	_, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorSoftmax, alloc)
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindAllocation}) {
		t.Fatalf("want allocation error, got %v", err)
	}
	if !errors.Is(err, errAllocRefused) {
		t.Errorf("cause not preserved: %v", err)
	}
	if alloc.outstanding() != 0 || alloc.frees != 0 {
		t.Errorf("failed alloc produced traffic: frees=%d outstanding=%d", alloc.frees, alloc.outstanding())
	}
}

// TestParseOpData_EveryBuiltin walks the full operator catalogue with an
// options-free node and checks that dispatch, registration table, and
// allocator balance agree for every code.
func TestParseOpData_EveryBuiltin(t *testing.T) {
	for _, code := range schema.BuiltinOperators() {
		t.Run(code.String(), func(t *testing.T) {
			reg, ok := RegistrationFor(code)
			if !ok {
				t.Fatalf("no registration for %s", code)
			}
			if reg.Code != code {
				t.Fatalf("registration code mismatch: %s", reg.Code)
			}

			alloc := newCountingAllocator()
			params, err := ParseOpData(&schema.Operator{}, code, alloc)

			switch reg.Policy {
			case PolicyNoParams:
				if err != nil || params != nil {
					t.Fatalf("no-params op: params=%v err=%v", params, err)
				}
				if alloc.outstanding() != 0 {
					t.Fatalf("no-params op allocated")
				}
			case PolicyLenient:
				if err != nil {
					t.Fatalf("lenient op failed without options: %v", err)
				}
				if params == nil {
					t.Fatal("lenient op returned no block")
				}
				if alloc.allocs != 1 || alloc.frees != 0 {
					t.Fatalf("traffic allocs=%d frees=%d, want 1/0", alloc.allocs, alloc.frees)
				}
			case PolicyStrict:
				if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindMissingOptions}) {
					t.Fatalf("strict op: want missing_options, got %v", err)
				}
				if alloc.outstanding() != 0 {
					t.Fatal("strict rejection leaked")
				}
			case PolicyRejected:
				if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindUnsupportedOperator}) {
					t.Fatalf("rejected op: want unsupported_operator, got %v", err)
				}
				if reg.Parse != nil {
					t.Fatal("rejected op has a parse function")
				}
			}

			// The standalone parse function must agree with the dispatcher.
			if reg.Parse != nil {
				direct := newCountingAllocator()
				dParams, dErr := reg.Parse(&schema.Operator{}, direct)
				if (dErr == nil) != (err == nil) {
					t.Fatalf("dispatch err=%v but direct err=%v", err, dErr)
				}
				if (dParams == nil) != (params == nil) {
					t.Fatalf("dispatch params=%v but direct params=%v", params, dParams)
				}
			}
		})
	}
}

func TestParseOpData_NilArgumentsPanic(t *testing.T) {
	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	assertPanics("nil operator", func() {
		_, _ = ParseOpData(nil, schema.BuiltinOperatorAdd, newCountingAllocator())
	})
	assertPanics("nil allocator", func() {
		_, _ = ParseOpData(&schema.Operator{}, schema.BuiltinOperatorAdd, nil)
	})
}

func TestParseOpData_LogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	_, err := ParseOpData(&schema.Operator{}, schema.BuiltinOperatorLSTM, newCountingAllocator())
	if err == nil {
		t.Fatal("expected decode failure")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["operator"] != "LSTM" {
		t.Errorf("operator field = %v", fields["operator"])
	}
}
