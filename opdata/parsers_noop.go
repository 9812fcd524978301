package opdata

import (
	flatruntime "github.com/flatml/flat-runtime"
	"github.com/flatml/flat-runtime/schema"
)

// Operators without a parameter block still get a named parse function so a
// selectively-registered build can reference every operator through the same
// function shape. They validate the call contract and return a nil block.

func parseNoParams(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	checkParseArgs(op, alloc)
	return nil, nil
}

func ParseAbs(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseAddN(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseBatchToSpaceND(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseCeil(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseCos(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseDequantize(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseElu(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseEqual(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseExp(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseExpandDims(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseFill(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseFloor(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseFloorDiv(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseFloorMod(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseGatherND(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseGreater(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseGreaterEqual(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseHardSwish(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLess(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLessEqual(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLog(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLogicalAnd(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLogicalNot(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLogicalOr(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLogistic(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseLogSoftmax(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseMaximum(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseMinimum(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseNeg(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseNotEqual(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParsePad(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParsePadV2(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParsePow(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParsePrelu(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseQuantize(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseRelu(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseRelu6(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseRound(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseRsqrt(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseSin(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseSpaceToBatchND(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseSqrt(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseSquare(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseTanh(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseTranspose(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}

func ParseZerosLike(op *schema.Operator, alloc flatruntime.Allocator) (Params, error) {
	return parseNoParams(op, alloc)
}
