package opdata

import (
	flatruntime "github.com/flatml/flat-runtime"
	"github.com/flatml/flat-runtime/schema"
)

// Policy classifies how an operator's decoder treats a missing options
// record.
type Policy int

const (
	// PolicyNoParams marks operators that never carry a parameter block.
	PolicyNoParams Policy = iota
	// PolicyLenient marks operators whose decoder substitutes a zeroed
	// block when the options record is absent.
	PolicyLenient
	// PolicyStrict marks operators whose decoder rejects a missing options
	// record.
	PolicyStrict
	// PolicyRejected marks codes that must not appear in a model at all.
	PolicyRejected
)

// ParserFunc is the shape shared by every per-operator parse function.
type ParserFunc func(*schema.Operator, flatruntime.Allocator) (Params, error)

// Registration binds an operator code to its decode policy and parse
// function. Rejected codes have a nil Parse.
type Registration struct {
	Code   schema.BuiltinOperator
	Policy Policy
	Parse  ParserFunc
}

// RegistrationFor reports the registration for code. The second return is
// false for codes this runtime has never heard of.
func RegistrationFor(code schema.BuiltinOperator) (Registration, bool) {
	r, ok := registrations[code]
	return r, ok
}

var registrations = map[schema.BuiltinOperator]Registration{
	schema.BuiltinOperatorAdd:                        {schema.BuiltinOperatorAdd, PolicyLenient, ParseAdd},
	schema.BuiltinOperatorAveragePool2D:              {schema.BuiltinOperatorAveragePool2D, PolicyLenient, ParseAveragePool2D},
	schema.BuiltinOperatorConcatenation:              {schema.BuiltinOperatorConcatenation, PolicyLenient, ParseConcatenation},
	schema.BuiltinOperatorConv2D:                     {schema.BuiltinOperatorConv2D, PolicyLenient, ParseConv2D},
	schema.BuiltinOperatorDepthwiseConv2D:            {schema.BuiltinOperatorDepthwiseConv2D, PolicyLenient, ParseDepthwiseConv2D},
	schema.BuiltinOperatorDepthToSpace:               {schema.BuiltinOperatorDepthToSpace, PolicyLenient, ParseDepthToSpace},
	schema.BuiltinOperatorDequantize:                 {schema.BuiltinOperatorDequantize, PolicyNoParams, ParseDequantize},
	schema.BuiltinOperatorEmbeddingLookup:            {schema.BuiltinOperatorEmbeddingLookup, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorFloor:                      {schema.BuiltinOperatorFloor, PolicyNoParams, ParseFloor},
	schema.BuiltinOperatorFullyConnected:             {schema.BuiltinOperatorFullyConnected, PolicyLenient, ParseFullyConnected},
	schema.BuiltinOperatorHashtableLookup:            {schema.BuiltinOperatorHashtableLookup, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorL2Normalization:            {schema.BuiltinOperatorL2Normalization, PolicyLenient, ParseL2Normalization},
	schema.BuiltinOperatorL2Pool2D:                   {schema.BuiltinOperatorL2Pool2D, PolicyLenient, ParseL2Pool2D},
	schema.BuiltinOperatorLocalResponseNormalization: {schema.BuiltinOperatorLocalResponseNormalization, PolicyLenient, ParseLocalResponseNormalization},
	schema.BuiltinOperatorLogistic:                   {schema.BuiltinOperatorLogistic, PolicyNoParams, ParseLogistic},
	schema.BuiltinOperatorLSHProjection:              {schema.BuiltinOperatorLSHProjection, PolicyLenient, ParseLSHProjection},
	schema.BuiltinOperatorLSTM:                       {schema.BuiltinOperatorLSTM, PolicyStrict, ParseLSTM},
	schema.BuiltinOperatorMaxPool2D:                  {schema.BuiltinOperatorMaxPool2D, PolicyLenient, ParseMaxPool2D},
	schema.BuiltinOperatorMul:                        {schema.BuiltinOperatorMul, PolicyLenient, ParseMul},
	schema.BuiltinOperatorRelu:                       {schema.BuiltinOperatorRelu, PolicyNoParams, ParseRelu},
	schema.BuiltinOperatorReluN1To1:                  {schema.BuiltinOperatorReluN1To1, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorRelu6:                      {schema.BuiltinOperatorRelu6, PolicyNoParams, ParseRelu6},
	schema.BuiltinOperatorReshape:                    {schema.BuiltinOperatorReshape, PolicyLenient, ParseReshape},
	schema.BuiltinOperatorResizeBilinear:             {schema.BuiltinOperatorResizeBilinear, PolicyLenient, ParseResizeBilinear},
	schema.BuiltinOperatorRNN:                        {schema.BuiltinOperatorRNN, PolicyLenient, ParseRNN},
	schema.BuiltinOperatorSoftmax:                    {schema.BuiltinOperatorSoftmax, PolicyLenient, ParseSoftmax},
	schema.BuiltinOperatorSpaceToDepth:               {schema.BuiltinOperatorSpaceToDepth, PolicyLenient, ParseSpaceToDepth},
	schema.BuiltinOperatorSVDF:                       {schema.BuiltinOperatorSVDF, PolicyLenient, ParseSVDF},
	schema.BuiltinOperatorTanh:                       {schema.BuiltinOperatorTanh, PolicyNoParams, ParseTanh},
	schema.BuiltinOperatorConcatEmbeddings:           {schema.BuiltinOperatorConcatEmbeddings, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSkipGram:                   {schema.BuiltinOperatorSkipGram, PolicyLenient, ParseSkipGram},
	schema.BuiltinOperatorCall:                       {schema.BuiltinOperatorCall, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorCustom:                     {schema.BuiltinOperatorCustom, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorEmbeddingLookupSparse:      {schema.BuiltinOperatorEmbeddingLookupSparse, PolicyLenient, ParseEmbeddingLookupSparse},
	schema.BuiltinOperatorPad:                        {schema.BuiltinOperatorPad, PolicyNoParams, ParsePad},
	schema.BuiltinOperatorUnidirectionalSequenceRNN:  {schema.BuiltinOperatorUnidirectionalSequenceRNN, PolicyLenient, ParseUnidirectionalSequenceRNN},
	schema.BuiltinOperatorGather:                     {schema.BuiltinOperatorGather, PolicyLenient, ParseGather},
	schema.BuiltinOperatorBatchToSpaceND:             {schema.BuiltinOperatorBatchToSpaceND, PolicyNoParams, ParseBatchToSpaceND},
	schema.BuiltinOperatorSpaceToBatchND:             {schema.BuiltinOperatorSpaceToBatchND, PolicyNoParams, ParseSpaceToBatchND},
	schema.BuiltinOperatorTranspose:                  {schema.BuiltinOperatorTranspose, PolicyNoParams, ParseTranspose},
	schema.BuiltinOperatorMean:                       {schema.BuiltinOperatorMean, PolicyLenient, ParseMean},
	schema.BuiltinOperatorSub:                        {schema.BuiltinOperatorSub, PolicyLenient, ParseSub},
	schema.BuiltinOperatorDiv:                        {schema.BuiltinOperatorDiv, PolicyLenient, ParseDiv},
	schema.BuiltinOperatorSqueeze:                    {schema.BuiltinOperatorSqueeze, PolicyLenient, ParseSqueeze},
	schema.BuiltinOperatorUnidirectionalSequenceLSTM: {schema.BuiltinOperatorUnidirectionalSequenceLSTM, PolicyLenient, ParseUnidirectionalSequenceLSTM},
	schema.BuiltinOperatorStridedSlice:               {schema.BuiltinOperatorStridedSlice, PolicyLenient, ParseStridedSlice},
	schema.BuiltinOperatorBidirectionalSequenceRNN:   {schema.BuiltinOperatorBidirectionalSequenceRNN, PolicyLenient, ParseBidirectionalSequenceRNN},
	schema.BuiltinOperatorExp:                        {schema.BuiltinOperatorExp, PolicyNoParams, ParseExp},
	schema.BuiltinOperatorTopKV2:                     {schema.BuiltinOperatorTopKV2, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSplit:                      {schema.BuiltinOperatorSplit, PolicyLenient, ParseSplit},
	schema.BuiltinOperatorLogSoftmax:                 {schema.BuiltinOperatorLogSoftmax, PolicyNoParams, ParseLogSoftmax},
	schema.BuiltinOperatorDelegate:                   {schema.BuiltinOperatorDelegate, PolicyRejected, nil},
	schema.BuiltinOperatorBidirectionalSequenceLSTM:  {schema.BuiltinOperatorBidirectionalSequenceLSTM, PolicyLenient, ParseBidirectionalSequenceLSTM},
	schema.BuiltinOperatorCast:                       {schema.BuiltinOperatorCast, PolicyLenient, ParseCast},
	schema.BuiltinOperatorPrelu:                      {schema.BuiltinOperatorPrelu, PolicyNoParams, ParsePrelu},
	schema.BuiltinOperatorMaximum:                    {schema.BuiltinOperatorMaximum, PolicyNoParams, ParseMaximum},
	schema.BuiltinOperatorArgMax:                     {schema.BuiltinOperatorArgMax, PolicyLenient, ParseArgMax},
	schema.BuiltinOperatorMinimum:                    {schema.BuiltinOperatorMinimum, PolicyNoParams, ParseMinimum},
	schema.BuiltinOperatorLess:                       {schema.BuiltinOperatorLess, PolicyNoParams, ParseLess},
	schema.BuiltinOperatorNeg:                        {schema.BuiltinOperatorNeg, PolicyNoParams, ParseNeg},
	schema.BuiltinOperatorPadV2:                      {schema.BuiltinOperatorPadV2, PolicyNoParams, ParsePadV2},
	schema.BuiltinOperatorGreater:                    {schema.BuiltinOperatorGreater, PolicyNoParams, ParseGreater},
	schema.BuiltinOperatorGreaterEqual:               {schema.BuiltinOperatorGreaterEqual, PolicyNoParams, ParseGreaterEqual},
	schema.BuiltinOperatorLessEqual:                  {schema.BuiltinOperatorLessEqual, PolicyNoParams, ParseLessEqual},
	schema.BuiltinOperatorSelect:                     {schema.BuiltinOperatorSelect, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSlice:                      {schema.BuiltinOperatorSlice, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSin:                        {schema.BuiltinOperatorSin, PolicyNoParams, ParseSin},
	schema.BuiltinOperatorTransposeConv:              {schema.BuiltinOperatorTransposeConv, PolicyLenient, ParseTransposeConv},
	schema.BuiltinOperatorSparseToDense:              {schema.BuiltinOperatorSparseToDense, PolicyLenient, ParseSparseToDense},
	schema.BuiltinOperatorTile:                       {schema.BuiltinOperatorTile, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorExpandDims:                 {schema.BuiltinOperatorExpandDims, PolicyNoParams, ParseExpandDims},
	schema.BuiltinOperatorEqual:                      {schema.BuiltinOperatorEqual, PolicyNoParams, ParseEqual},
	schema.BuiltinOperatorNotEqual:                   {schema.BuiltinOperatorNotEqual, PolicyNoParams, ParseNotEqual},
	schema.BuiltinOperatorLog:                        {schema.BuiltinOperatorLog, PolicyNoParams, ParseLog},
	schema.BuiltinOperatorSum:                        {schema.BuiltinOperatorSum, PolicyLenient, ParseSum},
	schema.BuiltinOperatorSqrt:                       {schema.BuiltinOperatorSqrt, PolicyNoParams, ParseSqrt},
	schema.BuiltinOperatorRsqrt:                      {schema.BuiltinOperatorRsqrt, PolicyNoParams, ParseRsqrt},
	schema.BuiltinOperatorShape:                      {schema.BuiltinOperatorShape, PolicyLenient, ParseShape},
	schema.BuiltinOperatorPow:                        {schema.BuiltinOperatorPow, PolicyNoParams, ParsePow},
	schema.BuiltinOperatorArgMin:                     {schema.BuiltinOperatorArgMin, PolicyLenient, ParseArgMin},
	schema.BuiltinOperatorFakeQuant:                  {schema.BuiltinOperatorFakeQuant, PolicyLenient, ParseFakeQuant},
	schema.BuiltinOperatorReduceProd:                 {schema.BuiltinOperatorReduceProd, PolicyLenient, ParseReduceProd},
	schema.BuiltinOperatorReduceMax:                  {schema.BuiltinOperatorReduceMax, PolicyLenient, ParseReduceMax},
	schema.BuiltinOperatorPack:                       {schema.BuiltinOperatorPack, PolicyLenient, ParsePack},
	schema.BuiltinOperatorLogicalOr:                  {schema.BuiltinOperatorLogicalOr, PolicyNoParams, ParseLogicalOr},
	schema.BuiltinOperatorOneHot:                     {schema.BuiltinOperatorOneHot, PolicyLenient, ParseOneHot},
	schema.BuiltinOperatorLogicalAnd:                 {schema.BuiltinOperatorLogicalAnd, PolicyNoParams, ParseLogicalAnd},
	schema.BuiltinOperatorLogicalNot:                 {schema.BuiltinOperatorLogicalNot, PolicyNoParams, ParseLogicalNot},
	schema.BuiltinOperatorUnpack:                     {schema.BuiltinOperatorUnpack, PolicyLenient, ParseUnpack},
	schema.BuiltinOperatorReduceMin:                  {schema.BuiltinOperatorReduceMin, PolicyLenient, ParseReduceMin},
	schema.BuiltinOperatorFloorDiv:                   {schema.BuiltinOperatorFloorDiv, PolicyNoParams, ParseFloorDiv},
	schema.BuiltinOperatorReduceAny:                  {schema.BuiltinOperatorReduceAny, PolicyLenient, ParseReduceAny},
	schema.BuiltinOperatorSquare:                     {schema.BuiltinOperatorSquare, PolicyNoParams, ParseSquare},
	schema.BuiltinOperatorZerosLike:                  {schema.BuiltinOperatorZerosLike, PolicyNoParams, ParseZerosLike},
	schema.BuiltinOperatorFill:                       {schema.BuiltinOperatorFill, PolicyNoParams, ParseFill},
	schema.BuiltinOperatorFloorMod:                   {schema.BuiltinOperatorFloorMod, PolicyNoParams, ParseFloorMod},
	schema.BuiltinOperatorRange:                      {schema.BuiltinOperatorRange, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorResizeNearestNeighbor:      {schema.BuiltinOperatorResizeNearestNeighbor, PolicyLenient, ParseResizeNearestNeighbor},
	schema.BuiltinOperatorLeakyRelu:                  {schema.BuiltinOperatorLeakyRelu, PolicyLenient, ParseLeakyRelu},
	schema.BuiltinOperatorSquaredDifference:          {schema.BuiltinOperatorSquaredDifference, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorMirrorPad:                  {schema.BuiltinOperatorMirrorPad, PolicyLenient, ParseMirrorPad},
	schema.BuiltinOperatorAbs:                        {schema.BuiltinOperatorAbs, PolicyNoParams, ParseAbs},
	schema.BuiltinOperatorSplitV:                     {schema.BuiltinOperatorSplitV, PolicyLenient, ParseSplitV},
	schema.BuiltinOperatorUnique:                     {schema.BuiltinOperatorUnique, PolicyLenient, ParseUnique},
	schema.BuiltinOperatorCeil:                       {schema.BuiltinOperatorCeil, PolicyNoParams, ParseCeil},
	schema.BuiltinOperatorReverseV2:                  {schema.BuiltinOperatorReverseV2, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorAddN:                       {schema.BuiltinOperatorAddN, PolicyNoParams, ParseAddN},
	schema.BuiltinOperatorGatherND:                   {schema.BuiltinOperatorGatherND, PolicyNoParams, ParseGatherND},
	schema.BuiltinOperatorCos:                        {schema.BuiltinOperatorCos, PolicyNoParams, ParseCos},
	schema.BuiltinOperatorWhere:                      {schema.BuiltinOperatorWhere, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorRank:                       {schema.BuiltinOperatorRank, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorElu:                        {schema.BuiltinOperatorElu, PolicyNoParams, ParseElu},
	schema.BuiltinOperatorReverseSequence:            {schema.BuiltinOperatorReverseSequence, PolicyLenient, ParseReverseSequence},
	schema.BuiltinOperatorMatrixDiag:                 {schema.BuiltinOperatorMatrixDiag, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorQuantize:                   {schema.BuiltinOperatorQuantize, PolicyNoParams, ParseQuantize},
	schema.BuiltinOperatorMatrixSetDiag:              {schema.BuiltinOperatorMatrixSetDiag, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorRound:                      {schema.BuiltinOperatorRound, PolicyNoParams, ParseRound},
	schema.BuiltinOperatorHardSwish:                  {schema.BuiltinOperatorHardSwish, PolicyNoParams, ParseHardSwish},
	schema.BuiltinOperatorIf:                         {schema.BuiltinOperatorIf, PolicyLenient, ParseIf},
	schema.BuiltinOperatorWhile:                      {schema.BuiltinOperatorWhile, PolicyLenient, ParseWhile},
	schema.BuiltinOperatorNonMaxSuppressionV4:        {schema.BuiltinOperatorNonMaxSuppressionV4, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorNonMaxSuppressionV5:        {schema.BuiltinOperatorNonMaxSuppressionV5, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorScatterND:                  {schema.BuiltinOperatorScatterND, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSelectV2:                   {schema.BuiltinOperatorSelectV2, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorDensify:                    {schema.BuiltinOperatorDensify, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorSegmentSum:                 {schema.BuiltinOperatorSegmentSum, PolicyNoParams, parseNoParams},
	schema.BuiltinOperatorBatchMatMul:                {schema.BuiltinOperatorBatchMatMul, PolicyLenient, ParseBatchMatMul},
	schema.BuiltinOperatorPlaceholder:                {schema.BuiltinOperatorPlaceholder, PolicyRejected, nil},
	schema.BuiltinOperatorCumsum:                     {schema.BuiltinOperatorCumsum, PolicyLenient, ParseCumsum},
	schema.BuiltinOperatorCallOnce:                   {schema.BuiltinOperatorCallOnce, PolicyLenient, ParseCallOnce},
	schema.BuiltinOperatorBroadcastTo:                {schema.BuiltinOperatorBroadcastTo, PolicyNoParams, parseNoParams},
}
