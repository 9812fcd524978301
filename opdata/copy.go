package opdata

import (
	"github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

// intVectorToArray copies a serialized int32 vector into the fixed-capacity
// dst and returns the element count. A nil src means the options record
// omitted a required field; a src longer than dst is rejected outright, never
// truncated.
func intVectorToArray(src []int32, dst []int32, op schema.BuiltinOperator, field string) (int32, error) {
	if src == nil {
		return 0, errors.MissingField(op.String(), field)
	}
	if len(src) > len(dst) {
		return 0, errors.CapacityExceeded(op.String(), field, len(src), len(dst))
	}
	copy(dst, src)
	return int32(len(src)), nil
}
