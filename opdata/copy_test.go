package opdata

import (
	"errors"
	"testing"

	ferrors "github.com/flatml/flat-runtime/errors"
	"github.com/flatml/flat-runtime/schema"
)

func TestIntVectorToArray(t *testing.T) {
	var dst [MaxShapeDims]int32

	n, err := intVectorToArray([]int32{2, -1, 4}, dst[:], schema.BuiltinOperatorReshape, "new_shape")
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if dst[0] != 2 || dst[1] != -1 || dst[2] != 4 {
		t.Errorf("copied values %v", dst[:3])
	}
	for i := 3; i < len(dst); i++ {
		if dst[i] != 0 {
			t.Errorf("dst[%d] = %d, want untouched zero", i, dst[i])
		}
	}
}

func TestIntVectorToArray_Empty(t *testing.T) {
	var dst [MaxShapeDims]int32
	n, err := intVectorToArray([]int32{}, dst[:], schema.BuiltinOperatorSqueeze, "squeeze_dims")
	if err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestIntVectorToArray_NilSourceIsMissingField(t *testing.T) {
	var dst [MaxShapeDims]int32
	_, err := intVectorToArray(nil, dst[:], schema.BuiltinOperatorReshape, "new_shape")
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindMissingOptions}) {
		t.Errorf("want missing_options, got %v", err)
	}
}

func TestIntVectorToArray_OverCapacityRejected(t *testing.T) {
	var dst [MaxShapeDims]int32
	src := make([]int32, MaxShapeDims+1)

	_, err := intVectorToArray(src, dst[:], schema.BuiltinOperatorSqueeze, "squeeze_dims")
	if !errors.Is(err, &ferrors.Error{Kind: ferrors.KindCapacityExceeded}) {
		t.Fatalf("want capacity_exceeded, got %v", err)
	}
	// Rejected, not truncated: nothing was written.
	for i, v := range dst {
		if v != 0 {
			t.Errorf("dst[%d] = %d after rejected copy", i, v)
		}
	}
}
