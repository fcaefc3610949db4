package compute

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/bitutil"

	"github.com/grafana/colexpr/pkg/memory"
)

// computeValiditySS determines an output validity based on two null checks.
func computeValiditySS(leftNull, rightNull bool) bool {
	return !leftNull && !rightNull
}

// computeValiditySA determines an output validity bitmap of rows elements
// from a null check and a validity bitmap.
func computeValiditySA(alloc *memory.Allocator, leftNull bool, right memory.Bitmap, rows int) memory.Bitmap {
	switch {
	case leftNull:
		// If the scalar value is null, everything is null.
		validity := memory.NewBitmap(alloc, rows)
		validity.AppendCount(false, rows)
		return validity

	default:
		// left is valid, so the final bitmap is the one of right. Bitmaps are
		// immutable once built, so it is shared rather than copied.
		return right
	}
}

// computeValidityAS determines an output validity bitmap of rows elements
// from a validity bitmap and a null check.
func computeValidityAS(alloc *memory.Allocator, left memory.Bitmap, rightNull bool, rows int) memory.Bitmap {
	return computeValiditySA(alloc, rightNull, left, rows)
}

// computeValidityAA determines an output validity bitmap from two input
// validity bitmaps. The result is a logical AND of the validity; a slot is only
// valid if both inputs are valid.
func computeValidityAA(alloc *memory.Allocator, left, right memory.Bitmap) (memory.Bitmap, error) {
	leftLen, rightLen := left.Len(), right.Len()
	outLen := max(leftLen, rightLen)

	// A validity bitmap can have a length of zero to indicate that all values
	// are valid. We only want to validate the length of two non-empty bitmaps.
	if leftLen > 0 && rightLen > 0 && leftLen != rightLen {
		return memory.Bitmap{}, fmt.Errorf("validity bitmap length mismatch: %d != %d", left.Len(), right.Len())
	}

	switch {
	case leftLen > 0 && rightLen > 0:
		validity := memory.NewBitmap(alloc, outLen)
		validity.Resize(outLen)
		andValidity(&validity, left, right)
		return validity, nil

	case leftLen > 0:
		// Everything from right is valid.
		return left, nil

	case rightLen > 0:
		// Everything from left is valid.
		return right, nil
	}

	return memory.Bitmap{}, nil
}

// andValidity writes the logical AND of left and right into out. out may be
// left or right.
func andValidity(out *memory.Bitmap, left, right memory.Bitmap) {
	bitutil.BitmapAnd(
		left.Bytes(),
		right.Bytes(),
		0 /* left offset */, 0, /* right offset */
		out.Bytes(),
		0,                 /* out offset */
		int64(left.Len()), /* num values */
	)
}

// copyValidity returns a copy of validity, or an empty bitmap if validity
// is empty.
func copyValidity(alloc *memory.Allocator, validity memory.Bitmap) memory.Bitmap {
	if validity.Len() == 0 {
		return memory.Bitmap{}
	}
	return validity.Clone(alloc)
}

// validity is the validity of an operand or of a result. Arrays carry a
// bitmap, empty when every row is valid. Constants carry a single null flag
// that holds for every row.
type validity struct {
	bitmap   memory.Bitmap
	constant bool
	null     bool

	// owned is set when bitmap was allocated while combining operands and
	// can be updated in place.
	owned bool
}

// allNull reports whether every row is null.
func (v validity) allNull() bool { return v.constant && v.null }

// valid reports whether row i is valid. valid must not be called when
// allNull is true.
func (v validity) valid(i int) bool { return validAt(v.bitmap, i) }

// and combines v with the validity of another operand of rows rows.
func (v validity) and(alloc *memory.Allocator, rows int, other validity) (validity, error) {
	switch {
	case v.allNull() || other.allNull():
		return validity{constant: true, null: true}, nil

	case v.constant && other.constant:
		return validity{constant: true, null: !computeValiditySS(v.null, other.null)}, nil

	case v.constant:
		return validity{bitmap: computeValiditySA(alloc, v.null, other.bitmap, rows)}, nil

	case other.constant:
		return validity{bitmap: computeValidityAS(alloc, v.bitmap, other.null, rows), owned: v.owned}, nil

	case v.owned && other.bitmap.Len() > 0:
		andValidity(&v.bitmap, v.bitmap, other.bitmap)
		return v, nil
	}

	bitmap, err := computeValidityAA(alloc, v.bitmap, other.bitmap)
	if err != nil {
		return validity{}, err
	}
	// bitmap is either v's own bitmap, an input bitmap, or a new AND.
	return validity{bitmap: bitmap, owned: v.owned || (v.bitmap.Len() > 0 && other.bitmap.Len() > 0)}, nil
}

// combineValidity returns the validity of a row-wise function of operands:
// a row is valid only if it is valid in every operand.
func combineValidity(alloc *memory.Allocator, rows int, operands ...validity) (validity, error) {
	out := validity{constant: true}
	for _, v := range operands {
		var err error
		if out, err = out.and(alloc, rows, v); err != nil {
			return validity{}, err
		}
	}
	return out, nil
}
