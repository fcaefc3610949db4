// Package columnar provides typed, immutable in-memory columns and the
// builders that produce them.
//
// Columnar types are Arrow-compatible: validity and boolean bitmaps, value
// buffers and offsets use Arrow's layout, so [ToArrow] exports them with a
// plain copy of each buffer. Only decimals are re-encoded. Memory is
// accounted through a [memory.Allocator] rather than arrow-go's reference
// counting.
//
// Each physical kind is described by a [Type], which binds the kind's owned
// scalar type to the view type returned when reading from an array. Code that
// does not know a kind statically works with the variant wrappers
// [ArrayImpl], [BuilderImpl], [ScalarImpl] and [ScalarRefImpl], which are
// generated from variants.yaml.
package columnar

import (
	"fmt"
	"iter"
	"math"

	"github.com/grafana/colexpr/pkg/memory"
)

//go:generate go run ../../tools/variantgen -template variants -in variants.yaml -out variants_gen.go

// An Array is a sequence of elements of the same data type.
type Array interface {
	// Len returns the total number of elements in the array.
	Len() int

	// Nulls returns the number of null elements in the array. The number of
	// non-null elements can be calculated from Len() - Nulls().
	Nulls() int

	// IsNull returns true if the element at index i is null.
	IsNull(i int) bool

	// Validity returns the validity bitmap of the array. The returned bitmap
	// may be of length 0 if there are no nulls.
	//
	// A value of 1 in the Validity bitmap indicates that the corresponding
	// element at that position is valid (not null).
	Validity() memory.Bitmap

	// Kind returns the kind of Array being represented.
	Kind() Kind
}

// TypedArray is an Array whose elements are read as values of type R, the
// view type of the array's kind.
type TypedArray[R any] interface {
	Array

	// Get returns the element at index i and whether it is valid. Get panics
	// if i is out of range.
	Get(i int) (R, bool)

	// Value returns the element at index i without checking validity. The
	// value of a null element is unspecified.
	Value(i int) R

	// All returns an iterator over every element of the array in index
	// order. The second value reports whether the element is valid.
	All() iter.Seq2[R, bool]
}

// Builder accumulates elements of view type R into a new array.
//
// Builders are owned by a single goroutine. Building resets the builder so
// it can be reused for a new array.
type Builder[R any] interface {
	// AppendValue appends a valid element.
	AppendValue(value R)

	// AppendNull appends a null element.
	AppendNull()

	// AppendNulls appends count null elements.
	AppendNulls(count int)

	// Push appends value if valid is true, and a null element otherwise.
	Push(value R, valid bool)

	// Len returns the number of elements appended so far.
	Len() int

	// Grow hints that n more elements will be appended.
	Grow(n int)

	// Finish returns the built array wrapped in an [ArrayImpl] and resets
	// the builder.
	Finish() ArrayImpl
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}

// offsetOf converts the length n of a value buffer into an offset. offsetOf
// panics if n does not fit in an int32 offset.
func offsetOf(n int) int32 {
	if n > math.MaxInt32 {
		panic(fmt.Sprintf("columnar: offset %d overflows int32", n))
	}
	return int32(n)
}

// isNull reports whether index i is null according to validity. An empty
// validity bitmap means all elements are valid.
func isNull(validity memory.Bitmap, i int) bool {
	return validity.Len() > 0 && !validity.Get(i)
}

func iterate[R any](n int, get func(i int) (R, bool)) iter.Seq2[R, bool] {
	return func(yield func(R, bool) bool) {
		for i := range n {
			if !yield(get(i)) {
				return
			}
		}
	}
}
