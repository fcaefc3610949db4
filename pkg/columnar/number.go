package columnar

import (
	"iter"

	"github.com/grafana/colexpr/pkg/memory"
)

// Numeric is the set of fixed-width numeric types stored by [Number].
type Numeric interface {
	int16 | int32 | int64 | float32 | float64
}

// Fixed-width numeric arrays and their builders.
type (
	Int16   = Number[int16]
	Int32   = Number[int32]
	Int64   = Number[int64]
	Float32 = Number[float32]
	Float64 = Number[float64]

	Int16Builder   = NumberBuilder[int16]
	Int32Builder   = NumberBuilder[int32]
	Int64Builder   = NumberBuilder[int64]
	Float32Builder = NumberBuilder[float32]
	Float64Builder = NumberBuilder[float64]
)

func numericKind[T Numeric]() Kind {
	var zero T
	switch any(zero).(type) {
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	panic("unreachable")
}

// Number is an array of fixed-width numeric values.
type Number[T Numeric] struct {
	values   []T
	validity memory.Bitmap
	nulls    int
}

var _ TypedArray[int32] = (*Int32)(nil)

// NewNumber creates a new Number array from the given values and optional
// validity bitmap. If validity is non-empty, it must have the same length as
// values.
func NewNumber[T Numeric](values []T, validity memory.Bitmap) *Number[T] {
	if validity.Len() > 0 && validity.Len() != len(values) {
		panic("validity bitmap length mismatch")
	}
	return &Number[T]{
		values:   values,
		validity: validity,
		nulls:    validity.Len() - validity.SetCount(),
	}
}

// Len implements [Array].
func (arr *Number[T]) Len() int { return len(arr.values) }

// Nulls implements [Array].
func (arr *Number[T]) Nulls() int { return arr.nulls }

// IsNull implements [Array].
func (arr *Number[T]) IsNull(i int) bool {
	checkIndex(i, len(arr.values))
	return isNull(arr.validity, i)
}

// Validity implements [Array].
func (arr *Number[T]) Validity() memory.Bitmap { return arr.validity }

// Kind implements [Array].
func (arr *Number[T]) Kind() Kind { return numericKind[T]() }

// Get implements [TypedArray].
func (arr *Number[T]) Get(i int) (T, bool) {
	checkIndex(i, len(arr.values))
	return arr.values[i], !isNull(arr.validity, i)
}

// Value implements [TypedArray].
func (arr *Number[T]) Value(i int) T { return arr.values[i] }

// Values returns the values of arr, including the unspecified values of null
// slots. The returned slice must not be modified.
func (arr *Number[T]) Values() []T { return arr.values }

// All implements [TypedArray].
func (arr *Number[T]) All() iter.Seq2[T, bool] { return iterate(arr.Len(), arr.Get) }

// NumberBuilder builds [Number] arrays.
type NumberBuilder[T Numeric] struct {
	values   memory.Buffer[T]
	validity validityBuilder
}

var _ Builder[int32] = (*Int32Builder)(nil)

// NewNumberBuilder returns a new builder of Number arrays.
func NewNumberBuilder[T Numeric](alloc *memory.Allocator) *NumberBuilder[T] {
	return &NumberBuilder[T]{
		values:   memory.MakeBuffer[T](alloc, 0),
		validity: validityBuilder{alloc: alloc},
	}
}

// AppendValue implements [Builder].
func (b *NumberBuilder[T]) AppendValue(value T) {
	b.values.Append(value)
	b.validity.appendValid()
}

// AppendNull implements [Builder].
func (b *NumberBuilder[T]) AppendNull() { b.AppendNulls(1) }

// AppendNulls implements [Builder].
func (b *NumberBuilder[T]) AppendNulls(count int) {
	if count <= 0 {
		return
	}
	b.values.Resize(b.values.Len() + count)
	b.validity.appendNulls(count)
}

// Push implements [Builder].
func (b *NumberBuilder[T]) Push(value T, valid bool) {
	if valid {
		b.AppendValue(value)
	} else {
		b.AppendNull()
	}
}

// Len implements [Builder].
func (b *NumberBuilder[T]) Len() int { return b.values.Len() }

// Grow implements [Builder].
func (b *NumberBuilder[T]) Grow(n int) {
	b.values.Grow(n)
	b.validity.grow(n)
}

// Build returns the built array and resets b.
func (b *NumberBuilder[T]) Build() *Number[T] {
	validity, nulls := b.validity.finish()
	return &Number[T]{
		values:   b.values.Take(),
		validity: validity,
		nulls:    nulls,
	}
}

// Finish implements [Builder].
func (b *NumberBuilder[T]) Finish() ArrayImpl { return Wrap(b.Build()) }
