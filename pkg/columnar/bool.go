package columnar

import (
	"iter"

	"github.com/grafana/colexpr/pkg/memory"
)

// Bool is an array of boolean values, stored as a bitmap.
type Bool struct {
	values   memory.Bitmap
	validity memory.Bitmap
	nulls    int
}

var _ TypedArray[bool] = (*Bool)(nil)

// NewBool creates a new Bool array from the given values and optional
// validity bitmap. If validity is non-empty, it must have the same length as
// values.
func NewBool(values, validity memory.Bitmap) *Bool {
	if validity.Len() > 0 && validity.Len() != values.Len() {
		panic("validity bitmap length mismatch")
	}
	return &Bool{
		values:   values,
		validity: validity,
		nulls:    validity.Len() - validity.SetCount(),
	}
}

// Len implements [Array].
func (arr *Bool) Len() int { return arr.values.Len() }

// Nulls implements [Array].
func (arr *Bool) Nulls() int { return arr.nulls }

// IsNull implements [Array].
func (arr *Bool) IsNull(i int) bool {
	checkIndex(i, arr.Len())
	return isNull(arr.validity, i)
}

// Validity implements [Array].
func (arr *Bool) Validity() memory.Bitmap { return arr.validity }

// Kind implements [Array].
func (arr *Bool) Kind() Kind { return KindBool }

// Get implements [TypedArray].
func (arr *Bool) Get(i int) (bool, bool) {
	checkIndex(i, arr.Len())
	return arr.values.Get(i), !isNull(arr.validity, i)
}

// Value implements [TypedArray].
func (arr *Bool) Value(i int) bool { return arr.values.Get(i) }

// Values returns the value bitmap of arr. Bits of null slots are
// unspecified.
func (arr *Bool) Values() memory.Bitmap { return arr.values }

// All implements [TypedArray].
func (arr *Bool) All() iter.Seq2[bool, bool] { return iterate(arr.Len(), arr.Get) }

// BoolBuilder builds [Bool] arrays.
type BoolBuilder struct {
	alloc    *memory.Allocator
	values   memory.Bitmap
	validity validityBuilder
}

var _ Builder[bool] = (*BoolBuilder)(nil)

// NewBoolBuilder returns a new builder of Bool arrays.
func NewBoolBuilder(alloc *memory.Allocator) *BoolBuilder {
	return &BoolBuilder{
		alloc:    alloc,
		values:   memory.NewBitmap(alloc, 0),
		validity: validityBuilder{alloc: alloc},
	}
}

// AppendValue implements [Builder].
func (b *BoolBuilder) AppendValue(value bool) {
	b.values.Append(value)
	b.validity.appendValid()
}

// AppendNull implements [Builder].
func (b *BoolBuilder) AppendNull() { b.AppendNulls(1) }

// AppendNulls implements [Builder].
func (b *BoolBuilder) AppendNulls(count int) {
	if count <= 0 {
		return
	}
	// Null slots are written as false to avoid garbage data in results.
	b.values.AppendCount(false, count)
	b.validity.appendNulls(count)
}

// Push implements [Builder].
func (b *BoolBuilder) Push(value bool, valid bool) {
	if valid {
		b.AppendValue(value)
	} else {
		b.AppendNull()
	}
}

// Len implements [Builder].
func (b *BoolBuilder) Len() int { return b.values.Len() }

// Grow implements [Builder].
func (b *BoolBuilder) Grow(n int) {
	b.values.Grow(n)
	b.validity.grow(n)
}

// Build returns the built array and resets b.
func (b *BoolBuilder) Build() *Bool {
	values := b.values
	validity, nulls := b.validity.finish()
	b.values = memory.NewBitmap(b.alloc, 0)

	return &Bool{values: values, validity: validity, nulls: nulls}
}

// Finish implements [Builder].
func (b *BoolBuilder) Finish() ArrayImpl { return WrapBool(b.Build()) }
