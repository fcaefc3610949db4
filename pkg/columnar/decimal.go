package columnar

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/pkg/memory"
)

// Decimal is an array of arbitrary-precision decimal values.
type Decimal struct {
	values   []decimal.Decimal
	validity memory.Bitmap
	nulls    int
}

var _ TypedArray[decimal.Decimal] = (*Decimal)(nil)

// NewDecimal creates a new Decimal array from the given values and optional
// validity bitmap.
func NewDecimal(values []decimal.Decimal, validity memory.Bitmap) *Decimal {
	if validity.Len() > 0 && validity.Len() != len(values) {
		panic("validity bitmap length mismatch")
	}
	return &Decimal{
		values:   values,
		validity: validity,
		nulls:    validity.Len() - validity.SetCount(),
	}
}

// Len implements [Array].
func (arr *Decimal) Len() int { return len(arr.values) }

// Nulls implements [Array].
func (arr *Decimal) Nulls() int { return arr.nulls }

// IsNull implements [Array].
func (arr *Decimal) IsNull(i int) bool {
	checkIndex(i, len(arr.values))
	return isNull(arr.validity, i)
}

// Validity implements [Array].
func (arr *Decimal) Validity() memory.Bitmap { return arr.validity }

// Kind implements [Array].
func (arr *Decimal) Kind() Kind { return KindDecimal }

// Get implements [TypedArray].
func (arr *Decimal) Get(i int) (decimal.Decimal, bool) {
	checkIndex(i, len(arr.values))
	return arr.values[i], !isNull(arr.validity, i)
}

// Value implements [TypedArray].
func (arr *Decimal) Value(i int) decimal.Decimal { return arr.values[i] }

// Values returns the values of arr, including the zero values of null
// slots. The returned slice must not be modified.
func (arr *Decimal) Values() []decimal.Decimal { return arr.values }

// Scale returns the largest number of fractional digits among the valid
// values of arr.
func (arr *Decimal) Scale() int32 {
	var scale int32
	for v, ok := range arr.All() {
		if ok {
			scale = max(scale, -v.Exponent())
		}
	}
	return scale
}

// All implements [TypedArray].
func (arr *Decimal) All() iter.Seq2[decimal.Decimal, bool] { return iterate(arr.Len(), arr.Get) }

// DecimalBuilder builds [Decimal] arrays.
type DecimalBuilder struct {
	values   memory.Buffer[decimal.Decimal]
	validity validityBuilder
}

var _ Builder[decimal.Decimal] = (*DecimalBuilder)(nil)

// NewDecimalBuilder returns a new builder of Decimal arrays.
func NewDecimalBuilder(alloc *memory.Allocator) *DecimalBuilder {
	return &DecimalBuilder{
		values:   memory.MakeBuffer[decimal.Decimal](alloc, 0),
		validity: validityBuilder{alloc: alloc},
	}
}

// AppendValue implements [Builder].
func (b *DecimalBuilder) AppendValue(value decimal.Decimal) {
	b.values.Append(value)
	b.validity.appendValid()
}

// AppendNull implements [Builder].
func (b *DecimalBuilder) AppendNull() { b.AppendNulls(1) }

// AppendNulls implements [Builder].
func (b *DecimalBuilder) AppendNulls(count int) {
	if count <= 0 {
		return
	}
	b.values.Resize(b.values.Len() + count)
	b.validity.appendNulls(count)
}

// Push implements [Builder].
func (b *DecimalBuilder) Push(value decimal.Decimal, valid bool) {
	if valid {
		b.AppendValue(value)
	} else {
		b.AppendNull()
	}
}

// Len implements [Builder].
func (b *DecimalBuilder) Len() int { return b.values.Len() }

// Grow implements [Builder].
func (b *DecimalBuilder) Grow(n int) {
	b.values.Grow(n)
	b.validity.grow(n)
}

// Build returns the built array and resets b.
func (b *DecimalBuilder) Build() *Decimal {
	validity, nulls := b.validity.finish()
	return &Decimal{values: b.values.Take(), validity: validity, nulls: nulls}
}

// Finish implements [Builder].
func (b *DecimalBuilder) Finish() ArrayImpl { return WrapDecimal(b.Build()) }
