package columnar

import (
	"iter"

	"github.com/grafana/colexpr/pkg/memory"
)

// UTF8 is an array of variable-width UTF-8 strings. Values are stored
// contiguously in a single byte buffer, with offsets marking the boundaries
// of each element.
type UTF8 struct {
	offsets  []int32
	data     []byte
	validity memory.Bitmap
	nulls    int
}

var _ TypedArray[[]byte] = (*UTF8)(nil)

// NewUTF8 creates a new UTF8 array from the given data, offsets and optional
// validity bitmap. offsets must have one more element than the array has
// elements; element i spans data[offsets[i]:offsets[i+1]].
func NewUTF8(data []byte, offsets []int32, validity memory.Bitmap) *UTF8 {
	if len(offsets) == 0 {
		offsets = []int32{0}
	}
	if validity.Len() > 0 && validity.Len() != len(offsets)-1 {
		panic("validity bitmap length mismatch")
	}
	return &UTF8{
		offsets:  offsets,
		data:     data,
		validity: validity,
		nulls:    validity.Len() - validity.SetCount(),
	}
}

// Len implements [Array].
func (arr *UTF8) Len() int { return len(arr.offsets) - 1 }

// Nulls implements [Array].
func (arr *UTF8) Nulls() int { return arr.nulls }

// IsNull implements [Array].
func (arr *UTF8) IsNull(i int) bool {
	checkIndex(i, arr.Len())
	return isNull(arr.validity, i)
}

// Validity implements [Array].
func (arr *UTF8) Validity() memory.Bitmap { return arr.validity }

// Kind implements [Array].
func (arr *UTF8) Kind() Kind { return KindUTF8 }

// Get implements [TypedArray]. The returned slice aliases the memory of arr
// and must not be modified.
func (arr *UTF8) Get(i int) ([]byte, bool) {
	checkIndex(i, arr.Len())
	return arr.Value(i), !isNull(arr.validity, i)
}

// Value implements [TypedArray]. The returned slice aliases the memory of
// arr and must not be modified.
func (arr *UTF8) Value(i int) []byte {
	start, end := arr.offsets[i], arr.offsets[i+1]
	return arr.data[start:end:end]
}

// Offsets returns the offsets of arr.
func (arr *UTF8) Offsets() []int32 { return arr.offsets }

// Data returns the contiguous value bytes of arr.
func (arr *UTF8) Data() []byte { return arr.data }

// All implements [TypedArray].
func (arr *UTF8) All() iter.Seq2[[]byte, bool] { return iterate(arr.Len(), arr.Get) }

// UTF8Builder builds [UTF8] arrays.
type UTF8Builder struct {
	alloc    *memory.Allocator
	offsets  memory.Buffer[int32]
	data     memory.Buffer[byte]
	validity validityBuilder
}

var _ Builder[[]byte] = (*UTF8Builder)(nil)

// NewUTF8Builder returns a new builder of UTF8 arrays.
func NewUTF8Builder(alloc *memory.Allocator) *UTF8Builder {
	b := &UTF8Builder{alloc: alloc, validity: validityBuilder{alloc: alloc}}
	b.reset()
	return b
}

func (b *UTF8Builder) reset() {
	b.offsets = memory.MakeBuffer[int32](b.alloc, 1)
	b.offsets.Append(0)
	b.data = memory.MakeBuffer[byte](b.alloc, 0)
}

// AppendValue implements [Builder]. value is copied into the builder.
func (b *UTF8Builder) AppendValue(value []byte) {
	b.data.Append(value...)
	b.offsets.Append(offsetOf(b.data.Len()))
	b.validity.appendValid()
}

// AppendString appends a valid string element.
func (b *UTF8Builder) AppendString(value string) {
	b.data.Append([]byte(value)...)
	b.offsets.Append(offsetOf(b.data.Len()))
	b.validity.appendValid()
}

// AppendNull implements [Builder].
func (b *UTF8Builder) AppendNull() { b.AppendNulls(1) }

// AppendNulls implements [Builder].
func (b *UTF8Builder) AppendNulls(count int) {
	if count <= 0 {
		return
	}
	end := offsetOf(b.data.Len())
	for range count {
		b.offsets.Append(end)
	}
	b.validity.appendNulls(count)
}

// Push implements [Builder].
func (b *UTF8Builder) Push(value []byte, valid bool) {
	if valid {
		b.AppendValue(value)
	} else {
		b.AppendNull()
	}
}

// Len implements [Builder].
func (b *UTF8Builder) Len() int { return b.offsets.Len() - 1 }

// Grow implements [Builder].
func (b *UTF8Builder) Grow(n int) {
	b.offsets.Grow(n)
	b.validity.grow(n)
}

// GrowData hints that n more bytes of string data will be appended.
func (b *UTF8Builder) GrowData(n int) { b.data.Grow(n) }

// Build returns the built array and resets b.
func (b *UTF8Builder) Build() *UTF8 {
	validity, nulls := b.validity.finish()
	arr := &UTF8{
		offsets:  b.offsets.Take(),
		data:     b.data.Take(),
		validity: validity,
		nulls:    nulls,
	}
	b.reset()
	return arr
}

// Finish implements [Builder].
func (b *UTF8Builder) Finish() ArrayImpl { return WrapUTF8(b.Build()) }
