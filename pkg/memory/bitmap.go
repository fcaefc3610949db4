package memory

import (
	"fmt"
	"iter"

	"github.com/apache/arrow-go/v18/arrow/bitutil"
)

// Bitmap is a growable sequence of bits, stored least-significant bit first
// so that its bytes can be handed to Arrow as a validity or boolean buffer
// without conversion.
//
// The zero value is an empty bitmap with no allocator.
type Bitmap struct {
	alloc *Allocator
	data  []byte
	len   int
}

// NewBitmap returns a Bitmap with room for at least capacity bits.
func NewBitmap(alloc *Allocator, capacity int) Bitmap {
	bmap := Bitmap{alloc: alloc}
	bmap.Grow(capacity)
	return bmap
}

// Len returns the number of bits in bmap.
func (bmap Bitmap) Len() int { return bmap.len }

// Cap returns the number of bits bmap can hold without growing.
func (bmap Bitmap) Cap() int { return cap(bmap.data) * 8 }

// Bytes returns the bytes backing bmap, trimmed to the minimum number of
// bytes needed to hold [Bitmap.Len] bits.
func (bmap Bitmap) Bytes() []byte {
	return bmap.data[:bitutil.BytesForBits(int64(bmap.len))]
}

// Grow ensures bmap can hold n more bits without reallocating.
func (bmap *Bitmap) Grow(n int) {
	if n <= 0 || bmap.Cap()-bmap.len >= n {
		return
	}

	needBytes := int(bitutil.BytesForBits(int64(bmap.len + n)))
	newCap := max(2*cap(bmap.data), needBytes)

	newData := make([]byte, len(bmap.data), newCap)
	copy(newData, bmap.data)

	bmap.alloc.track(newCap - cap(bmap.data))
	bmap.data = newData
}

// Resize sets the length of bmap to n bits. Bits added by growing the bitmap
// are unset.
func (bmap *Bitmap) Resize(n int) {
	if n > bmap.len {
		bmap.Grow(n - bmap.len)
		bmap.data = bmap.data[:bitutil.BytesForBits(int64(n))]
		bitutil.SetBitsTo(bmap.data, int64(bmap.len), int64(n-bmap.len), false)
	}
	bmap.len = n
	bmap.data = bmap.data[:bitutil.BytesForBits(int64(n))]
}

// Append appends a single bit to bmap.
func (bmap *Bitmap) Append(value bool) {
	bmap.Resize(bmap.len + 1)
	bitutil.SetBitTo(bmap.data, bmap.len-1, value)
}

// AppendCount appends count copies of value to bmap.
func (bmap *Bitmap) AppendCount(value bool, count int) {
	if count <= 0 {
		return
	}
	start := bmap.len
	bmap.Resize(start + count)
	bitutil.SetBitsTo(bmap.data, int64(start), int64(count), value)
}

// AppendValues appends each of values to bmap.
func (bmap *Bitmap) AppendValues(values ...bool) {
	start := bmap.len
	bmap.Resize(start + len(values))
	for i, value := range values {
		bitutil.SetBitTo(bmap.data, start+i, value)
	}
}

// AppendBitmap appends all bits of src to bmap.
func (bmap *Bitmap) AppendBitmap(src Bitmap) {
	if src.len == 0 {
		return
	}
	start := bmap.len
	bmap.Resize(start + src.len)
	bitutil.CopyBitmap(src.data, 0, src.len, bmap.data, start)
}

// Get returns the bit at index i. Get panics if i is out of range.
func (bmap Bitmap) Get(i int) bool {
	bmap.checkIndex(i)
	return bitutil.BitIsSet(bmap.data, i)
}

// Set sets the bit at index i to value. Set panics if i is out of range.
func (bmap *Bitmap) Set(i int, value bool) {
	bmap.checkIndex(i)
	bitutil.SetBitTo(bmap.data, i, value)
}

// SetRange sets the bits in the range [from, to) to value.
func (bmap *Bitmap) SetRange(from, to int, value bool) {
	if from < 0 || to > bmap.len || from > to {
		panic(fmt.Sprintf("bitmap range [%d, %d) out of range [0, %d)", from, to, bmap.len))
	}
	bitutil.SetBitsTo(bmap.data, int64(from), int64(to-from), value)
}

// SetCount returns the number of set bits in bmap.
func (bmap Bitmap) SetCount() int {
	if bmap.len == 0 {
		return 0
	}
	return bitutil.CountSetBits(bmap.data, 0, bmap.len)
}

// IterValues returns an iterator over the indices of bits in bmap that are
// equal to value.
func (bmap Bitmap) IterValues(value bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range bmap.len {
			if bitutil.BitIsSet(bmap.data, i) != value {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

// Clone returns a copy of bmap whose memory is accounted to alloc.
func (bmap Bitmap) Clone(alloc *Allocator) Bitmap {
	out := NewBitmap(alloc, bmap.len)
	out.AppendBitmap(bmap)
	return out
}

func (bmap Bitmap) checkIndex(i int) {
	if i < 0 || i >= bmap.len {
		panic(fmt.Sprintf("bitmap index %d out of range [0, %d)", i, bmap.len))
	}
}
