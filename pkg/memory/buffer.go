package memory

import "github.com/grafana/colexpr/internal/unsafecast"

// Buffer is a growable sequence of T whose growth is accounted to an
// [Allocator]. The zero value is an empty buffer with no allocator.
type Buffer[T any] struct {
	alloc *Allocator
	data  []T
}

// MakeBuffer returns a Buffer with room for at least capacity elements.
func MakeBuffer[T any](alloc *Allocator, capacity int) Buffer[T] {
	buf := Buffer[T]{alloc: alloc}
	buf.Grow(capacity)
	return buf
}

// Len returns the number of elements in buf.
func (buf Buffer[T]) Len() int { return len(buf.data) }

// Cap returns the number of elements buf can hold without growing.
func (buf Buffer[T]) Cap() int { return cap(buf.data) }

// Data returns the elements of buf. The returned slice aliases buf and is
// invalidated by the next call that grows buf.
func (buf Buffer[T]) Data() []T { return buf.data }

// Get returns the element at index i.
func (buf Buffer[T]) Get(i int) T { return buf.data[i] }

// Set sets the element at index i to value.
func (buf *Buffer[T]) Set(i int, value T) { buf.data[i] = value }

// Grow ensures buf can hold n more elements without reallocating.
func (buf *Buffer[T]) Grow(n int) {
	if n <= 0 || cap(buf.data)-len(buf.data) >= n {
		return
	}

	newCap := max(2*cap(buf.data), len(buf.data)+n)
	newData := make([]T, len(buf.data), newCap)
	copy(newData, buf.data)

	size := int(unsafecast.Sizeof[T]())
	buf.alloc.track((newCap - cap(buf.data)) * size)
	buf.data = newData
}

// Append appends values to buf, growing it if necessary.
func (buf *Buffer[T]) Append(values ...T) {
	buf.Grow(len(values))
	buf.data = append(buf.data, values...)
}

// Resize sets the length of buf to n. New elements are zeroed.
func (buf *Buffer[T]) Resize(n int) {
	if n <= len(buf.data) {
		buf.data = buf.data[:n]
		return
	}
	buf.Grow(n - len(buf.data))

	var zero T
	old := len(buf.data)
	buf.data = buf.data[:n]
	for i := old; i < n; i++ {
		buf.data[i] = zero
	}
}

// Clear resets the length of buf to zero, retaining its capacity.
func (buf *Buffer[T]) Clear() { buf.data = buf.data[:0] }

// Take returns the elements of buf and resets buf to an empty buffer that
// shares the same allocator. The caller owns the returned slice.
func (buf *Buffer[T]) Take() []T {
	data := buf.data
	buf.data = nil
	return data
}
