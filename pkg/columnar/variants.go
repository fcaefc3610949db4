package columnar

import (
	"iter"

	"github.com/grafana/colexpr/pkg/memory"
)

// ArrayImpl holds an array of any kind together with its [Kind] tag. It lets
// code that only learns the kind of an array at run time pass the array
// around; downcasts such as [ArrayImpl.AsInt32] recover the concrete array.
//
// The zero value is an empty array of kind [KindInvalid].
type ArrayImpl struct {
	kind  Kind
	array Array
}

// Kind returns the kind of the held array.
func (a ArrayImpl) Kind() Kind { return a.kind }

// Array returns the held array.
func (a ArrayImpl) Array() Array { return a.array }

// Len returns the number of elements of the held array.
func (a ArrayImpl) Len() int {
	if a.array == nil {
		return 0
	}
	return a.array.Len()
}

// Nulls returns the number of null elements of the held array.
func (a ArrayImpl) Nulls() int {
	if a.array == nil {
		return 0
	}
	return a.array.Nulls()
}

// IsNull reports whether the element at index i is null.
func (a ArrayImpl) IsNull(i int) bool {
	if a.array == nil {
		checkIndex(i, 0)
	}
	return a.array.IsNull(i)
}

// Validity returns the validity bitmap of the held array.
func (a ArrayImpl) Validity() memory.Bitmap {
	if a.array == nil {
		return memory.Bitmap{}
	}
	return a.array.Validity()
}

// All returns an iterator over every element of the held array in index
// order.
func (a ArrayImpl) All() iter.Seq2[ScalarRefImpl, bool] { return iterate(a.Len(), a.Get) }

// NewBuilder returns an empty builder producing arrays of the same kind as
// a. Builders for list arrays use the child kind of a.
func (a ArrayImpl) NewBuilder(alloc *memory.Allocator, capacity int) BuilderImpl {
	var b BuilderImpl
	if list, ok := a.array.(*List); ok {
		b = WrapListBuilder(NewListBuilder(alloc, list.Child().Kind()))
	} else {
		b = NewBuilderImpl(alloc, a.kind)
	}
	b.Grow(capacity)
	return b
}

func downcastArray[A Array](a ArrayImpl, want Kind) (A, error) {
	if a.kind != want {
		var zero A
		return zero, &TypeMismatchError{Want: want, Got: a.kind}
	}
	return a.array.(A), nil
}

// anyBuilder is the kind-independent part of [Builder].
type anyBuilder interface {
	AppendNull()
	AppendNulls(count int)
	Len() int
	Grow(n int)
	Finish() ArrayImpl
}

// BuilderImpl holds a builder of any kind together with its [Kind] tag.
type BuilderImpl struct {
	kind    Kind
	builder anyBuilder
}

// Kind returns the kind of arrays built by b.
func (b BuilderImpl) Kind() Kind { return b.kind }

// Len returns the number of elements appended so far.
func (b BuilderImpl) Len() int { return b.builder.Len() }

// Grow hints that n more elements will be appended.
func (b BuilderImpl) Grow(n int) { b.builder.Grow(n) }

// AppendNull appends a null element.
func (b BuilderImpl) AppendNull() { b.builder.AppendNull() }

// AppendNulls appends count null elements.
func (b BuilderImpl) AppendNulls(count int) { b.builder.AppendNulls(count) }

// Finish returns the built array and resets the builder.
func (b BuilderImpl) Finish() ArrayImpl { return b.builder.Finish() }

func downcastBuilder[B anyBuilder](b BuilderImpl, want Kind) (B, error) {
	if b.kind != want {
		var zero B
		return zero, &TypeMismatchError{Want: want, Got: b.kind}
	}
	return b.builder.(B), nil
}

// ScalarImpl holds an owned value of any kind together with its [Kind] tag.
// The zero value is an invalid scalar.
type ScalarImpl struct {
	kind Kind
	v    any
}

// Kind returns the kind of the held value.
func (s ScalarImpl) Kind() Kind { return s.kind }

// Any returns the held value.
func (s ScalarImpl) Any() any { return s.v }

// String returns a human-readable representation of s.
func (s ScalarImpl) String() string { return s.AsRef().String() }

// ScalarRefImpl holds a view of a value of any kind together with its
// [Kind] tag. A view read from an array is only valid as long as the array
// is, and the values it points to must not be modified.
type ScalarRefImpl struct {
	kind Kind
	v    any
}

// Kind returns the kind of the viewed value.
func (r ScalarRefImpl) Kind() Kind { return r.kind }

// Any returns the viewed value.
func (r ScalarRefImpl) Any() any { return r.v }

func downcastValue[T any](got, want Kind, v any) (T, error) {
	if got != want {
		var zero T
		return zero, &TypeMismatchError{Want: want, Got: got}
	}
	return v.(T), nil
}
