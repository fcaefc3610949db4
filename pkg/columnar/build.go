package columnar

import (
	"fmt"

	"github.com/grafana/colexpr/pkg/memory"
)

// FromValues builds an array of type t from values. If valid is non-nil it
// must have the same length as values, and values[i] is appended as null
// when valid[i] is false.
func FromValues[O, R any](t Type[O, R], alloc *memory.Allocator, values []O, valid []bool) ArrayImpl {
	if valid != nil && len(valid) != len(values) {
		panic("columnar: values and validity have different lengths")
	}

	builder := t.NewBuilder(alloc, len(values))
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.AppendValue(t.AsRef(v))
	}
	return builder.Finish()
}

// FromOptions builds an array of type t from values, where nil elements are
// null.
func FromOptions[O, R any](t Type[O, R], alloc *memory.Allocator, values []*O) ArrayImpl {
	builder := t.NewBuilder(alloc, len(values))
	for _, v := range values {
		if v == nil {
			builder.AppendNull()
			continue
		}
		builder.AppendValue(t.AsRef(*v))
	}
	return builder.Finish()
}

// Rebuild copies arr into a new array of type t. Rebuild returns a
// [*TypeMismatchError] if arr is not of the kind described by t.
func Rebuild[O, R any](t Type[O, R], alloc *memory.Allocator, arr ArrayImpl) (ArrayImpl, error) {
	src, err := t.Downcast(arr)
	if err != nil {
		return ArrayImpl{}, err
	}

	// Lists keep the child kind of the source so empty arrays round trip.
	var builder Builder[R]
	if list, ok := any(src).(*List); ok {
		builder = any(NewListBuilder(alloc, list.Child().Kind())).(Builder[R])
	} else {
		builder = t.NewBuilder(alloc, src.Len())
	}
	builder.Grow(src.Len())

	for v, ok := range src.All() {
		builder.Push(v, ok)
	}
	return builder.Finish(), nil
}

// WithValidity returns an array sharing the values of arr with validity as
// its validity bitmap. validity must be empty, meaning every element is
// valid, or have the same length as arr.
func WithValidity(arr ArrayImpl, validity memory.Bitmap) ArrayImpl {
	if validity.Len() == 0 && arr.Nulls() == 0 {
		return arr
	}

	switch src := arr.Array().(type) {
	case *Int16:
		return WrapInt16(NewNumber(src.Values(), validity))
	case *Int32:
		return WrapInt32(NewNumber(src.Values(), validity))
	case *Int64:
		return WrapInt64(NewNumber(src.Values(), validity))
	case *Float32:
		return WrapFloat32(NewNumber(src.Values(), validity))
	case *Float64:
		return WrapFloat64(NewNumber(src.Values(), validity))
	case *Bool:
		return WrapBool(NewBool(src.Values(), validity))
	case *UTF8:
		return WrapUTF8(NewUTF8(src.Data(), src.Offsets(), validity))
	case *Decimal:
		return WrapDecimal(NewDecimal(src.Values(), validity))
	case *List:
		return WrapList(NewList(src.Child(), src.Offsets(), validity))
	}
	panic(fmt.Sprintf("columnar: WithValidity on %s array", arr.Kind()))
}

// Equal reports whether a and b have the same kind, length, validity and
// valid values. The values of null elements are ignored.
func Equal(a, b ArrayImpl) bool {
	if a.Kind() != b.Kind() || a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		av, aok := a.Get(i)
		bv, bok := b.Get(i)
		if aok != bok || (aok && !av.Equal(bv)) {
			return false
		}
	}
	return true
}
