package columnar

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/internal/unsafecast"
	"github.com/grafana/colexpr/pkg/memory"
)

// Type describes a physical kind: its owned scalar type O, the view type R
// read out of arrays, and how to convert between the two.
//
// Conversions are total: for any owned value v of a kind described by t,
// t.ToOwned(t.AsRef(v)) equals v.
type Type[O, R any] interface {
	// Kind returns the physical kind described by the type.
	Kind() Kind

	// AsRef returns a view of value.
	AsRef(value O) R

	// ToOwned copies the value viewed by ref out into an owned value.
	ToOwned(ref R) O

	// NewBuilder returns an empty builder for arrays of the kind. capacity
	// is a hint of how many elements will be appended.
	NewBuilder(alloc *memory.Allocator, capacity int) Builder[R]

	// Downcast returns the array held by arr, or a [*TypeMismatchError] if
	// arr is of a different kind.
	Downcast(arr ArrayImpl) (TypedArray[R], error)

	// Wrap wraps an owned value into a [ScalarImpl].
	Wrap(value O) ScalarImpl

	// WrapRef wraps a view into a [ScalarRefImpl].
	WrapRef(ref R) ScalarRefImpl

	// Equal reports whether two views hold equal values.
	Equal(a, b R) bool

	// Format returns a human-readable representation of ref.
	Format(ref R) string
}

// Type descriptors of every physical kind.
var (
	Int16Type   Type[int16, int16]                     = numberType[int16]{}
	Int32Type   Type[int32, int32]                     = numberType[int32]{}
	Int64Type   Type[int64, int64]                     = numberType[int64]{}
	Float32Type Type[float32, float32]                 = numberType[float32]{}
	Float64Type Type[float64, float64]                 = numberType[float64]{}
	BoolType    Type[bool, bool]                       = boolType{}
	UTF8Type    Type[string, []byte]                   = utf8Type{}
	DecimalType Type[decimal.Decimal, decimal.Decimal] = decimalType{}
	ListType    Type[ListValue, ListRef]               = listType{}
)

type numberType[T Numeric] struct{}

func (numberType[T]) Kind() Kind        { return numericKind[T]() }
func (numberType[T]) AsRef(value T) T   { return value }
func (numberType[T]) ToOwned(ref T) T   { return ref }
func (numberType[T]) Equal(a, b T) bool { return a == b }

func (numberType[T]) NewBuilder(alloc *memory.Allocator, capacity int) Builder[T] {
	b := NewNumberBuilder[T](alloc)
	b.Grow(capacity)
	return b
}

func (numberType[T]) Downcast(arr ArrayImpl) (TypedArray[T], error) {
	out, err := downcastArray[*Number[T]](arr, numericKind[T]())
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (numberType[T]) Wrap(value T) ScalarImpl {
	return ScalarImpl{kind: numericKind[T](), v: value}
}

func (numberType[T]) WrapRef(ref T) ScalarRefImpl {
	return ScalarRefImpl{kind: numericKind[T](), v: ref}
}

func (numberType[T]) Format(ref T) string {
	switch v := any(ref).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	panic("unreachable")
}

type boolType struct{}

func (boolType) Kind() Kind             { return KindBool }
func (boolType) AsRef(value bool) bool  { return value }
func (boolType) ToOwned(ref bool) bool  { return ref }
func (boolType) Equal(a, b bool) bool   { return a == b }
func (boolType) Format(ref bool) string { return strconv.FormatBool(ref) }

func (boolType) NewBuilder(alloc *memory.Allocator, capacity int) Builder[bool] {
	b := NewBoolBuilder(alloc)
	b.Grow(capacity)
	return b
}

func (boolType) Downcast(arr ArrayImpl) (TypedArray[bool], error) {
	out, err := arr.AsBool()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (boolType) Wrap(value bool) ScalarImpl     { return NewBoolScalar(value) }
func (boolType) WrapRef(ref bool) ScalarRefImpl { return NewBoolRef(ref) }

type utf8Type struct{}

func (utf8Type) Kind() Kind { return KindUTF8 }

// AsRef returns a view of value without copying it.
func (utf8Type) AsRef(value string) []byte { return unsafecast.Bytes(value) }

// ToOwned copies ref, so the result does not alias array memory.
func (utf8Type) ToOwned(ref []byte) string { return string(ref) }

func (utf8Type) Equal(a, b []byte) bool   { return bytes.Equal(a, b) }
func (utf8Type) Format(ref []byte) string { return string(ref) }

func (utf8Type) NewBuilder(alloc *memory.Allocator, capacity int) Builder[[]byte] {
	b := NewUTF8Builder(alloc)
	b.Grow(capacity)
	return b
}

func (utf8Type) Downcast(arr ArrayImpl) (TypedArray[[]byte], error) {
	out, err := arr.AsUTF8()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (utf8Type) Wrap(value string) ScalarImpl     { return NewUTF8Scalar(value) }
func (utf8Type) WrapRef(ref []byte) ScalarRefImpl { return NewUTF8Ref(ref) }

type decimalType struct{}

func (decimalType) Kind() Kind                                  { return KindDecimal }
func (decimalType) AsRef(value decimal.Decimal) decimal.Decimal { return value }
func (decimalType) ToOwned(ref decimal.Decimal) decimal.Decimal { return ref }
func (decimalType) Equal(a, b decimal.Decimal) bool             { return a.Equal(b) }
func (decimalType) Format(ref decimal.Decimal) string           { return ref.String() }

func (decimalType) NewBuilder(alloc *memory.Allocator, capacity int) Builder[decimal.Decimal] {
	b := NewDecimalBuilder(alloc)
	b.Grow(capacity)
	return b
}

func (decimalType) Downcast(arr ArrayImpl) (TypedArray[decimal.Decimal], error) {
	out, err := arr.AsDecimal()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (decimalType) Wrap(value decimal.Decimal) ScalarImpl     { return NewDecimalScalar(value) }
func (decimalType) WrapRef(ref decimal.Decimal) ScalarRefImpl { return NewDecimalRef(ref) }

type listType struct{}

func (listType) Kind() Kind                    { return KindList }
func (listType) AsRef(value ListValue) ListRef { return value.AsRef() }
func (listType) ToOwned(ref ListRef) ListValue { return ref.ToOwned() }
func (listType) Equal(a, b ListRef) bool       { return a.Equal(b) }
func (listType) Format(ref ListRef) string     { return ref.String() }

// NewBuilder returns a list builder that learns its child kind from the
// first appended list.
func (listType) NewBuilder(alloc *memory.Allocator, capacity int) Builder[ListRef] {
	b := NewListBuilder(alloc, KindInvalid)
	b.Grow(capacity)
	return b
}

func (listType) Downcast(arr ArrayImpl) (TypedArray[ListRef], error) {
	out, err := arr.AsList()
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (listType) Wrap(value ListValue) ScalarImpl   { return NewListScalar(value) }
func (listType) WrapRef(ref ListRef) ScalarRefImpl { return NewListRef(ref) }
