package columnar

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	arrowmemory "github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/pkg/memory"
)

// DecimalPrecision is the precision of Arrow decimal columns produced by
// [ToArrow].
const DecimalPrecision = 38

// ErrUnsupportedArrowType is returned when an Arrow array has no columnar
// counterpart.
var ErrUnsupportedArrowType = errors.New("unsupported arrow type")

// ArrowType returns the Arrow data type arr is exported as.
func ArrowType(arr ArrayImpl) arrow.DataType {
	switch arr.Kind() {
	case KindInt16:
		return arrow.PrimitiveTypes.Int16
	case KindInt32:
		return arrow.PrimitiveTypes.Int32
	case KindInt64:
		return arrow.PrimitiveTypes.Int64
	case KindFloat32:
		return arrow.PrimitiveTypes.Float32
	case KindFloat64:
		return arrow.PrimitiveTypes.Float64
	case KindBool:
		return arrow.FixedWidthTypes.Boolean
	case KindUTF8:
		return arrow.BinaryTypes.String
	case KindDecimal:
		dec, _ := arr.AsDecimal()
		return &arrow.Decimal128Type{Precision: DecimalPrecision, Scale: dec.Scale()}
	case KindList:
		list, _ := arr.AsList()
		return arrow.ListOf(ArrowType(list.Child()))
	}
	return arrow.Null
}

// ToArrow copies arr into a new Arrow array. The caller must release the
// returned array.
func ToArrow(arr ArrayImpl) arrow.Array {
	dtype := ArrowType(arr)
	validity := copyBytes(arr.Validity().Bytes())

	switch arr.Kind() {
	case KindInt16:
		src, _ := arr.AsInt16()
		return fixedWidthData(dtype, arr, validity, arrow.GetBytes(src.Values()))
	case KindInt32:
		src, _ := arr.AsInt32()
		return fixedWidthData(dtype, arr, validity, arrow.GetBytes(src.Values()))
	case KindInt64:
		src, _ := arr.AsInt64()
		return fixedWidthData(dtype, arr, validity, arrow.GetBytes(src.Values()))
	case KindFloat32:
		src, _ := arr.AsFloat32()
		return fixedWidthData(dtype, arr, validity, arrow.GetBytes(src.Values()))
	case KindFloat64:
		src, _ := arr.AsFloat64()
		return fixedWidthData(dtype, arr, validity, arrow.GetBytes(src.Values()))
	case KindBool:
		src, _ := arr.AsBool()
		return fixedWidthData(dtype, arr, validity, src.Values().Bytes())

	case KindUTF8:
		src, _ := arr.AsUTF8()
		data := array.NewData(
			dtype,
			arr.Len(),
			[]*arrowmemory.Buffer{
				arrowmemory.NewBufferBytes(validity),
				arrowmemory.NewBufferBytes(copyBytes(arrow.GetBytes(src.Offsets()))),
				arrowmemory.NewBufferBytes(copyBytes(src.Data())),
			},
			nil,
			arr.Nulls(),
			0,
		)
		defer data.Release()
		return array.NewStringData(data)

	case KindDecimal:
		src, _ := arr.AsDecimal()
		scale := src.Scale()
		builder := array.NewDecimal128Builder(arrowmemory.DefaultAllocator, dtype.(*arrow.Decimal128Type))
		defer builder.Release()

		builder.Reserve(arr.Len())
		for v, ok := range src.All() {
			if !ok {
				builder.AppendNull()
				continue
			}
			builder.Append(decimal128.FromBigInt(v.Shift(scale).BigInt()))
		}
		return builder.NewArray()

	case KindList:
		src, _ := arr.AsList()
		child := listChildToArrow(src.Child())
		defer child.Release()

		data := array.NewData(
			dtype,
			arr.Len(),
			[]*arrowmemory.Buffer{
				arrowmemory.NewBufferBytes(validity),
				arrowmemory.NewBufferBytes(copyBytes(arrow.GetBytes(src.Offsets()))),
			},
			[]arrow.ArrayData{child.Data()},
			arr.Nulls(),
			0,
		)
		defer data.Release()
		return array.NewListData(data)
	}

	return array.NewNull(arr.Len())
}

func fixedWidthData(dtype arrow.DataType, arr ArrayImpl, validity, values []byte) arrow.Array {
	data := array.NewData(
		dtype,
		arr.Len(),
		[]*arrowmemory.Buffer{
			arrowmemory.NewBufferBytes(validity),
			arrowmemory.NewBufferBytes(copyBytes(values)),
		},
		nil,
		arr.Nulls(),
		0,
	)
	defer data.Release()
	return array.MakeFromData(data)
}

// listChildToArrow exports the child of a list array. Lists whose child
// kind was never learned export an empty null child.
func listChildToArrow(child ArrayImpl) arrow.Array {
	if child.Kind() == KindInvalid {
		return array.NewNull(0)
	}
	return ToArrow(child)
}

func copyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

// FromArrow copies an Arrow array into a new columnar array, accounting its
// memory to alloc. FromArrow returns an error wrapping
// [ErrUnsupportedArrowType] if arr has a type with no columnar counterpart.
func FromArrow(alloc *memory.Allocator, arr arrow.Array) (ArrayImpl, error) {
	switch src := arr.(type) {
	case *array.Int16:
		return fromArrowNumbers(alloc, src.Len(), src.IsNull, src.Value), nil
	case *array.Int32:
		return fromArrowNumbers(alloc, src.Len(), src.IsNull, src.Value), nil
	case *array.Int64:
		return fromArrowNumbers(alloc, src.Len(), src.IsNull, src.Value), nil
	case *array.Float32:
		return fromArrowNumbers(alloc, src.Len(), src.IsNull, src.Value), nil
	case *array.Float64:
		return fromArrowNumbers(alloc, src.Len(), src.IsNull, src.Value), nil

	case *array.Boolean:
		builder := NewBoolBuilder(alloc)
		builder.Grow(src.Len())
		for i := range src.Len() {
			builder.Push(src.Value(i), !src.IsNull(i))
		}
		return builder.Finish(), nil

	case *array.String:
		builder := NewUTF8Builder(alloc)
		builder.Grow(src.Len())
		for i := range src.Len() {
			if src.IsNull(i) {
				builder.AppendNull()
				continue
			}
			builder.AppendString(src.Value(i))
		}
		return builder.Finish(), nil

	case *array.Decimal128:
		scale := src.DataType().(*arrow.Decimal128Type).Scale
		builder := NewDecimalBuilder(alloc)
		builder.Grow(src.Len())
		for i := range src.Len() {
			if src.IsNull(i) {
				builder.AppendNull()
				continue
			}
			builder.AppendValue(decimal.NewFromBigInt(src.Value(i).BigInt(), -scale))
		}
		return builder.Finish(), nil

	case *array.List:
		var child ArrayImpl
		if _, ok := src.ListValues().(*array.Null); !ok {
			var err error
			if child, err = FromArrow(alloc, src.ListValues()); err != nil {
				return ArrayImpl{}, fmt.Errorf("list values: %w", err)
			}
		}

		builder := NewListBuilder(alloc, child.Kind())
		builder.Grow(src.Len())
		for i := range src.Len() {
			if src.IsNull(i) {
				builder.AppendNull()
				continue
			}
			start, end := src.ValueOffsets(i)
			builder.AppendValue(ListRef{array: child, start: int(start), end: int(end)})
		}
		return builder.Finish(), nil
	}

	return ArrayImpl{}, fmt.Errorf("%w: %s", ErrUnsupportedArrowType, arr.DataType())
}

func fromArrowNumbers[T Numeric](alloc *memory.Allocator, n int, isNull func(int) bool, value func(int) T) ArrayImpl {
	builder := NewNumberBuilder[T](alloc)
	builder.Grow(n)
	for i := range n {
		builder.Push(value(i), !isNull(i))
	}
	return builder.Finish()
}
