package columnar_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

func ptr[T any](v T) *T { return &v }

func TestNumberBuilder(t *testing.T) {
	alloc := memory.NewAllocator(nil)

	builder := columnar.NewNumberBuilder[int32](alloc)
	builder.AppendValue(1)
	builder.AppendNull()
	builder.Push(3, true)
	builder.Push(99, false)
	builder.AppendNulls(2)
	require.Equal(t, 6, builder.Len())

	arr := builder.Build()
	require.Equal(t, 6, arr.Len())
	require.Equal(t, 4, arr.Nulls())
	require.Equal(t, columnar.KindInt32, arr.Kind())

	var (
		values []int32
		valid  []bool
	)
	for v, ok := range arr.All() {
		if ok {
			values = append(values, v)
		}
		valid = append(valid, ok)
	}
	require.Equal(t, []int32{1, 3}, values)
	require.Equal(t, []bool{true, false, true, false, false, false}, valid)

	require.Equal(t, 0, builder.Len(), "builder should be reset after Build")
	require.Positive(t, alloc.Allocated())
}

func TestNumber_NoNullsHasEmptyValidity(t *testing.T) {
	arr := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 2, 3}, nil)
	require.Equal(t, 0, arr.Nulls())
	require.Equal(t, 0, arr.Validity().Len())
}

func TestArray_GetOutOfRange(t *testing.T) {
	arr := columnar.FromValues(columnar.Int16Type, nil, []int16{1}, nil)
	require.PanicsWithError(t, "index 1 out of range [0, 1)", func() {
		arr.Get(1)
	})
}

func TestBuilder_AppendNullsIgnoresNonPositiveCounts(t *testing.T) {
	for _, kind := range columnar.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			builder := columnar.NewBuilderImpl(nil, kind)
			builder.AppendNulls(0)
			builder.AppendNulls(-3)
			require.Equal(t, 0, builder.Len())

			builder.AppendNulls(2)
			arr := builder.Finish()
			require.Equal(t, 2, arr.Len())
			require.Equal(t, 2, arr.Nulls())
		})
	}
}

func TestFromValues_AllKinds(t *testing.T) {
	alloc := memory.NewAllocator(nil)
	valid := []bool{true, false, true}

	tt := []struct {
		name string
		arr  columnar.ArrayImpl
		want []string
	}{
		{"int16", columnar.FromValues(columnar.Int16Type, alloc, []int16{1, 2, 3}, valid), []string{"1", "null", "3"}},
		{"int32", columnar.FromValues(columnar.Int32Type, alloc, []int32{1, 2, 3}, valid), []string{"1", "null", "3"}},
		{"int64", columnar.FromValues(columnar.Int64Type, alloc, []int64{1, 2, 3}, valid), []string{"1", "null", "3"}},
		{"float32", columnar.FromValues(columnar.Float32Type, alloc, []float32{1.5, 2, 3}, valid), []string{"1.5", "null", "3"}},
		{"float64", columnar.FromValues(columnar.Float64Type, alloc, []float64{0.25, 2, 3}, valid), []string{"0.25", "null", "3"}},
		{"bool", columnar.FromValues(columnar.BoolType, alloc, []bool{true, true, false}, valid), []string{"true", "null", "false"}},
		{"utf8", columnar.FromValues(columnar.UTF8Type, alloc, []string{"a", "b", ""}, valid), []string{"a", "null", ""}},
		{"decimal", columnar.FromValues(columnar.DecimalType, alloc, []decimal.Decimal{decimal.RequireFromString("1.25"), decimal.Zero, decimal.NewFromInt(7)}, valid), []string{"1.25", "null", "7"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, 3, tc.arr.Len())
			require.Equal(t, 1, tc.arr.Nulls())

			var got []string
			for v, ok := range tc.arr.All() {
				if !ok {
					got = append(got, "null")
					continue
				}
				got = append(got, v.String())
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFromOptions(t *testing.T) {
	arr := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("x"), nil, ptr("yz")})
	utf8, err := arr.AsUTF8()
	require.NoError(t, err)

	require.Equal(t, []int32{0, 1, 1, 3}, utf8.Offsets())
	require.Equal(t, "xyz", string(utf8.Data()))
	require.True(t, utf8.IsNull(1))
}

func TestRebuild(t *testing.T) {
	src := columnar.FromOptions(columnar.Float64Type, nil, []*float64{ptr(1.0), nil, ptr(-2.5)})

	out, err := columnar.Rebuild(columnar.Float64Type, memory.NewAllocator(nil), src)
	require.NoError(t, err)
	require.True(t, columnar.Equal(src, out))

	_, err = columnar.Rebuild(columnar.Int32Type, nil, src)
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)

	// An empty list array keeps its child kind.
	empty := columnar.WrapList(columnar.NewListBuilder(nil, columnar.KindUTF8).Build())
	out, err = columnar.Rebuild(columnar.ListType, nil, empty)
	require.NoError(t, err)
	list, err := out.AsList()
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())
	require.Equal(t, columnar.KindUTF8, list.Child().Kind())
}

func TestEqual(t *testing.T) {
	a := columnar.FromOptions(columnar.Int32Type, nil, []*int32{ptr[int32](1), nil})
	b := columnar.FromValues(columnar.Int32Type, nil, []int32{1, 42}, []bool{true, false})
	c := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 42}, []bool{true, false})
	d := columnar.FromValues(columnar.Int32Type, nil, []int32{1, 42}, nil)

	require.True(t, columnar.Equal(a, b), "values under nulls are ignored")
	require.False(t, columnar.Equal(a, c), "kinds differ")
	require.False(t, columnar.Equal(a, d), "validity differs")
}

func TestWithValidity(t *testing.T) {
	validity := memory.NewBitmap(nil, 3)
	validity.AppendValues(true, false, true)

	strs := columnar.FromValues(columnar.UTF8Type, nil, []string{"a", "", "c"}, nil)
	out := columnar.WithValidity(strs, validity)
	require.Equal(t, 1, out.Nulls())
	require.True(t, columnar.Equal(out, columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("a"), nil, ptr("c")})))

	ints := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 2, 3}, nil)
	require.Equal(t, ints, columnar.WithValidity(ints, memory.Bitmap{}))

	require.Panics(t, func() {
		columnar.WithValidity(columnar.FromValues(columnar.Int64Type, nil, []int64{1}, nil), validity)
	})
}

func TestArrayImpl_Downcast(t *testing.T) {
	arrays := map[columnar.Kind]columnar.ArrayImpl{
		columnar.KindInt16:   columnar.FromValues(columnar.Int16Type, nil, []int16{1}, nil),
		columnar.KindInt32:   columnar.FromValues(columnar.Int32Type, nil, []int32{1}, nil),
		columnar.KindInt64:   columnar.FromValues(columnar.Int64Type, nil, []int64{1}, nil),
		columnar.KindFloat32: columnar.FromValues(columnar.Float32Type, nil, []float32{1}, nil),
		columnar.KindFloat64: columnar.FromValues(columnar.Float64Type, nil, []float64{1}, nil),
		columnar.KindBool:    columnar.FromValues(columnar.BoolType, nil, []bool{true}, nil),
		columnar.KindUTF8:    columnar.FromValues(columnar.UTF8Type, nil, []string{"a"}, nil),
		columnar.KindDecimal: columnar.FromValues(columnar.DecimalType, nil, []decimal.Decimal{decimal.NewFromInt(1)}, nil),
		columnar.KindList:    columnar.NewListBuilder(nil, columnar.KindInt32).Finish(),
	}
	require.Len(t, arrays, len(columnar.Kinds()))

	downcasts := map[columnar.Kind]func(columnar.ArrayImpl) error{
		columnar.KindInt16:   func(a columnar.ArrayImpl) error { _, err := a.AsInt16(); return err },
		columnar.KindInt32:   func(a columnar.ArrayImpl) error { _, err := a.AsInt32(); return err },
		columnar.KindInt64:   func(a columnar.ArrayImpl) error { _, err := a.AsInt64(); return err },
		columnar.KindFloat32: func(a columnar.ArrayImpl) error { _, err := a.AsFloat32(); return err },
		columnar.KindFloat64: func(a columnar.ArrayImpl) error { _, err := a.AsFloat64(); return err },
		columnar.KindBool:    func(a columnar.ArrayImpl) error { _, err := a.AsBool(); return err },
		columnar.KindUTF8:    func(a columnar.ArrayImpl) error { _, err := a.AsUTF8(); return err },
		columnar.KindDecimal: func(a columnar.ArrayImpl) error { _, err := a.AsDecimal(); return err },
		columnar.KindList:    func(a columnar.ArrayImpl) error { _, err := a.AsList(); return err },
	}

	for kind, arr := range arrays {
		require.Equal(t, kind, arr.Kind())
		require.Equal(t, kind, arr.Array().Kind())
		require.Equal(t, arr, columnar.Wrap(arr.Array()), "upcast of %s", kind)

		for target, downcast := range downcasts {
			err := downcast(arr)
			if target == kind {
				require.NoError(t, err, "%s as %s", kind, target)
				continue
			}

			var mismatch *columnar.TypeMismatchError
			require.ErrorAs(t, err, &mismatch, "%s as %s", kind, target)
			require.Equal(t, target, mismatch.Want)
			require.Equal(t, kind, mismatch.Got)
			require.ErrorIs(t, err, columnar.ErrTypeMismatch)
		}
	}
}

func TestBuilderImpl_Push(t *testing.T) {
	builder := columnar.NewBuilderImpl(nil, columnar.KindUTF8)

	require.NoError(t, builder.Push(columnar.NewUTF8Ref([]byte("a")), true))
	require.NoError(t, builder.Push(columnar.ScalarRefImpl{}, false))
	require.ErrorIs(t, builder.Push(columnar.NewInt32Ref(1), true), columnar.ErrTypeMismatch)
	require.Equal(t, 2, builder.Len())

	utf8, err := builder.AsUTF8Builder()
	require.NoError(t, err)
	utf8.AppendString("c")

	_, err = builder.AsInt16Builder()
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)

	arr := builder.Finish()
	expect := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("a"), nil, ptr("c")})
	require.True(t, columnar.Equal(expect, arr))
	require.Equal(t, 0, builder.Len())
}

func TestArrayImpl_NewBuilder(t *testing.T) {
	src := columnar.FromValues(columnar.BoolType, nil, []bool{true, false}, nil)

	builder := src.NewBuilder(nil, src.Len())
	for v, ok := range src.All() {
		require.NoError(t, builder.Push(v, ok))
	}
	require.True(t, columnar.Equal(src, builder.Finish()))
}

func TestScalar_AsRefToOwned(t *testing.T) {
	scalars := []columnar.ScalarImpl{
		columnar.Int16Type.Wrap(-3),
		columnar.Int32Type.Wrap(1 << 20),
		columnar.Int64Type.Wrap(1 << 40),
		columnar.Float32Type.Wrap(0.5),
		columnar.Float64Type.Wrap(-1e300),
		columnar.BoolType.Wrap(true),
		columnar.UTF8Type.Wrap("héllo"),
		columnar.DecimalType.Wrap(decimal.RequireFromString("-12.345")),
		columnar.ListType.Wrap(columnar.NewListValue(
			columnar.FromValues(columnar.Int32Type, nil, []int32{1, 2}, []bool{true, false}),
		)),
	}

	for _, s := range scalars {
		t.Run(s.Kind().String(), func(t *testing.T) {
			ref := s.AsRef()
			require.Equal(t, s.Kind(), ref.Kind())

			owned := ref.ToOwned()
			require.Equal(t, s.Kind(), owned.Kind())
			require.True(t, owned.AsRef().Equal(ref))
			require.Equal(t, s.String(), owned.String())
		})
	}
}

func TestUTF8Type_ToOwnedCopies(t *testing.T) {
	arr := columnar.FromValues(columnar.UTF8Type, nil, []string{"abc"}, nil)
	utf8, err := columnar.UTF8Type.Downcast(arr)
	require.NoError(t, err)

	ref := utf8.Value(0)
	owned := columnar.UTF8Type.ToOwned(ref)
	require.Equal(t, "abc", owned)
	require.Equal(t, "abc", string(columnar.UTF8Type.AsRef(owned)))
}

func TestScalarImpl_Downcast(t *testing.T) {
	s := columnar.NewDecimalScalar(decimal.NewFromFloat(1.5))

	v, err := s.AsDecimal()
	require.NoError(t, err)
	require.Equal(t, "1.5", v.String())

	_, err = s.AsFloat64()
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)

	_, err = s.AsRef().AsUTF8()
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "int16", columnar.KindInt16.String())
	require.Equal(t, "list", columnar.KindList.String())
	require.Equal(t, "invalid", columnar.KindInvalid.String())
	require.Equal(t, "Kind(100)", columnar.Kind(100).String())
}

func TestArray_ConcurrentReads(t *testing.T) {
	values := make([]int64, 1024)
	valid := make([]bool, len(values))
	var want int64
	for i := range values {
		values[i] = int64(i)
		valid[i] = i%3 != 0
		if valid[i] {
			want += int64(i)
		}
	}
	arr := columnar.FromValues(columnar.Int64Type, memory.NewAllocator(nil), values, valid)

	g, _ := errgroup.WithContext(context.Background())
	sums := make([]int64, 8)
	for i := range sums {
		g.Go(func() error {
			typed, err := columnar.Int64Type.Downcast(arr)
			if err != nil {
				return err
			}
			for v, ok := range typed.All() {
				if ok {
					sums[i] += v
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, sum := range sums {
		require.Equal(t, want, sum)
	}
}

func TestRecordBatch(t *testing.T) {
	a := columnar.FromValues(columnar.Int32Type, nil, []int32{1, 2}, nil)
	b := columnar.FromValues(columnar.UTF8Type, nil, []string{"x", "y"}, nil)

	rb := columnar.NewRecordBatch(2, []columnar.ArrayImpl{a, b})
	require.Equal(t, int64(2), rb.NumRows())
	require.Equal(t, int64(2), rb.NumCols())
	require.Equal(t, columnar.KindUTF8, rb.Column(1).Kind())

	require.Panics(t, func() {
		columnar.NewRecordBatch(3, []columnar.ArrayImpl{a})
	})
}
