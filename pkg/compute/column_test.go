package compute_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/compute"
	"github.com/grafana/colexpr/pkg/datatype"
	"github.com/grafana/colexpr/pkg/memory"
)

// countingClamp counts how often it is called.
type countingClamp struct {
	calls int
}

func (c *countingClamp) Eval(v, lo, hi int64) int64 {
	c.calls++
	return min(max(v, lo), hi)
}

func newClamp(fn *countingClamp) *compute.Ternary[int64, int64, int64, int64, int64, int64, int64, int64] {
	return compute.NewTernary("clamp", columnar.Int64Type, columnar.Int64Type, columnar.Int64Type, columnar.Int64Type, fn)
}

func TestColumn_Materialize(t *testing.T) {
	alloc := memory.NewAllocator(nil)

	t.Run("constant", func(t *testing.T) {
		col := compute.ConstantColumn(columnar.NewInt32Scalar(5), 3)
		require.True(t, col.IsConstant())
		require.Equal(t, 3, col.Len())
		require.Equal(t, columnar.KindInt32, col.Kind())

		value, ok := col.Constant()
		require.True(t, ok)
		require.Equal(t, int32(5), value.Any())

		require.Equal(t, []any{int32(5), int32(5), int32(5)}, collect(t, col.Materialize(alloc)))
	})

	t.Run("null", func(t *testing.T) {
		col := compute.NullColumn(columnar.KindUTF8, 2)
		_, ok := col.Constant()
		require.False(t, ok)

		out := col.Materialize(alloc)
		require.Equal(t, columnar.KindUTF8, out.Kind())
		require.Equal(t, []any{nil, nil}, collect(t, out))
	})

	t.Run("empty constant", func(t *testing.T) {
		out := compute.ConstantColumn(columnar.NewUTF8Scalar("x"), 0).Materialize(alloc)
		require.Equal(t, 0, out.Len())
	})

	t.Run("array", func(t *testing.T) {
		arr := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 2}, nil)
		col := compute.ArrayColumn(arr)
		require.False(t, col.IsConstant())
		require.Equal(t, arr, col.Materialize(alloc))
		require.Panics(t, func() { col.Constant() })
	})

	require.Panics(t, func() { compute.ConstantColumn(columnar.NewInt32Scalar(1), -1) })
}

func TestTernary_NullPropagation(t *testing.T) {
	fn := &countingClamp{}
	expr := newClamp(fn)

	values := columnar.FromOptions(columnar.Int64Type, nil, []*int64{ptr[int64](-5), ptr[int64](5), nil, ptr[int64](50), ptr[int64](7)})
	lo := columnar.FromOptions(columnar.Int64Type, nil, []*int64{ptr[int64](0), nil, ptr[int64](0), ptr[int64](0), ptr[int64](0)})
	hi := columnar.FromOptions(columnar.Int64Type, nil, []*int64{ptr[int64](10), ptr[int64](10), ptr[int64](10), ptr[int64](10), nil})

	out, err := expr.Eval(memory.NewAllocator(nil), []columnar.ArrayImpl{values, lo, hi})
	require.NoError(t, err)
	require.Equal(t, []any{int64(0), nil, nil, int64(10), nil}, collect(t, out))
	require.Equal(t, 3, out.Nulls())
	require.Equal(t, 2, fn.calls, "function must not be called for null rows")
}

func TestTernary_LengthMismatch(t *testing.T) {
	fn := &countingClamp{}
	expr := newClamp(fn)
	alloc := memory.NewAllocator(nil)

	three := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 2, 3}, nil)
	two := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 2}, nil)

	out, err := expr.Eval(alloc, []columnar.ArrayImpl{three, three, two})
	require.ErrorIs(t, err, compute.ErrLengthMismatch)
	require.Equal(t, columnar.ArrayImpl{}, out)

	_, err = expr.EvalColumns(alloc, []compute.Column{
		compute.ArrayColumn(three),
		compute.ConstantColumn(columnar.NewInt64Scalar(0), 2),
		compute.ArrayColumn(three),
	})
	require.ErrorIs(t, err, compute.ErrLengthMismatch)

	require.Zero(t, fn.calls)
	require.Zero(t, alloc.Allocated(), "no output should be allocated")
}

func TestTernary_Constants(t *testing.T) {
	fn := &countingClamp{}
	expr := newClamp(fn)

	values := columnar.FromOptions(columnar.Int64Type, nil, []*int64{ptr[int64](-5), nil, ptr[int64](50), ptr[int64](7)})

	out, err := expr.EvalColumns(nil, []compute.Column{
		compute.ArrayColumn(values),
		compute.ConstantColumn(columnar.NewInt64Scalar(0), 4),
		compute.ConstantColumn(columnar.NewInt64Scalar(10), 4),
	})
	require.NoError(t, err)
	require.Equal(t, []any{int64(0), nil, int64(10), int64(7)}, collect(t, out))
	require.Equal(t, 3, fn.calls)

	out, err = expr.EvalColumns(nil, []compute.Column{
		compute.ArrayColumn(values),
		compute.NullColumn(columnar.KindInt64, 4),
		compute.ConstantColumn(columnar.NewInt64Scalar(10), 4),
	})
	require.NoError(t, err)
	require.Equal(t, 4, out.Nulls())
	require.Equal(t, 3, fn.calls, "a null constant makes every row null")
}

func TestTernary_Errors(t *testing.T) {
	expr := newClamp(&countingClamp{})
	require.Equal(t, 3, expr.Arity())
	require.Equal(t, "clamp", expr.String())

	ints := columnar.FromValues(columnar.Int64Type, nil, []int64{1}, nil)
	floats := columnar.FromValues(columnar.Float64Type, nil, []float64{1}, nil)

	_, err := expr.Eval(nil, []columnar.ArrayImpl{ints, ints})
	require.ErrorIs(t, err, compute.ErrArity)

	_, err = expr.Eval(nil, []columnar.ArrayImpl{ints, ints, floats})
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)
	require.ErrorContains(t, err, "clamp: argument 3")
}

func TestTernary_MixedKinds(t *testing.T) {
	pick := compute.TernaryFuncOf[bool, []byte, []byte, string](func(cond bool, a, b []byte) string {
		if cond {
			return string(a)
		}
		return string(b)
	})
	expr := compute.NewTernary("if", columnar.BoolType, columnar.UTF8Type, columnar.UTF8Type, columnar.UTF8Type, pick)

	cond := columnar.FromOptions(columnar.BoolType, nil, []*bool{ptr(true), ptr(false), nil})
	a := columnar.FromValues(columnar.UTF8Type, nil, []string{"a1", "a2", "a3"}, nil)

	out, err := expr.EvalColumns(nil, []compute.Column{
		compute.ArrayColumn(cond),
		compute.ArrayColumn(a),
		compute.ConstantColumn(columnar.NewUTF8Scalar("b"), 3),
	})
	require.NoError(t, err)

	expect := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("a1"), ptr("b"), nil})
	require.True(t, columnar.Equal(expect, out))
}

func TestQuinary(t *testing.T) {
	sum := compute.QuinaryFuncOf[int16, int16, int16, int16, int16, int64](func(a, b, c, d, e int16) int64 {
		return int64(a) + int64(b) + int64(c) + int64(d) + int64(e)
	})
	expr := compute.NewQuinary("sum5",
		columnar.Int16Type, columnar.Int16Type, columnar.Int16Type, columnar.Int16Type, columnar.Int16Type,
		columnar.Int64Type, sum)
	require.Equal(t, 5, expr.Arity())

	arr := columnar.FromOptions(columnar.Int16Type, nil, []*int16{ptr[int16](1), nil})
	one := compute.ConstantColumn(columnar.NewInt16Scalar(1), 2)

	out, err := compute.EvalColumns(expr, nil, []compute.Column{compute.ArrayColumn(arr), one, one, one, one})
	require.NoError(t, err)
	require.Equal(t, []any{int64(5), nil}, collect(t, out))
}

func TestBinary_ConstantOperands(t *testing.T) {
	arr := columnar.FromOptions(columnar.Int32Type, nil, []*int32{ptr[int32](1), nil, ptr[int32](3)})
	two := compute.ConstantColumn(columnar.NewInt32Scalar(2), 3)

	tt := []struct {
		name        string
		left, right compute.Column
		expect      []any
		calls       int
	}{
		{
			name:   "constant left",
			left:   two,
			right:  compute.ArrayColumn(arr),
			expect: []any{false, nil, true},
			calls:  2,
		},
		{
			name:   "constant right",
			left:   compute.ArrayColumn(arr),
			right:  two,
			expect: []any{true, nil, false},
			calls:  2,
		},
		{
			name:   "both constant",
			left:   compute.ConstantColumn(columnar.NewInt32Scalar(1), 3),
			right:  two,
			expect: []any{true, true, true},
			calls:  3,
		},
		{
			name:   "null constant",
			left:   compute.NullColumn(columnar.KindInt32, 3),
			right:  compute.ArrayColumn(arr),
			expect: []any{nil, nil, nil},
			calls:  0,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			fn := &countingLess{}
			expr := compute.NewBinary("lt", columnar.Int32Type, columnar.Int32Type, columnar.BoolType, fn)

			out, err := expr.EvalColumns(memory.NewAllocator(nil), []compute.Column{tc.left, tc.right})
			require.NoError(t, err)
			require.Equal(t, tc.expect, collect(t, out))
			require.Equal(t, tc.calls, fn.calls)
		})
	}
}

func TestBinary_SharesValidity(t *testing.T) {
	expr := compute.NewBinary("lt", columnar.Int32Type, columnar.Int32Type, columnar.BoolType, &countingLess{})

	left := columnar.FromOptions(columnar.Int32Type, nil, []*int32{ptr[int32](1), nil, ptr[int32](3)})
	right := columnar.FromValues(columnar.Int32Type, nil, []int32{2, 2, 2}, nil)

	out, err := expr.EvalBatch(nil, left, right)
	require.NoError(t, err)
	require.Equal(t, left.Validity(), out.Validity())

	out, err = expr.EvalBatch(nil, right, right)
	require.NoError(t, err)
	require.Zero(t, out.Validity().Len(), "results without nulls carry no bitmap")
}

func TestUnary_Constant(t *testing.T) {
	expr, err := compute.BuildUnary(compute.FuncLength, datatype.Varchar)
	require.NoError(t, err)

	out, err := compute.EvalColumns(expr, nil, []compute.Column{compute.ConstantColumn(columnar.NewUTF8Scalar("héllo"), 2)})
	require.NoError(t, err)
	require.Equal(t, []any{int32(5), int32(5)}, collect(t, out))
}

func TestEvalColumns_Materializes(t *testing.T) {
	// Identity casts do not evaluate constants themselves.
	expr, err := compute.Cast(datatype.Integer, datatype.Integer)
	require.NoError(t, err)
	_, ok := expr.(compute.ColumnEvaluator)
	require.False(t, ok)

	out, err := compute.EvalColumns(expr, nil, []compute.Column{compute.ConstantColumn(columnar.NewInt32Scalar(7), 2)})
	require.NoError(t, err)
	require.Equal(t, []any{int32(7), int32(7)}, collect(t, out))
}
