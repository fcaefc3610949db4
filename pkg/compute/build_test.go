package compute_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/compute"
	"github.com/grafana/colexpr/pkg/datatype"
	"github.com/grafana/colexpr/pkg/memory"
)

var allTypes = []datatype.Type{
	datatype.Boolean,
	datatype.SmallInt,
	datatype.Integer,
	datatype.BigInt,
	datatype.Real,
	datatype.Double,
	datatype.DecimalOf(10, 2),
	datatype.Varchar,
	datatype.Char(4),
}

func TestBuild_LessThan(t *testing.T) {
	expr, err := compute.Build(compute.FuncLt, datatype.Integer, datatype.Integer)
	require.NoError(t, err)

	left := columnar.FromOptions(columnar.Int32Type, nil, []*int32{ptr[int32](1), ptr[int32](2), ptr[int32](3), nil, ptr[int32](5)})
	right := columnar.FromValues(columnar.Int32Type, nil, []int32{10, 20, 30, 40, 50}, nil)

	out, err := expr.Eval(memory.NewAllocator(nil), []columnar.ArrayImpl{left, right})
	require.NoError(t, err)
	require.Equal(t, []any{true, true, true, nil, true}, collect(t, out))
}

func TestBuild_Contains(t *testing.T) {
	expr, err := compute.Build(compute.FuncContains, datatype.Varchar, datatype.Varchar)
	require.NoError(t, err)

	left := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("000"), ptr("111"), nil})
	right := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("0"), ptr("0"), nil})

	out, err := expr.Eval(nil, []columnar.ArrayImpl{left, right})
	require.NoError(t, err)
	require.Equal(t, []any{true, false, nil}, collect(t, out))
}

func TestBuild_StringPredicates(t *testing.T) {
	haystack := columnar.FromValues(columnar.UTF8Type, nil, []string{"Hello World", "hello", ""}, nil)
	needle := columnar.FromValues(columnar.UTF8Type, nil, []string{"WORLD", "he", ""}, nil)

	tt := []struct {
		fn     compute.Func
		expect []any
	}{
		{compute.FuncContains, []any{false, true, true}},
		{compute.FuncContainsFold, []any{true, true, true}},
		{compute.FuncHasPrefix, []any{false, true, true}},
		{compute.FuncHasSuffix, []any{false, false, true}},
		{compute.FuncEq, []any{false, false, true}},
		{compute.FuncLt, []any{true, false, false}},
	}
	for _, tc := range tt {
		t.Run(tc.fn.String(), func(t *testing.T) {
			expr, err := compute.Build(tc.fn, datatype.Char(16), datatype.Varchar)
			require.NoError(t, err)

			out, err := expr.Eval(nil, []columnar.ArrayImpl{haystack, needle})
			require.NoError(t, err)
			require.Equal(t, tc.expect, collect(t, out))
		})
	}
}

func TestBuild_Match(t *testing.T) {
	expr, err := compute.Build(compute.FuncMatch, datatype.Varchar, datatype.Varchar)
	require.NoError(t, err)

	values := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("foo123"), ptr("bar"), ptr("baz"), ptr("foo"), nil})
	patterns := columnar.FromValues(columnar.UTF8Type, nil, []string{`^foo\d+$`, "a", "(", `^foo\d+$`, "x"}, nil)

	out, err := expr.Eval(nil, []columnar.ArrayImpl{values, patterns})
	require.NoError(t, err)
	require.Equal(t, []any{true, true, false, false, nil}, collect(t, out), "invalid patterns match nothing")
}

func TestBuild_Concat(t *testing.T) {
	expr, err := compute.Build(compute.FuncConcat, datatype.Varchar, datatype.Varchar)
	require.NoError(t, err)

	left := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("foo"), nil})
	right := columnar.FromValues(columnar.UTF8Type, nil, []string{"bar", "baz"}, nil)

	out, err := expr.Eval(nil, []columnar.ArrayImpl{left, right})
	require.NoError(t, err)
	require.Equal(t, columnar.KindUTF8, out.Kind())
	require.Equal(t, []any{[]byte("foobar"), nil}, collect(t, out))
}

func TestBuild_SmallIntAndReal(t *testing.T) {
	typ, err := compute.ResultType(compute.FuncAdd, datatype.SmallInt, datatype.Real)
	require.NoError(t, err)
	require.Equal(t, datatype.Double, typ)

	expr, err := compute.Build(compute.FuncAdd, datatype.SmallInt, datatype.Real)
	require.NoError(t, err)

	left := columnar.FromValues(columnar.Int16Type, nil, []int16{1, -2}, nil)
	right := columnar.FromValues(columnar.Float32Type, nil, []float32{0.5, 0.25}, nil)

	out, err := expr.Eval(nil, []columnar.ArrayImpl{left, right})
	require.NoError(t, err)
	require.Equal(t, columnar.KindFloat64, out.Kind())
	require.Equal(t, []any{1.5, -1.75}, collect(t, out))
}

func TestBuild_SmallIntAndDouble(t *testing.T) {
	expr, err := compute.Build(compute.FuncLt, datatype.SmallInt, datatype.Double)
	require.NoError(t, err)

	left := columnar.FromOptions(columnar.Int16Type, nil, []*int16{ptr[int16](1), ptr[int16](2), nil, ptr[int16](4)})
	right := columnar.FromValues(columnar.Float64Type, nil, []float64{1.5, 1.5, 0, 4.5}, nil)

	out, err := expr.Eval(nil, []columnar.ArrayImpl{left, right})
	require.NoError(t, err)
	require.Equal(t, []any{true, false, nil, true}, collect(t, out))

	// Operands are positional: a double on the left is not accepted.
	_, err = expr.Eval(nil, []columnar.ArrayImpl{right, left})
	require.ErrorIs(t, err, columnar.ErrTypeMismatch)
}

func TestBuild_IntegerAndDecimal(t *testing.T) {
	dec := datatype.DecimalOf(10, 2)

	typ, err := compute.ResultType(compute.FuncMul, datatype.Integer, dec)
	require.NoError(t, err)
	require.Equal(t, datatype.IDDecimal, typ.ID)

	mul, err := compute.Build(compute.FuncMul, datatype.Integer, dec)
	require.NoError(t, err)

	ints := columnar.FromOptions(columnar.Int32Type, nil, []*int32{ptr[int32](3), ptr[int32](2), nil})
	decs := columnar.FromValues(columnar.DecimalType, nil, []decimal.Decimal{
		decimal.RequireFromString("1.25"),
		decimal.RequireFromString("-0.50"),
		decimal.RequireFromString("1"),
	}, nil)

	out, err := mul.Eval(nil, []columnar.ArrayImpl{ints, decs})
	require.NoError(t, err)

	product, err := out.AsDecimal()
	require.NoError(t, err)
	require.True(t, product.Value(0).Equal(decimal.RequireFromString("3.75")))
	require.True(t, product.Value(1).Equal(decimal.RequireFromString("-1")))
	require.True(t, product.IsNull(2))

	gt, err := compute.Build(compute.FuncGt, dec, datatype.BigInt)
	require.NoError(t, err)

	bigs := columnar.FromValues(columnar.Int64Type, nil, []int64{1, 0, 1}, nil)
	out, err = gt.Eval(nil, []columnar.ArrayImpl{decs, bigs})
	require.NoError(t, err)
	require.Equal(t, []any{true, false, false}, collect(t, out))
}

func TestBuild_Boolean(t *testing.T) {
	left := columnar.FromOptions(columnar.BoolType, nil, []*bool{ptr(true), ptr(true), ptr(false), nil})
	right := columnar.FromOptions(columnar.BoolType, nil, []*bool{ptr(true), ptr(false), ptr(false), ptr(true)})

	tt := []struct {
		fn     compute.Func
		expect []any
	}{
		{compute.FuncAnd, []any{true, false, false, nil}},
		{compute.FuncOr, []any{true, true, false, nil}},
		{compute.FuncEq, []any{true, false, true, nil}},
		{compute.FuncGt, []any{false, true, false, nil}},
	}
	for _, tc := range tt {
		t.Run(tc.fn.String(), func(t *testing.T) {
			expr, err := compute.Build(tc.fn, datatype.Boolean, datatype.Boolean)
			require.NoError(t, err)

			out, err := expr.Eval(nil, []columnar.ArrayImpl{left, right})
			require.NoError(t, err)
			require.Equal(t, tc.expect, collect(t, out))
		})
	}
}

func TestBuild_Unsupported(t *testing.T) {
	tt := []struct {
		fn          compute.Func
		left, right datatype.Type
	}{
		{compute.FuncEq, datatype.Boolean, datatype.Integer},
		{compute.FuncLt, datatype.Varchar, datatype.Double},
		{compute.FuncContains, datatype.Integer, datatype.Integer},
		{compute.FuncAdd, datatype.Varchar, datatype.Varchar},
		{compute.FuncAnd, datatype.Integer, datatype.Integer},
		{compute.FuncConcat, datatype.Double, datatype.Double},
		{compute.FuncAdd, datatype.Boolean, datatype.Boolean},
	}
	for _, tc := range tt {
		t.Run(fmt.Sprintf("%s(%s,%s)", tc.fn, tc.left, tc.right), func(t *testing.T) {
			_, err := compute.Build(tc.fn, tc.left, tc.right)
			require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)
		})
	}
}

func TestBuild_Arity(t *testing.T) {
	_, err := compute.Build(compute.FuncNot, datatype.Boolean, datatype.Boolean)
	require.ErrorIs(t, err, compute.ErrArity)

	_, err = compute.BuildUnary(compute.FuncLt, datatype.Integer)
	require.ErrorIs(t, err, compute.ErrArity)
}

// Every pair of types that can be promoted must have a physical signature to
// dispatch to.
func TestBuild_DispatchComplete(t *testing.T) {
	for _, left := range allTypes {
		for _, right := range allTypes {
			_, promoteErr := datatype.Promote(left, right)

			expr, err := compute.BuildBinaryExpression(compute.FuncEq, left, right)
			if promoteErr != nil {
				require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes, "%s, %s", left, right)
				continue
			}
			require.NoError(t, err, "%s, %s", left, right)
			require.Equal(t, 2, expr.Arity())
		}
	}
}

func TestResultType(t *testing.T) {
	tt := []struct {
		fn          compute.Func
		left, right datatype.Type
		expect      datatype.Type
	}{
		{compute.FuncLt, datatype.SmallInt, datatype.BigInt, datatype.Boolean},
		{compute.FuncAdd, datatype.SmallInt, datatype.Integer, datatype.Integer},
		{compute.FuncSub, datatype.Integer, datatype.Double, datatype.Double},
		{compute.FuncContains, datatype.Char(2), datatype.Varchar, datatype.Boolean},
		{compute.FuncConcat, datatype.Char(2), datatype.Char(3), datatype.Varchar},
		{compute.FuncOr, datatype.Boolean, datatype.Boolean, datatype.Boolean},
	}
	for _, tc := range tt {
		actual, err := compute.ResultType(tc.fn, tc.left, tc.right)
		require.NoError(t, err)
		require.Equal(t, tc.expect, actual, "%s(%s, %s)", tc.fn, tc.left, tc.right)
	}
}

func TestBuildUnary(t *testing.T) {
	t.Run("negate", func(t *testing.T) {
		expr, err := compute.BuildUnary(compute.FuncNegate, datatype.BigInt)
		require.NoError(t, err)

		in := columnar.FromOptions(columnar.Int64Type, nil, []*int64{ptr[int64](1), nil, ptr[int64](-3)})
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)
		require.Equal(t, []any{int64(-1), nil, int64(3)}, collect(t, out))
	})

	t.Run("negate decimal", func(t *testing.T) {
		expr, err := compute.BuildUnary(compute.FuncNegate, datatype.DecimalOf(5, 1))
		require.NoError(t, err)

		in := columnar.FromValues(columnar.DecimalType, nil, []decimal.Decimal{decimal.RequireFromString("2.5")}, nil)
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)

		neg, err := out.AsDecimal()
		require.NoError(t, err)
		require.True(t, neg.Value(0).Equal(decimal.RequireFromString("-2.5")))
	})

	t.Run("length", func(t *testing.T) {
		typ, err := compute.UnaryResultType(compute.FuncLength, datatype.Varchar)
		require.NoError(t, err)
		require.Equal(t, datatype.Integer, typ)

		expr, err := compute.BuildUnary(compute.FuncLength, datatype.Varchar)
		require.NoError(t, err)

		in := columnar.FromOptions(columnar.UTF8Type, nil, []*string{ptr("abc"), ptr("héllo"), nil, ptr("")})
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)
		require.Equal(t, []any{int32(3), int32(5), nil, int32(0)}, collect(t, out))
	})

	t.Run("not", func(t *testing.T) {
		expr, err := compute.BuildUnary(compute.FuncNot, datatype.Boolean)
		require.NoError(t, err)

		in := columnar.FromOptions(columnar.BoolType, nil, []*bool{ptr(true), nil, ptr(false)})
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)
		require.Equal(t, []any{false, nil, true}, collect(t, out))
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, tc := range []struct {
			fn  compute.Func
			arg datatype.Type
		}{
			{compute.FuncNot, datatype.Integer},
			{compute.FuncNegate, datatype.Varchar},
			{compute.FuncLength, datatype.Double},
		} {
			_, err := compute.BuildUnary(tc.fn, tc.arg)
			require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)
		}
	})
}

func TestCast(t *testing.T) {
	t.Run("widen", func(t *testing.T) {
		expr, err := compute.Cast(datatype.SmallInt, datatype.Double)
		require.NoError(t, err)

		in := columnar.FromOptions(columnar.Int16Type, nil, []*int16{ptr[int16](7), nil})
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)
		require.Equal(t, []any{7.0, nil}, collect(t, out))
	})

	t.Run("decimal", func(t *testing.T) {
		expr, err := compute.Cast(datatype.BigInt, datatype.Decimal)
		require.NoError(t, err)

		in := columnar.FromValues(columnar.Int64Type, nil, []int64{42}, nil)
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)

		dec, err := out.AsDecimal()
		require.NoError(t, err)
		require.True(t, dec.Value(0).Equal(decimal.NewFromInt(42)))
	})

	t.Run("identity", func(t *testing.T) {
		expr, err := compute.Cast(datatype.Char(3), datatype.Varchar)
		require.NoError(t, err)

		in := columnar.FromValues(columnar.UTF8Type, nil, []string{"abc"}, nil)
		out, err := expr.Eval(nil, []columnar.ArrayImpl{in})
		require.NoError(t, err)
		require.True(t, columnar.Equal(in, out))
	})

	t.Run("narrowing", func(t *testing.T) {
		_, err := compute.Cast(datatype.Double, datatype.Integer)
		require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)

		_, err = compute.Cast(datatype.Boolean, datatype.Integer)
		require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)
	})

	t.Run("narrowing within a family", func(t *testing.T) {
		_, err := compute.Cast(datatype.DecimalOf(10, 2), datatype.DecimalOf(5, 1))
		require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)

		_, err = compute.Cast(datatype.Char(10), datatype.Char(2))
		require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)

		_, err = compute.Cast(datatype.Integer, datatype.DecimalOf(5, 2))
		require.ErrorIs(t, err, compute.ErrUnsupportedOperandTypes)
	})

	t.Run("widening within a family", func(t *testing.T) {
		expr, err := compute.Cast(datatype.DecimalOf(5, 1), datatype.DecimalOf(10, 2))
		require.NoError(t, err)
		require.Equal(t, "cast", expr.String())

		_, err = compute.Cast(datatype.Char(2), datatype.Char(10))
		require.NoError(t, err)
	})
}

func TestParseFunc(t *testing.T) {
	for _, fn := range []compute.Func{
		compute.FuncLt, compute.FuncContainsFold, compute.FuncConcat,
		compute.FuncAnd, compute.FuncNegate, compute.FuncLength,
	} {
		parsed, err := compute.ParseFunc(fn.String())
		require.NoError(t, err)
		require.Equal(t, fn, parsed)
	}

	parsed, err := compute.ParseFunc(" <> ")
	require.NoError(t, err)
	require.Equal(t, compute.FuncNe, parsed)

	parsed, err = compute.ParseFunc("=~")
	require.NoError(t, err)
	require.Equal(t, compute.FuncMatch, parsed)

	parsed, err = compute.ParseFunc("HAS_PREFIX")
	require.NoError(t, err)
	require.Equal(t, compute.FuncHasPrefix, parsed)

	_, err = compute.ParseFunc("invalid")
	require.Error(t, err)
	_, err = compute.ParseFunc("div")
	require.Error(t, err)
}
