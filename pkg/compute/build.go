package compute

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/datatype"
	"github.com/grafana/colexpr/pkg/memory"
	util_log "github.com/grafana/colexpr/pkg/util/log"
)

// Build binds the binary function fn to operands of logical types left and
// right. Both operands are converted to the type chosen by
// [datatype.Promote] before fn is applied.
//
// Build returns an error wrapping [ErrUnsupportedOperandTypes] if left and
// right can not be promoted to a common type or fn is not defined on it,
// and an error wrapping [ErrArity] if fn is not a binary function.
func Build(fn Func, left, right datatype.Type) (Expression, error) {
	if fn.Arity() != 2 {
		return nil, fmt.Errorf("%s: %w: expected %d arguments", fn, ErrArity, fn.Arity())
	}

	common, err := datatype.Promote(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if _, err := ResultType(fn, left, right); err != nil {
		return nil, err
	}

	expr, err := dispatch(fn, left.Physical(), right.Physical(), common.Physical())
	if err != nil {
		return nil, err
	}

	level.Debug(util_log.Logger).Log(
		"msg", "built binary expression",
		"func", fn,
		"left", left,
		"right", right,
		"common", common,
	)
	return expr, nil
}

// BuildBinaryExpression is an alias of [Build].
func BuildBinaryExpression(fn Func, left, right datatype.Type) (Expression, error) {
	return Build(fn, left, right)
}

// ResultType returns the logical type of the result of fn applied to
// operands of types left and right.
func ResultType(fn Func, left, right datatype.Type) (datatype.Type, error) {
	common, err := datatype.Promote(left, right)
	if err != nil {
		return datatype.Type{}, fmt.Errorf("%s: %w", fn, err)
	}

	switch {
	case fn.IsComparison():
		return datatype.Boolean, nil
	case fn.IsPredicate() && common.IsString():
		return datatype.Boolean, nil
	case fn == FuncConcat && common.IsString():
		return datatype.Varchar, nil
	case fn.IsArithmetic() && common.IsNumeric():
		return common, nil
	case (fn == FuncAnd || fn == FuncOr) && common.ID == datatype.IDBoolean:
		return datatype.Boolean, nil
	}
	return datatype.Type{}, fmt.Errorf("%w: %s(%s, %s)", ErrUnsupportedOperandTypes, fn, left, right)
}

// BuildUnary binds the unary function fn to an operand of logical type arg.
func BuildUnary(fn Func, arg datatype.Type) (Expression, error) {
	if fn.Arity() != 1 {
		return nil, fmt.Errorf("%s: %w: expected %d arguments", fn, ErrArity, fn.Arity())
	}
	if _, err := UnaryResultType(fn, arg); err != nil {
		return nil, err
	}

	var expr Expression
	switch fn {
	case FuncNot:
		expr = notExpression{}
	case FuncLength:
		expr = NewUnary(fn.String(), columnar.UTF8Type, columnar.Int32Type, UnaryFuncOf[[]byte, int32](Length))
	case FuncNegate:
		expr = negateExpression(arg.Physical())
	}

	level.Debug(util_log.Logger).Log("msg", "built unary expression", "func", fn, "arg", arg)
	return expr, nil
}

func negateExpression(kind columnar.Kind) Expression {
	name := FuncNegate.String()
	switch kind {
	case columnar.KindInt16:
		return NewUnary(name, columnar.Int16Type, columnar.Int16Type, UnaryFuncOf[int16, int16](Negate[int16]))
	case columnar.KindInt32:
		return NewUnary(name, columnar.Int32Type, columnar.Int32Type, UnaryFuncOf[int32, int32](Negate[int32]))
	case columnar.KindInt64:
		return NewUnary(name, columnar.Int64Type, columnar.Int64Type, UnaryFuncOf[int64, int64](Negate[int64]))
	case columnar.KindFloat32:
		return NewUnary(name, columnar.Float32Type, columnar.Float32Type, UnaryFuncOf[float32, float32](Negate[float32]))
	case columnar.KindFloat64:
		return NewUnary(name, columnar.Float64Type, columnar.Float64Type, UnaryFuncOf[float64, float64](Negate[float64]))
	case columnar.KindDecimal:
		return NewUnary(name, columnar.DecimalType, columnar.DecimalType, UnaryFuncOf[decimal.Decimal, decimal.Decimal](decimal.Decimal.Neg))
	}
	panic(fmt.Sprintf("negate: unexpected kind %s", kind))
}

// UnaryResultType returns the logical type of the result of fn applied to
// an operand of type arg.
func UnaryResultType(fn Func, arg datatype.Type) (datatype.Type, error) {
	switch {
	case fn == FuncNot && arg.ID == datatype.IDBoolean:
		return datatype.Boolean, nil
	case fn == FuncNegate && arg.IsNumeric():
		return arg, nil
	case fn == FuncLength && arg.IsString():
		return datatype.Integer, nil
	}
	return datatype.Type{}, fmt.Errorf("%w: %s(%s)", ErrUnsupportedOperandTypes, fn, arg)
}

// Cast returns an expression converting columns of type from to type to.
// Only conversions that [datatype.Promote] would insert are supported, that
// is those where Promote(from, to) is exactly to. Others, including casts to
// a narrower length, precision or scale, return an error wrapping
// [ErrUnsupportedOperandTypes].
func Cast(from, to datatype.Type) (Expression, error) {
	promoted, err := datatype.Promote(from, to)
	if err != nil {
		return nil, fmt.Errorf("cast: %w", err)
	}
	if promoted != to {
		return nil, fmt.Errorf("%w: can not cast %s to %s", ErrUnsupportedOperandTypes, from, to)
	}
	if from.Physical() == to.Physical() {
		return identity{kind: to.Physical()}, nil
	}
	return castDispatch(from.Physical(), to.Physical())
}

// identity returns its argument unchanged.
type identity struct {
	kind columnar.Kind
}

func (identity) Arity() int       { return 1 }
func (e identity) String() string { return "cast" }

func (e identity) Eval(_ *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	if err := checkArity(e, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}
	if args[0].Kind() != e.kind {
		return columnar.ArrayImpl{}, fmt.Errorf("cast: %w", &columnar.TypeMismatchError{Want: e.kind, Got: args[0].Kind()})
	}
	return args[0], nil
}
