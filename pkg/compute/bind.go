package compute

import (
	"cmp"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/pkg/columnar"
)

//go:generate go run ../../tools/variantgen -template dispatch -in dispatch.yaml -out dispatch_gen.go

// signature is the physical kinds of the operands of a binary function and
// the kind they are compared or combined in.
type signature struct {
	left, right, common columnar.Kind
}

// castSignature is the physical kinds of the input and output of a cast.
type castSignature struct {
	from, to columnar.Kind
}

func unsupported(fn Func, left, right columnar.Kind) error {
	return fmt.Errorf("%w: %s(%s, %s)", ErrUnsupportedOperandTypes, fn, left, right)
}

// widen converts v to a wider numeric type.
func widen[S, D columnar.Numeric](v S) D { return D(v) }

// bindNumeric binds fn to numeric operands of types L and R, both widened
// to C before fn is applied.
func bindNumeric[L, R, C columnar.Numeric](fn Func, left columnar.Type[L, L], right columnar.Type[R, R], common columnar.Type[C, C]) (Expression, error) {
	castL, castR := widen[L, C], widen[R, C]

	if pred, ok := orderedPredicate[C](fn); ok {
		return NewBinary(fn.String(), left, right, columnar.BoolType, BinaryFuncOf[L, R, bool](func(a L, b R) bool {
			return pred(castL(a), castR(b))
		})), nil
	}
	if op, ok := arithmetic[C](fn); ok {
		return NewBinary(fn.String(), left, right, common, BinaryFuncOf[L, R, C](func(a L, b R) C {
			return op(castL(a), castR(b))
		})), nil
	}
	return nil, unsupported(fn, left.Kind(), right.Kind())
}

// decimalOperand is the set of types that convert to decimals without loss.
type decimalOperand interface {
	int16 | int32 | int64 | decimal.Decimal
}

func toDecimal[T decimalOperand](v T) decimal.Decimal {
	switch v := any(v).(type) {
	case decimal.Decimal:
		return v
	case int16:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}
	panic("unreachable")
}

// bindDecimal binds fn to operands of types L and R, both converted to
// decimals before fn is applied.
func bindDecimal[L, R decimalOperand](fn Func, left columnar.Type[L, L], right columnar.Type[R, R], common columnar.Type[decimal.Decimal, decimal.Decimal]) (Expression, error) {
	castL, castR := toDecimal[L], toDecimal[R]

	if result, ok := compareResult(fn); ok {
		return NewBinary(fn.String(), left, right, columnar.BoolType, BinaryFuncOf[L, R, bool](func(a L, b R) bool {
			return result(castL(a).Cmp(castR(b)))
		})), nil
	}
	if op, ok := decimalArithmetic(fn); ok {
		return NewBinary(fn.String(), left, right, common, BinaryFuncOf[L, R, decimal.Decimal](func(a L, b R) decimal.Decimal {
			return op(castL(a), castR(b))
		})), nil
	}
	return nil, unsupported(fn, left.Kind(), right.Kind())
}

// bindString binds fn to string operands.
func bindString(fn Func, left, right, common columnar.Type[string, []byte]) (Expression, error) {
	if fn == FuncConcat {
		return NewBinary(fn.String(), left, right, common, BinaryFuncOf[[]byte, []byte, string](Concat)), nil
	}
	if fn == FuncMatch {
		return NewBinary(fn.String(), left, right, columnar.BoolType, BinaryFunc[[]byte, []byte, bool](newRegexpMatcher())), nil
	}
	if pred, ok := stringPredicate(fn); ok {
		return NewBinary(fn.String(), left, right, columnar.BoolType, BinaryFuncOf[[]byte, []byte, bool](pred)), nil
	}
	return nil, unsupported(fn, left.Kind(), right.Kind())
}

// bindBool binds fn to boolean operands.
func bindBool(fn Func, left, right, _ columnar.Type[bool, bool]) (Expression, error) {
	switch fn {
	case FuncAnd:
		return andExpression, nil
	case FuncOr:
		return orExpression, nil
	}
	if result, ok := compareResult(fn); ok {
		return NewBinary(fn.String(), left, right, columnar.BoolType, BinaryFuncOf[bool, bool, bool](func(a, b bool) bool {
			return result(cmp.Compare(b2i(a), b2i(b)))
		})), nil
	}
	return nil, unsupported(fn, left.Kind(), right.Kind())
}

// bindNumericCast returns an expression widening numbers of type S to D.
func bindNumericCast[S, D columnar.Numeric](from columnar.Type[S, S], to columnar.Type[D, D]) Expression {
	return NewUnary("cast", from, to, UnaryFuncOf[S, D](widen[S, D]))
}

// bindDecimalCast returns an expression converting values of type S to
// decimals.
func bindDecimalCast[S decimalOperand](from columnar.Type[S, S], to columnar.Type[decimal.Decimal, decimal.Decimal]) Expression {
	return NewUnary("cast", from, to, UnaryFuncOf[S, decimal.Decimal](toDecimal[S]))
}
