package compute

import (
	"fmt"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

// Unary is an [Expression] applying a [UnaryFunc] to every row of a column.
type Unary[OI, RI, O, R any] struct {
	name string

	in  columnar.Type[OI, RI]
	out columnar.Type[O, R]
	fn  UnaryFunc[RI, O]
}

var (
	_ Expression      = (*Unary[int32, int32, int64, int64])(nil)
	_ ColumnEvaluator = (*Unary[int32, int32, int64, int64])(nil)
)

// NewUnary returns a unary expression named name evaluating fn over columns
// of type in.
func NewUnary[OI, RI, O, R any](name string, in columnar.Type[OI, RI], out columnar.Type[O, R], fn UnaryFunc[RI, O]) *Unary[OI, RI, O, R] {
	return &Unary[OI, RI, O, R]{name: name, in: in, out: out, fn: fn}
}

// Arity implements [Expression].
func (u *Unary[OI, RI, O, R]) Arity() int { return 1 }

// String implements [Expression].
func (u *Unary[OI, RI, O, R]) String() string { return u.name }

// Eval implements [Expression].
func (u *Unary[OI, RI, O, R]) Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	if err := checkArity(u, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}
	return u.EvalBatch(alloc, args[0])
}

// EvalBatch evaluates the expression over the rows of arg. Null rows stay
// null and the function is not called for them.
func (u *Unary[OI, RI, O, R]) EvalBatch(alloc *memory.Allocator, arg columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	return u.EvalColumns(alloc, []Column{ArrayColumn(arg)})
}

// EvalColumns implements [ColumnEvaluator].
func (u *Unary[OI, RI, O, R]) EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	if err := checkArity(u, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}

	in, err := bindOperand(u.in, args[0])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: %w", u.name, err)
	}
	rows := args[0].Len()

	builder := u.out.NewBuilder(alloc, rows)
	return finishRows(builder, u.out, rows, in.validity(), func(i int) O {
		return u.fn.Eval(in.at(i))
	}), nil
}
