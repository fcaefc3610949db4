package compute

import (
	"fmt"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

// Binary is an [Expression] applying a [BinaryFunc] to every row of two
// columns. Left values are read as R1, right values as R2, and results of
// type O are appended to a column of the kind described by the output type.
type Binary[O1, R1, O2, R2, O, R any] struct {
	name string

	left  columnar.Type[O1, R1]
	right columnar.Type[O2, R2]
	out   columnar.Type[O, R]
	fn    BinaryFunc[R1, R2, O]
}

var (
	_ Expression      = (*Binary[int32, int32, int32, int32, bool, bool])(nil)
	_ ColumnEvaluator = (*Binary[int32, int32, int32, int32, bool, bool])(nil)
)

// NewBinary returns a binary expression named name evaluating fn over
// columns of types left and right.
func NewBinary[O1, R1, O2, R2, O, R any](
	name string,
	left columnar.Type[O1, R1],
	right columnar.Type[O2, R2],
	out columnar.Type[O, R],
	fn BinaryFunc[R1, R2, O],
) *Binary[O1, R1, O2, R2, O, R] {
	return &Binary[O1, R1, O2, R2, O, R]{
		name:  name,
		left:  left,
		right: right,
		out:   out,
		fn:    fn,
	}
}

// Arity implements [Expression].
func (b *Binary[O1, R1, O2, R2, O, R]) Arity() int { return 2 }

// String implements [Expression].
func (b *Binary[O1, R1, O2, R2, O, R]) String() string { return b.name }

// Eval implements [Expression].
func (b *Binary[O1, R1, O2, R2, O, R]) Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	if err := checkArity(b, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}
	return b.EvalBatch(alloc, args[0], args[1])
}

// EvalBatch evaluates the expression over the rows of left and right. A row
// is null in the result if it is null in either argument, in which case the
// function is not called for it.
func (b *Binary[O1, R1, O2, R2, O, R]) EvalBatch(alloc *memory.Allocator, left, right columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	return b.EvalColumns(alloc, []Column{ArrayColumn(left), ArrayColumn(right)})
}

// EvalColumns implements [ColumnEvaluator]. A constant argument is read once
// and reused for every row.
func (b *Binary[O1, R1, O2, R2, O, R]) EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	if err := checkArity(b, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}

	lhs, err := bindOperand(b.left, args[0])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: left argument: %w", b.name, err)
	}
	rhs, err := bindOperand(b.right, args[1])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: right argument: %w", b.name, err)
	}
	rows, err := checkRows(b, args)
	if err != nil {
		return columnar.ArrayImpl{}, err
	}

	validity, err := combineValidity(alloc, rows, lhs.validity(), rhs.validity())
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: %w", b.name, err)
	}

	builder := b.out.NewBuilder(alloc, rows)
	return finishRows(builder, b.out, rows, validity, func(i int) O {
		return b.fn.Eval(lhs.at(i), rhs.at(i))
	}), nil
}
