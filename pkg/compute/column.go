package compute

import (
	"fmt"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

//go:generate go run ../../tools/variantgen -template nary -in nary.yaml -out nary_gen.go

// Column is an argument of an expression: either an array, or a constant
// value repeated for a number of rows. Constants are never expanded into
// arrays by expressions implementing [ColumnEvaluator].
type Column struct {
	// values holds the array, or the single value of a constant.
	values   columnar.ArrayImpl
	rows     int
	constant bool
}

// ArrayColumn returns a column holding arr.
func ArrayColumn(arr columnar.ArrayImpl) Column {
	return Column{values: arr, rows: arr.Len()}
}

// ArrayColumns returns a column for each of arrs.
func ArrayColumns(arrs []columnar.ArrayImpl) []Column {
	cols := make([]Column, len(arrs))
	for i, arr := range arrs {
		cols[i] = ArrayColumn(arr)
	}
	return cols
}

// ConstantColumn returns a column of rows rows that are all value.
// ConstantColumn panics if value is the zero ScalarImpl.
func ConstantColumn(value columnar.ScalarImpl, rows int) Column {
	builder := columnar.NewBuilderImpl(nil, value.Kind())
	if err := builder.Push(value.AsRef(), true); err != nil {
		panic(fmt.Sprintf("constant column: %v", err))
	}
	return newConstant(builder.Finish(), rows)
}

// NullColumn returns a column of rows null rows of the given kind.
func NullColumn(kind columnar.Kind, rows int) Column {
	builder := columnar.NewBuilderImpl(nil, kind)
	builder.AppendNull()
	return newConstant(builder.Finish(), rows)
}

func newConstant(value columnar.ArrayImpl, rows int) Column {
	if rows < 0 {
		panic(fmt.Sprintf("constant column: negative row count %d", rows))
	}
	return Column{values: value, rows: rows, constant: true}
}

// Kind returns the physical kind of the values of c.
func (c Column) Kind() columnar.Kind { return c.values.Kind() }

// Len returns the number of rows of c.
func (c Column) Len() int { return c.rows }

// IsConstant reports whether c is a constant column.
func (c Column) IsConstant() bool { return c.constant }

// Constant returns the value of a constant column and whether it is valid.
// Constant panics if c is not a constant column.
func (c Column) Constant() (columnar.ScalarRefImpl, bool) {
	if !c.constant {
		panic("compute: Constant on an array column")
	}
	return c.values.Get(0)
}

// Materialize returns c as an array. Arrays are returned as they are;
// constants are expanded into an array of c.Len() elements allocated from
// alloc.
func (c Column) Materialize(alloc *memory.Allocator) columnar.ArrayImpl {
	if !c.constant {
		return c.values
	}

	builder := c.values.NewBuilder(alloc, c.rows)
	value, ok := c.values.Get(0)
	if !ok {
		builder.AppendNulls(c.rows)
		return builder.Finish()
	}
	for range c.rows {
		// value was read from an array of the builder's own kind.
		_ = builder.Push(value, true)
	}
	return builder.Finish()
}

// operand is a column downcast to the view type R of its kind.
type operand[R any] struct {
	array    columnar.TypedArray[R]
	constant bool
	value    R
	null     bool
}

func bindOperand[O, R any](t columnar.Type[O, R], col Column) (operand[R], error) {
	arr, err := t.Downcast(col.values)
	if err != nil {
		return operand[R]{}, err
	}
	if !col.constant {
		return operand[R]{array: arr}, nil
	}

	value, ok := arr.Get(0)
	return operand[R]{constant: true, value: value, null: !ok}, nil
}

// at returns the value of row i. The value of a null row is unspecified.
func (o operand[R]) at(i int) R {
	if o.constant {
		return o.value
	}
	return o.array.Value(i)
}

func (o operand[R]) validity() validity {
	if o.constant {
		return validity{constant: true, null: o.null}
	}
	return validity{bitmap: o.array.Validity()}
}

// checkRows returns the number of rows of args, or an error wrapping
// [ErrLengthMismatch] if they differ.
func checkRows(expr Expression, args []Column) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	rows := args[0].Len()
	for _, arg := range args[1:] {
		if arg.Len() != rows {
			return 0, fmt.Errorf("%s: %w: %d != %d", expr, ErrLengthMismatch, rows, arg.Len())
		}
	}
	return rows, nil
}

// finishRows appends values produced by value for every valid row of v to
// builder and returns the finished array. Null rows hold the zero view and
// are marked null by the validity bitmap of v, which becomes the validity
// of the result.
func finishRows[O, R any](builder columnar.Builder[R], out columnar.Type[O, R], rows int, v validity, value func(i int) O) columnar.ArrayImpl {
	if v.allNull() {
		builder.AppendNulls(rows)
		return builder.Finish()
	}

	var zero R
	for i := range rows {
		if !v.valid(i) {
			builder.AppendValue(zero)
			continue
		}
		builder.AppendValue(out.AsRef(value(i)))
	}
	return columnar.WithValidity(builder.Finish(), v.bitmap)
}

// ColumnEvaluator is implemented by expressions that evaluate constant
// columns without expanding them into arrays.
type ColumnEvaluator interface {
	// EvalColumns evaluates the expression over args, allocating the result
	// from alloc. The result has as many rows as the arguments. It returns
	// the same errors as [Expression.Eval].
	EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error)
}

// EvalColumns evaluates expr over args. Constant arguments are expanded
// into arrays if expr does not implement [ColumnEvaluator].
func EvalColumns(expr Expression, alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	if ce, ok := expr.(ColumnEvaluator); ok {
		return ce.EvalColumns(alloc, args)
	}

	arrays := make([]columnar.ArrayImpl, len(args))
	for i, arg := range args {
		arrays[i] = arg.Materialize(alloc)
	}
	return expr.Eval(alloc, arrays)
}
