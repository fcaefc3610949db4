// Package compute evaluates scalar functions over whole columns.
//
// Functions are written against the view types of package columnar and
// lifted into an [Expression] by [NewUnary], [NewBinary] or one of the n-ary
// constructors such as [NewTernary]. An Expression checks the kinds and
// lengths of its arguments, propagates nulls and calls the function only for
// rows where every argument is valid. Arguments may be constant [Column]
// values, which are broadcast to every row without being expanded.
//
// [Build] binds a [Func] to a pair of logical types, inserting the implicit
// widening casts chosen by [datatype.Promote].
package compute

import (
	"fmt"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

// Expression is a function over whole columns.
//
// Expressions are immutable and safe for concurrent use. The arrays passed to
// Eval are only read.
type Expression interface {
	// Eval evaluates the expression over args, allocating the result from
	// alloc. Eval returns an error wrapping [ErrArity] if len(args) differs
	// from Arity, [columnar.ErrTypeMismatch] if an argument is of the wrong
	// kind and [ErrLengthMismatch] if the arguments have different lengths.
	Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error)

	// Arity returns the number of arguments of the expression.
	Arity() int

	// String returns the name of the expression.
	String() string
}

// UnaryFunc is a function object of one argument.
type UnaryFunc[I, O any] interface {
	Eval(v I) O
}

// UnaryFuncOf adapts a plain function to a [UnaryFunc].
type UnaryFuncOf[I, O any] func(v I) O

// Eval implements [UnaryFunc].
func (f UnaryFuncOf[I, O]) Eval(v I) O { return f(v) }

// BinaryFunc is a function object of two arguments.
type BinaryFunc[I1, I2, O any] interface {
	Eval(a I1, b I2) O
}

// BinaryFuncOf adapts a plain function to a [BinaryFunc].
type BinaryFuncOf[I1, I2, O any] func(a I1, b I2) O

// Eval implements [BinaryFunc].
func (f BinaryFuncOf[I1, I2, O]) Eval(a I1, b I2) O { return f(a, b) }

func checkArity(expr Expression, n int) error {
	if n != expr.Arity() {
		return fmt.Errorf("%s: %w: got %d, expected %d", expr, ErrArity, n, expr.Arity())
	}
	return nil
}

// validAt reports whether row i is valid according to validity. An empty
// validity bitmap means every row is valid.
func validAt(validity memory.Bitmap, i int) bool {
	return validity.Len() == 0 || validity.Get(i)
}
