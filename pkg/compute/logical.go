package compute

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/bitutil"

	"github.com/grafana/colexpr/pkg/columnar"
	"github.com/grafana/colexpr/pkg/memory"
)

// Not negates the input boolean array.
//
// Special cases:
//
//   - The negation of null is null.
func Not(alloc *memory.Allocator, input *columnar.Bool) *columnar.Bool {
	count := input.Len()
	validity := copyValidity(alloc, input.Validity())

	valuesBitmap := memory.NewBitmap(alloc, count)
	valuesBitmap.Resize(count)

	inputBitmap := input.Values()
	bitutil.InvertBitmap(inputBitmap.Bytes(), 0, count, valuesBitmap.Bytes(), 0)
	clearNulls(&valuesBitmap, validity)

	return columnar.NewBool(valuesBitmap, validity)
}

// And computes the logical AND of two boolean arrays of the same length.
//
// Special cases:
//
//   - If either side of the AND is null, the result is null.
func And(alloc *memory.Allocator, left, right *columnar.Bool) (*columnar.Bool, error) {
	return logicalAA(alloc, logicalAndKernel, left, right)
}

// Or computes the logical OR of two boolean arrays of the same length.
//
// Special cases:
//
//   - If either side of the OR is null, the result is null.
func Or(alloc *memory.Allocator, left, right *columnar.Bool) (*columnar.Bool, error) {
	return logicalAA(alloc, logicalOrKernel, left, right)
}

// boolScalar is a constant boolean operand.
type boolScalar struct {
	value bool
	null  bool
}

func logicalSS(alloc *memory.Allocator, kernel logicalKernel, left, right boolScalar, rows int) *columnar.Bool {
	return repeatBool(alloc, boolScalar{
		value: kernel.DoSS(left.value, right.value),
		null:  !computeValiditySS(left.null, right.null),
	}, rows)
}

// repeatBool returns an array of rows elements that are all v.
func repeatBool(alloc *memory.Allocator, v boolScalar, rows int) *columnar.Bool {
	values := memory.NewBitmap(alloc, rows)
	values.AppendCount(v.value && !v.null, rows)

	var validity memory.Bitmap
	if v.null {
		validity = memory.NewBitmap(alloc, rows)
		validity.AppendCount(false, rows)
	}
	return columnar.NewBool(values, validity)
}

func logicalSA(alloc *memory.Allocator, kernel logicalKernel, left boolScalar, right *columnar.Bool) *columnar.Bool {
	validity := computeValiditySA(alloc, left.null, right.Validity(), right.Len())

	if left.null {
		// When left is null, the result is all nulls (set to the length of
		// right).
		values := memory.NewBitmap(alloc, right.Len())
		values.AppendCount(false, right.Len())

		return columnar.NewBool(values, validity)
	}
	validity = copyValidity(alloc, validity)

	values := memory.NewBitmap(alloc, right.Len())
	kernel.DoSA(&values, left.value, right.Values())
	clearNulls(&values, validity)

	return columnar.NewBool(values, validity)
}

func logicalAS(alloc *memory.Allocator, kernel logicalKernel, left *columnar.Bool, right boolScalar) *columnar.Bool {
	validity := computeValidityAS(alloc, left.Validity(), right.null, left.Len())

	if right.null {
		// When right is null, the result is all nulls (set to the length of
		// left).
		values := memory.NewBitmap(alloc, left.Len())
		values.AppendCount(false, left.Len())

		return columnar.NewBool(values, validity)
	}
	validity = copyValidity(alloc, validity)

	values := memory.NewBitmap(alloc, left.Len())
	kernel.DoAS(&values, left.Values(), right.value)
	clearNulls(&values, validity)

	return columnar.NewBool(values, validity)
}

func logicalAA(alloc *memory.Allocator, kernel logicalKernel, left, right *columnar.Bool) (*columnar.Bool, error) {
	if left.Len() != right.Len() {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, left.Len(), right.Len())
	}

	validity, err := computeValidityAA(alloc, left.Validity(), right.Validity())
	if err != nil {
		return nil, err
	}
	validity = copyValidity(alloc, validity)

	values := memory.NewBitmap(alloc, left.Len())
	kernel.DoAA(&values, left.Values(), right.Values())
	clearNulls(&values, validity)

	return columnar.NewBool(values, validity), nil
}

// clearNulls sets the values of null slots to false to avoid garbage data
// in results.
func clearNulls(values *memory.Bitmap, validity memory.Bitmap) {
	if validity.Len() == 0 {
		return
	}
	for i := range validity.IterValues(false) {
		values.Set(i, false)
	}
}

type logicalKernel interface {
	DoSS(left, right bool) bool
	DoSA(out *memory.Bitmap, left bool, right memory.Bitmap)
	DoAS(out *memory.Bitmap, left memory.Bitmap, right bool)
	DoAA(out *memory.Bitmap, left, right memory.Bitmap)
}

var (
	logicalAndKernel logicalKernel = logicalKernelImpl{aa: bitutil.BitmapAnd, absorbing: false}
	logicalOrKernel  logicalKernel = logicalKernelImpl{aa: bitutil.BitmapOr, absorbing: true}
)

// logicalKernelImpl implements AND and OR. absorbing is the value that
// decides the result on its own: false for AND, true for OR.
type logicalKernelImpl struct {
	aa        bitmapKernel
	absorbing bool
}

// bitmapKernel adapts one of the bitutil bitmap operations.
type bitmapKernel func(left, right []byte, lOffset, rOffset int64, out []byte, outOffset int64, length int64)

func (k logicalKernelImpl) DoSS(left, right bool) bool {
	if left == k.absorbing || right == k.absorbing {
		return k.absorbing
	}
	return !k.absorbing
}

func (k logicalKernelImpl) DoSA(out *memory.Bitmap, left bool, right memory.Bitmap) {
	if left == k.absorbing {
		out.AppendCount(k.absorbing, right.Len())
		return
	}
	out.AppendBitmap(right)
}

func (k logicalKernelImpl) DoAS(out *memory.Bitmap, left memory.Bitmap, right bool) {
	k.DoSA(out, right, left)
}

func (k logicalKernelImpl) DoAA(out *memory.Bitmap, left, right memory.Bitmap) {
	if left.Len() != right.Len() {
		panic("invalid length")
	}

	out.Resize(left.Len())
	k.aa(left.Bytes(), right.Bytes(), 0, 0, out.Bytes(), 0, int64(left.Len()))
}

// bindLogicalOperand returns the array of col, or its value if col is constant.
func bindLogicalOperand(col Column) (*columnar.Bool, boolScalar, error) {
	arr, err := col.values.AsBool()
	if err != nil {
		return nil, boolScalar{}, err
	}
	if !col.constant {
		return arr, boolScalar{}, nil
	}
	value, ok := arr.Get(0)
	return nil, boolScalar{value: value, null: !ok}, nil
}

// logicalExpression exposes a logical kernel as an [Expression].
type logicalExpression struct {
	name   string
	kernel logicalKernel
}

var (
	andExpression Expression = logicalExpression{name: "and", kernel: logicalAndKernel}
	orExpression  Expression = logicalExpression{name: "or", kernel: logicalOrKernel}

	_ ColumnEvaluator = logicalExpression{}
	_ ColumnEvaluator = notExpression{}
)

func (e logicalExpression) Arity() int     { return 2 }
func (e logicalExpression) String() string { return e.name }

func (e logicalExpression) Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	if err := checkArity(e, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}
	return e.EvalColumns(alloc, ArrayColumns(args))
}

func (e logicalExpression) EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	if err := checkArity(e, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}

	left, leftScalar, err := bindLogicalOperand(args[0])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: left argument: %w", e.name, err)
	}
	right, rightScalar, err := bindLogicalOperand(args[1])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("%s: right argument: %w", e.name, err)
	}
	rows, err := checkRows(e, args)
	if err != nil {
		return columnar.ArrayImpl{}, err
	}

	var out *columnar.Bool
	switch {
	case left == nil && right == nil:
		out = logicalSS(alloc, e.kernel, leftScalar, rightScalar, rows)
	case left == nil:
		out = logicalSA(alloc, e.kernel, leftScalar, right)
	case right == nil:
		out = logicalAS(alloc, e.kernel, left, rightScalar)
	default:
		if out, err = logicalAA(alloc, e.kernel, left, right); err != nil {
			return columnar.ArrayImpl{}, fmt.Errorf("%s: %w", e.name, err)
		}
	}
	return columnar.WrapBool(out), nil
}

type notExpression struct{}

func (notExpression) Arity() int     { return 1 }
func (notExpression) String() string { return "not" }

func (e notExpression) Eval(alloc *memory.Allocator, args []columnar.ArrayImpl) (columnar.ArrayImpl, error) {
	if err := checkArity(e, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}
	return e.EvalColumns(alloc, ArrayColumns(args))
}

func (e notExpression) EvalColumns(alloc *memory.Allocator, args []Column) (columnar.ArrayImpl, error) {
	if err := checkArity(e, len(args)); err != nil {
		return columnar.ArrayImpl{}, err
	}

	input, scalar, err := bindLogicalOperand(args[0])
	if err != nil {
		return columnar.ArrayImpl{}, fmt.Errorf("not: %w", err)
	}
	if input != nil {
		return columnar.WrapBool(Not(alloc, input)), nil
	}

	scalar.value = !scalar.value
	return columnar.WrapBool(repeatBool(alloc, scalar, args[0].Len())), nil
}
