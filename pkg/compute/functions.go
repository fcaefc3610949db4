package compute

import (
	"bytes"
	"cmp"

	"github.com/shopspring/decimal"

	"github.com/grafana/colexpr/pkg/columnar"
)

// Lt reports whether a < b.
func Lt[T cmp.Ordered](a, b T) bool { return a < b }

// Le reports whether a <= b.
func Le[T cmp.Ordered](a, b T) bool { return a <= b }

// Gt reports whether a > b.
func Gt[T cmp.Ordered](a, b T) bool { return a > b }

// Ge reports whether a >= b.
func Ge[T cmp.Ordered](a, b T) bool { return a >= b }

// Eq reports whether a == b.
func Eq[T comparable](a, b T) bool { return a == b }

// Ne reports whether a != b.
func Ne[T comparable](a, b T) bool { return a != b }

// Add returns a + b.
func Add[T columnar.Numeric](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T columnar.Numeric](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T columnar.Numeric](a, b T) T { return a * b }

// Negate returns -v.
func Negate[T columnar.Numeric](v T) T { return -v }

// orderedPredicate returns the comparison implementing fn over T.
func orderedPredicate[T cmp.Ordered](fn Func) (func(a, b T) bool, bool) {
	switch fn {
	case FuncLt:
		return Lt[T], true
	case FuncLe:
		return Le[T], true
	case FuncGt:
		return Gt[T], true
	case FuncGe:
		return Ge[T], true
	case FuncEq:
		return Eq[T], true
	case FuncNe:
		return Ne[T], true
	}
	return nil, false
}

// compareResult maps the result of a three-way comparison to the outcome of
// the comparison fn.
func compareResult(fn Func) (func(c int) bool, bool) {
	switch fn {
	case FuncLt:
		return func(c int) bool { return c < 0 }, true
	case FuncLe:
		return func(c int) bool { return c <= 0 }, true
	case FuncGt:
		return func(c int) bool { return c > 0 }, true
	case FuncGe:
		return func(c int) bool { return c >= 0 }, true
	case FuncEq:
		return func(c int) bool { return c == 0 }, true
	case FuncNe:
		return func(c int) bool { return c != 0 }, true
	}
	return nil, false
}

// arithmetic returns the arithmetic operation implementing fn over T.
func arithmetic[T columnar.Numeric](fn Func) (func(a, b T) T, bool) {
	switch fn {
	case FuncAdd:
		return Add[T], true
	case FuncSub:
		return Sub[T], true
	case FuncMul:
		return Mul[T], true
	}
	return nil, false
}

// decimalArithmetic returns the arithmetic operation implementing fn over
// decimals.
func decimalArithmetic(fn Func) (func(a, b decimal.Decimal) decimal.Decimal, bool) {
	switch fn {
	case FuncAdd:
		return decimal.Decimal.Add, true
	case FuncSub:
		return decimal.Decimal.Sub, true
	case FuncMul:
		return decimal.Decimal.Mul, true
	}
	return nil, false
}

// Contains reports whether needle is within haystack.
func Contains(haystack, needle []byte) bool { return bytes.Contains(haystack, needle) }

// ContainsFold reports whether needle is within haystack, ignoring case.
func ContainsFold(haystack, needle []byte) bool {
	return bytes.Contains(
		toUpper(haystack, make([]byte, len(haystack))),
		toUpper(needle, make([]byte, len(needle))),
	)
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix []byte) bool { return bytes.HasPrefix(s, prefix) }

// HasSuffix reports whether s ends with suffix.
func HasSuffix(s, suffix []byte) bool { return bytes.HasSuffix(s, suffix) }

// Concat returns the concatenation of a and b.
func Concat(a, b []byte) string {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return string(append(out, b...))
}

// stringPredicate returns the string function implementing fn.
func stringPredicate(fn Func) (func(a, b []byte) bool, bool) {
	switch fn {
	case FuncContains:
		return Contains, true
	case FuncContainsFold:
		return ContainsFold, true
	case FuncHasPrefix:
		return HasPrefix, true
	case FuncHasSuffix:
		return HasSuffix, true
	}
	if result, ok := compareResult(fn); ok {
		return func(a, b []byte) bool { return result(bytes.Compare(a, b)) }, true
	}
	return nil, false
}

// b2i orders false before true.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
