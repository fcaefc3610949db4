package compute

import (
	"fmt"
	"strings"
)

// Func denotes a built-in function that can be bound to logical types with
// [Build] or [BuildUnary].
type Func int

// Recognized values of [Func].
const (
	// FuncInvalid indicates an invalid function.
	FuncInvalid Func = iota

	FuncLt // Less than comparison (<).
	FuncLe // Less than or equal comparison (<=).
	FuncGt // Greater than comparison (>).
	FuncGe // Greater than or equal comparison (>=).
	FuncEq // Equality comparison (=).
	FuncNe // Inequality comparison (<>).

	FuncContains     // Substring match.
	FuncContainsFold // Case-insensitive substring match.
	FuncHasPrefix    // Prefix match.
	FuncHasSuffix    // Suffix match.
	FuncMatch        // Regular expression match (=~).
	FuncConcat       // String concatenation.

	FuncAdd // Addition (+).
	FuncSub // Subtraction (-).
	FuncMul // Multiplication (*).

	FuncAnd // Logical AND.
	FuncOr  // Logical OR.

	FuncNot    // Logical NOT.
	FuncNegate // Arithmetic negation.
	FuncLength // Number of characters of a string.
)

var funcStrings = map[Func]string{
	FuncInvalid: "invalid",

	FuncLt: "lt",
	FuncLe: "le",
	FuncGt: "gt",
	FuncGe: "ge",
	FuncEq: "eq",
	FuncNe: "ne",

	FuncContains:     "contains",
	FuncContainsFold: "contains_fold",
	FuncHasPrefix:    "has_prefix",
	FuncHasSuffix:    "has_suffix",
	FuncMatch:        "matches",
	FuncConcat:       "concat",

	FuncAdd: "add",
	FuncSub: "sub",
	FuncMul: "mul",

	FuncAnd: "and",
	FuncOr:  "or",

	FuncNot:    "not",
	FuncNegate: "negate",
	FuncLength: "length",
}

// String returns the string representation of the Func.
func (f Func) String() string {
	if s, ok := funcStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Func(%d)", f)
}

// Arity returns the number of arguments of f.
func (f Func) Arity() int {
	switch f {
	case FuncInvalid:
		return 0
	case FuncNot, FuncNegate, FuncLength:
		return 1
	}
	return 2
}

// IsComparison reports whether f compares its arguments.
func (f Func) IsComparison() bool { return f >= FuncLt && f <= FuncNe }

// IsPredicate reports whether f returns booleans.
func (f Func) IsPredicate() bool {
	return f.IsComparison() || (f >= FuncContains && f <= FuncMatch)
}

// IsArithmetic reports whether f is an arithmetic operation.
func (f Func) IsArithmetic() bool { return f >= FuncAdd && f <= FuncMul }

// ParseFunc returns the Func named s. Names are case insensitive and the
// operators are also accepted in symbolic form.
func ParseFunc(s string) (Func, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if fn, ok := funcSymbols[s]; ok {
		return fn, nil
	}
	for fn, name := range funcStrings {
		if fn != FuncInvalid && name == s {
			return fn, nil
		}
	}
	return FuncInvalid, fmt.Errorf("unknown function %q", s)
}

var funcSymbols = map[string]Func{
	"<":  FuncLt,
	"<=": FuncLe,
	">":  FuncGt,
	">=": FuncGe,
	"=":  FuncEq,
	"==": FuncEq,
	"!=": FuncNe,
	"<>": FuncNe,
	"+":  FuncAdd,
	"-":  FuncSub,
	"*":  FuncMul,
	"||": FuncConcat,
	"=~": FuncMatch,
}
