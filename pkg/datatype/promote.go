package datatype

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperandTypes is returned when two types have no common type
// to evaluate an operation in.
var ErrUnsupportedOperandTypes = errors.New("unsupported operand types")

type idPair struct{ a, b ID }

// promotions lists the common family of every pair of distinct families
// that can be combined. Pairs are unordered: each pair is listed once with
// the lower ID first. Pairs of equal families promote to themselves.
var promotions = map[idPair]ID{
	{IDSmallInt, IDInteger}: IDInteger,
	{IDSmallInt, IDBigInt}:  IDBigInt,
	{IDSmallInt, IDReal}:    IDDouble,
	{IDSmallInt, IDDouble}:  IDDouble,
	{IDSmallInt, IDDecimal}: IDDecimal,

	{IDInteger, IDBigInt}:  IDBigInt,
	{IDInteger, IDReal}:    IDDouble,
	{IDInteger, IDDouble}:  IDDouble,
	{IDInteger, IDDecimal}: IDDecimal,

	{IDBigInt, IDReal}:    IDDouble,
	{IDBigInt, IDDouble}:  IDDouble,
	{IDBigInt, IDDecimal}: IDDecimal,

	{IDReal, IDDouble}: IDDouble,

	{IDVarchar, IDChar}: IDVarchar,
}

// integerDigits is the number of decimal digits needed to hold any value of
// an integer family.
var integerDigits = map[ID]uint16{
	IDSmallInt: 5,
	IDInteger:  10,
	IDBigInt:   19,
}

// Promote returns the common type values of a and b are converted to before
// they are combined. Promote is symmetric. It returns an error wrapping
// [ErrUnsupportedOperandTypes] if a and b can not be combined.
func Promote(a, b Type) (Type, error) {
	if a.ID > b.ID {
		a, b = b, a
	}
	if a.ID == IDInvalid {
		return Type{}, fmt.Errorf("%w: %s and %s", ErrUnsupportedOperandTypes, a, b)
	}

	id := a.ID
	if a.ID != b.ID {
		var ok bool
		if id, ok = promotions[idPair{a.ID, b.ID}]; !ok {
			return Type{}, fmt.Errorf("%w: %s and %s", ErrUnsupportedOperandTypes, a, b)
		}
	}

	switch id {
	case IDChar:
		return Char(max(a.Length, b.Length)), nil
	case IDVarchar:
		if a.ID == IDVarchar && b.ID == IDVarchar && a.Length > 0 && b.Length > 0 {
			return Type{ID: IDVarchar, Length: max(a.Length, b.Length)}, nil
		}
		return Varchar, nil
	case IDDecimal:
		return promoteDecimal(decimalBounds(a), decimalBounds(b)), nil
	}
	return Type{ID: id}, nil
}

// decimalBounds returns t as a decimal type able to hold every value of t.
func decimalBounds(t Type) Type {
	if t.ID == IDDecimal {
		return t
	}
	return DecimalOf(integerDigits[t.ID], 0)
}

func promoteDecimal(a, b Type) Type {
	scale := max(a.Scale, b.Scale)
	digits := max(a.Precision-a.Scale, b.Precision-b.Scale)
	return DecimalOf(min(digits+scale, MaxPrecision), scale)
}
