// Package datatype describes the logical types of columns and how they map
// onto the physical kinds of package columnar.
package datatype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grafana/colexpr/pkg/columnar"
)

// ID identifies a family of logical types.
type ID int

// Recognized values of [ID].
const (
	// IDInvalid indicates an invalid logical type.
	IDInvalid ID = iota

	IDBoolean  // Boolean values.
	IDSmallInt // 16-bit signed integers.
	IDInteger  // 32-bit signed integers.
	IDBigInt   // 64-bit signed integers.
	IDReal     // 32-bit floating point numbers.
	IDDouble   // 64-bit floating point numbers.
	IDDecimal  // Exact decimal numbers with a precision and scale.
	IDVarchar  // Variable-length strings.
	IDChar     // Strings of a declared length.
)

var idStrings = map[ID]string{
	IDInvalid: "invalid",

	IDBoolean:  "boolean",
	IDSmallInt: "smallint",
	IDInteger:  "integer",
	IDBigInt:   "bigint",
	IDReal:     "real",
	IDDouble:   "double",
	IDDecimal:  "decimal",
	IDVarchar:  "varchar",
	IDChar:     "char",
}

// String returns the string representation of the ID.
func (id ID) String() string {
	if s, ok := idStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("ID(%d)", id)
}

// MaxPrecision is the largest precision of a decimal type.
const MaxPrecision = 38

// Type is a logical type. Length is only set for [IDChar] and optionally
// [IDVarchar]; Precision and Scale only for [IDDecimal].
type Type struct {
	ID        ID
	Length    uint16
	Precision uint16
	Scale     uint16
}

// Logical types without parameters.
var (
	Boolean  = Type{ID: IDBoolean}
	SmallInt = Type{ID: IDSmallInt}
	Integer  = Type{ID: IDInteger}
	BigInt   = Type{ID: IDBigInt}
	Real     = Type{ID: IDReal}
	Double   = Type{ID: IDDouble}
	Varchar  = Type{ID: IDVarchar}
)

// Char returns the type of strings of length n.
func Char(n uint16) Type { return Type{ID: IDChar, Length: n} }

// DecimalOf returns the type of decimals with the given precision and scale.
func DecimalOf(precision, scale uint16) Type {
	return Type{ID: IDDecimal, Precision: precision, Scale: scale}
}

// Decimal is the decimal type with the largest precision and no fractional
// digits.
var Decimal = DecimalOf(MaxPrecision, 0)

// physicalKinds maps every logical type family to the physical kind its
// values are stored as.
var physicalKinds = map[ID]columnar.Kind{
	IDBoolean:  columnar.KindBool,
	IDSmallInt: columnar.KindInt16,
	IDInteger:  columnar.KindInt32,
	IDBigInt:   columnar.KindInt64,
	IDReal:     columnar.KindFloat32,
	IDDouble:   columnar.KindFloat64,
	IDDecimal:  columnar.KindDecimal,
	IDVarchar:  columnar.KindUTF8,
	IDChar:     columnar.KindUTF8,
}

// Physical returns the physical kind values of t are stored as, or
// [columnar.KindInvalid] for an invalid type.
func (t Type) Physical() columnar.Kind { return physicalKinds[t.ID] }

// IsInteger reports whether t is one of the integer types.
func (t Type) IsInteger() bool {
	return t.ID == IDSmallInt || t.ID == IDInteger || t.ID == IDBigInt
}

// IsFloat reports whether t is one of the floating point types.
func (t Type) IsFloat() bool { return t.ID == IDReal || t.ID == IDDouble }

// IsNumeric reports whether t is an integer, floating point or decimal type.
func (t Type) IsNumeric() bool { return t.IsInteger() || t.IsFloat() || t.ID == IDDecimal }

// IsString reports whether t is a string type.
func (t Type) IsString() bool { return t.ID == IDVarchar || t.ID == IDChar }

// String returns t in the form accepted by [Parse].
func (t Type) String() string {
	switch t.ID {
	case IDChar:
		return fmt.Sprintf("char(%d)", t.Length)
	case IDVarchar:
		if t.Length > 0 {
			return fmt.Sprintf("varchar(%d)", t.Length)
		}
	case IDDecimal:
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	}
	return t.ID.String()
}

var aliases = map[string]ID{
	"bool":    IDBoolean,
	"int2":    IDSmallInt,
	"int":     IDInteger,
	"int4":    IDInteger,
	"int8":    IDBigInt,
	"float4":  IDReal,
	"float8":  IDDouble,
	"numeric": IDDecimal,
	"text":    IDVarchar,
	"string":  IDVarchar,
}

// Parse parses a type name such as "smallint", "char(10)" or
// "decimal(10,2)". Names are case insensitive.
func Parse(s string) (Type, error) {
	name, params, err := splitParams(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return Type{}, fmt.Errorf("parse type %q: %w", s, err)
	}

	id, ok := aliases[name]
	if !ok {
		for candidate, str := range idStrings {
			if candidate != IDInvalid && str == name {
				id, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return Type{}, fmt.Errorf("parse type %q: unknown type %q", s, name)
	}

	switch id {
	case IDChar:
		switch len(params) {
		case 0:
			return Char(1), nil
		case 1:
			return Char(params[0]), nil
		}
	case IDVarchar:
		switch len(params) {
		case 0:
			return Varchar, nil
		case 1:
			return Type{ID: IDVarchar, Length: params[0]}, nil
		}
	case IDDecimal:
		switch len(params) {
		case 0:
			return Decimal, nil
		case 1:
			return checkDecimal(s, DecimalOf(params[0], 0))
		case 2:
			return checkDecimal(s, DecimalOf(params[0], params[1]))
		}
	default:
		if len(params) == 0 {
			return Type{ID: id}, nil
		}
	}
	return Type{}, fmt.Errorf("parse type %q: %s does not take %d parameters", s, id, len(params))
}

func checkDecimal(s string, t Type) (Type, error) {
	if t.Precision == 0 || t.Precision > MaxPrecision || t.Scale > t.Precision {
		return Type{}, fmt.Errorf("parse type %q: invalid precision or scale", s)
	}
	return t, nil
}

// splitParams splits "name(a,b)" into its name and parameters.
func splitParams(s string) (string, []uint16, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("missing closing parenthesis")
	}

	name := strings.TrimSpace(s[:open])
	var params []uint16
	for _, p := range strings.Split(s[open+1:len(s)-1], ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return "", nil, fmt.Errorf("invalid parameter %q: %w", p, err)
		}
		params = append(params, uint16(v))
	}
	return name, params, nil
}
