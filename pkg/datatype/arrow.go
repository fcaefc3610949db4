package datatype

import "github.com/apache/arrow-go/v18/arrow"

var arrowTypes = map[ID]arrow.DataType{
	IDBoolean:  arrow.FixedWidthTypes.Boolean,
	IDSmallInt: arrow.PrimitiveTypes.Int16,
	IDInteger:  arrow.PrimitiveTypes.Int32,
	IDBigInt:   arrow.PrimitiveTypes.Int64,
	IDReal:     arrow.PrimitiveTypes.Float32,
	IDDouble:   arrow.PrimitiveTypes.Float64,
	IDVarchar:  arrow.BinaryTypes.String,
	IDChar:     arrow.BinaryTypes.String,
}

// ArrowType returns the Arrow data type of columns of type t.
func (t Type) ArrowType() arrow.DataType {
	if t.ID == IDDecimal {
		return &arrow.Decimal128Type{Precision: int32(t.Precision), Scale: int32(t.Scale)}
	}
	if dt, ok := arrowTypes[t.ID]; ok {
		return dt
	}
	return arrow.Null
}

// FromArrow returns the logical type of Arrow columns of type dt.
func FromArrow(dt arrow.DataType) (Type, bool) {
	if dec, ok := dt.(*arrow.Decimal128Type); ok {
		return DecimalOf(uint16(dec.Precision), uint16(dec.Scale)), true
	}
	for id, candidate := range arrowTypes {
		// Strings read back as varchar.
		if id != IDChar && arrow.TypeEqual(dt, candidate) {
			return Type{ID: id}, true
		}
	}
	return Type{}, false
}
