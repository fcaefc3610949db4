package compute

import (
	"errors"

	"github.com/grafana/colexpr/pkg/datatype"
)

var (
	// ErrLengthMismatch is returned when the arguments of an expression have
	// different lengths.
	ErrLengthMismatch = errors.New("argument length mismatch")

	// ErrArity is returned when an expression is evaluated with the wrong
	// number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrUnsupportedOperandTypes is returned when an expression can not be
	// built for the given operand types.
	ErrUnsupportedOperandTypes = datatype.ErrUnsupportedOperandTypes
)
