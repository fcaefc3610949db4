package columnar

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned when a variant wrapper is asked for a concrete
// type it does not hold.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrUnknownChildKind is returned when the kind of the values of a list can
// not be inferred.
var ErrUnknownChildKind = errors.New("unknown list child kind")

// TypeMismatchError describes a failed downcast. It wraps
// [ErrTypeMismatch].
type TypeMismatchError struct {
	Want, Got Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexError is the panic value used when an array is accessed out of
// range. Out of range access is a programming error and is never returned.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}
