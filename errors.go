package bitcol

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitcol/internal/conv"
)

var (
	// ErrEmptyOperands is returned by the n-ary folds (FoldUnion,
	// FoldIntersect) when called with zero operands. These folds have no
	// identity element; at least one operand is required to seed the
	// accumulator.
	ErrEmptyOperands = errors.New("fold requires at least one operand")

	// ErrValueOutOfRange is returned when an input value cannot be
	// represented as an unsigned 32-bit integer. Conversion fails before any
	// partially built bitmap escapes to the caller.
	ErrValueOutOfRange = conv.ErrOutOfRange

	// ErrIndexOutOfRange is returned by IndexedView.Get for positions outside
	// [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDatatypeRegistered is returned by Registry.Register when the
	// datatype tag is already taken.
	ErrDatatypeRegistered = errors.New("datatype already registered")

	// ErrUnknownDatatype is returned by Registry.Convert for a tag that was
	// never registered.
	ErrUnknownDatatype = errors.New("unknown datatype")
)

// UnsupportedConversionError indicates that ToBitmap was handed a value that
// is neither nil, bitmap-like, range-like, nor a supported integer sequence.
type UnsupportedConversionError struct {
	Value any
}

func (e *UnsupportedConversionError) Error() string {
	return fmt.Sprintf("unsupported conversion to bitmap: %T", e.Value)
}
