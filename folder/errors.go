package folder

import (
	"errors"
	"fmt"
)

var (
	ErrPrecondition = errors.New("precondition failed")
	ErrParentCycle  = errors.New("parent chain would contain a cycle")
	ErrColumnCount  = errors.New("wrong number of columns")
	ErrNotAFolder   = errors.New("parcelable is not a folder")
)

// DecodeError is returned when a row cannot be decoded into a folder
type DecodeError struct {
	Column int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Column < 0 || e.Column >= len(Projection) {
		return fmt.Sprintf("cannot decode folder row: %s", e.Err)
	}
	return fmt.Sprintf("cannot decode folder row: column %d (%s): %s", e.Column, Projection[e.Column], e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FormatError is returned when a colour string is not a decimal integer
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid colour %q: %s", e.Value, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
