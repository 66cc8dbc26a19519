package series

import (
	"errors"
	"fmt"
)

// Domain errors for loading and indexing snapshot files.
var (
	// ErrSyntax indicates a token that is not a floating-point number.
	ErrSyntax = errors.New("series: invalid number")

	// ErrOddLineCount indicates a paired file whose last displacement line has no companion.
	ErrOddLineCount = errors.New("series: odd line count in paired mode")

	// ErrRaggedSnapshot indicates snapshots of differing lengths.
	ErrRaggedSnapshot = errors.New("series: snapshot length mismatch")

	// ErrEmptyInput indicates a file with no time steps.
	ErrEmptyInput = errors.New("series: no time steps")

	// ErrIndexOutOfRange indicates a spatial index outside a snapshot.
	ErrIndexOutOfRange = errors.New("series: spatial index out of range")
)

// ParseError reports the line (and token, when known) that failed to parse.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v %q", e.Line, e.Column, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a snapshot whose length differs from the first one.
type ShapeError struct {
	Line int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("line %d: %v: want %d points, got %d", e.Line, ErrRaggedSnapshot, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error {
	return ErrRaggedSnapshot
}

// IndexError reports a spatial index and the valid range it fell outside of.
type IndexError struct {
	Index  int
	Points int
}

func (e *IndexError) Error() string {
	if e.Points == 0 {
		return fmt.Sprintf("%v: index %d, snapshots are empty", ErrIndexOutOfRange, e.Index)
	}
	return fmt.Sprintf("%v: index %d, valid range [0, %d]", ErrIndexOutOfRange, e.Index, e.Points-1)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
