// Package gf2: sentinel errors shared by Vector and Matrix.
// All exported operations return these sentinels; tests match them
// via errors.Is. Panics are reserved for programmer errors in private
// helpers that have already validated their inputs.
package gf2

import "errors"

var (
	// ErrBadLength is returned when a requested vector length is not positive.
	ErrBadLength = errors.New("gf2: vector length must be > 0")

	// ErrBadShape is returned when a requested matrix shape has a
	// non-positive row or column count.
	ErrBadShape = errors.New("gf2: matrix shape must be > 0 in both axes")

	// ErrIndexOutOfRange indicates a bit index outside the valid range.
	ErrIndexOutOfRange = errors.New("gf2: index out of range")

	// ErrLengthMismatch indicates two vectors of differing lengths were
	// combined where equal lengths are required.
	ErrLengthMismatch = errors.New("gf2: vector length mismatch")

	// ErrDimensionMismatch indicates incompatible matrix/vector operand
	// dimensions, e.g. MulVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")
)
