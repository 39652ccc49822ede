package maxplus

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible operand sizes.
	ErrDimensionMismatch = errors.New("maxplus: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("maxplus: index out of range")

	// ErrBadShape indicates a negative matrix dimension.
	ErrBadShape = errors.New("maxplus: invalid shape")
)
