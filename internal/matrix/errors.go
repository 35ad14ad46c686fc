package matrix

import "errors"

var (
	// ErrDimensionMismatch is returned when operand shapes are incompatible
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrEmpty is returned when constructing a matrix from no data
	ErrEmpty = errors.New("matrix: no data")
	// ErrRagged is returned when input rows have different lengths
	ErrRagged = errors.New("matrix: ragged rows")
	// ErrIndexOutOfRange is returned for row or column indices outside the matrix
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)
