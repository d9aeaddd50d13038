package complexmat

import "errors"

var (
	// ErrDimensionMismatch indicates the parallel triplet slices disagree in
	// length, or a vector length does not match the system order.
	ErrDimensionMismatch = errors.New("complexmat: dimension mismatch")
	// ErrIndexOutOfRange indicates a row or column index outside [0, order).
	ErrIndexOutOfRange = errors.New("complexmat: index out of range")
	// ErrSingularMatrix indicates LU factorization failed on a zero pivot.
	ErrSingularMatrix = errors.New("complexmat: matrix is singular")
	// ErrSolverFailure indicates the solver failed after factorization.
	ErrSolverFailure = errors.New("complexmat: solver failure")
)
