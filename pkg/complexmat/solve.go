package complexmat

import (
	"fmt"

	"github.com/edp1096/sparse"
)

func solverConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// Solve solves the sparse complex system A*x = b and overwrites b with x.
//
// A is given in coordinate form: values, rows and cols are parallel slices of
// equal length, each triplet contributing values[i] at (rows[i], cols[i]).
// Indices are zero-based and must lie in [0, len(b)); the system order is
// len(b). Triplets sharing a coordinate accumulate by addition.
//
// The input slices are never mutated; b is overwritten only on success.
func Solve[T Complex](values []T, rows, cols []int, b []T) error {
	size := len(b)
	if size == 0 {
		return fmt.Errorf("%w: empty right-hand side", ErrDimensionMismatch)
	}
	if len(rows) != len(values) || len(cols) != len(values) {
		return fmt.Errorf("%w: %d values, %d row indices, %d column indices",
			ErrDimensionMismatch, len(values), len(rows), len(cols))
	}
	for i := range values {
		if rows[i] < 0 || rows[i] >= size || cols[i] < 0 || cols[i] >= size {
			return fmt.Errorf("%w: entry %d at (%d,%d), system order %d",
				ErrIndexOutOfRange, i, rows[i], cols[i], size)
		}
	}

	mat, err := sparse.Create(int64(size), solverConfig())
	if err != nil {
		return fmt.Errorf("%w: create: %v", ErrSolverFailure, err)
	}
	defer mat.Destroy()
	mat.Clear()

	// Triplet assembly. GetElement creates the structural nonzero on first
	// touch; repeated coordinates accumulate.
	for i, v := range values {
		element := mat.GetElement(int64(rows[i]+1), int64(cols[i]+1))
		if element == nil {
			return fmt.Errorf("%w: no element at (%d,%d)", ErrSolverFailure, rows[i], cols[i])
		}
		cv := complex128(v)
		element.Real += real(cv)
		element.Imag += imag(cv)
	}

	// The solver uses 1-based external indexing.
	rhs := make([]float64, size+1)
	irhs := make([]float64, size+1)
	for i, v := range b {
		cv := complex128(v)
		rhs[i+1] = real(cv)
		irhs[i+1] = imag(cv)
	}

	if err := mat.Factor(); err != nil {
		return fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	xre, xim, err := mat.SolveComplex(rhs, irhs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	for i := range b {
		b[i] = T(complex(xre[i+1], xim[i+1]))
	}
	return nil
}

// Solve64 is Solve for complex128 systems.
func Solve64(values []complex128, rows, cols []int, b []complex128) error {
	return Solve(values, rows, cols, b)
}

// Solve32 is Solve for complex64 systems. Factorization and solve run in the
// backend's double precision; the solution is narrowed to complex64 on
// write-back, so results are at least as accurate as a native single-precision
// factorization.
func Solve32(values []complex64, rows, cols []int, b []complex64) error {
	return Solve(values, rows, cols, b)
}
