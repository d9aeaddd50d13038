package complexmat

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Parts splits a complex slice into parallel real and imaginary component
// slices. Useful for callers exchanging flat component arrays with native or
// foreign code.
func Parts[F constraints.Float, T Complex](z []T) (re, im []F) {
	re = make([]F, len(z))
	im = make([]F, len(z))
	for i, v := range z {
		cv := complex128(v)
		re[i] = F(real(cv))
		im[i] = F(imag(cv))
	}
	return re, im
}

// FromParts combines parallel real and imaginary component slices into a
// complex slice. The component slices must have equal length.
func FromParts[F constraints.Float, T Complex](re, im []F) ([]T, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: %d real components, %d imaginary components",
			ErrDimensionMismatch, len(re), len(im))
	}
	z := make([]T, len(re))
	for i := range re {
		z[i] = T(complex(float64(re[i]), float64(im[i])))
	}
	return z, nil
}
