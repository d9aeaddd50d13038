// Package complexmat solves sparse complex linear systems A*x = b by direct
// sparse LU factorization. The matrix is described in coordinate (triplet)
// form; factorization and solve are delegated to github.com/edp1096/sparse,
// a Go port of the Sparse1.3 solver.
package complexmat

// Complex is the scalar type set accepted by the solver entry points.
type Complex interface {
	~complex64 | ~complex128
}

// Entry is a single coordinate-format matrix contribution. Entries sharing
// the same (Row, Col) accumulate by addition when the matrix is assembled.
type Entry[T Complex] struct {
	Row   int
	Col   int
	Value T
}
