package complexmat

import (
	"fmt"
	"strings"
)

// Matrix is an incremental coordinate-format builder for a square sparse
// complex matrix. Entries are held as triplets until Solve assembles them;
// the matrix order grows with the largest index seen.
type Matrix[T Complex] struct {
	entries []Entry[T]
}

// New returns an empty Matrix.
func New[T Complex]() *Matrix[T] {
	return &Matrix[T]{}
}

// FromEntries returns a Matrix holding a copy of the given triplets.
func FromEntries[T Complex](entries []Entry[T]) *Matrix[T] {
	m := &Matrix[T]{entries: make([]Entry[T], len(entries))}
	copy(m.entries, entries)
	return m
}

// AddElement appends a triplet contribution at (row, col). Contributions at
// the same coordinate accumulate by addition.
func (m *Matrix[T]) AddElement(row, col int, value T) {
	m.entries = append(m.entries, Entry[T]{Row: row, Col: col, Value: value})
}

// AddElements appends each triplet in entries.
func (m *Matrix[T]) AddElements(entries []Entry[T]) {
	m.entries = append(m.entries, entries...)
}

// Get returns the accumulated value at (row, col), and whether any entry
// exists there.
func (m *Matrix[T]) Get(row, col int) (T, bool) {
	var sum complex128
	found := false
	for _, e := range m.entries {
		if e.Row == row && e.Col == col {
			sum += complex128(e.Value)
			found = true
		}
	}
	return T(sum), found
}

// Order returns the matrix dimension implied by the entries: one past the
// largest row or column index, or zero for an empty matrix.
func (m *Matrix[T]) Order() int {
	order := 0
	for _, e := range m.entries {
		if e.Row+1 > order {
			order = e.Row + 1
		}
		if e.Col+1 > order {
			order = e.Col + 1
		}
	}
	return order
}

// Entries returns a copy of the accumulated triplets.
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(m.entries))
	copy(out, m.entries)
	return out
}

// Solve solves A*x = b against the built entries and overwrites b with x.
// len(b) must equal Order.
func (m *Matrix[T]) Solve(b []T) error {
	order := m.Order()
	if len(b) != order {
		return fmt.Errorf("%w: right-hand side length %d, matrix order %d",
			ErrDimensionMismatch, len(b), order)
	}

	values := make([]T, len(m.entries))
	rows := make([]int, len(m.entries))
	cols := make([]int, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.Value
		rows[i] = e.Row
		cols[i] = e.Col
	}
	return Solve(values, rows, cols, b)
}

// MulVec stores A*x into dst. Both slices must have length Order.
func (m *Matrix[T]) MulVec(dst, x []T) error {
	order := m.Order()
	if len(dst) != order || len(x) != order {
		return fmt.Errorf("%w: dst length %d, x length %d, matrix order %d",
			ErrDimensionMismatch, len(dst), len(x), order)
	}
	acc := make([]complex128, order)
	for _, e := range m.entries {
		acc[e.Row] += complex128(e.Value) * complex128(x[e.Col])
	}
	for i := range dst {
		dst[i] = T(acc[i])
	}
	return nil
}

// String renders the triplets one per line as "(row,col) -> re + jim".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix {\n")
	for _, e := range m.entries {
		cv := complex128(e.Value)
		re, im := real(cv), imag(cv)
		if im < 0 {
			fmt.Fprintf(&sb, "  (%d,%d) -> %g - j%g\n", e.Row, e.Col, re, -im)
		} else {
			fmt.Fprintf(&sb, "  (%d,%d) -> %g + j%g\n", e.Row, e.Col, re, im)
		}
	}
	sb.WriteString("}")
	return sb.String()
}
