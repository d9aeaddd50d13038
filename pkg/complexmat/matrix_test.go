package complexmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixOrder(t *testing.T) {
	m := FromEntries([]Entry[complex128]{
		{Row: 0, Col: 0, Value: complex(1, -1)},
		{Row: 1, Col: 1, Value: complex(-1, 1)},
	})
	assert.Equal(t, 2, m.Order())

	m.AddElement(3, 3, complex(2, 2))
	assert.Equal(t, 4, m.Order())

	empty := New[complex128]()
	assert.Equal(t, 0, empty.Order())
}

func TestMatrixGet(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, complex(1, -1))
	m.AddElement(1, 1, complex(-1, 1))

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, complex(1, -1), v)

	_, ok = m.Get(2, 1)
	assert.False(t, ok)

	// Contributions at a coordinate accumulate.
	m.AddElement(0, 0, complex(2, 3))
	v, ok = m.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, complex(3, 2), v)
}

func TestMatrixEntriesIsACopy(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, 1)

	entries := m.Entries()
	entries[0].Value = 99

	v, ok := m.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, complex128(1), v)
}

func TestMatrixSolve(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, complex(1, 1))
	m.AddElement(1, 1, complex(1, 1))

	b := []complex128{complex(1, 0), complex(0, 1)}
	require.NoError(t, m.Solve(b))
	assertComplexDelta(t, []complex128{complex(0.5, -0.5), complex(0.5, 0.5)}, b, 1e-6)
}

func TestMatrixSolveDimensionMismatch(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, 1)
	m.AddElement(1, 1, 1)

	err := m.Solve([]complex128{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMatrixSolveComplex64(t *testing.T) {
	m := New[complex64]()
	m.AddElement(0, 0, complex(3, 0))
	m.AddElement(0, 1, complex(0, 1))
	m.AddElement(1, 0, complex(0, -4))
	m.AddElement(1, 1, complex(1, 0))

	b := []complex64{complex(0, 3), complex(6, 0)}
	require.NoError(t, m.Solve(b))

	want := []complex64{complex(0, 3), complex(-6, 0)}
	for i := range want {
		assert.InDelta(t, real(want[i]), real(b[i]), 1e-4)
		assert.InDelta(t, imag(want[i]), imag(b[i]), 1e-4)
	}
}

func TestMatrixMulVec(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, complex(1, 1))
	m.AddElement(0, 1, complex(2, 0))
	m.AddElement(1, 1, complex(0, -1))

	x := []complex128{complex(1, 0), complex(0, 1)}
	dst := make([]complex128, 2)
	require.NoError(t, m.MulVec(dst, x))

	assertComplexDelta(t, []complex128{complex(1, 3), complex(1, 0)}, dst, 1e-12)

	err := m.MulVec(make([]complex128, 1), x)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMatrixString(t *testing.T) {
	m := New[complex128]()
	m.AddElement(0, 0, complex(1, 6))
	m.AddElement(1, 1, complex(3, -1))

	want := "Matrix {\n  (0,0) -> 1 + j6\n  (1,1) -> 3 - j1\n}"
	assert.Equal(t, want, m.String())
}
