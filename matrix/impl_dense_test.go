// Package matrix_test contains unit tests for the accessors of Matrix[T].
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := mustNew[uint8](t, 3, 4, make([]uint8, 12)...)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 12, m.Len())
}

// TestAtOutOfBounds ensures At() and Row() return ErrOutOfRange on invalid access.
func TestAtOutOfBounds(t *testing.T) {
	m := mustNew[float64](t, 2, 2, 1, 2, 3, 4)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowMajorIndexing checks row = idx / w, col = idx % w.
func TestRowMajorIndexing(t *testing.T) {
	m := mustNew[uint8](t, 2, 3, 1, 2, 3, 4, 5, 6)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(4), v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []uint8{4, 5, 6}, row)

	require.Equal(t, [][]uint8{{1, 2, 3}, {4, 5, 6}}, m.RowSlices())
	require.Equal(t, []uint8{1, 5}, m.DiagonalValues())
}

func TestDoStopsEarly(t *testing.T) {
	m := mustNew[float64](t, 2, 2, 1, 2, 3, 4)
	var seen []float64
	m.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustNew[float64](t, 2, 2, 1, 2, 3, 4.5)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
