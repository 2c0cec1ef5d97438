// SPDX-License-Identifier: MIT

// Package matrix - safe accessors over the row-major buffer.
//
// Purpose:
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Never hand out the backing slice; every slice-returning accessor copies.
//   - Keep traversal deterministic (fixed i→j order).

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxAt  = "At"
	ctxRow = "Row"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Size returns the shape. Complexity: O(1).
func (m *Matrix[T]) Size() Size { return m.size }

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.size.Height }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.size.Width }

// Len returns the element count. Complexity: O(1).
func (m *Matrix[T]) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.size.Height {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.size.Width {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*w + j.
	return row*m.size.Width + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Elements returns a copy of the row-major element sequence.
// Complexity: O(h*w).
func (m *Matrix[T]) Elements() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i or ErrOutOfRange.
// Complexity: O(w).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.size.Height {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.size.Width)
	copy(out, m.data[i*m.size.Width:(i+1)*m.size.Width])

	return out, nil
}

// RowSlices returns the matrix as a fresh [][]T, one slice per row.
// Each logical position comes from the flat index: row = idx / w, col = idx % w.
// Complexity: O(h*w).
func (m *Matrix[T]) RowSlices() [][]T {
	rows := make([][]T, m.size.Height)
	for i := range rows {
		rows[i] = make([]T, m.size.Width)
	}
	w := m.size.Width
	for idx, v := range m.data {
		rows[idx/w][idx%w] = v
	}

	return rows
}

// DiagonalValues returns the main-diagonal entries (i, i) for i < min(h, w),
// in matrix order.
// Complexity: O(min(h,w)).
func (m *Matrix[T]) DiagonalValues() []T {
	n := m.size.MinDim()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.size.Width+i]
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No allocations.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.size.Height; i++ {
		base = i * m.size.Width
		for j = 0; j < m.size.Width; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.size.Height; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.size.Width
		for j = 0; j < m.size.Width; j++ {
			b.WriteString(fmt.Sprintf("%v", m.data[base+j]))
			if j+1 < m.size.Width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
