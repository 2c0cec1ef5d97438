// SPDX-License-Identifier: MIT

// Package matrix - flat storage layout conversion.
//
// Numerical routines in the LAPACK tradition exchange column-major buffers,
// while Matrix stores row-major. TransposeStorage converts between the two:
// a row-major h×w buffer becomes its column-major equivalent, and a
// column-major h×w buffer (passed with size.Transpose()) becomes row-major.

package matrix

import "fmt"

const ctxStorage = "TransposeStorage"

// TransposeStorage reorders a row-major buffer of the given size into
// column-major order: element (i, j) moves from i*w+j to j*h+i.
// The input is not modified.
//
// Errors: ErrBadShape (negative size), ErrShapeMismatch (len(data) != h*w).
// Complexity: O(h*w).
func TransposeStorage[T any](data []T, size Size) ([]T, error) {
	if !size.valid() {
		return nil, matrixErrorf(ctxStorage, ErrBadShape)
	}
	if len(data) != size.Len() {
		return nil, matrixErrorf(ctxStorage, fmt.Errorf("%d elements for %dx%d: %w",
			len(data), size.Height, size.Width, ErrShapeMismatch))
	}
	h, w := size.Height, size.Width
	out := make([]T, len(data))
	var i, j int
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			out[j*h+i] = data[i*w+j]
		}
	}

	return out, nil
}

// ColMajor returns a fresh column-major copy of the elements.
// Complexity: O(h*w).
func (m *Matrix[T]) ColMajor() []T {
	out, _ := TransposeStorage(m.data, m.size) // len(m.data) == m.size.Len() by construction

	return out
}

// FromColMajor builds a row-major Matrix from a column-major buffer.
// Errors: ErrBadShape, ErrShapeMismatch.
func FromColMajor[T Numeric](data []T, size Size) (*Matrix[T], error) {
	// A column-major h×w buffer is the row-major buffer of the w×h transpose.
	rowMajor, err := TransposeStorage(data, size.Transpose())
	if err != nil {
		return nil, err
	}

	return wrap(rowMajor, size), nil
}
