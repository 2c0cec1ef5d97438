// SPDX-License-Identifier: MIT

// Package matrix - Matrix[T] storage (row-major) & constructors.
//
// Purpose:
//   - Provide an immutable row-major buffer with the explicit index formula i*width + j.
//   - Guarantee len(data) == Height*Width for every value that escapes a constructor.
//   - Copy on the way in and on the way out, so no two matrices share storage.
//
// Complexity quicksheet:
//   - New/Zeros/Diagonal: O(h*w); Identity: O(n^2).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxZeros    = "Zeros"
	ctxIdentity = "Identity"
	ctxDiagonal = "Diagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a dense, immutable, row-major matrix of T.
//   - size holds the shape.
//   - data is a flat buffer of length size.Len() (offset = i*Width + j).
type Matrix[T Numeric] struct {
	size Size
	data []T
}

// Intensity is the 8-bit channel matrix exchanged with pixel marshalling.
type Intensity = Matrix[uint8]

// New builds a matrix from a row-major element sequence.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; the slice is copied.
//
// Implementation:
//   - Stage 1: validate size (non-negative).
//   - Stage 2: validate len(elements) == Height*Width.
//   - Stage 3: copy into a private buffer.
//
// Errors:
//   - ErrBadShape (negative dimension), ErrShapeMismatch (length disagrees).
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New[T Numeric](elements []T, size Size) (*Matrix[T], error) {
	if !size.valid() {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}
	if len(elements) != size.Len() {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%d elements for %dx%d: %w",
			len(elements), size.Height, size.Width, ErrShapeMismatch))
	}
	buf := make([]T, len(elements))
	copy(buf, elements)

	return &Matrix[T]{size: size, data: buf}, nil
}

// wrap adopts buf without copying. Callers guarantee len(buf) == size.Len()
// and that buf is not referenced anywhere else.
func wrap[T Numeric](buf []T, size Size) *Matrix[T] {
	return &Matrix[T]{size: size, data: buf}
}

// Zeros returns a zero-filled matrix of the given size.
// Errors: ErrBadShape on negative dimensions.
func Zeros[T Numeric](size Size) (*Matrix[T], error) {
	if !size.valid() {
		return nil, matrixErrorf(ctxZeros, ErrBadShape)
	}

	return wrap(make([]T, size.Len()), size), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrBadShape when n < 0.
func Identity[T Numeric](n int) (*Matrix[T], error) {
	if n < 0 {
		return nil, matrixErrorf(ctxIdentity, ErrBadShape)
	}
	buf := make([]T, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}

	return wrap(buf, Size{Height: n, Width: n}), nil
}

// Diagonal builds a size-shaped matrix whose main diagonal holds values.
// MAIN DESCRIPTION:
//   - Place values[i] at offset i*Width+i for i < min(Height, Width).
//
// Behavior highlights:
//   - Extra values beyond the diagonal length are ignored (truncated).
//   - Missing values leave the diagonal zero (padded).
//   - Every off-diagonal entry is zero.
//
// Errors:
//   - ErrBadShape on negative dimensions.
//
// Complexity:
//   - Time O(h*w) zeroing + O(min(h,w)) writes.
func Diagonal[T Numeric](values []T, size Size) (*Matrix[T], error) {
	if !size.valid() {
		return nil, matrixErrorf(ctxDiagonal, ErrBadShape)
	}
	buf := make([]T, size.Len())
	n := size.MinDim()
	if len(values) < n {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		buf[i*size.Width+i] = values[i]
	}

	return wrap(buf, size), nil
}
