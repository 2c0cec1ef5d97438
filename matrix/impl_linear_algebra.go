// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic primitives the compression pipeline
// needs: matrix multiplication, logical transpose, and approximation metrics.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches. Operands are never mutated.

package matrix

import "math"

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMaxAbs    = "MaxAbsDiff"
	opFrobenius = "FrobeniusDiff"
)

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Widen both operands to float64.
//   - Stage 3: i→k→j triple loop with row-major strides; skip zero A[i,k].
//   - Stage 4: Quantize every accumulated entry into T (saturating round for integer kinds).
//
// Behavior highlights:
//   - Arithmetic is always double precision, even for uint8 operands.
//   - A mismatch is an explicit ErrDimensionMismatch, never an empty matrix.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix[T]: new matrix C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; accumulation order per cell is k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + r*n + n*c).
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.size.Height, a.size.Width, b.size.Width
	av := widen(a.data)
	bv := widen(b.data)
	acc := make([]float64, aRows*bCols)

	var (
		i, j, k                            int
		x                                  float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			x = av[rowOffsetA+k]
			if x == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				acc[rowOffsetR+j] += x * bv[rowOffsetB+j]
			}
		}
	}

	return wrap(narrow[T](acc), Size{Height: aRows, Width: bCols}), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(h*w).
func Transpose[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	buf, _ := TransposeStorage(m.data, m.size) // length is invariant-checked

	return wrap(buf, m.size.Transpose()), nil
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| computed in float64.
// Zero-area matrices yield 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff[T Numeric](a, b *Matrix[T]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	worst := ZeroSum
	for idx := range a.data {
		d := math.Abs(float64(a.data[idx]) - float64(b.data[idx]))
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// FrobeniusDiff returns ||A - B||_F computed in float64.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func FrobeniusDiff[T Numeric](a, b *Matrix[T]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	sum := ZeroSum
	for idx := range a.data {
		d := float64(a.data[idx]) - float64(b.data[idx])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}
