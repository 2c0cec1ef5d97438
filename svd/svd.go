// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
)

// Decompose factors a matrix of any Numeric element type.
// The input is widened to float64 first; a nil d selects LAPACK{}.
// The factors returned by d are shape-checked, so a misbehaving custom
// Decomposer surfaces matrix.ErrDimensionMismatch instead of corrupting
// the reconstruction.
func Decompose[T matrix.Numeric](a *matrix.Matrix[T], d Decomposer) (*Factors, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	if d == nil {
		d = LAPACK{}
	}
	f, err := d.Decompose(matrix.ToFloat(a))
	if err != nil {
		return nil, err
	}
	if err = checkFactors(f, a.Size()); err != nil {
		return nil, svdErrorf(opDecompose, err)
	}

	return f, nil
}

// checkFactors verifies U: h×h, Σ: h×w, VT: w×w.
func checkFactors(f *Factors, size matrix.Size) error {
	if f == nil || f.U == nil || f.Sigma == nil || f.VT == nil {
		return matrix.ErrNilMatrix
	}
	wantU := matrix.Size{Height: size.Height, Width: size.Height}
	wantVT := matrix.Size{Height: size.Width, Width: size.Width}
	switch {
	case f.U.Size() != wantU:
		return fmt.Errorf("U is %dx%d: %w", f.U.Rows(), f.U.Cols(), matrix.ErrDimensionMismatch)
	case f.Sigma.Size() != size:
		return fmt.Errorf("Σ is %dx%d: %w", f.Sigma.Rows(), f.Sigma.Cols(), matrix.ErrDimensionMismatch)
	case f.VT.Size() != wantVT:
		return fmt.Errorf("VT is %dx%d: %w", f.VT.Rows(), f.VT.Cols(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// Multiply is the double-precision product used for reconstruction.
// It delegates to matrix.Mul; the result is re-quantized later by the caller.
func Multiply(a, b *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	c, err := matrix.Mul(a, b)
	if err != nil {
		return nil, svdErrorf(opMultiply, err)
	}

	return c, nil
}

// Reconstruct computes U × sigma × VT for a (possibly truncated) sigma
// with the same shape as f.Sigma.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(h²·w + h·w²).
func Reconstruct(f *Factors, sigma *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if f == nil {
		return nil, svdErrorf(opReconstruct, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(f.Sigma, sigma); err != nil {
		return nil, svdErrorf(opReconstruct, err)
	}
	us, err := Multiply(f.U, sigma)
	if err != nil {
		return nil, svdErrorf(opReconstruct, err)
	}
	a, err := Multiply(us, f.VT)
	if err != nil {
		return nil, svdErrorf(opReconstruct, err)
	}

	return a, nil
}
