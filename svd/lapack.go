// SPDX-License-Identifier: MIT

// Package svd - LAPACK-backed decomposition.
//
// Purpose:
//   - Hand a column-major copy of A to gonum's Gesvd, requesting ALL singular
//     vectors (jobU = jobVT = lapack.SVDAll), never a thin decomposition.
//   - Follow the two-phase protocol: query the optimal workspace (lwork = -1),
//     allocate it, then factorize.
//   - Convert the column-major results back to row-major matrices.
//
// Layout note:
//   - gonum's lapack64 works on row-major blas64.General values. A column-major
//     h×w buffer read as row-major is the w×h matrix Aᵀ = V·Σ·Uᵀ, so Gesvd
//     returns V and Uᵀ, whose row-major buffers are exactly the column-major
//     buffers of Vᵀ and U.

package svd

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Operation name constants for unified error wrapping.
const (
	opDecompose   = "Decompose"
	opReconstruct = "Reconstruct"
	opMultiply    = "Multiply"
)

// svdErrorf wraps err with an operation tag, preserving the sentinel via %w.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("svd.%s: %w", tag, err)
}

// LAPACK is the default Decomposer. The zero value is ready to use and holds
// no state, so one value may serve concurrent requests.
type LAPACK struct{}

var _ Decomposer = LAPACK{}

// Decompose computes the full SVD of a.
// Implementation:
//   - Stage 1: reject nil and non-finite input.
//   - Stage 2: short-circuit zero-area shapes (identity U/VT, empty Σ).
//   - Stage 3: column-major copy → Gesvd workspace query → Gesvd.
//   - Stage 4: column-major U/VT → row-major; singular values → diagonal Σ.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (input), ErrDecompositionFailed.
//
// Complexity:
//   - Time O(h·w·min(h,w) + h³ + w³), Space O(h² + w² + h·w).
func (LAPACK) Decompose(a *matrix.Matrix[float64]) (*Factors, error) {
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	size := a.Size()
	h, w := size.Height, size.Width
	if h == 0 || w == 0 {
		return degenerate(size)
	}

	at := blas64.General{Rows: w, Cols: h, Stride: h, Data: a.ColMajor()}
	v := blas64.General{Rows: w, Cols: w, Stride: w, Data: make([]float64, w*w)}
	ut := blas64.General{Rows: h, Cols: h, Stride: h, Data: make([]float64, h*h)}
	s := make([]float64, size.MinDim())

	// Phase 1: workspace query.
	work := []float64{0}
	lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, at, v, ut, s, work, -1)
	lwork := int(work[0])
	if lwork < 1 {
		lwork = 1
	}

	// Phase 2: factorization.
	work = make([]float64, lwork)
	if ok := lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, at, v, ut, s, work, lwork); !ok {
		return nil, svdErrorf(opDecompose, fmt.Errorf("%dx%d: %w", h, w, ErrDecompositionFailed))
	}

	U, err := matrix.FromColMajor(ut.Data, matrix.Size{Height: h, Width: h})
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	VT, err := matrix.FromColMajor(v.Data, matrix.Size{Height: w, Width: w})
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	sigma, err := matrix.Diagonal(s, size)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}

	return &Factors{U: U, Sigma: sigma, VT: VT}, nil
}

// degenerate factors a zero-area matrix without calling LAPACK:
// U = I_h, Σ = 0_{h×w}, VT = I_w.
func degenerate(size matrix.Size) (*Factors, error) {
	U, err := matrix.Identity[float64](size.Height)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	VT, err := matrix.Identity[float64](size.Width)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}
	sigma, err := matrix.Zeros[float64](size)
	if err != nil {
		return nil, svdErrorf(opDecompose, err)
	}

	return &Factors{U: U, Sigma: sigma, VT: VT}, nil
}
