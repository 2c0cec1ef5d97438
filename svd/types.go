// SPDX-License-Identifier: MIT

// Package svd: factor container and the decomposition capability.
package svd

import (
	"errors"

	"github.com/katalvlaran/lowrank/matrix"
)

var (
	// ErrDecompositionFailed indicates that the SVD routine did not converge.
	// It is terminal for the current request only.
	ErrDecompositionFailed = errors.New("svd: decomposition failed to converge")
)

// Factors is the ordered triple (U, Σ, Vᵀ) of a full SVD.
//
// For an h×w input:
//   - U     is h×h,
//   - Sigma is h×w, non-zero only on the main diagonal, values non-negative
//     and sorted descending,
//   - VT    is w×w.
//
// Invariant (up to floating-point error): U × Sigma × VT ≈ A.
type Factors struct {
	U     *matrix.Matrix[float64]
	Sigma *matrix.Matrix[float64]
	VT    *matrix.Matrix[float64]
}

// Size returns the shape of the factorized matrix (the shape of Sigma).
func (f *Factors) Size() matrix.Size { return f.Sigma.Size() }

// Values returns the min(h,w) singular values, in descending order.
func (f *Factors) Values() []float64 { return f.Sigma.DiagonalValues() }

// Decomposer computes the full SVD of a float64 matrix.
// Implementations must return all singular vectors (not a thin/economy SVD)
// and must report non-convergence as ErrDecompositionFailed.
type Decomposer interface {
	Decompose(a *matrix.Matrix[float64]) (*Factors, error)
}

// DecomposerFunc adapts an ordinary function to the Decomposer interface.
type DecomposerFunc func(a *matrix.Matrix[float64]) (*Factors, error)

// Decompose calls f(a).
func (f DecomposerFunc) Decompose(a *matrix.Matrix[float64]) (*Factors, error) { return f(a) }
