// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// impl_lowrank.go - random matrices of prescribed rank, and pure noise.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

// BuildLowRank returns Σₖ uₖ·vₖᵀ / √r for r = min(rank, h, w) independent
// Gaussian vector pairs drawn from the seeded RNG.
// With the default offset (0), trend (0) and noise (0) the result has rank
// exactly r with probability 1.
//
// Implementation:
//   - Stage 1: draw all uₖ (h values each), then all vₖ (w values each).
//   - Stage 2: render the normalized sum of outer products.
//
// Errors: ErrBadSize, ErrBadParameter (rank < 1).
// Complexity: O(r·h·w).
func BuildLowRank(size matrix.Size, rank int, seed int64, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildLowRank"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	if rank < 1 {
		return nil, builderErrorf(method, fmt.Errorf("rank %d: %w", rank, ErrBadParameter))
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	r := min(rank, size.MinDim())
	u := make([][]float64, r)
	v := make([][]float64, r)
	for k := 0; k < r; k++ {
		u[k] = make([]float64, size.Height)
		for i := range u[k] {
			u[k][i] = rng.NormFloat64()
		}
	}
	for k := 0; k < r; k++ {
		v[k] = make([]float64, size.Width)
		for j := range v[k] {
			v[k][j] = rng.NormFloat64()
		}
	}
	norm := unitOne / math.Sqrt(float64(r))

	return render(cfg, rng, size, func(i, j int) float64 {
		s := unitZero
		for k := 0; k < r; k++ {
			s += u[k][i] * v[k][j]
		}
		return s * norm
	}), nil
}

// BuildNoise returns i.i.d. standard Gaussian samples scaled by A: a full-rank
// matrix whose spectrum decays slowly, the hardest case for compression.
//
// Errors: ErrBadSize.
func BuildNoise(size matrix.Size, seed int64, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildNoise"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	return render(cfg, rng, size, func(_, _ int) float64 { return rng.NormFloat64() }), nil
}
