// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// impl_chirp.go - deterministic horizontal linear chirp.
//
// Purpose:
//   • Produce vertical bands whose spatial frequency sweeps from f0 to f1
//     left to right. Every row is identical, so the shape has rank 1.
//
// Model (per column j, w columns):
//   • fj    = f0 + (f1 − f0) · j/(w−1)   (cycles/pixel)
//   • θⱼ₊₁ = θⱼ + τ · fj                (phase accumulator, τ = 2π)
//   • shape = sin(θⱼ)
//
// f0 and f1 scale with WithFrequency: f0 = 0.16·f, f1 = 2·f.

package builder

import (
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

const (
	chirpStartRatio = 0.16 // f0 = 0.02 at the default frequency
	chirpEndRatio   = 2.0  // f1 = 0.25 at the default frequency
)

// BuildChirp returns a size-shaped horizontal chirp.
//
// Errors: ErrBadSize.
// Complexity: O(h*w) time, O(w) extra memory.
func BuildChirp(size matrix.Size, seed int64, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildChirp"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	f0 := cfg.frequency * chirpStartRatio
	f1 := cfg.frequency * chirpEndRatio
	ws := span(size.Width)

	cols := make([]float64, size.Width)
	theta := unitZero
	for j := range cols {
		fj := f0 + (f1-f0)*float64(j)/ws
		theta += tau * fj
		cols[j] = math.Sin(theta)
	}

	return render(cfg, rng, size, func(_, j int) float64 { return cols[j] }), nil
}
