// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// sequence_primitives.go - shared helpers for all channel builders.
//
// Purpose:
//   • Deterministic RNG selection with cfg.rng priority.
//   • Size validation and the single sample composition rule:
//     v(i,j) = offset + A·shape(i,j) + trend·(i+j) + σ·N(0,1).

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lowrank/matrix"
)

// Named numeric constants.
const (
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// tau = 2π.
const tau = 2.0 * math.Pi

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// validateSize rejects non-positive dimensions.
func validateSize(method string, size matrix.Size) error {
	if size.Height < 1 || size.Width < 1 {
		return builderErrorf(method, ErrBadSize)
	}

	return nil
}

// render evaluates shape over every pixel in row-major order and applies
// offset, amplitude, trend and noise.
// Complexity: O(h*w).
func render(cfg builderConfig, rng *rand.Rand, size matrix.Size, shape func(i, j int) float64) *matrix.Matrix[float64] {
	buf := make([]float64, size.Len())
	for i := 0; i < size.Height; i++ {
		for j := 0; j < size.Width; j++ {
			v := cfg.offset + cfg.amplitude*shape(i, j) + cfg.trendK*float64(i+j)
			if cfg.noiseSigma > 0 {
				v += cfg.noiseSigma * rng.NormFloat64()
			}
			buf[i*size.Width+j] = v
		}
	}
	m, _ := matrix.New(buf, size) // size validated by every caller

	return m
}

// triangle maps a phase fraction in [0,1) to the [0,1] envelope 1 − |2·frac − 1|.
func triangle(frac float64) float64 {
	return unitOne - math.Abs(triDouble*frac-triCenter)
}

// span returns n-1, or 1 for n == 1, as a float divisor for normalized positions.
func span(n int) float64 {
	if n > 1 {
		return float64(n - 1)
	}

	return unitOne
}
