// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// impl_pulse.go - rectangular stripes under a triangular envelope.
//
// Shape:
//   • Columns: rectangular wave in {0, 1}, on while frac(j·f0) < duty.
//   • Rows:    triangular envelope 1 − |2·frac(i·f0/2) − 1| in [0, 1].
//   • shape(i,j) = rect(j) · tri(i), an outer product of rank 1.

package builder

import (
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

const (
	pulseDuty          = 0.5 // rectangular duty cycle in [0,1]
	pulseEnvelopeRatio = 0.5 // envelope frequency relative to f0
)

// BuildPulse returns a size-shaped pulse pattern.
//
// Errors: ErrBadSize.
// Complexity: O(h*w) time, O(h+w) extra memory.
func BuildPulse(size matrix.Size, seed int64, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildPulse"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	rect := make([]float64, size.Width)
	for j := range rect {
		if math.Mod(float64(j)*cfg.frequency, unitOne) < pulseDuty {
			rect[j] = unitOne
		}
	}
	env := make([]float64, size.Height)
	for i := range env {
		env[i] = triangle(math.Mod(float64(i)*cfg.frequency*pulseEnvelopeRatio, unitOne))
	}

	return render(cfg, rng, size, func(i, j int) float64 { return env[i] * rect[j] }), nil
}
