// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// impl_gradient.go - diagonal ramp.

package builder

import "github.com/katalvlaran/lowrank/matrix"

// BuildGradient returns a ramp from −A at the top-left corner to +A at the
// bottom-right: shape(i,j) = i/(h−1) + j/(w−1) − 1.
// The shape is a sum of a row and a column term, so its rank is at most 2.
//
// Errors: ErrBadSize.
// Complexity: O(h*w).
func BuildGradient(size matrix.Size, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildGradient"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, 0)
	hs, ws := span(size.Height), span(size.Width)

	return render(cfg, rng, size, func(i, j int) float64 {
		return float64(i)/hs + float64(j)/ws - unitOne
	}), nil
}
