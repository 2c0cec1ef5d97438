// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// impl_checker.go - ±1 checkerboard.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
)

// BuildChecker returns a checkerboard of cell×cell squares alternating
// +A and −A. Since (−1)^(a+b) = (−1)^a·(−1)^b the shape has rank 1.
//
// Errors: ErrBadSize, ErrBadParameter (cell < 1).
func BuildChecker(size matrix.Size, cell int, opts ...BuilderOption) (*matrix.Matrix[float64], error) {
	const method = "BuildChecker"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	if cell < 1 {
		return nil, builderErrorf(method, fmt.Errorf("cell %d: %w", cell, ErrBadParameter))
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, 0)

	return render(cfg, rng, size, func(i, j int) float64 {
		if (i/cell+j/cell)%2 == 0 {
			return unitOne
		}
		return -unitOne
	}), nil
}
