// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
)

// mustNew ALLOCATES a matrix from row-major values or fails the test.
func mustNew[T matrix.Numeric](tb testing.TB, h, w int, vals ...T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(vals, matrix.Size{Height: h, Width: w})
	if err != nil {
		tb.Fatalf("matrix.New(%dx%d): %v", h, w, err)
	}

	return m
}

// randFloat builds an h×w float64 matrix with entries in [-1, 1) from a fixed seed.
func randFloat(tb testing.TB, h, w int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, h*w)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustNew(tb, h, w, vals...)
}
