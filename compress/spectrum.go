// SPDX-License-Identifier: MIT

// Package compress - singular-value spectrum helpers.
//
// Purpose:
//   - Turn Σ into the ordered list of significant singular values.
//   - Compute the retained rank and build the truncated Σ'.
//
// All helpers are pure: inputs are never mutated.
package compress

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lowrank/matrix"
)

// SingularValues returns Σ's main diagonal in matrix order.
// A nil sigma yields nil.
func SingularValues(sigma *matrix.Matrix[float64]) []float64 {
	if sigma == nil {
		return nil
	}

	return sigma.DiagonalValues()
}

// TrimZeros drops the leading run of exact zeros from an ascending sequence
// and returns the remaining suffix, order preserved.
// An all-zero (or empty) input yields an empty, non-nil slice.
// Complexity: O(n).
func TrimZeros(ascending []float64) []float64 {
	i := 0
	for i < len(ascending) && ascending[i] == 0 {
		i++
	}
	out := make([]float64, len(ascending)-i)
	copy(out, ascending[i:])

	return out
}

// Spectrum orders singular values by significance.
//
// Implementation:
//   - Stage 1: copy and sort ascending.
//   - Stage 2: TrimZeros.
//   - Stage 3: reverse in place.
//
// The result is strictly positive and descending; its length is the
// effective rank of the factorized matrix.
// Complexity: O(n log n).
func Spectrum(values []float64) []float64 {
	asc := make([]float64, len(values))
	copy(asc, values)
	sort.Float64s(asc)

	desc := TrimZeros(asc)
	for l, r := 0, len(desc)-1; l < r; l, r = l+1, r-1 {
		desc[l], desc[r] = desc[r], desc[l]
	}

	return desc
}

// NewRank returns round(effectiveRank × rankFactor) with rankFactor clamped
// into [0, 1] and the result clamped into [0, effectiveRank].
// Rounding is half away from zero. A negative effectiveRank counts as 0.
//
// Errors:
//   - ErrInvalidRankFactor if rankFactor is NaN.
func NewRank(effectiveRank int, rankFactor float64) (int, error) {
	if math.IsNaN(rankFactor) {
		return 0, fmt.Errorf("NewRank: %w", ErrInvalidRankFactor)
	}
	if effectiveRank < 0 {
		effectiveRank = 0
	}
	f := math.Min(math.Max(rankFactor, 0), 1)
	r := int(math.Round(float64(effectiveRank) * f))
	switch {
	case r < 0:
		r = 0
	case r > effectiveRank:
		r = effectiveRank
	}

	return r, nil
}

// Truncate builds Σ' of the given size holding the first newRank entries of
// a descending spectrum on its main diagonal and zero elsewhere.
// newRank is clamped into [0, len(spectrum)].
//
// Errors:
//   - matrix.ErrBadShape on a negative dimension.
//
// Complexity: O(h*w).
func Truncate(spectrum []float64, newRank int, size matrix.Size) (*matrix.Matrix[float64], error) {
	if newRank < 0 {
		newRank = 0
	}
	if newRank > len(spectrum) {
		newRank = len(spectrum)
	}
	sigma, err := matrix.Diagonal(spectrum[:newRank], size)
	if err != nil {
		return nil, fmt.Errorf("Truncate: %w", err)
	}

	return sigma, nil
}
