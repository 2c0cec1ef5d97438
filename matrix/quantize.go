// SPDX-License-Identifier: MIT

// Package matrix - element-type conversion.
//
// Purpose:
//   - Widen any Numeric matrix to float64 for numerical work.
//   - Re-quantize float64 results into a target kind with the saturating round:
//     round half away from zero, clamp to the kind's range, never wrap, never error.
//
// This saturating contract decides compressed pixel values at the extremes
// (negative overshoot → 0, overshoot past 255 → 255 for uint8 channels).

package matrix

// widen copies src into a fresh float64 slice.
func widen[T Numeric](src []T) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}

	return out
}

// narrow converts src into a fresh []T through the saturating rule of T.
func narrow[T Numeric](src []float64) []T {
	lim := limitsOf[T]()
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = T(lim.saturate(v))
	}

	return out
}

// ToFloat returns m widened to float64 (same shape, fresh storage).
// Complexity: O(h*w).
func ToFloat[T Numeric](m *Matrix[T]) *Matrix[float64] {
	return wrap(widen(m.data), m.size)
}

// Quantize converts m into element type U with the saturating round of U.
// MAIN DESCRIPTION:
//   - The toInteger step of the pipeline: float64 reconstruction → uint8 channel.
//
// Implementation:
//   - Stage 1: resolve limits of U once.
//   - Stage 2: per element, widen to float64, round (integer kinds), clamp.
//
// Behavior highlights:
//   - Ties round away from zero: 0.5 → 1, -0.5 → -1 (then clamped).
//   - Out-of-range values saturate to min/max; NaN becomes 0 for integer kinds.
//   - Never errors.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func Quantize[U Numeric, T Numeric](m *Matrix[T]) *Matrix[U] {
	lim := limitsOf[U]()
	out := make([]U, len(m.data))
	for i, v := range m.data {
		out[i] = U(lim.saturate(float64(v)))
	}

	return wrap(out, m.size)
}
