// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every operation.
// This file intentionally contains ONLY the shape type, the element-type
// constraint and the per-kind numeric limits used by saturating conversion.
package matrix

import (
	"math"
	"reflect"
)

// Size is the shape of a matrix: Height rows by Width columns.
// Both fields must be >= 0; zero-area sizes are legal.
type Size struct {
	Height int // number of rows
	Width  int // number of columns
}

// Transpose returns the size with Height and Width swapped.
// Complexity: O(1).
func (s Size) Transpose() Size { return Size{Height: s.Width, Width: s.Height} }

// Len returns the number of elements a matrix of this size holds.
// Complexity: O(1).
func (s Size) Len() int { return s.Height * s.Width }

// MinDim returns min(Height, Width), the length of the main diagonal.
func (s Size) MinDim() int {
	if s.Height < s.Width {
		return s.Height
	}

	return s.Width
}

// valid reports whether both dimensions are non-negative.
func (s Size) valid() bool { return s.Height >= 0 && s.Width >= 0 }

// Numeric is the element-type capability of Matrix.
// Every kind converts to float64 losslessly (up to float precision) and back
// through the saturating rule implemented by limits.saturate.
type Numeric interface {
	~uint8 | ~uint16 | ~int8 | ~int16 | ~int32 | ~float32 | ~float64
}

// limits describes the representable range of a Numeric kind.
//   - integer kinds round half away from zero, then clamp to [min, max].
//   - float32 clamps to ±MaxFloat32 instead of overflowing to ±Inf.
//   - float64 is the identity.
type limits struct {
	min, max float64
	integer  bool
}

// limitsOf resolves the limits of T by its underlying kind, so named element
// types (type Gray uint8) saturate exactly like their base type.
// Complexity: O(1); resolve once per operation, not per element.
func limitsOf[T Numeric]() limits {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint8:
		return limits{min: 0, max: math.MaxUint8, integer: true}
	case reflect.Uint16:
		return limits{min: 0, max: math.MaxUint16, integer: true}
	case reflect.Int8:
		return limits{min: math.MinInt8, max: math.MaxInt8, integer: true}
	case reflect.Int16:
		return limits{min: math.MinInt16, max: math.MaxInt16, integer: true}
	case reflect.Int32:
		return limits{min: math.MinInt32, max: math.MaxInt32, integer: true}
	case reflect.Float32:
		return limits{min: -math.MaxFloat32, max: math.MaxFloat32}
	default:
		return limits{min: math.Inf(-1), max: math.Inf(1)}
	}
}

// saturate maps v into the representable range.
// NaN becomes 0 for integer kinds and stays NaN for float kinds.
func (l limits) saturate(v float64) float64 {
	if l.integer {
		if math.IsNaN(v) {
			return 0
		}
		v = math.Round(v) // half away from zero
	}
	if v < l.min {
		return l.min
	}
	if v > l.max {
		return l.max
	}

	return v
}

// Saturate converts v to T with the saturating round of T.
// Integer kinds: round half away from zero, clamp to [min,max], NaN -> 0.
// It never errors and never wraps.
func Saturate[T Numeric](v float64) T {
	return T(limitsOf[T]().saturate(v))
}
