// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Builders attach context with %w via builderErrorf.
//   • Builders MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive image dimension.
var ErrBadSize = errors.New("builder: size must be positive")

// ErrBadParameter indicates a builder argument outside its domain
// (e.g. rank < 1, cell < 1).
var ErrBadParameter = errors.New("builder: parameter out of range")

// builderErrorf wraps err with the builder name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("builder.%s: %w", method, err)
}
