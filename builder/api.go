// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// api.go - image-level composition.

package builder

import (
	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/pixel"
)

// Channel defaults used by BuildRGBA: shapes span roughly [28, 228].
const (
	imageAmplitude = 100.0
	imageOffset    = 128.0
)

// BuildRGBA composes an opaque RGBA test image:
//   - R: BuildChirp(seed),
//   - G: BuildPulse(seed+1),
//   - B: BuildGradient.
//
// Each channel starts from amplitude 100 and offset 128; opts are applied
// after those defaults and may override them. Channels are quantized with
// the saturating uint8 rule.
//
// Errors: ErrBadSize.
func BuildRGBA(size matrix.Size, seed int64, opts ...BuilderOption) (*pixel.Buffer, error) {
	const method = "BuildRGBA"
	if err := validateSize(method, size); err != nil {
		return nil, err
	}
	chOpts := append([]BuilderOption{WithAmplitude(imageAmplitude), WithOffset(imageOffset)}, opts...)

	r, err := BuildChirp(size, seed, chOpts...)
	if err != nil {
		return nil, builderErrorf(method, err)
	}
	g, err := BuildPulse(size, seed+1, chOpts...)
	if err != nil {
		return nil, builderErrorf(method, err)
	}
	b, err := BuildGradient(size, chOpts...)
	if err != nil {
		return nil, builderErrorf(method, err)
	}

	buf, err := pixel.FromChannelMatrices(
		matrix.Quantize[uint8](r),
		matrix.Quantize[uint8](g),
		matrix.Quantize[uint8](b),
	)
	if err != nil {
		return nil, builderErrorf(method, err)
	}

	return buf, nil
}
