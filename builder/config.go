// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng         = nil   (builders fall back to their seed argument)
//   • amplitude   = 1.0
//   • offset      = 0.0
//   • frequency   = 0.125 cycles/pixel
//   • trendK      = 0.0
//   • noiseSigma  = 0.0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by builders.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng        *rand.Rand // shared stream; nil means "use the seed argument"
	amplitude  float64    // > 0
	offset     float64    // any real; 128 centers an 8-bit channel
	frequency  float64    // > 0, cycles/pixel
	trendK     float64    // any real, added per (i+j)
	noiseSigma float64    // >= 0
}

const (
	defaultAmplitude  = 1.0
	defaultOffset     = 0.0
	defaultFrequency  = 0.125
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		offset:     defaultOffset,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
