// SPDX-License-Identifier: MIT
// Package: lowrank/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builder by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared across builder calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the shape amplitude A (>0). Panics if A <= 0.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithOffset sets the constant level added to every sample.
// Use 128 to center a shape in an 8-bit channel.
func WithOffset(level float64) BuilderOption {
	return func(c *builderConfig) {
		c.offset = level
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/pixel) for
// chirps and pulses. Panics if f0 <= 0.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithTrend sets the linear trend k added as k·(i+j).
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise sets the Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}
