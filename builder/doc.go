// Package builder synthesizes deterministic test images for the lowrank
// pipeline: channel matrices with a known structure, and therefore a known
// singular-value spectrum.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, amplitude, offset, frequency, trend, noise.
//   - Channel builders (all return *matrix.Matrix[float64]):
//     – BuildGradient:  diagonal ramp, rank ≤ 2 before offset.
//     – BuildChirp:     horizontal linear frequency sweep, rank 1 before offset.
//     – BuildPulse:     rectangular stripes × triangular envelope, rank 1.
//     – BuildChecker:   ±1 checkerboard, rank 1.
//     – BuildLowRank:   sum of r random outer products, rank exactly r.
//     – BuildNoise:     Gaussian noise, full rank.
//   - Image builder:
//     – BuildRGBA:      chirp/pulse/gradient composed into a *pixel.Buffer.
//
// Every sample is offset + amplitude·shape(i, j) + trend·(i + j) + noise.
// Offset and trend each add at most one to the rank; noise makes the matrix
// full rank.
//
// Guarantees:
//
//   - Determinism: identical (size, seed, options) produce identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Builders never panic; invalid sizes return ErrBadSize.
//
// Quick start:
//
//	m, _ := builder.BuildLowRank(matrix.Size{Height: 64, Width: 48}, 5, 42)
//	p, _ := compress.Factorize(nil, m) // five significant singular values
package builder
