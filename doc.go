// Package lowrank compresses images by rank reduction: each color channel is
// factored with a full Singular Value Decomposition, the smallest singular
// values are discarded, and the channel is rebuilt from what remains.
//
// Layout:
//
//	matrix/      generic dense row-major Matrix[T], saturating quantization, column-major interop
//	svd/         full SVD (gonum LAPACK) behind the Decomposer interface; reconstruction
//	compress/    spectrum ordering, rank selection, truncation; Compress and Factorize/Reduce
//	pixel/       Gray/RGBA buffers ⇄ channel matrices; concurrent per-channel compression
//	spectrum/    singular-value charts (gonum/plot)
//	builder/     deterministic synthetic channels and test images
//	config/      LOWRANK_* environment and .env settings
//	cmd/lowrank  command-line front end
//
// Quick example:
//
//	c := compress.New()
//	res, err := compress.Compress(c, channel, 0.2) // keep 20% of the effective rank
//
// A rank factor of 1 reproduces the input up to rounding; 0 yields an
// all-zero channel.
//
//	go install github.com/katalvlaran/lowrank/cmd/lowrank@latest
package lowrank
