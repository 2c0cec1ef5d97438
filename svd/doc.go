// Package svd computes the full Singular Value Decomposition of a matrix and
// provides the multiplication primitive used to rebuild it.
//
// What is the SVD?
//
//	Every h×w matrix A factors as A = U · Σ · Vᵀ where
//	  • U  (h×h) and Vᵀ (w×w) are orthogonal,
//	  • Σ  (h×w) is zero except on its main diagonal, which holds the
//	    singular values in descending order, all non-negative.
//	The size of a singular value tells how much of A its rank-one
//	component carries; dropping the small ones yields the best low-rank
//	approximation of A, which is how lowrank compresses image channels.
//
// Key features:
//   - Decomposer, a single capability behind which the numerical routine lives.
//   - LAPACK, the default Decomposer, backed by gonum's lapack64.Gesvd with the
//     workspace-query protocol (first call sizes the workspace, second computes).
//   - Non-convergence is an ordinary error (ErrDecompositionFailed), so a
//     caller aborts one request rather than the process.
//
// Usage:
//
//	f, err := svd.Decompose(channel, nil) // nil → svd.LAPACK{}
//	if err != nil { ... }
//	approx, err := svd.Reconstruct(f, truncatedSigma)
package svd
