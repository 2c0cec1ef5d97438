// Package compress implements rank-reduction compression of a matrix.
//
// How it works:
//
//  1. Decompose:   (U, Σ, Vᵀ) = svd(A).
//  2. Extract:     read Σ's diagonal in matrix order.
//  3. Order:       sort ascending, drop the leading run of exact zeros,
//     reverse. The result is a descending sequence of strictly positive
//     singular values; its length is the effective rank.
//  4. New rank:    round(effectiveRank × rankFactor), clamped into [0, effectiveRank].
//  5. Truncate:    keep the newRank largest values on the diagonal of a new Σ'
//     with the same shape as Σ.
//  6. Reconstruct: A' = U × Σ' × Vᵀ in float64, then saturating-quantize into
//     A's element type.
//
// Key features:
//   - Compress runs the whole pipeline once.
//   - Factorize + Plan.Reduce factorize once and reduce at many rank factors,
//     e.g. for an interactive slider.
//   - WithObserver receives progress events instead of any global UI state.
//
// rankFactor policy: values are clamped into [0, 1] by default; NaN is always
// rejected; WithStrictRankFactor rejects anything outside [0, 1].
//
// Usage:
//
//	c := compress.New(compress.WithObserver(func(e compress.Event) { log.Println(e) }))
//	res, err := compress.Compress(c, channel, 0.2)
package compress
