// SPDX-License-Identifier: MIT

// Package compress - Compressor, Plan and the end-to-end pipeline.
//
// Complexity quicksheet (h×w input, m = min(h,w)):
//   - Factorize: O(h·w·m) for the SVD plus O(m log m) ordering.
//   - Reduce:    O(h²·w + h·w²) for U × Σ' × Vᵀ plus O(h·w) quantization.
package compress

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/svd"
)

// ---------- error context tags ----------

const (
	ctxCompress  = "Compress"
	ctxFactorize = "Factorize"
	ctxReduce    = "Reduce"
)

func compressErrorf(tag string, err error) error {
	return fmt.Errorf("compress.%s: %w", tag, err)
}

// Compressor runs the rank-reduction pipeline with a fixed configuration.
// A Compressor is immutable after New and safe for concurrent use, provided
// its Decomposer and Observer are.
type Compressor struct {
	opts Options
}

// New returns a Compressor configured by opts.
// Defaults: LAPACK decomposer, clamped rank factor, no observer.
func New(opts ...Option) *Compressor {
	return &Compressor{opts: gatherOptions(opts...)}
}

// Strict reports whether out-of-range rank factors are rejected.
func (c *Compressor) Strict() bool { return c.opts.strict }

// checkRankFactor applies the rank-factor policy.
func (c *Compressor) checkRankFactor(f float64) error {
	if math.IsNaN(f) {
		return fmt.Errorf("%v: %w", f, ErrInvalidRankFactor)
	}
	if c.opts.strict && (f < 0 || f > 1) {
		return fmt.Errorf("%v outside [0, 1]: %w", f, ErrInvalidRankFactor)
	}

	return nil
}

func (c *Compressor) emit(e Event) {
	if c.opts.observer != nil {
		c.opts.observer(e)
	}
}

// Result is the outcome of one compression.
type Result[T matrix.Numeric] struct {
	// Matrix is the reconstruction, quantized into the input's element type.
	Matrix *matrix.Matrix[T]
	// EffectiveRank is the number of strictly positive singular values of the input.
	EffectiveRank int
	// Rank is the number of singular values kept.
	Rank int
	// Kept holds the retained singular values, descending.
	Kept []float64
	// Dropped holds the discarded positive singular values, descending.
	Dropped []float64
}

// Plan is a factorized matrix ready to be reduced at any rank factor.
// The SVD is computed once in Factorize; each Reduce only truncates and
// reconstructs. A Plan is read-only and safe for concurrent Reduce calls.
type Plan[T matrix.Numeric] struct {
	c        *Compressor
	factors  *svd.Factors
	spectrum []float64
}

// Factorize decomposes a and orders its singular values.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (float inputs only),
//   - svd.ErrDecompositionFailed, or whatever a custom Decomposer returns.
func Factorize[T matrix.Numeric](c *Compressor, a *matrix.Matrix[T]) (*Plan[T], error) {
	if c == nil {
		c = New()
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, compressErrorf(ctxFactorize, err)
	}
	c.emit(Event{Stage: StageDecompose, Size: a.Size()})

	f, err := svd.Decompose(a, c.opts.decomposer)
	if err != nil {
		return nil, compressErrorf(ctxFactorize, err)
	}

	return &Plan[T]{
		c:        c,
		factors:  f,
		spectrum: Spectrum(SingularValues(f.Sigma)),
	}, nil
}

// Factors returns the underlying decomposition.
func (p *Plan[T]) Factors() *svd.Factors { return p.factors }

// Size returns the shape of the factorized matrix.
func (p *Plan[T]) Size() matrix.Size { return p.factors.Size() }

// EffectiveRank returns the number of strictly positive singular values.
func (p *Plan[T]) EffectiveRank() int { return len(p.spectrum) }

// Spectrum returns a copy of the descending positive singular values.
func (p *Plan[T]) Spectrum() []float64 {
	out := make([]float64, len(p.spectrum))
	copy(out, p.spectrum)

	return out
}

// Reduce keeps round(EffectiveRank × rankFactor) singular values and
// rebuilds the matrix.
//
// Implementation:
//   - Stage 1: validate rankFactor against the Compressor's policy.
//   - Stage 2: NewRank, then Truncate into Σ' shaped like Σ.
//   - Stage 3: U × Σ' × Vᵀ in float64.
//   - Stage 4: saturating quantization into T.
//
// Errors:
//   - ErrInvalidRankFactor.
func (p *Plan[T]) Reduce(rankFactor float64) (*Result[T], error) {
	if err := p.c.checkRankFactor(rankFactor); err != nil {
		return nil, compressErrorf(ctxReduce, err)
	}
	size := p.Size()
	eff := len(p.spectrum)
	rank, err := NewRank(eff, rankFactor)
	if err != nil {
		return nil, compressErrorf(ctxReduce, err)
	}
	p.c.emit(Event{Stage: StageTruncate, Size: size, EffectiveRank: eff, Rank: rank})

	sigma, err := Truncate(p.spectrum, rank, size)
	if err != nil {
		return nil, compressErrorf(ctxReduce, err)
	}

	p.c.emit(Event{Stage: StageReconstruct, Size: size, EffectiveRank: eff, Rank: rank})
	back, err := svd.Reconstruct(p.factors, sigma)
	if err != nil {
		return nil, compressErrorf(ctxReduce, err)
	}

	res := &Result[T]{
		Matrix:        matrix.Quantize[T](back),
		EffectiveRank: eff,
		Rank:          rank,
		Kept:          append([]float64{}, p.spectrum[:rank]...),
		Dropped:       append([]float64{}, p.spectrum[rank:]...),
	}
	p.c.emit(Event{Stage: StageDone, Size: size, EffectiveRank: eff, Rank: rank})

	return res, nil
}

// Compress factorizes a and reduces it at rankFactor in one call.
// A nil Compressor behaves like New().
//
// Errors: see Factorize and Plan.Reduce. The rank factor is checked before
// the decomposition runs.
func Compress[T matrix.Numeric](c *Compressor, a *matrix.Matrix[T], rankFactor float64) (*Result[T], error) {
	if c == nil {
		c = New()
	}
	if err := c.checkRankFactor(rankFactor); err != nil {
		return nil, compressErrorf(ctxCompress, err)
	}
	p, err := Factorize(c, a)
	if err != nil {
		return nil, err
	}

	return p.Reduce(rankFactor)
}
