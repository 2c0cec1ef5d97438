// SPDX-License-Identifier: MIT

// Package compress: functional configuration of a Compressor.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state; progress reporting is an explicit Observer.
//   - No dead switches: each option impacts behavior and is covered by tests.
package compress

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/svd"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRankFactor is the fraction of the effective rank a caller
	// typically keeps; it retains most visible structure of a photograph.
	DefaultRankFactor = 0.2

	// DefaultStrictRankFactor clamps out-of-range factors instead of rejecting them.
	DefaultStrictRankFactor = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilDecomposer = "compress: WithDecomposer: decomposer must be non-nil"
	panicNilObserver   = "compress: WithObserver: observer must be non-nil"
)

// Stage names a step of the compression pipeline.
type Stage int

const (
	// StageDecompose is reported before the SVD starts.
	StageDecompose Stage = iota
	// StageTruncate is reported once the new rank is known.
	StageTruncate
	// StageReconstruct is reported before U × Σ' × Vᵀ is computed.
	StageReconstruct
	// StageDone is reported after the result has been quantized.
	StageDone
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageDecompose:
		return "decompose"
	case StageTruncate:
		return "truncate"
	case StageReconstruct:
		return "reconstruct"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Event is a progress notification delivered to an Observer.
// Rank and EffectiveRank are zero until StageTruncate.
type Event struct {
	Stage         Stage
	Size          matrix.Size
	EffectiveRank int
	Rank          int
}

// String renders the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s %dx%d rank=%d/%d", e.Stage, e.Size.Height, e.Size.Width, e.Rank, e.EffectiveRank)
}

// Observer receives progress events synchronously, on the goroutine running
// the compression. It must not block for long.
type Observer func(Event)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	decomposer svd.Decomposer // svd.LAPACK{} by default
	strict     bool           // DefaultStrictRankFactor
	observer   Observer       // nil: no progress reporting
}

// WithDecomposer selects the SVD engine. Panics on nil.
func WithDecomposer(d svd.Decomposer) Option {
	if d == nil {
		panic(panicNilDecomposer)
	}

	return func(o *Options) { o.decomposer = d }
}

// WithStrictRankFactor rejects rank factors outside [0, 1] with
// ErrInvalidRankFactor instead of clamping them.
func WithStrictRankFactor() Option {
	return func(o *Options) { o.strict = true }
}

// WithObserver installs a progress callback. Panics on nil.
// pixel.Compress shares one Compressor across channel goroutines, so obs
// must be safe for concurrent use there.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}

	return func(o *Options) { o.observer = obs }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		decomposer: svd.LAPACK{},
		strict:     DefaultStrictRankFactor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
