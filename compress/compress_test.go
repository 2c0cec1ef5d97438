package compress_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/builder"
	"github.com/katalvlaran/lowrank/compress"
	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/svd"
	"github.com/stretchr/testify/require"
)

var wikiSize = matrix.Size{Height: 4, Width: 5}

func wikiMatrix[T matrix.Numeric](t *testing.T) *matrix.Matrix[T] {
	t.Helper()
	raw := []T{
		1, 0, 0, 0, 2,
		0, 0, 3, 0, 0,
		0, 0, 0, 0, 0,
		0, 2, 0, 0, 0,
	}
	m, err := matrix.New(raw, wikiSize)
	require.NoError(t, err)

	return m
}

func randUint8(t *testing.T, h, w int, seed int64) *matrix.Intensity {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]uint8, h*w)
	for i := range vals {
		vals[i] = uint8(rng.Intn(256))
	}
	m, err := matrix.New(vals, matrix.Size{Height: h, Width: w})
	require.NoError(t, err)

	return m
}

func randFloat(t *testing.T, h, w int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, h*w)
	for i := range vals {
		vals[i] = rng.NormFloat64() * 40
	}
	m, err := matrix.New(vals, matrix.Size{Height: h, Width: w})
	require.NoError(t, err)

	return m
}

func TestCompress_FullRankRestoresInput(t *testing.T) {
	a := wikiMatrix[uint8](t)
	res, err := compress.Compress(compress.New(), a, 1.0)
	require.NoError(t, err)

	require.Equal(t, wikiSize, res.Matrix.Size())
	worst, err := matrix.MaxAbsDiff(a, res.Matrix)
	require.NoError(t, err)
	require.LessOrEqual(t, worst, 1.0)

	require.Equal(t, res.EffectiveRank, res.Rank)
	require.GreaterOrEqual(t, res.EffectiveRank, 3)
	require.Empty(t, res.Dropped)
	require.InDelta(t, 3, res.Kept[0], 1e-9)
	require.InDelta(t, math.Sqrt(5), res.Kept[1], 1e-9)
	require.InDelta(t, 2, res.Kept[2], 1e-9)
}

func TestCompress_ZeroFactorYieldsZeros(t *testing.T) {
	a := wikiMatrix[float64](t)
	res, err := compress.Compress(nil, a, 0)
	require.NoError(t, err)

	require.Zero(t, res.Rank)
	require.Empty(t, res.Kept)
	require.Len(t, res.Dropped, res.EffectiveRank)
	for _, v := range res.Matrix.Elements() {
		require.Zero(t, v)
	}
}

func TestCompress_Uint8FullRank(t *testing.T) {
	a := randUint8(t, 8, 6, 3)
	res, err := compress.Compress(nil, a, 1)
	require.NoError(t, err)
	worst, err := matrix.MaxAbsDiff(a, res.Matrix)
	require.NoError(t, err)
	require.LessOrEqual(t, worst, 1.0)
}

func TestCompress_NamedElementType(t *testing.T) {
	type gray uint8
	a, err := matrix.New([]gray{10, 20, 30, 40}, matrix.Size{Height: 2, Width: 2})
	require.NoError(t, err)
	res, err := compress.Compress(nil, a, 1)
	require.NoError(t, err)
	require.Equal(t, []gray{10, 20, 30, 40}, res.Matrix.Elements())
}

func TestCompress_ErrorDecreasesWithRank(t *testing.T) {
	a := randFloat(t, 10, 8, 11)
	p, err := compress.Factorize(nil, a)
	require.NoError(t, err)

	prev := math.Inf(1)
	for _, f := range []float64{0, 0.25, 0.5, 0.75, 1} {
		res, err := p.Reduce(f)
		require.NoError(t, err)
		d, err := matrix.FrobeniusDiff(a, res.Matrix)
		require.NoError(t, err)
		require.LessOrEqual(t, d, prev+1e-9, "factor %v", f)
		prev = d
	}
	require.Less(t, prev, 1e-8)
}

// TestCompress_Idempotent recompresses a rank-truncated matrix at a higher
// factor and expects no further change.
func TestCompress_Idempotent(t *testing.T) {
	a := randFloat(t, 6, 5, 7)
	first, err := compress.Compress(nil, a, 0.4)
	require.NoError(t, err)
	require.Equal(t, 2, first.Rank)

	second, err := compress.Compress(nil, first.Matrix, 1)
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(first.Matrix, second.Matrix)
	require.NoError(t, err)
	require.Less(t, d, 1e-8)
}

func TestCompress_RankFactorPolicy(t *testing.T) {
	a := wikiMatrix[float64](t)

	// Clamp by default.
	over, err := compress.Compress(nil, a, 1.5)
	require.NoError(t, err)
	require.Equal(t, over.EffectiveRank, over.Rank)
	under, err := compress.Compress(nil, a, -0.5)
	require.NoError(t, err)
	require.Zero(t, under.Rank)

	// NaN is always rejected.
	_, err = compress.Compress(nil, a, math.NaN())
	require.ErrorIs(t, err, compress.ErrInvalidRankFactor)

	strict := compress.New(compress.WithStrictRankFactor())
	require.True(t, strict.Strict())
	_, err = compress.Compress(strict, a, 1.5)
	require.ErrorIs(t, err, compress.ErrInvalidRankFactor)
	_, err = compress.Compress(strict, a, -0.1)
	require.ErrorIs(t, err, compress.ErrInvalidRankFactor)
	_, err = compress.Compress(strict, a, 1)
	require.NoError(t, err)
}

func TestCompress_ObserverStages(t *testing.T) {
	var events []compress.Event
	c := compress.New(compress.WithObserver(func(e compress.Event) { events = append(events, e) }))

	_, err := compress.Compress(c, wikiMatrix[float64](t), 1)
	require.NoError(t, err)

	var stages []compress.Stage
	for _, e := range events {
		require.Equal(t, wikiSize, e.Size)
		stages = append(stages, e.Stage)
	}
	require.Equal(t, []compress.Stage{
		compress.StageDecompose,
		compress.StageTruncate,
		compress.StageReconstruct,
		compress.StageDone,
	}, stages)
	require.Equal(t, events[3].EffectiveRank, events[3].Rank)
	require.Equal(t, "done", compress.StageDone.String())

	// A rejected factor stops before the decomposition.
	events = nil
	strict := compress.New(compress.WithStrictRankFactor(), compress.WithObserver(func(e compress.Event) { events = append(events, e) }))
	_, err = compress.Compress(strict, wikiMatrix[float64](t), 2)
	require.Error(t, err)
	require.Empty(t, events)
}

func TestFactorize_DecomposesOnce(t *testing.T) {
	calls := 0
	counting := svd.DecomposerFunc(func(a *matrix.Matrix[float64]) (*svd.Factors, error) {
		calls++
		return svd.LAPACK{}.Decompose(a)
	})
	p, err := compress.Factorize(compress.New(compress.WithDecomposer(counting)), randUint8(t, 5, 7, 1))
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Height: 5, Width: 7}, p.Size())
	require.Equal(t, 5, p.EffectiveRank())

	for _, f := range []float64{0.2, 0.6, 1} {
		_, err = p.Reduce(f)
		require.NoError(t, err)
	}
	require.Equal(t, 1, calls)

	sv := p.Spectrum()
	sv[0] = -1
	require.Positive(t, p.Spectrum()[0], "Spectrum must return a copy")
}

func TestCompress_Errors(t *testing.T) {
	_, err := compress.Compress[float64](nil, nil, 0.5)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	failing := svd.DecomposerFunc(func(*matrix.Matrix[float64]) (*svd.Factors, error) {
		return nil, svd.ErrDecompositionFailed
	})
	_, err = compress.Compress(compress.New(compress.WithDecomposer(failing)), wikiMatrix[uint8](t), 0.5)
	require.ErrorIs(t, err, svd.ErrDecompositionFailed)

	nan, err := matrix.New([]float64{math.NaN()}, matrix.Size{Height: 1, Width: 1})
	require.NoError(t, err)
	_, err = compress.Compress(nil, nan, 0.5)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { compress.WithDecomposer(nil) })
	require.Panics(t, func() { compress.WithObserver(nil) })
}

// TestCompress_KnownRank checks that truncating an exactly rank-3 matrix at
// rank >= 3 loses nothing, and at rank 2 loses the third component.
func TestCompress_KnownRank(t *testing.T) {
	a, err := builder.BuildLowRank(matrix.Size{Height: 10, Width: 8}, 3, 21, builder.WithAmplitude(50))
	require.NoError(t, err)
	p, err := compress.Factorize(nil, a)
	require.NoError(t, err)
	sv := p.Spectrum()
	require.Greater(t, sv[2], 1e-6)

	keep3, err := p.Reduce(4.0 / float64(p.EffectiveRank()))
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(a, keep3.Matrix)
	require.NoError(t, err)
	require.Less(t, d, 1e-8)

	keep2, err := p.Reduce(2.0 / float64(p.EffectiveRank()))
	require.NoError(t, err)
	require.Equal(t, 2, keep2.Rank)
	d, err = matrix.FrobeniusDiff(a, keep2.Matrix)
	require.NoError(t, err)
	require.InDelta(t, sv[2], d, 1e-8)
}
