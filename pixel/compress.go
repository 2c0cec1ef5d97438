// SPDX-License-Identifier: MIT

// Package pixel - image-level compression across channels.
package pixel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lowrank/compress"
	"github.com/katalvlaran/lowrank/matrix"
	"golang.org/x/sync/errgroup"
)

// ChannelReport summarizes the compression of one channel.
type ChannelReport struct {
	Name          string
	EffectiveRank int
	Rank          int
	Kept          []float64
	Dropped       []float64
	// MaxAbsDiff is the largest per-pixel change, in intensity units.
	MaxAbsDiff float64
}

// Report lists one ChannelReport per compressed channel, in
// gray or R, G, B order.
type Report struct {
	Channels []ChannelReport
}

// channelNames are the RGBA channels that are compressed, in buffer order.
var channelNames = [...]string{"R", "G", "B"}

// Compress rank-reduces every color channel of buf.
//
// Behavior:
//   - Gray buffers are compressed as a single channel "Y".
//   - RGBA buffers are split into R, G, B, compressed concurrently, and
//     merged back with alpha forced to 255.
//   - ctx is checked before each channel starts; the first error cancels
//     the channels that have not started yet.
//
// A nil Compressor behaves like compress.New().
// Errors: ctx.Err(), ErrNilBuffer, ErrBufferSize, ErrLayout, and any error of
// compress.Compress (e.g. compress.ErrInvalidRankFactor).
func Compress(ctx context.Context, c *compress.Compressor, buf *Buffer, rankFactor float64) (*Buffer, *Report, error) {
	if c == nil {
		c = compress.New()
	}
	if err := buf.validate(); err != nil {
		return nil, nil, fmt.Errorf("pixel.Compress: %w", err)
	}

	switch buf.Layout {
	case Gray:
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		m, err := ToMatrix(buf)
		if err != nil {
			return nil, nil, err
		}
		rep, out, err := compressChannel(c, "Y", m, rankFactor)
		if err != nil {
			return nil, nil, err
		}

		return FromMatrix(out), &Report{Channels: []ChannelReport{rep}}, nil

	case RGBA:
		r, g, b, err := ToChannelMatrices(buf)
		if err != nil {
			return nil, nil, err
		}
		in := [...]*matrix.Intensity{r, g, b}
		var (
			out  [len(channelNames)]*matrix.Intensity
			reps [len(channelNames)]ChannelReport
		)

		eg, egCtx := errgroup.WithContext(ctx)
		for i := range in {
			i := i
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}
				rep, m, err := compressChannel(c, channelNames[i], in[i], rankFactor)
				if err != nil {
					return err
				}
				reps[i], out[i] = rep, m

				return nil
			})
		}
		if err = eg.Wait(); err != nil {
			return nil, nil, err
		}

		merged, err := FromChannelMatrices(out[0], out[1], out[2])
		if err != nil {
			return nil, nil, err
		}

		return merged, &Report{Channels: reps[:]}, nil
	}

	return nil, nil, fmt.Errorf("pixel.Compress: %v: %w", buf.Layout, ErrLayout)
}

// compressChannel runs one channel through the compressor and measures the change.
func compressChannel(c *compress.Compressor, name string, m *matrix.Intensity, rankFactor float64) (ChannelReport, *matrix.Intensity, error) {
	res, err := compress.Compress(c, m, rankFactor)
	if err != nil {
		return ChannelReport{}, nil, fmt.Errorf("channel %s: %w", name, err)
	}
	diff, err := matrix.MaxAbsDiff(m, res.Matrix)
	if err != nil {
		return ChannelReport{}, nil, fmt.Errorf("channel %s: %w", name, err)
	}

	return ChannelReport{
		Name:          name,
		EffectiveRank: res.EffectiveRank,
		Rank:          res.Rank,
		Kept:          res.Kept,
		Dropped:       res.Dropped,
		MaxAbsDiff:    diff,
	}, res.Matrix, nil
}
