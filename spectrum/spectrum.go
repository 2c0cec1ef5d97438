// SPDX-License-Identifier: MIT

package spectrum

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoValues is returned when both kept and dropped are empty.
var ErrNoValues = errors.New("spectrum: no singular values")

// Defaults for NewChart.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var keptColor = color.RGBA{R: 196, G: 32, B: 32, A: 255}

// Chart describes a spectrum plot.
type Chart struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	// LogScale draws the Y axis logarithmically. Values must be positive.
	LogScale bool
}

// NewChart returns a chart with the default canvas size.
func NewChart(title string) *Chart {
	return &Chart{Title: title, Width: DefaultWidth, Height: DefaultHeight}
}

// Render writes the chart of kept followed by dropped singular values
// (both descending) to w in the given format ("png", "svg", ...).
//
// Errors: ErrNoValues, or any plot/plotter error (unknown format, NaN input).
func (c *Chart) Render(w io.Writer, format string, kept, dropped []float64) error {
	p, err := c.build(kept, dropped)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(c.Width, c.Height, format)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	return nil
}

// Save writes the chart to path; the format follows the file extension.
func (c *Chart) Save(path string, kept, dropped []float64) error {
	p, err := c.build(kept, dropped)
	if err != nil {
		return err
	}
	if err = p.Save(c.Width, c.Height, path); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}

	return nil
}

// build assembles the plot.
//
// Implementation:
//   - Stage 1: index all values 1..n as one line with points.
//   - Stage 2: overlay the kept prefix as a separate, colored scatter.
//   - Stage 3: legend, axes, optional log scale.
func (c *Chart) build(kept, dropped []float64) (*plot.Plot, error) {
	n := len(kept) + len(dropped)
	if n == 0 {
		return nil, ErrNoValues
	}

	all := make(plotter.XYs, 0, n)
	for i, v := range append(append([]float64{}, kept...), dropped...) {
		all = append(all, plotter.XY{X: float64(i + 1), Y: v})
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "singular value"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(all)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add(fmt.Sprintf("all (%d)", n), line, points)

	if len(kept) > 0 {
		marks, err := plotter.NewScatter(all[:len(kept)])
		if err != nil {
			return nil, fmt.Errorf("spectrum: %w", err)
		}
		marks.GlyphStyle.Color = keptColor
		marks.GlyphStyle.Shape = draw.CircleGlyph{}
		marks.GlyphStyle.Radius = vg.Points(3)
		p.Add(marks)
		p.Legend.Add(fmt.Sprintf("kept (%d)", len(kept)), marks)
	}

	if c.LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	return p, nil
}
