// SPDX-License-Identifier: MIT

// Package pixel - buffer ⇄ channel matrix conversion.
//
// Complexity: every function is O(h*w) time and allocates its output.
package pixel

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
)

// alphaOpaque is written into every reconstructed RGBA pixel.
const alphaOpaque = 255

// ToMatrix copies a Gray buffer into an intensity matrix of the same size.
//
// Errors: ErrNilBuffer, ErrBufferSize, ErrLayout (non-gray buffer).
func ToMatrix(buf *Buffer) (*matrix.Intensity, error) {
	if err := buf.validate(); err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}
	if buf.Layout != Gray {
		return nil, fmt.Errorf("ToMatrix: %v: %w", buf.Layout, ErrLayout)
	}
	m, err := matrix.New(buf.Pix, buf.Size)
	if err != nil {
		return nil, fmt.Errorf("ToMatrix: %w", err)
	}

	return m, nil
}

// FromMatrix builds a Gray buffer from an intensity matrix.
// A nil matrix yields an empty 0×0 buffer.
func FromMatrix(m *matrix.Intensity) *Buffer {
	if m == nil {
		return &Buffer{Pix: []uint8{}, Layout: Gray}
	}

	return &Buffer{Pix: m.Elements(), Size: m.Size(), Layout: Gray}
}

// ToChannelMatrices splits an RGBA buffer into R, G and B matrices.
// Alpha is ignored.
//
// Implementation:
//   - Stage 1: validate buffer and layout.
//   - Stage 2: de-interleave pixel p (offset 4p) into r[p], g[p], b[p].
//
// Errors: ErrNilBuffer, ErrBufferSize, ErrLayout (non-RGBA buffer).
func ToChannelMatrices(buf *Buffer) (r, g, b *matrix.Intensity, err error) {
	if err = buf.validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("ToChannelMatrices: %w", err)
	}
	if buf.Layout != RGBA {
		return nil, nil, nil, fmt.Errorf("ToChannelMatrices: %v: %w", buf.Layout, ErrLayout)
	}
	n := buf.Size.Len()
	rs, gs, bs := make([]uint8, n), make([]uint8, n), make([]uint8, n)
	for p := 0; p < n; p++ {
		rs[p] = buf.Pix[4*p]
		gs[p] = buf.Pix[4*p+1]
		bs[p] = buf.Pix[4*p+2]
	}
	if r, err = matrix.New(rs, buf.Size); err != nil {
		return nil, nil, nil, fmt.Errorf("ToChannelMatrices: %w", err)
	}
	if g, err = matrix.New(gs, buf.Size); err != nil {
		return nil, nil, nil, fmt.Errorf("ToChannelMatrices: %w", err)
	}
	if b, err = matrix.New(bs, buf.Size); err != nil {
		return nil, nil, nil, fmt.Errorf("ToChannelMatrices: %w", err)
	}

	return r, g, b, nil
}

// FromChannelMatrices interleaves R, G and B into an RGBA buffer with
// alpha forced to 255.
//
// Errors: matrix.ErrNilMatrix, ErrChannelMismatch.
func FromChannelMatrices(r, g, b *matrix.Intensity) (*Buffer, error) {
	for _, ch := range []*matrix.Intensity{r, g, b} {
		if err := matrix.ValidateNotNil(ch); err != nil {
			return nil, fmt.Errorf("FromChannelMatrices: %w", err)
		}
	}
	if r.Size() != g.Size() || r.Size() != b.Size() {
		return nil, fmt.Errorf("FromChannelMatrices: %v/%v/%v: %w", r.Size(), g.Size(), b.Size(), ErrChannelMismatch)
	}
	rs, gs, bs := r.Elements(), g.Elements(), b.Elements()
	pix := make([]uint8, 4*len(rs))
	for p := range rs {
		pix[4*p] = rs[p]
		pix[4*p+1] = gs[p]
		pix[4*p+2] = bs[p]
		pix[4*p+3] = alphaOpaque
	}

	return &Buffer{Pix: pix, Size: r.Size(), Layout: RGBA}, nil
}
