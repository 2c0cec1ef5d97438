// SPDX-License-Identifier: MIT

// Package pixel - Buffer type and image.Image interop.
package pixel

import (
	"fmt"
	"image"

	"github.com/katalvlaran/lowrank/matrix"
	"golang.org/x/image/draw"
)

// Layout is the byte layout of a pixel buffer.
type Layout int

const (
	// Gray stores one intensity byte per pixel.
	Gray Layout = iota
	// RGBA stores R, G, B, A bytes per pixel.
	RGBA
)

// BytesPerPixel returns 1 for Gray and 4 for RGBA; 0 for unknown layouts.
func (l Layout) BytesPerPixel() int {
	switch l {
	case Gray:
		return 1
	case RGBA:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case Gray:
		return "gray"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Buffer is a row-major 8-bit pixel buffer.
// Invariant: len(Pix) == Size.Len() * Layout.BytesPerPixel().
type Buffer struct {
	Pix    []uint8
	Size   matrix.Size
	Layout Layout
}

// NewBuffer validates and copies pix into a Buffer.
//
// Errors:
//   - ErrLayout for an unknown layout.
//   - ErrBufferSize if the length disagrees with size, or size is negative.
func NewBuffer(pix []uint8, size matrix.Size, layout Layout) (*Buffer, error) {
	b := &Buffer{Pix: pix, Size: size, Layout: layout}
	if err := b.validate(); err != nil {
		return nil, err
	}
	b.Pix = append([]uint8(nil), pix...)

	return b, nil
}

func (b *Buffer) validate() error {
	if b == nil {
		return ErrNilBuffer
	}
	bpp := b.Layout.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("%v: %w", b.Layout, ErrLayout)
	}
	if b.Size.Height < 0 || b.Size.Width < 0 {
		return fmt.Errorf("size %dx%d: %w", b.Size.Height, b.Size.Width, ErrBufferSize)
	}
	if want := b.Size.Len() * bpp; len(b.Pix) != want {
		return fmt.Errorf("have %d bytes, want %d: %w", len(b.Pix), want, ErrBufferSize)
	}

	return nil
}

// FromImage renders img into a Buffer of the given layout.
// Color conversion is delegated to the destination image's color model
// (image.Gray uses the standard luma weights).
// An unknown layout falls back to RGBA.
func FromImage(img image.Image, layout Layout) *Buffer {
	bounds := img.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())
	size := matrix.Size{Height: bounds.Dy(), Width: bounds.Dx()}

	if layout == Gray {
		dst := image.NewGray(rect)
		draw.Draw(dst, rect, img, bounds.Min, draw.Src)

		return &Buffer{Pix: dst.Pix, Size: size, Layout: Gray}
	}
	dst := image.NewRGBA(rect)
	draw.Draw(dst, rect, img, bounds.Min, draw.Src)

	return &Buffer{Pix: dst.Pix, Size: size, Layout: RGBA}
}

// Image wraps a copy of the buffer as *image.Gray or *image.RGBA.
// It returns nil for an invalid buffer.
func (b *Buffer) Image() image.Image {
	if b.validate() != nil {
		return nil
	}
	rect := image.Rect(0, 0, b.Size.Width, b.Size.Height)
	pix := append([]uint8(nil), b.Pix...)
	if b.Layout == Gray {
		return &image.Gray{Pix: pix, Stride: b.Size.Width, Rect: rect}
	}

	return &image.RGBA{Pix: pix, Stride: 4 * b.Size.Width, Rect: rect}
}

// Downsize scales img to the given width, preserving the aspect ratio,
// with Catmull-Rom resampling. Height is rounded and kept >= 1.
// If width <= 0 or width >= the current width, img is returned unchanged.
func Downsize(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if width <= 0 || width >= bounds.Dx() {
		return img
	}
	height := (bounds.Dy()*width + bounds.Dx()/2) / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Rect, img, bounds, draw.Src, nil)

	return dst
}
