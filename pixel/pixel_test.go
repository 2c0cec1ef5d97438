package pixel_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/lowrank/compress"
	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/pixel"
	"github.com/stretchr/testify/require"
)

// gradient builds an opaque w×h RGBA image with smooth per-channel ramps.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 127 / (w + h)),
				A: 255,
			})
		}
	}

	return img
}

func TestNewBuffer(t *testing.T) {
	size := matrix.Size{Height: 2, Width: 3}
	pix := make([]uint8, 6)
	b, err := pixel.NewBuffer(pix, size, pixel.Gray)
	require.NoError(t, err)
	pix[0] = 9
	require.Zero(t, b.Pix[0], "NewBuffer must copy")

	_, err = pixel.NewBuffer(pix, size, pixel.RGBA)
	require.ErrorIs(t, err, pixel.ErrBufferSize)
	_, err = pixel.NewBuffer(pix, size, pixel.Layout(7))
	require.ErrorIs(t, err, pixel.ErrLayout)
	_, err = pixel.NewBuffer(nil, matrix.Size{Height: -1, Width: 0}, pixel.Gray)
	require.ErrorIs(t, err, pixel.ErrBufferSize)

	require.Equal(t, "rgba", pixel.RGBA.String())
	require.Equal(t, 4, pixel.RGBA.BytesPerPixel())
}

func TestGrayRoundTrip(t *testing.T) {
	pix := []uint8{0, 50, 100, 150, 200, 250}
	b, err := pixel.NewBuffer(pix, matrix.Size{Height: 2, Width: 3}, pixel.Gray)
	require.NoError(t, err)

	m, err := pixel.ToMatrix(b)
	require.NoError(t, err)
	require.Equal(t, matrix.Size{Height: 2, Width: 3}, m.Size())
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(150), v)

	back := pixel.FromMatrix(m)
	require.Equal(t, pix, back.Pix)
	require.Equal(t, pixel.Gray, back.Layout)

	rgba, err := pixel.NewBuffer(make([]uint8, 24), matrix.Size{Height: 2, Width: 3}, pixel.RGBA)
	require.NoError(t, err)
	_, err = pixel.ToMatrix(rgba)
	require.ErrorIs(t, err, pixel.ErrLayout)
	_, err = pixel.ToMatrix(nil)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)
}

func TestChannelRoundTrip(t *testing.T) {
	pix := []uint8{
		1, 2, 3, 10, 4, 5, 6, 20,
		7, 8, 9, 30, 10, 11, 12, 40,
	}
	b, err := pixel.NewBuffer(pix, matrix.Size{Height: 2, Width: 2}, pixel.RGBA)
	require.NoError(t, err)

	r, g, bl, err := pixel.ToChannelMatrices(b)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 4, 7, 10}, r.Elements())
	require.Equal(t, []uint8{2, 5, 8, 11}, g.Elements())
	require.Equal(t, []uint8{3, 6, 9, 12}, bl.Elements())

	back, err := pixel.FromChannelMatrices(r, g, bl)
	require.NoError(t, err)
	require.Equal(t, []uint8{
		1, 2, 3, 255, 4, 5, 6, 255,
		7, 8, 9, 255, 10, 11, 12, 255,
	}, back.Pix)

	gray, err := pixel.NewBuffer(make([]uint8, 4), matrix.Size{Height: 2, Width: 2}, pixel.Gray)
	require.NoError(t, err)
	_, _, _, err = pixel.ToChannelMatrices(gray)
	require.ErrorIs(t, err, pixel.ErrLayout)
}

func TestFromChannelMatrices_Mismatch(t *testing.T) {
	a, _ := matrix.Zeros[uint8](matrix.Size{Height: 2, Width: 2})
	b, _ := matrix.Zeros[uint8](matrix.Size{Height: 2, Width: 3})
	_, err := pixel.FromChannelMatrices(a, a, b)
	require.ErrorIs(t, err, pixel.ErrChannelMismatch)
	_, err = pixel.FromChannelMatrices(a, nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestImageInterop(t *testing.T) {
	src := gradient(8, 4)
	b := pixel.FromImage(src, pixel.RGBA)
	require.Equal(t, matrix.Size{Height: 4, Width: 8}, b.Size)
	require.Len(t, b.Pix, 4*8*4)

	img := b.Image()
	require.Equal(t, src.Bounds(), img.Bounds())
	require.Equal(t, src.At(5, 2), img.At(5, 2))

	g := pixel.FromImage(src, pixel.Gray)
	require.Equal(t, pixel.Gray, g.Layout)
	require.Len(t, g.Pix, 8*4)
	_, ok := g.Image().(*image.Gray)
	require.True(t, ok)

	// Bounds not anchored at the origin are normalized.
	sub := src.SubImage(image.Rect(2, 1, 6, 3))
	sb := pixel.FromImage(sub, pixel.RGBA)
	require.Equal(t, matrix.Size{Height: 2, Width: 4}, sb.Size)
	require.Equal(t, src.At(2, 1), sb.Image().At(0, 0))
}

func TestDownsize(t *testing.T) {
	src := gradient(40, 20)

	small := pixel.Downsize(src, 10)
	require.Equal(t, 10, small.Bounds().Dx())
	require.Equal(t, 5, small.Bounds().Dy())

	require.Same(t, src, pixel.Downsize(src, 0))
	require.Same(t, src, pixel.Downsize(src, 40))
	require.Same(t, src, pixel.Downsize(src, 100))

	thin := pixel.Downsize(gradient(100, 1), 10)
	require.Equal(t, 1, thin.Bounds().Dy())
}

func TestCompress_RGBAFullRank(t *testing.T) {
	buf := pixel.FromImage(gradient(12, 9), pixel.RGBA)
	for p := 3; p < len(buf.Pix); p += 4 {
		buf.Pix[p] = 17
	}

	out, rep, err := pixel.Compress(context.Background(), nil, buf, 1)
	require.NoError(t, err)
	require.Equal(t, buf.Size, out.Size)
	require.Equal(t, pixel.RGBA, out.Layout)
	require.Len(t, rep.Channels, 3)

	for i, name := range []string{"R", "G", "B"} {
		ch := rep.Channels[i]
		require.Equal(t, name, ch.Name)
		require.Equal(t, ch.EffectiveRank, ch.Rank)
		require.LessOrEqual(t, ch.MaxAbsDiff, 1.0)
	}
	for p := 0; p < len(out.Pix); p += 4 {
		for c := 0; c < 3; c++ {
			d := int(out.Pix[p+c]) - int(buf.Pix[p+c])
			require.LessOrEqual(t, d*d, 1)
		}
		require.Equal(t, uint8(255), out.Pix[p+3])
	}
}

func TestCompress_GrayZeroFactor(t *testing.T) {
	buf := pixel.FromImage(gradient(6, 6), pixel.Gray)
	out, rep, err := pixel.Compress(context.Background(), compress.New(), buf, 0)
	require.NoError(t, err)
	require.Len(t, rep.Channels, 1)
	require.Equal(t, "Y", rep.Channels[0].Name)
	require.Zero(t, rep.Channels[0].Rank)
	for _, v := range out.Pix {
		require.Zero(t, v)
	}
}

func TestCompress_Errors(t *testing.T) {
	buf := pixel.FromImage(gradient(4, 4), pixel.RGBA)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := pixel.Compress(ctx, nil, buf, 0.5)
	require.ErrorIs(t, err, context.Canceled)

	strict := compress.New(compress.WithStrictRankFactor())
	_, _, err = pixel.Compress(context.Background(), strict, buf, 3)
	require.ErrorIs(t, err, compress.ErrInvalidRankFactor)

	_, _, err = pixel.Compress(context.Background(), nil, nil, 0.5)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)

	bad := &pixel.Buffer{Pix: make([]uint8, 3), Size: matrix.Size{Height: 2, Width: 2}, Layout: pixel.Gray}
	_, _, err = pixel.Compress(context.Background(), nil, bad, 0.5)
	require.ErrorIs(t, err, pixel.ErrBufferSize)
}
