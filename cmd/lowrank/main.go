// SPDX-License-Identifier: MIT

// Command lowrank compresses an image by discarding the smallest singular
// values of each color channel and writes the result as PNG.
//
// Usage:
//
//	lowrank -in photo.jpg -out photo_lowrank.png -factor 0.1 -width 800 -spectrum spectrum.png
//	lowrank -demo 320x240 -factor 0.05
//
// Defaults come from LOWRANK_* environment variables or a .env file
// (see package config); flags given on the command line take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/lowrank/builder"
	"github.com/katalvlaran/lowrank/compress"
	"github.com/katalvlaran/lowrank/config"
	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/pixel"
	"github.com/katalvlaran/lowrank/spectrum"
)

var (
	flagIn       = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	flagOut      = flag.String("out", "", "output PNG (default: <in>_lowrank.png)")
	flagFactor   = flag.Float64("factor", compress.DefaultRankFactor, "fraction of the effective rank to keep")
	flagWidth    = flag.Int("width", 0, "downsize wider images to this width first (0: keep)")
	flagGray     = flag.Bool("gray", false, "compress a single gray channel")
	flagStrict   = flag.Bool("strict", false, "reject -factor outside [0, 1] instead of clamping")
	flagSpectrum = flag.String("spectrum", "", "write a singular-value chart (png, svg, pdf) to this path")
	flagDemo     = flag.String("demo", "", "compress a synthetic WxH test image instead of -in")
	flagV        = flag.Bool("v", true, "verbose output")
)

// demoNoise keeps synthetic images from being trivially low-rank.
const demoNoise = 6

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	applyFlags(cfg)

	if *flagIn == "" && *flagDemo == "" {
		flag.Usage()
		os.Exit(2)
	}
	out := *flagOut
	if out == "" {
		out = defaultOutput(*flagIn)
	}

	img, err := loadInput(*flagIn, *flagDemo, *flagV)
	if err != nil {
		log.Fatalf("lowrank: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = run(ctx, cfg, img, out, *flagV); err != nil {
		log.Fatalf("lowrank: %v", err)
	}
}

// applyFlags overrides cfg with the flags explicitly set on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "factor":
			cfg.RankFactor = *flagFactor
		case "width":
			cfg.WorkingWidth = *flagWidth
		case "gray":
			cfg.Grayscale = *flagGray
		case "strict":
			cfg.Strict = *flagStrict
		case "spectrum":
			cfg.SpectrumPath = *flagSpectrum
		}
	})
}

// defaultOutput derives "<dir>/<name>_lowrank.png" from the input path,
// or "demo_lowrank.png" without one.
func defaultOutput(in string) string {
	if in == "" {
		return "demo_lowrank.png"
	}
	ext := filepath.Ext(in)

	return strings.TrimSuffix(in, ext) + "_lowrank.png"
}

// loadInput decodes in, or synthesizes a test image when in is empty.
func loadInput(in, demo string, verbose bool) (image.Image, error) {
	if in == "" {
		size, err := parseSize(demo)
		if err != nil {
			return nil, err
		}
		buf, err := builder.BuildRGBA(size, time.Now().UnixNano(), builder.WithNoise(demoNoise))
		if err != nil {
			return nil, err
		}
		if verbose {
			log.Printf("synthesized %dx%d demo image", size.Width, size.Height)
		}

		return buf.Image(), nil
	}
	img, format, err := decodeFile(in)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("decoded %s (%s, %dx%d)", in, format, img.Bounds().Dx(), img.Bounds().Dy())
	}

	return img, nil
}

// parseSize parses "WxH".
func parseSize(s string) (matrix.Size, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w < 1 || h < 1 {
		return matrix.Size{}, fmt.Errorf("demo size %q: want WxH", s)
	}

	return matrix.Size{Height: h, Width: w}, nil
}

// run executes one compression: optional downsize, compress, encode,
// optional spectrum chart.
func run(ctx context.Context, cfg *config.Config, img image.Image, out string, verbose bool) error {
	start := time.Now()
	img = pixel.Downsize(img, cfg.WorkingWidth)

	layout := pixel.RGBA
	if cfg.Grayscale {
		layout = pixel.Gray
	}
	buf := pixel.FromImage(img, layout)

	opts := cfg.CompressOptions()
	if verbose {
		opts = append(opts, compress.WithObserver(func(e compress.Event) { log.Printf("  %v", e) }))
	}
	result, report, err := pixel.Compress(ctx, compress.New(opts...), buf, cfg.RankFactor)
	if err != nil {
		return err
	}

	if err = encodePNG(out, result.Image()); err != nil {
		return err
	}
	for _, ch := range report.Channels {
		log.Printf("channel %s: rank %d/%d, max change %.0f", ch.Name, ch.Rank, ch.EffectiveRank, ch.MaxAbsDiff)
	}

	if cfg.SpectrumPath != "" {
		// The first channel is representative: R for color, Y for gray.
		ch := report.Channels[0]
		chart := spectrum.NewChart(fmt.Sprintf("%s singular values (kept %d of %d)", ch.Name, ch.Rank, ch.EffectiveRank))
		if err = chart.Save(cfg.SpectrumPath, ch.Kept, ch.Dropped); err != nil {
			return err
		}
		log.Printf("wrote spectrum %s", cfg.SpectrumPath)
	}
	log.Printf("wrote %s in %v", out, time.Since(start).Round(time.Millisecond))

	return nil
}
