// SPDX-License-Identifier: MIT

// Package config loads lowrank settings from the environment, optionally
// seeded by a .env file found in the working directory or one of its parents.
//
// Precedence: process environment > .env file > defaults.
// Command-line flags, where a binary offers them, override all three.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lowrank/compress"
)

// Environment variable names.
const (
	EnvRankFactor   = "LOWRANK_RANK_FACTOR"
	EnvWorkingWidth = "LOWRANK_WORKING_WIDTH"
	EnvGrayscale    = "LOWRANK_GRAYSCALE"
	EnvStrict       = "LOWRANK_STRICT"
	EnvSpectrum     = "LOWRANK_SPECTRUM"
)

// envFileName is the dotenv file searched for by Load.
const envFileName = ".env"

// maxParentLevels bounds the upward search for envFileName.
const maxParentLevels = 4

// ErrInvalidValue indicates a variable that does not parse or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the effective settings.
type Config struct {
	// RankFactor is the fraction of the effective rank kept per channel.
	RankFactor float64
	// WorkingWidth downsizes images wider than this before compressing; 0 disables.
	WorkingWidth int
	// Grayscale compresses a single luma channel instead of R, G and B.
	Grayscale bool
	// Strict rejects rank factors outside [0, 1] instead of clamping.
	Strict bool
	// SpectrumPath, when set, receives a chart of the singular values.
	SpectrumPath string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		RankFactor: compress.DefaultRankFactor,
		Strict:     compress.DefaultStrictRankFactor,
	}
}

// Load resolves the configuration from the working directory.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return LoadDir(dir)
}

// LoadDir resolves the configuration, searching dir and up to four parents
// for a .env file. A missing .env file is not an error.
//
// Errors: ErrInvalidValue (wrapped with the variable name), or a .env
// file that exists but cannot be parsed.
func LoadDir(dir string) (*Config, error) {
	file, err := readEnvFile(dir)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]

		return v, ok
	}

	cfg := Default()
	if v, ok := lookup(EnvRankFactor); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, invalid(EnvRankFactor, v)
		}
		cfg.RankFactor = f
	}
	if v, ok := lookup(EnvWorkingWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, invalid(EnvWorkingWidth, v)
		}
		cfg.WorkingWidth = n
	}
	if v, ok := lookup(EnvGrayscale); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalid(EnvGrayscale, v)
		}
		cfg.Grayscale = b
	}
	if v, ok := lookup(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, invalid(EnvStrict, v)
		}
		cfg.Strict = b
	}
	if v, ok := lookup(EnvSpectrum); ok {
		cfg.SpectrumPath = v
	}

	return &cfg, nil
}

// CompressOptions translates the settings into compress options.
func (c *Config) CompressOptions() []compress.Option {
	var opts []compress.Option
	if c.Strict {
		opts = append(opts, compress.WithStrictRankFactor())
	}

	return opts
}

func invalid(key, value string) error {
	return fmt.Errorf("%s=%q: %w", key, value, ErrInvalidValue)
}

// readEnvFile walks from dir upwards looking for .env and parses the first
// one found. Values are returned, not exported into the process environment.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i <= maxParentLevels; i++ {
		path := filepath.Join(dir, envFileName)
		if _, err := os.Stat(path); err == nil {
			vals, err := godotenv.Read(path)
			if err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}

			return vals, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return map[string]string{}, nil
}
