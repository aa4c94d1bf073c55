// Package config loads extraction defaults for the designlens CLI from a
// TOML file. Library callers pass Options structs directly and never touch
// this package.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"designlens/pkg/extract"
	"designlens/pkg/histogram"
	"designlens/pkg/regions"
)

// Config mirrors the tunable extraction knobs.
type Config struct {
	SampleRate       int     `toml:"sample_rate"`
	MaxColors        int     `toml:"max_colors"`
	Tolerance        float64 `toml:"tolerance"`
	MinRegionPercent float64 `toml:"min_region_percent"`
	MaxDimension     int     `toml:"max_dimension"`
	MergeThreshold   float64 `toml:"merge_threshold"`
}

// Default returns the documented extraction defaults.
func Default() Config {
	h := histogram.DefaultOptions()
	r := regions.DefaultOptions()
	return Config{
		SampleRate:       h.SampleRate,
		MaxColors:        h.MaxColors,
		Tolerance:        r.Tolerance,
		MinRegionPercent: r.MinRegionPercent,
		MaxDimension:     regions.DefaultMaxDimension,
		MergeThreshold:   extract.DefaultMergeThreshold,
	}
}

// Load reads a TOML config file. Keys absent from the file keep their
// defaults; a missing file is an error (callers skip Load when no path was
// given).
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Extractor builds an extract.Extractor from the configured values.
func (c Config) Extractor() *extract.Extractor {
	return &extract.Extractor{
		Histogram: histogram.Options{
			SampleRate: c.SampleRate,
			MaxColors:  c.MaxColors,
		},
		Regions: regions.Options{
			Tolerance:        c.Tolerance,
			MinRegionPercent: c.MinRegionPercent,
		},
		MaxDimension:   c.MaxDimension,
		MergeThreshold: c.MergeThreshold,
	}
}
