// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag binding, and validation. Defaults match the legacy
// material dump tool so a bare run produces the same tree.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Filter selects the resample filter used when downscaling.
type Filter string

const (
	FilterLinear     Filter = "linear" // Bilinear (default).
	FilterNearest    Filter = "nearest"
	FilterBox        Filter = "box"
	FilterGaussian   Filter = "gaussian"
	FilterMitchell   Filter = "mitchell"
	FilterCatmullRom Filter = "catmullrom"
	FilterLanczos    Filter = "lanczos"
)

// Filters lists every accepted filter name in help-text order.
var Filters = []Filter{
	FilterLinear, FilterNearest, FilterBox, FilterGaussian,
	FilterMitchell, FilterCatmullRom, FilterLanczos,
}

// DefaultResolutions is the derived bucket sequence: 8 up to 1024, doubling.
var DefaultResolutions = []int{8, 16, 32, 64, 128, 256, 512, 1024}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadEnv], then CLI flags, and is passed by pointer to packages
// that need it.
type Config struct {
	// Paths.
	RootDir     string `env:"PBRDUMP_DIR"` // Working root holding material folders.
	DumpDirName string // Fixed: "_dump".

	// Pyramid.
	MasterSize  int    // Fixed: 2048.
	Resolutions []int  `env:"PBRDUMP_RESOLUTIONS" envSeparator:","` // Default: 8..1024.
	Filter      Filter `env:"PBRDUMP_FILTER"`                       // Default: "linear".

	// Markers.
	ImageExt         string // Fixed: ".png".
	SkipSuffix       string `env:"PBRDUMP_SKIP_SUFFIX"` // Default: ".ignore".
	ExcludeSubstring string `env:"PBRDUMP_EXCLUDE"`     // Default: "review".

	// Behavior flags.
	MaterializeMissing bool `env:"PBRDUMP_MATERIALIZE_MISSING"` // Legacy: create empty source before copy.

	// Display and logging.
	Verbose   bool      `env:"PBRDUMP_VERBOSE"`
	ColorMode ColorMode `env:"PBRDUMP_COLOR"` // Default: "auto".
	LogFile   string    `env:"PBRDUMP_LOG"`   // Optional log file path.
}

// DefaultConfig returns a Config with the legacy defaults. RootDir is left
// empty; the caller fills it from [DefaultRootDir], env or flags.
func DefaultConfig() Config {
	return Config{
		DumpDirName:        "_dump",
		MasterSize:         2048,
		Resolutions:        append([]int(nil), DefaultResolutions...),
		Filter:             FilterLinear,
		ImageExt:           ".png",
		SkipSuffix:         ".ignore",
		ExcludeSubstring:   "review",
		MaterializeMissing: false,
		Verbose:            false,
		ColorMode:          ColorAuto,
	}
}

// LoadEnv applies PBRDUMP_* environment overrides on top of cfg. Unset
// variables leave the current values alone. A nil environ reads the
// process environment.
func LoadEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DefaultRootDir returns the directory holding the running executable.
func DefaultRootDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// BucketName returns the resolution bucket directory name for size, e.g. "64x64".
func BucketName(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// MasterBucket returns the directory name of the master bucket.
func (c *Config) MasterBucket() string {
	return BucketName(c.MasterSize)
}

// Validate checks enum fields, the resolution sequence, and required paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if !validFilter(c.Filter) {
		return fmt.Errorf("invalid filter %q (use one of %s)", c.Filter, filterList())
	}

	if err := validateResolutions(c.Resolutions, c.MasterSize); err != nil {
		return err
	}

	if c.SkipSuffix == "" {
		return errors.New("skip suffix must not be empty")
	}
	if c.RootDir == "" {
		return errors.New("need a root directory (--dir)")
	}
	return nil
}

// validateResolutions requires a non-empty, strictly ascending sequence of
// positive sizes, each smaller than the master.
func validateResolutions(sizes []int, master int) error {
	if len(sizes) == 0 {
		return errors.New("resolution list must not be empty")
	}
	prev := 0
	for _, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("invalid resolution %d (must be positive)", n)
		}
		if n >= master {
			return fmt.Errorf("invalid resolution %d (must be below master size %d)", n, master)
		}
		if n <= prev {
			return fmt.Errorf("resolutions must be strictly ascending (%d after %d)", n, prev)
		}
		prev = n
	}
	return nil
}

func validFilter(f Filter) bool {
	for _, known := range Filters {
		if f == known {
			return true
		}
	}
	return false
}

func filterList() string {
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
