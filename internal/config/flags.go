package config

// This file binds CLI flags onto a Config. Flags are grouped into paths,
// pyramid, markers, and display. Negated flags (e.g. --no-color) are
// applied after parsing so Config defaults hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// FlagState holds flags that are applied after parsing rather than written
// straight into Config.
type FlagState struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every pbrdump flag on fs, writing into cfg. Call
// [FlagState.Apply] once fs has been parsed.
//
// Because pflag stores the last occurrence of a repeated flag, --dir may
// appear anywhere in the argument list and the last one wins.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *FlagState {
	st := &FlagState{}
	definePathFlags(fs, cfg)
	definePyramidFlags(fs, cfg)
	defineMarkerFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, st)
	return st
}

// definePathFlags registers -d/--dir.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.RootDir, "dir", "d", cfg.RootDir, "Root directory holding material folders")
}

// definePyramidFlags registers --resolutions and --filter.
func definePyramidFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntSliceVar(&cfg.Resolutions, "resolutions", cfg.Resolutions, "Derived bucket sizes, ascending")
	fs.Var(&filterValue{&cfg.Filter}, "filter", "Resample filter: "+filterList())
}

// defineMarkerFlags registers the skip/exclude markers and the legacy
// placeholder switch.
func defineMarkerFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.SkipSuffix, "skip-suffix", cfg.SkipSuffix, "File suffix marking a material with no real images")
	fs.StringVar(&cfg.ExcludeSubstring, "exclude", cfg.ExcludeSubstring, "Ignore files whose name contains this text")
	fs.BoolVar(&cfg.MaterializeMissing, "materialize-missing", cfg.MaterializeMissing,
		"Create an empty file for a missing copy source instead of failing")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, st *FlagState) {
	fs.BoolVar(&st.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&st.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// Apply copies post-parse flag values into cfg and normalizes the root path.
func (st *FlagState) Apply(cfg *Config) {
	if st.noColor {
		cfg.ColorMode = ColorNever
	} else if st.forceColor {
		cfg.ColorMode = ColorAlways
	}
	cfg.RootDir = NormalizeDirArg(cfg.RootDir)
}

// filterValue adapts Filter to pflag.Value.
type filterValue struct{ p *Filter }

func (f *filterValue) String() string { return string(*f.p) }
func (f *filterValue) Type() string   { return "filter" }
func (f *filterValue) Set(s string) error {
	v := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !validFilter(v) {
		return fmt.Errorf("invalid filter %q (use one of %s)", s, filterList())
	}
	*f.p = v
	return nil
}
