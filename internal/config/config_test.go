package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/textures/materials", "/textures/materials"},
		{"single trailing slash", "/textures/materials/", "/textures/materials"},
		{"multiple trailing slashes", "/textures/materials///", "/textures/materials"},
		{"root path", "/", "/"},
		{"relative path", "materials", "materials"},
		{"relative with slash", "materials/", "materials"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "_dump", cfg.DumpDirName)
	assert.Equal(t, 2048, cfg.MasterSize)
	assert.Equal(t, "2048x2048", cfg.MasterBucket())
	assert.Equal(t, []int{8, 16, 32, 64, 128, 256, 512, 1024}, cfg.Resolutions)
	assert.Equal(t, ".png", cfg.ImageExt)
	assert.Equal(t, ".ignore", cfg.SkipSuffix)
	assert.Equal(t, "review", cfg.ExcludeSubstring)
	assert.Equal(t, FilterLinear, cfg.Filter)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.MaterializeMissing)
}

func TestDefaultConfig_ResolutionsAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolutions[0] = 4
	assert.Equal(t, 8, DefaultResolutions[0])
}

func TestDefaultResolutions_Doubling(t *testing.T) {
	for i := 1; i < len(DefaultResolutions); i++ {
		assert.Equal(t, DefaultResolutions[i-1]*2, DefaultResolutions[i])
	}
}

func TestBucketName(t *testing.T) {
	assert.Equal(t, "8x8", BucketName(8))
	assert.Equal(t, "1024x1024", BucketName(1024))
}

func TestValidate_Resolutions(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []int
		wantErr bool
	}{
		{"default is valid", DefaultResolutions, false},
		{"single size", []int{64}, false},
		{"empty", nil, true},
		{"zero", []int{0, 8}, true},
		{"negative", []int{-8}, true},
		{"descending", []int{16, 8}, true},
		{"duplicate", []int{8, 8}, true},
		{"equals master", []int{8, 2048}, true},
		{"above master", []int{4096}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RootDir = "/materials"
			cfg.Resolutions = tt.sizes
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EnumsAndRequired(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with root", func(*Config) {}, false},
		{"missing root", func(c *Config) { c.RootDir = "" }, true},
		{"bad color", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"bad filter", func(c *Config) { c.Filter = "bicubic" }, true},
		{"lanczos filter", func(c *Config) { c.Filter = FilterLanczos }, false},
		{"empty skip suffix", func(c *Config) { c.SkipSuffix = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.RootDir = "/materials"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadEnv(&cfg, map[string]string{
		"PBRDUMP_DIR":         "/srv/materials",
		"PBRDUMP_RESOLUTIONS": "16,64,256",
		"PBRDUMP_FILTER":      "lanczos",
		"PBRDUMP_VERBOSE":     "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "/srv/materials", cfg.RootDir)
	assert.Equal(t, []int{16, 64, 256}, cfg.Resolutions)
	assert.Equal(t, FilterLanczos, cfg.Filter)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ".ignore", cfg.SkipSuffix, "unset variables keep defaults")
}

func TestLoadEnv_BadValue(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadEnv(&cfg, map[string]string{"PBRDUMP_RESOLUTIONS": "8,big"})
	assert.Error(t, err)
}

func parseArgs(t *testing.T, cfg *Config, args ...string) error {
	t.Helper()
	fs := pflag.NewFlagSet("pbrdump", pflag.ContinueOnError)
	st := BindFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	st.Apply(cfg)
	return nil
}

func TestBindFlags_DirLastWins(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, parseArgs(t, &cfg, "--dir", "/a", "-v", "--dir", "/b/"))
	assert.Equal(t, "/b", cfg.RootDir)
	assert.True(t, cfg.Verbose)
}

func TestBindFlags_KeepsEnvValuesAsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RootDir = "/from/env"
	require.NoError(t, parseArgs(t, &cfg))
	assert.Equal(t, "/from/env", cfg.RootDir)
}

func TestBindFlags_Pyramid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, parseArgs(t, &cfg, "--resolutions", "32,128", "--filter", "CatmullRom"))
	assert.Equal(t, []int{32, 128}, cfg.Resolutions)
	assert.Equal(t, FilterCatmullRom, cfg.Filter)
}

func TestBindFlags_InvalidFilter(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, parseArgs(t, &cfg, "--filter", "bicubic"))
}

func TestBindFlags_Color(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ColorMode
	}{
		{"default", nil, ColorAuto},
		{"force", []string{"--color"}, ColorAlways},
		{"disable", []string{"--no-color"}, ColorNever},
		{"disable wins", []string{"--color", "--no-color"}, ColorNever},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, parseArgs(t, &cfg, tt.args...))
			assert.Equal(t, tt.want, cfg.ColorMode)
		})
	}
}

func TestBindFlags_Markers(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, parseArgs(t, &cfg,
		"--skip-suffix", ".skip", "--exclude", "preview", "--materialize-missing"))
	assert.Equal(t, ".skip", cfg.SkipSuffix)
	assert.Equal(t, "preview", cfg.ExcludeSubstring)
	assert.True(t, cfg.MaterializeMissing)
}
