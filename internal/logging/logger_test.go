package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/pbrdump/internal/config"
	"github.com/backmassage/pbrdump/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "pbrdump.log")
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_RoutesErrorsToErrWriter(t *testing.T) {
	term.Configure(config.ColorNever)
	cfg := config.DefaultConfig()
	var out, errOut bytes.Buffer
	l, err := New(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Info("copied %d files", 3)
	l.Warn("no images")
	l.Error("aborted")

	assert.Contains(t, out.String(), "[INFO] copied 3 files")
	assert.Contains(t, out.String(), "[WARN] no images")
	assert.NotContains(t, out.String(), "aborted")
	assert.Contains(t, errOut.String(), "[ERROR] aborted")
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	term.Configure(config.ColorNever)
	cfg := config.DefaultConfig()
	var out bytes.Buffer

	l, err := New(&cfg, &out, &out)
	require.NoError(t, err)
	l.Debug("hidden")
	assert.Empty(t, out.String())

	cfg.Verbose = true
	l, err = New(&cfg, &out, &out)
	require.NoError(t, err)
	assert.True(t, l.Verbose())
	l.Debug("shown")
	assert.Contains(t, out.String(), "[DEBUG] shown")
}

func TestLogger_ColorOnlyOnConsole(t *testing.T) {
	term.Configure(config.ColorAlways)
	defer term.Configure(config.ColorNever)

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "pbrdump.log")
	var out bytes.Buffer
	l, err := New(&cfg, &out, &out)
	require.NoError(t, err)
	l.Success("done")
	require.NoError(t, l.Close())

	assert.Contains(t, out.String(), term.Green)
	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "\033[")
}
