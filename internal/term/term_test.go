package term

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/pbrdump/internal/config"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		mode config.ColorMode
		tty  bool
		env  map[string]string
		want bool
	}{
		{"always without tty", config.ColorAlways, false, nil, true},
		{"never on tty", config.ColorNever, true, nil, false},
		{"auto on tty", config.ColorAuto, true, nil, true},
		{"auto without tty", config.ColorAuto, false, nil, false},
		{"auto with NO_COLOR", config.ColorAuto, true, map[string]string{"NO_COLOR": "1"}, false},
		{"auto with dumb term", config.ColorAuto, true, map[string]string{"TERM": "DUMB"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.mode, tt.tty, envOf(tt.env)))
		})
	}
}

func TestConfigure_Toggles(t *testing.T) {
	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.NotEmpty(t, Red)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Red)
	assert.Empty(t, NC)
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
