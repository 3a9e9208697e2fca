// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because both logging and the banner
// need them. [Configure] sets them once during startup; when colors are
// disabled the variables are empty strings, so concatenation is a no-op.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/pbrdump/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// Configure resolves the color mode against stdout and the environment and
// sets the package-level ANSI variables. Call once during startup (from
// [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	set(Resolve(mode, IsTerminal(os.Stdout), os.Getenv))
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// Resolve decides whether colors should be on. Auto mode requires a TTY,
// an unset NO_COLOR (https://no-color.org) and a TERM other than "dumb".
func Resolve(mode config.ColorMode, tty bool, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tty &&
			getenv("NO_COLOR") == "" &&
			strings.ToLower(getenv("TERM")) != "dumb"
	}
}

func set(on bool) {
	if !on {
		Red, Green, Yellow, Blue, Cyan, Magenta, NC = "", "", "", "", "", "", ""
		return
	}
	Red = "\033[1;91m"
	Green = "\033[1;92m"
	Yellow = "\033[1;93m"
	Blue = "\033[1;94m"
	Cyan = "\033[1;96m"
	Magenta = "\033[1;95m"
	NC = "\033[0m"
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(f)
}
