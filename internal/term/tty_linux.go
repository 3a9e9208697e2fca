//go:build linux

package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal asks the tty driver directly; /dev/null is a character device
// but has no termios.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
