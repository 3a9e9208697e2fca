package display

import (
	"fmt"
	"io"

	"github.com/backmassage/pbrdump/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, ` _         _      _
| |__  ___| |_ __| |_  _ _ __  _ __
| '_ \| _ \ '_/ _`+"`"+` | || | '  \| '_ \
| .__/|___/_| \__,_|\_,_|_|_|_| .__/
|_|                           |_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
