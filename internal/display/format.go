package display

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size (B, KiB, MiB, ...).
// Negative values are rendered as zero.
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatCount renders n with thousands separators (e.g. "12,288").
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatElapsed rounds d to a tenth of a second for summary lines.
func FormatElapsed(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
