// Package display provides the banner and human-readable formatting for the
// end-of-run summary output.
package display

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration at a precision matching its size
// (e.g. "853ms", "2.41s", "1m32s").
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}

// FormatPixels returns a human-readable pixel count ("512 px", "3.1 Mpx").
func FormatPixels(n uint64) string {
	if n < 1_000_000 {
		return fmt.Sprintf("%d px", n)
	}
	return fmt.Sprintf("%.1f Mpx", float64(n)/1e6)
}

// FormatCount inserts thousands separators ("1,234,567").
func FormatCount(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
