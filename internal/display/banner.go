package display

import (
	"fmt"
	"os"

	"github.com/backmassage/pixelbench/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _          _ ____                  _
|  _ \(_)_  _____| | __ )  ___ _ __   ___| |__
| |_) | \ \/ / _ \ |  _ \ / _ \ '_ \ / __| '_ \
|  __/| |>  <  __/ | |_) |  __/ | | | (__| | | |
|_|   |_/_/\_\___|_|____/ \___|_| |_|\___|_| |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
