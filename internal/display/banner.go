// Package display provides the startup banner and small output helpers.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/restamp/internal/term"
)

// PrintBanner prints the ASCII art banner; colored when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` ____           _
|  _ \ ___  ___| |_ __ _ _ __ ___  _ __
| |_) / _ \/ __| __/ _`+"`"+` | '_ `+"`"+` _ \| '_ \
|  _ <  __/\__ \ || (_| | | | | | | |_) |
|_| \_\___||___/\__\__,_|_| |_| |_| .__/
                                  |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
