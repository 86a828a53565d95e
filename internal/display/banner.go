// Package display renders the banner and the dry-run plan table.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := `                 _           _
 _   _ _ __   __| | __ _ ___| |__
| | | | '_ \ / _' |/ _' / __| '_ \
| |_| | | | | (_| | (_| \__ \ | | |
 \__,_|_| |_|\__,_|\__,_|___/_| |_|
`
	fmt.Fprint(os.Stdout, color.New(color.FgHiMagenta, color.Bold).Sprint(banner))
}
