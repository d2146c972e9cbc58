package display

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the width of the terminal window, or 80 if it
// cannot be determined (e.g. output is redirected to a file).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return width
}
