package ui

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled decides whether to emit ANSI styling for mode ("auto",
// "always", or "never"). In auto mode color is used only when out is a
// terminal, NO_COLOR is unset, and TERM is not "dumb".
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if out == nil {
		return false
	}
	return term.IsTerminal(int(out.Fd()))
}
