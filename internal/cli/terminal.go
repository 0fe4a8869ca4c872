package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ProgressWriter returns out when it is a terminal and io.Discard
// otherwise, so spinners never pollute pipes or files.
func ProgressWriter(out io.Writer) io.Writer {
	if IsTerminal(out) {
		return out
	}
	return io.Discard
}

// TerminalWidth returns the width of stdout, or fallback when it is not
// a terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
