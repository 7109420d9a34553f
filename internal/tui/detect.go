package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output written to w should be styled.
//
// Returns false if:
//   - NO_COLOR is set (https://no-color.org)
//   - w is not an *os.File attached to a terminal (pipes, files, buffers)
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
