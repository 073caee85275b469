package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func IsInteractive() bool {
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether w is a terminal. Writers that are not files
// never are.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
