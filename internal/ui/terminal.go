package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether r is a terminal, including Cygwin and MSYS
// terminals.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
