package packages

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for package operations
var (
	ErrInstallFailed  = errors.New("package installation failed")
	ErrManagerUnknown = errors.New("unknown package manager")
)

// ToolError records an external tool that failed to launch or exited non-zero,
// together with the output it produced.
type ToolError struct {
	Err    error
	Tool   string
	Output string
	Args   []string
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)

	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}

	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a new ToolError from the full argv of the command.
func NewToolError(argv []string, output []byte, err error) *ToolError {
	te := &ToolError{
		Output: string(output),
		Err:    err,
	}

	if len(argv) > 0 {
		te.Tool = argv[0]
		te.Args = argv[1:]
	}

	return te
}
