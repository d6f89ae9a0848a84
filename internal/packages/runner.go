package packages

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// Runner runs an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs real processes. When Stdout is set the output is streamed
// there as well as captured.
type ExecRunner struct {
	Stdout io.Writer
	Stdin  io.Reader
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var buf bytes.Buffer

	var w io.Writer = &buf
	if r.Stdout != nil {
		w = io.MultiWriter(&buf, r.Stdout)
	}

	cmd.Stdout = w
	cmd.Stderr = w
	cmd.Stdin = r.Stdin

	err := cmd.Run()

	return buf.Bytes(), err
}

// exitCoder is implemented by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// ranAndFailed reports whether err comes from a process that started and exited
// unsuccessfully, as opposed to one that could not be launched at all.
func ranAndFailed(err error) bool {
	var ec exitCoder
	return errors.As(err, &ec) && ec.ExitCode() != 0
}
