// Package ui renders console output and interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Prefix starts every status line.
const Prefix = "===>"

// Printer writes status lines. Steps and plain lines go to Out; warnings and
// errors go to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// NewPrinter returns a Printer writing to out and errOut. Nil writers default
// to os.Stdout and os.Stderr.
func NewPrinter(out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}

	if errOut == nil {
		errOut = os.Stderr
	}

	return &Printer{Out: out, Err: errOut}
}

// Step prints a progress message.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", StepStyle.Render(Prefix), fmt.Sprintf(format, args...))
}

// Hint prints a suggestion to Out with the warning prefix.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", WarnStyle.Render(Prefix), fmt.Sprintf(format, args...))
}

// Warn prints a warning.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.Err, "%s %s\n", WarnStyle.Render(Prefix), fmt.Sprintf(format, args...))
}

// Error prints an error.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Err, "%s %s\n", ErrorStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// Command prints an indented shell command.
func (p *Printer) Command(cmd string) {
	fmt.Fprintf(p.Out, "  %s\n", cmd)
}

// Item prints a list entry with an optional muted description.
func (p *Printer) Item(name, info string) {
	if info == "" {
		fmt.Fprintf(p.Out, "  - %s\n", name)
		return
	}

	fmt.Fprintf(p.Out, "  - %s - %s\n", name, MutedStyle.Render(info))
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.Out)
}

// Diff prints a line diff, colouring removed and added lines.
func (p *Printer) Diff(diff string) {
	lines := strings.Split(diff, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "- "):
			fmt.Fprintln(p.Out, ErrorStyle.UnsetBold().Render(line))
		case strings.HasPrefix(line, "+ "):
			fmt.Fprintln(p.Out, StepStyle.UnsetBold().Render(line))
		default:
			fmt.Fprintln(p.Out, line)
		}
	}
}
