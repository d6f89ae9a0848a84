// Package main provides the CLI entry point for nih-bootstrap.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AntoineGS/nih-bootstrap/internal/packages"
	"github.com/AntoineGS/nih-bootstrap/internal/platform"
	"github.com/AntoineGS/nih-bootstrap/internal/ui"
)

var version = "dev"

const defaultHistoryKeep = 100

// knownOS lists the values accepted by --os.
var knownOS = []string{platform.OSLinux, platform.OSDarwin, platform.OSWindows}

// app carries the streams, global flags and replaceable collaborators of one
// CLI invocation.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	printer *ui.Printer

	// platformFor selects the platform; nil uses the platform package.
	platformFor func(goos string, runner packages.Runner) (platform.Platform, error)
	// interactive reports whether prompts can be shown.
	interactive func() bool
	// confirm asks a yes/no question.
	confirm func(title string, items []string) (bool, error)

	osOverride  string
	historyPath string
	// historyKeep caps the number of remembered projects.
	historyKeep int
	verbose     bool
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	a := &app{
		in:          in,
		out:         out,
		errOut:      errOut,
		printer:     ui.NewPrinter(out, errOut),
		historyKeep: defaultHistoryKeep,
	}

	a.interactive = func() bool { return ui.IsTerminal(a.in) }
	a.confirm = func(title string, items []string) (bool, error) {
		return ui.Confirm(title, items, a.in, a.out)
	}

	return a
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)

	if err := newRootCmd(a).Execute(); err != nil {
		a.printer.Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nih-bootstrap",
		Version: version,
		Short:   "Bootstrapper for nih-plug plugin development on macOS, Windows and Linux",
		Long: `nih-bootstrap scaffolds Rust audio plugin projects built with nih-plug.

It creates the plugin crate and its xtask bundler workspace, optionally sets up
git and a CI/CD workflow, and checks the native build dependencies of the host.

Vendor details are read from ./data/general_info.toml when present.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			if a.osOverride != "" && !slices.Contains(knownOS, a.osOverride) {
				return fmt.Errorf("invalid OS override: %s (must be one of %v)", a.osOverride, knownOS)
			}

			return nil
		},
	}

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&a.osOverride, "os", "", "Override OS detection (linux, darwin or windows)")
	_ = rootCmd.PersistentFlags().MarkHidden("os")

	rootCmd.AddCommand(newInitCmd(a), newDepsCmd(a), newGitCmd(a), newHistoryCmd(a))

	return rootCmd
}

// platform returns the platform to check or install on. A nil runner runs
// real processes with captured output.
func (a *app) platform(runner packages.Runner) (platform.Platform, error) {
	goos := a.osOverride
	if goos == "" {
		goos = platform.DetectOS()
	}

	if a.platformFor != nil {
		return a.platformFor(goos, runner)
	}

	if a.osOverride == "" && runner == nil {
		return platform.Current()
	}

	return platform.ForOS(goos, runner)
}

func runWithCancellation(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nOperation canceled by user")
			cancel()
		case <-ctx.Done():
		}
	}()

	return fn(ctx)
}
