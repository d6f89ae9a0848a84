package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntoineGS/nih-bootstrap/internal/packages"
	"github.com/AntoineGS/nih-bootstrap/internal/platform"
)

var errInstallDeclined = errors.New("installation cancelled")

type depsOptions struct {
	install bool
	yes     bool
}

func newDepsCmd(a *app) *cobra.Command {
	opts := &depsOptions{}

	cmd := &cobra.Command{
		Use:     "deps",
		Aliases: []string{"check-dependencies"},
		Short:   "Check and install required dependencies",
		Long: `Check the native packages needed to build nih-plug plugins on this
platform. Missing packages are listed with the command that installs them, or
installed directly with --install.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWithCancellation(func(ctx context.Context) error {
				return a.runDeps(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.install, "install", "i", false, "Install missing dependencies automatically")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation before installing")

	return cmd
}

func (a *app) runDeps(ctx context.Context, opts *depsOptions) error {
	p := a.printer

	plat, err := a.platform(nil)
	if err != nil {
		return err
	}

	name := plat.Name()
	if a.osOverride == "" && platform.DetectOS() == platform.OSLinux {
		if distro := platform.DetectDistro(); distro != "" {
			name = fmt.Sprintf("%s (%s)", name, distro)
		}
	}

	p.Step("Checking dependencies for %s.", name)

	missing, err := plat.CheckDependencies(ctx)
	if err != nil {
		return err
	}

	if len(missing) == 0 {
		p.Step("All required dependencies are installed.")
		return nil
	}

	p.Blank()
	p.Hint("Missing dependencies:")

	for _, dep := range missing {
		p.Item(dep.Name, dep.Info)
	}

	if !opts.install {
		p.Blank()
		p.Hint("To install missing dependencies:")
		p.Line("%s", plat.InstallInstructions(missing))
		p.Blank()
		p.Line("Or run: nih-bootstrap deps --install to install them automatically.")

		return nil
	}

	if !opts.yes && a.interactive() {
		ok, err := a.confirm(fmt.Sprintf("Install %d missing package(s)?", len(missing)), packages.Names(missing))
		if err != nil {
			return err
		}

		if !ok {
			return errInstallDeclined
		}
	}

	installer, err := a.platform(packages.ExecRunner{Stdout: a.out, Stdin: a.in})
	if err != nil {
		return err
	}

	p.Blank()
	p.Step("Installing missing dependencies...")

	if err := installer.InstallDependencies(ctx, missing); err != nil {
		return err
	}

	p.Step("Installation complete.")

	return nil
}
