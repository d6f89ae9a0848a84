package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AntoineGS/nih-bootstrap/internal/template"
	"github.com/AntoineGS/nih-bootstrap/internal/vcs"
)

type gitOptions struct {
	ci    bool
	force bool
}

func newGitCmd(a *app) *cobra.Command {
	opts := &gitOptions{}

	cmd := &cobra.Command{
		Use:     "git",
		Aliases: []string{"setup-version-control"},
		Short:   "Add git/CI to an existing project",
		Long: `Prepare the git repository of the current directory: create .gitignore
when missing and, with --ci, the CI/CD workflow. An existing workflow that
differs from the template is shown as a diff and kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWithCancellation(func(ctx context.Context) error {
				dir, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("getting working directory: %w", err)
				}

				return a.runGit(ctx, dir, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.ci, "ci", "c", false, "Set up CI/CD workflows")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing CI/CD workflow that differs from the template")

	return cmd
}

func (a *app) runGit(ctx context.Context, dir string, opts *gitOptions) error {
	p := a.printer

	p.Step("Setting up Git...")

	assets, err := template.Default()
	if err != nil {
		return err
	}

	res, err := vcs.New(assets).Setup(ctx, dir, opts.ci, opts.force)
	if errors.Is(err, vcs.ErrNotRepository) {
		return fmt.Errorf("%w. Run 'git init' first", err)
	}

	if err != nil {
		return err
	}

	if res.GitignoreCreated {
		p.Step("Created .gitignore file.")
	}

	if res.CI != nil {
		a.reportCI(res.CI, filepath.Base(dir))
	}

	p.Step("Git setup complete.")

	if !opts.ci {
		p.Blank()
		p.Hint("To add CI/CD workflows later:")
		p.Command("nih-bootstrap git --ci")
	}

	return nil
}

func (a *app) reportCI(res *vcs.CIResult, project string) {
	p := a.printer

	p.Step("Setting up CI/CD workflows...")

	switch res.Status {
	case vcs.CICreated:
		p.Step("Created CI/CD workflow for project %s.", project)
	case vcs.CIUnchanged:
		p.Step("CI/CD workflow for project %s is up to date.", project)
	case vcs.CIKept:
		p.Warn("Existing %s differs from the template:", vcs.WorkflowPath)
		p.Diff(res.Diff)
		p.Warn("Keeping the existing workflow. Run 'nih-bootstrap git --ci --force' to replace it.")
	case vcs.CIOverwritten:
		p.Diff(res.Diff)
		p.Step("Replaced CI/CD workflow for project %s.", project)
	}
}
