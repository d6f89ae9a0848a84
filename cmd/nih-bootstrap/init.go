package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AntoineGS/nih-bootstrap/internal/config"
	"github.com/AntoineGS/nih-bootstrap/internal/scaffold"
	"github.com/AntoineGS/nih-bootstrap/internal/state"
	"github.com/AntoineGS/nih-bootstrap/internal/template"
	"github.com/AntoineGS/nih-bootstrap/internal/vcs"
)

type initOptions struct {
	path         string
	description  string
	gui          string
	templatesDir string
	git          bool
	ci           bool
}

func newInitCmd(a *app) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:     "init <name>",
		Aliases: []string{"create-project"},
		Short:   "Initialize a new plugin project",
		Long: `Create <path>/<name> with a nih-plug plugin crate and an xtask bundler
workspace. The name may be kebab-case, snake_case, CamelCase or contain spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runWithCancellation(func(ctx context.Context) error {
				return a.runInit(ctx, args[0], opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.path, "path", "p", ".", "Directory to create the project in")
	cmd.Flags().StringVarP(&opts.description, "description", "d", scaffold.DefaultDescription, "Project description")
	cmd.Flags().BoolVarP(&opts.git, "git", "g", false, "Initialize a git repository")
	cmd.Flags().BoolVarP(&opts.ci, "ci", "c", false, "Set up CI/CD workflows (with --git)")
	cmd.Flags().StringVar(&opts.gui, "gui", scaffold.GUIIced, fmt.Sprintf("GUI framework to use %v", scaffold.SupportedGUIs()))
	cmd.Flags().StringVar(&opts.templatesDir, "templates", "", "Directory of template files overriding the built-in ones")

	return cmd
}

func loadAssets(dir string) (*template.Assets, error) {
	assets, err := template.Default()
	if err != nil {
		return nil, err
	}

	if dir == "" {
		return assets, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("templates path is not a directory: %s", dir)
	}

	return assets.Overlay(os.DirFS(dir))
}

func (a *app) runInit(ctx context.Context, name string, opts *initOptions) error {
	p := a.printer

	if err := scaffold.ValidateName(name); err != nil {
		return err
	}

	if err := scaffold.ValidateGUI(opts.gui); err != nil {
		return err
	}

	p.Step("Creating new plugin: %s.", name)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	assets, err := loadAssets(opts.templatesDir)
	if err != nil {
		return err
	}

	p.Step("Creating project structure...")

	res, err := scaffold.Create(ctx, scaffold.Options{
		Name:        name,
		Path:        opts.path,
		Description: opts.description,
		GUI:         opts.gui,
		Config:      cfg,
		Assets:      assets,
	})
	if err != nil {
		return err
	}

	p.Step("Project files created at '%s'.", res.Target)

	git := vcs.New(assets)
	gitInstalled := git.Installed(ctx)
	gitInitialized := false

	if opts.git {
		gitInitialized = a.initGit(ctx, git, gitInstalled, res.Target, name, opts.ci)
	}

	target, err := filepath.Abs(res.Target)
	if err != nil {
		target = res.Target
	}

	a.recordProject(ctx, state.ProjectRecord{
		Name: name,
		Path: target,
		GUI:  opts.gui,
		Git:  gitInitialized,
	})

	a.showNextSteps(res, name, gitInitialized, gitInstalled)

	return nil
}

// initGit sets up the repository of a new project. Failures are warnings; it
// reports whether the repository was created.
func (a *app) initGit(ctx context.Context, git *vcs.Git, installed bool, dir, name string, ci bool) bool {
	p := a.printer

	if !installed {
		p.Warn("Warning: Git is not installed. Skipping Git initialization.")
		p.Warn("Install Git and run 'git init'.")

		return false
	}

	p.Step("Setting up Git repository...")

	res, err := git.InitRepo(ctx, dir, name, ci)
	if err != nil {
		p.Warn("Warning: Failed to initialize git: %v.", err)
		p.Warn("You can manually run 'git init'.")

		return false
	}

	if res.CI != nil {
		a.reportCI(res.CI, name)
	}

	if res.Committed() {
		p.Step("Git repository initialized with initial commit.")
	} else {
		p.Warn("Warning: Failed to create initial commit.")
		p.Warn("You may need to configure git user.name and user.email.")
	}

	return true
}

func (a *app) showNextSteps(res *scaffold.Result, name string, gitInitialized, gitInstalled bool) {
	p := a.printer

	p.Blank()
	p.Step("Next steps:")
	p.Command("cd " + res.Target)

	if !gitInitialized {
		p.Command("git init")
		p.Command("git add .")
		p.Command(fmt.Sprintf("git commit -m 'Initial commit for %s'", name))
	}

	p.Blank()
	p.Step("To build project into a VST3 plugin:")
	p.Command(fmt.Sprintf("cargo xtask bundle %s --release", res.Context.UnderscoredName))
	p.Blank()
	p.Step("To check dependencies:")
	p.Command("nih-bootstrap deps")

	if gitInstalled && !gitInitialized {
		p.Hint("To add git and CI/CD later:")
		p.Command("nih-bootstrap git --ci")
	}

	p.Blank()
	p.Line("Happy coding! 🚀")
}

func (a *app) openHistory() (*state.Store, error) {
	path := a.historyPath
	if path == "" {
		def, err := state.DefaultPath()
		if err != nil {
			return nil, err
		}

		path = def
	}

	return state.Open(path)
}

// recordProject adds rec to the history and drops the oldest entries beyond
// historyKeep. Failures are warnings.
func (a *app) recordProject(ctx context.Context, rec state.ProjectRecord) {
	store, err := a.openHistory()
	if err != nil {
		a.printer.Warn("Warning: Could not open project history: %v.", err)
		return
	}
	defer store.Close() //nolint:errcheck // best-effort cleanup

	if _, err := store.Record(ctx, rec); err != nil {
		a.printer.Warn("Warning: Could not record project history: %v.", err)
		return
	}

	if err := store.Prune(ctx, a.historyKeep); err != nil {
		a.printer.Warn("Warning: Could not trim project history: %v.", err)
	}
}
