// Package vcs sets up git repositories and CI workflows for plugin projects.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/AntoineGS/nih-bootstrap/internal/template"
)

// Paths written by this package, relative to the repository root.
const (
	GitignorePath = ".gitignore"
	WorkflowPath  = ".github/workflows/general.yaml"
)

// CIStatus describes what SetupCI did with the workflow file.
type CIStatus int

// Workflow file outcomes.
const (
	CICreated CIStatus = iota
	CIUnchanged
	CIKept
	CIOverwritten
)

func (s CIStatus) String() string {
	switch s {
	case CICreated:
		return "created"
	case CIUnchanged:
		return "unchanged"
	case CIKept:
		return "kept"
	case CIOverwritten:
		return "overwritten"
	default:
		return fmt.Sprintf("CIStatus(%d)", int(s))
	}
}

// CIResult reports the outcome of SetupCI.
type CIResult struct {
	Path string
	// Diff is set when an existing workflow differed from the template.
	Diff   string
	Status CIStatus
}

// InitResult reports the outcome of InitRepo.
type InitResult struct {
	CI *CIResult
	// CommitErr is set when the initial commit failed. The repository itself
	// is usable.
	CommitErr error
}

// Committed reports whether the initial commit was created.
func (r *InitResult) Committed() bool {
	return r.CommitErr == nil
}

// SetupResult reports the outcome of Setup.
type SetupResult struct {
	CI               *CIResult
	GitignoreCreated bool
}

// Git runs git and writes the repository files from the template assets.
type Git struct {
	Assets *template.Assets
	// Env is appended to the environment of every git process.
	Env []string
}

// New returns a Git using assets for .gitignore and the workflow.
func New(assets *template.Assets) *Git {
	return &Git{Assets: assets}
}

func (g *Git) run(ctx context.Context, dir, op string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}

	slog.Debug("running git", slog.String("op", op), slog.String("dir", dir), slog.Any("args", args))

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		return buf.Bytes(), &GitError{Op: op, Dir: dir, Output: buf.String(), Err: err}
	}

	return buf.Bytes(), nil
}

// Installed reports whether `git --version` runs successfully.
func (g *Git) Installed(ctx context.Context) bool {
	_, err := g.run(ctx, "", "version", "--version")
	return err == nil
}

// InitRepo creates a repository on branch main in dir, writes .gitignore and,
// when ci is set, the CI workflow, then commits everything. A failed commit is
// reported in the result rather than as an error.
func (g *Git) InitRepo(ctx context.Context, dir, projectName string, ci bool) (*InitResult, error) {
	if _, err := g.run(ctx, dir, "init", "init", "-b", "main"); err != nil {
		return nil, err
	}

	if _, err := g.writeGitignore(dir); err != nil {
		return nil, err
	}

	res := &InitResult{}

	if ci {
		ciRes, err := g.SetupCI(dir, false)
		if err != nil {
			return nil, err
		}

		res.CI = ciRes
	}

	if _, err := g.run(ctx, dir, "add", "add", "."); err != nil {
		return nil, err
	}

	msg := "Initial commit for " + projectName
	if _, err := g.run(ctx, dir, "commit", "commit", "-m", msg); err != nil {
		slog.Debug("initial commit failed", slog.String("error", err.Error()))
		res.CommitErr = err
	}

	return res, nil
}

// Setup prepares the existing repository containing dir: it creates
// .gitignore when missing and, when ci is set, the CI workflow. It returns
// ErrNotRepository when dir is not inside a work tree.
func (g *Git) Setup(ctx context.Context, dir string, ci, force bool) (*SetupResult, error) {
	if _, err := g.run(ctx, dir, "rev-parse", "rev-parse", "--git-dir"); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}

		return nil, err
	}

	created, err := g.writeGitignore(dir)
	if err != nil {
		return nil, err
	}

	res := &SetupResult{GitignoreCreated: created}

	if ci {
		ciRes, err := g.SetupCI(dir, force)
		if err != nil {
			return nil, err
		}

		res.CI = ciRes
	}

	return res, nil
}

// writeGitignore writes .gitignore unless one exists. It reports whether the
// file was created.
func (g *Git) writeGitignore(dir string) (bool, error) {
	path := filepath.Join(dir, GitignorePath)

	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	text, err := g.Assets.Text(template.AssetGitignore)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // repository files are world readable
		return false, fmt.Errorf("creating .gitignore file: %w", err)
	}

	return true, nil
}

// SetupCI writes the CI workflow below dir. An existing workflow with other
// content is kept and its diff reported, unless force is set.
func (g *Git) SetupCI(dir string, force bool) (*CIResult, error) {
	text, err := g.Assets.Text(template.AssetWorkflow)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, filepath.FromSlash(WorkflowPath))
	res := &CIResult{Path: path, Status: CICreated}

	existing, err := os.ReadFile(path) //nolint:gosec // path is below the repository
	switch {
	case err == nil:
		if string(existing) == text {
			res.Status = CIUnchanged
			return res, nil
		}

		res.Diff = LineDiff(string(existing), text, WorkflowPath+" (current)", WorkflowPath+" (template)")
		if !force {
			res.Status = CIKept
			return res, nil
		}

		res.Status = CIOverwritten
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("reading CI/CD workflow file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating .github/workflows directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // repository files are world readable
		return nil, fmt.Errorf("creating CI/CD workflow file: %w", err)
	}

	return res, nil
}
