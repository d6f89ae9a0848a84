package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntoineGS/nih-bootstrap/internal/config"
	"github.com/AntoineGS/nih-bootstrap/internal/template"
)

// DefaultDescription is used when no project description is given.
const DefaultDescription = "Rust audio plugin project using nih-plug"

const stagingPattern = ".nih-bootstrap-*"

// crateIdent matches the crate names Underscore may produce that cargo and
// rustc both accept.
var crateIdent = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Options configures Create.
type Options struct {
	// Config supplies the vendor fields. Nil loads it with config.Load.
	Config *config.Config
	// Assets supplies the template texts. Nil uses template.Default.
	Assets      *template.Assets
	Name        string
	Path        string
	Description string
	// GUI selects the editor framework. Empty means GUIIced.
	GUI string
}

// Result describes a created project.
type Result struct {
	Context *template.Context
	Target  string
	// Files are the written paths relative to Target, slash separated.
	Files []string
}

// ValidateName rejects names that are empty, not a single path element, or
// whose underscored form is not a valid crate identifier.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}

	if crate := template.Underscore(name); !crateIdent.MatchString(crate) {
		return fmt.Errorf("%w: %q gives crate name %q, which must start with a letter and contain only a-z, 0-9 and _",
			ErrInvalidName, name, crate)
	}

	return nil
}

// Create renders a new project into Path/Name. The files are written to a
// staging directory next to the target, which is renamed into place once
// every file succeeded. A failure leaves no partial tree behind.
func Create(ctx context.Context, opts Options) (*Result, error) {
	if err := ValidateName(opts.Name); err != nil {
		return nil, err
	}

	gui := opts.GUI
	if gui == "" {
		gui = GUIIced
	}

	if err := ValidateGUI(gui); err != nil {
		return nil, err
	}

	parent := opts.Path
	if parent == "" {
		parent = "."
	}

	target := filepath.Join(parent, opts.Name)
	if err := checkAbsent(target); err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	assets := opts.Assets
	if assets == nil {
		def, err := template.Default()
		if err != nil {
			return nil, err
		}

		assets = def
	}

	renderer, err := NewRenderer(assets, gui)
	if err != nil {
		return nil, err
	}

	description := opts.Description
	if description == "" {
		description = DefaultDescription
	}

	tctx := template.NewContext(opts.Name, description, cfg)

	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, &PathError{Op: "create directory", Path: parent, Err: err}
	}

	staging, err := os.MkdirTemp(parent, stagingPattern)
	if err != nil {
		return nil, &PathError{Op: "create staging directory", Path: parent, Err: err}
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rmErr := os.RemoveAll(staging); rmErr != nil {
			slog.Debug("failed to remove staging directory",
				slog.String("path", staging),
				slog.String("error", rmErr.Error()))
		}
	}()

	slog.Debug("rendering project",
		slog.String("name", opts.Name),
		slog.String("staging", staging),
		slog.String("gui", gui))

	files, err := renderer.render(staging, tctx)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// MkdirTemp creates 0700 directories.
	if err := os.Chmod(staging, 0o755); err != nil { //nolint:gosec // project root is world readable
		return nil, &PathError{Op: "chmod", Path: staging, Err: err}
	}

	// Rename replaces an empty directory on some systems; check again right
	// before moving.
	if err := checkAbsent(target); err != nil {
		return nil, err
	}

	if err := os.Rename(staging, target); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrTargetExists, target)
		}

		return nil, &PathError{Op: "rename", Path: target, Err: err}
	}

	committed = true

	return &Result{Target: target, Files: files, Context: tctx}, nil
}

func checkAbsent(target string) error {
	_, err := os.Lstat(target)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrTargetExists, target)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return &PathError{Op: "stat", Path: target, Err: err}
	}
}
