package packages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Manager checks and installs dependencies through one package manager.
type Manager struct {
	Runner Runner
	Kind   PackageManager
}

// NewManager creates a Manager for kind. It returns ErrManagerUnknown when
// there is no command table for kind.
func NewManager(kind PackageManager, runner Runner) (*Manager, error) {
	if _, ok := managerCmds[kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrManagerUnknown, kind)
	}

	if runner == nil {
		runner = ExecRunner{}
	}

	return &Manager{Kind: kind, Runner: runner}, nil
}

// Missing queries each dependency in order and returns those that are not
// installed. A query that exits non-zero marks the dependency missing; a query
// that cannot be launched is skipped and the dependency counts as present.
// Cancelling ctx stops the queries and returns ctx.Err().
func (m *Manager) Missing(ctx context.Context, deps []Dependency) ([]Dependency, error) {
	var missing []Dependency

	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		args := CheckArgs(m.Kind, dep.Name)

		_, err := m.Runner.Run(ctx, args[0], args[1:]...)
		if ctxErr := ctx.Err(); ctxErr != nil {
			// A query killed by cancellation says nothing about the package.
			return nil, ctxErr
		}

		switch {
		case err == nil:
			slog.Debug("dependency present", slog.String("package", dep.Name))
		case ranAndFailed(err):
			slog.Debug("dependency missing", slog.String("package", dep.Name))
			missing = append(missing, dep)
		default:
			slog.Debug("dependency query could not run",
				slog.String("package", dep.Name),
				slog.String("tool", args[0]),
				slog.String("error", err.Error()))
		}
	}

	return missing, nil
}

// Install refreshes the package index and installs deps in one batch.
// An empty deps is a no-op.
func (m *Manager) Install(ctx context.Context, deps []Dependency) error {
	if len(deps) == 0 {
		return nil
	}

	refresh, install := InstallArgs(m.Kind, Names(deps))

	for _, argv := range [][]string{refresh, install} {
		slog.Debug("running package manager", slog.String("command", strings.Join(argv, " ")))

		out, err := m.Runner.Run(ctx, argv[0], argv[1:]...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInstallFailed, NewToolError(argv, out, err))
		}
	}

	return nil
}

// Instructions returns a single shell command that installs deps, or "" when
// deps is empty.
func (m *Manager) Instructions(deps []Dependency) string {
	if len(deps) == 0 {
		return ""
	}

	return managerCmds[m.Kind].instructions + " " + strings.Join(Names(deps), " ")
}
