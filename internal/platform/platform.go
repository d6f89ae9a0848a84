// Package platform provides OS detection and the native build dependencies of
// the host platform.
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/AntoineGS/nih-bootstrap/internal/packages"
)

// Supported operating system identifiers.
const (
	// OSLinux represents Linux operating systems
	OSLinux = "linux"
	// OSDarwin represents macOS
	OSDarwin = "darwin"
	// OSWindows represents Windows operating systems
	OSWindows = "windows"
)

// ErrUnsupportedPlatform is returned when installing dependencies on a platform
// without a package manager table.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Platform checks and installs the native packages needed to build generated
// plugin projects.
type Platform interface {
	// Name returns a human readable platform name.
	Name() string
	// CheckDependencies returns the dependencies that are not installed, in
	// the order of the platform list.
	CheckDependencies(ctx context.Context) ([]packages.Dependency, error)
	// InstallDependencies installs missing. An empty missing is a no-op.
	InstallDependencies(ctx context.Context, missing []packages.Dependency) error
	// InstallInstructions returns the shell command that installs missing, or
	// "" when there is nothing to install.
	InstallInstructions(missing []packages.Dependency) string
}

// managed is a Platform backed by a package manager and a dependency list.
type managed struct {
	manager *packages.Manager
	name    string
	deps    []packages.Dependency
}

func (p *managed) Name() string { return p.name }

func (p *managed) CheckDependencies(ctx context.Context) ([]packages.Dependency, error) {
	return p.manager.Missing(ctx, p.deps)
}

func (p *managed) InstallDependencies(ctx context.Context, missing []packages.Dependency) error {
	return p.manager.Install(ctx, missing)
}

func (p *managed) InstallInstructions(missing []packages.Dependency) string {
	return p.manager.Instructions(missing)
}

// unsupported is the Platform of any OS without a dependency table.
type unsupported struct {
	goos string
}

func (p unsupported) Name() string { return fmt.Sprintf("Unsupported (%s)", p.goos) }

func (unsupported) CheckDependencies(context.Context) ([]packages.Dependency, error) {
	return nil, nil
}

func (p unsupported) InstallDependencies(_ context.Context, missing []packages.Dependency) error {
	if len(missing) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p.goos)
}

func (unsupported) InstallInstructions([]packages.Dependency) string { return "" }

var displayNames = map[string]string{
	OSLinux:   "Linux",
	OSDarwin:  "macOS",
	OSWindows: "Windows",
}

// ForOS returns the Platform for goos using runner to run package manager
// commands. A nil runner runs real processes. Operating systems without a
// dependency table get the unsupported platform.
func ForOS(goos string, runner packages.Runner) (Platform, error) {
	entry, ok := lookupTable(goos)
	if !ok {
		slog.Debug("no dependency table for platform", slog.String("os", goos))
		return unsupported{goos: goos}, nil
	}

	mgr, err := packages.NewManager(entry.Manager, runner)
	if err != nil {
		return nil, fmt.Errorf("platform %s: %w", goos, err)
	}

	name := displayNames[goos]
	if name == "" {
		name = goos
	}

	return &managed{name: name, manager: mgr, deps: entry.Dependencies}, nil
}

var (
	currentOnce   sync.Once
	currentCached Platform
	currentErr    error
)

// Current returns the Platform of the running host. The probe runs once per
// process.
func Current() (Platform, error) {
	currentOnce.Do(func() {
		currentCached, currentErr = ForOS(DetectOS(), nil)
	})

	return currentCached, currentErr
}

// DetectOS returns the operating system identifier of the running host.
func DetectOS() string {
	return runtime.GOOS
}

// DetectDistro returns the Linux distribution ID from /etc/os-release.
// Returns values like "arch", "ubuntu", "fedora", "debian", etc.
func DetectDistro() string {
	return detectDistroFrom("/etc/os-release")
}

func detectDistroFrom(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // fixed system path or test fixture
	if err != nil {
		slog.Debug("unable to detect linux distribution",
			slog.String("file", path),
			slog.String("error", err.Error()),
			slog.String("fallback", "empty"))
		return ""
	}

	for _, line := range strings.Split(string(data), "\n") {
		if id, ok := strings.CutPrefix(line, "ID="); ok {
			return strings.Trim(strings.TrimSpace(id), "\"")
		}
	}

	return ""
}
