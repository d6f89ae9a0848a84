package packages

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExit struct{ code int }

func (e fakeExit) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e fakeExit) ExitCode() int { return e.code }

// fakeRunner answers package queries from its maps and records every call.
type fakeRunner struct {
	missing      map[string]bool
	unlaunchable map[string]bool
	fail         map[string]error
	calls        [][]string
	output       []byte
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, argv)

	if err, ok := f.fail[strings.Join(argv, " ")]; ok {
		return f.output, err
	}

	pkg := args[len(args)-1]
	if f.unlaunchable[pkg] {
		return nil, exec.ErrNotFound
	}

	if f.missing[pkg] {
		return nil, fakeExit{code: 1}
	}

	return f.output, nil
}

var testDeps = []Dependency{
	{Name: "libasound2-dev", Info: "ALSA"},
	{Name: "libjack-jackd2-dev", Info: "JACK"},
	{Name: "libx11-dev", Info: "X11"},
	{Name: "pkg-config", Info: "pkg-config"},
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	for _, kind := range []PackageManager{Apt, Brew, Winget} {
		m, err := NewManager(kind, nil)
		require.NoError(t, err)
		assert.Equal(t, kind, m.Kind)
		assert.NotNil(t, m.Runner)
	}

	_, err := NewManager("pacman", nil)
	assert.ErrorIs(t, err, ErrManagerUnknown)
}

func TestCheckArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manager PackageManager
		want    []string
	}{
		{Apt, []string{"dpkg", "-s", "libx11-dev"}},
		{Brew, []string{"brew", "list", "--versions", "libx11-dev"}},
		{Winget, []string{"winget", "list", "--exact", "--id", "libx11-dev"}},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.manager), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CheckArgs(tt.manager, "libx11-dev"))
		})
	}
}

func TestInstallArgs(t *testing.T) {
	t.Parallel()

	refresh, install := InstallArgs(Apt, []string{"a", "b"})
	assert.Equal(t, []string{"sudo", "apt-get", "update"}, refresh)
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "a", "b"}, install)

	// The command table must not be modified by appending names.
	_, again := InstallArgs(Apt, []string{"c"})
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "c"}, again)
}

func TestMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		missing      map[string]bool
		unlaunchable map[string]bool
		name         string
		want         []string
	}{
		{
			name: "all present",
			want: []string{},
		},
		{
			name:    "some missing keeps list order",
			missing: map[string]bool{"pkg-config": true, "libasound2-dev": true},
			want:    []string{"libasound2-dev", "pkg-config"},
		},
		{
			name:    "all missing",
			missing: map[string]bool{"libasound2-dev": true, "libjack-jackd2-dev": true, "libx11-dev": true, "pkg-config": true},
			want:    []string{"libasound2-dev", "libjack-jackd2-dev", "libx11-dev", "pkg-config"},
		},
		{
			name:         "query launch failure counts as present",
			missing:      map[string]bool{"libx11-dev": true},
			unlaunchable: map[string]bool{"libjack-jackd2-dev": true},
			want:         []string{"libx11-dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{missing: tt.missing, unlaunchable: tt.unlaunchable}
			m, err := NewManager(Apt, runner)
			require.NoError(t, err)

			got, err := m.Missing(context.Background(), testDeps)
			require.NoError(t, err)

			assert.Equal(t, tt.want, append([]string{}, Names(got)...))
			assert.Len(t, runner.calls, len(testDeps), "every dependency is queried once")
			assert.Subset(t, testDeps, got)
		})
	}
}

// cancellingRunner cancels its context during the query of cancelAt and
// reports that query as killed, as exec does after a SIGINT.
type cancellingRunner struct {
	cancel   context.CancelFunc
	cancelAt string
	calls    int
}

func (r *cancellingRunner) Run(ctx context.Context, _ string, args ...string) ([]byte, error) {
	r.calls++

	if args[len(args)-1] == r.cancelAt {
		r.cancel()
		return nil, fakeExit{code: -1}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return nil, fakeExit{code: 1}
}

func TestMissingCancelledMidway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := &cancellingRunner{cancel: cancel, cancelAt: testDeps[1].Name}
	m, err := NewManager(Apt, runner)
	require.NoError(t, err)

	got, err := m.Missing(ctx, testDeps)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got, "a partial result must not be reported")
	assert.Equal(t, 2, runner.calls, "no query runs after cancellation")
}

func TestInstall(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	m, err := NewManager(Apt, runner)
	require.NoError(t, err)

	require.NoError(t, m.Install(context.Background(), testDeps[:2]))

	assert.Equal(t, [][]string{
		{"sudo", "apt-get", "update"},
		{"sudo", "apt-get", "install", "-y", "libasound2-dev", "libjack-jackd2-dev"},
	}, runner.calls)
}

func TestInstall_Empty(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	m, err := NewManager(Brew, runner)
	require.NoError(t, err)

	require.NoError(t, m.Install(context.Background(), nil))
	assert.Empty(t, runner.calls)
}

func TestInstall_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		failOn    string
		name      string
		wantCalls int
	}{
		{name: "refresh fails", failOn: "sudo apt-get update", wantCalls: 1},
		{name: "install fails", failOn: "sudo apt-get install -y libx11-dev", wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{
				fail:   map[string]error{tt.failOn: fakeExit{code: 100}},
				output: []byte("E: Unable to locate package\n"),
			}
			m, err := NewManager(Apt, runner)
			require.NoError(t, err)

			err = m.Install(context.Background(), []Dependency{{Name: "libx11-dev"}})
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrInstallFailed)

			var te *ToolError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, "sudo", te.Tool)
			assert.Equal(t, tt.failOn, strings.Join(append([]string{te.Tool}, te.Args...), " "))
			assert.Contains(t, te.Output, "Unable to locate package")
			assert.Len(t, runner.calls, tt.wantCalls)
		})
	}
}

func TestInstall_LaunchFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{fail: map[string]error{"brew update": exec.ErrNotFound}}
	m, err := NewManager(Brew, runner)
	require.NoError(t, err)

	err = m.Install(context.Background(), []Dependency{{Name: "pkg-config"}})
	assert.ErrorIs(t, err, ErrInstallFailed)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manager PackageManager
		want    string
		deps    []Dependency
	}{
		{Apt, "sudo apt-get update && sudo apt-get install -y libasound2-dev libx11-dev", []Dependency{{Name: "libasound2-dev"}, {Name: "libx11-dev"}}},
		{Brew, "brew update && brew install pkg-config", []Dependency{{Name: "pkg-config"}}},
		{Winget, "winget install --exact --accept-package-agreements --accept-source-agreements Git.Git", []Dependency{{Name: "Git.Git"}}},
		{Apt, "", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.manager)+"/"+tt.want, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{}
			m, err := NewManager(tt.manager, runner)
			require.NoError(t, err)

			first := m.Instructions(tt.deps)
			second := m.Instructions(tt.deps)

			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
			assert.Empty(t, runner.calls, "instructions must not run anything")
		})
	}
}

func TestRanAndFailed(t *testing.T) {
	t.Parallel()

	assert.True(t, ranAndFailed(fakeExit{code: 1}))
	assert.True(t, ranAndFailed(fmt.Errorf("wrapped: %w", fakeExit{code: 2})))
	assert.False(t, ranAndFailed(fakeExit{code: 0}))
	assert.False(t, ranAndFailed(exec.ErrNotFound))
	assert.False(t, ranAndFailed(errors.New("plain")))
}
