//go:build linux

package platform

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntoineGS/nih-bootstrap/internal/packages"
	"github.com/AntoineGS/nih-bootstrap/internal/testutil"
)

func TestDetectDistro_Linux(t *testing.T) {
	t.Parallel()

	got := DetectDistro()

	if _, err := os.Stat("/etc/os-release"); err == nil {
		if got == "" {
			t.Error("DetectDistro() returned empty string, but /etc/os-release exists")
		}
	}
}

// Exercises the real process runner against a dpkg mock that only knows about
// libx11-dev.
func TestCheckDependencies_MockDpkg(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateMockScript(t, dir, "dpkg", `[ "$2" = "libx11-dev" ] && exit 0
exit 1`)
	t.Setenv("PATH", testutil.PrependPath(t, dir))

	p, err := ForOS(OSLinux, packages.ExecRunner{})
	if err != nil {
		t.Fatal(err)
	}

	missing, err := p.CheckDependencies(context.Background())
	if err != nil {
		t.Fatalf("CheckDependencies() error = %v", err)
	}

	if len(missing) != len(Dependencies(OSLinux))-1 {
		t.Fatalf("missing = %d entries, want all but libx11-dev", len(missing))
	}

	for _, dep := range missing {
		if dep.Name == "libx11-dev" {
			t.Error("libx11-dev reported missing")
		}
	}

	instructions := p.InstallInstructions(missing)
	if !strings.HasPrefix(instructions, "sudo apt-get update && sudo apt-get install -y libasound2-dev ") {
		t.Errorf("InstallInstructions() = %q", instructions)
	}
}

func TestCheckDependencies_NoDpkg(t *testing.T) {
	t.Setenv("PATH", filepath.Join(t.TempDir(), "empty"))

	p, err := ForOS(OSLinux, packages.ExecRunner{})
	if err != nil {
		t.Fatal(err)
	}

	missing, err := p.CheckDependencies(context.Background())
	if err != nil {
		t.Fatalf("CheckDependencies() error = %v", err)
	}

	if len(missing) != 0 {
		t.Errorf("missing = %v, want none when dpkg cannot run", packages.Names(missing))
	}
}
