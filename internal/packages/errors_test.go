package packages

import (
	"errors"
	"testing"
)

func TestToolError(t *testing.T) {
	baseErr := errors.New("exit status 100")
	toolErr := NewToolError([]string{"sudo", "apt-get", "update"}, []byte("E: could not lock\n"), baseErr)

	var te *ToolError
	if !errors.As(toolErr, &te) {
		t.Fatal("Should be ToolError type")
	}

	if te.Tool != "sudo" {
		t.Errorf("Tool = %q, want %q", te.Tool, "sudo")
	}

	if len(te.Args) != 2 || te.Args[0] != "apt-get" || te.Args[1] != "update" {
		t.Errorf("Args = %v", te.Args)
	}

	if !errors.Is(toolErr, baseErr) {
		t.Error("ToolError should wrap underlying error")
	}

	// Check error message format
	msg := toolErr.Error()
	if msg != "sudo apt-get update: exit status 100\nE: could not lock" {
		t.Errorf("Error() = %q", msg)
	}
}

func TestToolError_NoOutput(t *testing.T) {
	toolErr := NewToolError([]string{"brew", "update"}, nil, errors.New("boom"))

	if msg := toolErr.Error(); msg != "brew update: boom" {
		t.Errorf("Error() = %q, want %q", msg, "brew update: boom")
	}
}

func TestPackagesSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want error
		name string
	}{
		{
			name: "install_failed",
			err:  ErrInstallFailed,
			want: ErrInstallFailed,
		},
		{
			name: "manager_unknown",
			err:  ErrManagerUnknown,
			want: ErrManagerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is() = false, want true")
			}
		})
	}
}
