package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		setup      func() *ValidationErrors
		name       string
		wantMsg    string
		wantErrors bool
	}{
		{
			name: "empty_validation_errors",
			setup: func() *ValidationErrors {
				return &ValidationErrors{}
			},
			wantErrors: false,
			wantMsg:    "no validation errors",
		},
		{
			name: "multiple_errors",
			setup: func() *ValidationErrors {
				ve := &ValidationErrors{}
				ve.Add(errors.New("error 1"))
				ve.Add(errors.New("error 2"))
				return ve
			},
			wantErrors: true,
			wantMsg:    "error 1; error 2",
		},
		{
			name: "nil_is_ignored",
			setup: func() *ValidationErrors {
				ve := &ValidationErrors{}
				ve.Add(nil)
				return ve
			},
			wantErrors: false,
			wantMsg:    "no validation errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := tt.setup()

			if ve.HasErrors() != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v", ve.HasErrors(), tt.wantErrors)
			}

			msg := ve.Error()
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("Error() = %q, want to contain %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	fieldErr := NewFieldError("cargo_pkg_version", "one", ErrInvalidVersion)

	var fe *FieldError
	if !errors.As(fieldErr, &fe) {
		t.Fatal("Should be FieldError type")
	}

	if fe.Key != "cargo_pkg_version" {
		t.Errorf("Key = %q, want %q", fe.Key, "cargo_pkg_version")
	}

	if fe.Value != "one" {
		t.Errorf("Value = %q, want %q", fe.Value, "one")
	}

	if !errors.Is(fieldErr, ErrInvalidVersion) {
		t.Error("FieldError should wrap underlying error")
	}

	if got, want := fieldErr.Error(), "key cargo_pkg_version (one): not a semantic version"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	cause := errors.New("boom")
	err := NewParseError("data/general_info.toml", cause)

	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ParseError should match ErrInvalidConfig")
	}

	if !errors.Is(err, cause) {
		t.Error("ParseError should wrap its cause")
	}

	if got, want := err.Error(), "parsing config (data/general_info.toml): boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
