package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for scaffold operations.
var (
	// ErrTargetExists is returned when the project directory already exists.
	ErrTargetExists = errors.New("target directory already exists")
	// ErrInvalidName is returned for names that cannot be a single directory.
	ErrInvalidName = errors.New("invalid project name")
	// ErrUnsupportedGUI is returned for a GUI framework without templates.
	ErrUnsupportedGUI = errors.New("unsupported GUI framework")
)

// PathError records a filesystem failure while writing a project.
type PathError struct {
	Err  error
	Op   string
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
