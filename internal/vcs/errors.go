package vcs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRepository is returned when a directory is not inside a git work tree.
var ErrNotRepository = errors.New("not in a git repository")

// GitError records a failed git invocation.
type GitError struct {
	Err    error
	Op     string
	Dir    string
	Output string
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s in %s: %v", e.Op, e.Dir, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}

	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}
