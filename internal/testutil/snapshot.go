package testutil

import (
	"regexp"
	"strings"
)

// ansiRegex matches ANSI escape sequences for color and formatting
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes all ANSI escape sequences from a string,
// leaving only the plain text content.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NormalizeOutput prepares terminal output for golden comparison:
// - Strips ANSI escape sequences
// - Trims trailing whitespace from each line
// - Removes trailing empty lines and ends with a single newline
func NormalizeOutput(s string) string {
	lines := strings.Split(StripANSI(strings.ReplaceAll(s, "\r\n", "\n")), "\n")

	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n") + "\n"
}
