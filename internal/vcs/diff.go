package vcs

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff returns a line oriented diff from before to after with "- ", "+ "
// and "  " prefixes, or "" when the texts are equal.
func LineDiff(before, after, beforeName, afterName string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()

	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("--- %s\n", beforeName))
	sb.WriteString(fmt.Sprintf("+++ %s\n", afterName))

	for _, diff := range diffs {
		lines := strings.Split(diff.Text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		for _, line := range lines {
			switch diff.Type {
			case diffmatchpatch.DiffDelete:
				sb.WriteString("- " + line + "\n")
			case diffmatchpatch.DiffInsert:
				sb.WriteString("+ " + line + "\n")
			case diffmatchpatch.DiffEqual:
				sb.WriteString("  " + line + "\n")
			}
		}
	}

	return sb.String()
}
