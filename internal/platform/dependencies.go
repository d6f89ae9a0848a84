package platform

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/AntoineGS/nih-bootstrap/internal/packages"
)

//go:embed dependencies.yaml
var dependencyDocument []byte

type tableEntry struct {
	Manager      packages.PackageManager `yaml:"manager"`
	Dependencies []packages.Dependency   `yaml:"dependencies"`
}

var (
	tableOnce sync.Once
	table     map[string]tableEntry
)

func parseTable(data []byte) (map[string]tableEntry, error) {
	var t map[string]tableEntry
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing dependency table: %w", err)
	}

	return t, nil
}

func lookupTable(goos string) (tableEntry, bool) {
	tableOnce.Do(func() {
		t, err := parseTable(dependencyDocument)
		if err != nil {
			// The document is compiled in; a parse failure is a build defect.
			panic(err)
		}

		table = t
	})

	entry, ok := table[goos]

	return entry, ok
}

// Dependencies returns the native build dependencies listed for goos, or nil
// when the OS has no table.
func Dependencies(goos string) []packages.Dependency {
	entry, ok := lookupTable(goos)
	if !ok {
		return nil
	}

	return slices.Clone(entry.Dependencies)
}
