// Package packages queries and installs native packages through the host package manager.
package packages

// PackageManager represents a supported package manager identifier.
type PackageManager string

// Supported package manager identifiers.
const (
	// Apt is the Debian/Ubuntu package manager
	Apt PackageManager = "apt"
	// Brew is the macOS package manager
	Brew PackageManager = "brew"
	// Winget is the Windows package manager
	Winget PackageManager = "winget"
)

// Dependency is a native package required to build generated projects.
type Dependency struct {
	Name string `yaml:"name"`
	Info string `yaml:"info"`
}

// Names returns the package names of deps in order.
func Names(deps []Dependency) []string {
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.Name)
	}

	return names
}
