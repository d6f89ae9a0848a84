package packages

// managerCmd defines the query, refresh and install commands for a package manager.
// The placeholder "{pkg}" in check is replaced with the package name; install
// receives all package names appended in one batch.
type managerCmd struct {
	check        []string // e.g. {"dpkg", "-s", "{pkg}"}
	refresh      []string // e.g. {"sudo", "apt-get", "update"}
	install      []string // e.g. {"sudo", "apt-get", "install", "-y"}
	instructions string   // copy-pasteable prefix shown to the user
}

var managerCmds = map[PackageManager]managerCmd{
	Apt: {
		check:        []string{"dpkg", "-s", "{pkg}"},
		refresh:      []string{"sudo", "apt-get", "update"},
		install:      []string{"sudo", "apt-get", "install", "-y"},
		instructions: "sudo apt-get update && sudo apt-get install -y",
	},
	Brew: {
		check:        []string{"brew", "list", "--versions", "{pkg}"},
		refresh:      []string{"brew", "update"},
		install:      []string{"brew", "install"},
		instructions: "brew update && brew install",
	},
	Winget: {
		check:        []string{"winget", "list", "--exact", "--id", "{pkg}"},
		refresh:      []string{"winget", "source", "update"},
		install:      []string{"winget", "install", "--exact", "--accept-package-agreements", "--accept-source-agreements"},
		instructions: "winget install --exact --accept-package-agreements --accept-source-agreements",
	},
}

// expandArgs replaces "{pkg}" placeholders in args with the actual package name.
func expandArgs(args []string, pkgName string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		if arg == "{pkg}" {
			result[i] = pkgName
		} else {
			result[i] = arg
		}
	}

	return result
}

// CheckArgs returns the argv that queries whether pkgName is installed.
func CheckArgs(mgr PackageManager, pkgName string) []string {
	mc, ok := managerCmds[mgr]
	if !ok {
		return nil
	}

	return expandArgs(mc.check, pkgName)
}

// InstallArgs returns the refresh and batched install argv for names.
func InstallArgs(mgr PackageManager, names []string) (refresh, install []string) {
	mc, ok := managerCmds[mgr]
	if !ok {
		return nil, nil
	}

	refresh = append([]string(nil), mc.refresh...)
	install = append(append([]string(nil), mc.install...), names...)

	return refresh, install
}
