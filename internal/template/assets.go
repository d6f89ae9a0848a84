package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// Asset names of the built-in template texts.
const (
	AssetMain           = "project/main.txt"
	AssetLibIced        = "project/lib_iced.txt"
	AssetEditorIced     = "project/editor.txt"
	AssetCargoProject   = "project/cargo_project.txt"
	AssetXtaskMain      = "xtask/main.rs"
	AssetCargoXtask     = "xtask/cargo_xtask.txt"
	AssetCargoWorkspace = "xtask/cargo_workspace.txt"
	AssetCargoConfig    = "xtask/cargo_config.toml"
	AssetGitignore      = "git/gitignore.txt"
	AssetWorkflow       = "git/ci_cd_general.yaml"
)

// ErrAssetNotFound is returned when a template text is not in the table.
var ErrAssetNotFound = errors.New("template asset not found")

//go:embed assets
var embedded embed.FS

// Assets is a read-only table of template texts keyed by slash-separated name.
type Assets struct {
	texts map[string]string
}

var (
	defaultOnce   sync.Once
	defaultAssets *Assets
	defaultErr    error
)

// Default returns the table built from the embedded assets. It is built once
// per process and never modified afterwards.
func Default() (*Assets, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "assets")
		if err != nil {
			defaultErr = fmt.Errorf("opening embedded assets: %w", err)
			return
		}

		defaultAssets, defaultErr = LoadAssets(sub)
	})

	return defaultAssets, defaultErr
}

// LoadAssets reads every regular file of fsys into a new table.
func LoadAssets(fsys fs.FS) (*Assets, error) {
	a := &Assets{texts: make(map[string]string)}
	if err := a.load(fsys); err != nil {
		return nil, err
	}

	return a, nil
}

// Overlay returns a copy of the table where files found in fsys replace or
// extend the existing texts.
func (a *Assets) Overlay(fsys fs.FS) (*Assets, error) {
	out := &Assets{texts: make(map[string]string, len(a.texts))}
	for k, v := range a.texts {
		out.texts[k] = v
	}

	if err := out.load(fsys); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *Assets) load(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading template asset %s: %w", path, err)
		}

		a.texts[path] = string(data)

		return nil
	})
}

// Text returns the template text stored under name.
func (a *Assets) Text(name string) (string, error) {
	text, ok := a.texts[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}

	return text, nil
}

// Require checks that all names are present.
func (a *Assets) Require(names ...string) error {
	for _, name := range names {
		if _, ok := a.texts[name]; !ok {
			return fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
	}

	return nil
}

// Names returns the sorted asset names.
func (a *Assets) Names() []string {
	names := make([]string, 0, len(a.texts))
	for name := range a.texts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
