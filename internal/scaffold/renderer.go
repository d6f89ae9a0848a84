// Package scaffold writes new nih-plug projects from the template assets.
package scaffold

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/AntoineGS/nih-bootstrap/internal/template"
)

// GUIIced is the iced editor variant and the default GUI.
const GUIIced = "iced"

// guiVariant names the assets that make up one GUI flavour of the plugin crate.
type guiVariant struct {
	lib    string
	editor string
}

var guiVariants = map[string]guiVariant{
	GUIIced: {lib: template.AssetLibIced, editor: template.AssetEditorIced},
}

// SupportedGUIs returns the GUI frameworks with templates, sorted.
func SupportedGUIs() []string {
	names := make([]string, 0, len(guiVariants))
	for name := range guiVariants {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// ValidateGUI returns ErrUnsupportedGUI when gui has no templates.
func ValidateGUI(gui string) error {
	if _, ok := guiVariants[gui]; !ok {
		return fmt.Errorf("%w: %q (supported: %v)", ErrUnsupportedGUI, gui, SupportedGUIs())
	}

	return nil
}

// File is one generated file. Path is slash separated and relative to the
// project root.
type File struct {
	Path    string
	Content string
}

// step maps an asset onto an output path. Verbatim assets skip substitution.
type step struct {
	asset    string
	out      string
	verbatim bool
}

// Renderer renders a plugin crate and its xtask workspace.
type Renderer struct {
	assets  *template.Assets
	variant guiVariant
}

// NewRenderer creates a Renderer for gui. All assets it needs must be present.
func NewRenderer(assets *template.Assets, gui string) (*Renderer, error) {
	if err := ValidateGUI(gui); err != nil {
		return nil, err
	}

	r := &Renderer{assets: assets, variant: guiVariants[gui]}

	if err := assets.Require(r.assetNames()...); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) assetNames() []string {
	names := make([]string, 0, 8)
	for _, s := range r.steps("") {
		names = append(names, s.asset)
	}

	return names
}

func (r *Renderer) steps(crate string) []step {
	return []step{
		{asset: template.AssetMain, out: path.Join(crate, "src/main.rs")},
		{asset: r.variant.lib, out: path.Join(crate, "src/lib.rs")},
		{asset: r.variant.editor, out: path.Join(crate, "src/editor.rs")},
		{asset: template.AssetCargoProject, out: path.Join(crate, "Cargo.toml")},
		{asset: template.AssetXtaskMain, out: "xtask/src/main.rs", verbatim: true},
		{asset: template.AssetCargoXtask, out: "xtask/Cargo.toml"},
		{asset: template.AssetCargoWorkspace, out: "Cargo.toml"},
		{asset: template.AssetCargoConfig, out: ".cargo/config.toml", verbatim: true},
	}
}

// Files returns the rendered project files in write order: the plugin crate
// under the underscored name, then the xtask generator output.
func (r *Renderer) Files(ctx *template.Context) ([]File, error) {
	steps := r.steps(ctx.UnderscoredName)
	files := make([]File, 0, len(steps))

	for _, s := range steps {
		text, err := r.assets.Text(s.asset)
		if err != nil {
			return nil, err
		}

		if !s.verbatim {
			text = template.Render(text, ctx)
		}

		files = append(files, File{Path: s.out, Content: text})
	}

	return files, nil
}

// RenderProject writes the project files below target. It stops at the first
// filesystem failure and returns it as a *PathError.
func (r *Renderer) RenderProject(target string, ctx *template.Context) error {
	_, err := r.render(target, ctx)
	return err
}

func (r *Renderer) render(target string, ctx *template.Context) ([]string, error) {
	files, err := r.Files(ctx)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))

	for _, f := range files {
		dst := filepath.Join(target, filepath.FromSlash(f.Path))

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, &PathError{Op: "create directory", Path: filepath.Dir(dst), Err: err}
		}

		if err := os.WriteFile(dst, []byte(f.Content), 0o644); err != nil { //nolint:gosec // project sources are world readable
			return written, &PathError{Op: "write", Path: dst, Err: err}
		}

		slog.Debug("wrote project file", slog.String("path", f.Path))

		written = append(written, f.Path)
	}

	return written, nil
}
