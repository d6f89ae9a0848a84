// Package template holds the project template texts and the placeholder substitution applied to them.
package template

import (
	"github.com/AntoineGS/nih-bootstrap/internal/config"
)

// Context holds the per-project values available to all templates.
// It is built once per project and never modified.
type Context struct {
	Config          *config.Config
	ProjectName     string
	UnderscoredName string
	CamelCaseName   string
	Description     string
}

// NewContext derives the identifier variants of name and bundles them with
// the description and vendor configuration.
func NewContext(name, description string, cfg *config.Config) *Context {
	underscored := Underscore(name)

	return &Context{
		Config:          cfg,
		ProjectName:     name,
		UnderscoredName: underscored,
		CamelCaseName:   CamelCase(underscored),
		Description:     description,
	}
}
