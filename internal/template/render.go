package template

import (
	"strings"
)

// Placeholder tokens recognised in template texts.
const (
	TokenProjectName        = "%%PROJECT_NAME%%"
	TokenProjectUnderscored = "%%PROJECT_NAME_UNDERSCORED%%"
	TokenProjectCamelCase   = "%%PROJECT_NAME_CAMELCASE%%"
	TokenDescription        = "%%PROJECT_DESCRIPTION%%"
	TokenAuthors            = "%%AUTHORS%%"
	TokenVersion            = "%%CARGO_PACKAGE_VERSION%%"
	TokenVendor             = "%%VENDOR%%"
	TokenURL                = "%%URL%%"
	TokenEmail              = "%%EMAIL%%"
	TokenNihPlugGit         = "%%NIH_PLUG_GIT%%"
)

// Tokens lists every placeholder token in a fixed order.
var Tokens = []string{
	TokenProjectName,
	TokenProjectUnderscored,
	TokenProjectCamelCase,
	TokenDescription,
	TokenAuthors,
	TokenVersion,
	TokenVendor,
	TokenURL,
	TokenEmail,
	TokenNihPlugGit,
}

// Values returns the token to value pairs for ctx.
func (c *Context) Values() map[string]string {
	values := map[string]string{
		TokenProjectName:        c.ProjectName,
		TokenProjectUnderscored: c.UnderscoredName,
		TokenProjectCamelCase:   c.CamelCaseName,
		TokenDescription:        c.Description,
	}

	if c.Config != nil {
		values[TokenAuthors] = c.Config.Authors
		values[TokenVersion] = c.Config.CargoPkgVersion
		values[TokenVendor] = c.Config.Vendor
		values[TokenURL] = c.Config.VendorURL
		values[TokenEmail] = c.Config.VendorEmail
		values[TokenNihPlugGit] = c.Config.NihPlugGit
	}

	return values
}

// Render replaces every placeholder token in text with its value from ctx.
// Substituted values are not scanned again, so a description containing a
// token is written verbatim. Unknown %%...%% markers are left untouched.
func Render(text string, ctx *Context) string {
	values := ctx.Values()

	pairs := make([]string, 0, len(Tokens)*2)
	for _, token := range Tokens {
		if value, ok := values[token]; ok {
			pairs = append(pairs, token, value)
		}
	}

	return strings.NewReplacer(pairs...).Replace(text)
}
