package config

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Validate checks that every key is set and that the package version is semver.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	required := []struct {
		key   string
		value string
	}{
		{"authors", c.Authors},
		{"cargo_pkg_version", c.CargoPkgVersion},
		{"vendor", c.Vendor},
		{"vendor_url", c.VendorURL},
		{"vendor_email", c.VendorEmail},
		{"nih_plug_git", c.NihPlugGit},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs.Add(NewFieldError(r.key, "", ErrMissingKey))
		}
	}

	if c.CargoPkgVersion != "" {
		if _, err := semver.StrictNewVersion(c.CargoPkgVersion); err != nil {
			errs.Add(NewFieldError("cargo_pkg_version", c.CargoPkgVersion, ErrInvalidVersion))
		}
	}

	if errs.HasErrors() {
		return errs
	}

	return nil
}
