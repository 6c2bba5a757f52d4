// Package site loads the site settings object: display name, public URL,
// data file location and the club submission link. The directory core only
// reads DataPath; everything else is passed through to presentation.
package site

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// Settings is the site configuration. Zero fields take the defaults below.
type Settings struct {
	SiteName string `yaml:"site_name" json:"siteName" validate:"required"`
	// SiteURL is the public page that shareable links point at.
	SiteURL string `yaml:"site_url" json:"siteUrl" validate:"required,url"`
	// DataPath is a file path or http(s) URL of the club data file.
	DataPath        string `yaml:"data_path" json:"dataPath" validate:"required"`
	SubmitLink      string `yaml:"submit_link" json:"submitLink" validate:"omitempty,url"`
	SubmitLinkLabel string `yaml:"submit_link_label" json:"submitLinkLabel"`
}

// Defaults returns the settings used when no file overrides them.
func Defaults() Settings {
	return Settings{
		SiteName:        "Club Portal",
		SiteURL:         "http://localhost:8080/",
		DataPath:        "./data/clubs.json",
		SubmitLinkLabel: "Request a club listing or update",
	}
}

// Load reads settings from the YAML file at path on top of Defaults.
// An empty path or a missing file yields the defaults. The result is
// validated; invalid settings return an error wrapping domain.ErrValidation.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Settings{}, fmt.Errorf("site.Load: %w", err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("site.Load: parse %s: %w", path, err)
			}
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("site.Load: %w", err)
	}
	return s, nil
}

// Validate checks the settings. Errors wrap domain.ErrValidation.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
