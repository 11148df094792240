package widgets

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Settings controls widget presentation. All fields are optional; the
// zero value plus DefaultSettings covers the common case.
type Settings struct {
	// Color enables ANSI styling. Off renders plain text.
	Color bool `yaml:"color"`

	// Icons enables the dir/file and entity glyphs in list widgets.
	Icons bool `yaml:"icons"`

	// DateFormat is the Go layout used for event dates.
	DateFormat string `yaml:"date_format,omitempty"`

	// MaxWidth truncates long lines (0 = no limit).
	MaxWidth int `yaml:"max_width,omitempty" validate:"min=0,max=500"`
}

// DefaultSettings returns the settings used when no YAML file is
// configured.
func DefaultSettings() *Settings {
	return &Settings{
		Color:      true,
		Icons:      true,
		DateFormat: "2006-01-02",
	}
}

// LoadSettings loads widget settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read widget settings %s: %w", path, err)
	}
	return LoadSettingsFromBytes(data, path)
}

// LoadSettingsFromBytes parses widget settings from YAML bytes. The
// name is only used in error messages.
func LoadSettingsFromBytes(data []byte, name string) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", name, err)
	}

	if err := validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("validation failed for widget settings %s: %w", name, err)
	}

	if settings.DateFormat == "" {
		settings.DateFormat = "2006-01-02"
	}

	return settings, nil
}
