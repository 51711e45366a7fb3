package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

// Manifest lists the datasets a single invocation should fetch.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset is one entry of a manifest.
type Dataset struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Checksum string `yaml:"checksum"` // hex SHA-256, optional
	Extract  bool   `yaml:"extract"`
}

// validate checks a dataset entry before any network work starts.
func (d Dataset) validate() error {
	return validator.Apply(
		validator.Required("name", d.Name),
		validator.MaxLen("name", d.Name, 255),
		validator.Required("url", d.URL),
		checksumRule("checksum", d.Checksum),
	)
}

// checksumRule accepts the empty string or a 64-character hex SHA-256 digest.
func checksumRule(field, value string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			raw, err := hex.DecodeString(value)
			return err == nil && len(raw) == 32
		},
		Error: validator.ValidationError{
			Field:   field,
			Message: "must be a 64-character hex SHA-256 digest",
			Kind:    validator.ValueError,
		},
	}
}

// loadManifest reads and validates a YAML manifest. Every entry is validated
// up front so a bad manifest fails before the first download starts.
func loadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("%w: manifest lists no datasets", validator.ErrInvalidValue)
	}

	for i, d := range m.Datasets {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("manifest entry %d (%s): %w", i, d.Name, err)
		}
	}

	return &m, nil
}
