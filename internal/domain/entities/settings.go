package entities

import (
	_ "embed"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultSettings []byte

// Settings holds the audit parameters. They are fixed at build time; the
// embedded defaults.yaml enumerates them.
type Settings struct {
	ManifestName string   `yaml:"manifest_name"`
	Extensions   []string `yaml:"extensions"`
	Workers      int      `yaml:"workers"`
}

// NewSettings decodes the embedded defaults.
func NewSettings() (*Settings, error) {
	return ParseSettings(defaultSettings)
}

// ParseSettings decodes and validates a settings document.
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// HasExtension reports whether ext (with its leading dot) is allow-listed.
// The comparison is exact and case-sensitive.
func (it *Settings) HasExtension(ext string) bool {
	return ext != "" && slices.Contains(it.Extensions, ext)
}

// Concurrency returns the number of reference checks allowed in flight.
func (it *Settings) Concurrency() int {
	if it.Workers <= 0 {
		return runtime.NumCPU()
	}
	return it.Workers
}

func (it *Settings) validate() error {
	if strings.TrimSpace(it.ManifestName) == "" {
		return errors.New("manifest_name must not be empty")
	}
	if len(it.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	for _, ext := range it.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 { //nolint:mnd // dot plus one char
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}
