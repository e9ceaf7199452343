//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
)

//nolint:gochecknoglobals // shared default fixture
var defaultExtensions = []string{".cpp", ".h", ".cc", ".mm", ".proto", ".rc"}

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	manifestName string
	extensions   []string
	workers      int
}

// NewSettingsBuilder creates a new settings builder with the production defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		manifestName: "CMakeLists.txt",
		extensions:   slices.Clone(defaultExtensions),
		workers:      2,
	}
}

// WithManifestName sets the manifest file name.
func (b *SettingsBuilder) WithManifestName(name string) *SettingsBuilder {
	b.manifestName = name
	return b
}

// WithExtensions replaces the extension allow-list.
func (b *SettingsBuilder) WithExtensions(extensions ...string) *SettingsBuilder {
	b.extensions = extensions
	return b
}

// WithWorkers sets the number of concurrent reference checks.
func (b *SettingsBuilder) WithWorkers(workers int) *SettingsBuilder {
	b.workers = workers
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		ManifestName: b.manifestName,
		Extensions:   slices.Clone(b.extensions),
		Workers:      b.workers,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.manifestName = "CMakeLists.txt"
	b.extensions = slices.Clone(defaultExtensions)
	b.workers = 2
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		manifestName: b.manifestName,
		extensions:   slices.Clone(b.extensions),
		workers:      b.workers,
	}
}
