//go:build unit

package entities_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cmakeaudit/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should decode the embedded defaults", func(t *testing.T) {
		t.Parallel()

		// given / when
		settings, err := entities.NewSettings()

		// then
		require.NoError(t, err)
		assert.Equal(t, "CMakeLists.txt", settings.ManifestName)
		assert.Equal(t, []string{".cpp", ".h", ".cc", ".mm", ".proto", ".rc"}, settings.Extensions)
		assert.Equal(t, runtime.NumCPU(), settings.Concurrency())
	})
}

func TestParseSettings(t *testing.T) {
	t.Parallel()

	t.Run("should reject an empty manifest name", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("manifest_name: ''\nextensions: [.cpp]\n")

		// when
		_, err := entities.ParseSettings(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "manifest_name")
	})

	t.Run("should reject extensions without a leading dot", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("manifest_name: CMakeLists.txt\nextensions: [cpp]\n")

		// when
		_, err := entities.ParseSettings(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"cpp"`)
	})

	t.Run("should reject malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("extensions: [.cpp\n")

		// when
		_, err := entities.ParseSettings(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse settings")
	})

	t.Run("should honour an explicit worker count", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte("manifest_name: CMakeLists.txt\nextensions: [.cpp]\nworkers: 3\n")

		// when
		settings, err := entities.ParseSettings(data)

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, settings.Concurrency())
	})
}

func TestSettingsHasExtension(t *testing.T) {
	t.Parallel()

	settings, err := entities.NewSettings()
	require.NoError(t, err)

	tests := []struct {
		ext  string
		want bool
	}{
		{ext: ".cpp", want: true},
		{ext: ".proto", want: true},
		{ext: ".rc", want: true},
		{ext: ".CPP", want: false},
		{ext: ".hpp", want: false},
		{ext: "cpp", want: false},
		{ext: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			// when
			got := settings.HasExtension(tt.ext)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}
