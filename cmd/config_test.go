package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Default(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	require.NoError(t, err)

	// Should have default values
	assert.Equal(t, DefaultConfig(), config)
	assert.True(t, config.StrictMode)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	// Create config directory and file
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	yamlContent := `
strictmode: false
logging:
  level: debug
  format: console
mcsd:
  sourceurl: "https://example.com/fhir"
  allowedresourcetypes:
    - Organization
    - Endpoint
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "libfhir.yml"), []byte(yamlContent), 0644))

	// Change to temp directory so config/libfhir.yml is found
	t.Chdir(tempDir)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, config.StrictMode)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "https://example.com/fhir", config.MCSD.SourceURL)
	assert.Equal(t, []string{"Organization", "Endpoint"}, config.MCSD.AllowedResourceTypes)
}

func TestLoadConfig_FromEnvironmentVariables(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LIBFHIR_STRICTMODE", "false")
	t.Setenv("LIBFHIR_LOGGING_LEVEL", "warn")
	t.Setenv("LIBFHIR_MCSD_SOURCEURL", "http://env-test:8080/fhir")

	config, err := LoadConfig()
	require.NoError(t, err)

	// Environment variables should override defaults
	assert.False(t, config.StrictMode)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "http://env-test:8080/fhir", config.MCSD.SourceURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LIBFHIR_LOGGING_LEVEL", "loud")

		_, err := LoadConfig()

		require.ErrorContains(t, err, "invalid config")
		assert.ErrorContains(t, err, "Level")
	})
	t.Run("source URL", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("LIBFHIR_MCSD_SOURCEURL", "not a url")

		_, err := LoadConfig()

		require.ErrorContains(t, err, "SourceURL")
	})
	t.Run("malformed file", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "config"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config", "libfhir.yml"), []byte("logging: ["), 0644))
		t.Chdir(tempDir)

		_, err := LoadConfig()

		require.ErrorContains(t, err, "failed to read config file")
	})
}
