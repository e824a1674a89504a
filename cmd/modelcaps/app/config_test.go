package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// isolate runs the test from an empty directory with an empty home so no
// real config or .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"MODELCAPS_CATALOG_URL", "MODELCAPS_TIMEOUT", "MODELCAPS_OUTPUT_PATH",
		"MODELCAPS_LOG_LEVEL", "MODELCAPS_FORMAT", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

// TestLoadConfig verifies defaults when nothing is configured.
func TestLoadConfig(t *testing.T) {
	isolate(t)

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.CatalogURL != constants.OpenRouterModelsURL {
		t.Errorf("CatalogURL = %s, want %s", config.CatalogURL, constants.OpenRouterModelsURL)
	}
	if config.Timeout != constants.CatalogFetchTimeout {
		t.Errorf("Timeout = %v, want %v", config.Timeout, constants.CatalogFetchTimeout)
	}
	if config.LogFormat != "auto" || config.LogOutput != "stderr" {
		t.Errorf("log defaults = %s/%s, want auto/stderr", config.LogFormat, config.LogOutput)
	}
	if config.OutputPath != "" || config.LogLevel != "" {
		t.Errorf("unexpected values: output_path=%q log_level=%q", config.OutputPath, config.LogLevel)
	}
}

// TestConfig_EnvironmentVariables verifies prefixed environment variables.
func TestConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)
	t.Setenv("MODELCAPS_TIMEOUT", "30s")
	t.Setenv("MODELCAPS_OUTPUT_PATH", "/tmp/caps.json")
	t.Setenv("MODELCAPS_FORMAT", "yaml")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "/tmp/caps.json", config.OutputPath)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}

// TestConfig_Files verifies config files and .env loading.
func TestConfig_Files(t *testing.T) {
	dir := isolate(t)

	t.Run("standard location", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".modelcaps.yaml"),
			[]byte("catalog_url: https://mirror.example.com/models\ntimeout: 5s\n"), 0o644))
		t.Cleanup(func() { os.Remove(filepath.Join(dir, ".modelcaps.yaml")) })

		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "https://mirror.example.com/models", config.CatalogURL)
		assert.Equal(t, 5*time.Second, config.Timeout)
		assert.NotEmpty(t, config.ConfigFile)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(dir, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_path: out.json\n"), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "out.json", config.OutputPath)
		assert.Equal(t, path, config.ConfigFile)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		var configErr *errors.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("dotenv", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MODELCAPS_TIMEOUT=45s\n"), 0o644))
		t.Cleanup(func() {
			os.Remove(filepath.Join(dir, ".env"))
			os.Unsetenv("MODELCAPS_TIMEOUT")
		})

		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, config.Timeout)
	})
}

// TestConfig_Validate verifies invalid values are rejected.
func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{CatalogURL: constants.OpenRouterModelsURL, Timeout: time.Second}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, false},
		{"no scheme", func(c *Config) { c.CatalogURL = "openrouter.ai/api/v1/models" }, false},
		{"bad scheme", func(c *Config) { c.CatalogURL = "ftp://openrouter.ai/models" }, false},
		{"unparseable", func(c *Config) { c.CatalogURL = "http://[::1" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var configErr *errors.ConfigError
			assert.ErrorAs(t, err, &configErr)
		})
	}

	t.Run("from environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("MODELCAPS_TIMEOUT", "-1s")
		_, err := LoadConfig("")
		require.Error(t, err)
	})
}

// TestConfig_UpdateFromFlags verifies flags override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	c := &Config{Format: "yaml", LogLevel: "info"}

	c.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, c.Verbose)
	assert.True(t, c.NoColor)
	assert.Equal(t, "yaml", c.Format, "empty flag keeps config value")
	assert.Equal(t, "info", c.LogLevel)

	c.UpdateFromFlags(false, true, false, "json", "error")
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, "error", c.LogLevel)
	assert.True(t, c.Quiet)
}
