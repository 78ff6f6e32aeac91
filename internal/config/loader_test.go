package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/functional/internal/config"
)

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	yamlContent := `
logging:
  level: debug
  format: json
demo:
  suites: [curry, combinator]
  counter_start: 10
  factorial_of: 6
`
	cfg, err := config.LoadFromReader(strings.NewReader(yamlContent), config.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, []string{"curry", "combinator"}, cfg.Demo.Suites)
	assert.Equal(t, uint64(10), cfg.Demo.CounterStart)
	assert.Equal(t, 6, cfg.Demo.FactorialOf)
	assert.Equal(t, 10, cfg.Demo.FibonacciOf)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	tomlContent := `
[logging]
level = "warn"
format = "console"

[demo]
suites = ["typeclass"]
fibonacci_of = 12
`
	cfg, err := config.LoadFromReader(strings.NewReader(tomlContent), config.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, zerolog.WarnLevel, cfg.Logging.ParseLevel())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{"typeclass"}, cfg.Demo.Suites)
	assert.Equal(t, 12, cfg.Demo.FibonacciOf)
	assert.Equal(t, uint64(1), cfg.Demo.CounterStart)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("FGPDEMO_TEST_LEVEL", "error")

	cfg, err := config.LoadFromReader(strings.NewReader("logging:\n  level: ${FGPDEMO_TEST_LEVEL}\n"), config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Logging.ParseLevel())
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[demo]\nfactorial_of = 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Demo.FactorialOf)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]config.Format{
		"a.yaml": config.FormatYAML,
		"a.YML":  config.FormatYAML,
		"a.toml": config.FormatTOML,
	} {
		got, err := config.DetectFormat(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := config.DetectFormat("config.json")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".yaml, .yml, .toml")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("logging: [unclosed"), config.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}
