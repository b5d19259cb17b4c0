package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstat/internal/config"
	"github.com/katalvlaran/lvstat/latex"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lvstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_EmptyFile_UsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultEnvironment, cfg.Latex.Environment)
	assert.Equal(t, config.DefaultPrecision, cfg.Latex.Precision)
	assert.InDelta(t, config.DefaultAlpha, cfg.Hotelling.Alpha, 1e-12)
	assert.Equal(t, config.DefaultFormat, cfg.Output.Format)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
}

func TestLoadConfig_ValidFile_Unmarshals(t *testing.T) {
	content := `latex:
  environment: pmatrix
  precision: 3
hotelling:
  alpha: 0.01
output:
  format: table
logging:
  level: debug
`
	cfg, err := config.LoadConfig(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, "pmatrix", cfg.Latex.Environment)
	assert.Equal(t, 3, cfg.Latex.Precision)
	assert.InDelta(t, 0.01, cfg.Hotelling.Alpha, 1e-12)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LVSTAT_HOTELLING_ALPHA", "0.1")
	t.Setenv("LVSTAT_OUTPUT_FORMAT", "yaml")

	cfg, err := config.LoadConfig(writeConfig(t, "hotelling:\n  alpha: 0.2\n"))
	require.NoError(t, err)

	assert.InDelta(t, 0.1, cfg.Hotelling.Alpha, 1e-12)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"alpha zero", "hotelling:\n  alpha: 0\n", config.ErrInvalidAlpha},
		{"alpha one", "hotelling:\n  alpha: 1\n", config.ErrInvalidAlpha},
		{"precision", "latex:\n  precision: -5\n", config.ErrInvalidPrecision},
		{"format", "output:\n  format: html\n", config.ErrInvalidFormat},
		{"level", "logging:\n  level: loud\n", config.ErrInvalidLevel},
		{"environment", "latex:\n  environment: tabular\n", latex.ErrUnknownEnvironment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tc.content))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	config.LoggingConfig{Level: "info"}.NewLogger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	config.LoggingConfig{Level: "DEBUG"}.NewLogger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
