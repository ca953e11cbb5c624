package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tagdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TAGDOC_OUT", "/tmp/docs")
	path := writeConfig(t, `
warnings: ["-all", "+override_target"]
external_classes: [Object, String]
markdown:
  unsafe_html: true
logging:
  level: DEBUG
  format: json
output:
  directory: ${TAGDOC_OUT}
  metrics_file: metrics.prom
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"-all", "+override_target"}, cfg.Warnings)
	assert.Equal(t, []string{"Object", "String"}, cfg.ExternalClasses)
	assert.True(t, cfg.Markdown.UnsafeHTML)
	assert.False(t, cfg.Markdown.Linkify)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, "/tmp/docs", cfg.Output.Directory)
	assert.Equal(t, "metrics.prom", cfg.Output.MetricsFile)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "./out", cfg.Output.Directory)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, tderrors.IsCategory(err, tderrors.CategoryConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "warnings: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", *Default(), true},
		{"empty rule", Config{Warnings: []string{"-"}, Output: OutputConfig{Directory: "out"}}, false},
		{"blank external class", Config{ExternalClasses: []string{" "}, Output: OutputConfig{Directory: "out"}}, false},
		{"no output directory", Config{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, tderrors.IsCategory(err, tderrors.CategoryConfig), "got %v", err)
			}
		})
	}
}

func TestAddExternalClassOnce(t *testing.T) {
	cfg := Default()
	cfg.ExternalClasses = []string{"Object"}

	cfg.AddExternalClass("BtnOverride")
	cfg.AddExternalClass("BtnOverride")
	cfg.AddExternalClass("Object")

	assert.Equal(t, []string{"Object", "BtnOverride"}, cfg.ExternalClasses)
	assert.True(t, cfg.IsExternal("BtnOverride"))
	assert.False(t, cfg.IsExternal("Btn"))
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel("Warning"))
	assert.Equal(t, LogLevelError, NormalizeLogLevel(" error "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("loud"))
	assert.Equal(t, slog.LevelDebug, LogLevelDebug.Slog())
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	LoggingConfig{Level: LogLevelInfo, Format: LogFormatJSON}.NewLogger(&buf).Info("hello", "class", "Btn")
	assert.Contains(t, buf.String(), `"class":"Btn"`)

	buf.Reset()
	LoggingConfig{Level: LogLevelWarn, Format: LogFormatText}.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())
}
