// Package config loads tagdoc's YAML configuration.
package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
)

// Config represents the application configuration
type Config struct {
	// Warnings enables or disables warning categories, e.g. "-tag_scope".
	// Rules apply in order on top of "all enabled".
	Warnings []string `yaml:"warnings,omitempty"`

	// ExternalClasses names classes that resolve without a page of their
	// own. Consumed override classes are appended while processing.
	ExternalClasses []string `yaml:"external_classes,omitempty"`

	Markdown MarkdownConfig `yaml:"markdown"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// MarkdownConfig controls doc text conversion
type MarkdownConfig struct {
	UnsafeHTML  bool `yaml:"unsafe_html"`
	Typographer bool `yaml:"typographer"`
	Linkify     bool `yaml:"linkify"`
}

// LoggingConfig selects log level and handler format
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory   string `yaml:"directory"`
	MetricsFile string `yaml:"metrics_file,omitempty"` // Prometheus textfile, written after each build
}

// Default returns a configuration with defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. ${VAR} references are
// expanded after .env files have been loaded.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tderrors.ConfigNotFound(configPath)
		}
		return nil, tderrors.ConfigInvalid(configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, tderrors.ConfigInvalid(configPath, fmt.Errorf("failed to unmarshal config: %w", err))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Directory == "" {
		c.Output.Directory = "./out"
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

// AddExternalClass records name once.
func (c *Config) AddExternalClass(name string) {
	if !c.IsExternal(name) {
		c.ExternalClasses = append(c.ExternalClasses, name)
	}
}

// IsExternal reports whether name is a known external class.
func (c *Config) IsExternal(name string) bool {
	return slices.Contains(c.ExternalClasses, name)
}
