package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/tagdoc/internal/config"
	"git.home.luguber.info/inful/tagdoc/internal/logfields"
)

// DefaultConfigPath is read when present; a missing default file means
// built-in defaults.
const DefaultConfigPath = "tagdoc.yaml"

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	// RunID tags every log line of one invocation.
	RunID string
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"tagdoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Merge a class table and render one HTML fragment per class"`
	Tags  TagsCmd  `cmd:"" help:"List registered tags in render order"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig reads the configured file. A missing file at the default path
// yields the defaults.
func LoadConfig(root *CLI) (*config.Config, error) {
	if root.Config == DefaultConfigPath {
		if _, err := os.Stat(root.Config); os.IsNotExist(err) {
			slog.Debug("No configuration file, using defaults", "path", root.Config)
			return config.Default(), nil
		}
	}
	return config.Load(root.Config)
}

// SetupLogger switches to the configured logger unless --verbose was
// given, and tags it with the run id.
func SetupLogger(g *Global, root *CLI, cfg *config.Config) *slog.Logger {
	logger := slog.Default()
	if !root.Verbose {
		logger = cfg.Logging.NewLogger(os.Stderr)
	}
	logger = logger.With(logfields.RunID(g.RunID))
	slog.SetDefault(logger)
	g.Logger = logger
	return logger
}
