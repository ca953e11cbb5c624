package errors

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	te, ok := As(err)
	if !ok {
		return 1
	}

	switch te.Category {
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryInput:
		return 2 // Invalid input
	case CategoryRegistry:
		return 3 // Plugin setup error
	case CategoryRender, CategoryFileSystem:
		return 11 // Output error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	te, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return te.Error()
	}

	switch te.Category {
	case CategoryConfig, CategoryInput:
		if path, ok := te.Context["path"].(string); ok {
			return fmt.Sprintf("%s: %s", te.Message, path)
		}
		return te.Message
	default:
		return fmt.Sprintf("%s: %s", te.Category, te.Message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if te, ok := As(err); ok {
		return te.Category == CategoryInternal || te.Category == CategoryRegistry
	}
	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	te, ok := As(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}

	level := slog.LevelError
	if te.Severity == SeverityWarning {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{slog.String("category", string(te.Category))}
	for k, v := range te.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	if te.Cause != nil {
		attrs = append(attrs, slog.String("error", te.Cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), level, te.Message, attrs...)
}
