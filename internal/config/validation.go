package config

import (
	"fmt"
	"strings"

	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
)

// Validate checks the configuration after defaults have been applied.
// Warning category names are checked by the warnings package when the
// rules are applied; here only their shape is checked.
func (c *Config) Validate() error {
	for _, rule := range c.Warnings {
		if strings.TrimLeft(strings.TrimSpace(rule), "+-") == "" {
			return tderrors.ValidationFailed("warnings", fmt.Sprintf("empty rule %q", rule))
		}
	}
	for i, name := range c.ExternalClasses {
		if strings.TrimSpace(name) == "" {
			return tderrors.ValidationFailed("external_classes", fmt.Sprintf("empty class name at index %d", i))
		}
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		return tderrors.ValidationFailed("output.directory", "must not be empty")
	}
	return nil
}
