package plugin

import (
	"regexp"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Scanner is the view of raw doc-comment text that Parser hooks consume.
// The lexer behind it lives outside this package.
type Scanner interface {
	// SkipHorizontalSpace skips spaces and tabs, never newlines.
	SkipHorizontalSpace()

	// Ident reads an identifier, or returns "" without consuming input.
	Ident() string

	// IdentChain reads a dotted identifier such as Ext.form.Panel.
	IdentChain() string

	// Match consumes and returns the text matching re at the current
	// position, or "" if it does not match there.
	Match(re *regexp.Regexp) string

	// LookingAt reports whether re matches at the current position.
	LookingAt(re *regexp.Regexp) bool

	// Braced reads a {...} group with balanced braces and returns its
	// content. ok is false if the input does not start with "{" or the
	// group is unterminated.
	Braced() (content string, ok bool)

	// RestOfLine consumes up to the end of the current line.
	RestOfLine() string

	// Warn reports a malformed annotation at the current position.
	Warn(message string)

	// Position returns the current source position.
	Position() model.SourceFileRef
}
