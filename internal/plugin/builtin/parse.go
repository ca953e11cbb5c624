package builtin

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

var (
	nameRe     = regexp.MustCompile(`^[\w$.-]+`)
	versionRe  = regexp.MustCompile(`^\d[\w.-]*`)
	requiredRe = regexp.MustCompile(`^\(required\)`)
	openBrace  = regexp.MustCompile(`^\{`)
	openOpt    = regexp.MustCompile(`^\[`)
	closeOpt   = regexp.MustCompile(`^\]`)
	equals     = regexp.MustCompile(`^=`)
	commaRe    = regexp.MustCompile(`^,`)
	defaultRe  = regexp.MustCompile(`^(?:"[^"]*"|'[^']*'|[^\]]*)`)
	thisTypes  = map[string]bool{"this": true, "This": true}
)

// parseType reads an optional {Type} group. A present but unterminated
// group is reported through the scanner and ok is false.
func parseType(s plugin.Scanner) (typ string, ok bool) {
	s.SkipHorizontalSpace()
	if !s.LookingAt(openBrace) {
		return "", true
	}
	content, ok := s.Braced()
	if !ok {
		s.Warn("unterminated {type} group")
		return "", false
	}
	return strings.TrimSpace(content), true
}

// nameSpec is a parsed "name", "[name]" or "[name=default]".
type nameSpec struct {
	Name     string
	Default  string
	Optional bool
}

// parseName reads a possibly bracketed name with an optional default.
func parseName(s plugin.Scanner) (nameSpec, bool) {
	s.SkipHorizontalSpace()
	if s.Match(openOpt) == "" {
		name := s.Match(nameRe)
		return nameSpec{Name: name}, name != ""
	}

	spec := nameSpec{Optional: true}
	s.SkipHorizontalSpace()
	spec.Name = s.Match(nameRe)
	s.SkipHorizontalSpace()
	if s.Match(equals) != "" {
		s.SkipHorizontalSpace()
		spec.Default = strings.TrimSpace(s.Match(defaultRe))
	}
	s.SkipHorizontalSpace()
	if s.Match(closeOpt) == "" {
		s.Warn("missing closing ] after optional name")
		return spec, false
	}
	return spec, spec.Name != ""
}

// isThis reports whether a type expression names the receiver.
func isThis(typ string) bool {
	return thisTypes[strings.TrimSpace(typ)]
}

// stringList converts a merged repeatable value into strings.
func stringList(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{vals}
	default:
		return nil
	}
}
