// Package docscan turns raw doc-comment text into documentation and raw tag
// occurrences. It is a small reference lexer: tag-specific syntax is left to
// each plugin's Parse hook, which reads through the Scanner defined here.
package docscan

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

var (
	identRe      = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)
	identChainRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*)*`)
	tagLineRe    = regexp.MustCompile(`(?m)^[ \t]*@[A-Za-z_$]`)
)

// StringScanner implements plugin.Scanner over an in-memory string.
type StringScanner struct {
	input  string
	pos    int
	origin model.SourceFileRef
	warner warnings.Warner
}

// NewStringScanner creates a scanner whose first line is at origin.
func NewStringScanner(input string, origin model.SourceFileRef, w warnings.Warner) *StringScanner {
	return &StringScanner{input: input, origin: origin, warner: w}
}

func (s *StringScanner) rest() string { return s.input[s.pos:] }

// EOF reports whether all input is consumed.
func (s *StringScanner) EOF() bool { return s.pos >= len(s.input) }

func (s *StringScanner) SkipHorizontalSpace() {
	for s.pos < len(s.input) && (s.input[s.pos] == ' ' || s.input[s.pos] == '\t') {
		s.pos++
	}
}

func (s *StringScanner) Ident() string {
	return s.Match(identRe)
}

func (s *StringScanner) IdentChain() string {
	return s.Match(identChainRe)
}

func (s *StringScanner) Match(re *regexp.Regexp) string {
	loc := re.FindStringIndex(s.rest())
	if loc == nil || loc[0] != 0 {
		return ""
	}
	m := s.rest()[:loc[1]]
	s.pos += loc[1]
	return m
}

func (s *StringScanner) LookingAt(re *regexp.Regexp) bool {
	loc := re.FindStringIndex(s.rest())
	return loc != nil && loc[0] == 0
}

func (s *StringScanner) Braced() (string, bool) {
	if s.EOF() || s.input[s.pos] != '{' {
		return "", false
	}
	depth := 0
	for i := s.pos; i < len(s.input); i++ {
		switch s.input[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				content := s.input[s.pos+1 : i]
				s.pos = i + 1
				return content, true
			}
		}
	}
	return "", false
}

func (s *StringScanner) RestOfLine() string {
	end := strings.IndexByte(s.rest(), '\n')
	if end < 0 {
		end = len(s.rest())
	}
	line := s.rest()[:end]
	s.pos += end
	return strings.TrimRight(line, " \t\r")
}

func (s *StringScanner) Warn(message string) {
	if s.warner == nil {
		return
	}
	s.warner.Warn(warnings.TagSyntax, message, s.Position())
}

func (s *StringScanner) Position() model.SourceFileRef {
	return s.positionAt(s.pos)
}

func (s *StringScanner) positionAt(offset int) model.SourceFileRef {
	return model.SourceFileRef{
		Filename: s.origin.Filename,
		Linenr:   s.origin.Linenr + strings.Count(s.input[:offset], "\n"),
	}
}

// captureUntilNextTag consumes text up to the next line that starts with a
// tag and returns it.
func (s *StringScanner) captureUntilNextTag() string {
	rest := s.rest()
	end := len(rest)
	// the current line never ends the capture, even if a tag follows on it
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		if loc := tagLineRe.FindStringIndex(rest[nl+1:]); loc != nil {
			end = nl + 1 + loc[0]
		}
	}
	s.pos += end
	return rest[:end]
}
