package docscan

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

var (
	commentOpenRe  = regexp.MustCompile(`^\s*/\*\*?`)
	commentCloseRe = regexp.MustCompile(`\*/\s*$`)
	leadingStarRe  = regexp.MustCompile(`(?m)^[ \t]*\* ?`)
	blankLinesRe   = regexp.MustCompile(`\n{3,}`)
)

// Comment is the result of parsing one doc comment.
type Comment struct {
	Doc         string
	Occurrences []model.Occurrence
}

// StripComment removes comment delimiters and leading asterisks. It also
// returns how many leading lines were dropped, so positions stay accurate.
func StripComment(raw string) (string, int) {
	s := commentOpenRe.ReplaceAllString(raw, "")
	s = commentCloseRe.ReplaceAllString(s, "")
	s = leadingStarRe.ReplaceAllString(s, "")
	trimmed := strings.TrimLeft(s, "\n")
	dropped := len(s) - len(trimmed)
	return strings.TrimRight(trimmed, " \t\r\n"), dropped
}

// Parse splits comment text into free documentation and tag occurrences.
// Tags are "@word" at the start of the text or after whitespace; unknown
// tags are warned about and kept as documentation text.
func Parse(text string, origin model.SourceFileRef, reg *plugin.Registry, w warnings.Warner) Comment {
	s := NewStringScanner(text, origin, w)
	var doc strings.Builder
	var out Comment

	for !s.EOF() {
		idx := nextTag(text, s.pos)
		if idx < 0 {
			doc.WriteString(text[s.pos:])
			break
		}
		doc.WriteString(text[s.pos:idx])
		s.pos = idx + 1
		word := s.Ident()
		tagPos := s.positionAt(idx)

		tag, ok := reg.FindByPattern(word)
		if !ok {
			if w != nil {
				w.Warn(warnings.TagUnknown, fmt.Sprintf("unsupported tag: @%s", word), tagPos)
			}
			doc.WriteString("@" + word)
			continue
		}

		parser, ok := tag.(plugin.Parser)
		if !ok {
			out.Occurrences = append(out.Occurrences, model.Occurrence{Tagname: tag.Descriptor().Tagname, Value: true, Pos: tagPos})
			continue
		}

		res := parser.Parse(s, tagPos)
		for i := range res.Occurrences {
			if res.Occurrences[i].Pos == (model.SourceFileRef{}) {
				res.Occurrences[i].Pos = tagPos
			}
		}
		if res.CaptureDoc {
			captured := strings.TrimSpace(s.captureUntilNextTag())
			if n := len(res.Occurrences); n > 0 {
				res.Occurrences[n-1].Doc = captured
			}
		}
		out.Occurrences = append(out.Occurrences, res.Occurrences...)
	}

	out.Doc = strings.TrimSpace(blankLinesRe.ReplaceAllString(doc.String(), "\n\n"))
	return out
}

// nextTag finds the next "@" that starts a tag: at a word boundary and
// followed by an identifier character.
func nextTag(text string, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}
		if i > 0 {
			prev := text[i-1]
			if prev != ' ' && prev != '\t' && prev != '\n' {
				continue
			}
		}
		if i+1 < len(text) && identRe.MatchString(text[i+1:i+2]) {
			return i
		}
	}
	return -1
}

// Annotate parses a raw doc comment and stores the result on e: free text
// becomes the documentation and occurrences become doc-side tags.
func Annotate(e model.Entity, raw string, origin model.SourceFileRef, reg *plugin.Registry, w warnings.Warner) {
	text, dropped := StripComment(raw)
	origin.Linenr += dropped
	c := Parse(text, origin, reg, w)
	base := e.Base()
	base.Doc = c.Doc
	for _, o := range c.Occurrences {
		base.AddDocTag(o)
	}
}
