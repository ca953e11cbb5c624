// Package markdown converts doc text to HTML with goldmark.
package markdown

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Options controls the goldmark extensions and renderer settings.
type Options struct {
	// UnsafeHTML passes raw HTML in doc comments through unchanged.
	UnsafeHTML  bool
	Typographer bool
	Linkify     bool
}

// Formatter renders doc text. It satisfies plugin.MarkupFormatter.
type Formatter struct {
	md goldmark.Markdown
}

// NewFormatter builds a formatter for opts. Tables and strikethrough are
// always on since doc comments use them freely.
func NewFormatter(opts Options) *Formatter {
	exts := []goldmark.Extender{extension.Table, extension.Strikethrough}
	if opts.Typographer {
		exts = append(exts, extension.Typographer)
	}
	if opts.Linkify {
		exts = append(exts, extension.Linkify)
	}

	var rendererOpts []goldmark.Option
	if opts.UnsafeHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}

	md := goldmark.New(append(rendererOpts,
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)...)
	return &Formatter{md: md}
}

// Format converts markdown to an HTML fragment. Conversion failures fall
// back to escaped text so a bad comment never drops documentation.
func (f *Formatter) Format(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(text), &buf); err != nil {
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return strings.TrimSpace(buf.String())
}
