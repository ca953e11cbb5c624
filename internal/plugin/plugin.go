// Package plugin defines the tag plugin contract and the registry that
// resolves which plugin handles which annotation.
//
// A tag plugin owns one annotation pattern (the word after "@") and one
// tagname (the attribute key it produces on entities). Beyond Tag itself
// every capability is an optional interface discovered by type assertion:
//
//   - Parser: reads the annotation from raw doc-comment text
//   - PostProcessor: derives attributes once an entity's occurrences are known
//   - Merger: reconciles doc-side and code-side occurrences into one value
//   - Formatter: converts embedded markup before rendering
//   - HTMLRenderer: produces the final HTML fragment
//   - DeclarationParser: infers occurrences from a structured class declaration
//
// Hooks are never called directly by unrelated code; the merge engine and
// renderer query the Registry for them.
package plugin

import (
	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Tag is implemented by every tag plugin.
type Tag interface {
	// Descriptor returns the plugin's static configuration.
	Descriptor() *Descriptor
}

// ParseResult is what a Parser returns for one annotation.
type ParseResult struct {
	// Occurrences are the records produced, usually exactly one.
	Occurrences []model.Occurrence

	// CaptureDoc asks the scanner to attach the free text following the tag
	// to the last occurrence as multi-line documentation.
	CaptureDoc bool
}

// Parser reads the annotation at pos. The scanner is positioned right after
// the "@pattern" keyword.
type Parser interface {
	Tag
	Parse(s Scanner, pos model.SourceFileRef) ParseResult
}

// PostProcessor runs once per entity after all occurrences are collected,
// whether or not the tag occurred. occs may be empty.
type PostProcessor interface {
	Tag
	PostProcess(e model.Entity, occs []model.Occurrence)
}

// Merger reconciles doc-side and code-side occurrences into the attribute
// value. Returning nil removes the attribute.
type Merger interface {
	Tag
	Merge(e model.Entity, docs, code []model.Occurrence) any
}

// MarkupFormatter converts lightweight markup to HTML.
type MarkupFormatter interface {
	Format(markup string) string
}

// Formatter is the pre-render hook. It may rewrite ctx.Value.
type Formatter interface {
	Tag
	Format(ctx *RenderContext, f MarkupFormatter)
}

// HTMLRenderer is the final rendering hook.
type HTMLRenderer interface {
	Tag
	ToHTML(ctx *RenderContext) string
}

// DeclarationParser infers code-side occurrences from a class declaration.
type DeclarationParser interface {
	Tag
	ParseFromDeclaration(cls *model.Class, decl *model.Declaration) []model.Occurrence
}

// BaseTag carries a descriptor. Plugins embed it and implement only the
// hooks they need.
type BaseTag struct {
	Desc Descriptor
}

// Descriptor returns the embedded descriptor.
func (b *BaseTag) Descriptor() *Descriptor {
	return &b.Desc
}
