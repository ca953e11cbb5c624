package builtin

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// ExtendsTag names the parent class. It comes from "@extends Name" or the
// "extend" key of a class declaration; the doc side wins.
type ExtendsTag struct {
	plugin.BaseTag
}

// NewExtendsTag creates the @extends tag.
func NewExtendsTag() *ExtendsTag {
	return &ExtendsTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  "extends",
		Tagname:  "extends",
		Scope:    plugin.ScopeClass,
		Position: plugin.PositionHeader - 10,
	}}}
}

func (t *ExtendsTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	name := s.IdentChain()
	if name == "" {
		s.Warn("@extends requires a class name")
		return plugin.ParseResult{}
	}
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: "extends", Value: name, Pos: pos}}}
}

func (t *ExtendsTag) ParseFromDeclaration(_ *model.Class, decl *model.Declaration) []model.Occurrence {
	parent := decl.String("extend")
	if parent == "" {
		return nil
	}
	return []model.Occurrence{{Tagname: "extends", Value: parent, Pos: decl.Pos}}
}

func (t *ExtendsTag) ToHTML(ctx *plugin.RenderContext) string {
	parent := ctx.StringValue()
	if parent == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="extends">Extends: <a href="#!/api/%[1]s">%[1]s</a></div>`, html.EscapeString(parent))
}

// ListTag is a repeatable list of class names, such as @mixins, @alias or
// @requires. Doc-side and declaration-side names are unioned, doc first.
type ListTag struct {
	plugin.BaseTag
	title   string
	declare func(decl *model.Declaration) []string
}

func newListTag(word, title string, declare func(*model.Declaration) []string) *ListTag {
	return &ListTag{
		BaseTag: plugin.BaseTag{Desc: plugin.Descriptor{
			Pattern:    word,
			Tagname:    word,
			Repeatable: true,
			Scope:      plugin.ScopeClass,
			Position:   plugin.PositionHeader - 5,
		}},
		title:   title,
		declare: declare,
	}
}

// NewMixinsTag creates the @mixins tag.
func NewMixinsTag() *ListTag {
	return newListTag("mixins", "Mixins", func(d *model.Declaration) []string { return d.Strings("mixins") })
}

// NewRequiresTag creates the @requires tag.
func NewRequiresTag() *ListTag {
	return newListTag("requires", "Requires", func(d *model.Declaration) []string { return d.Strings("requires") })
}

// NewAliasTag creates the @alias tag. An "xtype" declaration key is
// shorthand for a "widget." alias.
func NewAliasTag() *ListTag {
	return newListTag("alias", "Aliases", func(d *model.Declaration) []string {
		aliases := d.Strings("alias")
		for _, x := range d.Strings("xtype") {
			aliases = append(aliases, "widget."+x)
		}
		return aliases
	})
}

func (t *ListTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	var res plugin.ParseResult
	for {
		name := s.IdentChain()
		if name == "" {
			break
		}
		res.Occurrences = append(res.Occurrences, model.Occurrence{Tagname: t.Desc.Tagname, Value: name, Pos: pos})
		s.SkipHorizontalSpace()
		if s.Match(commaRe) == "" {
			break
		}
		s.SkipHorizontalSpace()
	}
	if len(res.Occurrences) == 0 {
		s.Warn(fmt.Sprintf("@%s requires a name", t.Desc.Pattern))
	}
	return res
}

func (t *ListTag) ParseFromDeclaration(_ *model.Class, decl *model.Declaration) []model.Occurrence {
	var out []model.Occurrence
	for _, name := range t.declare(decl) {
		out = append(out, model.Occurrence{Tagname: t.Desc.Tagname, Value: name, Pos: decl.Pos})
	}
	return out
}

// Merge unions both sides, keeping first-seen order.
func (t *ListTag) Merge(_ model.Entity, docs, code []model.Occurrence) any {
	seen := make(map[string]bool)
	var names []string
	for _, side := range [][]model.Occurrence{docs, code} {
		for _, o := range side {
			n := o.StringValue()
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

func (t *ListTag) ToHTML(ctx *plugin.RenderContext) string {
	names := stringList(ctx.Value)
	if len(names) == 0 {
		return ""
	}
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = "<li>" + html.EscapeString(n) + "</li>"
	}
	return fmt.Sprintf(`<div class="%s"><h4>%s</h4><ul>%s</ul></div>`, t.Desc.Tagname, t.title, strings.Join(items, ""))
}

// Aside is one entry of @aside.
type Aside struct {
	Kind string
	Name string
}

// AsideTag links guides, videos or examples: "@aside guide getting_started".
// It relies on the default repeatable merge, so its attribute is []any of Aside.
type AsideTag struct {
	plugin.BaseTag
}

// NewAsideTag creates the @aside tag.
func NewAsideTag() *AsideTag {
	return &AsideTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:    "aside",
		Tagname:    "aside",
		Repeatable: true,
		Scope:      plugin.ScopeAll,
		Position:   plugin.PositionTop + 20,
	}}}
}

var asideKinds = map[string]bool{"guide": true, "video": true, "example": true}

func (t *AsideTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	kind := s.Ident()
	if !asideKinds[kind] {
		s.Warn(fmt.Sprintf("unknown @aside type: %q", kind))
		return plugin.ParseResult{}
	}
	s.SkipHorizontalSpace()
	name := s.Match(nameRe)
	if name == "" {
		s.Warn("@aside requires a name")
		return plugin.ParseResult{}
	}
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: "aside", Value: Aside{Kind: kind, Name: name}, Pos: pos}}}
}

func (t *AsideTag) ToHTML(ctx *plugin.RenderContext) string {
	values, ok := ctx.Value.([]any)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		a, ok := v.(Aside)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, `<div class="aside %s"><a href="#!/%s/%s">%s</a></div>`,
			a.Kind, a.Kind, html.EscapeString(a.Name), html.EscapeString(a.Name))
	}
	return b.String()
}
