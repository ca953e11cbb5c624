package builtin

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// FlagTag is a boolean marker such as @private or @static. Its attribute is
// true when the tag occurs on the doc side or the declaration says so.
type FlagTag struct {
	plugin.BaseTag
	// declKey, when set, reads the flag from a class declaration.
	declKey string
}

func newFlagTag(word string, scope plugin.MergeScope) *FlagTag {
	return &FlagTag{BaseTag: plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  word,
		Tagname:  word,
		Scope:    scope,
		Position: plugin.PositionHeader,
	}}}
}

func NewPrivateTag() *FlagTag   { return newFlagTag("private", plugin.ScopeAll) }
func NewProtectedTag() *FlagTag { return newFlagTag("protected", plugin.ScopeAll) }
func NewReadonlyTag() *FlagTag  { return newFlagTag("readonly", plugin.ScopePropertyLike) }
func NewAbstractTag() *FlagTag  { return newFlagTag("abstract", plugin.ScopeAll) }
func NewTemplateTag() *FlagTag  { return newFlagTag("template", plugin.ScopeMethod) }

// NewSingletonTag marks singleton classes; "singleton: true" in the
// declaration counts as well.
func NewSingletonTag() FlagDeclarationTag {
	t := newFlagTag("singleton", plugin.ScopeClass)
	t.declKey = "singleton"
	return FlagDeclarationTag{t}
}

// Parse records the flag. Flags take no arguments.
func (t *FlagTag) Parse(_ plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: t.Desc.Tagname, Value: true, Pos: pos}}}
}

// ToHTML renders a signature badge.
func (t *FlagTag) ToHTML(ctx *plugin.RenderContext) string {
	if on, _ := ctx.Value.(bool); !on {
		return ""
	}
	return fmt.Sprintf(`<span class="signature %s">%s</span>`, t.Desc.Tagname, t.Desc.Tagname)
}

// FlagDeclarationTag is a FlagTag that also reads a declaration key.
type FlagDeclarationTag struct {
	*FlagTag
}

// ParseFromDeclaration reports the flag when the declaration sets it.
func (t FlagDeclarationTag) ParseFromDeclaration(_ *model.Class, decl *model.Declaration) []model.Occurrence {
	if !decl.Bool(t.declKey) {
		return nil
	}
	return []model.Occurrence{{Tagname: t.Desc.Tagname, Value: true, Pos: decl.Pos}}
}

// ChainableTag marks methods returning their receiver. Besides the explicit
// @chainable it derives the flag from "@return {this}".
type ChainableTag struct {
	*FlagTag
}

// NewChainableTag creates the @chainable tag.
func NewChainableTag() ChainableTag {
	return ChainableTag{newFlagTag("chainable", plugin.ScopeMethod)}
}

// PostProcess sets chainable when the merged return type is the receiver.
func (t ChainableTag) PostProcess(e model.Entity, occs []model.Occurrence) {
	if len(occs) > 0 {
		return
	}
	ret, ok := e.Base().Attr("return")
	if !ok {
		return
	}
	if r, ok := ret.(Return); ok && isThis(r.Type) {
		e.Base().SetAttr(t.Desc.Tagname, true)
	}
}

// StaticTag marks static members and moves them to the static id space.
type StaticTag struct {
	*FlagTag
}

// NewStaticTag creates the @static tag.
func NewStaticTag() StaticTag {
	return StaticTag{newFlagTag("static", plugin.ScopeMember)}
}

// PostProcess rewrites a conventional member id to its static form. The
// scan stage normally settles static ids already; the rewrite is refused
// when the static id is taken on the owning class.
func (t StaticTag) PostProcess(e model.Entity, _ []model.Occurrence) {
	m, ok := e.(*model.Member)
	if !ok || !m.Flag(t.Desc.Tagname) {
		return
	}
	if m.ID != model.MemberID(m.MemberKind, m.Name, false) {
		return
	}
	id := model.MemberID(m.MemberKind, m.Name, true)
	cls := m.Class()
	if cls == nil {
		m.ID = id
		return
	}
	if err := cls.RenameMember(m, id); err != nil {
		slog.Warn("Keeping member id", logfields.Class(cls.Name), logfields.Member(m.ID), logfields.Position(m.Position()), logfields.Error(err))
	}
}
