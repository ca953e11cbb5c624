package builtin

import (
	"fmt"
	"html"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// MemberTag introduces a member kind (@cfg, @property, @method, @event,
// @css_var, @css_mixin). Its attribute is the member's documented name.
//
// Property-like members accept "{Type} [name=default]" and emit separate
// type and default occurrences alongside the name; @cfg additionally
// accepts a trailing "(required)".
type MemberTag struct {
	plugin.BaseTag
	typed bool
}

func newMemberTag(kind model.Kind, typed bool, mk plugin.MemberKindDescriptor) *MemberTag {
	mk.Kind = kind
	return &MemberTag{
		BaseTag: plugin.BaseTag{Desc: plugin.Descriptor{
			Pattern:    string(kind),
			Tagname:    string(kind),
			Scope:      plugin.MergeScope(kind),
			Position:   plugin.PositionTop,
			MemberKind: &mk,
		}},
		typed: typed,
	}
}

func isStatic(m *model.Member) bool   { return m.Flag("static") }
func isInstance(m *model.Member) bool { return !m.Flag("static") }

// NewCfgTag defines config options.
func NewCfgTag() *MemberTag {
	return newMemberTag(model.KindCfg, true, plugin.MemberKindDescriptor{
		Category: "members",
		Title:    "Config options",
		Position: 1,
		Subsections: []plugin.Subsection{
			{Title: "Required config options", Filter: func(m *model.Member) bool { return m.Flag("required") }},
			{Title: "Optional config options", Filter: func(m *model.Member) bool { return !m.Flag("required") }, Default: true},
		},
	})
}

// NewPropertyTag defines properties.
func NewPropertyTag() *MemberTag {
	return newMemberTag(model.KindProperty, true, plugin.MemberKindDescriptor{
		Category: "members",
		Title:    "Properties",
		Position: 2,
		Subsections: []plugin.Subsection{
			{Title: "Instance properties", Filter: isInstance, Default: true},
			{Title: "Static properties", Filter: isStatic},
		},
	})
}

// NewMethodTag defines methods.
func NewMethodTag() *MemberTag {
	return newMemberTag(model.KindMethod, false, plugin.MemberKindDescriptor{
		Category: "members",
		Title:    "Methods",
		Position: 3,
		Subsections: []plugin.Subsection{
			{Title: "Instance methods", Filter: isInstance, Default: true},
			{Title: "Static methods", Filter: isStatic},
		},
	})
}

// NewEventTag defines events.
func NewEventTag() *MemberTag {
	return newMemberTag(model.KindEvent, false, plugin.MemberKindDescriptor{
		Category: "members",
		Title:    "Events",
		Position: 4,
	})
}

// NewCSSVarTag defines CSS variables.
func NewCSSVarTag() *MemberTag {
	return newMemberTag(model.KindCSSVar, true, plugin.MemberKindDescriptor{
		Category: "css",
		Title:    "CSS Variables",
		Position: 5,
	})
}

// NewCSSMixinTag defines CSS mixins.
func NewCSSMixinTag() *MemberTag {
	return newMemberTag(model.KindCSSMixin, false, plugin.MemberKindDescriptor{
		Category: "css",
		Title:    "CSS Mixins",
		Position: 6,
	})
}

// Parse reads "[{Type}] name" for typed kinds and "name" otherwise.
func (t *MemberTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	var res plugin.ParseResult
	var typ string
	if t.typed {
		typ, _ = parseType(s)
	}
	// The name may be left out and taken from code.
	spec, _ := parseName(s)

	fields := map[string]any{}
	if t.Desc.Tagname == string(model.KindCfg) {
		s.SkipHorizontalSpace()
		if s.Match(requiredRe) != "" {
			fields["required"] = true
		}
	}
	res.Occurrences = append(res.Occurrences, model.Occurrence{
		Tagname: t.Desc.Tagname,
		Value:   spec.Name,
		Fields:  fields,
		Pos:     pos,
	})
	if typ != "" {
		res.Occurrences = append(res.Occurrences, model.Occurrence{Tagname: "type", Value: typ, Pos: pos})
	}
	if spec.Default != "" {
		res.Occurrences = append(res.Occurrences, model.Occurrence{Tagname: "default", Value: spec.Default, Pos: pos})
	}
	return res
}

// Merge keeps the first non-empty documented name, else the code name,
// else the member's own name.
func (t *MemberTag) Merge(e model.Entity, docs, code []model.Occurrence) any {
	for _, side := range [][]model.Occurrence{docs, code} {
		for _, o := range side {
			if name := o.StringValue(); name != "" {
				return name
			}
		}
	}
	if m, ok := e.(*model.Member); ok && m.Name != "" {
		return m.Name
	}
	return nil
}

// PostProcess names members that were never tagged explicitly and derives
// the "required" flag of config options.
func (t *MemberTag) PostProcess(e model.Entity, occs []model.Occurrence) {
	if _, ok := e.Base().Attr(t.Desc.Tagname); !ok {
		if m, ok := e.(*model.Member); ok && m.Name != "" {
			m.SetAttr(t.Desc.Tagname, m.Name)
		}
	}
	for _, o := range occs {
		if required, _ := o.Field("required").(bool); required {
			e.Base().SetAttr("required", true)
			return
		}
	}
}

// ToHTML renders the member signature line.
func (t *MemberTag) ToHTML(ctx *plugin.RenderContext) string {
	name := ctx.StringValue()
	if name == "" {
		return ""
	}
	out := fmt.Sprintf(`<div class="signature"><strong class="%s">%s</strong>`, t.Desc.Tagname, html.EscapeString(name))
	if typ, ok := ctx.Entity.Base().Attr("type"); ok {
		if s, ok := typ.(string); ok && s != "" {
			out += fmt.Sprintf(` : <span class="type">%s</span>`, html.EscapeString(s))
		}
	}
	return out + "</div>"
}
