package input

import (
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin/builtin"
)

// Position is where the class is defined.
func (c *ClassSpec) Position() model.SourceFileRef {
	return model.SourceFileRef{Filename: c.File, Linenr: c.Line}
}

// NewClass creates the class entity. A declaration with an "override" key
// makes it an override of that class.
func (c *ClassSpec) NewClass() *model.Class {
	cls := model.NewClass(c.Name, c.Position())
	if c.DeclaredName != nil {
		cls.DeclaredName = *c.DeclaredName
	}
	if target, ok := c.Declaration["override"].(string); ok && target != "" {
		cls.IsOverride = true
		cls.OverrideTarget = target
	}
	return cls
}

// NewDeclaration returns the definition call, or nil when the walker saw
// none.
func (c *ClassSpec) NewDeclaration() *model.Declaration {
	if len(c.Declaration) == 0 {
		return nil
	}
	call, _ := c.Declaration["call"].(string)
	return &model.Declaration{Call: call, Properties: c.Declaration, Pos: c.Position()}
}

// Position is where the member is defined.
func (m *MemberSpec) Position(cls *ClassSpec) model.SourceFileRef {
	file := m.File
	if file == "" {
		file = cls.File
	}
	return model.SourceFileRef{Filename: file, Linenr: m.Line}
}

// NewMember creates the member entity with its code-side occurrences.
func (m *MemberSpec) NewMember(cls *ClassSpec) *model.Member {
	pos := m.Position(cls)
	mem := model.NewMember(m.Kind, m.Name, pos)
	if m.ID != "" {
		mem.ID = m.ID
	}
	for _, o := range m.Code.occurrences(m.Kind, m.Name, pos) {
		mem.AddCodeTag(o)
	}
	return mem
}

func (c CodeInfo) occurrences(kind model.Kind, name string, pos model.SourceFileRef) []model.Occurrence {
	occ := func(tagname string, v any) model.Occurrence {
		return model.Occurrence{Tagname: tagname, Value: v, Pos: pos}
	}

	out := []model.Occurrence{occ(string(kind), name)}
	if c.Type != "" {
		out = append(out, occ("type", c.Type))
	}
	if c.Default != "" {
		out = append(out, occ("default", c.Default))
	}
	for _, p := range c.Params {
		out = append(out, occ("params", builtin.Param{Name: p.Name, Type: p.Type, Default: p.Default}))
	}
	if c.Return != "" {
		out = append(out, occ("return", builtin.Return{Type: c.Return}))
	}
	for _, f := range c.Flags {
		out = append(out, occ(f, true))
	}
	return out
}
