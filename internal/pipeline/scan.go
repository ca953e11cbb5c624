package pipeline

import (
	"git.home.luguber.info/inful/tagdoc/internal/docscan"
	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

// scan builds the class table: it parses every doc comment into doc-side
// occurrences and reads code-side occurrences from declarations.
func (p *Pipeline) scan(st *State) {
	for i := range st.File.Classes {
		spec := &st.File.Classes[i]
		cls := spec.NewClass()
		if spec.Comment != "" {
			docscan.Annotate(cls, spec.Comment, spec.Position(), p.registry, p.warner)
		}
		p.engine.ApplyDeclaration(cls, spec.NewDeclaration())

		for j := range spec.Members {
			ms := &spec.Members[j]
			m := ms.NewMember(spec)
			if ms.Comment != "" {
				docscan.Annotate(m, ms.Comment, ms.Position(spec), p.registry, p.warner)
			}
			// Static members live in their own id space, so their id is
			// final before the uniqueness check.
			if m.IsStatic() && m.ID == model.MemberID(m.MemberKind, m.Name, false) {
				m.ID = model.MemberID(m.MemberKind, m.Name, true)
			}
			if err := cls.AddMember(m); err != nil {
				p.warner.Warn(warnings.MemberDuplicate, err.Error(), m.Position())
			}
		}

		// Names were checked unique when the file was decoded.
		if err := st.Table.Add(cls); err != nil {
			p.log.Error("Dropping class", logfields.Class(cls.Name), logfields.Error(err))
		}
	}
}
