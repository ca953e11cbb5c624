package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// Section holds the members of one member kind.
type Section struct {
	Kind        model.Kind
	Category    string
	Title       string
	Subsections []Subsection
	// HideTitle is set when all members fell into the default subsection,
	// so its title adds nothing.
	HideTitle bool
}

// Subsection is a titled group of members within a section.
type Subsection struct {
	Title   string
	Members []*model.Member
}

var titler = cases.Title(language.English)

// kindTitle derives a heading for member kinds registered without a title.
func kindTitle(k model.Kind) string {
	return titler.String(strings.ReplaceAll(string(k), "_", " ")) + "s"
}

// Sections groups a class's members by member-kind descriptor, in
// descriptor order. Kinds without members are left out.
func (r *Renderer) Sections(cls *model.Class) []Section {
	var out []Section
	for _, mk := range r.registry.MemberKindDescriptors() {
		members := cls.MembersOfKind(mk.Kind)
		if len(members) == 0 {
			continue
		}
		sec := Section{Kind: mk.Kind, Category: mk.Category, Title: mk.Title}
		if sec.Title == "" {
			sec.Title = kindTitle(mk.Kind)
		}
		sec.Subsections, sec.HideTitle = split(members, mk.Subsections)
		out = append(out, sec)
	}
	return out
}

// split assigns each member to the first subsection whose filter accepts
// it, falling back to the default subsection. The second result reports
// whether every member landed in the default one.
func split(members []*model.Member, subs []plugin.Subsection) ([]Subsection, bool) {
	if len(subs) == 0 {
		return []Subsection{{Members: members}}, true
	}
	def := 0
	for i, s := range subs {
		if s.Default {
			def = i
			break
		}
	}
	groups := make([][]*model.Member, len(subs))
	for _, m := range members {
		idx := def
		for i, s := range subs {
			if s.Filter != nil && s.Filter(m) {
				idx = i
				break
			}
		}
		groups[idx] = append(groups[idx], m)
	}

	var out []Subsection
	onlyDefault := true
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		if i != def {
			onlyDefault = false
		}
		out = append(out, Subsection{Title: subs[i].Title, Members: g})
	}
	return out, onlyDefault
}
