package plugin

import (
	"fmt"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// MergeScope is the set of entity kinds a plugin's merge and post-process
// hooks apply to: one exact kind, a named group, or every entity.
type MergeScope string

const (
	ScopeClass    MergeScope = "class"
	ScopeCfg      MergeScope = "cfg"
	ScopeProperty MergeScope = "property"
	ScopeMethod   MergeScope = "method"
	ScopeEvent    MergeScope = "event"
	ScopeCSSVar   MergeScope = "css_var"
	ScopeCSSMixin MergeScope = "css_mixin"

	// ScopeMethodLike covers kinds that take parameters.
	ScopeMethodLike MergeScope = "method_like"
	// ScopePropertyLike covers kinds that carry a type and default value.
	ScopePropertyLike MergeScope = "property_like"
	// ScopeMember covers every member kind.
	ScopeMember MergeScope = "member"
	// ScopeAll covers classes and members.
	ScopeAll MergeScope = "all"
)

// Matches reports whether an entity of kind k falls within the scope.
func (s MergeScope) Matches(k model.Kind) bool {
	switch s {
	case ScopeAll:
		return k.IsValid()
	case ScopeMember:
		return k.IsMember()
	case ScopeMethodLike:
		return k == model.KindMethod || k == model.KindEvent || k == model.KindCSSMixin
	case ScopePropertyLike:
		return k == model.KindCfg || k == model.KindProperty || k == model.KindCSSVar
	default:
		return string(s) == string(k)
	}
}

// IsValid returns true if the scope is recognized.
func (s MergeScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeMember, ScopeMethodLike, ScopePropertyLike:
		return true
	default:
		return model.Kind(s).IsValid()
	}
}

// RenderPosition orders tag output in generated documentation. Lower values
// render first.
type RenderPosition int

const (
	PositionTop      RenderPosition = 100
	PositionHeader   RenderPosition = 200
	PositionDoc      RenderPosition = 300
	PositionAfterDoc RenderPosition = 400
	PositionBottom   RenderPosition = 500
)

// Subsection filters a member-kind section, e.g. instance vs static methods.
type Subsection struct {
	Title  string
	Filter func(m *model.Member) bool
	// Default marks the subsection whose title is hidden when every member
	// of the section falls into it.
	Default bool
}

// MemberKindDescriptor is registered by the tags that introduce a member
// kind. Renderers use it to lay out class pages.
type MemberKindDescriptor struct {
	Kind        model.Kind
	Category    string
	Title       string
	Position    RenderPosition
	Subsections []Subsection
}

// Descriptor is a plugin's static configuration.
type Descriptor struct {
	// Pattern is the annotation keyword, without "@". Empty for tags that
	// only come from declarations.
	Pattern string

	// Tagname is the attribute key the plugin produces.
	Tagname string

	// Repeatable allows the tag more than once per entity.
	Repeatable bool

	// Scope selects the entities merge and post-process apply to.
	Scope MergeScope

	// Position is the render order key.
	Position RenderPosition

	// MemberKind is set by tags that define a member kind.
	MemberKind *MemberKindDescriptor
}

// Validate checks if the descriptor is usable.
func (d *Descriptor) Validate() error {
	if d.Tagname == "" {
		return fmt.Errorf("tagname is required")
	}
	if !d.Scope.IsValid() {
		return fmt.Errorf("tag %s: invalid merge scope: %q", d.Tagname, d.Scope)
	}
	if mk := d.MemberKind; mk != nil && !mk.Kind.IsMember() {
		return fmt.Errorf("tag %s: %q is not a member kind", d.Tagname, mk.Kind)
	}
	return nil
}

// String returns a human-readable representation of the descriptor.
func (d *Descriptor) String() string {
	if d.Pattern == "" {
		return fmt.Sprintf("%s (%s)", d.Tagname, d.Scope)
	}
	return fmt.Sprintf("@%s -> %s (%s)", d.Pattern, d.Tagname, d.Scope)
}
