package model

// Member is a config, property, method, event, CSS variable or CSS mixin
// belonging to a class.
type Member struct {
	Annotations

	// ID is unique within the owning class.
	ID string

	Name       string
	Owner      string
	MemberKind Kind

	class *Class
}

// NewMember creates a member with the conventional id for its kind.
func NewMember(kind Kind, name string, pos SourceFileRef) *Member {
	return &Member{
		ID:          MemberID(kind, name, false),
		Name:        name,
		MemberKind:  kind,
		Annotations: Annotations{Files: []SourceFileRef{pos}},
	}
}

// MemberID builds the id used for a member: "kind-name", prefixed with
// "static-" for static members.
func MemberID(kind Kind, name string, static bool) string {
	id := string(kind) + "-" + name
	if static {
		return "static-" + id
	}
	return id
}

func (m *Member) Kind() Kind         { return m.MemberKind }
func (m *Member) Base() *Annotations { return &m.Annotations }

// Class returns the class the member was added to, or nil.
func (m *Member) Class() *Class { return m.class }

// IsStatic reports whether a static flag occurs on either side. It is
// available before merging, so ids can be settled when members are added.
func (m *Member) IsStatic() bool {
	return len(m.DocTags["static"]) > 0 || len(m.CodeTags["static"]) > 0
}

// FullName returns Owner#name.
func (m *Member) FullName() string {
	if m.Owner == "" {
		return m.Name
	}
	return m.Owner + "#" + m.Name
}
