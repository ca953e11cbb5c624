package model

import "fmt"

// Class is one entry of the class table.
type Class struct {
	Annotations

	// Name is the unique table key.
	Name string

	// DeclaredName is the name as written in source. Anonymous overrides
	// leave it empty.
	DeclaredName string

	IsOverride     bool
	OverrideTarget string
	Members        []*Member
}

// NewClass creates an empty class declared at pos.
func NewClass(name string, pos SourceFileRef) *Class {
	return &Class{
		Name:         name,
		DeclaredName: name,
		Annotations:  Annotations{Files: []SourceFileRef{pos}},
	}
}

func (c *Class) Kind() Kind         { return KindClass }
func (c *Class) Base() *Annotations { return &c.Annotations }
func (c *Class) FullName() string   { return c.Name }

// MemberByID returns the member with the given id.
func (c *Class) MemberByID(id string) (*Member, bool) {
	for _, m := range c.Members {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// AddMember appends m and sets its owner. Member ids are unique within a class.
func (c *Class) AddMember(m *Member) error {
	if m == nil {
		return fmt.Errorf("cannot add nil member to %s", c.Name)
	}
	if _, exists := c.MemberByID(m.ID); exists {
		return fmt.Errorf("member %s already defined in %s", m.ID, c.Name)
	}
	m.Owner = c.Name
	m.class = c
	c.Members = append(c.Members, m)
	return nil
}

// RenameMember changes the id of one of c's members. The new id must not
// be taken by another member.
func (c *Class) RenameMember(m *Member, id string) error {
	if m.ID == id {
		return nil
	}
	if _, exists := c.MemberByID(id); exists {
		return fmt.Errorf("cannot rename %s to %s: member %s already defined in %s", m.ID, id, id, c.Name)
	}
	m.ID = id
	return nil
}

// MembersOfKind returns members of kind k in declaration order.
func (c *Class) MembersOfKind(k Kind) []*Member {
	var out []*Member
	for _, m := range c.Members {
		if m.MemberKind == k {
			out = append(out, m)
		}
	}
	return out
}
