package model

import "fmt"

// Table is the class table. It preserves declaration order so that every
// stage iterating it is deterministic.
type Table struct {
	order   []string
	classes map[string]*Class
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{classes: make(map[string]*Class)}
}

// Add inserts a class. Class names are unique keys.
func (t *Table) Add(c *Class) error {
	if c == nil {
		return fmt.Errorf("cannot add nil class")
	}
	if _, exists := t.classes[c.Name]; exists {
		return fmt.Errorf("class %s already defined", c.Name)
	}
	t.classes[c.Name] = c
	t.order = append(t.order, c.Name)
	return nil
}

// Get returns the class named name.
func (t *Table) Get(name string) (*Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// Delete removes a class. Deleting a missing class is a no-op.
func (t *Table) Delete(name string) {
	if _, ok := t.classes[name]; !ok {
		return
	}
	delete(t.classes, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of classes.
func (t *Table) Len() int { return len(t.order) }

// Names returns class names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Classes returns classes in declaration order.
func (t *Table) Classes() []*Class {
	out := make([]*Class, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, t.classes[n])
	}
	return out
}
