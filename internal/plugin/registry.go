package plugin

import (
	"errors"
	"fmt"
	"sort"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// Registry indexes a fixed set of tag plugins. It is built once through a
// Builder and is read-only afterwards.
type Registry struct {
	tags        []Tag
	byPattern   map[string]Tag
	byTagname   map[string]Tag
	renderOrder []Tag
	byKind      map[model.Kind][]Tag
	memberKinds []MemberKindDescriptor
	declParsers []Tag
}

// Builder assembles a Registry from an explicit list of plugins.
type Builder struct {
	tags     []Tag
	patterns map[string]string
	tagnames map[string]bool
	err      error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		patterns: make(map[string]string),
		tagnames: make(map[string]bool),
	}
}

// Err returns every problem found so far.
func (b *Builder) Err() error { return b.err }

func (b *Builder) error(err error) {
	b.err = errors.Join(b.err, err)
}

// Register adds plugins in order. Registration order breaks render-position
// ties. Invalid or duplicate plugins are recorded as errors and skipped.
func (b *Builder) Register(tags ...Tag) *Builder {
	for _, t := range tags {
		if t == nil {
			b.error(fmt.Errorf("cannot register nil tag"))
			continue
		}
		d := t.Descriptor()
		if err := d.Validate(); err != nil {
			b.error(fmt.Errorf("invalid tag descriptor: %w", err))
			continue
		}
		if b.tagnames[d.Tagname] {
			b.error(fmt.Errorf("tagname %s already registered", d.Tagname))
			continue
		}
		if d.Pattern != "" {
			if owner, exists := b.patterns[d.Pattern]; exists {
				b.error(fmt.Errorf("pattern @%s already registered by %s", d.Pattern, owner))
				continue
			}
			b.patterns[d.Pattern] = d.Tagname
		}
		b.tagnames[d.Tagname] = true
		b.tags = append(b.tags, t)
	}
	return b
}

// Build returns the registry, together with any registration errors. The
// registry is usable even when an error is returned; it contains every
// plugin that registered cleanly.
func (b *Builder) Build() (*Registry, error) {
	r := &Registry{
		tags:      append([]Tag(nil), b.tags...),
		byPattern: make(map[string]Tag),
		byTagname: make(map[string]Tag),
		byKind:    make(map[model.Kind][]Tag),
	}

	ordered := append([]Tag(nil), b.tags...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Descriptor().Position < ordered[j].Descriptor().Position
	})

	for _, t := range b.tags {
		d := t.Descriptor()
		if d.Pattern != "" {
			r.byPattern[d.Pattern] = t
		}
		r.byTagname[d.Tagname] = t
		if _, ok := t.(DeclarationParser); ok {
			r.declParsers = append(r.declParsers, t)
		}
	}

	kinds := append([]model.Kind{model.KindClass}, model.MemberKinds...)
	for _, t := range ordered {
		d := t.Descriptor()
		for _, k := range kinds {
			if d.Scope.Matches(k) {
				r.byKind[k] = append(r.byKind[k], t)
			}
		}
		if _, ok := t.(HTMLRenderer); ok {
			r.renderOrder = append(r.renderOrder, t)
		}
		if d.MemberKind != nil {
			r.memberKinds = append(r.memberKinds, *d.MemberKind)
		}
	}
	sort.SliceStable(r.memberKinds, func(i, j int) bool {
		return r.memberKinds[i].Position < r.memberKinds[j].Position
	})

	return r, b.err
}

// FindByPattern returns the plugin handling "@pattern".
func (r *Registry) FindByPattern(pattern string) (Tag, bool) {
	t, ok := r.byPattern[pattern]
	return t, ok
}

// FindByTagname returns the plugin producing tagname.
func (r *Registry) FindByTagname(tagname string) (Tag, bool) {
	t, ok := r.byTagname[tagname]
	return t, ok
}

// PluginsForMergeScope returns every plugin whose merge scope matches kind,
// ordered by render position, ties in registration order.
func (r *Registry) PluginsForMergeScope(kind model.Kind) []Tag {
	return append([]Tag(nil), r.byKind[kind]...)
}

// MemberKindDescriptors returns registered member kinds ordered by position.
func (r *Registry) MemberKindDescriptors() []MemberKindDescriptor {
	return append([]MemberKindDescriptor(nil), r.memberKinds...)
}

// RenderOrder returns every plugin with an HTML render hook, in render order.
func (r *Registry) RenderOrder() []Tag {
	return append([]Tag(nil), r.renderOrder...)
}

// DeclarationParsers returns plugins that infer values from declarations,
// in registration order.
func (r *Registry) DeclarationParsers() []Tag {
	return append([]Tag(nil), r.declParsers...)
}

// Tags returns every plugin in registration order.
func (r *Registry) Tags() []Tag {
	return append([]Tag(nil), r.tags...)
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.tags)
}

// Less reports whether tagname a renders before tagname b. Unknown
// tagnames sort last, by name.
func (r *Registry) Less(a, b string) bool {
	ta, okA := r.byTagname[a]
	tb, okB := r.byTagname[b]
	switch {
	case okA && okB:
		pa, pb := ta.Descriptor().Position, tb.Descriptor().Position
		if pa != pb {
			return pa < pb
		}
		return r.index(ta) < r.index(tb)
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func (r *Registry) index(t Tag) int {
	for i, candidate := range r.tags {
		if candidate == t {
			return i
		}
	}
	return len(r.tags)
}
