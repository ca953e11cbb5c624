package model

// Annotations is the documentation state shared by classes and members.
type Annotations struct {
	// Doc is the free-text documentation.
	Doc string

	// Files is the ordered provenance log. Duplicates are allowed.
	Files []SourceFileRef

	// Attrs maps tagname to the merged attribute value.
	Attrs map[string]any

	// DocTags holds raw occurrences from annotation parsing, keyed by tagname.
	DocTags map[string][]Occurrence

	// CodeTags holds raw occurrences from declaration parsing, keyed by tagname.
	CodeTags map[string][]Occurrence
}

// Attr returns a merged attribute value.
func (a *Annotations) Attr(tagname string) (any, bool) {
	if a.Attrs == nil {
		return nil, false
	}
	v, ok := a.Attrs[tagname]
	return v, ok
}

// SetAttr stores a merged attribute value. A nil value removes the attribute.
func (a *Annotations) SetAttr(tagname string, value any) {
	if value == nil {
		delete(a.Attrs, tagname)
		return
	}
	if a.Attrs == nil {
		a.Attrs = make(map[string]any)
	}
	a.Attrs[tagname] = value
}

// Flag reports whether a boolean attribute is set to true.
func (a *Annotations) Flag(tagname string) bool {
	v, _ := a.Attr(tagname)
	b, _ := v.(bool)
	return b
}

// AddDocTag appends a doc-side occurrence.
func (a *Annotations) AddDocTag(o Occurrence) {
	if a.DocTags == nil {
		a.DocTags = make(map[string][]Occurrence)
	}
	a.DocTags[o.Tagname] = append(a.DocTags[o.Tagname], o)
}

// AddCodeTag appends a code-side occurrence.
func (a *Annotations) AddCodeTag(o Occurrence) {
	if a.CodeTags == nil {
		a.CodeTags = make(map[string][]Occurrence)
	}
	a.CodeTags[o.Tagname] = append(a.CodeTags[o.Tagname], o)
}

// Position returns the first source reference, the conventional location
// for diagnostics about the entity.
func (a *Annotations) Position() SourceFileRef {
	if len(a.Files) == 0 {
		return SourceFileRef{}
	}
	return a.Files[0]
}

// Entity is implemented by *Class and *Member.
type Entity interface {
	Kind() Kind
	// Base returns the shared documentation state.
	Base() *Annotations
	Position() SourceFileRef
	// FullName is used in diagnostics and logs.
	FullName() string
}
