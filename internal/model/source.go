package model

import (
	"fmt"
	"path/filepath"
)

// SourceFileRef records where an entity was declared. It is provenance only
// and never takes part in identity.
type SourceFileRef struct {
	Filename string `yaml:"filename"`
	Linenr   int    `yaml:"linenr"`
}

// String renders the reference as file:line.
func (r SourceFileRef) String() string {
	if r.Filename == "" {
		return fmt.Sprintf("<unknown>:%d", r.Linenr)
	}
	return fmt.Sprintf("%s:%d", r.Filename, r.Linenr)
}

// Base returns the final path element of the filename.
func (r SourceFileRef) Base() string {
	if r.Filename == "" {
		return ""
	}
	return filepath.Base(r.Filename)
}

// Occurrence is a single raw tag occurrence collected for an entity, either
// from annotation parsing (doc side) or from a structured declaration (code
// side).
type Occurrence struct {
	// Tagname is the attribute key the owning plugin produces.
	Tagname string

	// Value is the primary parsed value (a name, a type, a flag).
	Value any

	// Fields carries any additional named values the parser extracted.
	Fields map[string]any

	// Doc is free text captured after the tag, if requested by the parser.
	Doc string

	// Pos is where the occurrence was found.
	Pos SourceFileRef
}

// Field returns a named field, or nil.
func (o Occurrence) Field(name string) any {
	if o.Fields == nil {
		return nil
	}
	return o.Fields[name]
}

// StringField returns a named field as a string, or "" if absent or not a string.
func (o Occurrence) StringField(name string) string {
	if s, ok := o.Field(name).(string); ok {
		return s
	}
	return ""
}

// StringValue returns Value as a string, or "".
func (o Occurrence) StringValue() string {
	if s, ok := o.Value.(string); ok {
		return s
	}
	return ""
}
