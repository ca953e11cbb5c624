package model

// Declaration is the structured form of a class-definition call, as
// extracted by the source walker (for example the config object passed to
// Ext.define). Tags that can infer their value from it implement
// plugin.DeclarationParser.
type Declaration struct {
	// Call is the name of the defining function.
	Call string

	// Properties holds the literal keys of the definition object.
	Properties map[string]any

	Pos SourceFileRef
}

// String returns a string property, or "".
func (d *Declaration) String(key string) string {
	if d == nil {
		return ""
	}
	s, _ := d.Properties[key].(string)
	return s
}

// Strings returns a property as a list of strings. A single string is
// treated as a one-element list.
func (d *Declaration) Strings(key string) []string {
	if d == nil {
		return nil
	}
	switch v := d.Properties[key].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Bool returns a boolean property.
func (d *Declaration) Bool(key string) bool {
	if d == nil {
		return false
	}
	b, _ := d.Properties[key].(bool)
	return b
}

// Has reports whether key is present.
func (d *Declaration) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Properties[key]
	return ok
}
