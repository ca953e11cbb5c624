package override

import "strings"

// FromOverride attributes documentation contributed by an override.
func FromOverride(name, doc string) string {
	return "**From override " + name + ":** " + doc
}

// OverriddenIn notes a member an override redeclared without documentation.
func OverriddenIn(name string) string {
	return "**Overridden in " + name + ".**"
}

// DefinedInOverride notes a member that only exists in an override.
func DefinedInOverride(name string) string {
	return "**Defined in override " + name + ".**"
}

// AppendDoc returns doc followed by block, separated by a blank line, with
// surrounding whitespace trimmed.
func AppendDoc(doc, block string) string {
	return strings.TrimSpace(doc + "\n\n" + block)
}
