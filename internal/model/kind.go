// Package model holds the parsed class and member entities that the merge
// and override stages mutate in place.
package model

// Kind identifies what an entity is. Classes have KindClass; members carry
// one of the fixed member kinds.
type Kind string

const (
	KindClass    Kind = "class"
	KindCfg      Kind = "cfg"
	KindProperty Kind = "property"
	KindMethod   Kind = "method"
	KindEvent    Kind = "event"
	KindCSSVar   Kind = "css_var"
	KindCSSMixin Kind = "css_mixin"
)

// MemberKinds lists every member kind in canonical order.
var MemberKinds = []Kind{KindCfg, KindProperty, KindMethod, KindEvent, KindCSSVar, KindCSSMixin}

// IsMember returns true for member kinds.
func (k Kind) IsMember() bool {
	switch k {
	case KindCfg, KindProperty, KindMethod, KindEvent, KindCSSVar, KindCSSMixin:
		return true
	default:
		return false
	}
}

// IsValid returns true if the kind is recognized.
func (k Kind) IsValid() bool {
	return k == KindClass || k.IsMember()
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
