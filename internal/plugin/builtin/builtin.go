// Package builtin provides the tag plugins shipped with tagdoc.
package builtin

import "git.home.luguber.info/inful/tagdoc/internal/plugin"

// All returns a fresh instance of every built-in tag, in registration order.
func All() []plugin.Tag {
	return []plugin.Tag{
		NewCfgTag(),
		NewPropertyTag(),
		NewMethodTag(),
		NewEventTag(),
		NewCSSVarTag(),
		NewCSSMixinTag(),

		NewExtendsTag(),
		NewMixinsTag(),
		NewAliasTag(),
		NewRequiresTag(),
		NewSingletonTag(),

		NewDeprecatedTag(),
		NewRemovedTag(),
		NewAsideTag(),
		NewTypeTag(),
		NewPrivateTag(),
		NewProtectedTag(),
		NewStaticTag(),
		NewReadonlyTag(),
		NewAbstractTag(),
		NewTemplateTag(),
		NewChainableTag(),
		NewParamTag(),
		NewReturnTag(),
		NewDefaultTag(),
		NewSinceTag(),
	}
}

// NewRegistry builds a registry of the built-in tags followed by extra.
func NewRegistry(extra ...plugin.Tag) (*plugin.Registry, error) {
	return plugin.NewBuilder().Register(All()...).Register(extra...).Build()
}
