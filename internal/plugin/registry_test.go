package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// mockTag is a test plugin with only a descriptor.
type mockTag struct {
	BaseTag
}

func newMockTag(pattern, tagname string, scope MergeScope, pos RenderPosition) *mockTag {
	return &mockTag{BaseTag{Desc: Descriptor{Pattern: pattern, Tagname: tagname, Scope: scope, Position: pos}}}
}

// mockRenderTag adds a render hook.
type mockRenderTag struct {
	mockTag
}

func (m *mockRenderTag) ToHTML(ctx *RenderContext) string { return m.Desc.Tagname }

func newMockRenderTag(tagname string, scope MergeScope, pos RenderPosition) *mockRenderTag {
	return &mockRenderTag{*newMockTag(tagname, tagname, scope, pos)}
}

// mockDeclTag infers a value from declarations.
type mockDeclTag struct {
	mockTag
}

func (m *mockDeclTag) ParseFromDeclaration(_ *model.Class, _ *model.Declaration) []model.Occurrence {
	return nil
}

func tagnames(tags []Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Descriptor().Tagname)
	}
	return out
}

func TestBuilderRegister(t *testing.T) {
	reg, err := NewBuilder().
		Register(newMockTag("since", "since", ScopeAll, PositionBottom)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	tag, ok := reg.FindByPattern("since")
	require.True(t, ok)
	assert.Equal(t, "since", tag.Descriptor().Tagname)

	_, ok = reg.FindByTagname("since")
	assert.True(t, ok)
	_, ok = reg.FindByPattern("nope")
	assert.False(t, ok)
}

func TestBuilderRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
	}{
		{"nil tag", []Tag{nil}},
		{"missing tagname", []Tag{newMockTag("x", "", ScopeAll, 0)}},
		{"bad scope", []Tag{newMockTag("x", "x", MergeScope("bogus"), 0)}},
		{"duplicate pattern", []Tag{newMockTag("x", "a", ScopeAll, 0), newMockTag("x", "b", ScopeAll, 0)}},
		{"duplicate tagname", []Tag{newMockTag("a", "x", ScopeAll, 0), newMockTag("b", "x", ScopeAll, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().Register(tt.tags...).Build()
			assert.Error(t, err)
		})
	}
}

func TestBuilderKeepsValidTagsOnError(t *testing.T) {
	reg, err := NewBuilder().
		Register(newMockTag("a", "a", ScopeAll, 0), nil, newMockTag("b", "b", ScopeAll, 0)).
		Build()
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, tagnames(reg.Tags()))
}

func TestPluginsForMergeScopeOrdering(t *testing.T) {
	reg, err := NewBuilder().Register(
		newMockTag("bottom", "bottom", ScopeAll, PositionBottom),
		newMockTag("top", "top", ScopeAll, PositionTop),
		newMockTag("params", "params", ScopeMethodLike, PositionAfterDoc),
		newMockTag("type", "type", ScopePropertyLike, PositionAfterDoc),
		newMockTag("top2", "top2", ScopeMember, PositionTop),
		newMockTag("extends", "extends", ScopeClass, PositionHeader),
	).Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"top", "extends", "bottom"}, tagnames(reg.PluginsForMergeScope(model.KindClass)))
	assert.Equal(t, []string{"top", "top2", "params", "bottom"}, tagnames(reg.PluginsForMergeScope(model.KindMethod)))
	assert.Equal(t, []string{"top", "top2", "params", "bottom"}, tagnames(reg.PluginsForMergeScope(model.KindEvent)))
	assert.Equal(t, []string{"top", "top2", "type", "bottom"}, tagnames(reg.PluginsForMergeScope(model.KindCfg)))
}

func TestRenderOrderAndLess(t *testing.T) {
	reg, err := NewBuilder().Register(
		newMockRenderTag("b", ScopeAll, PositionBottom),
		newMockTag("quiet", "quiet", ScopeAll, PositionTop),
		newMockRenderTag("a", ScopeAll, PositionTop),
		newMockRenderTag("a2", ScopeAll, PositionTop),
	).Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a2", "b"}, tagnames(reg.RenderOrder()))
	assert.True(t, reg.Less("a", "b"))
	assert.True(t, reg.Less("a", "a2"))
	assert.False(t, reg.Less("a2", "a"))
	assert.True(t, reg.Less("b", "unknown"))
	assert.True(t, reg.Less("unknown1", "unknown2"))
}

func TestMemberKindDescriptors(t *testing.T) {
	method := newMockTag("method", "method", ScopeMethod, PositionTop)
	method.Desc.MemberKind = &MemberKindDescriptor{Kind: model.KindMethod, Title: "Methods", Position: 3}
	cfg := newMockTag("cfg", "cfg", ScopeCfg, PositionTop)
	cfg.Desc.MemberKind = &MemberKindDescriptor{Kind: model.KindCfg, Title: "Config options", Position: 1}

	reg, err := NewBuilder().Register(method, cfg).Build()
	require.NoError(t, err)

	kinds := reg.MemberKindDescriptors()
	require.Len(t, kinds, 2)
	assert.Equal(t, model.KindCfg, kinds[0].Kind)
	assert.Equal(t, model.KindMethod, kinds[1].Kind)
}

func TestMemberKindMustBeMember(t *testing.T) {
	bad := newMockTag("cls", "cls", ScopeClass, PositionTop)
	bad.Desc.MemberKind = &MemberKindDescriptor{Kind: model.KindClass}
	_, err := NewBuilder().Register(bad).Build()
	assert.Error(t, err)
}

func TestDeclarationParsers(t *testing.T) {
	decl := &mockDeclTag{*newMockTag("", "extends", ScopeClass, PositionHeader)}
	reg, err := NewBuilder().Register(newMockTag("since", "since", ScopeAll, 0), decl).Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"extends"}, tagnames(reg.DeclarationParsers()))
	_, ok := reg.FindByPattern("")
	assert.False(t, ok, "pattern-less tags are not indexed by pattern")
}

func TestMergeScopeMatches(t *testing.T) {
	tests := []struct {
		scope MergeScope
		kind  model.Kind
		want  bool
	}{
		{ScopeAll, model.KindClass, true},
		{ScopeAll, model.KindCSSMixin, true},
		{ScopeMember, model.KindClass, false},
		{ScopeMember, model.KindEvent, true},
		{ScopeMethodLike, model.KindCSSMixin, true},
		{ScopeMethodLike, model.KindCfg, false},
		{ScopePropertyLike, model.KindCSSVar, true},
		{ScopeClass, model.KindClass, true},
		{ScopeMethod, model.KindEvent, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.scope.Matches(tt.kind), "%s/%s", tt.scope, tt.kind)
	}
}
