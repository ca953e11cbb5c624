package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// bracketMarkup wraps text so tests can see what went through the formatter.
type bracketMarkup struct{}

func (bracketMarkup) Format(s string) string { return "[" + s + "]" }

var here = model.SourceFileRef{Filename: "Btn.js", Linenr: 1}

func occ(tagname string, value any) model.Occurrence {
	return model.Occurrence{Tagname: tagname, Value: value, Pos: here}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(All()), reg.Len())

	var kinds []model.Kind
	for _, mk := range reg.MemberKindDescriptors() {
		kinds = append(kinds, mk.Kind)
	}
	assert.Equal(t, model.MemberKinds, kinds)

	tag, ok := reg.FindByPattern("param")
	require.True(t, ok)
	assert.Equal(t, "params", tag.Descriptor().Tagname)
}

func TestNewRegistryRejectsDuplicateTagname(t *testing.T) {
	_, err := NewRegistry(NewSinceTag())
	assert.Error(t, err)
}

func TestParamMergeFillsFromCode(t *testing.T) {
	tag := NewParamTag()
	docs := []model.Occurrence{
		{Tagname: "params", Value: Param{Name: "x"}, Doc: "the x"},
		{Tagname: "params", Value: Param{Name: "y", Type: "String"}},
	}
	code := []model.Occurrence{
		occ("params", Param{Name: "x", Type: "Number", Default: "0"}),
		occ("params", Param{Name: "z", Type: "Boolean"}),
	}

	got := tag.Merge(nil, docs, code)
	assert.Equal(t, []Param{
		{Name: "x", Type: "Number", Default: "0", Doc: "the x"},
		{Name: "y", Type: "String"},
	}, got)

	assert.Equal(t, []Param{{Name: "z", Type: "Boolean"}}, tag.Merge(nil, nil, code[1:]))
	assert.Nil(t, tag.Merge(nil, nil, nil))
}

func TestParamFormatAndRender(t *testing.T) {
	tag := NewParamTag()
	ctx := plugin.NewRenderContext(nil, nil, []Param{{Name: "x", Optional: true, Default: "1", Doc: "<b>"}})

	tag.Format(ctx, bracketMarkup{})
	params := ctx.Value.([]Param)
	assert.Equal(t, "[<b>]", params[0].Doc)
	assert.True(t, params[0].HTML)

	out := tag.ToHTML(ctx)
	assert.Contains(t, out, "x</span> : Object (optional)")
	assert.Contains(t, out, "<code>1</code>")
	assert.Contains(t, out, `<div class="sub-desc">[<b>]</div>`)
}

func TestParamRenderEscapesUnformattedDoc(t *testing.T) {
	ctx := plugin.NewRenderContext(nil, nil, []Param{{Name: "x", Type: "Number", Doc: "a < b"}})
	assert.Contains(t, NewParamTag().ToHTML(ctx), "a &lt; b")
}

func TestReturnMerge(t *testing.T) {
	tag := NewReturnTag()
	docs := []model.Occurrence{{Tagname: "return", Value: Return{}, Doc: "the result"}}
	code := []model.Occurrence{occ("return", Return{Type: "Ext.Button"})}

	assert.Equal(t, Return{Type: "Ext.Button", Doc: "the result"}, tag.Merge(nil, docs, code))
	assert.Equal(t, Return{Type: DefaultType, Doc: "the result"}, tag.Merge(nil, docs, nil))
	assert.Equal(t, Return{Type: "Ext.Button"}, tag.Merge(nil, nil, code))
	assert.Nil(t, tag.Merge(nil, nil, nil))
}

func TestMemberMergeFallsBackToMemberName(t *testing.T) {
	tag := NewMethodTag()
	m := model.NewMember(model.KindMethod, "click", here)

	assert.Equal(t, "onClick", tag.Merge(m, []model.Occurrence{occ("method", ""), occ("method", "onClick")}, nil))
	assert.Equal(t, "fromCode", tag.Merge(m, nil, []model.Occurrence{occ("method", "fromCode")}))
	assert.Equal(t, "click", tag.Merge(m, nil, nil))
}

func TestCfgPostProcessRequired(t *testing.T) {
	tag := NewCfgTag()
	m := model.NewMember(model.KindCfg, "text", here)
	o := occ("cfg", "text")
	o.Fields = map[string]any{"required": true}

	tag.PostProcess(m, []model.Occurrence{o})

	assert.True(t, m.Flag("required"))
	name, _ := m.Attr("cfg")
	assert.Equal(t, "text", name)
}

func TestMemberToHTML(t *testing.T) {
	m := model.NewMember(model.KindProperty, "width", here)
	m.SetAttr("type", "Number")
	out := NewPropertyTag().ToHTML(plugin.NewRenderContext(nil, m, "width"))
	assert.Equal(t, `<div class="signature"><strong class="property">width</strong> : <span class="type">Number</span></div>`, out)
}

func TestChainableDerivedFromReturnThis(t *testing.T) {
	tag := NewChainableTag()

	m := model.NewMember(model.KindMethod, "show", here)
	m.SetAttr("return", Return{Type: "this"})
	tag.PostProcess(m, nil)
	assert.True(t, m.Flag("chainable"))

	other := model.NewMember(model.KindMethod, "getEl", here)
	other.SetAttr("return", Return{Type: "Ext.Element"})
	tag.PostProcess(other, nil)
	assert.False(t, other.Flag("chainable"))
}

func TestStaticRewritesMemberID(t *testing.T) {
	tag := NewStaticTag()

	m := model.NewMember(model.KindMethod, "create", here)
	m.SetAttr("static", true)
	tag.PostProcess(m, nil)
	assert.Equal(t, "static-method-create", m.ID)

	custom := model.NewMember(model.KindMethod, "create", here)
	custom.ID = "custom-id"
	custom.SetAttr("static", true)
	tag.PostProcess(custom, nil)
	assert.Equal(t, "custom-id", custom.ID)
}

func TestStaticKeepsIDWhenStaticIDIsTaken(t *testing.T) {
	cls := model.NewClass("Store", here)
	taken := model.NewMember(model.KindMethod, "loadAll", here)
	taken.ID = "static-method-load"
	require.NoError(t, cls.AddMember(taken))

	load := model.NewMember(model.KindMethod, "load", here)
	require.NoError(t, cls.AddMember(load))
	load.SetAttr("static", true)

	NewStaticTag().PostProcess(load, nil)

	assert.Equal(t, "method-load", load.ID)
	got, ok := cls.MemberByID("static-method-load")
	require.True(t, ok)
	assert.Same(t, taken, got)
}

func TestStaticRenamesWithinOwner(t *testing.T) {
	cls := model.NewClass("Store", here)
	create := model.NewMember(model.KindMethod, "create", here)
	require.NoError(t, cls.AddMember(create))
	create.SetAttr("static", true)

	NewStaticTag().PostProcess(create, nil)

	_, ok := cls.MemberByID("static-method-create")
	assert.True(t, ok)
}

func TestTypeDefaultsToObject(t *testing.T) {
	m := model.NewMember(model.KindProperty, "data", here)
	NewTypeTag().PostProcess(m, nil)
	typ, _ := m.Attr("type")
	assert.Equal(t, DefaultType, typ)

	typed := model.NewMember(model.KindProperty, "width", here)
	typed.SetAttr("type", "Number")
	NewTypeTag().PostProcess(typed, nil)
	typ, _ = typed.Attr("type")
	assert.Equal(t, "Number", typ)
}

func TestDeprecationFormatAndRender(t *testing.T) {
	tag := NewDeprecatedTag()
	docs := []model.Occurrence{{Tagname: "deprecated", Value: "4.0", Doc: "Use *other*."}}
	value := tag.Merge(nil, docs, nil)
	assert.Equal(t, Deprecation{Version: "4.0", Text: "Use *other*."}, value)

	m := model.NewMember(model.KindMethod, "old", here)
	ctx := plugin.NewRenderContext(nil, m, value)
	tag.Format(ctx, bracketMarkup{})
	tag.Format(ctx, bracketMarkup{})

	out := tag.ToHTML(ctx)
	assert.Contains(t, out, "This method has been <strong>deprecated</strong> since 4.0")
	assert.True(t, strings.HasSuffix(out, "[Use *other*.]</div>"))
}

func TestListMergeUnionsBothSides(t *testing.T) {
	tag := NewMixinsTag()
	docs := []model.Occurrence{occ("mixins", "A"), occ("mixins", "B")}
	code := []model.Occurrence{occ("mixins", "B"), occ("mixins", "C")}

	assert.Equal(t, []string{"A", "B", "C"}, tag.Merge(nil, docs, code))
	assert.Nil(t, tag.Merge(nil, nil, nil))

	out := tag.ToHTML(plugin.NewRenderContext(nil, nil, []string{"A", "<B>"}))
	assert.Contains(t, out, "<li>A</li><li>&lt;B&gt;</li>")
}

func TestDeclarationParsers(t *testing.T) {
	cls := model.NewClass("Btn", here)
	decl := &model.Declaration{Pos: here, Properties: map[string]any{
		"extend":    "Ext.Component",
		"mixins":    []any{"Ext.util.Observable"},
		"singleton": true,
	}}

	ext := NewExtendsTag().ParseFromDeclaration(cls, decl)
	require.Len(t, ext, 1)
	assert.Equal(t, "Ext.Component", ext[0].Value)

	mixins := NewMixinsTag().ParseFromDeclaration(cls, decl)
	require.Len(t, mixins, 1)
	assert.Equal(t, "Ext.util.Observable", mixins[0].Value)

	single := NewSingletonTag().ParseFromDeclaration(cls, decl)
	require.Len(t, single, 1)
	assert.Equal(t, true, single[0].Value)

	assert.Empty(t, NewSingletonTag().ParseFromDeclaration(cls, &model.Declaration{}))
}

func TestFlagToHTML(t *testing.T) {
	tag := NewPrivateTag()
	assert.Equal(t, `<span class="signature private">private</span>`, tag.ToHTML(plugin.NewRenderContext(nil, nil, true)))
	assert.Empty(t, tag.ToHTML(plugin.NewRenderContext(nil, nil, false)))
}

func TestSinceAndDefaultToHTML(t *testing.T) {
	assert.Equal(t, `<p class="since">Available since: <b>2.0</b></p>`,
		NewSinceTag().ToHTML(plugin.NewRenderContext(nil, nil, "2.0")))
	assert.Equal(t, `<p class="default">Defaults to: <code>&#34;a&#34;</code></p>`,
		NewDefaultTag().ToHTML(plugin.NewRenderContext(nil, nil, `"a"`)))
}
