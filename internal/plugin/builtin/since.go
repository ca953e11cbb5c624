package builtin

import (
	"fmt"
	"html"

	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
)

// SinceTag records the version an entity first appeared in.
type SinceTag struct {
	plugin.BaseTag
}

// NewSinceTag creates the @since tag.
func NewSinceTag() *SinceTag {
	return &SinceTag{plugin.BaseTag{Desc: plugin.Descriptor{
		Pattern:  "since",
		Tagname:  "since",
		Scope:    plugin.ScopeAll,
		Position: plugin.PositionBottom,
	}}}
}

func (t *SinceTag) Parse(s plugin.Scanner, pos model.SourceFileRef) plugin.ParseResult {
	s.SkipHorizontalSpace()
	version := s.RestOfLine()
	if version == "" {
		s.Warn("@since requires a version")
		return plugin.ParseResult{}
	}
	return plugin.ParseResult{Occurrences: []model.Occurrence{{Tagname: "since", Value: version, Pos: pos}}}
}

func (t *SinceTag) ToHTML(ctx *plugin.RenderContext) string {
	v := ctx.StringValue()
	if v == "" {
		return ""
	}
	return fmt.Sprintf(`<p class="since">Available since: <b>%s</b></p>`, html.EscapeString(v))
}
