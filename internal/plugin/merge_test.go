package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/tagdoc/internal/model"
)

func occs(tagname string, values ...any) []model.Occurrence {
	out := make([]model.Occurrence, 0, len(values))
	for _, v := range values {
		out = append(out, model.Occurrence{Tagname: tagname, Value: v})
	}
	return out
}

func TestDefaultMerge(t *testing.T) {
	single := &Descriptor{Tagname: "since"}
	multi := &Descriptor{Tagname: "requires", Repeatable: true}

	tests := []struct {
		name string
		desc *Descriptor
		docs []model.Occurrence
		code []model.Occurrence
		want any
	}{
		{"nothing", single, nil, nil, nil},
		{"doc wins", single, occs("since", "2.0", "3.0"), occs("since", "1.0"), "2.0"},
		{"code fallback", single, nil, occs("since", "1.0"), "1.0"},
		{"repeatable doc side", multi, occs("requires", "A", "B"), occs("requires", "C"), []any{"A", "B"}},
		{"repeatable code side", multi, nil, occs("requires", "C"), []any{"C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMerge(tt.desc, tt.docs, tt.code))
		})
	}
}

func TestFirstValue(t *testing.T) {
	assert.Nil(t, FirstValue(nil, nil))
	assert.Equal(t, "x", FirstValue(nil, occs("t", "x")))
	assert.Equal(t, "d", FirstValue(occs("t", "d"), occs("t", "x")))
}
