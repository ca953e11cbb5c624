package plugin

import "git.home.luguber.info/inful/tagdoc/internal/model"

// DefaultMerge is used for plugins that do not implement Merger. Doc-side
// occurrences win over code-side ones. Non-repeatable tags yield the first
// value; repeatable tags yield every value of the winning side, in order.
func DefaultMerge(d *Descriptor, docs, code []model.Occurrence) any {
	side := docs
	if len(side) == 0 {
		side = code
	}
	if len(side) == 0 {
		return nil
	}
	if !d.Repeatable {
		return side[0].Value
	}
	values := make([]any, 0, len(side))
	for _, o := range side {
		values = append(values, o.Value)
	}
	return values
}

// FirstValue returns the value of the first doc occurrence, else the first
// code occurrence, else nil.
func FirstValue(docs, code []model.Occurrence) any {
	if len(docs) > 0 {
		return docs[0].Value
	}
	if len(code) > 0 {
		return code[0].Value
	}
	return nil
}
