// Package merge reconciles the raw tag occurrences collected for each
// entity into its final attribute set, dispatching to the owning plugins.
package merge

import (
	"fmt"
	"log/slog"
	"sort"

	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

// Engine merges entities. It holds no per-entity state.
type Engine struct {
	registry *plugin.Registry
	warner   warnings.Warner
	log      *slog.Logger
}

// NewEngine creates an engine over a built registry.
func NewEngine(reg *plugin.Registry, w warnings.Warner, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{registry: reg, warner: w, log: log}
}

// ApplyDeclaration collects code-side occurrences for cls from every plugin
// that can read a structured declaration.
func (e *Engine) ApplyDeclaration(cls *model.Class, decl *model.Declaration) {
	if decl == nil {
		return
	}
	for _, t := range e.registry.DeclarationParsers() {
		dp := t.(plugin.DeclarationParser)
		for _, o := range dp.ParseFromDeclaration(cls, decl) {
			if o.Tagname == "" {
				o.Tagname = t.Descriptor().Tagname
			}
			cls.AddCodeTag(o)
		}
	}
}

// MergeTable merges every class and member, in table order.
func (e *Engine) MergeTable(t *model.Table) {
	for _, cls := range t.Classes() {
		e.MergeClass(cls)
	}
}

// MergeClass merges a class and then each of its members.
func (e *Engine) MergeClass(cls *model.Class) {
	e.MergeEntity(cls)
	for _, m := range cls.Members {
		e.MergeEntity(m)
	}
}

// MergeEntity folds the entity's raw occurrences into its attributes.
//
// Every tagname present on either side is merged by its owning plugin, in
// render order. A non-repeatable tag with several doc-side occurrences is
// warned about and only the first is kept. Afterwards every plugin whose
// scope matches the entity is post-processed, including plugins whose tag
// never occurred.
func (e *Engine) MergeEntity(ent model.Entity) {
	base := ent.Base()
	kept := make(map[string][]model.Occurrence)

	for _, name := range e.tagnames(base) {
		docs, code := base.DocTags[name], base.CodeTags[name]
		pos := firstPosition(docs, code, ent.Position())

		tag, ok := e.registry.FindByTagname(name)
		if !ok {
			e.warn(warnings.TagUnknown, fmt.Sprintf("no tag plugin produces %q on %s", name, ent.FullName()), pos)
			continue
		}
		d := tag.Descriptor()
		if !d.Scope.Matches(ent.Kind()) {
			e.warn(warnings.TagScope, fmt.Sprintf("%s is not allowed on %s %s", tagLabel(d), ent.Kind(), ent.FullName()), pos)
			continue
		}
		if !d.Repeatable && len(docs) > 1 {
			e.warn(warnings.TagRepeated, fmt.Sprintf("%s may only occur once on %s, ignoring %d more", tagLabel(d), ent.FullName(), len(docs)-1), docs[1].Pos)
			docs = docs[:1]
			base.DocTags[name] = docs
		}

		var value any
		if m, ok := tag.(plugin.Merger); ok {
			value = m.Merge(ent, docs, code)
		} else {
			value = plugin.DefaultMerge(d, docs, code)
		}
		base.SetAttr(name, value)
		kept[name] = docs
	}

	for _, t := range e.registry.PluginsForMergeScope(ent.Kind()) {
		if pp, ok := t.(plugin.PostProcessor); ok {
			pp.PostProcess(ent, kept[t.Descriptor().Tagname])
		}
	}

	e.log.Debug("Merged entity", logfields.Class(ent.FullName()), logfields.Count(len(base.Attrs)))
}

// tagnames returns every tagname with occurrences on either side, in
// render order.
func (e *Engine) tagnames(base *model.Annotations) []string {
	seen := make(map[string]bool, len(base.DocTags)+len(base.CodeTags))
	var names []string
	for _, src := range []map[string][]model.Occurrence{base.DocTags, base.CodeTags} {
		for name, occs := range src {
			if len(occs) == 0 || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool { return e.registry.Less(names[i], names[j]) })
	return names
}

func (e *Engine) warn(c warnings.Category, msg string, pos model.SourceFileRef) {
	if e.warner != nil {
		e.warner.Warn(c, msg, pos)
	}
}

func firstPosition(docs, code []model.Occurrence, fallback model.SourceFileRef) model.SourceFileRef {
	if len(docs) > 0 {
		return docs[0].Pos
	}
	if len(code) > 0 {
		return code[0].Pos
	}
	return fallback
}

func tagLabel(d *plugin.Descriptor) string {
	if d.Pattern != "" {
		return "@" + d.Pattern
	}
	return d.Tagname
}
