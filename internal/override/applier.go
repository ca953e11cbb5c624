// Package override folds override classes into the classes they patch and
// removes them from the class table.
package override

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/metrics"
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

// ExternalClasses accumulates the names of consumed override classes so
// references to them still resolve without a page of their own.
type ExternalClasses interface {
	AddExternalClass(name string)
}

// Result summarizes one Apply run.
type Result struct {
	// Applied lists folded overrides in processing order.
	Applied []string
	// Skipped lists overrides left in the table because their target was
	// unusable.
	Skipped        []string
	MembersAdded   int
	MembersPatched int
}

// Applier folds overrides. It runs once, after merging and before any
// inheritance resolution.
type Applier struct {
	external ExternalClasses
	warner   warnings.Warner
	recorder metrics.Recorder
	log      *slog.Logger
}

// Option configures an Applier.
type Option func(*Applier)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(a *Applier) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Applier) {
		if l != nil {
			a.log = l
		}
	}
}

// NewApplier creates an applier that records consumed overrides in ext.
func NewApplier(ext ExternalClasses, w warnings.Warner, opts ...Option) *Applier {
	a := &Applier{
		external: ext,
		warner:   w,
		recorder: metrics.NoopRecorder{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply processes every override class in table declaration order.
//
// An override whose target is missing, is itself, or is another override
// class is warned about and stays in the table untouched. Every folded
// override is deleted only after the whole worklist has been processed,
// then recorded as an external class.
func (a *Applier) Apply(table *model.Table) Result {
	var worklist []*model.Class
	for _, cls := range table.Classes() {
		if cls.IsOverride {
			worklist = append(worklist, cls)
		}
	}

	var res Result
	var folded []*model.Class
	for _, o := range worklist {
		target, reason := a.resolveTarget(table, o)
		if target == nil {
			a.warn(warnings.OverrideTarget, reason, o.Position())
			a.recorder.IncOverride(metrics.OverrideSkipped)
			res.Skipped = append(res.Skipped, o.Name)
			continue
		}
		added, patched := a.fold(o, target)
		res.MembersAdded += added
		res.MembersPatched += patched
		folded = append(folded, o)
	}

	for _, o := range folded {
		table.Delete(o.Name)
		if a.external != nil {
			a.external.AddExternalClass(o.Name)
		}
		a.recorder.IncOverride(metrics.OverrideApplied)
		res.Applied = append(res.Applied, o.Name)
	}
	a.recorder.AddOverrideMembers(metrics.MemberAdded, res.MembersAdded)
	a.recorder.AddOverrideMembers(metrics.MemberPatched, res.MembersPatched)
	return res
}

func (a *Applier) resolveTarget(table *model.Table, o *model.Class) (*model.Class, string) {
	target, ok := table.Get(o.OverrideTarget)
	switch {
	case !ok:
		return nil, fmt.Sprintf("class %s to override not found: %s", o.OverrideTarget, o.Name)
	case target == o:
		return nil, fmt.Sprintf("override %s targets itself", o.Name)
	case target.IsOverride:
		return nil, fmt.Sprintf("override %s targets override %s; overrides of overrides are not supported", o.Name, target.Name)
	default:
		return target, ""
	}
}

// fold merges o into target and returns how many members were added and
// how many existing members were patched.
func (a *Applier) fold(o, target *model.Class) (added, patched int) {
	name := DisplayName(o)

	if strings.TrimSpace(o.Doc) != "" {
		target.Doc = AppendDoc(target.Doc, FromOverride(name, o.Doc))
	}
	target.Files = append(target.Files, o.Files...)

	byID := make(map[string]*model.Member, len(target.Members))
	for _, m := range target.Members {
		byID[m.ID] = m
	}

	for _, m := range o.Members {
		if existing, ok := byID[m.ID]; ok {
			block := OverriddenIn(name)
			if strings.TrimSpace(m.Doc) != "" {
				block = FromOverride(name, m.Doc)
			}
			existing.Doc = AppendDoc(existing.Doc, block)
			existing.Files = append(existing.Files, m.Files...)
			patched++
			continue
		}
		m.Doc = AppendDoc(m.Doc, DefinedInOverride(name))
		if err := target.AddMember(m); err != nil {
			a.log.Error("Dropping override member", logfields.Class(o.Name), logfields.Member(m.ID), logfields.Error(err))
			continue
		}
		byID[m.ID] = m
		added++
	}
	o.Members = nil

	a.log.Info("Applied override",
		logfields.Class(o.Name),
		slog.String("target", target.Name),
		slog.Int("members_added", added),
		slog.Int("members_patched", patched))
	return added, patched
}

// DisplayName is the name attribution blocks use for an override: its
// declared name, or the base name of its first source file.
func DisplayName(o *model.Class) string {
	if o.DeclaredName != "" {
		return o.DeclaredName
	}
	return o.Position().Base()
}

func (a *Applier) warn(c warnings.Category, msg string, pos model.SourceFileRef) {
	if a.warner != nil {
		a.warner.Warn(c, msg, pos)
	}
}
