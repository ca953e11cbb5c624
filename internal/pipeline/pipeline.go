// Package pipeline runs the documentation stages in order: scan comments
// and declarations into a class table, merge every entity, then fold
// overrides.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/tagdoc/internal/input"
	"git.home.luguber.info/inful/tagdoc/internal/logfields"
	"git.home.luguber.info/inful/tagdoc/internal/merge"
	"git.home.luguber.info/inful/tagdoc/internal/metrics"
	"git.home.luguber.info/inful/tagdoc/internal/model"
	"git.home.luguber.info/inful/tagdoc/internal/override"
	"git.home.luguber.info/inful/tagdoc/internal/plugin"
	"git.home.luguber.info/inful/tagdoc/internal/warnings"
)

// StageName identifies one pipeline stage.
type StageName string

const (
	StageScan     StageName = "scan"
	StageMerge    StageName = "merge"
	StageOverride StageName = "override"
)

// Stages lists every stage in execution order. Merge must finish for all
// entities before any override is applied.
var Stages = []StageName{StageScan, StageMerge, StageOverride}

// State is threaded through the stages. The table is owned by the run and
// mutated in place.
type State struct {
	File     *input.File
	Table    *model.Table
	Override override.Result
}

// Pipeline turns a decoded class table into merged, override-free classes.
type Pipeline struct {
	registry *plugin.Registry
	warner   *warnings.Logger
	external override.ExternalClasses
	recorder metrics.Recorder
	log      *slog.Logger

	engine  *merge.Engine
	applier *override.Applier
}

// PipelineOption configures pipeline behavior.
type PipelineOption func(*Pipeline)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) PipelineOption {
	return func(p *Pipeline) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPipeline creates a pipeline. Consumed overrides are recorded in ext.
// A nil warning logger gets a fresh one.
func NewPipeline(reg *plugin.Registry, w *warnings.Logger, ext override.ExternalClasses, options ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry: reg,
		warner:   w,
		external: ext,
		recorder: metrics.NoopRecorder{},
		log:      slog.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.warner == nil {
		p.warner = warnings.NewLogger(p.log)
	}
	p.engine = merge.NewEngine(reg, p.warner, p.log)
	p.applier = override.NewApplier(ext, p.warner, override.WithRecorder(p.recorder), override.WithLogger(p.log))
	return p
}

// ExecutionResult contains the results of pipeline execution.
type ExecutionResult struct {
	State     *State
	Durations map[StageName]time.Duration
	// Warnings counts warnings raised per stage.
	Warnings map[StageName]int
	Canceled bool
}

// Run executes every stage over f. The only error is context cancellation;
// problems in the documentation itself become warnings.
func (p *Pipeline) Run(ctx context.Context, f *input.File) (*ExecutionResult, error) {
	st := &State{File: f, Table: model.NewTable()}
	res := &ExecutionResult{
		State:     st,
		Durations: make(map[StageName]time.Duration, len(Stages)),
		Warnings:  make(map[StageName]int, len(Stages)),
	}

	p.log.Info("Executing pipeline", logfields.Count(len(f.Classes)), slog.Any("order", Stages))

	for _, name := range Stages {
		select {
		case <-ctx.Done():
			res.Canceled = true
			return res, ctx.Err()
		default:
		}

		before := len(p.warner.Warnings())
		start := time.Now()
		p.stage(name)(st)
		elapsed := time.Since(start)

		res.Durations[name] = elapsed
		res.Warnings[name] = len(p.warner.Warnings()) - before

		result := metrics.ResultSuccess
		if res.Warnings[name] > 0 {
			result = metrics.ResultWarning
		}
		p.recorder.ObserveStageDuration(string(name), elapsed)
		p.recorder.IncStageResult(string(name), result)
		p.log.Debug("Stage completed",
			logfields.Stage(string(name)),
			logfields.DurationMS(float64(elapsed.Microseconds())/1000),
			logfields.Count(res.Warnings[name]))
	}

	p.recorder.SetClasses(st.Table.Len())
	return res, nil
}

func (p *Pipeline) stage(name StageName) func(*State) {
	switch name {
	case StageScan:
		return p.scan
	case StageMerge:
		return func(st *State) { p.engine.MergeTable(st.Table) }
	default:
		return func(st *State) { st.Override = p.applier.Apply(st.Table) }
	}
}
