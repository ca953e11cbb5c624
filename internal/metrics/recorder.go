package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
)

// OverrideOutcome labels what happened to one override class.
type OverrideOutcome string

const (
	OverrideApplied OverrideOutcome = "applied"
	OverrideSkipped OverrideOutcome = "skipped"
)

// MemberAction labels how an override member was folded into its target.
type MemberAction string

const (
	MemberAdded   MemberAction = "added"
	MemberPatched MemberAction = "patched"
)

// Recorder defines observability hooks for the documentation pipeline.
// Implementations may forward to Prometheus or anything else; NoopRecorder is
// the default so callers never need nil checks.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncWarning(category string)
	IncOverride(outcome OverrideOutcome)
	AddOverrideMembers(action MemberAction, n int)
	SetClasses(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncWarning(string)                          {}
func (NoopRecorder) IncOverride(OverrideOutcome)                {}
func (NoopRecorder) AddOverrideMembers(MemberAction, int)       {}
func (NoopRecorder) SetClasses(int)                             {}
