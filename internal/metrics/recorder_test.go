package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	warnings       map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		warnings:       map[string]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}

func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncWarning(category string)            { t.warnings[category]++ }
func (t *testRecorder) IncOverride(OverrideOutcome)           {}
func (t *testRecorder) AddOverrideMembers(MemberAction, int) {}
func (t *testRecorder) SetClasses(int)                        {}

// Compile-time checks that both implementations satisfy Recorder.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
	_ Recorder = (*testRecorder)(nil)
)

func TestTestRecorderCounts(t *testing.T) {
	r := newTestRecorder()
	r.ObserveStageDuration("merge", time.Millisecond)
	r.IncStageResult("merge", ResultWarning)
	r.IncWarning("tag_scope")
	if r.stageDurations["merge"] != 1 || r.stageResults["merge"][ResultWarning] != 1 || r.warnings["tag_scope"] != 1 {
		t.Fatalf("unexpected counts: %+v", r)
	}
}
