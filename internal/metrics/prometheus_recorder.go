package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	stageDuration *prom.HistogramVec
	stageResults  *prom.CounterVec
	warnings      *prom.CounterVec
	overrides     *prom.CounterVec
	members       *prom.CounterVec
	classes       prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "tagdoc",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "tagdoc",
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.warnings = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "tagdoc",
			Name:      "warnings_total",
			Help:      "Warnings emitted by category",
		}, []string{"category"})
		pr.overrides = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "tagdoc",
			Name:      "overrides_total",
			Help:      "Override classes processed by outcome",
		}, []string{"outcome"})
		pr.members = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "tagdoc",
			Name:      "override_members_total",
			Help:      "Override members folded into targets by action",
		}, []string{"action"})
		pr.classes = prom.NewGauge(prom.GaugeOpts{
			Namespace: "tagdoc",
			Name:      "classes",
			Help:      "Classes in the final class table",
		})
		reg.MustRegister(pr.stageDuration, pr.stageResults, pr.warnings, pr.overrides, pr.members, pr.classes)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncWarning(category string) {
	if p == nil || p.warnings == nil {
		return
	}
	p.warnings.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) IncOverride(outcome OverrideOutcome) {
	if p == nil || p.overrides == nil {
		return
	}
	p.overrides.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddOverrideMembers(action MemberAction, n int) {
	if p == nil || p.members == nil || n <= 0 {
		return
	}
	p.members.WithLabelValues(string(action)).Add(float64(n))
}

func (p *PrometheusRecorder) SetClasses(n int) {
	if p == nil || p.classes == nil {
		return
	}
	p.classes.Set(float64(n))
}
