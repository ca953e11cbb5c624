// Package metrics provides the observability hooks for tagdoc runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never needs nil checks:
//
//	p := pipeline.NewPipeline(reg, w, cfg, pipeline.WithRecorder(metrics.NewPrometheusRecorder(promReg)))
//
// A run is a short-lived batch job, so instead of serving a scrape endpoint
// the CLI writes the registry to a textfile with WriteTextfile once the run
// completes.
package metrics
