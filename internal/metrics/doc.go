// Package metrics provides build metrics for docsite.
//
// Components receive a Recorder through dependency injection. NoopRecorder is
// the default and does nothing; PrometheusRecorder registers collectors under
// the "docsite" namespace and can dump them to a node_exporter textfile after
// a build (see Config.MetricsFile).
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	walker := site.NewWalker(resolver, pipeline, engine).WithRecorder(rec)
//	_, err := walker.Walk(ctx)
//	_ = rec.WriteTextfile("docsite.prom")
package metrics
