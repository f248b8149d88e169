// Package metrics records generation metrics.
//
// Components depend on the Recorder interface and default to NoopRecorder, so
// metrics collection never needs nil checks. The CLI swaps in a
// PrometheusRecorder when --metrics-file is set and writes the registry out in
// the Prometheus text format after each run:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	gen := generator.New(cfg, out, generator.WithRecorder(rec))
//	...
//	err := rec.WriteTextfile("docscaffold.prom")
package metrics
