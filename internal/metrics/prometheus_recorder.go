package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docscaffold"

// PrometheusRecorder implements Recorder using Prometheus metrics on its own registry.
type PrometheusRecorder struct {
	registry     *prom.Registry
	pageResults  *prom.CounterVec
	pageDuration *prom.HistogramVec
	runDuration  prom.Histogram
	pagesPlanned prom.Gauge
	runOutcomes  *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics. A nil registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		pageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Pages processed by result",
		}, []string{"section", "result"}),
		pageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_write_duration_seconds",
			Help:      "Time spent rendering and writing a page, excluding pacing",
			Buckets:   prom.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"section"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		}),
		pagesPlanned: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_planned",
			Help:      "Pages declared by the configuration of the last run",
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Generation runs by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.pageResults, pr.pageDuration, pr.runDuration, pr.pagesPlanned, pr.runOutcomes)
	return pr
}

// Registry exposes the underlying registry.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) IncPageResult(section string, result PageResult) {
	p.pageResults.WithLabelValues(section, string(result)).Inc()
}

func (p *PrometheusRecorder) ObservePageDuration(section string, d time.Duration) {
	p.pageDuration.WithLabelValues(section).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetPagesPlanned(n int) {
	p.pagesPlanned.Set(float64(n))
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
