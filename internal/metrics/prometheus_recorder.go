package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	reg           *prom.Registry
	stageDuration *prom.HistogramVec
	buildDuration prom.Histogram
	pageDuration  prom.Histogram
	stageResults  *prom.CounterVec
	buildOutcome  *prom.CounterVec
	pages         *prom.CounterVec
	skipped       prom.Counter
	indexEntries  prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.pageDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Duration of rendering a single markdown page",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"})
		pr.pages = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_rendered_total",
			Help:      "Rendered pages by kind",
		}, []string{"kind"})
		pr.skipped = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "files_skipped_total",
			Help:      "Non-markdown files skipped during the walk",
		})
		pr.indexEntries = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "index_entries",
			Help:      "Entries written to the search index by the last build",
		})
		reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.pageDuration, pr.stageResults, pr.buildOutcome, pr.pages, pr.skipped, pr.indexEntries)
	})
	return pr
}

// Registry exposes the registry the recorder's collectors live in.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

// WriteTextfile dumps the current metric values in the node_exporter
// textfile format. The file is written atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}
func (p *PrometheusRecorder) ObservePageDuration(d time.Duration) {
	if p == nil || p.pageDuration == nil {
		return
	}
	p.pageDuration.Observe(d.Seconds())
}
func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}
func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncPages(kind PageKind) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncSkipped() {
	if p == nil || p.skipped == nil {
		return
	}
	p.skipped.Inc()
}

func (p *PrometheusRecorder) SetIndexEntries(n int) {
	if p == nil || p.indexEntries == nil {
		return
	}
	p.indexEntries.Set(float64(n))
}
