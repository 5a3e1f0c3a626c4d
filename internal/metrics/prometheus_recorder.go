package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	generationDuration prom.Histogram
	generationOutcomes *prom.CounterVec
	artifactBytes      *prom.HistogramVec
	componentCount     prom.Histogram
	templateUses       *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.generationDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "pageforge",
			Name:      "generation_duration_seconds",
			Help:      "Total duration of one page generation pass",
			Buckets:   prom.DefBuckets,
		})
		pr.generationOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pageforge",
			Name:      "generation_outcomes_total",
			Help:      "Generation outcomes by final status",
		}, []string{"outcome"})
		pr.artifactBytes = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "pageforge",
			Name:      "artifact_bytes",
			Help:      "Size of generated artifacts by kind",
			Buckets:   prom.ExponentialBuckets(256, 4, 10),
		}, []string{"kind"})
		pr.componentCount = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "pageforge",
			Name:      "component_count",
			Help:      "Number of component instances per generated page",
			Buckets:   prom.LinearBuckets(0, 5, 10),
		})
		pr.templateUses = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pageforge",
			Name:      "template_uses_total",
			Help:      "Template-based generations by template id",
		}, []string{"template"})
		reg.MustRegister(pr.generationDuration, pr.generationOutcomes, pr.artifactBytes, pr.componentCount, pr.templateUses)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerationDuration(d time.Duration) {
	if p == nil || p.generationDuration == nil {
		return
	}
	p.generationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncGenerationOutcome(outcome OutcomeLabel) {
	if p == nil || p.generationOutcomes == nil {
		return
	}
	p.generationOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObserveArtifactBytes(kind ArtifactLabel, n int) {
	if p == nil || p.artifactBytes == nil {
		return
	}
	p.artifactBytes.WithLabelValues(string(kind)).Observe(float64(n))
}

func (p *PrometheusRecorder) ObserveComponentCount(n int) {
	if p == nil || p.componentCount == nil {
		return
	}
	p.componentCount.Observe(float64(n))
}

func (p *PrometheusRecorder) IncTemplateUse(id string) {
	if p == nil || p.templateUses == nil {
		return
	}
	p.templateUses.WithLabelValues(id).Inc()
}
