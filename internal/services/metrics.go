package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry          *prometheus.Registry
	documentsAnalyzed *prometheus.CounterVec
	matchScore        prometheus.Histogram
	composeRequests   prometheus.Counter
	modelLoads        *prometheus.CounterVec
}

// NewMetrics registers the service collectors on a private registry so tests can
// build as many instances as they like.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		documentsAnalyzed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_ats",
			Name:      "documents_analyzed_total",
			Help:      "Uploaded documents processed by the analyzer.",
		}, []string{"kind", "outcome"}),
		matchScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resume_ats",
			Name:      "match_score_percent",
			Help:      "Distribution of document match scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		composeRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resume_ats",
			Name:      "compose_requests_total",
			Help:      "Resume and cover letter compositions.",
		}),
		modelLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_ats",
			Name:      "model_loads_total",
			Help:      "Attempts to initialise the language model handle.",
		}, []string{"outcome"}),
	}

	m.Registry.MustRegister(
		m.documentsAnalyzed,
		m.matchScore,
		m.composeRequests,
		m.modelLoads,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) RecordDocument(kind string, outcome string) {
	if m == nil {
		return
	}
	m.documentsAnalyzed.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RecordScore(score float64) {
	if m == nil {
		return
	}
	m.matchScore.Observe(score)
}

func (m *Metrics) RecordCompose() {
	if m == nil {
		return
	}
	m.composeRequests.Inc()
}

func (m *Metrics) RecordModelLoad(outcome string) {
	if m == nil {
		return
	}
	m.modelLoads.WithLabelValues(outcome).Inc()
}
