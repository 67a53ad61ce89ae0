// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/fuse/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "fuse"

// Prometheus records dispatcher activity on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	// resolves counts mutation string requests.
	// Labels: mutation, outcome (single_component, identical_documents, cache_hit, merged, failed)
	resolves *prometheus.CounterVec

	// mergeDuration measures cache miss merges.
	// Labels: mutation
	mergeDuration *prometheus.HistogramVec

	// mergeDocuments tracks how many documents each merge folded together.
	// Labels: mutation
	mergeDocuments *prometheus.HistogramVec
}

// New creates a Prometheus recorder with a fresh registry.
func New() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		resolves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatcher",
			Name:      "resolves_total",
			Help:      "Total mutation string requests by outcome",
		}, []string{"mutation", "outcome"}),
		mergeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "merger",
			Name:      "duration_seconds",
			Help:      "Time spent parsing, merging and printing on a cache miss",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"mutation"}),
		mergeDocuments: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "merger",
			Name:      "documents",
			Help:      "Distinct documents folded into one merged mutation",
			Buckets:   []float64{2, 3, 5, 10, 25, 50},
		}, []string{"mutation"}),
	}
}

// ObserveResolve counts one mutation string request.
func (p *Prometheus) ObserveResolve(mutationName string, outcome domain.ResolveOutcome) {
	p.resolves.WithLabelValues(mutationName, string(outcome)).Inc()
}

// ObserveMerge records one cache miss merge.
func (p *Prometheus) ObserveMerge(mutationName string, documents int, elapsed time.Duration) {
	p.mergeDuration.WithLabelValues(mutationName).Observe(elapsed.Seconds())
	p.mergeDocuments.WithLabelValues(mutationName).Observe(float64(documents))
}

// Registry returns the registry the collectors are registered on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// WriteText writes every collected metric family to w in the Prometheus text format.
func (p *Prometheus) WriteText(w io.Writer) error {
	families, err := p.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write metrics"), "family", mf.GetName())
		}
	}
	return nil
}
