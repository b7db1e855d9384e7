// Package metrics collects Prometheus metrics for automaton builds,
// diagnosability checks and generator runs.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/desdiag/diagnosability"
)

// Registry holds every desdiag collector on a private prometheus.Registry.
type Registry struct {
	// Builder
	BuildsTotal   *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec

	// Diagnosability
	ChecksTotal    *prometheus.CounterVec
	CheckDuration  *prometheus.HistogramVec
	ObserverNodes  prometheus.Histogram
	CompositeNodes prometheus.Histogram

	// Generator
	GenerateAttempts prometheus.Histogram

	registry *prometheus.Registry
}

var sizeBuckets = []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	f := promauto.With(r.registry)

	r.BuildsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desdiag_builds_total",
			Help: "Total number of automata built",
		},
		[]string{"mode", "status"},
	)
	r.BuildDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "desdiag_build_duration_seconds",
			Help:    "Automaton construction duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"mode"},
	)

	r.ChecksTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "desdiag_checks_total",
			Help: "Total number of diagnosability checks by verdict",
		},
		[]string{"mode", "verdict"},
	)
	r.CheckDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "desdiag_check_duration_seconds",
			Help:    "Diagnosability check duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"mode"},
	)
	r.ObserverNodes = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "desdiag_observer_nodes",
			Help:    "Number of observer nodes per check",
			Buckets: sizeBuckets,
		},
	)
	r.CompositeNodes = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "desdiag_composite_nodes",
			Help:    "Number of composite product nodes per check",
			Buckets: sizeBuckets,
		},
	)

	r.GenerateAttempts = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "desdiag_generate_attempts",
			Help:    "Number of builds needed to obtain a diagnosable automaton",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Mode returns the mode label value.
func Mode(multiFaulty bool) string {
	if multiFaulty {
		return "multi"
	}
	return "single"
}

func verdict(diagnosable bool) string {
	if diagnosable {
		return "diagnosable"
	}
	return "not_diagnosable"
}

// RecordBuild records one Build call.
func (r *Registry) RecordBuild(multiFaulty bool, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.BuildsTotal.WithLabelValues(Mode(multiFaulty), status).Inc()
	r.BuildDuration.WithLabelValues(Mode(multiFaulty)).Observe(duration.Seconds())
}

// RecordCheck records one completed diagnosability check and the sizes of
// its derived graphs.
func (r *Registry) RecordCheck(multiFaulty, diagnosable bool, duration time.Duration, st diagnosability.Stats) {
	r.ChecksTotal.WithLabelValues(Mode(multiFaulty), verdict(diagnosable)).Inc()
	r.CheckDuration.WithLabelValues(Mode(multiFaulty)).Observe(duration.Seconds())
	r.ObserverNodes.Observe(float64(st.ObserverNodes))
	r.CompositeNodes.Observe(float64(st.CompositeNodes))
}

// RecordGenerate records the attempts one generator run needed.
func (r *Registry) RecordGenerate(attempts int) {
	r.GenerateAttempts.Observe(float64(attempts))
}

// WriteText dumps every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write: %w", err)
		}
	}

	return nil
}
