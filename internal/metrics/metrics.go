// Package metrics records search runs as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/statespace/search"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder implements search.Recorder on a private registry.
type Recorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	expanded    *prometheus.HistogramVec
	stale       *prometheus.CounterVec
	pathLength  *prometheus.GaugeVec
	frontierMax *prometheus.GaugeVec
}

// NewRecorder registers the statespace metrics on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statespace_runs_total",
				Help: "Total number of search runs by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statespace_expanded_nodes",
				Help:    "Nodes expanded per search run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),
		stale: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statespace_stale_nodes_total",
				Help: "Popped nodes dropped because a cheaper path was already known",
			},
			[]string{"strategy"},
		),
		pathLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "statespace_last_path_length",
				Help: "States on the path of the latest successful run",
			},
			[]string{"strategy"},
		),
		frontierMax: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "statespace_last_frontier_peak",
				Help: "Largest frontier size observed in the latest run",
			},
			[]string{"strategy"},
		),
	}
	r.registry.MustRegister(r.runs, r.expanded, r.stale, r.pathLength, r.frontierMax)

	return r
}

// RecordRun implements search.Recorder.
func (r *Recorder) RecordRun(rep search.Report) {
	outcome := OutcomeNotFound
	switch {
	case rep.Err != nil:
		outcome = OutcomeError
	case rep.Found:
		outcome = OutcomeFound
		r.pathLength.WithLabelValues(rep.Strategy).Set(float64(rep.PathLength))
	}
	r.runs.WithLabelValues(rep.Strategy, outcome).Inc()
	r.expanded.WithLabelValues(rep.Strategy).Observe(float64(rep.Stats.Expanded))
	r.stale.WithLabelValues(rep.Strategy).Add(float64(rep.Stats.Stale))
	r.frontierMax.WithLabelValues(rep.Strategy).Set(float64(rep.Stats.MaxFrontier))
}

// Registry exposes the underlying registry, for example to serve it.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
