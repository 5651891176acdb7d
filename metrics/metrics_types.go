// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus instrumentation for detection runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of DetectionsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Registry holds all metrics of a run on its own Prometheus registry.
type Registry struct {
	// Detection metrics
	DetectionsTotal   *prometheus.CounterVec
	DetectionDuration *prometheus.HistogramVec
	CommunitySize     *prometheus.HistogramVec

	// Graph metrics
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initDetectionMetrics()
	r.initGraphMetrics()

	return r
}

// Prometheus returns the underlying Prometheus registry, e.g. for promhttp or Gather.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}
