// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	r.DetectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "localcomm_detections_total",
			Help: "Total number of local community detections",
		},
		[]string{"algorithm", "outcome"},
	)

	r.DetectionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "localcomm_detection_duration_seconds",
			Help:    "Detection duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"algorithm"},
	)

	r.CommunitySize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "localcomm_community_size",
			Help:    "Number of members of detected communities",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 500},
		},
		[]string{"algorithm"},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "localcomm_graph_vertices",
		Help: "Vertices of the graph under analysis",
	})
	r.GraphEdges = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "localcomm_graph_edges",
		Help: "Edges of the graph under analysis",
	})
}
