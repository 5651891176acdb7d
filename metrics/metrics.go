// SPDX-License-Identifier: MIT
package metrics

import (
	"time"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
	"github.com/katalvlaran/localcomm/detector"
)

// RecordDetection records one finished detection. size is ignored unless
// outcome is OutcomeOK.
func (r *Registry) RecordDetection(algorithm, outcome string, duration time.Duration, size int) {
	r.DetectionsTotal.WithLabelValues(algorithm, outcome).Inc()
	r.DetectionDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if outcome == OutcomeOK {
		r.CommunitySize.WithLabelValues(algorithm).Observe(float64(size))
	}
}

// RecordGraph publishes the size of g.
func (r *Registry) RecordGraph(g *core.Graph) {
	r.GraphVertices.Set(float64(g.VertexCount()))
	r.GraphEdges.Set(float64(g.EdgeCount()))
}

// instrumented decorates a Detector with RecordDetection.
type instrumented struct {
	detector.Detector
	reg *Registry
}

// Instrument wraps d so that every Detect call is counted and timed in r.
// An empty community (LWP soft failure) is counted as OutcomeEmpty.
func Instrument(d detector.Detector, r *Registry) detector.Detector {
	return &instrumented{Detector: d, reg: r}
}

// Detect implements detector.Detector.
func (i *instrumented) Detect(g *core.Graph, seed string) (*community.Community, error) {
	start := time.Now()
	c, err := i.Detector.Detect(g, seed)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		i.reg.RecordDetection(i.Name(), OutcomeError, elapsed, 0)
	case c.IsEmpty():
		i.reg.RecordDetection(i.Name(), OutcomeEmpty, elapsed, 0)
	default:
		i.reg.RecordDetection(i.Name(), OutcomeOK, elapsed, c.Size())
	}

	return c, err
}
