// SPDX-License-Identifier: MIT
// File: calculator.go
// Role: ELB / ELB2 edge scores with optional memoization on the edge payload.
//
// Concurrency:
//   - A Calculator only reads the graph. Memoization goes through the edge's
//     own cache lock, so one Calculator may be shared by concurrent detections.
package bridging

import (
	"fmt"

	"github.com/katalvlaran/localcomm/core"
)

// Calculator scores edges of one graph with one Measure.
type Calculator struct {
	graph   *core.Graph
	measure Measure
}

// NewCalculator binds a Calculator to g and m.
//
// Errors:
//   - ErrGraphNil: g == nil.
//   - ErrUnsupportedMeasure: m is not ELB or ELB2.
func NewCalculator(g *core.Graph, m Measure) (*Calculator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMeasure, m)
	}

	return &Calculator{graph: g, measure: m}, nil
}

// Kind returns the configured measure.
func (c *Calculator) Kind() Measure { return c.measure }

// Measure scores e with the configured measure.
func (c *Calculator) Measure(e *core.Edge) (float64, error) {
	if e == nil {
		return 0, ErrEdgeNil
	}
	switch c.measure {
	case ELB:
		return c.elb(e)
	case ELB2:
		return c.elb2(e)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMeasure, c.measure)
	}
}

// Between scores the edge joining a and b.
func (c *Calculator) Between(a, b string) (float64, error) {
	e, err := c.graph.Edge(a, b)
	if err != nil {
		return 0, fmt.Errorf("bridging: edge %q-%q: %w", a, b, err)
	}

	return c.Measure(e)
}

// elb computes edge local bridging.
//
// With d = min(deg(u)-1, deg(v)-1):
//   - d == 1 → 1.0 without comparing neighborhoods.
//   - d == 0 (a pendant endpoint) → 1.0; the edge is the endpoint's only tie.
//   - otherwise 1 - common(u,v)/d.
func (c *Calculator) elb(e *core.Edge) (float64, error) {
	if v, ok := e.CachedMeasure(string(ELB)); ok {
		return v, nil
	}

	du, err := c.graph.Degree(e.From)
	if err != nil {
		return 0, err
	}
	dv, err := c.graph.Degree(e.To)
	if err != nil {
		return 0, err
	}
	denominator := min(du-1, dv-1)
	if denominator <= 1 {
		e.StoreMeasure(string(ELB), 1.0)
		return 1.0, nil
	}

	nu, err := c.graph.NeighborIDs(e.From)
	if err != nil {
		return 0, err
	}
	nv, err := c.graph.NeighborIDs(e.To)
	if err != nil {
		return 0, err
	}
	common := countCommon(nu, nv)
	score := 1.0 - float64(common)/float64(denominator)
	e.StoreMeasure(string(ELB), score)

	return score, nil
}

// elb2 blends the edge's ELB with the mean ELB over the incident edges of
// both endpoints. The two incident lists are concatenated, so e itself is
// counted once per endpoint.
func (c *Calculator) elb2(e *core.Edge) (float64, error) {
	if v, ok := e.CachedMeasure(string(ELB2)); ok {
		return v, nil
	}

	own, err := c.elb(e)
	if err != nil {
		return 0, err
	}
	around := make([]*core.Edge, 0, 16)
	for _, end := range [2]string{e.From, e.To} {
		inc, ierr := c.graph.IncidentEdges(end)
		if ierr != nil {
			return 0, ierr
		}
		around = append(around, inc...)
	}

	sum := 0.0
	for _, x := range around {
		s, xerr := c.elb(x)
		if xerr != nil {
			return 0, xerr
		}
		sum += s
	}
	score := Alpha*own + (1.0-Alpha)*sum/float64(len(around))
	e.StoreMeasure(string(ELB2), score)

	return score, nil
}

// countCommon counts keys present in both sorted slices.
func countCommon(a, b []string) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return n
}
