// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"

	"github.com/katalvlaran/localcomm/bridging"
	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// BridgeBounding floods outward from the seed and refuses to cross edges
// whose bridging score exceeds the threshold.
type BridgeBounding struct {
	measure   bridging.Measure
	threshold float64
	opts      options
}

// NewBridgeBounding validates the measure name in cfg.
func NewBridgeBounding(cfg BridgeBoundingConfig, opts ...Option) (*BridgeBounding, error) {
	m, err := bridging.ParseMeasure(cfg.Measure)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &BridgeBounding{measure: m, threshold: cfg.Threshold, opts: buildOptions(KindBridgeBounding, opts)}, nil
}

// Name implements Detector.
func (d *BridgeBounding) Name() string { return string(KindBridgeBounding) }

// Detect runs a single-pass depth-first flood fill with an explicit LIFO
// frontier. Admitted members are never re-evaluated.
func (d *BridgeBounding) Detect(g *core.Graph, seed string) (*community.Community, error) {
	c, err := seedCommunity(g, seed)
	if err != nil {
		return nil, err
	}
	c.Remove(seed) // admitted by the flood like every other vertex
	calc, err := bridging.NewCalculator(g, d.measure)
	if err != nil {
		return nil, err
	}

	frontier := []string{seed}
	bounded := 0
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if c.Contains(v) {
			continue
		}
		if err = c.Add(v); err != nil {
			return nil, err
		}

		edges, ierr := g.IncidentEdges(v)
		if ierr != nil {
			return nil, fmt.Errorf("detector: bridge bounding at %q: %w", v, ierr)
		}
		for _, e := range edges {
			nbr := e.Other(v)
			if c.Contains(nbr) {
				continue
			}
			score, merr := calc.Measure(e)
			if merr != nil {
				return nil, merr
			}
			if score > d.threshold {
				bounded++
				continue
			}
			frontier = append(frontier, nbr)
		}
	}
	d.opts.log.WithField("seed", seed).WithField("size", c.Size()).
		WithField("bounded_edges", bounded).Debug("flood fill exhausted")

	return c, nil
}
