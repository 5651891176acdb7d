// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"

	"github.com/katalvlaran/localcomm/bfs"
	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// Neighborhood returns every vertex within Hops hops of the seed.
type Neighborhood struct {
	hops int
	opts options
}

// NewNeighborhood validates cfg (Hops >= 0).
func NewNeighborhood(cfg NeighborhoodConfig, opts ...Option) (*Neighborhood, error) {
	if cfg.Hops < 0 {
		return nil, fmt.Errorf("%w: neighborhood hops %d < 0", ErrInvalidConfig, cfg.Hops)
	}

	return &Neighborhood{hops: cfg.Hops, opts: buildOptions(KindNeighborhood, opts)}, nil
}

// Name implements Detector.
func (d *Neighborhood) Name() string { return string(KindNeighborhood) }

// Detect returns the Hops-ball around seed, named after the seed key.
func (d *Neighborhood) Detect(g *core.Graph, seed string) (*community.Community, error) {
	c, err := seedCommunity(g, seed)
	if err != nil {
		return nil, err
	}
	c.SetName(seed)

	ball, err := bfs.Within(g, seed, d.hops)
	if err != nil {
		return nil, fmt.Errorf("detector: neighborhood of %q: %w", seed, err)
	}
	for _, v := range ball {
		if err = c.Add(v); err != nil {
			return nil, err
		}
	}
	d.opts.log.WithField("seed", seed).WithField("size", c.Size()).Debug("neighborhood collected")

	return c, nil
}
