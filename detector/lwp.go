// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// SeparatedModularity is returned by LWPModularity for a community with
// internal edges and no external edge at all.
const SeparatedModularity = math.MaxFloat64

// LWPModularity returns internal/external edge counts of c.
//
//   - no external and at least one internal edge → SeparatedModularity
//   - no edges at all (an isolated vertex, or an empty community) → 0
//
// Errors wrap community.ErrInvalidCommunity when a member does not resolve.
func LWPModularity(c *community.Community) (float64, error) {
	if c == nil {
		return 0, community.ErrUninitializedCommunity
	}
	in, out, err := c.EdgeCounts()
	if err != nil {
		return 0, fmt.Errorf("detector: lwp modularity: %w", err)
	}
	switch {
	case out == 0 && in > 0:
		return SeparatedModularity, nil
	case out == 0:
		return 0, nil
	default:
		return float64(in) / float64(out), nil
	}
}

// LWP alternates greedy additions and connectivity-preserving deletions
// while either phase raises LWPModularity.
type LWP struct {
	opts options
}

// NewLWP builds the detector; it has no tunable parameters.
func NewLWP(opts ...Option) *LWP {
	return &LWP{opts: buildOptions(KindLWP, opts)}
}

// Name implements Detector.
func (d *LWP) Name() string { return string(KindLWP) }

// Detect implements Detector. When the final community does not have positive
// modularity or has lost the seed, an empty community is returned with a nil
// error and a warning is logged; callers must check IsEmpty.
func (d *LWP) Detect(g *core.Graph, seed string) (*community.Community, error) {
	c, err := seedCommunity(g, seed)
	if err != nil {
		return nil, err
	}
	candidates := make(map[string]struct{})
	if err = addOutside(g, c, seed, candidates); err != nil {
		return nil, err
	}

	rounds := 0
	for {
		rounds++
		best, merr := LWPModularity(c)
		if merr != nil {
			return nil, merr
		}

		accepted, aerr := d.addPhase(g, c, candidates, &best)
		if aerr != nil {
			return nil, aerr
		}
		if err = d.deletePhase(c, accepted, &best); err != nil {
			return nil, err
		}
		if len(accepted) == 0 {
			break
		}
		for _, v := range sortedKeys(accepted) {
			if err = addOutside(g, c, v, candidates); err != nil {
				return nil, err
			}
		}
	}

	final, err := LWPModularity(c)
	if err != nil {
		return nil, err
	}
	log := d.opts.log.WithField("seed", seed).WithField("rounds", rounds)
	if final > 0 && c.Contains(seed) {
		log.WithField("size", c.Size()).WithField("modularity", final).Debug("converged")
		return c, nil
	}
	log.WithField("modularity", final).Warn("no community with positive modularity contains the seed; returning empty community")

	return community.New(resultID, g)
}

// addPhase tries each candidate in ascending key order and keeps it iff
// modularity strictly rises. Only candidates adjacent to the current community
// are tried, so additions never disconnect it. Accepted vertices leave the
// candidate set and are returned.
func (d *LWP) addPhase(g *core.Graph, c *community.Community, candidates map[string]struct{}, best *float64) (map[string]struct{}, error) {
	accepted := make(map[string]struct{})
	for _, v := range sortedKeys(candidates) {
		if c.Contains(v) {
			delete(candidates, v)
			continue
		}
		touches, err := adjacentTo(g, c, v)
		if err != nil {
			return nil, err
		}
		if !touches {
			continue
		}
		if err = c.Add(v); err != nil {
			return nil, err
		}
		q, err := LWPModularity(c)
		if err != nil {
			return nil, err
		}
		if q > *best {
			*best = q
			accepted[v] = struct{}{}
			delete(candidates, v)
		} else {
			c.Remove(v)
		}
	}

	return accepted, nil
}

// deletePhase repeats full member scans until one removes nothing. A member
// is dropped iff modularity strictly rises and the rest stays connected.
// Dropped vertices are also withdrawn from accepted.
func (d *LWP) deletePhase(c *community.Community, accepted map[string]struct{}, best *float64) error {
	for {
		removed := 0
		for _, v := range c.Members() {
			c.Remove(v)
			q, err := LWPModularity(c)
			if err != nil {
				return err
			}
			if q > *best && c.IsConnected() {
				*best = q
				delete(accepted, v)
				removed++
				continue
			}
			if err = c.Add(v); err != nil {
				return err
			}
		}
		if removed == 0 {
			return nil
		}
	}
}

// adjacentTo reports whether v has a neighbor in c.
func adjacentTo(g *core.Graph, c *community.Community, v string) (bool, error) {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return false, err
	}
	for _, n := range nbrs {
		if c.Contains(n) {
			return true, nil
		}
	}

	return false, nil
}
