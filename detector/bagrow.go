// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// fullyInternal is the outwardness below which a candidate has every
// neighbor inside the community already.
const fullyInternal = -0.999999

// maxCusps is the number of trend reversals of the external-edge curve that ends growth.
const maxCusps = 2

// Bagrow admits the least outward candidate until the external-edge count
// has reversed its trend twice, or the size cap is reached.
type Bagrow struct {
	maxSize int
	opts    options
}

// NewBagrow validates cfg (MaxSize >= 1).
func NewBagrow(cfg BagrowConfig, opts ...Option) (*Bagrow, error) {
	if cfg.MaxSize < 1 {
		return nil, fmt.Errorf("%w: bagrow max size %d < 1", ErrInvalidConfig, cfg.MaxSize)
	}

	return &Bagrow{maxSize: cfg.MaxSize, opts: buildOptions(KindBagrow, opts)}, nil
}

// Name implements Detector.
func (d *Bagrow) Name() string { return string(KindBagrow) }

// Detect implements Detector.
func (d *Bagrow) Detect(g *core.Graph, seed string) (*community.Community, error) {
	c, _, err := d.grow(g, seed)
	return c, err
}

// grow runs the search and also reports the final cusp count.
func (d *Bagrow) grow(g *core.Graph, seed string) (*community.Community, int, error) {
	c, err := seedCommunity(g, seed)
	if err != nil {
		return nil, 0, err
	}
	candidates := make(map[string]struct{})
	if err = addOutside(g, c, seed, candidates); err != nil {
		return nil, 0, err
	}

	var (
		prevM      = 0
		rising     = true
		cusps      = 0
		stopReason = "size cap"
	)
	for c.Size() < d.maxSize && cusps < maxCusps {
		pick, perr := leastOutward(g, c, candidates)
		if perr != nil {
			return nil, cusps, perr
		}
		if pick == "" {
			stopReason = "no candidates"
			break
		}

		if err = c.Add(pick); err != nil {
			return nil, cusps, err
		}
		delete(candidates, pick)
		if err = addOutside(g, c, pick, candidates); err != nil {
			return nil, cusps, err
		}

		_, m, cerr := c.EdgeCounts()
		if cerr != nil {
			return nil, cusps, cerr
		}
		if up := m > prevM; up != rising {
			cusps++
			rising = up
		}
		prevM = m

		if cusps >= maxCusps {
			c.Remove(pick)
			stopReason = "second cusp"
			break
		}
	}
	d.opts.log.WithField("seed", seed).WithField("size", c.Size()).
		WithField("cusps", cusps).Debugf("stopped: %s", stopReason)

	return c, cusps, nil
}

// leastOutward returns the candidate with minimal outwardness 1 - 2*kin/deg.
// Candidates are scanned in ascending key order; the first strict minimum
// wins, and a fully internal candidate is taken immediately. "" means none.
func leastOutward(g *core.Graph, c *community.Community, candidates map[string]struct{}) (string, error) {
	best, bestScore := "", 1.0
	for _, u := range sortedKeys(candidates) {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return "", err
		}
		if len(nbrs) == 0 {
			continue
		}
		kin := 0
		for _, n := range nbrs {
			if c.Contains(n) {
				kin++
			}
		}
		score := 1.0 - 2.0*float64(kin)/float64(len(nbrs))
		if score < fullyInternal {
			return u, nil
		}
		if score < bestScore {
			best, bestScore = u, score
		}
	}

	return best, nil
}

// addOutside inserts the neighbors of v that are not members into set.
func addOutside(g *core.Graph, c *community.Community, v string, set map[string]struct{}) error {
	nbrs, err := g.NeighborIDs(v)
	if err != nil {
		return err
	}
	for _, n := range nbrs {
		if !c.Contains(n) {
			set[n] = struct{}{}
		}
	}

	return nil
}

// sortedKeys returns the keys of set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
