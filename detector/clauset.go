// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// maxIdleRounds is the number of consecutive rounds without an improving
// candidate after which Clauset growth stops.
const maxIdleRounds = 10

// Clauset greedily maximizes local modularity R = I/T, where T counts edges
// touching the boundary B and I counts those of them with both ends in the
// community.
type Clauset struct {
	targetSize int
	opts       options
}

// NewClauset validates cfg (TargetSize >= 1).
func NewClauset(cfg ClausetConfig, opts ...Option) (*Clauset, error) {
	if cfg.TargetSize < 1 {
		return nil, fmt.Errorf("%w: clauset target size %d < 1", ErrInvalidConfig, cfg.TargetSize)
	}

	return &Clauset{targetSize: cfg.TargetSize, opts: buildOptions(KindClauset, opts)}, nil
}

// Name implements Detector.
func (d *Clauset) Name() string { return string(KindClauset) }

// clausetState holds the running search. C is the community, B ⊆ C the
// members still adjacent to U, U the unclaimed vertices adjacent to C.
// I, T and R are only ever updated by deltas.
type clausetState struct {
	g    *core.Graph
	c    *community.Community
	b    map[string]struct{}
	u    map[string]struct{}
	nbrs map[string][]string
	i, t int
	r    float64
}

// move is the evaluated effect of admitting one candidate.
type move struct {
	vertex         string
	deltaI, deltaT int
	deltaR         float64
	joinsBoundary  bool
}

// Detect implements Detector.
func (d *Clauset) Detect(g *core.Graph, seed string) (*community.Community, error) {
	c, err := seedCommunity(g, seed)
	if err != nil {
		return nil, err
	}
	s := &clausetState{
		g:    g,
		c:    c,
		b:    map[string]struct{}{seed: {}},
		u:    make(map[string]struct{}),
		nbrs: make(map[string][]string),
	}
	seedNbrs, err := s.neighbors(seed)
	if err != nil {
		return nil, err
	}
	for _, n := range seedNbrs {
		s.u[n] = struct{}{}
	}
	s.t = len(seedNbrs)

	idle := 0
	for c.Size() < d.targetSize && idle < maxIdleRounds {
		best, ok, berr := s.bestMove()
		if berr != nil {
			return nil, berr
		}
		if !ok {
			idle++
			continue
		}
		idle = 0
		if err = s.apply(best); err != nil {
			return nil, err
		}
	}
	d.opts.log.WithField("seed", seed).WithField("size", c.Size()).
		WithField("r", s.r).Debug("local modularity search finished")

	return c, nil
}

// neighbors returns the sorted neighbor keys of v, memoized for the run.
func (s *clausetState) neighbors(v string) ([]string, error) {
	if n, ok := s.nbrs[v]; ok {
		return n, nil
	}
	n, err := s.g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}
	s.nbrs[v] = n

	return n, nil
}

// bestMove scans U in ascending key order and returns the first candidate
// with the strictly largest positive deltaR.
func (s *clausetState) bestMove() (move, bool, error) {
	var (
		best  move
		found bool
	)
	for _, u := range sortedKeys(s.u) {
		m, err := s.evaluate(u)
		if err != nil {
			return move{}, false, err
		}
		if m.deltaR > 0 && (!found || m.deltaR > best.deltaR) {
			best, found = m, true
		}
	}

	return best, found, nil
}

// evaluate computes exact deltaI and deltaT for admitting u.
//
// Let R0 be the boundary members whose only link into U is u, and B0 = B \ R0.
// u itself joins the boundary iff it has a neighbor outside C.
//
//	deltaT = [u joins] |N(u) \ B0| - (edges touching R0 but not B0)
//	deltaI = |N(u) ∩ B0| + [u joins] |N(u) ∩ (C \ B0)|
//	         - (edges touching R0 but not B0 with both ends in C)
func (s *clausetState) evaluate(u string) (move, error) {
	m := move{vertex: u}

	leaving := make(map[string]struct{})
	for b := range s.b {
		bn, err := s.neighbors(b)
		if err != nil {
			return move{}, err
		}
		stays := false
		for _, x := range bn {
			if _, inU := s.u[x]; inU && x != u {
				stays = true
				break
			}
		}
		if !stays {
			leaving[b] = struct{}{}
		}
	}
	inB0 := func(x string) bool {
		if _, ok := s.b[x]; !ok {
			return false
		}
		_, gone := leaving[x]
		return !gone
	}

	un, err := s.neighbors(u)
	if err != nil {
		return move{}, err
	}
	toB0, toRestOfC, outside := 0, 0, 0
	for _, x := range un {
		switch {
		case inB0(x):
			toB0++
		case s.c.Contains(x):
			toRestOfC++
		default:
			outside++
		}
	}
	m.joinsBoundary = outside > 0

	// Edges touching R0 and not B0, counted once even when both ends are in R0.
	lostT, lostI, withinR0 := 0, 0, 0
	for r := range leaving {
		rn, rerr := s.neighbors(r)
		if rerr != nil {
			return move{}, rerr
		}
		for _, x := range rn {
			if inB0(x) {
				continue
			}
			lostT++
			if s.c.Contains(x) {
				lostI++
			}
			if _, ok := leaving[x]; ok {
				withinR0++
			}
		}
	}
	withinR0 /= 2
	lostT -= withinR0
	lostI -= withinR0

	m.deltaI = toB0 - lostI
	m.deltaT = -lostT
	if m.joinsBoundary {
		m.deltaI += toRestOfC
		m.deltaT += len(un) - toB0
	}

	newT := s.t + m.deltaT
	newR := 1.0 // an empty boundary means nothing left to separate
	if newT > 0 {
		newR = float64(s.i+m.deltaI) / float64(newT)
	}
	m.deltaR = newR - s.r

	return m, nil
}

// apply admits m.vertex and updates U, B and the running totals.
func (s *clausetState) apply(m move) error {
	u := m.vertex
	if err := s.c.Add(u); err != nil {
		return err
	}
	delete(s.u, u)
	un, err := s.neighbors(u)
	if err != nil {
		return err
	}
	for _, x := range un {
		if !s.c.Contains(x) {
			s.u[x] = struct{}{}
		}
	}

	s.b[u] = struct{}{}
	for b := range s.b {
		bn, berr := s.neighbors(b)
		if berr != nil {
			return berr
		}
		keep := false
		for _, x := range bn {
			if _, inU := s.u[x]; inU {
				keep = true
				break
			}
		}
		if !keep {
			delete(s.b, b)
		}
	}

	s.r += m.deltaR
	s.t += m.deltaT
	s.i += m.deltaI

	return nil
}
