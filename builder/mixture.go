// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// mixture.go - synthetic community mixtures with a known reference partition.
//
// Model:
//   1. Community sizes are drawn around Nodes/Communities; SizeVariation is the
//      ratio between the largest and the smallest allowed size. The last
//      community takes whatever nodes remain.
//   2. Each community receives a total degree budget in [MinTotalDegree,
//      MaxTotalDegree] and an out-fraction pOut in [MinPOut, MaxPOut];
//      round(pOut·total) links are reserved for the outside.
//   3. Inside a community every pair is joined with probability
//      (total - out)/size, clamped to 1.
//   4. Each member then scans the other communities' vertices in key order and
//      links to each with probability pOut until its outside budget is spent.
//
// Keys come from a sequence scoped to one call: two runs with the same seed
// produce the same keys and the same edges.
//
// Determinism:
//   - Requires an RNG (WithSeed/WithRand). All draws happen in a fixed order.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// MixtureParams describes a synthetic community mixture.
type MixtureParams struct {
	Nodes          int     `yaml:"nodes"`
	Communities    int     `yaml:"communities"`
	SizeVariation  float64 `yaml:"size_variation"`
	MinTotalDegree int     `yaml:"min_total_degree"`
	MaxTotalDegree int     `yaml:"max_total_degree"`
	MinPOut        float64 `yaml:"min_p_out"`
	MaxPOut        float64 `yaml:"max_p_out"`
}

// DefaultMixtureParams returns 100 nodes in 4 equally sized communities,
// total degree 15 and 5% of links pointing outside.
func DefaultMixtureParams() MixtureParams {
	return MixtureParams{
		Nodes:          100,
		Communities:    4,
		SizeVariation:  1.0,
		MinTotalDegree: 15,
		MaxTotalDegree: 15,
		MinPOut:        0.05,
		MaxPOut:        0.05,
	}
}

// Validate reports every inconsistent field at once. Each reported error wraps
// ErrInvalidMixture.
func (p MixtureParams) Validate() error {
	var err error
	bad := func(format string, args ...interface{}) {
		err = multierror.Append(err, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidMixture))
	}

	if p.Nodes < 1 {
		bad("nodes=%d < 1", p.Nodes)
	}
	if p.Communities < 1 || p.Communities > p.Nodes {
		bad("communities=%d not in [1,%d]", p.Communities, p.Nodes)
	}
	if p.SizeVariation < 1 {
		bad("size_variation=%g < 1", p.SizeVariation)
	}
	if p.MinTotalDegree < 0 || p.MaxTotalDegree > p.Nodes-1 {
		bad("total degree [%d,%d] not within [0,%d]", p.MinTotalDegree, p.MaxTotalDegree, p.Nodes-1)
	}
	if p.MinTotalDegree > p.MaxTotalDegree {
		bad("min_total_degree=%d > max_total_degree=%d", p.MinTotalDegree, p.MaxTotalDegree)
	}
	if p.MinPOut < MinProbability || p.MaxPOut > MaxProbability {
		bad("p_out [%g,%g] not within [0,1]", p.MinPOut, p.MaxPOut)
	}
	if p.MinPOut > p.MaxPOut {
		bad("min_p_out=%g > max_p_out=%g", p.MinPOut, p.MaxPOut)
	}

	return err
}

// keySequence hands out consecutive vertex keys for one generator run.
type keySequence struct {
	idFn IDFn
	next int
}

func (s *keySequence) take(n int) []string {
	ids := indexIDs(s.idFn, s.next, n)
	s.next += n

	return ids
}

// mixtureCommunity is the per-community plan drawn before linking.
type mixtureCommunity struct {
	members   []string
	outDegree int
	pOut      float64
}

// CommunityMixture generates a graph with a planted community structure and
// returns it as a partition whose communities are the planted ones, in
// creation order (community i has ID i).
//
// Errors:
//   - ErrInvalidMixture (possibly several, aggregated) for bad params.
//   - ErrNeedRandSource when no RNG option is supplied.
//
// Complexity: O(N²) draws for the outside links, O(Σ size²) inside.
func CommunityMixture(params MixtureParams, gopts []core.GraphOption, bopts ...BuilderOption) (*community.Partition, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodMixture, err)
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodMixture, ErrNeedRandSource, "no seed")
	}

	g := core.NewGraph(gopts...)
	plans, err := plantCommunities(g, cfg, params)
	if err != nil {
		return nil, err
	}

	part := community.NewPartition(g)
	for i, plan := range plans {
		c, err := community.NewWithMembers(i, g, plan.members)
		if err != nil {
			return nil, fmt.Errorf("%s: community %d: %w", MethodMixture, i, err)
		}
		part.Add(c)
	}

	if err := linkCommunities(g, cfg, plans, cfg.rng); err != nil {
		return nil, err
	}

	return part, nil
}

// plantCommunities draws sizes and budgets and samples the inner edges.
func plantCommunities(g *core.Graph, cfg builderConfig, params MixtureParams) ([]mixtureCommunity, error) {
	rng := cfg.rng
	avg := float64(params.Nodes / params.Communities)
	v := params.SizeVariation
	minNodes := int(math.Round(2 * avg / (1 + v)))
	maxNodes := int(math.Round(2 * avg * v / (1 + v)))

	seq := &keySequence{idFn: cfg.idFn}
	plans := make([]mixtureCommunity, params.Communities)
	placed := 0
	for i := range plans {
		size := minNodes + int(math.Round(rng.Float64()*float64(maxNodes-minNodes)))
		total := params.MinTotalDegree + rng.Intn(params.MaxTotalDegree-params.MinTotalDegree+1)
		pOut := params.MinPOut + rng.Float64()*(params.MaxPOut-params.MinPOut)
		outDegree := int(math.Round(pOut * float64(total)))

		if i == len(plans)-1 {
			size = params.Nodes - placed
		}
		if size < 1 {
			cfg.log.WithField("community", i).Warn("community forced to a single node")
			size = 1
		}
		inDensity := float64(total-outDegree) / float64(size)
		if inDensity > MaxProbability {
			cfg.log.WithFields(logrus.Fields{
				"community": i,
				"density":   inDensity,
			}).Warn("inner density clamped to 1")
			inDensity = MaxProbability
		}

		ids := seq.take(size)
		if err := addVertices(g, MethodMixture, ids); err != nil {
			return nil, err
		}
		if err := sampleDense(g, cfg, MethodMixture, ids, inDensity, rng); err != nil {
			return nil, err
		}
		placed += size
		plans[i] = mixtureCommunity{members: ids, outDegree: outDegree, pOut: pOut}
	}

	return plans, nil
}

// linkCommunities adds the outside links of every planted community.
func linkCommunities(g *core.Graph, cfg builderConfig, plans []mixtureCommunity, rng *rand.Rand) error {
	all := g.Vertices()
	for _, plan := range plans {
		if plan.outDegree == 0 {
			continue
		}
		inside := make(map[string]struct{}, len(plan.members))
		for _, id := range plan.members {
			inside[id] = struct{}{}
		}
		threshold := 1.0 - plan.pOut
		for _, u := range plan.members {
			links := 0
			for _, w := range all {
				if _, ok := inside[w]; ok || g.HasEdge(u, w) {
					continue
				}
				if rng.Float64() <= threshold {
					continue
				}
				if err := connect(g, cfg, MethodMixture, u, w); err != nil {
					return err
				}
				if links++; links >= plan.outDegree {
					break
				}
			}
		}
	}

	return nil
}
