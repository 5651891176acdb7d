// SPDX-License-Identifier: MIT
// File: partition.go
// Role: Partition pairs a reference graph with an ordered list of communities
// and renders the textual partition report.
package community

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/localcomm/core"
)

// reportMemberLimit caps the member keys printed per community.
const reportMemberLimit = 100

// Partition is a graph plus the communities found (or generated) on it.
// Communities may overlap; nothing here enforces disjointness.
type Partition struct {
	graph       *core.Graph
	communities []*Community
}

// NewPartition creates an empty partition over g.
func NewPartition(g *core.Graph) *Partition {
	return &Partition{graph: g}
}

// Graph returns the reference graph.
func (p *Partition) Graph() *core.Graph { return p.graph }

// Add appends c.
func (p *Partition) Add(c *Community) { p.communities = append(p.communities, c) }

// Len returns the number of communities.
func (p *Partition) Len() int { return len(p.communities) }

// Community returns the i-th community.
func (p *Partition) Community(i int) (*Community, error) {
	if i < 0 || i >= len(p.communities) {
		return nil, fmt.Errorf("%w: %d of %d", ErrCommunityIndex, i, len(p.communities))
	}

	return p.communities[i], nil
}

// Communities returns the communities in insertion order.
func (p *Partition) Communities() []*Community {
	out := make([]*Community, len(p.communities))
	copy(out, p.communities)

	return out
}

// IndexOf returns the index of the first community containing key, or -1.
func (p *Partition) IndexOf(key string) int {
	for i, c := range p.communities {
		if c.Contains(key) {
			return i
		}
	}

	return -1
}

// WriteReport writes the human-readable partition report:
//
//	GRAPH PARTITION FOR GRAPH: G(V, E)
//
//	COMMUNITIES: n
//
//	1.	COMMUNITY id:  size tags
//		k1, k2, ...
//
// At most 100 member keys are listed per community.
func (p *Partition) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	v, e := 0, 0
	if p.graph != nil {
		v, e = p.graph.VertexCount(), p.graph.EdgeCount()
	}
	fmt.Fprintf(bw, "GRAPH PARTITION FOR GRAPH: G(%d, %d)\n\n", v, e)
	fmt.Fprintf(bw, "COMMUNITIES: %d\n\n", len(p.communities))
	for i, c := range p.communities {
		members := c.Members()
		fmt.Fprintf(bw, "%d.\tCOMMUNITY %d:  %d tags\n", i+1, c.ID(), len(members))
		if len(members) > reportMemberLimit {
			members = members[:reportMemberLimit]
		}
		fmt.Fprintf(bw, "\t%s\n", strings.Join(members, ", "))
	}

	return bw.Flush()
}
