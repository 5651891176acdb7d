// SPDX-License-Identifier: MIT
// File: community.go
// Role: Graph-bound membership set with validity and connectivity checks.
//
// Determinism:
//   - Members() returns keys sorted lexicographically ascending.
//
// Concurrency:
//   - A Community is owned by one goroutine at a time (one detection call);
//     it holds no lock. The backing graph is only read.
package community

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/localcomm/core"
	"github.com/katalvlaran/localcomm/dfs"
)

// Community is a set of vertex keys of one backing graph.
//
// The graph is referenced, never owned or mutated. Every key was resolvable at
// insertion time; IsValid reports whether that still holds.
type Community struct {
	id      int
	name    string
	members map[string]struct{}
	graph   *core.Graph
}

// New creates an empty community bound to g.
//
// Errors:
//   - ErrInvalidID: id < 0.
//   - ErrUninitializedCommunity: g == nil.
func New(id int, g *core.Graph) (*Community, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if g == nil {
		return nil, ErrUninitializedCommunity
	}

	return &Community{id: id, members: make(map[string]struct{}), graph: g}, nil
}

// NewWithMembers creates a community bound to g holding keys.
// Duplicate keys collapse; the first unresolved key aborts construction.
func NewWithMembers(id int, g *core.Graph, keys []string) (*Community, error) {
	c, err := New(id, g)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if err = c.Add(k); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ID returns the non-negative community id.
func (c *Community) ID() int { return c.id }

// Name returns the optional display name ("" if unset).
func (c *Community) Name() string { return c.name }

// SetName sets the display name.
func (c *Community) SetName(name string) { c.name = name }

// Graph returns the backing graph.
func (c *Community) Graph() *core.Graph { return c.graph }

// Add inserts key. Re-inserting a member is a no-op.
//
// Errors:
//   - ErrUninitializedCommunity: zero-value Community.
//   - ErrVertexNotInGraph: key does not resolve in the backing graph.
func (c *Community) Add(key string) error {
	if c.graph == nil {
		return ErrUninitializedCommunity
	}
	if !c.graph.HasVertex(key) {
		return fmt.Errorf("%w: %q", ErrVertexNotInGraph, key)
	}
	if c.members == nil {
		c.members = make(map[string]struct{})
	}
	c.members[key] = struct{}{}

	return nil
}

// AddVertex inserts v by its key.
func (c *Community) AddVertex(v *core.Vertex) error {
	if v == nil {
		return fmt.Errorf("%w: nil vertex", ErrVertexNotInGraph)
	}

	return c.Add(v.ID)
}

// Remove deletes key; removing a non-member is a no-op.
func (c *Community) Remove(key string) { delete(c.members, key) }

// RemoveVertex deletes v by its key.
func (c *Community) RemoveVertex(v *core.Vertex) {
	if v != nil {
		c.Remove(v.ID)
	}
}

// Contains reports membership of key.
func (c *Community) Contains(key string) bool {
	_, ok := c.members[key]
	return ok
}

// ContainsVertex reports membership of v.
func (c *Community) ContainsVertex(v *core.Vertex) bool {
	return v != nil && c.Contains(v.ID)
}

// Members returns the member keys sorted ascending.
func (c *Community) Members() []string {
	out := make([]string, 0, len(c.members))
	for k := range c.members {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Size returns the number of members.
func (c *Community) Size() int { return len(c.members) }

// IsEmpty reports whether the community has no members.
func (c *Community) IsEmpty() bool { return len(c.members) == 0 }

// IsConnected reports whether the members induce a connected subgraph.
// It walks from an arbitrary member over edges restricted to other members.
// An empty or uninitialized community is not connected.
//
// Complexity: O(Σ deg(member)).
func (c *Community) IsConnected() bool {
	if c.graph == nil || len(c.members) == 0 {
		return false
	}
	var start string
	for k := range c.members {
		start = k
		break
	}
	res, err := dfs.DFS(c.graph, start, dfs.WithFilterNeighbor(c.Contains))
	if err != nil {
		return false
	}

	return len(res.Order) == len(c.members)
}

// IsValid reports whether every member still resolves in the backing graph.
func (c *Community) IsValid() bool {
	if c.graph == nil {
		return false
	}
	for k := range c.members {
		if !c.graph.HasVertex(k) {
			return false
		}
	}

	return true
}

// Validate is IsValid with diagnostics: it reports every unresolved member.
func (c *Community) Validate() error {
	if c.graph == nil {
		return ErrUninitializedCommunity
	}
	var err error
	for _, k := range c.Members() {
		if !c.graph.HasVertex(k) {
			err = multierror.Append(err, fmt.Errorf("%w: %q", ErrVertexNotInGraph, k))
		}
	}

	return err
}

// Copy materializes the subgraph induced by the members: a fresh graph with
// one vertex per member and one edge per member pair adjacent in the backing
// graph. It allocates a new graph on every call.
//
// Complexity: O(Σ deg(member)).
func (c *Community) Copy() (*core.Graph, error) {
	if c.graph == nil {
		return nil, ErrUninitializedCommunity
	}
	sub, err := c.graph.Subgraph(c.Members())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommunity, err)
	}

	return sub, nil
}

// EdgeCounts returns the number of edges with both endpoints inside the
// community (internal) and with exactly one endpoint inside (external).
//
// Errors:
//   - ErrUninitializedCommunity: no bound graph.
//   - ErrInvalidCommunity: a member does not resolve.
func (c *Community) EdgeCounts() (internal, external int, err error) {
	if c.graph == nil {
		return 0, 0, ErrUninitializedCommunity
	}
	twiceInternal := 0
	for k := range c.members {
		nbrs, nerr := c.graph.NeighborIDs(k)
		if nerr != nil {
			return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidCommunity, k, nerr)
		}
		for _, n := range nbrs {
			if c.Contains(n) {
				twiceInternal++
			} else {
				external++
			}
		}
	}

	return twiceInternal / 2, external, nil
}

// Clone returns an independent copy of the membership bound to the same graph.
func (c *Community) Clone() *Community {
	out := &Community{id: c.id, name: c.name, graph: c.graph, members: make(map[string]struct{}, len(c.members))}
	for k := range c.members {
		out.members[k] = struct{}{}
	}

	return out
}

// String renders the community as "name#id[size]".
func (c *Community) String() string {
	return fmt.Sprintf("%s#%d[%d]", c.name, c.id, len(c.members))
}
