// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/localcomm/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []string
}

// DFS performs an explicit-stack depth-first walk on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise, it
// starts only from startID.
// Returns DFSResult or an error if aborted by context or a neighbor lookup.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	res := &DFSResult{
		Parent:  make(map[string]string),
		Visited: make(map[string]bool),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(startID); err != nil {
		return res, err
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// Components returns the connected components of g, each sorted, ordered by
// their smallest vertex key.
func Components(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Trees occupy contiguous runs of the pre-order, each starting at its root.
	comps := make([][]string, 0, len(res.Roots))
	next := 0
	for _, v := range res.Order {
		if next < len(res.Roots) && v == res.Roots[next] {
			comps = append(comps, nil)
			next++
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], v)
	}
	for _, c := range comps {
		sort.Strings(c)
	}

	return comps, nil
}

// traverse walks the tree rooted at root. Neighbors are pushed in reverse
// sorted order so the smallest key is popped first.
func (w *dfsWalker) traverse(root string) error {
	w.res.Roots = append(w.res.Roots, root)
	w.res.Visited[root] = true
	w.stack = append(w.stack[:0], root)

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Order = append(w.res.Order, id)

		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			nid := nbs[i]
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
				w.opts.SkippedNeighbors++
				continue
			}
			w.res.Visited[nid] = true
			w.res.Parent[nid] = id
			w.stack = append(w.stack, nid)
		}
	}

	return nil
}
