// File: index.go
// Role: Dense vertex numbering and bitset adjacency built once per call.
// Determinism:
//   - IDs are sorted before numbering, so dense index order == lexicographic ID order.
//   - Neighbour lists are ascending dense indices without the vertex itself.

package subiso

import (
	"fmt"
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/subiso/core"
)

// index is an immutable, validated snapshot of a View.
type index struct {
	ids  []string       // dense index → ID (ascending)
	pos  map[string]int // ID → dense index
	adj  []bits.Bits    // adjacency rows, loops included
	nbrs [][]int        // distinct non-self neighbours, ascending
	loop []bool         // self-loop flag
	deg  []int          // len(nbrs[i])
}

// newIndex snapshots v. role ("target"/"pattern") is used for error context.
//
// Errors:
//   - ErrGraphNil for a nil view.
//   - ErrInvalidInput for empty/duplicate IDs, unknown or asymmetric neighbours,
//     or a NeighborIDs failure (also wrapped).
//
// Complexity: O(V log V + E log Δ) time, O(V² / 64 + E) space.
func newIndex(method, role string, v View) (*index, error) {
	if isNilView(v) {
		return nil, fmt.Errorf("%s: %s: %w", method, role, ErrGraphNil)
	}

	ids := append([]string(nil), v.Vertices()...)
	sort.Strings(ids)

	n := len(ids)
	idx := &index{
		ids:  ids,
		pos:  make(map[string]int, n),
		adj:  make([]bits.Bits, n),
		nbrs: make([][]int, n),
		loop: make([]bool, n),
		deg:  make([]int, n),
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%s: %s: empty vertex ID: %w", method, role, ErrInvalidInput)
		}
		if i > 0 && ids[i-1] == id {
			return nil, fmt.Errorf("%s: %s: duplicate vertex %q: %w", method, role, id, ErrInvalidInput)
		}
		idx.pos[id] = i
		idx.adj[i] = bits.New(n)
	}

	for i, id := range ids {
		raw, err := v.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: NeighborIDs(%q): %w: %w", method, role, id, ErrInvalidInput, err)
		}
		row := idx.adj[i]
		for _, nid := range raw {
			j, ok := idx.pos[nid]
			if !ok {
				return nil, fmt.Errorf("%s: %s: neighbour %q of %q is not a vertex: %w",
					method, role, nid, id, ErrInvalidInput)
			}
			if row.Bit(j) == 1 {
				continue // parallel edges collapse
			}
			row.SetBit(j, 1)
			if j == i {
				idx.loop[i] = true
				continue
			}
			idx.nbrs[i] = append(idx.nbrs[i], j)
		}
		sort.Ints(idx.nbrs[i])
		idx.deg[i] = len(idx.nbrs[i])
	}

	for i := range ids {
		for _, j := range idx.nbrs[i] {
			if idx.adj[j].Bit(i) == 0 {
				return nil, fmt.Errorf("%s: %s: edge %q-%q listed from one side only: %w",
					method, role, ids[i], ids[j], ErrInvalidInput)
			}
		}
	}

	return idx, nil
}

// size returns the number of vertices.
func (x *index) size() int { return len(x.ids) }

// hasEdge reports adjacency between dense indices i and j (i == j tests the loop).
func (x *index) hasEdge(i, j int) bool { return x.adj[i].Bit(j) == 1 }

// isNilView catches both a nil interface and a typed nil *core.Graph.
func isNilView(v View) bool {
	if v == nil {
		return true
	}
	g, ok := v.(*core.Graph)

	return ok && g == nil
}
