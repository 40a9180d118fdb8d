// File: methods_adjacent.go
// Role: NeighborIDs and the adjacency helpers behind AddEdge.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// A vertex with a self-loop lists itself.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k is the number of distinct neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacencyList[id]
	ids := make([]string, 0, len(bucket))
	for v, edgeSet := range bucket {
		if len(edgeSet) > 0 {
			ids = append(ids, v)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureVertexBucket guarantees that adjacencyList[id] is initialized.
// Must be called under the muEdgeAdj write lock.
func ensureVertexBucket(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// linkAdjacency records e in both endpoint buckets (once for a self-loop).
// Must be called under the muEdgeAdj write lock.
func linkAdjacency(g *Graph, e *Edge) {
	link := func(u, v string) {
		ensureVertexBucket(g, u)
		if g.adjacencyList[u][v] == nil {
			g.adjacencyList[u][v] = make(map[string]struct{})
		}
		g.adjacencyList[u][v][e.ID] = struct{}{}
	}
	link(e.From, e.To)
	if e.From != e.To {
		link(e.To, e.From)
	}
}
