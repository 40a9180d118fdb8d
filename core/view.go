// File: view.go
// Role: Non-mutating graph views (topology copies with a reduced or renamed vertex set).
// Determinism:
//   - Edges are copied in Edges() order, so new edge IDs follow source insertion order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "fmt"

// InducedSubgraph returns a new Graph containing only the vertices in keep
// (unknown IDs are ignored) and every edge whose endpoints are both kept.
// Flags are preserved; edge IDs are regenerated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.flags()...)

	for _, id := range g.Vertices() {
		if keep[id] {
			_ = out.AddVertex(id)
		}
	}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			// Flags match the source, so policy errors cannot occur.
			_, _ = out.AddEdge(e.From, e.To)
		}
	}

	return out
}

// Relabel returns a copy of g whose vertices are renamed through mapping.
// Every vertex of g must be mapped and the mapping must be injective;
// otherwise an error wrapping ErrVertexNotFound is returned.
//
// Relabel is the usual way to hide a known embedding inside a larger graph:
// rename a subgraph and search for it again.
//
// Complexity: O(V + E).
func Relabel(g *Graph, mapping map[string]string) (*Graph, error) {
	out := NewGraph(g.flags()...)
	seen := make(map[string]string, len(mapping))

	for _, id := range g.Vertices() {
		to, ok := mapping[id]
		if !ok || to == "" {
			return nil, fmt.Errorf("Relabel: vertex %q has no image: %w", id, ErrVertexNotFound)
		}
		if prev, dup := seen[to]; dup {
			return nil, fmt.Errorf("Relabel: %q and %q both map to %q: %w", prev, id, to, ErrVertexNotFound)
		}
		seen[to] = id
		if err := out.AddVertex(to); err != nil {
			return nil, fmt.Errorf("Relabel: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(mapping[e.From], mapping[e.To]); err != nil {
			return nil, fmt.Errorf("Relabel: edge %s: %w", e.ID, err)
		}
	}

	return out, nil
}

// flags returns the construction options of g under a read lock.
func (g *Graph) flags() []GraphOption {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.options()
}
