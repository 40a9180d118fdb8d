// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// cloneVertices returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) cloneVertices() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Edge IDs are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.cloneVertices()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To}
		clone.edges[eid] = ne
		linkAdjacency(clone, ne)
	}

	return clone
}
