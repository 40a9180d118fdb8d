// Package core provides a thread-safe in-memory undirected Graph that serves
// as the pattern and target representation for subgraph embedding search.
//
// The Graph G = (V,E) supports:
//
//   - Undirected edges mirrored in adjacencyList[from][to] and [to][from]
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges() and NeighborIDs() all return
// sorted results, so any algorithm that walks them in order is reproducible.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertices
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//
//	// Edges
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool     // O(1), symmetric
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (int, error)           // distinct non-loop neighbours
//	HasLoop(id string) bool
//
//	// Cloning
//	Clone() *Graph
//
//	// Views
//	InducedSubgraph(g, keep) *Graph
//	Relabel(g, mapping) (*Graph, error)
//
// *Graph satisfies subiso.View directly (Vertices + NeighborIDs), so graphs
// built here, loaded by graphio or generated by builder can be searched
// without conversion.
package core
