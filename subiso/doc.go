// Package subiso decides whether a small pattern graph embeds as a (not
// necessarily induced) subgraph of a larger target graph and, if so,
// returns a witness mapping.
//
// Two interchangeable strategies share one contract:
//
//   - FindEmbeddingNaive: exhaustive enumeration of ordered vertex
//     selections; slow but obviously correct, used as the oracle.
//   - FindEmbeddingOrdered: RI-style search. PlanOrder fixes a
//     greatest-constraint-first order of pattern vertices, then a depth-first
//     search places them one by one, pruning candidates by degree, loop flag
//     and adjacency to already-placed neighbours, and rolling back on failure.
//
// Both accept any View (*core.Graph satisfies it). Inputs are treated as
// simple undirected graphs with an optional self-loop per vertex: parallel
// edges collapse, and a pattern loop requires a target loop.
//
// Contract shared by both matchers:
//
//	pattern empty (any target)      → Found, empty Mapping
//	pattern larger than target      → not Found
//	otherwise                       → first embedding in deterministic order, or not Found
//
// Returned mappings are complete, injective and edge-preserving; Verify
// checks exactly that. Found == false with a nil error means "no embedding";
// errors are reserved for malformed input (ErrGraphNil, ErrInvalidInput),
// WithMaxSteps exhaustion (ErrStepLimit) and WithContext cancellation.
//
// Options:
//
//   - WithContext(ctx)  polled on the first expansion and every 1024 after.
//   - WithMaxSteps(n)   bounds the number of expanded search states.
//
// Complexity:
//
//   - Preprocessing: O(V log V + E) plus O(V²/64) words of adjacency bitsets.
//   - Search: exponential in |pattern| in the worst case.
//
// Concurrency: matchers are synchronous; every call owns its state, so
// concurrent calls over read-only graphs are safe.
package subiso
