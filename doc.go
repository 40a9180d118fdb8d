// Package subiso is a small toolkit for non-induced subgraph isomorphism
// on simple undirected graphs: given a pattern and a target, find an
// injective vertex mapping that carries every pattern edge onto a target
// edge.
//
// Two matchers answer the same question:
//   - naive: enumerate injective placements in order, test edges at the end;
//   - ri:    plan a pattern order once, then backtrack with degree and
//     adjacency pruning against already-placed neighbours.
//
// Everything is organized under these subpackages:
//
//	core/         - Graph, Vertex, Edge; thread-safe primitives and views
//	builder/      - deterministic topologies (complete, cycle, path, grid, star, random)
//	subiso/       - matchers, search-order planning and witness verification
//	graphio/      - YAML/JSON graph files
//	bench/        - suites, runner, records, summaries and Prometheus metrics
//	bench/store/  - JSON and Parquet result files
//	render/       - DOT/SVG/PNG drawings with the embedding highlighted
//	internal/cli/ - the subiso command
//
// Quick ASCII example:
//
//	    A───B          t0───t1
//	    │        ⊆     │    │
//	    C              t3───t2
//
//	a 3-vertex path embeds into a square: A→t0, B→t1, C→t3.
//
//	go install github.com/katalvlaran/subiso/cmd/subiso@latest
package subiso
