// Package builder provides deterministic, functional-options style
// constructors for the undirected graphs used as targets and patterns in
// subgraph embedding search and its measurement harness.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     constructors in order; Apply does the same against an existing graph.
//   - Constructors: Complete(n), Cycle(n), Path(n), Grid(rows, cols),
//     Star(n), RandomSparse(n, p).
//   - Topology(kind, n, p): map a harness graph-type name ("random",
//     "complete", "cycle", "path", "grid", "star") to a Constructor.
//   - Options: WithSeed / WithRand for stochastic constructors,
//     WithIDScheme / WithPrefixIDs / WithSymbolIDs / WithExcelColumnIDs
//     for vertex naming.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless values (nil RNG, nil IDFn);
//     graph constructors never panic and return sentinel errors wrapped with
//     the constructor name.
//
// Example:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomSparse(30, 0.4))
package builder
