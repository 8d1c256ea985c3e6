// Package builder provides deterministic topology constructors over
// core.Graph, used to assemble fixtures for tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph and applies constructors in order.
//     – Constructor:       a closure that appends one topology block.
//   - Configuration primitives:
//     – Option:            a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the initial graph capacity.
//   - Topologies (one block of fresh vertices each):
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p), Isolated(n).
//
// Blocks:
//
//	Every constructor adds its own n vertices starting at the graph's current
//	VertexCount() and only connects vertices inside that block. Composing two
//	constructors therefore yields two disjoint components:
//
//	g, _ := builder.BuildGraph(nil, builder.Path(3), builder.Path(2))
//	// component {0,1,2} and component {3,4}
//
// Guarantees:
//
//   - Determinism: same constructors, order and seed ⇒ identical graphs,
//     including neighbor order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (errors.Is) for invalid build parameters, wrapped with the
//     constructor name.
//   - Documented algorithmic complexity per constructor.
package builder
