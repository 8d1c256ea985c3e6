// Package degrees measures degrees of separation: how many shared events
// (games, co-authored papers, films) lie between two participants.
//
// What is in the module?
//
//	A small, focused stack built around one unweighted, undirected graph:
//		• core     growable int-indexed adjacency lists (multigraph, no locks)
//		• bfs      breadth-first distances, predecessor tables, path rebuild
//		• builder  deterministic topologies for tests and benchmarks
//		• internal/degrees  the chess application: PGN in, separations out
//
// Layout:
//
//	core/             Graph: AddVertex, AddEdge, HasEdge, Neighbors, growth by doubling
//	bfs/              BFS (all destinations), Distance (early exit), ReconstructPath
//	builder/          Path, Cycle, Star, Complete, Grid, RandomSparse, Isolated
//	internal/pgn/     White/Black tag extraction from PGN streams
//	internal/roster/  name <-> vertex id table
//	internal/degrees/ Database: Load, Degree, Between, From, Path
//	internal/config/  YAML config with hot reload
//	internal/api/     HTTP JSON surface and /metrics
//	cmd/degrees/      CLI: query, path, players, repl, serve
//
// Quick ASCII example:
//
//	Morphy───Anderssen───Kieseritzky───Staunton
//
//	Staunton is three games away from Morphy.
//
//	go install github.com/katalvlaran/degrees/cmd/degrees@latest
package degrees
