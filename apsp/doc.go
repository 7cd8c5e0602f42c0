// Package apsp computes all-pairs shortest-path distance matrices, the
// substrate of every lvldraw layout and quality metric.
//
// Four entry points cover the usual weight regimes:
//
//   - WarshallFloyd      — dense triple-loop relaxation; any real weights,
//     no negative cycles. Time O(V³), space O(V²).
//   - AllSourcesBFS      — one FIFO traversal per source for unit-weight
//     graphs, scaled by a caller-supplied edge length.
//     Time O(V·(V+E)), space O(V²).
//   - AllSourcesDijkstra — one binary-heap SSSP tree per source for
//     non-negative weights. Time O(V·(V+E)·log V), space O(V²).
//   - DijkstraFrom       — Dijkstra rows for a chosen source subset; the
//     backend of pivot-based sparse SGD. Time O(K·(V+E)·log V).
//
// All engines view the graph as undirected: each edge relaxes both ways, so
// the resulting matrix is symmetric with a zero diagonal. Unreachable pairs
// hold +Inf, which consumers must skip, never clamp. Self-loops contribute
// nothing; parallel edges count at their minimum weight (Warshall–Floyd
// folds them before relaxation, the per-source engines keep the shorter
// one while relaxing).
//
// Errors (sentinel):
//
//	– ErrNegativeWeight if Dijkstra sees a negative edge weight.
//	– ErrNegativeCycle  if Warshall–Floyd derives a negative diagonal entry.
//	– ErrSourceNotFound if DijkstraFrom is given an unknown source ID.
package apsp
