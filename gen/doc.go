// Package gen provides deterministic graph generators used throughout
// lvldraw's tests, examples and benchmarks.
//
// Every generator returns a *graphview.AdjGraph with unit edge weights,
// decimal node IDs ("0", "1", …) assigned in ascending index order, and a
// stable edge emission order — so a generated graph is bit-identical across
// runs and its dense indices match the obvious numbering.
//
// Constructors:
//
//	– Path(n)            P_n: 0—1—…—(n-1).            n ≥ 2.
//	– Cycle(n)           C_n: P_n plus (n-1)—0.        n ≥ 3.
//	– Complete(n)        K_n: every unordered pair.    n ≥ 2.
//	– Star(n)            center 0, leaves 1..n-1.      n ≥ 2.
//	– Grid(rows, cols)   4-neighborhood lattice.       rows, cols ≥ 1.
//	– Triangles(k)       k disjoint triangles.         k ≥ 1.
//
// Errors (sentinel):
//
//	– ErrTooFewNodes if a size parameter is below the constructor's minimum.
package gen
