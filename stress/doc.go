// Package stress measures and minimizes layout stress
//
//	σ(X) = Σ_{i<j} w_ij · (|x_i − x_j| − d_ij)²,  w_ij = 1/d_ij²,
//
// the canonical quality functional of distance-faithful graph drawing.
//
// Stress evaluates σ for any drawing against a distance matrix, skipping
// unreachable pairs. Majorization minimizes it by the SMACOF scheme: each
// iteration solves the weighted-Laplacian system L^w·X' = L^Z(X)·X per
// coordinate axis, which is guaranteed not to increase σ. Node 0 is pinned
// to remove the translation gauge; the system solves by dense Cholesky
// (gonum) below the conjugate-gradient threshold and by CG above it.
//
// Lifecycle: Ready → Running → Done. Apply is one iteration and returns
// the relative stress decrease; Run iterates until Δσ/σ < ε (default 1e-4)
// or the iteration cap, and reports ErrDiverged if σ fails to decrease
// several iterations in a row. A Done runtime is rebuilt, not rerun.
//
// Errors (sentinel):
//
//	– ErrMismatchedDrawing if the drawing's entry count differs from the
//	  distance matrix the runtime was built for.
//	– ErrSingular  if the pinned Laplacian cannot be factorized
//	  (a disconnected graph leaves independent blocks).
//	– ErrDiverged  if stress stopped decreasing before convergence.
//	– ErrNonFinite if an iteration produces NaN/±Inf coordinates; the
//	  drawing keeps its last consistent state.
package stress
