// Package sgd lays out graphs by stochastic gradient descent over pairwise
// distance terms, after Zheng, Pawar & Goodman's SGD stress minimisation.
//
// A term is one target: (i, j, d, w, w₀) asks entries i and j of a drawing
// to sit at distance d with weight w (w₀ preserves the construction-time
// weight so re-weightings stay reversible). One epoch shuffles the term
// list with the injected RNG and projects every pair toward its target
// under a learning rate η, each correction capped at the pair's midpoint.
//
// Term builders:
//
//	– NewFull     — every reachable unordered pair, d from APSP, w = 1/d².
//	– NewSparse   — h max-min sampled pivots; non-pivot×pivot terms plus
//	  region-weighted pivot×pivot terms. Linear-ish in graph size.
//	– NewDistanceAdjusted — wraps either; after each epoch it relaxes term
//	  distances toward what the drawing realised, so long edges stop
//	  over-compressing.
//
// Schedulers produce the η sequence from η_max = 1/min(w) down to
// η_min = ε/max(w): Constant, Linear, Quadratic, Exponential (the usual
// choice) and Reciprocal. A scheduler is a stateful producer driven by the
// caller: Step yields one η, Run loops until IsFinished — the lifecycle's
// cancellation point sits between epochs.
//
// Unreachable pairs (+Inf distance) never become terms; a disconnected
// graph lays out per component. Determinism: identical seed and graph give
// bit-identical term lists, pivot choices and η sequences.
//
// Errors (sentinel):
//
//	– ErrTooFewPivots if NewSparse is asked for fewer than one pivot.
package sgd
