// Package lvldraw is a graph-drawing engine: algorithms that take an
// abstract graph and produce readable geometric coordinates for its nodes.
//
// 🚀 What is lvldraw?
//
//	A pure-computation layout library that brings together:
//
//	  • APSP engines: Warshall–Floyd, all-sources BFS & Dijkstra
//	  • Force-directed simulation: composable kernels over a point set
//	  • SGD layouts: full, sparse (pivot-based) and distance-adjusted
//	  • Stress majorization & classical MDS
//
// ✨ Why choose lvldraw?
//
//   - Domain-agnostic      — bring any graph behind a six-method view
//   - Metric-agnostic      — Euclidean, spherical, hyperbolic & torus drawings
//   - Deterministic        — every random choice flows from an injected RNG
//   - Pure Go computation  — no I/O, no rendering, no hidden state
//
// Under the hood, everything is organized per concern:
//
//	graphview/  — read-only graph capability + adjacency-list implementation
//	gen/        — deterministic graph generators for tests and examples
//	apsp/       — all-pairs shortest paths & distance matrices
//	drawing/    — metric-space drawings with tangent-space deltas
//	forcesim/   — force simulation runtime + center/link/many-body/… kernels
//	sgd/        — term-sampled stress minimisation with η schedulers
//	mds/        — classical multidimensional scaling
//	stress/     — stress function & stress majorization
//	quality/    — crossings, shape, stress and related drawing metrics
//	separation/ — block/variable structure for separation constraints
//	rng/        — seedable randomness shared by all stochastic passes
//
// Quick ASCII example:
//
//	    graph ──▶ apsp ──▶ sgd ──▶ drawing
//	                │                 ▲
//	                └──▶ stress ──────┘
//
//	a distance matrix feeds both the SGD terms and the stress objective.
//
// Consumers hand the resulting coordinates to their own rendering layer;
// lvldraw never draws pixels.
//
//	go get github.com/katalvlaran/lvldraw
package lvldraw
