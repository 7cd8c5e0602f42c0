// Package graphview defines the read-only graph capability that every
// lvldraw algorithm is polymorphic over, plus AdjGraph, a concrete
// adjacency-list implementation of it.
//
// The capability is deliberately small: enumerate nodes and edges, look up
// neighbors and endpoints, count, and map a node ID to a dense index in
// [0, N). Anything exposing those operations is a valid layout input —
// adapters over external graph libraries or over a consumer's own model are
// one screen of code.
//
// Index contract:
//
//	ToIndex assigns each node a dense integer in [0, N) following node
//	iteration order. The assignment is stable for the lifetime of the
//	graph value, so distance matrices, drawings and SGD term lists built
//	from the same graph always agree on indices.
//
// AdjGraph is undirected by default; WithDirected makes edge direction
// significant (OutNeighbors ≠ InNeighbors). Self-loops and parallel edges
// are rejected unless enabled with WithLoops / WithMultiEdges.
//
// Errors (sentinel):
//
//	– ErrEmptyNodeID         if a node ID is the empty string.
//	– ErrNodeNotFound        declared for unknown-node lookups; AdjGraph never
//	                         returns it (ToIndex reports false, Degree 0).
//	– ErrEdgeNotFound        if an edge handle is out of range.
//	– ErrLoopNotAllowed      if a self-loop is added while loops are disabled.
//	– ErrMultiEdgeNotAllowed if a parallel edge is added while multi-edges are disabled.
package graphview
