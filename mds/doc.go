// Package mds embeds a graph by classical multidimensional scaling: the
// spectral, non-iterative counterpart of the SGD and majorization layouts.
//
// Given the full graph-theoretic distance matrix D, Classical forms the
// double-centered Gram matrix B = −½·J·D²·J, takes its top-k eigenpairs
// (gonum's EigenSym), and scales each eigenvector by √λ. The result
// reproduces the distances as well as any k-dimensional Euclidean
// configuration can, centered at the origin.
//
// MDS needs every pairwise distance, so a disconnected graph (any +Inf
// entry) is rejected rather than partially embedded.
//
// Errors (sentinel):
//
//	– ErrEmptyGraph  if the graph has no nodes.
//	– ErrDimension   if dim < 1 or dim ≥ N.
//	– ErrUnreachable if the distance matrix holds a +Inf entry.
//	– ErrEigenFailed if the eigendecomposition does not converge.
package mds
