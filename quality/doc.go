// Package quality scores finished drawings: how readable is the picture a
// layout produced?
//
// Metrics (higher is better unless noted):
//
//	– Crossings        — number of intersecting edge pairs (lower is better).
//	– Shape            — Jaccard agreement between the graph's edges and the
//	  Delaunay triangulation of the drawn points.
//	– IdealEdgeLengths — summed squared relative error of drawn edge
//	  lengths against graph distances (lower is better).
//	– NeighborhoodPreservation — how many graph neighbors are also nearest
//	  drawn neighbors.
//	– AspectRatio      — σ2/σ1 of the coordinate spread; 1 is isotropic.
//	– AngularResolution — the sharpest incident-edge angle, scaled by the
//	  maximum degree.
//	– NodeResolution   — summed penalty for node pairs closer than the
//	  uniform-spread radius (lower is better).
//
// All metrics are pure functions of a graph and a 2D drawing (plus the
// distance matrix where graph distances matter). For the stress score see
// package stress.
package quality
