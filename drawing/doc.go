// Package drawing stores node coordinates in a metric space and exposes the
// tangent-space operations layout kernels need: a delta between two entries
// and a metric-consistent shift of one entry.
//
// A Drawing maps each dense node index to a point. What "point" and
// "difference" mean depends on the space:
//
//   - Euclidean2D / Euclidean (nD) — ordinary vectors; delta is subtraction.
//   - Spherical2D  — (longitude, latitude) on the unit sphere; delta is the
//     great-circle tangent at the first point; shifts follow the exponential
//     map and re-normalize.
//   - Hyperbolic2D — the Poincaré disk; delta is the Möbius difference scaled
//     to hyperbolic length; shifts stay inside the unit disk.
//   - Torus2D      — the unit square with wrap-around; delta is the shortest
//     wrapped difference; shifts take coordinates modulo 1.
//
// Tangent vectors are plain []float64 in all spaces, so a layout kernel
// written against the Drawing interface runs unchanged on every space:
//
//	delta := make([]float64, d.Dim())
//	d.Delta(i, j, delta)          // displacement from entry i toward entry j
//	l := drawing.Norm(delta)
//	d.Shift(i, delta, r/l)        // move entry i along the geodesic by r
//
// Layout runtimes mutate a drawing through exactly these operations, so a
// drawing stays consistent with its metric no matter which algorithm drives
// it. A drawing is mutably owned by one runtime at a time.
package drawing
