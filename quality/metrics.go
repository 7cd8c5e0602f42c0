package quality

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// IdealEdgeLengths sums the squared relative error of every drawn edge
// against its graph-theoretic length: Σ ((|δ| − d)/d)². 0 means every edge
// is drawn at exactly its ideal length. Complexity: O(E).
func IdealEdgeLengths(g graphview.Graph, d *drawing.Euclidean2D, dm *apsp.FullMatrix) float64 {
	delta := make([]float64, 2)
	var s, l, e float64
	var u, v int
	for _, edge := range g.Edges() {
		u, _ = g.ToIndex(edge.From)
		v, _ = g.ToIndex(edge.To)
		if u == v {
			continue
		}
		l = dm.At(u, v)
		if math.IsInf(l, 1) || l == 0 {
			continue
		}
		d.Delta(u, v, delta)
		e = (drawing.Norm(delta) - l) / l
		s += e * e
	}

	return s
}

// NeighborhoodPreservation measures how much of the graph's adjacency
// survives as geometric proximity: for each node, its deg(u) nearest drawn
// nodes are compared to its graph neighbors; the score is the Jaccard-style
// ratio of hits over the union. Complexity: O(V²·log V).
func NeighborhoodPreservation(g graphview.Graph, d *drawing.Euclidean2D) float64 {
	n := d.Len()
	if n < 2 {
		return 0
	}

	isEdge := make(map[[2]int]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		u, _ := g.ToIndex(e.From)
		v, _ := g.ToIndex(e.To)
		if u == v {
			continue
		}
		isEdge[orderedPair(u, v)] = struct{}{}
	}

	cap, cup := 0, 2*len(isEdge)
	order := make([]int, 0, n-1)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		deg := len(g.OutNeighbors(g.NodeAt(i)))
		if deg == 0 {
			continue
		}
		order = order[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := d.Coord(j)[0] - d.Coord(i)[0]
			dy := d.Coord(j)[1] - d.Coord(i)[1]
			dist[j] = math.Hypot(dx, dy)
			order = append(order, j)
		}
		sort.Slice(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })
		if deg > len(order) {
			deg = len(order)
		}
		for _, j := range order[:deg] {
			if _, ok := isEdge[orderedPair(i, j)]; ok {
				cap++
			} else {
				cup++
			}
		}
	}
	if cup == 0 {
		return 0
	}

	return float64(cap) / float64(cup)
}

// AspectRatio returns σ2/σ1 of the centered coordinate spread: 1 for an
// isotropic cloud, toward 0 as the drawing degenerates to a line.
// Complexity: O(V).
func AspectRatio(d *drawing.Euclidean2D) float64 {
	n := d.Len()
	if n == 0 {
		return 0
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		cx += d.Coord(i)[0]
		cy += d.Coord(i)[1]
	}
	cx /= float64(n)
	cy /= float64(n)

	var xx, xy, yy, xi, yi float64
	for i := 0; i < n; i++ {
		xi = d.Coord(i)[0] - cx
		yi = d.Coord(i)[1] - cy
		xx += xi * xi
		xy += xi * yi
		yy += yi * yi
	}

	tr := xx + yy
	det := xx*yy - xy*xy
	disc := math.Sqrt(math.Max(tr*tr-4*det, 0))
	sigma1 := math.Sqrt((tr + disc) / 2)
	sigma2 := math.Sqrt(math.Max((tr-disc)/2, 0))
	if sigma1 == 0 {
		return 0
	}

	return sigma2 / sigma1
}

// AngularResolution finds the sharpest angle between edges sharing an
// endpoint and scales it by the maximum degree: deg_max·θ_min/(2π), which
// is 1 when the busiest node spreads its edges evenly.
// Complexity: O(Σ deg²).
func AngularResolution(g graphview.Graph, d *drawing.Euclidean2D) float64 {
	minAngle := math.Inf(1)
	maxDegree := 0
	for _, id := range g.Nodes() {
		u, _ := g.ToIndex(id)
		nbrs := g.OutNeighbors(id)
		if len(nbrs) > maxDegree {
			maxDegree = len(nbrs)
		}
		for a := 0; a < len(nbrs); a++ {
			va, _ := g.ToIndex(nbrs[a])
			for b := a + 1; b < len(nbrs); b++ {
				vb, _ := g.ToIndex(nbrs[b])
				angle := angleBetween(d.Coord(u), d.Coord(va), d.Coord(vb))
				if !math.IsNaN(angle) {
					minAngle = math.Min(minAngle, angle)
				}
			}
		}
	}
	if math.IsInf(minAngle, 1) {
		return 0
	}

	return minAngle * float64(maxDegree) / (2 * math.Pi)
}

// angleBetween measures the angle at o spanned by p and q.
func angleBetween(o, p, q []float64) float64 {
	dx1, dy1 := p[0]-o[0], p[1]-o[1]
	dx2, dy2 := q[0]-o[0], q[1]-o[1]
	cos := (dx1*dx2 + dy1*dy2) / (math.Hypot(dx1, dy1) * math.Hypot(dx2, dy2))

	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// NodeResolution penalizes node pairs drawn closer than the radius a
// uniform spread would give them: Σ (1 − |δ|/(r·d_max))² over all pairs
// closer than r·d_max, with r = 1/√N. Lower is better.
// Complexity: O(V²).
func NodeResolution(d *drawing.Euclidean2D) float64 {
	n := d.Len()
	if n < 2 {
		return 0
	}
	r := 1 / math.Sqrt(float64(n))

	var dMax, dx, dy, l float64
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			dx = d.Coord(i)[0] - d.Coord(j)[0]
			dy = d.Coord(i)[1] - d.Coord(j)[1]
			dMax = math.Max(dMax, math.Hypot(dx, dy))
		}
	}
	if dMax == 0 {
		return float64(n*(n-1)) / 2
	}

	var s, e float64
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			dx = d.Coord(i)[0] - d.Coord(j)[0]
			dy = d.Coord(i)[1] - d.Coord(j)[1]
			l = math.Hypot(dx, dy)
			if l < r*dMax {
				e = 1 - l/(r*dMax)
				s += e * e
			}
		}
	}

	return s
}
