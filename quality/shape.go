package quality

import (
	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// Shape scores how well the drawn point set's natural neighborhood
// structure matches the graph: the Jaccard index between the graph's edge
// set and the Delaunay triangulation's edge set. 1 means the drawing's
// geometry tells exactly the graph's story; values fall toward 0 as the
// two diverge. Degenerate inputs (fewer than 3 nodes, collinear points)
// score 0.
func Shape(g graphview.Graph, d *drawing.Euclidean2D) float64 {
	n := d.Len()
	if n < 3 {
		return 0
	}

	points := make([]delaunay.Point, n)
	for i := 0; i < n; i++ {
		c := d.Coord(i)
		points[i] = delaunay.Point{X: c[0], Y: c[1]}
	}
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return 0
	}

	graphEdges := make(map[[2]int]struct{}, g.EdgeCount())
	for _, e := range g.Edges() {
		u, _ := g.ToIndex(e.From)
		v, _ := g.ToIndex(e.To)
		if u == v {
			continue
		}
		graphEdges[orderedPair(u, v)] = struct{}{}
	}

	triEdges := make(map[[2]int]struct{}, len(tri.Triangles))
	for t := 0; t < len(tri.Triangles); t += 3 {
		a, b, c := tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]
		triEdges[orderedPair(a, b)] = struct{}{}
		triEdges[orderedPair(b, c)] = struct{}{}
		triEdges[orderedPair(c, a)] = struct{}{}
	}

	cap, cup := 0, len(graphEdges)
	for e := range triEdges {
		if _, ok := graphEdges[e]; ok {
			cap++
		} else {
			cup++
		}
	}
	if cup == 0 {
		return 0
	}

	return float64(cap) / float64(cup)
}

// orderedPair normalizes an undirected index pair.
func orderedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
