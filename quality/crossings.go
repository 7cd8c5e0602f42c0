package quality

import (
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// Crossings counts edge pairs whose drawn segments intersect. Pairs
// sharing an endpoint never count. Complexity: O(E²).
func Crossings(g graphview.Graph, d *drawing.Euclidean2D) int {
	edges := g.Edges()
	count := 0
	var ui, vi, uj, vj int
	for i := 1; i < len(edges); i++ {
		ui, _ = g.ToIndex(edges[i].From)
		vi, _ = g.ToIndex(edges[i].To)
		for j := 0; j < i; j++ {
			uj, _ = g.ToIndex(edges[j].From)
			vj, _ = g.ToIndex(edges[j].To)
			if ui == uj || ui == vj || vi == uj || vi == vj {
				continue
			}
			if segmentsCross(d.Coord(ui), d.Coord(vi), d.Coord(uj), d.Coord(vj)) {
				count++
			}
		}
	}

	return count
}

// segmentsCross reports proper or touching intersection of segments ab
// and cd via the double orientation test.
func segmentsCross(a, b, c, d []float64) bool {
	s := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	t := (b[0]-a[0])*(d[1]-a[1]) - (b[1]-a[1])*(d[0]-a[0])
	if s*t > 0 {
		return false
	}
	s = (d[0]-c[0])*(a[1]-c[1]) - (d[1]-c[1])*(a[0]-c[0])
	t = (d[0]-c[0])*(b[1]-c[1]) - (d[1]-c[1])*(b[0]-c[0])

	return s*t <= 0
}
