package forcesim

import (
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// Point is one simulated node: position and accumulated velocity in ℝ².
type Point struct {
	X, Y   float64
	VX, VY float64
}

// NewPoints allocates one point per node of g, seeded with the phyllotaxis
// spiral in dense-index order.
func NewPoints(g graphview.Graph) []Point {
	points := make([]Point, g.NodeCount())
	for i := range points {
		points[i].X, points[i].Y = drawing.Phyllotaxis(i)
	}

	return points
}

// ToDrawing copies point positions into a fresh Euclidean2D drawing
// indexed like g.
func ToDrawing(g graphview.Graph, points []Point) *drawing.Euclidean2D {
	d := drawing.NewEuclidean2D(g)
	for i := range points {
		c := d.Coord(i)
		c[0], c[1] = points[i].X, points[i].Y
	}

	return d
}

// FromDrawing seeds a point buffer from an existing 2D drawing, velocities
// zeroed. Useful for refining an SGD or MDS result with forces.
func FromDrawing(d *drawing.Euclidean2D) []Point {
	points := make([]Point, d.Len())
	for i := range points {
		c := d.Coord(i)
		points[i].X, points[i].Y = c[0], c[1]
	}

	return points
}
