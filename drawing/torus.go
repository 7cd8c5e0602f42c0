package drawing

import (
	"math"

	"github.com/katalvlaran/lvldraw/graphview"
)

// Torus2D draws on the unit torus: coordinates in [0, 1) per axis with
// wrap-around. The delta between two entries is the shortest wrapped
// difference per axis.
type Torus2D struct {
	table
}

// NewTorus2D places every node at (0, 0).
func NewTorus2D(g graphview.Graph) *Torus2D {
	return &Torus2D{table: newTable(g, 2)}
}

// wrap maps a coordinate into [0, 1).
func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}

	return x
}

// shortest maps a difference into [-0.5, 0.5), the nearer way around.
func shortest(d float64) float64 {
	d = math.Mod(d, 1)
	switch {
	case d < -0.5:
		d++
	case d >= 0.5:
		d--
	}

	return d
}

// Delta writes the shortest wrapped displacement from entry i toward entry j.
func (d *Torus2D) Delta(i, j int, out []float64) {
	out[0] = shortest(d.coords[j][0] - d.coords[i][0])
	out[1] = shortest(d.coords[j][1] - d.coords[i][1])
}

// Shift adds scale·v to entry i modulo 1.
func (d *Torus2D) Shift(i int, v []float64, scale float64) {
	d.coords[i][0] = wrap(d.coords[i][0] + scale*v[0])
	d.coords[i][1] = wrap(d.coords[i][1] + scale*v[1])
}
