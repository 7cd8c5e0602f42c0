package drawing

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvldraw/graphview"
)

// diskLimit keeps entries strictly inside the unit disk; at the boundary
// the hyperbolic metric blows up.
const diskLimit = 1 - 1e-9

// Hyperbolic2D draws on the Poincaré disk. Each entry is (x, y) with
// x² + y² < 1; the delta between two entries is their Möbius difference
// scaled to hyperbolic length.
type Hyperbolic2D struct {
	table
}

// NewHyperbolic2D places every node at the disk center.
func NewHyperbolic2D(g graphview.Graph) *Hyperbolic2D {
	return &Hyperbolic2D{table: newTable(g, 2)}
}

// Delta writes the tangent vector at entry i toward entry j: the direction
// of the Möbius difference (z_j ⊖ z_i), with hyperbolic geodesic length.
func (d *Hyperbolic2D) Delta(i, j int, out []float64) {
	zi := complex(d.coords[i][0], d.coords[i][1])
	zj := complex(d.coords[j][0], d.coords[j][1])

	// Möbius difference: j seen from a frame with i at the origin.
	w := (zj - zi) / (1 - cmplx.Conj(zi)*zj)
	r := cmplx.Abs(w)
	if r == 0 {
		out[0], out[1] = 0, 0
		return
	}
	dist := 2 * math.Atanh(math.Min(r, diskLimit))
	out[0] = dist * real(w) / r
	out[1] = dist * imag(w) / r
}

// Shift moves entry i along the geodesic of scale·v via Möbius addition,
// clamping the result inside the unit disk.
func (d *Hyperbolic2D) Shift(i int, v []float64, scale float64) {
	vx, vy := scale*v[0], scale*v[1]
	l := math.Hypot(vx, vy)
	if l == 0 {
		return
	}

	// Target point in the frame of entry i: direction of v, at the Euclidean
	// radius corresponding to hyperbolic length l.
	e := complex(math.Tanh(l/2)*vx/l, math.Tanh(l/2)*vy/l)
	zi := complex(d.coords[i][0], d.coords[i][1])
	z := (zi + e) / (1 + cmplx.Conj(zi)*e)

	if r := cmplx.Abs(z); r >= diskLimit {
		z *= complex(diskLimit/r, 0)
	}
	d.coords[i][0], d.coords[i][1] = real(z), imag(z)
}
