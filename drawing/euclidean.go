package drawing

import "github.com/katalvlaran/lvldraw/graphview"

// Euclidean2D is the plane drawing used by most layouts.
type Euclidean2D struct {
	table
}

// NewEuclidean2D places every node at the origin.
func NewEuclidean2D(g graphview.Graph) *Euclidean2D {
	return &Euclidean2D{table: newTable(g, 2)}
}

// NewEuclidean2DWithPlacement seeds entries with the phyllotaxis spiral,
// the deterministic collision-free start every iterative layout wants.
func NewEuclidean2DWithPlacement(g graphview.Graph) *Euclidean2D {
	d := NewEuclidean2D(g)
	for i := range d.coords {
		d.coords[i][0], d.coords[i][1] = Phyllotaxis(i)
	}

	return d
}

// Delta writes coord(j) − coord(i) into out.
func (d *Euclidean2D) Delta(i, j int, out []float64) {
	out[0] = d.coords[j][0] - d.coords[i][0]
	out[1] = d.coords[j][1] - d.coords[i][1]
}

// Shift adds scale·v to entry i.
func (d *Euclidean2D) Shift(i int, v []float64, scale float64) {
	d.coords[i][0] += scale * v[0]
	d.coords[i][1] += scale * v[1]
}

// Euclidean is the n-dimensional flat drawing; classical MDS emits one.
type Euclidean struct {
	table
}

// NewEuclidean places every node at the origin of ℝ^dim.
func NewEuclidean(g graphview.Graph, dim int) *Euclidean {
	return &Euclidean{table: newTable(g, dim)}
}

// Delta writes coord(j) − coord(i) into out.
func (d *Euclidean) Delta(i, j int, out []float64) {
	for k := 0; k < d.dim; k++ {
		out[k] = d.coords[j][k] - d.coords[i][k]
	}
}

// Shift adds scale·v to entry i.
func (d *Euclidean) Shift(i int, v []float64, scale float64) {
	for k := 0; k < d.dim; k++ {
		d.coords[i][k] += scale * v[k]
	}
}
