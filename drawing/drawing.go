package drawing

import (
	"math"

	"github.com/katalvlaran/lvldraw/graphview"
)

// Drawing is a mapping from dense node index to a point in some metric
// space, with the tangent-space operations every layout kernel relies on.
type Drawing interface {
	// Len returns the number of entries (== node count of the source graph).
	Len() int

	// Dim returns the tangent-space dimensionality.
	Dim() int

	// NodeAt returns the node ID at entry i.
	NodeAt(i int) string

	// IndexOf maps a node ID to its entry index.
	IndexOf(id string) (int, bool)

	// Coord returns the raw coordinate slice of entry i. Mutating it
	// directly bypasses the metric; prefer Shift.
	Coord(i int) []float64

	// Delta writes the tangent-space displacement from entry i toward
	// entry j into out (len == Dim). Its Norm is the metric distance.
	Delta(i, j int, out []float64)

	// Shift moves entry i along tangent vector v scaled by scale,
	// staying consistent with the metric (sphere re-normalizes, torus
	// wraps, disk stays inside).
	Shift(i int, v []float64, scale float64)
}

// Norm returns the Euclidean norm of a tangent vector. All tangent spaces
// here are Euclidean, whatever the underlying metric.
func Norm(v []float64) float64 {
	if len(v) == 2 {
		return math.Hypot(v[0], v[1])
	}
	var s float64
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

// Phyllotaxis returns the deterministic initial position of rank i:
// r = 10·√i, θ = π(3−√5)·i. Collision-free for small node counts and
// identical across runs.
func Phyllotaxis(i int) (x, y float64) {
	r := 10 * math.Sqrt(float64(i))
	theta := math.Pi * (3 - math.Sqrt(5)) * float64(i)

	return r * math.Cos(theta), r * math.Sin(theta)
}

// table is the shared storage of all drawing variants: node IDs, the
// ID→index map, and one coordinate slice per entry.
type table struct {
	ids    []string
	idx    map[string]int
	coords [][]float64
	dim    int
}

// newTable allocates zeroed coordinates indexed like g.
func newTable(g graphview.Graph, dim int) table {
	n := g.NodeCount()
	t := table{
		ids:    g.Nodes(),
		idx:    make(map[string]int, n),
		coords: make([][]float64, n),
		dim:    dim,
	}
	backing := make([]float64, n*dim)
	for i := range t.coords {
		t.coords[i] = backing[i*dim : (i+1)*dim : (i+1)*dim]
		t.idx[t.ids[i]] = i
	}

	return t
}

func (t *table) Len() int              { return len(t.coords) }
func (t *table) Dim() int              { return t.dim }
func (t *table) NodeAt(i int) string   { return t.ids[i] }
func (t *table) Coord(i int) []float64 { return t.coords[i] }

func (t *table) IndexOf(id string) (int, bool) {
	i, ok := t.idx[id]

	return i, ok
}
