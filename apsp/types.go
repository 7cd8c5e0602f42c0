package apsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvldraw/graphview"
)

// Sentinel errors for APSP computation.
var (
	// ErrNegativeWeight indicates a negative edge weight fed to Dijkstra.
	ErrNegativeWeight = errors.New("apsp: negative edge weight")

	// ErrNegativeCycle indicates Warshall–Floyd found a cycle of negative
	// total weight (a diagonal entry went below zero).
	ErrNegativeCycle = errors.New("apsp: negative cycle detected")

	// ErrSourceNotFound indicates DijkstraFrom was given an unknown source.
	ErrSourceNotFound = errors.New("apsp: source node not found")
)

// Inf is the distance between unreachable node pairs.
var Inf = math.Inf(1)

// FullMatrix is the dense N×N symmetric distance matrix.
//
// Entries are non-negative, the diagonal is zero, and unreachable pairs hold
// +Inf. The matrix remembers the graph's node IDs so callers can query by ID
// as well as by dense index.
type FullMatrix struct {
	n    int
	ids  []string
	idx  map[string]int
	data []float64 // row-major n×n
}

// newFullMatrix allocates an n×n matrix filled with +Inf off-diagonal and
// zero on the diagonal, indexed like g.
func newFullMatrix(g graphview.Graph) *FullMatrix {
	n := g.NodeCount()
	m := &FullMatrix{
		n:    n,
		ids:  g.Nodes(),
		idx:  make(map[string]int, n),
		data: make([]float64, n*n),
	}
	for i, id := range m.ids {
		m.idx[id] = i
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = Inf
			}
		}
	}

	return m
}

// N returns the node count (rows == columns).
func (m *FullMatrix) N() int { return m.n }

// At returns the distance between dense indices i and j.
func (m *FullMatrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set assigns the distance between dense indices i and j (one direction
// only; APSP engines maintain symmetry themselves).
func (m *FullMatrix) Set(i, j int, d float64) { m.data[i*m.n+j] = d }

// Row returns the i-th row as a shared slice; treat it as read-only.
func (m *FullMatrix) Row(i int) []float64 { return m.data[i*m.n : (i+1)*m.n] }

// Between returns the distance between two node IDs; ok is false when either
// ID is unknown.
func (m *FullMatrix) Between(u, v string) (d float64, ok bool) {
	i, iok := m.idx[u]
	j, jok := m.idx[v]
	if !iok || !jok {
		return 0, false
	}

	return m.At(i, j), true
}

// SubMatrix is the rectangular K×N distance matrix for K source nodes,
// columns covering all N nodes. Pivot-based sparse SGD builds its terms
// from one of these.
type SubMatrix struct {
	sources []int // dense indices of the K sources
	n       int
	data    []float64 // row-major k×n
}

// Sources returns the dense indices of the K source rows.
func (m *SubMatrix) Sources() []int { return m.sources }

// K returns the number of source rows.
func (m *SubMatrix) K() int { return len(m.sources) }

// N returns the number of columns.
func (m *SubMatrix) N() int { return m.n }

// At returns the distance from the k-th source to dense index j.
func (m *SubMatrix) At(k, j int) float64 { return m.data[k*m.n+j] }

// Row returns the k-th source row as a shared slice; treat it as read-only.
func (m *SubMatrix) Row(k int) []float64 { return m.data[k*m.n : (k+1)*m.n] }
