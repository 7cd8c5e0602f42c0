package sgd

import (
	"math"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/graphview"
)

// NewFull builds the complete term set: one term per reachable unordered
// pair, distances from all-sources Dijkstra, weights 1/d².
// Complexity: O(V·(V+E)·log V) for distances plus O(V²) terms.
func NewFull(g graphview.Graph, weight graphview.Weight) (*SGD, error) {
	d, err := apsp.AllSourcesDijkstra(g, weight)
	if err != nil {
		return nil, err
	}

	return NewFullWithDistanceMatrix(d), nil
}

// NewFullWithDistanceMatrix builds the complete term set from a prepared
// distance matrix. Unreachable pairs produce no term, so a disconnected
// graph never couples its components; the diagonal is never a term.
func NewFullWithDistanceMatrix(d *apsp.FullMatrix) *SGD {
	n := d.N()
	terms := make([]Term, 0, n*(n-1)/2)
	var dij, wij float64
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dij = d.At(i, j)
			if math.IsInf(dij, 1) {
				continue
			}
			wij = 1 / (dij * dij)
			terms = append(terms, Term{I: i, J: j, D: dij, W: wij, W0: wij})
		}
	}

	return New(terms)
}
