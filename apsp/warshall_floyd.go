package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/graphview"
)

// WarshallFloyd computes the full distance matrix by triple-loop relaxation.
//
// Any real edge weights are accepted as long as no cycle has negative total
// weight; a negative diagonal entry after relaxation reports ErrNegativeCycle
// with the offending node. Parallel edges are folded with min during
// initialization so emission order cannot affect the result.
// Complexity: O(V³) time, O(V²) space.
func WarshallFloyd(g graphview.Graph, weight graphview.Weight) (*FullMatrix, error) {
	m := newFullMatrix(g)
	n := m.n

	// Initialization: every edge seeds both directions, folded with min so
	// parallel edges cannot overwrite a shorter sibling.
	var i, j, k int
	var d float64
	for _, e := range g.Edges() {
		i, _ = g.ToIndex(e.From)
		j, _ = g.ToIndex(e.To)
		if i == j {
			continue // self-loops never relax
		}
		d = weight(e)
		if d < m.At(i, j) {
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}

	// Relaxation: d[i][j] = min(d[i][j], d[i][k] + d[k][j]).
	var dik, dkj, sum float64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = m.At(i, k)
			if dik == Inf {
				continue
			}
			for j = 0; j < n; j++ {
				dkj = m.At(k, j)
				if dkj == Inf {
					continue
				}
				sum = dik + dkj
				if sum < m.At(i, j) {
					m.Set(i, j, sum)
				}
			}
		}
	}

	// A diagonal entry below zero means some cycle reduces its own length.
	for i = 0; i < n; i++ {
		if m.At(i, i) < 0 {
			return nil, fmt.Errorf("node %q: %w", g.NodeAt(i), ErrNegativeCycle)
		}
	}

	return m, nil
}
