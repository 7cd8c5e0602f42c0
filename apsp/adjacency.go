package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/graphview"
)

// arc is one directed half of an edge in the dense-index adjacency used by
// the per-source engines.
type arc struct {
	to int
	w  float64
}

// undirectedAdjacency flattens g into an index-based adjacency holding both
// directions of every edge, dropping self-loops. Parallel edges stay as
// separate arcs; relaxation keeps the minimum naturally.
// Complexity: O(V + E).
func undirectedAdjacency(g graphview.Graph, weight graphview.Weight) ([][]arc, error) {
	adj := make([][]arc, g.NodeCount())
	var i, j int
	var d float64
	for _, e := range g.Edges() {
		i, _ = g.ToIndex(e.From)
		j, _ = g.ToIndex(e.To)
		if i == j {
			continue
		}
		d = weight(e)
		if d < 0 {
			return nil, fmt.Errorf("edge %q-%q weight=%v: %w", e.From, e.To, d, ErrNegativeWeight)
		}
		adj[i] = append(adj[i], arc{to: j, w: d})
		adj[j] = append(adj[j], arc{to: i, w: d})
	}

	return adj, nil
}
