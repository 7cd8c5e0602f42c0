package apsp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvldraw/graphview"
)

// heapItem is one pending extraction in the lazy-decrease-key strategy:
// duplicates are pushed and stale entries skipped on pop.
type heapItem struct {
	node int
	dist float64
}

// distHeap is a binary min-heap over tentative distances.
type distHeap []heapItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// AllSourcesDijkstra computes the full distance matrix with one binary-heap
// shortest-path tree per source. Weights must be non-negative; the first
// negative weight reports ErrNegativeWeight with the offending edge.
// Complexity: O(V·(V+E)·log V) time, O(V²) space.
func AllSourcesDijkstra(g graphview.Graph, weight graphview.Weight) (*FullMatrix, error) {
	m := newFullMatrix(g)
	adj, err := undirectedAdjacency(g, weight)
	if err != nil {
		return nil, err
	}

	h := make(distHeap, 0, m.n)
	for s := 0; s < m.n; s++ {
		sssp(adj, s, m.Row(s), &h)
	}

	return m, nil
}

// DijkstraFrom computes shortest-path rows for the given source IDs only,
// producing the K×N matrix pivot-based sparse SGD consumes.
// Returns ErrSourceNotFound for an unknown ID, ErrNegativeWeight as above.
// Complexity: O(K·(V+E)·log V) time, O(K·V) space.
func DijkstraFrom(g graphview.Graph, weight graphview.Weight, sources []string) (*SubMatrix, error) {
	adj, err := undirectedAdjacency(g, weight)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	sub := &SubMatrix{
		sources: make([]int, len(sources)),
		n:       n,
		data:    make([]float64, len(sources)*n),
	}
	h := make(distHeap, 0, n)
	for k, id := range sources {
		s, ok := g.ToIndex(id)
		if !ok {
			return nil, fmt.Errorf("source %q: %w", id, ErrSourceNotFound)
		}
		sub.sources[k] = s
		row := sub.Row(k)
		for j := range row {
			row[j] = Inf
		}
		sssp(adj, s, row, &h)
	}

	return sub, nil
}

// sssp fills row with shortest distances from s over adj. row must be
// preset to +Inf (except possibly row[s]); the scratch heap is reset here.
func sssp(adj [][]arc, s int, row []float64, h *distHeap) {
	*h = (*h)[:0]
	row[s] = 0
	heap.Push(h, heapItem{node: s, dist: 0})

	var (
		item heapItem
		next float64
	)
	for h.Len() > 0 {
		item = heap.Pop(h).(heapItem)
		if item.dist > row[item.node] {
			continue // stale duplicate
		}
		for _, a := range adj[item.node] {
			next = item.dist + a.w
			if next < row[a.to] {
				row[a.to] = next
				heap.Push(h, heapItem{node: a.to, dist: next})
			}
		}
	}
}
