package graphview

// ConnectedComponents partitions the nodes of g into weakly connected
// components, each listed in discovery order. Components are ordered by
// their first node's dense index, so the result is deterministic for a
// given graph.
// Complexity: O(V + E).
func ConnectedComponents(g Graph) [][]string {
	var (
		n       = g.NodeCount()
		comp    = make([]int, n) // dense index → component id, -1 = unseen
		next    int              // next component id
		result  [][]string
		stack   []int
		nodes   = g.Nodes()
		i, v, w int
	)
	for i = range comp {
		comp[i] = -1
	}

	for i = 0; i < n; i++ {
		if comp[i] >= 0 {
			continue
		}
		// Flood the component of node i with an iterative DFS.
		members := []string{}
		stack = append(stack[:0], i)
		comp[i] = next
		for len(stack) > 0 {
			v = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, nodes[v])
			for _, nbr := range neighborhood(g, nodes[v]) {
				w, _ = g.ToIndex(nbr)
				if comp[w] < 0 {
					comp[w] = next
					stack = append(stack, w)
				}
			}
		}
		result = append(result, members)
		next++
	}

	return result
}

// neighborhood unions out- and in-neighbors so directed graphs decompose
// into weakly connected components.
func neighborhood(g Graph, id string) []string {
	out := g.OutNeighbors(id)
	in := g.InNeighbors(id)
	if len(in) == 0 {
		return out
	}
	merged := make([]string, 0, len(out)+len(in))
	merged = append(merged, out...)
	merged = append(merged, in...)

	return merged
}
