package graphview_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/graphview"
)

// ExampleNew builds a small undirected square and inspects it through the
// Graph capability.
//
//	A───B
//	│   │
//	C───D
func ExampleNew() {
	g := graphview.New()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)

	fmt.Println("nodes:", g.Nodes())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("neighbors of A:", g.OutNeighbors("A"))
	i, _ := g.ToIndex("D")
	fmt.Println("index of D:", i)
	// Output:
	// nodes: [A B C D]
	// edges: 4
	// neighbors of A: [B C]
	// index of D: 3
}
