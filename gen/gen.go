package gen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvldraw/graphview"
)

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("gen: too few nodes")

// Constructor minima; anything smaller degenerates to a trivial graph the
// caller can build by hand.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 2
	minGridDim       = 1
	minTriangles     = 1
)

const unitWeight = 1.0

// id returns the decimal node ID for index i.
func id(i int) string { return strconv.Itoa(i) }

// Path builds the path graph P_n: 0—1—…—(n-1).
// Complexity: O(n).
func Path(n int) (*graphview.AdjGraph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}
	g := graphview.New()
	for i := 1; i < n; i++ {
		mustEdge(g, id(i-1), id(i))
	}

	return g, nil
}

// Cycle builds the cycle graph C_n.
// Complexity: O(n).
func Cycle(n int) (*graphview.AdjGraph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}
	g, err := Path(n)
	if err != nil {
		return nil, err
	}
	mustEdge(g, id(n-1), id(0))

	return g, nil
}

// Complete builds the complete graph K_n with edges emitted in
// lexicographic (i, j) order, i < j.
// Complexity: O(n²).
func Complete(n int) (*graphview.AdjGraph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}
	g := graphview.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustEdge(g, id(i), id(j))
		}
	}

	return g, nil
}

// Star builds the star graph: node 0 at the center, leaves 1..n-1.
// Complexity: O(n).
func Star(n int) (*graphview.AdjGraph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	g := graphview.New()
	for i := 1; i < n; i++ {
		mustEdge(g, id(0), id(i))
	}

	return g, nil
}

// Grid builds the rows×cols lattice with 4-neighborhood adjacency.
// Node (r, c) has ID id(r*cols + c).
// Complexity: O(rows·cols).
func Grid(rows, cols int) (*graphview.AdjGraph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: %dx%d below min=%d: %w", rows, cols, minGridDim, ErrTooFewNodes)
	}
	g := graphview.New()
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if _, err := g.AddNode(id(r*cols + c)); err != nil {
				panic("gen: " + err.Error())
			}
		}
	}
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if c+1 < cols {
				mustEdge(g, id(r*cols+c), id(r*cols+c+1))
			}
			if r+1 < rows {
				mustEdge(g, id(r*cols+c), id((r+1)*cols+c))
			}
		}
	}

	return g, nil
}

// Triangles builds k pairwise-disconnected triangles; the fixture for
// unreachable-pair behavior in APSP, SGD and MDS tests.
// Complexity: O(k).
func Triangles(k int) (*graphview.AdjGraph, error) {
	if k < minTriangles {
		return nil, fmt.Errorf("Triangles: k=%d < min=%d: %w", k, minTriangles, ErrTooFewNodes)
	}
	g := graphview.New()
	var t, base int
	for t = 0; t < k; t++ {
		base = 3 * t
		mustEdge(g, id(base), id(base+1))
		mustEdge(g, id(base+1), id(base+2))
		mustEdge(g, id(base+2), id(base))
	}

	return g, nil
}

// mustEdge adds a unit-weight edge; generators only emit valid edges, so an
// error here is a programming bug.
func mustEdge(g *graphview.AdjGraph, from, to string) {
	if _, err := g.AddEdge(from, to, unitWeight); err != nil {
		panic("gen: " + err.Error())
	}
}
