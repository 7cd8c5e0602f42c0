package stress_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/katalvlaran/lvldraw/stress"
)

// ExampleMajorization refines a phyllotaxis start into a low-stress cycle
// layout.
func ExampleMajorization() {
	g, _ := gen.Cycle(6)
	dm, _ := apsp.WarshallFloyd(g, graphview.UnitWeight)
	d := drawing.NewEuclidean2DWithPlacement(g)

	before := stress.Stress(d, dm)
	m, _ := stress.NewMajorizationWithMatrix(dm)
	if err := m.Run(d); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("stress dropped:", stress.Stress(d, dm) < before/10)
	fmt.Println("finished:", m.IsFinished())
	// Output:
	// stress dropped: true
	// finished: true
}
