package drawing_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
)

// ExampleDrawing shows the two tangent-space operations every layout
// kernel is written against, on the torus where they differ most visibly
// from plain subtraction.
func ExampleDrawing() {
	g, _ := gen.Path(2)
	d := drawing.NewTorus2D(g)
	d.Coord(0)[0] = 0.95
	d.Coord(1)[0] = 0.05

	delta := make([]float64, d.Dim())
	d.Delta(0, 1, delta)
	fmt.Printf("wrapped delta: %.2f\n", delta[0])

	d.Shift(0, delta, 1)
	fmt.Printf("entry 0 after shift: %.2f\n", d.Coord(0)[0])
	// Output:
	// wrapped delta: 0.10
	// entry 0 after shift: 0.05
}
