package stress

import (
	"math"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
)

// Stress evaluates σ(X) = Σ_{i<j} (|x_i − x_j| − d_ij)²/d_ij² for a drawing
// against the graph-theoretic distances. Unreachable pairs contribute
// nothing. Complexity: O(N²·dim).
func Stress(d drawing.Drawing, dm *apsp.FullMatrix) float64 {
	n := d.Len()
	delta := make([]float64, d.Dim())
	var s, dij, norm, e float64
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dij = dm.At(i, j)
			if math.IsInf(dij, 1) {
				continue
			}
			d.Delta(i, j, delta)
			norm = drawing.Norm(delta)
			e = (norm - dij) / dij
			s += e * e
		}
	}

	return s
}
