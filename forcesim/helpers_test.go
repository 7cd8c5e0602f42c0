package forcesim_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvldraw/forcesim"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/stretchr/testify/require"
)

// graphOfIsolated builds n nodes with no edges.
func graphOfIsolated(t *testing.T, n int) *graphview.AdjGraph {
	t.Helper()
	g := graphview.New()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(strconv.Itoa(i))
		require.NoError(t, err)
	}

	return g
}

// boundingBox returns (minX, minY, maxX, maxY) of a point buffer.
func boundingBox(points []forcesim.Point) [4]float64 {
	box := [4]float64{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for i := range points {
		box[0] = min(box[0], points[i].X)
		box[1] = min(box[1], points[i].Y)
		box[2] = max(box[2], points[i].X)
		box[3] = max(box[3], points[i].Y)
	}

	return box
}
