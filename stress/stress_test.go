package stress_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/katalvlaran/lvldraw/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStress_PerfectLayoutIsZero verifies σ = 0 when the drawing realizes
// every distance exactly.
func TestStress_PerfectLayoutIsZero(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	d := drawing.NewEuclidean2D(g)
	for i := 0; i < 4; i++ {
		d.Coord(i)[0] = float64(i)
	}

	assert.InDelta(t, 0, stress.Stress(d, dm), 1e-12)
}

// TestStress_SkipsUnreachablePairs verifies +Inf entries contribute nothing.
func TestStress_SkipsUnreachablePairs(t *testing.T) {
	g, err := gen.Triangles(2)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	d := drawing.NewEuclidean2DWithPlacement(g)
	s := stress.Stress(d, dm)
	assert.False(t, math.IsNaN(s), "unreachable pairs must be skipped, not propagated")
	assert.False(t, math.IsInf(s, 1))
}

// TestMajorization_CycleConvergesToSquare is the C₄ scenario: the layout
// converges within the iteration cap and lands within 1% of the analytic
// optimum's stress.
func TestMajorization_CycleConvergesToSquare(t *testing.T) {
	g, err := gen.Cycle(4)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	d := drawing.NewEuclidean2DWithPlacement(g)
	m, err := stress.NewMajorizationWithMatrix(dm)
	require.NoError(t, err)
	require.NoError(t, m.Run(d))
	assert.True(t, m.IsFinished())

	// Analytic optimum over squares with side s, diagonal s√2:
	// minimize 4(s−1)² + ½(s√2−2)² ⇒ s = (8+2√2)/10.
	s := (8 + 2*math.Sqrt2) / 10
	optimum := 4*(s-1)*(s-1) + 0.5*(s*math.Sqrt2-2)*(s*math.Sqrt2-2)
	got := stress.Stress(d, dm)
	assert.InDelta(t, optimum, got, optimum*0.01, "stress within 1%% of the square optimum")
}

// TestMajorization_StressMonotone verifies the defining property: σ never
// increases across iterations (up to ε).
func TestMajorization_StressMonotone(t *testing.T) {
	g, err := gen.Grid(4, 4)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	d := drawing.NewEuclidean2DWithPlacement(g)
	m, err := stress.NewMajorizationWithMatrix(dm)
	require.NoError(t, err)

	prev := stress.Stress(d, dm)
	for iter := 0; iter < 30; iter++ {
		_, err := m.Apply(d)
		require.NoError(t, err)
		cur := stress.Stress(d, dm)
		assert.LessOrEqual(t, cur, prev*(1+1e-9), "stress increased at iteration %d", iter)
		prev = cur
	}
}

// TestMajorization_PinnedNodeStaysPut verifies the gauge: node 0 does not
// move.
func TestMajorization_PinnedNodeStaysPut(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	d := drawing.NewEuclidean2DWithPlacement(g)
	x0, y0 := d.Coord(0)[0], d.Coord(0)[1]

	m, err := stress.NewMajorization(g, graphview.UnitWeight)
	require.NoError(t, err)
	require.NoError(t, m.Run(d))

	assert.InDelta(t, x0, d.Coord(0)[0], 1e-9, "pinned node drifted in x")
	assert.InDelta(t, y0, d.Coord(0)[1], 1e-9, "pinned node drifted in y")
}

// TestMajorization_DisconnectedIsSingular verifies the typed error for
// graphs whose Laplacian splits into independent blocks.
func TestMajorization_DisconnectedIsSingular(t *testing.T) {
	g, err := gen.Triangles(2)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	_, err = stress.NewMajorizationWithMatrix(dm)
	assert.ErrorIs(t, err, stress.ErrSingular)
}

// TestMajorization_EmptyGraph verifies the N = 0 boundary.
func TestMajorization_EmptyGraph(t *testing.T) {
	g := graphview.New()
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	m, err := stress.NewMajorizationWithMatrix(dm)
	require.NoError(t, err)
	d := drawing.NewEuclidean2D(g)
	require.NoError(t, m.Run(d))
	assert.True(t, m.IsFinished())
}

// TestMajorization_MismatchedDrawing verifies the guard against a drawing
// built from a different graph.
func TestMajorization_MismatchedDrawing(t *testing.T) {
	g, err := gen.Cycle(4)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)
	m, err := stress.NewMajorizationWithMatrix(dm)
	require.NoError(t, err)

	other, err := gen.Path(7)
	require.NoError(t, err)
	wrong := drawing.NewEuclidean2DWithPlacement(other)
	_, err = m.Apply(wrong)
	assert.ErrorIs(t, err, stress.ErrMismatchedDrawing)
}

// TestMajorization_OptionGuards verifies option constructors panic early
// on nonsense configuration.
func TestMajorization_OptionGuards(t *testing.T) {
	assert.Panics(t, func() { stress.WithEpsilon(0)(nil) })
	assert.Panics(t, func() { stress.WithMaxIterations(0)(nil) })
}

// TestMajorization_ConjugateGradientAgrees forces both solve paths over
// the same graph and compares the resulting stress.
func TestMajorization_ConjugateGradientAgrees(t *testing.T) {
	g, err := gen.Grid(5, 5)
	require.NoError(t, err)
	dm, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	dense := drawing.NewEuclidean2DWithPlacement(g)
	m, err := stress.NewMajorizationWithMatrix(dm)
	require.NoError(t, err)
	require.NoError(t, m.Run(dense))

	iterative := drawing.NewEuclidean2DWithPlacement(g)
	mi, err := stress.NewMajorizationWithMatrix(dm, stress.WithForceConjugateGradient())
	require.NoError(t, err)
	require.NoError(t, mi.Run(iterative))

	assert.InDelta(t, stress.Stress(dense, dm), stress.Stress(iterative, dm), 1e-4,
		"dense and CG solves must agree on the final stress")
}
