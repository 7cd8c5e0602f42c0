package forcesim_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvldraw/forcesim"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPoints_Phyllotaxis verifies deterministic, collision-free seeding.
func TestNewPoints_Phyllotaxis(t *testing.T) {
	g, err := gen.Path(7)
	require.NoError(t, err)

	a := forcesim.NewPoints(g)
	b := forcesim.NewPoints(g)
	assert.Equal(t, a, b, "seeding must be deterministic")
	assert.Zero(t, a[0].X, "rank 0 at the origin")
	assert.Zero(t, a[0].Y)

	for i := range a {
		for j := i + 1; j < len(a); j++ {
			dist := math.Hypot(a[i].X-a[j].X, a[i].Y-a[j].Y)
			assert.Greater(t, dist, 1.0, "points %d and %d must not collide", i, j)
		}
	}
}

// TestSimulation_RunTerminates verifies alpha cooling crosses AlphaMin
// within the tick budget.
func TestSimulation_RunTerminates(t *testing.T) {
	g, err := gen.Cycle(6)
	require.NoError(t, err)
	points := forcesim.NewPoints(g)

	ticks := 0
	sim := forcesim.NewSimulation(forcesim.WithOnTick(func(int, float64) bool {
		ticks++
		return true
	}))
	sim.Add(forcesim.NewManyBodyForce())
	sim.Add(forcesim.NewLinkForce(g))
	sim.Add(forcesim.NewCenterForce())
	sim.Run(points)

	assert.Less(t, sim.Alpha, forcesim.DefaultAlphaMin, "run stops below AlphaMin")
	assert.LessOrEqual(t, ticks, forcesim.DefaultTicks+1, "cooling must finish within the budget")
	for i := range points {
		assert.False(t, math.IsNaN(points[i].X) || math.IsNaN(points[i].Y), "point %d went NaN", i)
	}
}

// TestSimulation_OnTickCancel verifies the caller's cancellation point.
func TestSimulation_OnTickCancel(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)
	points := forcesim.NewPoints(g)

	ticks := 0
	sim := forcesim.NewSimulation(forcesim.WithOnTick(func(int, float64) bool {
		ticks++
		return ticks < 5
	}))
	sim.Add(forcesim.NewLinkForce(g))
	sim.Run(points)

	assert.Equal(t, 5, ticks, "run must stop when the hook declines")
}

// TestSimulation_EmptyBuffer verifies the N=0 boundary returns immediately.
func TestSimulation_EmptyBuffer(t *testing.T) {
	sim := forcesim.NewSimulation()
	sim.Add(forcesim.NewManyBodyForce())
	sim.Run(nil) // must not panic or loop
	assert.Equal(t, 1.0, sim.Alpha, "no ticks on an empty buffer")
}

// TestSimulation_IsolatedNodesNoDrift verifies that isolated nodes under a
// link-free force set keep their bounding box (no spurious drift).
func TestSimulation_IsolatedNodesNoDrift(t *testing.T) {
	g := graphOfIsolated(t, 5)
	points := forcesim.NewPoints(g)
	before := boundingBox(points)

	// No forces at all: integration alone must not move anything.
	sim := forcesim.NewSimulation()
	sim.Run(points)
	after := boundingBox(points)

	assert.InDelta(t, before[0], after[0], 1e-12)
	assert.InDelta(t, before[1], after[1], 1e-12)
	assert.InDelta(t, before[2], after[2], 1e-12)
	assert.InDelta(t, before[3], after[3], 1e-12)
}

// TestSimulation_VelocityDecayBounds verifies option constructors panic
// early on nonsense configuration.
func TestSimulation_VelocityDecayBounds(t *testing.T) {
	assert.Panics(t, func() { forcesim.NewSimulation(forcesim.WithVelocityDecay(1.5)) })
	assert.Panics(t, func() { forcesim.NewSimulation(forcesim.WithAlphaMin(0)) })
	assert.Panics(t, func() { forcesim.NewSimulation(forcesim.WithTicks(0)) })
}

// TestToFromDrawing verifies the drawing bridges round-trip.
func TestToFromDrawing(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)
	points := forcesim.NewPoints(g)

	d := forcesim.ToDrawing(g, points)
	back := forcesim.FromDrawing(d)
	require.Len(t, back, len(points))
	for i := range points {
		assert.Equal(t, points[i].X, back[i].X)
		assert.Equal(t, points[i].Y, back[i].Y)
		assert.Zero(t, back[i].VX, "bridged velocities start at rest")
	}
}
