package sgd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/katalvlaran/lvldraw/rng"
	"github.com/katalvlaran/lvldraw/sgd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFull_TermShape verifies every reachable pair appears once with
// i < j and w = 1/d².
func TestNewFull_TermShape(t *testing.T) {
	g, err := gen.Path(4)
	require.NoError(t, err)

	s, err := sgd.NewFull(g, graphview.UnitWeight)
	require.NoError(t, err)

	terms := s.Terms()
	assert.Len(t, terms, 6, "P4 has C(4,2) reachable pairs")
	for _, term := range terms {
		assert.Less(t, term.I, term.J, "terms keep i < j")
		assert.InDelta(t, 1/(term.D*term.D), term.W, 1e-12, "w = 1/d²")
		assert.Equal(t, term.W, term.W0, "initial weight preserved")
	}
}

// TestNewFull_DisconnectedSkipsCrossTerms verifies no term couples the two
// triangles of the disconnected fixture.
func TestNewFull_DisconnectedSkipsCrossTerms(t *testing.T) {
	g, err := gen.Triangles(2)
	require.NoError(t, err)
	d, err := apsp.WarshallFloyd(g, graphview.UnitWeight)
	require.NoError(t, err)

	s := sgd.NewFullWithDistanceMatrix(d)

	assert.Len(t, s.Terms(), 6, "3 pairs per triangle, none across")
	for _, term := range s.Terms() {
		assert.Equal(t, term.I/3, term.J/3, "term (%d,%d) crosses components", term.I, term.J)
	}
}

// TestNewFull_SelfLoopNoDiagonalTerm verifies no i == j term appears.
func TestNewFull_SelfLoopNoDiagonalTerm(t *testing.T) {
	g := graphview.New(graphview.WithLoops())
	_, _ = g.AddEdge("a", "a", 2)
	_, _ = g.AddEdge("a", "b", 1)

	s, err := sgd.NewFull(g, graphview.EdgeWeight)
	require.NoError(t, err)
	require.Len(t, s.Terms(), 1)
	assert.NotEqual(t, s.Terms()[0].I, s.Terms()[0].J)
}

// TestShuffle_Deterministic verifies identical seeds give bit-identical
// term orders and different seeds diverge.
func TestShuffle_Deterministic(t *testing.T) {
	g, err := gen.Complete(6)
	require.NoError(t, err)

	build := func(seed uint64) []sgd.Term {
		s, err := sgd.NewFull(g, graphview.UnitWeight)
		require.NoError(t, err)
		s.Shuffle(rng.NewSeeded(seed))
		return append([]sgd.Term(nil), s.Terms()...)
	}

	assert.Equal(t, build(42), build(42), "same seed, same order")
	assert.NotEqual(t, build(42), build(43), "different seed, different order")
}

// TestApply_ConvergesPair verifies a single pair settles at its target
// distance.
func TestApply_ConvergesPair(t *testing.T) {
	g, err := gen.Path(2)
	require.NoError(t, err)
	d := drawing.NewEuclidean2DWithPlacement(g)

	s, err := sgd.NewFull(g, graphview.UnitWeight)
	require.NoError(t, err)
	for epoch := 0; epoch < 50; epoch++ {
		s.Apply(d, 1)
	}

	delta := make([]float64, 2)
	d.Delta(0, 1, delta)
	assert.InDelta(t, 1.0, drawing.Norm(delta), 1e-6, "pair settles at target distance")
}

// TestApply_SmallEtaBound verifies property: with η → 0 the per-epoch
// movement vanishes (each term moves at most |l−d|·w·η/2).
func TestApply_SmallEtaBound(t *testing.T) {
	g, err := gen.Complete(5)
	require.NoError(t, err)
	d := drawing.NewEuclidean2DWithPlacement(g)
	before := snapshot(d)

	s, err := sgd.NewFull(g, graphview.UnitWeight)
	require.NoError(t, err)

	s.Apply(d, 0)
	assert.Equal(t, before, snapshot(d), "η = 0 must not move anything")

	s.Apply(d, 1e-12)
	maxMove := 0.0
	after := snapshot(d)
	for i := range before {
		maxMove = math.Max(maxMove, math.Hypot(after[i][0]-before[i][0], after[i][1]-before[i][1]))
	}
	assert.Less(t, maxMove, 1e-6, "tiny η means tiny movement")
}

// TestApply_PathOrderingPreserved is the P₅ scenario: after 100 exponential
// epochs with seed 42 the path ordering is monotone along its own axis.
func TestApply_PathOrderingPreserved(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	d := drawing.NewEuclidean2DWithPlacement(g)

	s, err := sgd.NewFull(g, graphview.UnitWeight)
	require.NoError(t, err)
	r := rng.NewSeeded(42)
	scheduler := s.Scheduler(sgd.SchedulerExponential, 100)
	scheduler.Run(func(eta float64) {
		s.Shuffle(r)
		s.Apply(d, eta)
	})

	// Project every node onto the end-to-end axis; the chain order must
	// survive in that projection.
	ax := d.Coord(4)[0] - d.Coord(0)[0]
	ay := d.Coord(4)[1] - d.Coord(0)[1]
	prev := math.Inf(-1)
	for i := 0; i < 5; i++ {
		proj := d.Coord(i)[0]*ax + d.Coord(i)[1]*ay
		assert.Greater(t, proj, prev, "node %d out of order along the principal axis", i)
		prev = proj
	}
}

// TestNewSparse_Determinism verifies identical seeds give identical pivots
// and terms.
func TestNewSparse_Determinism(t *testing.T) {
	g, err := gen.Grid(6, 6)
	require.NoError(t, err)

	build := func(seed uint64) []sgd.Term {
		s, err := sgd.NewSparse(g, graphview.UnitWeight, 5, rng.NewSeeded(seed))
		require.NoError(t, err)
		return s.Terms()
	}

	assert.Equal(t, build(42), build(42), "pivot SGD must be seed-deterministic")
}

// TestNewSparse_TermShape verifies pivot caps, i < j normalization and the
// absence of diagonal terms.
func TestNewSparse_TermShape(t *testing.T) {
	g, err := gen.Cycle(8)
	require.NoError(t, err)

	s, err := sgd.NewSparse(g, graphview.UnitWeight, 3, rng.NewSeeded(1))
	require.NoError(t, err)
	require.NotEmpty(t, s.Terms())
	for _, term := range s.Terms() {
		assert.Less(t, term.I, term.J)
		assert.False(t, math.IsInf(term.D, 1))
		assert.Positive(t, term.W)
	}

	// Asking for more pivots than nodes caps silently at N.
	capped, err := sgd.NewSparse(g, graphview.UnitWeight, 100, rng.NewSeeded(1))
	require.NoError(t, err)
	assert.NotEmpty(t, capped.Terms())

	_, err = sgd.NewSparse(g, graphview.UnitWeight, 0, rng.NewSeeded(1))
	assert.ErrorIs(t, err, sgd.ErrTooFewPivots)
}

// TestNewSparse_LaysOutPath verifies the sparse variant still spreads a
// path to roughly its graph length.
func TestNewSparse_LaysOutPath(t *testing.T) {
	g, err := gen.Path(20)
	require.NoError(t, err)
	d := drawing.NewEuclidean2DWithPlacement(g)

	s, err := sgd.NewSparse(g, graphview.UnitWeight, 6, rng.NewSeeded(42))
	require.NoError(t, err)
	r := rng.NewSeeded(42)
	scheduler := s.Scheduler(sgd.SchedulerExponential, 60)
	scheduler.Run(func(eta float64) {
		s.Shuffle(r)
		s.Apply(d, eta)
	})

	delta := make([]float64, 2)
	d.Delta(0, 19, delta)
	span := drawing.Norm(delta)
	assert.Greater(t, span, 10.0, "path ends should spread toward graph distance 19")
}

// TestEmptyAndSingle verifies the N = 0 and N = 1 boundaries.
func TestEmptyAndSingle(t *testing.T) {
	empty := graphview.New()
	s, err := sgd.NewFull(empty, graphview.UnitWeight)
	require.NoError(t, err)
	assert.Empty(t, s.Terms())

	single := graphview.New()
	_, err = single.AddNode("only")
	require.NoError(t, err)
	s, err = sgd.NewFull(single, graphview.UnitWeight)
	require.NoError(t, err)
	assert.Empty(t, s.Terms(), "one node yields no pairs")

	sp, err := sgd.NewSparse(single, graphview.UnitWeight, 5, rng.NewSeeded(1))
	require.NoError(t, err)
	assert.Empty(t, sp.Terms())
}

// TestDistanceAdjusted verifies the clamp direction d_min ≤ d' ≤ d₀ and
// the re-derived weights.
func TestDistanceAdjusted(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	d := drawing.NewEuclidean2DWithPlacement(g)

	base, err := sgd.NewFull(g, graphview.UnitWeight)
	require.NoError(t, err)
	original := make(map[[2]int]float64)
	for _, term := range base.Terms() {
		original[[2]int{term.I, term.J}] = term.D
	}

	adjusted := sgd.NewDistanceAdjusted(base)
	r := rng.NewSeeded(42)
	for epoch := 0; epoch < 10; epoch++ {
		adjusted.Base().Shuffle(r)
		adjusted.ApplyWithDistanceAdjustment(d, 0.5)
	}

	for _, term := range adjusted.Base().Terms() {
		d0 := original[[2]int{term.I, term.J}]
		assert.LessOrEqual(t, term.D, d0+1e-12, "adjusted distance never exceeds the original")
		assert.GreaterOrEqual(t, term.D, adjusted.MinimumDistance, "adjusted distance respects the floor")
		assert.InDelta(t, 1/(term.D*term.D), term.W, 1e-9, "weight re-derived from adjusted distance")
		assert.Equal(t, 1/(d0*d0), term.W0, "original weight untouched")
	}
}

// snapshot copies all coordinates of a 2D drawing.
func snapshot(d *drawing.Euclidean2D) [][2]float64 {
	out := make([][2]float64, d.Len())
	for i := range out {
		out[i][0], out[i][1] = d.Coord(i)[0], d.Coord(i)[1]
	}

	return out
}
