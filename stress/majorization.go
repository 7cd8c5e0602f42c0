package stress

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// Sentinel errors for stress majorization.
var (
	// ErrMismatchedDrawing indicates a drawing whose entry count differs
	// from the distance matrix the runtime was built for.
	ErrMismatchedDrawing = errors.New("stress: drawing does not match distance matrix")

	// ErrSingular indicates the pinned weighted Laplacian has no Cholesky
	// factorization (independent blocks from a disconnected graph).
	ErrSingular = errors.New("stress: weighted Laplacian is singular")

	// ErrDiverged indicates stress failed to decrease over several
	// consecutive iterations.
	ErrDiverged = errors.New("stress: majorization diverged")

	// ErrNonFinite indicates an iteration produced NaN or ±Inf coordinates.
	ErrNonFinite = errors.New("stress: non-finite coordinates produced")
)

// Majorization tuning knobs.
const (
	// DefaultEpsilon is the relative stress decrease treated as converged.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations caps Run.
	DefaultMaxIterations = 200

	// divergenceStreak is how many consecutive non-decreasing iterations
	// count as divergence.
	divergenceStreak = 5

	// cgThreshold is the node count above which the per-iteration solve
	// switches from dense Cholesky to conjugate gradient.
	cgThreshold = 2000

	// distEps floors |x_i − x_j| when assembling L^Z so coincident points
	// cannot blow the system up.
	distEps = 1e-9
)

// MajorizationOption configures a Majorization runtime.
type MajorizationOption func(*Majorization)

// WithEpsilon sets the convergence threshold for Δσ/σ.
func WithEpsilon(eps float64) MajorizationOption {
	return func(m *Majorization) {
		if eps <= 0 {
			panic("stress: epsilon must be positive")
		}
		m.epsilon = eps
	}
}

// WithMaxIterations caps the Run loop.
func WithMaxIterations(iters int) MajorizationOption {
	return func(m *Majorization) {
		if iters < 1 {
			panic("stress: iteration cap must be positive")
		}
		m.maxIterations = iters
	}
}

// WithForceConjugateGradient makes every solve use conjugate gradient
// regardless of node count — the dense path's cross-check.
func WithForceConjugateGradient() MajorizationOption {
	return func(m *Majorization) { m.forceCG = true }
}

// Majorization iteratively minimizes stress by the SMACOF update. Build it
// from a graph (distances computed internally) or a distance matrix, then
// drive it with Apply/Run against a Euclidean drawing.
type Majorization struct {
	dm            *apsp.FullMatrix
	epsilon       float64
	maxIterations int

	n       int
	w       []float64 // n×n weights, 0 for unreachable pairs
	chol    *mat.Cholesky
	forceCG bool
	done    bool

	// scratch reused across iterations
	lz  []float64
	b   *mat.VecDense
	sol *mat.VecDense
}

// NewMajorization builds the runtime from a graph and edge-length accessor
// via all-sources Dijkstra.
func NewMajorization(g graphview.Graph, weight graphview.Weight, opts ...MajorizationOption) (*Majorization, error) {
	dm, err := apsp.AllSourcesDijkstra(g, weight)
	if err != nil {
		return nil, err
	}

	return NewMajorizationWithMatrix(dm, opts...)
}

// NewMajorizationWithMatrix builds the runtime from a prepared distance
// matrix. The weighted Laplacian is constant across iterations, so it is
// assembled and (below the CG threshold) factorized once here.
func NewMajorizationWithMatrix(dm *apsp.FullMatrix, opts ...MajorizationOption) (*Majorization, error) {
	n := dm.N()
	m := &Majorization{
		dm:            dm,
		epsilon:       DefaultEpsilon,
		maxIterations: DefaultMaxIterations,
		n:             n,
	}
	for _, opt := range opts {
		opt(m)
	}
	if n == 0 {
		return m, nil
	}

	// Pairwise weights; unreachable pairs carry zero and never couple.
	m.w = make([]float64, n*n)
	var i, j int
	var dij float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dij = dm.At(i, j)
			if math.IsInf(dij, 1) {
				continue
			}
			m.w[i*n+j] = 1 / (dij * dij)
		}
	}

	m.lz = make([]float64, n*n)
	m.b = mat.NewVecDense(n, nil)
	m.sol = mat.NewVecDense(n, nil)

	if n <= cgThreshold && !m.forceCG {
		lw := m.pinnedLaplacian()
		m.chol = &mat.Cholesky{}
		if ok := m.chol.Factorize(lw); !ok {
			return nil, ErrSingular
		}
	}

	return m, nil
}

// pinnedLaplacian assembles L^w with node 0 pinned: row and column 0
// replaced by identity to remove the translation gauge.
func (m *Majorization) pinnedLaplacian() *mat.SymDense {
	n := m.n
	lw := mat.NewSymDense(n, nil)
	var i, j int
	var diag float64
	for i = 0; i < n; i++ {
		diag = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			diag += m.w[i*n+j]
			if j > i && i > 0 {
				lw.SetSym(i, j, -m.w[i*n+j])
			}
		}
		if i == 0 {
			lw.SetSym(0, 0, 1)
		} else {
			lw.SetSym(i, i, diag)
		}
	}

	return lw
}

// IsFinished reports whether the runtime has converged (or was emptied);
// a finished runtime must be rebuilt to run again.
func (m *Majorization) IsFinished() bool { return m.done }

// Apply performs one majorization iteration on d and returns the relative
// stress decrease Δσ/σ. On error the drawing keeps its previous state.
func (m *Majorization) Apply(d drawing.Drawing) (float64, error) {
	if m.n == 0 {
		m.done = true

		return 0, nil
	}
	if d.Len() != m.n {
		return 0, fmt.Errorf("drawing has %d entries, matrix %d: %w", d.Len(), m.n, ErrMismatchedDrawing)
	}

	before := Stress(d, m.dm)
	next, err := m.solveOnce(d)
	if err != nil {
		return 0, err
	}

	// Commit only a finite update; a failed step leaves d untouched.
	for k := 0; k < d.Dim(); k++ {
		for i := 0; i < m.n; i++ {
			if !finite(next[k][i]) {
				return 0, fmt.Errorf("entry %d axis %d: %w", i, k, ErrNonFinite)
			}
		}
	}
	for k := 0; k < d.Dim(); k++ {
		for i := 0; i < m.n; i++ {
			d.Coord(i)[k] = next[k][i]
		}
	}

	after := Stress(d, m.dm)
	if before == 0 {
		return 0, nil
	}

	return (before - after) / before, nil
}

// Run iterates Apply until Δσ/σ < ε or the iteration cap; a stress value
// that refuses to decrease for divergenceStreak iterations in a row
// reports ErrDiverged.
func (m *Majorization) Run(d drawing.Drawing) error {
	streak := 0
	for iter := 0; iter < m.maxIterations; iter++ {
		decrease, err := m.Apply(d)
		if err != nil {
			return err
		}
		if m.done || decrease < m.epsilon {
			if decrease < 0 {
				streak++
				if streak >= divergenceStreak {
					return ErrDiverged
				}
				continue
			}
			m.done = true

			return nil
		}
		streak = 0
	}
	m.done = true

	return nil
}

// solveOnce assembles L^Z(X) and solves the pinned system per axis,
// returning the proposed coordinates without mutating d.
func (m *Majorization) solveOnce(d drawing.Drawing) ([][]float64, error) {
	n := m.n
	dim := d.Dim()
	delta := make([]float64, dim)

	// L^Z off-diagonals: −w_ij·d_ij/|x_i − x_j|; diagonal balances rows.
	var i, j int
	var norm, v float64
	for i = 0; i < n; i++ {
		m.lz[i*n+i] = 0
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.w[i*n+j] == 0 {
				m.lz[i*n+j], m.lz[j*n+i] = 0, 0
				continue
			}
			d.Delta(i, j, delta)
			norm = drawing.Norm(delta)
			if norm < distEps {
				norm = distEps
			}
			v = -m.w[i*n+j] * m.dm.At(i, j) / norm
			m.lz[i*n+j], m.lz[j*n+i] = v, v
			m.lz[i*n+i] -= v
			m.lz[j*n+j] -= v
		}
	}

	next := make([][]float64, dim)
	for k := 0; k < dim; k++ {
		next[k] = make([]float64, n)
		m.assembleRHS(d, k)
		if err := m.solve(next[k]); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// assembleRHS builds b = L^Z·X for axis k, then applies the pin: b_0 is
// node 0's coordinate and every other row moves the pinned column to the
// right-hand side.
func (m *Majorization) assembleRHS(d drawing.Drawing, k int) {
	n := m.n
	x0 := d.Coord(0)[k]
	var i, j int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			sum += m.lz[i*n+j] * d.Coord(j)[k]
		}
		m.b.SetVec(i, sum)
	}
	for i = 1; i < n; i++ {
		m.b.SetVec(i, m.b.AtVec(i)+m.w[i*n]*x0)
	}
	m.b.SetVec(0, x0)
}

// solve solves the pinned system into out, by Cholesky when factorized and
// by conjugate gradient otherwise.
func (m *Majorization) solve(out []float64) error {
	if m.chol != nil {
		if err := m.chol.SolveVecTo(m.sol, m.b); err != nil {
			return fmt.Errorf("%w: %v", ErrSingular, err)
		}
		copy(out, m.sol.RawVector().Data)

		return nil
	}

	return m.conjugateGradient(out)
}

// finite reports whether v is a usable coordinate.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
