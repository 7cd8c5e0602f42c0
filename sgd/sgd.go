package sgd

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/rng"
)

// ErrTooFewPivots indicates NewSparse was asked for fewer than one pivot.
var ErrTooFewPivots = errors.New("sgd: pivot count must be positive")

// normEps floors the measured separation so coincident entries cannot
// divide the correction by zero.
const normEps = 1e-6

// Term is one distance target between dense indices I < J.
//
// D is the target distance, W the current weight (1/D² at construction),
// and W0 the construction-time weight kept for reversible re-weighting.
type Term struct {
	I, J     int
	D, W, W0 float64
}

// SGD owns a flat term list and applies epochs to a drawing. Build one
// with NewFull, NewSparse, or from a prepared term list via New.
type SGD struct {
	terms []Term
	delta []float64 // tangent-vector scratch, sized on first Apply
}

// New wraps a prepared term list; builders are the usual entry points.
func New(terms []Term) *SGD { return &SGD{terms: terms} }

// Terms exposes the term list; treat it as read-only outside the package.
func (s *SGD) Terms() []Term { return s.terms }

// Shuffle permutes the term list in place (Fisher–Yates) with the injected
// RNG; call once per epoch before Apply.
func (s *SGD) Shuffle(r *rng.Rng) {
	r.Shuffle(len(s.terms), func(i, j int) {
		s.terms[i], s.terms[j] = s.terms[j], s.terms[i]
	})
}

// Apply runs one epoch at learning rate eta: every term moves its pair
// symmetrically toward the target distance by μ = min(w·η, 1) — the cap
// keeps a single correction from overshooting the pair's midpoint.
// Unreachable terms are skipped. The drawing is mutated in place.
// Complexity: O(len(terms)).
func (s *SGD) Apply(d drawing.Drawing, eta float64) {
	if len(s.delta) != d.Dim() {
		s.delta = make([]float64, d.Dim())
	}
	var mu, l, r float64
	for i := range s.terms {
		t := &s.terms[i]
		if math.IsInf(t.D, 1) {
			continue
		}
		mu = t.W * eta
		if mu > 1 {
			mu = 1
		}
		d.Delta(t.I, t.J, s.delta)
		l = drawing.Norm(s.delta)
		if l < normEps {
			l = normEps
		}
		r = (l - t.D) / 2 * mu
		d.Shift(t.I, s.delta, r/l)
		d.Shift(t.J, s.delta, -r/l)
	}
}

// UpdateDistance recomputes every term's target distance via f(i, j, d, w).
func (s *SGD) UpdateDistance(f func(i, j int, d, w float64) float64) {
	for i := range s.terms {
		t := &s.terms[i]
		t.D = f(t.I, t.J, t.D, t.W)
	}
}

// UpdateWeight recomputes every term's weight via f(i, j, d, w).
func (s *SGD) UpdateWeight(f func(i, j int, d, w float64) float64) {
	for i := range s.terms {
		t := &s.terms[i]
		t.W = f(t.I, t.J, t.D, t.W)
	}
}

// EtaRange derives the learning-rate endpoints from the term weights:
// η_max = 1/min(w), η_min = ε/max(w). An empty term list yields (ε, 1),
// which keeps degenerate schedulers well-defined.
func (s *SGD) EtaRange(eps float64) (etaMin, etaMax float64) {
	if len(s.terms) == 0 {
		return eps, 1
	}
	wMin, wMax := math.Inf(1), math.Inf(-1)
	for i := range s.terms {
		w := s.terms[i].W
		if w < wMin {
			wMin = w
		}
		if w > wMax {
			wMax = w
		}
	}

	return eps / wMax, 1 / wMin
}
