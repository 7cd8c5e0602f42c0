package sgd

import (
	"github.com/katalvlaran/lvldraw/drawing"
)

// Distance-adjustment defaults: the blend between realised and target
// distances, and the floor a term distance may relax to.
const (
	DefaultAdjustAlpha     = 0.5
	DefaultMinimumDistance = 0.0
)

// DistanceAdjusted wraps an SGD and, after every epoch, mixes each term's
// target distance toward the distance the drawing actually realised:
//
//	d' = clamp((α·w·|δ| + 2(1−α)·d₀) / (α·w + 2(1−α)), d_min, d₀)
//
// then re-derives w = 1/d'². Long edges relax instead of compressing the
// whole layout; d' never exceeds the original target d₀.
type DistanceAdjusted struct {
	// Alpha blends realised (α) against original (1−α) distances.
	Alpha float64

	// MinimumDistance floors the adjusted target.
	MinimumDistance float64

	sgd      *SGD
	original map[[2]int]float64
	delta    []float64
}

// NewDistanceAdjusted wraps s, remembering every term's original distance.
func NewDistanceAdjusted(s *SGD) *DistanceAdjusted {
	original := make(map[[2]int]float64, len(s.terms))
	for i := range s.terms {
		t := &s.terms[i]
		original[[2]int{t.I, t.J}] = t.D
	}

	return &DistanceAdjusted{
		Alpha:           DefaultAdjustAlpha,
		MinimumDistance: DefaultMinimumDistance,
		sgd:             s,
		original:        original,
	}
}

// Base exposes the wrapped SGD for shuffling and scheduler derivation.
func (a *DistanceAdjusted) Base() *SGD { return a.sgd }

// ApplyWithDistanceAdjustment runs one plain epoch, then re-targets every
// term toward the realised geometry and re-weights it.
func (a *DistanceAdjusted) ApplyWithDistanceAdjustment(d drawing.Drawing, eta float64) {
	a.sgd.Apply(d, eta)

	if len(a.delta) != d.Dim() {
		a.delta = make([]float64, d.Dim())
	}
	a.sgd.UpdateDistance(func(i, j int, _, w float64) float64 {
		d.Delta(i, j, a.delta)
		d1 := drawing.Norm(a.delta)
		d2 := a.original[[2]int{i, j}]
		newD := (a.Alpha*w*d1 + 2*(1-a.Alpha)*d2) / (a.Alpha*w + 2*(1-a.Alpha))
		if newD < a.MinimumDistance {
			newD = a.MinimumDistance
		}
		if newD > d2 {
			newD = d2
		}

		return newD
	})
	a.sgd.UpdateWeight(func(_, _ int, dist, _ float64) float64 {
		return 1 / (dist * dist)
	})
}
