package sgd

import "math"

// DefaultEps is the ε feeding η_min = ε/max(w) when a scheduler is built
// through Scheduler.
const DefaultEps = 0.1

// Scheduler produces the monotone η sequence driving SGD epochs. The
// caller owns progression: Step yields one rate, Run loops to exhaustion.
type Scheduler interface {
	// Step hands the next η to the callback and advances.
	Step(callback func(eta float64))

	// Run calls Step until IsFinished.
	Run(callback func(eta float64))

	// IsFinished reports whether all tMax rates have been produced.
	IsFinished() bool
}

// SchedulerKind selects an η decay profile.
type SchedulerKind int

const (
	// SchedulerConstant yields 1 every epoch.
	SchedulerConstant SchedulerKind = iota

	// SchedulerLinear interpolates η linearly from η_max to η_min.
	SchedulerLinear

	// SchedulerQuadratic interpolates quadratically, concave-down.
	SchedulerQuadratic

	// SchedulerExponential decays geometrically — the usual choice.
	SchedulerExponential

	// SchedulerReciprocal follows 1/(a + b·t) through both endpoints.
	SchedulerReciprocal
)

// Scheduler builds a scheduler of the given kind over tMax epochs, deriving
// the η endpoints from this term list with ε = DefaultEps.
func (s *SGD) Scheduler(kind SchedulerKind, tMax int) Scheduler {
	etaMin, etaMax := s.EtaRange(DefaultEps)

	return NewScheduler(kind, tMax, etaMin, etaMax)
}

// NewScheduler builds a scheduler of the given kind with explicit
// endpoints. The η sequence is fully determined by its arguments.
func NewScheduler(kind SchedulerKind, tMax int, etaMin, etaMax float64) Scheduler {
	base := schedule{tMax: tMax}
	switch kind {
	case SchedulerLinear:
		base.rate = func(t int) float64 {
			return etaMax + (etaMin-etaMax)*frac(t, tMax)
		}
	case SchedulerQuadratic:
		base.rate = func(t int) float64 {
			f := frac(t, tMax)

			return etaMax + (etaMin-etaMax)*f*f
		}
	case SchedulerExponential:
		base.rate = func(t int) float64 {
			return etaMax * math.Pow(etaMin/etaMax, frac(t, tMax))
		}
	case SchedulerReciprocal:
		a := 1 / etaMax
		b := (1/etaMin - 1/etaMax) / float64(max(tMax-1, 1))
		base.rate = func(t int) float64 {
			return 1 / (a + b*float64(t))
		}
	default: // SchedulerConstant
		base.rate = func(int) float64 { return 1 }
	}

	return &base
}

// frac maps epoch t to [0, 1] across the schedule, guarding tMax = 1.
func frac(t, tMax int) float64 {
	if tMax <= 1 {
		return 0
	}

	return float64(t) / float64(tMax-1)
}

// schedule is the shared stateful producer behind every kind.
type schedule struct {
	t    int
	tMax int
	rate func(t int) float64
}

// Step yields η_t and advances; past the end it is a no-op.
func (s *schedule) Step(callback func(eta float64)) {
	if s.IsFinished() {
		return
	}
	callback(s.rate(s.t))
	s.t++
}

// Run drains the remaining sequence.
func (s *schedule) Run(callback func(eta float64)) {
	for !s.IsFinished() {
		s.Step(callback)
	}
}

// IsFinished reports whether all tMax rates were produced.
func (s *schedule) IsFinished() bool { return s.t >= s.tMax }
