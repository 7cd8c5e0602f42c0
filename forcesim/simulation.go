package forcesim

import "math"

// Simulation defaults, matching the d3-force cooling schedule.
const (
	DefaultAlphaMin      = 0.001
	DefaultAlphaTarget   = 0.0
	DefaultVelocityDecay = 0.6
	DefaultTicks         = 300
)

// SimOption configures a Simulation before running.
type SimOption func(*Simulation)

// WithAlphaMin sets the temperature below which Run stops. Must be in (0, 1).
func WithAlphaMin(min float64) SimOption {
	return func(s *Simulation) {
		if min <= 0 || min >= 1 {
			panic("forcesim: AlphaMin must be in (0, 1)")
		}
		s.AlphaMin = min
	}
}

// WithAlphaTarget sets the temperature the cooling decays toward.
func WithAlphaTarget(target float64) SimOption {
	return func(s *Simulation) { s.AlphaTarget = target }
}

// WithVelocityDecay sets the per-tick velocity damping γ ∈ (0, 1).
func WithVelocityDecay(decay float64) SimOption {
	return func(s *Simulation) {
		if decay <= 0 || decay >= 1 {
			panic("forcesim: VelocityDecay must be in (0, 1)")
		}
		s.VelocityDecay = decay
	}
}

// WithTicks sets the tick budget the alpha decay is derived from.
func WithTicks(ticks int) SimOption {
	return func(s *Simulation) {
		if ticks < 1 {
			panic("forcesim: Ticks must be positive")
		}
		s.Ticks = ticks
	}
}

// WithOnTick installs a hook invoked after each Step during Run with the
// tick number and current alpha. Returning false stops the run early —
// the caller's cancellation point.
func WithOnTick(hook func(tick int, alpha float64) bool) SimOption {
	return func(s *Simulation) { s.onTick = hook }
}

// Simulation owns the cooling state and the ordered force list.
//
// Alpha starts at 1 and decays toward AlphaTarget with the per-tick factor
// 1 − AlphaMin^(1/Ticks); Run terminates when alpha < AlphaMin.
type Simulation struct {
	Alpha         float64
	AlphaMin      float64
	AlphaTarget   float64
	VelocityDecay float64
	Ticks         int

	forces []Force
	onTick func(int, float64) bool
}

// NewSimulation creates a Simulation with d3-force defaults: alpha 1,
// alpha-min 0.001, target 0, velocity decay 0.6, 300 ticks.
func NewSimulation(opts ...SimOption) *Simulation {
	s := &Simulation{
		Alpha:         1,
		AlphaMin:      DefaultAlphaMin,
		AlphaTarget:   DefaultAlphaTarget,
		VelocityDecay: DefaultVelocityDecay,
		Ticks:         DefaultTicks,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Add appends a force; application order is insertion order every tick.
// CenterForce belongs first.
func (s *Simulation) Add(f Force) *Simulation {
	s.forces = append(s.forces, f)

	return s
}

// Step advances one tick: cool, apply forces in order, integrate.
func (s *Simulation) Step(points []Point) {
	decay := 1 - math.Pow(s.AlphaMin, 1/float64(s.Ticks))
	s.Alpha += (s.AlphaTarget - s.Alpha) * decay

	for _, f := range s.forces {
		f.Apply(points, s.Alpha)
	}
	for i := range points {
		points[i].VX *= s.VelocityDecay
		points[i].VY *= s.VelocityDecay
		points[i].X += points[i].VX
		points[i].Y += points[i].VY
	}
}

// Run iterates Step until alpha < AlphaMin or the OnTick hook stops it.
// Empty point buffers return immediately.
func (s *Simulation) Run(points []Point) {
	if len(points) == 0 {
		return
	}
	for tick := 0; ; tick++ {
		s.Step(points)
		if s.onTick != nil && !s.onTick(tick, s.Alpha) {
			return
		}
		if s.Alpha < s.AlphaMin {
			return
		}
	}
}
