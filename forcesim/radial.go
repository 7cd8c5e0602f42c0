package forcesim

import "math"

// RadialTarget is one node's optional circle: radius R around (CX, CY),
// approached with the given strength.
type RadialTarget struct {
	Strength float64
	R        float64
	CX, CY   float64
}

// RadialForce pulls each configured node toward its target circle.
type RadialForce struct {
	targets []*RadialTarget
}

// NewRadialForce captures targets for n nodes; a nil return leaves the
// node unaffected.
func NewRadialForce(n int, accessor func(i int) *RadialTarget) *RadialForce {
	f := &RadialForce{targets: make([]*RadialTarget, n)}
	for i := 0; i < n; i++ {
		f.targets[i] = accessor(i)
	}

	return f
}

// Apply accumulates, per node, the impulse moving it toward radius R of its
// circle: k = (R − d)·strength·α/d along the center-to-point direction.
func (f *RadialForce) Apply(points []Point, alpha float64) {
	var dx, dy, d, k float64
	for i := range points {
		t := f.targets[i]
		if t == nil {
			continue
		}
		dx = points[i].X - t.CX
		dy = points[i].Y - t.CY
		if math.Abs(dx) < MinDistance {
			dx = MinDistance
		}
		if math.Abs(dy) < MinDistance {
			dy = MinDistance
		}
		d = math.Hypot(dx, dy)
		k = (t.R - d) * t.Strength * alpha / d
		points[i].VX += dx * k
		points[i].VY += dy * k
	}
}
