package forcesim

// DefaultPositionStrength is the pull toward a target when the accessor
// leaves it unset.
const DefaultPositionStrength = 0.1

// PositionTarget is one node's optional anchor. Nil coordinates leave that
// axis free; a nil Strength uses DefaultPositionStrength.
type PositionTarget struct {
	X, Y     *float64
	Strength *float64
}

// PositionForce pulls each node toward its per-node target coordinates,
// axis by axis: v += (target − x)·α·strength.
type PositionForce struct {
	strength []float64
	x, y     []*float64
}

// NewPositionForce captures targets for n nodes from the accessor;
// accessor may return the zero PositionTarget to leave a node free.
func NewPositionForce(n int, accessor func(i int) PositionTarget) *PositionForce {
	f := &PositionForce{
		strength: make([]float64, n),
		x:        make([]*float64, n),
		y:        make([]*float64, n),
	}
	for i := 0; i < n; i++ {
		t := accessor(i)
		if t.Strength != nil {
			f.strength[i] = *t.Strength
		} else {
			f.strength[i] = DefaultPositionStrength
		}
		f.x[i] = t.X
		f.y[i] = t.Y
	}

	return f
}

// Apply accumulates the axis pulls on every anchored node.
func (f *PositionForce) Apply(points []Point, alpha float64) {
	for i := range points {
		if f.x[i] != nil {
			points[i].VX += (*f.x[i] - points[i].X) * alpha * f.strength[i]
		}
		if f.y[i] != nil {
			points[i].VY += (*f.y[i] - points[i].Y) * alpha * f.strength[i]
		}
	}
}
