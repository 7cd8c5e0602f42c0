package forcesim

// CenterForce translates all positions so their centroid sits at the
// configured center. It is positional — it moves X/Y directly, as
// CollideForce also does — and idempotent within a tick, so keep it first
// in the list.
type CenterForce struct {
	X, Y float64
}

// NewCenterForce centers on the origin.
func NewCenterForce() *CenterForce { return &CenterForce{} }

// Apply subtracts the centroid offset from every position. Velocities are
// untouched.
func (f *CenterForce) Apply(points []Point, _ float64) {
	n := len(points)
	if n == 0 {
		return
	}
	var cx, cy float64
	for i := range points {
		cx += points[i].X
		cy += points[i].Y
	}
	cx = cx/float64(n) - f.X
	cy = cy/float64(n) - f.Y
	for i := range points {
		points[i].X -= cx
		points[i].Y -= cy
	}
}
