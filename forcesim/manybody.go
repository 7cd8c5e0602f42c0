package forcesim

// Many-body defaults: the squared Barnes–Hut opening angle (0.9²) and the
// repulsive charge.
const (
	DefaultTheta2           = 0.81
	DefaultManyBodyStrength = -30.0
)

// ManyBodyOption configures a ManyBodyForce.
type ManyBodyOption func(*ManyBodyForce)

// WithManyBodyStrength supplies a per-node charge accessor; negative
// repels, positive attracts.
func WithManyBodyStrength(strength func(i int) float64) ManyBodyOption {
	return func(f *ManyBodyForce) { f.strength = strength }
}

// WithTheta2 sets the squared opening angle. 0 disables the approximation:
// every pair interacts exactly.
func WithTheta2(theta2 float64) ManyBodyOption {
	return func(f *ManyBodyForce) {
		if theta2 < 0 {
			panic("forcesim: Theta2 must be non-negative")
		}
		f.theta2 = theta2
	}
}

// ManyBodyForce is the Barnes–Hut approximated charge force: every point
// repels (or attracts) every other, far clusters collapsing into their
// center of mass once cell size ≤ θ·distance.
type ManyBodyForce struct {
	strength func(i int) float64
	theta2   float64
	tree     quadTree
	indices  []int
	stack    []int32
}

// NewManyBodyForce builds the kernel with charge −30 and θ² = 0.81.
func NewManyBodyForce(opts ...ManyBodyOption) *ManyBodyForce {
	f := &ManyBodyForce{
		strength: func(int) float64 { return DefaultManyBodyStrength },
		theta2:   DefaultTheta2,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// zeroRadius feeds the tree build when the collide aggregate is unused.
func zeroRadius(int) float64 { return 0 }

// Apply rebuilds the quad-tree and accumulates the approximated impulses.
// Complexity: O(n log n) per tick at θ > 0, O(n²) at θ = 0.
func (f *ManyBodyForce) Apply(points []Point, alpha float64) {
	if len(points) < 2 {
		return
	}
	if cap(f.indices) < len(points) {
		f.indices = make([]int, len(points))
	}
	f.indices = f.indices[:len(points)]
	for i := range f.indices {
		f.indices[i] = i
	}

	root := f.tree.build(points, f.indices, f.strength, zeroRadius)
	for i := range points {
		f.stack = f.tree.applyCharge(root, i, points, alpha, f.theta2, f.strength, f.stack)
	}
}

// applyCharge walks the tree for one target point, opening cells that are
// too close for the super-node approximation. The traversal stack is
// returned for reuse across calls.
func (t *quadTree) applyCharge(root int32, i int, points []Point, alpha, theta2 float64, strength func(int) float64, stack []int32) []int32 {
	target := &points[i]
	stack = append(stack[:0], root)

	var (
		n                    int32
		dx, dy, l2, w, size2 float64
	)
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := &t.nodes[n]

		dx = node.com.X - target.X
		dy = node.com.Y - target.Y
		l2 = dx*dx + dy*dy
		size2 = 4 * node.half * node.half // full cell width, squared

		if !node.leaf && size2 <= theta2*l2 {
			// Far enough: the whole subtree acts as one super-node.
			if l2 < MinDistance*MinDistance {
				l2 = MinDistance * MinDistance
			}
			w = node.charge * alpha / l2
			target.VX += dx * w
			target.VY += dy * w
			continue
		}
		if node.leaf {
			for p := node.head; p >= 0; p = t.next[p] {
				if int(p) == i {
					continue
				}
				dx = points[p].X - target.X
				dy = points[p].Y - target.Y
				if dx == 0 && dy == 0 {
					// Coincident: deterministic tie-break direction.
					dx = MinDistance * jiggleSign(i)
				}
				l2 = dx*dx + dy*dy
				if l2 < MinDistance*MinDistance {
					l2 = MinDistance * MinDistance
				}
				w = strength(int(p)) * alpha / l2
				target.VX += dx * w
				target.VY += dy * w
			}
			continue
		}
		for _, c := range node.children {
			if c >= 0 {
				stack = append(stack, c)
			}
		}
	}

	return stack
}
