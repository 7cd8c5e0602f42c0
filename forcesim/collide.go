package forcesim

import "math"

// DefaultCollideStrength damps collision resolution so overlapping clusters
// relax over a few ticks instead of exploding in one.
const DefaultCollideStrength = 0.7

// CollideOption configures a CollideForce.
type CollideOption func(*CollideForce)

// WithCollideStrength sets the fraction of each overlap resolved per tick.
func WithCollideStrength(strength float64) CollideOption {
	return func(f *CollideForce) {
		if strength < 0 || strength > 1 {
			panic("forcesim: collide strength must be in [0, 1]")
		}
		f.strength = strength
	}
}

// CollideForce separates overlapping circles. The caller supplies the
// per-node radius; each overlapping pair receives a symmetric positional
// impulse resolving the overlap, scaled by strength.
type CollideForce struct {
	radius   func(i int) float64
	strength float64
	tree     quadTree
	indices  []int
	stack    []int32
}

// NewCollideForce builds the kernel around a radius accessor.
func NewCollideForce(radius func(i int) float64, opts ...CollideOption) *CollideForce {
	f := &CollideForce{
		radius:   radius,
		strength: DefaultCollideStrength,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// zeroCharge feeds the tree build when the many-body aggregate is unused.
func zeroCharge(int) float64 { return 0 }

// Apply rebuilds the quad-tree (aggregating subtree max radius) and
// resolves every overlapping pair once.
// Complexity: O(n log n) per tick for sparse overlap.
func (f *CollideForce) Apply(points []Point, _ float64) {
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

	root := f.tree.build(points, f.indices, zeroCharge, f.radius)
	for i := range points {
		f.collidePoint(root, i, points)
	}
}

// collidePoint resolves overlaps between point i and every later-indexed
// point, pruning subtrees whose region cannot reach i's circle.
func (f *CollideForce) collidePoint(root int32, i int, points []Point) {
	t := &f.tree
	ri := f.radius(i)
	f.stack = append(f.stack[:0], root)

	var (
		n                             int32
		dx, dy, l, overlap, push, rij float64
	)
	for len(f.stack) > 0 {
		n = f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		node := &t.nodes[n]

		// Prune: the closest any resident circle can come to point i.
		reach := ri + node.radius
		if math.Abs(points[i].X-node.cx)-node.half > reach ||
			math.Abs(points[i].Y-node.cy)-node.half > reach {
			continue
		}

		if !node.leaf {
			for _, c := range node.children {
				if c >= 0 {
					f.stack = append(f.stack, c)
				}
			}
			continue
		}
		for p := node.head; p >= 0; p = t.next[p] {
			if int(p) <= i {
				continue // each pair resolves once
			}
			rij = ri + f.radius(int(p))
			dx = points[p].X - points[i].X
			dy = points[p].Y - points[i].Y
			if dx == 0 && dy == 0 {
				dx = MinDistance * jiggleSign(i)
			}
			l = math.Hypot(dx, dy)
			if l >= rij {
				continue
			}
			overlap = rij - l
			push = f.strength * overlap / l / 2
			points[i].X -= dx * push
			points[i].Y -= dy * push
			points[p].X += dx * push
			points[p].Y += dy * push
		}
	}
}
