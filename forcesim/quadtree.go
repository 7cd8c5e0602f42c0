package forcesim

import "gonum.org/v1/gonum/spatial/r2"

// maxDepth bounds subdivision; below this cell size coincident points are
// chained on one leaf instead of splitting further.
const maxDepth = 24

// quadNode is one cell of the arena-backed quad-tree rebuilt every tick.
//
// Leaves hold a point chain (head + next links); internal nodes hold child
// arena indices. Every node aggregates total charge and the charge-weighted
// center of mass of its subtree.
type quadNode struct {
	children [4]int32 // arena indices, -1 = absent
	head     int32    // first point of a leaf chain, -1 for internal/empty
	leaf     bool

	mass   float64 // summed |charge|
	charge float64 // summed charge (signed)
	com    r2.Vec  // charge-weighted center of mass
	radius float64 // max collision radius in subtree (collide pass)

	// Cell bounds: center and half-extent.
	cx, cy, half float64
}

// quadTree is the shared Barnes–Hut structure of the many-body and collide
// kernels. The arena and chain slices are reused across ticks.
type quadTree struct {
	nodes []quadNode
	next  []int32 // point chain links, parallel to the point buffer
}

// build reconstructs the tree over the current positions of the given point
// indices. charge and radius accessors aggregate the per-subtree values the
// two consumers need.
// Complexity: O(n log n) expected.
func (t *quadTree) build(points []Point, indices []int, charge func(i int) float64, radius func(i int) float64) int32 {
	if len(indices) == 0 {
		return -1
	}
	t.nodes = t.nodes[:0]
	if cap(t.next) < len(points) {
		t.next = make([]int32, len(points))
	}
	t.next = t.next[:len(points)]

	// Bounding square over the live points.
	minX, minY := points[indices[0]].X, points[indices[0]].Y
	maxX, maxY := minX, minY
	for _, i := range indices {
		p := &points[i]
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	half := max(maxX-minX, maxY-minY)/2 + MinDistance

	root := t.newNode((minX+maxX)/2, (minY+maxY)/2, half)
	for _, i := range indices {
		t.insert(root, int32(i), points, 0)
	}
	t.aggregate(root, points, charge, radius)

	return root
}

// newNode appends an empty leaf cell to the arena.
func (t *quadTree) newNode(cx, cy, half float64) int32 {
	t.nodes = append(t.nodes, quadNode{
		children: [4]int32{-1, -1, -1, -1},
		head:     -1,
		leaf:     true,
		cx:       cx, cy: cy, half: half,
	})

	return int32(len(t.nodes) - 1)
}

// quadrant selects the child cell index of (x, y) within node n.
func (t *quadTree) quadrant(n int32, x, y float64) int {
	q := 0
	if x >= t.nodes[n].cx {
		q |= 1
	}
	if y >= t.nodes[n].cy {
		q |= 2
	}

	return q
}

// insert descends to the leaf cell of point p, splitting occupied leaves
// until points separate or maxDepth chains them.
func (t *quadTree) insert(n, p int32, points []Point, depth int) {
	for {
		node := &t.nodes[n]
		if node.leaf {
			if node.head < 0 {
				node.head = p
				t.next[p] = -1
				return
			}
			if depth >= maxDepth {
				// Chain coincident points on this leaf.
				t.next[p] = node.head
				node.head = p
				return
			}
			// Split: push the resident chain down, then retry the insert.
			resident := node.head
			node.head = -1
			node.leaf = false
			for resident >= 0 {
				nxt := t.next[resident]
				t.placeInChild(n, resident, points)
				resident = nxt
			}
			continue
		}
		q := t.quadrant(n, points[p].X, points[p].Y)
		if t.nodes[n].children[q] < 0 {
			// Allocate before assigning: newNode may reallocate the arena.
			c := t.childCell(n, q)
			t.nodes[n].children[q] = c
		}
		n = t.nodes[n].children[q]
		depth++
	}
}

// placeInChild drops a single point into the proper child of internal node n.
func (t *quadTree) placeInChild(n, p int32, points []Point) {
	q := t.quadrant(n, points[p].X, points[p].Y)
	if t.nodes[n].children[q] < 0 {
		c := t.childCell(n, q)
		t.nodes[n].children[q] = c
	}
	c := t.nodes[n].children[q]
	t.next[p] = t.nodes[c].head
	t.nodes[c].head = p
	// The child stays a leaf; a later insert splits it when needed.
}

// childCell allocates the q-th quadrant cell of node n.
func (t *quadTree) childCell(n int32, q int) int32 {
	h := t.nodes[n].half / 2
	cx, cy := t.nodes[n].cx-h, t.nodes[n].cy-h
	if q&1 != 0 {
		cx = t.nodes[n].cx + h
	}
	if q&2 != 0 {
		cy = t.nodes[n].cy + h
	}

	return t.newNode(cx, cy, h)
}

// aggregate computes subtree charge, center of mass and max radius, bottom-up.
func (t *quadTree) aggregate(n int32, points []Point, charge func(i int) float64, radius func(i int) float64) {
	node := &t.nodes[n]
	node.mass, node.charge, node.radius = 0, 0, 0
	node.com = r2.Vec{}

	if node.leaf {
		for p := node.head; p >= 0; p = t.next[p] {
			c := charge(int(p))
			w := c
			if w < 0 {
				w = -w
			}
			node.mass += w
			node.charge += c
			node.com = r2.Add(node.com, r2.Scale(w, r2.Vec{X: points[p].X, Y: points[p].Y}))
			node.radius = max(node.radius, radius(int(p)))
		}
	} else {
		for _, c := range node.children {
			if c < 0 {
				continue
			}
			t.aggregate(c, points, charge, radius)
			child := t.nodes[c]
			node.mass += child.mass
			node.charge += child.charge
			node.com = r2.Add(node.com, r2.Scale(child.mass, child.com))
			node.radius = max(node.radius, child.radius)
		}
	}
	if node.mass > 0 {
		node.com = r2.Scale(1/node.mass, node.com)
	} else {
		node.com = r2.Vec{X: node.cx, Y: node.cy}
	}
}
