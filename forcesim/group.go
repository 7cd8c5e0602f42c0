package forcesim

import "github.com/katalvlaran/lvldraw/graphview"

// Group-force defaults: springs are strong inside a group and nearly slack
// across groups; group anchors pull gently.
const (
	DefaultIntraGroupStrength = 0.5
	DefaultInterGroupStrength = 0.01
	DefaultGroupStrength      = 0.1
)

// GroupFn maps a dense node index to its group ID.
type GroupFn func(i int) int

// NewGroupLinkForce builds a LinkForce whose per-edge strength depends on
// whether the endpoints share a group: intra-group 0.5, inter-group 0.01.
// Distance and bias keep the LinkForce defaults.
func NewGroupLinkForce(g graphview.Graph, group GroupFn) *LinkForce {
	return NewLinkForce(g, WithLinkStrength(func(e graphview.Edge) float64 {
		u, _ := g.ToIndex(e.From)
		v, _ := g.ToIndex(e.To)
		if group(u) == group(v) {
			return DefaultIntraGroupStrength
		}

		return DefaultInterGroupStrength
	}))
}

// GroupManyBodyForce applies charge repulsion independently inside each
// group, so clusters compact without pushing each other apart.
type GroupManyBodyForce struct {
	group    GroupFn
	strength func(i int) float64
	theta2   float64
	tree     quadTree
	stack    []int32
	byGroup  map[int][]int
}

// NewGroupManyBodyForce builds the kernel with the many-body defaults;
// ManyBodyOptions adjust charge and θ² exactly as for the flat kernel.
func NewGroupManyBodyForce(group GroupFn, opts ...ManyBodyOption) *GroupManyBodyForce {
	inner := NewManyBodyForce(opts...)

	return &GroupManyBodyForce{
		group:    group,
		strength: inner.strength,
		theta2:   inner.theta2,
		byGroup:  make(map[int][]int),
	}
}

// Apply partitions points by group and runs a Barnes–Hut pass per group.
func (f *GroupManyBodyForce) Apply(points []Point, alpha float64) {
	for k := range f.byGroup {
		f.byGroup[k] = f.byGroup[k][:0]
	}
	for i := range points {
		gid := f.group(i)
		f.byGroup[gid] = append(f.byGroup[gid], i)
	}

	for _, members := range f.byGroup {
		if len(members) < 2 {
			continue
		}
		root := f.tree.build(points, members, f.strength, zeroRadius)
		for _, i := range members {
			f.stack = f.tree.applyCharge(root, i, points, alpha, f.theta2, f.strength, f.stack)
		}
	}
}

// NewGroupPositionForce anchors every node at its group's target point:
// the position-force with group-level coordinates.
func NewGroupPositionForce(n int, group GroupFn, groupX, groupY func(gid int) float64) *PositionForce {
	strength := DefaultGroupStrength

	return NewPositionForce(n, func(i int) PositionTarget {
		gid := group(i)
		x, y := groupX(gid), groupY(gid)

		return PositionTarget{X: &x, Y: &y, Strength: &strength}
	})
}

// GroupCenterForce pulls every node toward its group's center point with a
// shared strength — the velocity-based group counterpart of CenterForce.
type GroupCenterForce struct {
	group    GroupFn
	cx, cy   func(gid int) float64
	strength float64
}

// NewGroupCenterForce builds the kernel with strength 0.1.
func NewGroupCenterForce(group GroupFn, cx, cy func(gid int) float64) *GroupCenterForce {
	return &GroupCenterForce{group: group, cx: cx, cy: cy, strength: DefaultGroupStrength}
}

// Apply accumulates the pull of each node toward its group center.
func (f *GroupCenterForce) Apply(points []Point, alpha float64) {
	k := f.strength * alpha
	var gid int
	for i := range points {
		gid = f.group(i)
		points[i].VX += (f.cx(gid) - points[i].X) * k
		points[i].VY += (f.cy(gid) - points[i].Y) * k
	}
}

// GroupCentroid computes the mean position of each group, handy as the
// cx/cy accessors of GroupCenterForce when groups should cohere in place.
func GroupCentroid(points []Point, group GroupFn) (cx, cy map[int]float64) {
	cx = make(map[int]float64)
	cy = make(map[int]float64)
	count := make(map[int]float64)
	var gid int
	for i := range points {
		gid = group(i)
		cx[gid] += points[i].X
		cy[gid] += points[i].Y
		count[gid]++
	}
	for gid = range cx {
		cx[gid] /= count[gid]
		cy[gid] /= count[gid]
	}

	return cx, cy
}
