package forcesim

import (
	"math"

	"github.com/katalvlaran/lvldraw/graphview"
)

// DefaultLinkDistance is the ideal edge length when no accessor is given.
const DefaultLinkDistance = 30.0

// link is one spring: endpoints by dense index, ideal distance, strength,
// and the bias splitting the correction between the endpoints.
type link struct {
	source, target     int
	distance, strength float64
	bias               float64
}

// LinkOption configures a LinkForce at construction.
type LinkOption func(*linkConfig)

type linkConfig struct {
	distance func(e graphview.Edge) float64
	strength func(e graphview.Edge) float64
}

// WithLinkDistance supplies a per-edge ideal length accessor.
func WithLinkDistance(distance func(e graphview.Edge) float64) LinkOption {
	return func(c *linkConfig) { c.distance = distance }
}

// WithLinkStrength supplies a per-edge strength accessor, overriding the
// default 1/min(deg(u), deg(v)).
func WithLinkStrength(strength func(e graphview.Edge) float64) LinkOption {
	return func(c *linkConfig) { c.strength = strength }
}

// LinkForce is the spring force over the edges of a graph.
//
// For each edge it measures the anticipated separation (position plus
// velocity difference), compares it to the ideal distance, and splits the
// correction by bias = deg(u)/(deg(u)+deg(v)), so low-degree endpoints
// absorb more of the movement.
type LinkForce struct {
	links []link
}

// NewLinkForce captures the edges of g with defaults: distance 30,
// strength 1/min(deg u, deg v), degree-derived bias.
func NewLinkForce(g graphview.Graph, opts ...LinkOption) *LinkForce {
	cfg := linkConfig{
		distance: func(graphview.Edge) float64 { return DefaultLinkDistance },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	edges := g.Edges()
	links := make([]link, 0, len(edges))
	var u, v int
	var du, dv, strength float64
	for _, e := range edges {
		u, _ = g.ToIndex(e.From)
		v, _ = g.ToIndex(e.To)
		du = float64(graphview.Degree(g, e.From))
		dv = float64(graphview.Degree(g, e.To))
		if cfg.strength != nil {
			strength = cfg.strength(e)
		} else {
			strength = 1 / math.Min(du, dv)
		}
		links = append(links, link{
			source:   u,
			target:   v,
			distance: cfg.distance(e),
			strength: strength,
			bias:     du / (du + dv),
		})
	}

	return &LinkForce{links: links}
}

// Apply accumulates the spring impulses on both endpoints of every link.
func (f *LinkForce) Apply(points []Point, alpha float64) {
	var (
		dx, dy, l, k float64
		s, t         *Point
	)
	for i := range f.links {
		ln := &f.links[i]
		s = &points[ln.source]
		t = &points[ln.target]
		// Anticipate integration: measure where the endpoints are heading.
		dx = t.X + t.VX - s.X - s.VX
		dy = t.Y + t.VY - s.Y - s.VY
		l = math.Hypot(dx, dy)
		if l < MinDistance {
			l = MinDistance
		}
		k = alpha * ln.strength * (l - ln.distance) / l
		t.VX -= dx * k * ln.bias
		t.VY -= dy * k * ln.bias
		s.VX += dx * k * (1 - ln.bias)
		s.VY += dy * k * (1 - ln.bias)
	}
}
