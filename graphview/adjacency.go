package graphview

import "fmt"

// Option configures an AdjGraph before use.
type Option func(*AdjGraph)

// WithDirected makes edge direction significant: AddEdge(u, v) contributes
// to OutNeighbors(u) and InNeighbors(v) only.
func WithDirected() Option {
	return func(g *AdjGraph) { g.directed = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() Option {
	return func(g *AdjGraph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() Option {
	return func(g *AdjGraph) { g.allowMulti = true }
}

// AdjGraph is the concrete adjacency-list implementation of Graph.
//
// Nodes are stored in insertion order, which fixes the dense index used by
// every distance matrix and drawing derived from the graph. AdjGraph is a
// build-then-read structure: construct it fully, then hand it to layout
// algorithms; it is not safe for concurrent mutation.
type AdjGraph struct {
	directed   bool
	allowLoops bool
	allowMulti bool

	nodes []string       // insertion order == dense index order
	index map[string]int // node ID → dense index
	edges []Edge         // edge Handle == slice position

	out map[string][]string // one entry per incident out-edge
	in  map[string][]string // one entry per incident in-edge
}

// New creates an empty AdjGraph. Undirected, no loops, no multi-edges
// by default. Complexity: O(1).
func New(opts ...Option) *AdjGraph {
	g := &AdjGraph{
		index: make(map[string]int),
		out:   make(map[string][]string),
		in:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode inserts a node if absent and returns its dense index.
// Returns ErrEmptyNodeID for the empty string.
// Complexity: O(1) amortized.
func (g *AdjGraph) AddNode(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyNodeID
	}
	if i, ok := g.index[id]; ok {
		return i, nil
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.index[id] = i

	return i, nil
}

// AddEdge inserts an edge from → to with the given weight, creating missing
// endpoints. Returns the new edge handle.
// Returns ErrLoopNotAllowed or ErrMultiEdgeNotAllowed when the graph was not
// configured for loops / parallel edges.
// Complexity: O(deg(from)) when multi-edges are disabled, O(1) otherwise.
func (g *AdjGraph) AddEdge(from, to string, weight float64) (int, error) {
	if from == to && !g.allowLoops {
		return 0, fmt.Errorf("adding %q-%q: %w", from, to, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasEdge(from, to) {
		return 0, fmt.Errorf("adding %q-%q: %w", from, to, ErrMultiEdgeNotAllowed)
	}
	if _, err := g.AddNode(from); err != nil {
		return 0, err
	}
	if _, err := g.AddNode(to); err != nil {
		return 0, err
	}

	h := len(g.edges)
	g.edges = append(g.edges, Edge{Handle: h, From: from, To: to, Weight: weight})
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], from)
		g.in[from] = append(g.in[from], to)
	}

	return h, nil
}

// hasEdge reports whether from→to (or its reverse, when undirected) exists.
func (g *AdjGraph) hasEdge(from, to string) bool {
	for _, nbr := range g.out[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// Nodes returns all node IDs in insertion order.
func (g *AdjGraph) Nodes() []string { return g.nodes }

// Edges returns all edges; the slice position equals the edge handle.
func (g *AdjGraph) Edges() []Edge { return g.edges }

// OutNeighbors returns one entry per out-edge of id (duplicates under
// multi-edges); the adjacency for undirected graphs.
func (g *AdjGraph) OutNeighbors(id string) []string { return g.out[id] }

// InNeighbors returns one entry per in-edge of id.
func (g *AdjGraph) InNeighbors(id string) []string { return g.in[id] }

// EdgeEndpoints resolves an edge handle to its endpoints.
// Returns ErrEdgeNotFound for handles outside [0, EdgeCount).
func (g *AdjGraph) EdgeEndpoints(handle int) (string, string, error) {
	if handle < 0 || handle >= len(g.edges) {
		return "", "", fmt.Errorf("handle %d: %w", handle, ErrEdgeNotFound)
	}
	e := g.edges[handle]

	return e.From, e.To, nil
}

// NodeCount returns the number of nodes.
func (g *AdjGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *AdjGraph) EdgeCount() int { return len(g.edges) }

// ToIndex maps a node ID to its dense index.
func (g *AdjGraph) ToIndex(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// NodeAt returns the node ID at dense index i; panics when out of range,
// mirroring slice indexing.
func (g *AdjGraph) NodeAt(i int) string { return g.nodes[i] }
