package graphview

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("graphview: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graphview: node not found")

	// ErrEdgeNotFound indicates an edge handle outside [0, EdgeCount).
	ErrEdgeNotFound = errors.New("graphview: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was added while loops are disabled.
	ErrLoopNotAllowed = errors.New("graphview: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was added while
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graphview: multi-edges not allowed")
)

// Edge is one connection between two nodes.
//
// Handle is a stable identifier assigned in insertion order; it stays valid
// for the lifetime of the graph value. Weight is carried for convenience but
// algorithms never read it directly — they take a Weight accessor so the
// consumer stays in control of edge lengths.
type Edge struct {
	// Handle uniquely identifies this edge within its graph.
	Handle int

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the stored edge weight (1 if never set).
	Weight float64
}

// Graph is the read-only capability lvldraw algorithms require.
//
// Implementations must keep node iteration order — and therefore the dense
// index returned by ToIndex — stable while any computation holds the graph.
type Graph interface {
	// Nodes returns all node IDs in iteration order.
	Nodes() []string

	// Edges returns all edges with stable handles.
	Edges() []Edge

	// OutNeighbors returns nodes reachable from id by one edge.
	// For undirected graphs this is the adjacency.
	OutNeighbors(id string) []string

	// InNeighbors returns nodes with an edge into id.
	// For undirected graphs OutNeighbors and InNeighbors coincide.
	InNeighbors(id string) []string

	// EdgeEndpoints resolves an edge handle to its (from, to) pair.
	EdgeEndpoints(handle int) (from, to string, err error)

	// NodeCount returns the number of nodes.
	NodeCount() int

	// EdgeCount returns the number of edges.
	EdgeCount() int

	// ToIndex maps a node ID to its dense index in [0, NodeCount).
	ToIndex(id string) (int, bool)

	// NodeAt is the inverse of ToIndex: the node ID at dense index i.
	NodeAt(i int) string
}

// Weight is a caller-supplied edge-length accessor.
type Weight func(e Edge) float64

// UnitWeight treats every edge as length 1.
func UnitWeight(Edge) float64 { return 1 }

// EdgeWeight reads the weight stored on the edge itself.
func EdgeWeight(e Edge) float64 { return e.Weight }

// Degree returns the number of incident edges of id (out-degree for
// directed graphs). Unknown nodes have degree 0.
func Degree(g Graph, id string) int {
	return len(g.OutNeighbors(id))
}
