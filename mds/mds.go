package mds

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graphview"
)

// Sentinel errors for classical MDS.
var (
	// ErrEmptyGraph indicates MDS was given a graph with no nodes.
	ErrEmptyGraph = errors.New("mds: graph is empty")

	// ErrDimension indicates a target dimension outside [1, N).
	ErrDimension = errors.New("mds: invalid embedding dimension")

	// ErrUnreachable indicates a +Inf distance; MDS rejects disconnected input.
	ErrUnreachable = errors.New("mds: distance matrix has unreachable pairs")

	// ErrEigenFailed indicates the symmetric eigendecomposition failed.
	ErrEigenFailed = errors.New("mds: eigendecomposition failed")
)

// DefaultDim is the usual embedding dimension.
const DefaultDim = 2

// Classical embeds g into dim dimensions from scratch: all-sources
// Dijkstra for the distance matrix, then ClassicalWithDistanceMatrix.
func Classical(g graphview.Graph, weight graphview.Weight, dim int) (*drawing.Euclidean, error) {
	d, err := apsp.AllSourcesDijkstra(g, weight)
	if err != nil {
		return nil, err
	}

	return ClassicalWithDistanceMatrix(g, d, dim)
}

// ClassicalWithDistanceMatrix embeds from a prepared distance matrix.
// The top-dim eigenpairs of the double-centered squared-distance matrix
// become the coordinate axes; eigenvalues below zero (distances that are
// not exactly Euclidean) clamp to zero.
// Complexity: O(N³).
func ClassicalWithDistanceMatrix(g graphview.Graph, d *apsp.FullMatrix, dim int) (*drawing.Euclidean, error) {
	n := d.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if dim < 1 || dim >= n {
		return nil, fmt.Errorf("dim=%d with n=%d: %w", dim, n, ErrDimension)
	}

	// Squared distances; any +Inf rejects the input.
	sq := mat.NewSymDense(n, nil)
	var i, j int
	var dij float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dij = d.At(i, j)
			if math.IsInf(dij, 1) {
				return nil, fmt.Errorf("pair (%q, %q): %w", g.NodeAt(i), g.NodeAt(j), ErrUnreachable)
			}
			sq.SetSym(i, j, dij*dij)
		}
	}

	b := DoubleCentering(sq)

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return nil, ErrEigenFailed
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// EigenSym sorts ascending; the embedding wants the largest first.
	out := drawing.NewEuclidean(g, dim)
	var k int
	var scale float64
	for k = 0; k < dim; k++ {
		col := n - 1 - k
		scale = math.Sqrt(math.Max(values[col], 0))
		for i = 0; i < n; i++ {
			out.Coord(i)[k] = vectors.At(i, col) * scale
		}
	}

	return out, nil
}

// DoubleCentering turns a squared-distance matrix into the centered Gram
// matrix B = −½·J·D²·J, elementwise
// b_ij = (rowmean_i + colmean_j − d²_ij − allmean) / 2.
func DoubleCentering(sq *mat.SymDense) *mat.SymDense {
	n := sq.SymmetricDim()
	rowMean := make([]float64, n)
	var all float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			rowMean[i] += sq.At(i, j)
		}
		rowMean[i] /= float64(n)
		all += rowMean[i]
	}
	all /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			b.SetSym(i, j, (rowMean[i]+rowMean[j]-sq.At(i, j)-all)/2)
		}
	}

	return b
}
