package sgd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvldraw/apsp"
	"github.com/katalvlaran/lvldraw/graphview"
	"github.com/katalvlaran/lvldraw/rng"
)

// DefaultPivots is the sparse term budget when callers have no opinion.
const DefaultPivots = 50

// NewSparse builds the pivot-approximated term set: h pivots are chosen by
// max-min sampling (first uniformly via r, then repeatedly the node
// farthest from the chosen set), every non-pivot pairs with every pivot at
// weight 1/d², and pivot pairs carry a region weight
// |region(p)|·|region(q)|/d(p,q)² so dense regions pull proportionally.
//
// h is capped at the node count (and at the number of distinct positions a
// component offers); h < 1 reports ErrTooFewPivots. Identical r state and
// graph give a bit-identical pivot set and term list.
// Complexity: O(h·(V+E)·log V) for distances plus O(h·V) terms.
func NewSparse(g graphview.Graph, weight graphview.Weight, h int, r *rng.Rng) (*SGD, error) {
	if h < 1 {
		return nil, fmt.Errorf("h=%d: %w", h, ErrTooFewPivots)
	}
	n := g.NodeCount()
	if n == 0 {
		return New(nil), nil
	}
	if h > n {
		h = n
	}

	pivots, sub, err := choosePivots(g, weight, h, r)
	if err != nil {
		return nil, err
	}
	h = len(pivots) // sampling may stop early on small components

	// Closest pivot and region sizes. Unreachable nodes join no region.
	var (
		closest = make([]int, n) // node → pivot row, -1 unreachable
		region  = make([]int, h) // pivot row → member count
		best    float64
	)
	for v := 0; v < n; v++ {
		closest[v] = -1
		best = apsp.Inf
		for k := 0; k < h; k++ {
			if d := sub.At(k, v); d < best {
				best = d
				closest[v] = k
			}
		}
		if closest[v] >= 0 {
			region[closest[v]]++
		}
	}

	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}

	terms := make([]Term, 0, n*h)
	var dij, wij float64
	// Non-pivot × pivot terms at the plain stress weight.
	for k := 0; k < h; k++ {
		p := pivots[k]
		for v := 0; v < n; v++ {
			if v == p || isPivot[v] {
				continue
			}
			dij = sub.At(k, v)
			if math.IsInf(dij, 1) {
				continue
			}
			wij = 1 / (dij * dij)
			terms = append(terms, orderedTerm(v, p, dij, wij))
		}
	}
	// Pivot × pivot terms weighted by the regions they stand in for.
	for a := 0; a < h; a++ {
		for b := a + 1; b < h; b++ {
			dij = sub.At(a, pivots[b])
			if math.IsInf(dij, 1) {
				continue
			}
			wij = float64(region[a]) * float64(region[b]) / (dij * dij)
			terms = append(terms, orderedTerm(pivots[a], pivots[b], dij, wij))
		}
	}

	return New(terms), nil
}

// orderedTerm normalizes the I < J convention.
func orderedTerm(i, j int, d, w float64) Term {
	if i > j {
		i, j = j, i
	}

	return Term{I: i, J: j, D: d, W: w, W0: w}
}

// choosePivots max-min samples up to h pivot nodes and returns them with
// their distance rows. The first pivot is uniform over all nodes; each
// subsequent pivot maximizes the distance to the chosen set (ties to the
// lowest index, so the selection is deterministic given the RNG stream).
// Sampling stops early once every remaining node coincides with the chosen
// set or sits in an unreachable component.
func choosePivots(g graphview.Graph, weight graphview.Weight, h int, r *rng.Rng) ([]int, *apsp.SubMatrix, error) {
	n := g.NodeCount()
	pivots := make([]int, 0, h)
	ids := make([]string, 0, h)
	minDist := make([]float64, n) // distance from each node to the chosen set

	next := r.Intn(n)
	for {
		pivots = append(pivots, next)
		ids = append(ids, g.NodeAt(next))

		// One shortest-path row for the pivot just added.
		rowSub, err := apsp.DijkstraFrom(g, weight, ids[len(ids)-1:])
		if err != nil {
			return nil, nil, err
		}
		row := rowSub.Row(0)
		if len(pivots) == 1 {
			copy(minDist, row)
		} else {
			for v := range minDist {
				if row[v] < minDist[v] {
					minDist[v] = row[v]
				}
			}
		}
		if len(pivots) == h {
			break
		}

		far := -1.0
		next = -1
		for v := 0; v < n; v++ {
			if math.IsInf(minDist[v], 1) {
				continue // other components get no extra pivots
			}
			if minDist[v] > far {
				far = minDist[v]
				next = v
			}
		}
		if next < 0 || far == 0 {
			break // fewer distinct positions than requested pivots
		}
	}

	sub, err := apsp.DijkstraFrom(g, weight, ids)
	if err != nil {
		return nil, nil, err
	}

	return pivots, sub, nil
}
