package stress

import (
	"fmt"
	"math"
)

// cgTolerance is the relative residual at which conjugate gradient stops.
const cgTolerance = 1e-10

// conjugateGradient solves the pinned Laplacian system into out for node
// counts above the dense-factorization threshold. The matrix is applied
// implicitly from the weight table, so no n×n factor is ever formed.
// Complexity: O(iterations·n²) time, O(n) extra space.
func (m *Majorization) conjugateGradient(out []float64) error {
	n := m.n
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	// Start from the right-hand side itself.
	for i := 0; i < n; i++ {
		out[i] = m.b.AtVec(i)
	}
	m.applyPinned(out, ap)

	var rr, bNorm float64
	for i := 0; i < n; i++ {
		r[i] = m.b.AtVec(i) - ap[i]
		p[i] = r[i]
		rr += r[i] * r[i]
		bNorm += m.b.AtVec(i) * m.b.AtVec(i)
	}
	if bNorm == 0 {
		for i := range out {
			out[i] = 0
		}

		return nil
	}

	var pap, alpha, rrNext, beta float64
	for iter := 0; iter < 4*n; iter++ {
		if rr <= cgTolerance*cgTolerance*bNorm {
			return nil
		}
		m.applyPinned(p, ap)
		pap = 0
		for i := 0; i < n; i++ {
			pap += p[i] * ap[i]
		}
		if pap <= 0 || math.IsNaN(pap) {
			return fmt.Errorf("conjugate gradient broke down: %w", ErrSingular)
		}
		alpha = rr / pap
		rrNext = 0
		for i := 0; i < n; i++ {
			out[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
			rrNext += r[i] * r[i]
		}
		beta = rrNext / rr
		rr = rrNext
		for i := 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
	}
	if rr > cgTolerance*math.Sqrt(bNorm) {
		return fmt.Errorf("conjugate gradient stalled: %w", ErrSingular)
	}

	return nil
}

// applyPinned computes dst = A·v for the pinned weighted Laplacian without
// materializing A: row 0 is identity, every other row carries the full
// degree diagonal minus the off-diagonal weights (column 0 excluded).
func (m *Majorization) applyPinned(v, dst []float64) {
	n := m.n
	dst[0] = v[0]
	var i, j int
	var diag, sum float64
	for i = 1; i < n; i++ {
		diag = 0
		sum = 0
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			diag += m.w[i*n+j]
			if j > 0 {
				sum += m.w[i*n+j] * v[j]
			}
		}
		dst[i] = diag*v[i] - sum
	}
}
