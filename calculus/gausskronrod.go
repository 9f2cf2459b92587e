package calculus

import (
	"errors"
	"sync"

	"github.com/avikara/semath/ieee754"
	"github.com/avikara/semath/linalg"
)

// Gauss-Kronrod quadrature. The nested pair (G_n, K_2n+1) shares the n
// Gauss abscissae; the n+1 added points are the roots of the Stieltjes
// polynomial E_n+1. Nothing here is hard-coded: nodes and weights are
// derived once per order from the Legendre recurrence, the Stieltjes
// orthogonality conditions and a Legendre-basis collocation solve, then
// cached.

// GaussKronrodRule holds the nodes and weights of one nested pair on
// [-1, 1].
type GaussKronrodRule struct {
	N              int
	GaussNodes     []float64
	GaussWeights   []float64
	KronrodNodes   []float64
	KronrodWeights []float64
}

var (
	gkCache   = map[int]*GaussKronrodRule{}
	gkCacheMu sync.Mutex
)

// ErrRuleOrder is returned for a non-positive Gauss order.
var ErrRuleOrder = errors.New("calculus: gauss-kronrod order must be positive")

// gaussNodes returns the ascending roots of P_n by Newton iteration on the
// Bonnet recurrence.
func gaussNodes(n int) []float64 {
	nodes := make([]float64, n)
	for i := 1; i <= n; i++ {
		// Tricomi-style initial guess.
		x := ieee754.Cos(3.14159265358979323846 * (float64(i) - 0.25) / (float64(n) + 0.5))
		for it := 0; it < 100; it++ {
			p, dp := legendreEval(n, x)
			dx := p / dp
			x -= dx
			if ieee754.Abs(dx) < 1e-16 {
				break
			}
		}
		nodes[n-i] = x
	}
	// Force exact symmetry; the middle node of an odd rule is zero.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		m := (nodes[j] - nodes[i]) / 2
		nodes[i], nodes[j] = -m, m
	}
	if n%2 == 1 {
		nodes[n/2] = 0
	}
	return nodes
}

// stieltjesLegendre returns the expansion of the Stieltjes polynomial
// E_n+1 over the Legendre basis: the returned map holds the coefficient of
// P_j for each carried j, with the leading P_n+1 coefficient fixed at 1.
func stieltjesLegendre(n int) map[int]float64 {
	// Unknown coefficients sit at j = n-1, n-3, ... matching the parity of
	// n+1.
	var js []int
	for j := n - 1; j >= 0; j -= 2 {
		js = append(js, j)
	}
	if len(js) == 0 {
		return map[int]float64{n + 1: 1}
	}

	// Orthogonality: integral of E_n+1 * P_n * x^k over [-1,1] vanishes for
	// k = 0..n; parity leaves the odd k as the binding conditions.
	var ks []int
	for k := 1; k <= n; k += 2 {
		ks = append(ks, k)
	}
	// A high-order plain Gauss rule evaluates every moment exactly.
	quadN := 2*n + 2
	qNodes := gaussNodes(quadN)
	qWeights := make([]float64, quadN)
	for i, x := range qNodes {
		_, dp := legendreEval(quadN, x)
		qWeights[i] = 2 / ((1 - x*x) * dp * dp)
	}
	moment := func(j, k int) float64 {
		sum := 0.0
		for i, x := range qNodes {
			pj, _ := legendreEval(j, x)
			pn, _ := legendreEval(n, x)
			sum += qWeights[i] * pj * pn * ieee754.Pow(x, float64(k))
		}
		return sum
	}

	m := linalg.NewMatrix(len(js), len(ks))
	rhs := make([]float64, len(ks))
	for r, k := range ks {
		for c, j := range js {
			m.Set(c, r, moment(j, k))
		}
		rhs[r] = -moment(n+1, k)
	}
	sol, err := m.Solve(rhs)
	if err != nil {
		// The system is square and non-singular by construction.
		panic("calculus: stieltjes system did not solve: " + err.Error())
	}
	out := map[int]float64{n + 1: 1}
	for c, j := range js {
		out[j] = sol[c]
	}
	return out
}

// stieltjesEval evaluates the Legendre-basis expansion at x.
func stieltjesEval(coeffs map[int]float64, x float64) float64 {
	maxJ := 0
	for j := range coeffs {
		if j > maxJ {
			maxJ = j
		}
	}
	sum := 0.0
	pPrev, pCur := 1.0, x
	for j := 0; j <= maxJ; j++ {
		var pj float64
		switch j {
		case 0:
			pj = 1
		case 1:
			pj = x
		default:
			pPrev, pCur = pCur, ((2*float64(j)-1)*x*pCur-(float64(j)-1)*pPrev)/float64(j)
			pj = pCur
		}
		if c, ok := coeffs[j]; ok {
			sum += c * pj
		}
	}
	return sum
}

// StieltjesCoefficients returns the power-basis coefficients of the
// Stieltjes polynomial E_N in descending order, absent powers zero-filled.
func StieltjesCoefficients(n uint64) []float64 {
	if n == 0 {
		return []float64{1}
	}
	leg := stieltjesLegendre(int(n) - 1)
	out := make([]float64, n+1)
	for j, c := range leg {
		pj := LegendreCoefficients(uint64(j))
		for i, v := range pj {
			// pj is descending of length j+1; align to the tail of out.
			out[int(n)-j+i] += c * v
		}
	}
	return out
}

// Rule builds (or fetches) the nested pair of Gauss order n.
func Rule(n int) (*GaussKronrodRule, error) {
	if n < 1 {
		return nil, ErrRuleOrder
	}
	gkCacheMu.Lock()
	defer gkCacheMu.Unlock()
	if r, ok := gkCache[n]; ok {
		return r, nil
	}

	gn := gaussNodes(n)
	gw := make([]float64, n)
	for i, x := range gn {
		_, dp := legendreEval(n, x)
		gw[i] = 2 / ((1 - x*x) * dp * dp)
	}

	// Kronrod extension: the roots of E_n+1 interlace the Gauss nodes and
	// reach into both end gaps, so every root sits in a known bracket.
	st := stieltjesLegendre(n)
	brackets := make([][2]float64, 0, n+1)
	brackets = append(brackets, [2]float64{-1, gn[0]})
	for i := 0; i+1 < n; i++ {
		brackets = append(brackets, [2]float64{gn[i], gn[i+1]})
	}
	brackets = append(brackets, [2]float64{gn[n-1], 1})

	newNodes := make([]float64, 0, n+1)
	for _, br := range brackets {
		lo, hi := br[0], br[1]
		flo := stieltjesEval(st, lo)
		for it := 0; it < 200; it++ {
			mid := (lo + hi) / 2
			if mid == lo || mid == hi {
				break
			}
			fmid := stieltjesEval(st, mid)
			if (flo <= 0) == (fmid <= 0) {
				lo, flo = mid, fmid
			} else {
				hi = mid
			}
		}
		newNodes = append(newNodes, (lo+hi)/2)
	}

	// Merge and sort all 2n+1 abscissae.
	all := make([]float64, 0, 2*n+1)
	all = append(all, gn...)
	all = append(all, newNodes...)
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j] < all[j-1]; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	// Kronrod weights from collocation over the Legendre basis: the rule
	// reproduces the integrals of P_0..P_2n.
	sz := 2*n + 1
	a := linalg.NewMatrix(sz, sz)
	rhs := make([]float64, sz)
	rhs[0] = 2
	for col, x := range all {
		pPrev, pCur := 1.0, x
		for k := 0; k < sz; k++ {
			var pk float64
			switch k {
			case 0:
				pk = 1
			case 1:
				pk = x
			default:
				pPrev, pCur = pCur, ((2*float64(k)-1)*x*pCur-(float64(k)-1)*pPrev)/float64(k)
				pk = pCur
			}
			a.Set(col, k, pk)
		}
	}
	kw, err := a.Solve(rhs)
	if err != nil {
		return nil, err
	}

	r := &GaussKronrodRule{
		N:              n,
		GaussNodes:     gn,
		GaussWeights:   gw,
		KronrodNodes:   all,
		KronrodWeights: kw,
	}
	gkCache[n] = r
	return r, nil
}

// NodesAndWeights returns the Kronrod abscissae and weights for Gauss
// order n, ascending.
func NodesAndWeights(n int) (nodes, weights []float64, err error) {
	r, err := Rule(n)
	if err != nil {
		return nil, nil, err
	}
	return append([]float64(nil), r.KronrodNodes...), append([]float64(nil), r.KronrodWeights...), nil
}

// Integrate applies the pair to f over [a, b] and returns the Kronrod
// estimate together with |K - G| as the local error estimate.
func (r *GaussKronrodRule) Integrate(f Function1D, a, b float64) (value, errEst float64) {
	mid := (a + b) / 2
	half := (b - a) / 2
	g := 0.0
	for i, x := range r.GaussNodes {
		g += r.GaussWeights[i] * f(mid+half*x)
	}
	k := 0.0
	for i, x := range r.KronrodNodes {
		k += r.KronrodWeights[i] * f(mid+half*x)
	}
	g *= half
	k *= half
	return k, ieee754.Abs(k - g)
}

// GaussKronrod integrates f over [a, b] with the fixed pair of Gauss order
// n (7, 10, 15, 20, 25 and 30 give the classical G7K15..G30K61 rules).
func GaussKronrod(f Function1D, a, b float64, n int) (float64, error) {
	r, err := Rule(n)
	if err != nil {
		return 0, err
	}
	v, _ := r.Integrate(f, a, b)
	return v, nil
}

// AdaptiveOptions parameterises AdaptiveGaussKronrod.
type AdaptiveOptions struct {
	// N is the Gauss order of the pair. Default 7 (G7K15).
	N int
	// Tol is the absolute error target. Default 1e-12.
	Tol float64
	// MaxDepth bounds the bisection depth. Default 40.
	MaxDepth int
}

func (o *AdaptiveOptions) setDefaults() {
	if o.N == 0 {
		o.N = 7
	}
	if o.Tol == 0 {
		o.Tol = 1e-12
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = 40
	}
}

// AdaptiveGaussKronrod integrates f over [a, b] by recursive bisection: a
// panel whose |K - G| estimate exceeds its tolerance is split in two, each
// half getting half that tolerance, down to at most MaxDepth levels. Panels
// are refined independently of each other; the panel with the largest
// estimate is not singled out, and the summed estimate of the result is not
// compared with the tolerance.
func AdaptiveGaussKronrod(f Function1D, a, b float64, opts AdaptiveOptions) (float64, error) {
	opts.setDefaults()
	r, err := Rule(opts.N)
	if err != nil {
		return 0, err
	}
	var rec func(a, b, tol float64, depth int) float64
	rec = func(a, b, tol float64, depth int) float64 {
		v, e := r.Integrate(f, a, b)
		if e <= tol || depth >= opts.MaxDepth {
			return v
		}
		mid := (a + b) / 2
		return rec(a, mid, tol/2, depth+1) + rec(mid, b, tol/2, depth+1)
	}
	return rec(a, b, opts.Tol, 0), nil
}
