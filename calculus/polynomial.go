// Package calculus implements the numerical analysis layer: finite
// difference differentiation with automatic step refinement, the sample
// based quadrature family (trapezoidal, the Simpson variants, Romberg,
// Gauss-Kronrod with adaptive subdivision), and the change of variables that
// folds improper integrals onto a finite interval.
package calculus

import (
	"errors"

	"github.com/avikara/semath/linalg"
)

// Function1D is a real function of one real variable.
type Function1D func(float64) float64

// ErrSampleCount is returned when a quadrature rule receives fewer samples
// than it needs.
var ErrSampleCount = errors.New("calculus: not enough sample points for this rule")

// Polynomial holds coefficients in descending power order. The leading
// coefficient of a well-formed polynomial of degree n is non-zero.
type Polynomial struct {
	Coeffs []float64
}

// NewPolynomial wraps a descending-order coefficient slice.
func NewPolynomial(coeffs []float64) Polynomial { return Polynomial{Coeffs: coeffs} }

// Degree returns the nominal degree, len(coeffs)-1.
func (p Polynomial) Degree() int { return len(p.Coeffs) - 1 }

// Eval evaluates the polynomial at x by Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for _, c := range p.Coeffs {
		acc = acc*x + c
	}
	return acc
}

// Derivative returns the derivative polynomial.
func (p Polynomial) Derivative() Polynomial {
	n := len(p.Coeffs)
	if n <= 1 {
		return Polynomial{Coeffs: []float64{0}}
	}
	out := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		out[i] = p.Coeffs[i] * float64(n-1-i)
	}
	return Polynomial{Coeffs: out}
}

// ElementarySymmetric returns the values of all elementary symmetric
// polynomials of v, from e0 (defined as 1) through e_n.
//
// For v = (2, 3, 4) the result is (1, 9, 26, 24).
func ElementarySymmetric(v []float64) []float64 {
	e := make([]float64, len(v)+1)
	e[0] = 1
	for _, x := range v {
		for j := len(e) - 1; j >= 1; j-- {
			e[j] += x * e[j-1]
		}
	}
	return e
}

// Vandermonde builds the matrix V with V(col j, row i) = v[j]^i.
//
// For v = (2, 3, 4, 5) the rows are (1,1,1,1), (2,3,4,5), (4,9,16,25),
// (8,27,64,125).
func Vandermonde(v []float64) *linalg.Matrix {
	n := len(v)
	m := linalg.NewMatrix(n, n)
	for j, x := range v {
		p := 1.0
		for i := 0; i < n; i++ {
			m.Set(j, i, p)
			p *= x
		}
	}
	return m
}

// InverseVandermonde builds the explicit inverse of Vandermonde(v) in
// O(n^2): row j holds the coefficients of the Lagrange basis polynomial of
// node v[j], obtained by deflating the elementary symmetric polynomials of
// the full node set.
func InverseVandermonde(v []float64) *linalg.Matrix {
	n := len(v)
	e := ElementarySymmetric(v)
	m := linalg.NewMatrix(n, n)
	for j, xj := range v {
		// Deflate: coefficients of prod_{m != j} (x - v_m) from the full
		// product's symmetric functions.
		ej := make([]float64, n)
		ej[0] = 1
		for i := 1; i < n; i++ {
			ej[i] = e[i] - xj*ej[i-1]
		}
		// Denominator prod_{m != j} (v_j - v_m).
		den := 1.0
		for mIdx, xm := range v {
			if mIdx != j {
				den *= xj - xm
			}
		}
		// L_j(x) = sum_k (-1)^(n-1-k) ej[n-1-k] x^k / den.
		for k := 0; k < n; k++ {
			c := ej[n-1-k] / den
			if (n-1-k)%2 != 0 {
				c = -c
			}
			m.Set(k, j, c)
		}
	}
	return m
}

// LegendreCoefficients returns the coefficients of the Legendre polynomial
// P_n in descending power order, absent powers filled with zero.
func LegendreCoefficients(n uint64) []float64 {
	// Bonnet recursion on dense coefficient slices, ascending order
	// internally.
	p0 := []float64{1}
	if n == 0 {
		return p0
	}
	p1 := []float64{0, 1}
	for k := uint64(2); k <= n; k++ {
		// k P_k = (2k-1) x P_{k-1} - (k-1) P_{k-2}
		pk := make([]float64, k+1)
		for i, c := range p1 {
			pk[i+1] += (2*float64(k) - 1) * c / float64(k)
		}
		for i, c := range p0 {
			pk[i] -= (float64(k) - 1) * c / float64(k)
		}
		p0, p1 = p1, pk
	}
	out := make([]float64, n+1)
	for i, c := range p1 {
		out[n-uint64(i)] = c
	}
	return out
}

// legendreEval evaluates P_n and its derivative at x by the Bonnet
// recurrence.
func legendreEval(n int, x float64) (p, dp float64) {
	if n == 0 {
		return 1, 0
	}
	pPrev, pCur := 1.0, x
	for k := 2; k <= n; k++ {
		pPrev, pCur = pCur, ((2*float64(k)-1)*x*pCur-(float64(k)-1)*pPrev)/float64(k)
	}
	dp = float64(n) * (x*pCur - pPrev) / (x*x - 1)
	return pCur, dp
}
