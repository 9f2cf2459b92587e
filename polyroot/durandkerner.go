package polyroot

import "github.com/avikara/semath/ieee754"

// Durand-Kerner simultaneous iteration for polynomials of any degree. There
// is no closed radical form at degree five and beyond, so the solver seeds n
// distinct complex points and moves them all at once by
// z_i <- z_i - f(z_i) / prod_{j != i} (z_i - z_j) until the largest step
// falls under the tolerance or the iteration budget runs out.

// Config parameterises SolvePoly.
type Config struct {
	// PError is the negative logarithm of the convergence tolerance.
	PError float64
	// MaxIterLog is the base-10 logarithm of the iteration budget.
	MaxIterLog float64
	// Base seeds the starting roots Base^k, k = 0..n-1. It must be neither
	// real nor on the unit circle so the seeds stay distinct.
	Base complex128
}

// DefaultConfig mirrors the reference defaults: tolerance 10^-15, at most
// 10^3 iterations, seed base 0.4+0.9i.
func DefaultConfig() Config {
	return Config{PError: 15, MaxIterLog: 3, Base: complex(0.4, 0.9)}
}

// SolvePoly finds all complex roots of the polynomial with the given
// descending-order coefficients and writes them to roots, which must hold at
// least len(coeffs)-1 entries. It returns the number of iterations actually
// performed; hitting the iteration budget is not an error, the best current
// estimates are left in roots.
func SolvePoly(coeffs []float64, roots []complex128, cfg Config) (int, error) {
	if len(coeffs) < 2 {
		return 0, ErrCoeffCount
	}
	if coeffs[0] == 0 {
		return 0, ErrLeadingZero
	}
	n := len(coeffs) - 1
	if len(roots) < n {
		return 0, ErrRootCapacity
	}
	if cfg.PError == 0 {
		cfg.PError = 15
	}
	if cfg.MaxIterLog == 0 {
		cfg.MaxIterLog = 3
	}
	if cfg.Base == 0 {
		cfg.Base = complex(0.4, 0.9)
	}

	// Normalise to a monic polynomial.
	monic := make([]complex128, len(coeffs))
	for i, c := range coeffs {
		monic[i] = complex(c/coeffs[0], 0)
	}

	// Seed with powers of the base point.
	z := roots[:n]
	seed := complex(1, 0)
	for i := 0; i < n; i++ {
		z[i] = seed
		seed *= cfg.Base
	}

	f := func(x complex128) complex128 {
		// Horner over the monic coefficients.
		acc := monic[0]
		for i := 1; i < len(monic); i++ {
			acc = acc*x + monic[i]
		}
		return acc
	}

	tol := ieee754.Pow(10, -cfg.PError)
	maxIter := int(ieee754.Pow(10, cfg.MaxIterLog))
	it := 0
	for ; it < maxIter; it++ {
		maxDiff := 0.0
		for i := 0; i < n; i++ {
			denom := complex(1, 0)
			for j := 0; j < n; j++ {
				if j != i {
					denom *= z[i] - z[j]
				}
			}
			diff := f(z[i]) / denom
			if d := cAbs(diff); d > maxDiff {
				maxDiff = d
			}
			z[i] -= diff
		}
		if maxDiff < tol {
			it++
			break
		}
	}
	return it, nil
}
