package polyroot

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// evalPoly evaluates the real-coefficient polynomial at a complex point.
func evalPoly(coeffs []float64, x complex128) complex128 {
	acc := complex(0, 0)
	for _, c := range coeffs {
		acc = acc*x + complex(c, 0)
	}
	return acc
}

// residualOK checks P4: |p(r)| < tol * (1+|r|)^n * |a_n|.
func residualOK(t *testing.T, coeffs []float64, roots []complex128) {
	t.Helper()
	n := len(coeffs) - 1
	for _, r := range roots {
		bound := 1e-8 * math.Abs(coeffs[0])
		for i := 0; i < n; i++ {
			bound *= 1 + cAbs(r)
		}
		if res := cAbs(evalPoly(coeffs, r)); res >= bound {
			t.Errorf("residual %g at root %v exceeds %g for %v", res, r, bound, coeffs)
		}
	}
}

func TestSolveLinear(t *testing.T) {
	roots := make([]complex128, 1)
	if _, err := SolveLinear([]float64{2, -6}, roots); err != nil {
		t.Fatal(err)
	}
	if roots[0] != complex(3, 0) {
		t.Fatalf("root = %v", roots[0])
	}
	if _, err := SolveLinear([]float64{0, 1}, roots); err != ErrLeadingZero {
		t.Fatalf("err = %v", err)
	}
	if _, err := SolveLinear([]float64{1}, roots); err != ErrCoeffCount {
		t.Fatalf("err = %v", err)
	}
	if _, err := SolveLinear([]float64{1, 2}, nil); err != ErrRootCapacity {
		t.Fatalf("err = %v", err)
	}
}

func TestSolveQuadratic(t *testing.T) {
	roots := make([]complex128, 2)
	// x^2 - 5x + 6: roots 3 and 2, plus branch first.
	if _, err := SolveQuadratic([]float64{1, -5, 6}, roots); err != nil {
		t.Fatal(err)
	}
	if real(roots[0]) != 3 || real(roots[1]) != 2 {
		t.Fatalf("roots = %v", roots)
	}
	// x^2 + 1: conjugate pair, +i first.
	if _, err := SolveQuadratic([]float64{1, 0, 1}, roots); err != nil {
		t.Fatal(err)
	}
	if imag(roots[0]) != 1 || imag(roots[1]) != -1 {
		t.Fatalf("roots = %v", roots)
	}
	residualOK(t, []float64{1, 0, 1}, roots)
}

func TestSolveCubicBranches(t *testing.T) {
	roots := make([]complex128, 3)

	// (x-1)^3: triple root, formula 1.
	f, err := SolveCubic([]float64{1, -3, 3, -1}, roots, DefaultPError)
	if err != nil || f != 1 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	if math.Abs(real(roots[0])-1) > 1e-10 {
		t.Fatalf("triple root = %v", roots[0])
	}

	// (x-2)(x-1)^2 = x^3 - 4x^2 + 5x - 2: one simple, one double, formula 3.
	f, err = SolveCubic([]float64{1, -4, 5, -2}, roots, DefaultPError)
	if err != nil || f != 3 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	if math.Abs(real(roots[0])-2) > 1e-8 || math.Abs(real(roots[1])-1) > 1e-8 {
		t.Fatalf("roots = %v", roots)
	}

	// x^3 - 1: one real root and a conjugate pair, formula 2.
	f, err = SolveCubic([]float64{1, 0, 0, -1}, roots, DefaultPError)
	if err != nil || f != 2 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	if math.Abs(real(roots[0])-1) > 1e-12 || imag(roots[0]) != 0 {
		t.Fatalf("real root = %v", roots[0])
	}
	if imag(roots[1]) >= 0 || imag(roots[2]) <= 0 {
		t.Fatalf("conjugate pair order: %v", roots)
	}
	if math.Abs(real(roots[1])+0.5) > 1e-12 || math.Abs(imag(roots[1])+math.Sqrt(3)/2) > 1e-12 {
		t.Fatalf("complex root = %v", roots[1])
	}
	residualOK(t, []float64{1, 0, 0, -1}, roots)

	// (x-1)(x-2)(x-3): three distinct real roots, formula 4.
	f, err = SolveCubic([]float64{1, -6, 11, -6}, roots, DefaultPError)
	if err != nil || f != 4 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	got := []float64{real(roots[0]), real(roots[1]), real(roots[2])}
	sort.Float64s(got)
	for i, want := range []float64{1, 2, 3} {
		if math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("roots = %v", got)
		}
	}
	residualOK(t, []float64{1, -6, 11, -6}, roots)
}

func TestSolveQuarticBranches(t *testing.T) {
	roots := make([]complex128, 4)

	// (x-1)^4: quadruple root, formula 1.
	f, err := SolveQuartic([]float64{1, -4, 6, -4, 1}, roots, DefaultPError)
	if err != nil || f != 1 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}

	// (x-1)(x-2)(x-3)(x-4): symmetric about 5/2, so E = 0 and the
	// biquadratic-style branch 6 fires.
	coeffs := []float64{1, -10, 35, -50, 24}
	f, err = SolveQuartic(coeffs, roots, DefaultPError)
	if err != nil {
		t.Fatal(err)
	}
	if f != 6 {
		t.Fatalf("formula = %d", f)
	}
	got := []float64{real(roots[0]), real(roots[1]), real(roots[2]), real(roots[3])}
	sort.Float64s(got)
	for i, want := range []float64{1, 2, 3, 4} {
		if math.Abs(got[i]-want) > 1e-7 {
			t.Fatalf("roots = %v", got)
		}
	}
	residualOK(t, coeffs, roots)

	// (x-1)(x-2)(x-3)(x-5): four distinct real roots, E != 0, formula 9.
	coeffs = []float64{1, -11, 41, -61, 30}
	f, err = SolveQuartic(coeffs, roots, DefaultPError)
	if err != nil || f != 9 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	got = []float64{real(roots[0]), real(roots[1]), real(roots[2]), real(roots[3])}
	sort.Float64s(got)
	for i, want := range []float64{1, 2, 3, 5} {
		if math.Abs(got[i]-want) > 1e-7 {
			t.Fatalf("roots = %v", got)
		}
	}
	residualOK(t, coeffs, roots)

	// x^4 - 1: two real, one conjugate pair (del > 0 branch).
	coeffs = []float64{1, 0, 0, 0, -1}
	if _, err = SolveQuartic(coeffs, roots, DefaultPError); err != nil {
		t.Fatal(err)
	}
	residualOK(t, coeffs, roots)

	// x^4 + 1: all complex (E = 0, F < 0 branch, formula 8).
	coeffs = []float64{1, 0, 0, 0, 1}
	f, err = SolveQuartic(coeffs, roots, DefaultPError)
	if err != nil || f != 8 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	residualOK(t, coeffs, roots)

	// (x^2+1)(x^2+4): purely imaginary roots, D < 0, F > 0, formula 7.
	coeffs = []float64{1, 0, 5, 0, 4}
	f, err = SolveQuartic(coeffs, roots, DefaultPError)
	if err != nil || f != 7 {
		t.Fatalf("formula = %d, err = %v", f, err)
	}
	imags := []float64{imag(roots[0]), imag(roots[1]), imag(roots[2]), imag(roots[3])}
	sort.Float64s(imags)
	for i, want := range []float64{-2, -1, 1, 2} {
		if math.Abs(imags[i]-want) > 1e-9 {
			t.Fatalf("imag parts = %v", imags)
		}
	}
	residualOK(t, coeffs, roots)
}

// P5: Durand-Kerner recovers random roots in the unit disk to 1e-12.
func TestSolvePolyRandomRoots(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(4)
		// Real polynomial from real roots in (-1, 1).
		trueRoots := make([]float64, n)
		coeffs := make([]float64, 1, n+1)
		coeffs[0] = 1
		for i := range trueRoots {
			// Keep the roots separated so the polynomial stays well
			// conditioned.
			var r float64
			for ok := false; !ok; {
				r = rng.Float64()*2 - 1
				ok = true
				for _, prev := range trueRoots[:i] {
					if math.Abs(prev-r) < 0.15 {
						ok = false
						break
					}
				}
			}
			trueRoots[i] = r
			// Multiply (x - r) into the coefficient list.
			coeffs = append(coeffs, 0)
			for j := len(coeffs) - 1; j >= 1; j-- {
				coeffs[j] -= r * coeffs[j-1]
			}
		}

		roots := make([]complex128, n)
		it, err := SolvePoly(coeffs, roots, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if it >= 1000 {
			t.Fatalf("no convergence in %d iterations", it)
		}

		sort.Float64s(trueRoots)
		approx := make([]float64, n)
		for i, z := range roots {
			if math.Abs(imag(z)) > 1e-12 {
				t.Fatalf("spurious imaginary part %v", z)
			}
			approx[i] = real(z)
		}
		sort.Float64s(approx)
		for i := range approx {
			if math.Abs(approx[i]-trueRoots[i]) > 1e-12 {
				t.Fatalf("trial %d: root %v vs %v", trial, approx[i], trueRoots[i])
			}
		}
	}
}

func TestSolvePolyIterationBudget(t *testing.T) {
	roots := make([]complex128, 5)
	cfg := DefaultConfig()
	cfg.MaxIterLog = 0.5 // about 3 iterations: bound to run out
	it, err := SolvePoly([]float64{1, 0, 0, 0, 0, -1}, roots, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if it > 3 {
		t.Fatalf("iteration budget ignored: %d", it)
	}
}

func TestSolvePolyValidation(t *testing.T) {
	roots := make([]complex128, 4)
	if _, err := SolvePoly([]float64{0, 1, 2}, roots, DefaultConfig()); err != ErrLeadingZero {
		t.Fatalf("err = %v", err)
	}
	if _, err := SolvePoly([]float64{1, 2, 3, 4, 5, 6}, roots, DefaultConfig()); err != ErrRootCapacity {
		t.Fatalf("err = %v", err)
	}
}
