package calculus

import (
	"math"
	"testing"
)

func TestPolynomial(t *testing.T) {
	p := NewPolynomial([]float64{2, -3, 1}) // 2x^2 - 3x + 1
	if got := p.Eval(2); got != 3 {
		t.Errorf("eval = %v", got)
	}
	d := p.Derivative()
	if len(d.Coeffs) != 2 || d.Coeffs[0] != 4 || d.Coeffs[1] != -3 {
		t.Errorf("derivative = %v", d.Coeffs)
	}
}

func TestElementarySymmetric(t *testing.T) {
	e := ElementarySymmetric([]float64{2, 3, 4})
	want := []float64{1, 9, 26, 24}
	for i := range want {
		if e[i] != want[i] {
			t.Fatalf("e = %v", e)
		}
	}
}

func TestVandermondeInverse(t *testing.T) {
	v := []float64{2, 3, 4, 5}
	m := Vandermonde(v)
	if m.At(3, 3) != 125 || m.At(0, 1) != 2 || m.At(2, 0) != 1 {
		t.Fatalf("vandermonde = %v", m)
	}
	inv := InverseVandermonde(v)
	if math.Abs(inv.At(0, 0)-10) > 1e-12 || math.Abs(inv.At(1, 0)-(-47.0/6)) > 1e-12 {
		t.Fatalf("inverse first row: %v %v", inv.At(0, 0), inv.At(1, 0))
	}
	prod, err := inv.MulMatrix(m)
	if err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			want := 0.0
			if c == r {
				want = 1
			}
			if math.Abs(prod.At(c, r)-want) > 1e-10 {
				t.Fatalf("inv*V != I: %v", prod)
			}
		}
	}
}

func TestLegendreCoefficients(t *testing.T) {
	// P_3 = (5x^3 - 3x)/2.
	c := LegendreCoefficients(3)
	want := []float64{2.5, 0, -1.5, 0}
	for i := range want {
		if math.Abs(c[i]-want[i]) > 1e-14 {
			t.Fatalf("P3 = %v", c)
		}
	}
}

func TestStieltjesCoefficients(t *testing.T) {
	// E_2 = P_2 - 2/5 P_0 = 1.5x^2 - 0.9.
	c := StieltjesCoefficients(2)
	if math.Abs(c[0]-1.5) > 1e-12 || math.Abs(c[1]) > 1e-12 || math.Abs(c[2]+0.9) > 1e-12 {
		t.Fatalf("E2 = %v", c)
	}
	// E_3 = P_3 - 9/14 P_1.
	c = StieltjesCoefficients(3)
	if math.Abs(c[0]-2.5) > 1e-12 || math.Abs(c[2]-(-1.5-9.0/14)) > 1e-12 {
		t.Fatalf("E3 = %v", c)
	}
}

// P7: derivatives of the standard suite match analytically to 1e-7.
func TestDerivative(t *testing.T) {
	cases := []struct {
		name string
		f    Function1D
		df   Function1D
	}{
		{"square", func(x float64) float64 { return x * x }, func(x float64) float64 { return 2 * x }},
		{"sin", math.Sin, math.Cos},
		{"exp", math.Exp, math.Exp},
		{"log", math.Log, func(x float64) float64 { return 1 / x }},
	}
	for _, tc := range cases {
		d := Derivative(tc.f, DerivativeOptions{})
		for _, x := range []float64{0.1, 1, 10} {
			got, err := d(x)
			if err != nil {
				t.Fatalf("%s: %v", tc.name, err)
			}
			if want := tc.df(x); math.Abs(got-want) > 1e-7*math.Max(1, math.Abs(want)) {
				t.Errorf("%s'(%v) = %v, want %v", tc.name, x, got, want)
			}
		}
	}
}

func TestDerivativeDirections(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) }
	for _, dir := range []Direction{Forward, Backward} {
		d := Derivative(f, DerivativeOptions{Direction: dir})
		got, err := d(1)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-math.E) > 1e-6 {
			t.Errorf("direction %v: %v", dir, got)
		}
	}
	if _, _, err := DerivativeWeights(7, Center); err != ErrOddOrder {
		t.Fatalf("odd order err = %v", err)
	}
}

// The P6 integral suite.
var p6Cases = []struct {
	name string
	f    Function1D
	a, b float64
	want float64
}{
	{"x^2", func(x float64) float64 { return x * x }, 0, 1, 1.0 / 3},
	{"sin", math.Sin, 0, math.Pi, 2},
	{"exp", math.Exp, 0, 1, math.E - 1},
	{"runge", func(x float64) float64 { return 1 / (1 + x*x) }, -1, 1, math.Pi / 2},
}

func TestTrapezoid(t *testing.T) {
	for _, tc := range p6Cases {
		if got := Trapezoid(tc.f, tc.a, tc.b, 0); math.Abs(got-tc.want) > 1e-4 {
			t.Errorf("trapezoid %s = %v, want %v", tc.name, got, tc.want)
		}
	}
	v, err := TrapezoidSamples(math.Exp, []float64{0, 0.25, 0.5, 0.75, 1})
	if err != nil || math.Abs(v-(math.E-1)) > 1e-2 {
		t.Errorf("samples = %v, %v", v, err)
	}
	v, err = TrapezoidIntervals(math.Exp, 0, []float64{0.25, 0.25, 0.25, 0.25})
	if err != nil || math.Abs(v-(math.E-1)) > 1e-2 {
		t.Errorf("intervals = %v, %v", v, err)
	}
	if _, err := TrapezoidSamples(math.Exp, []float64{1}); err != ErrSampleCount {
		t.Errorf("err = %v", err)
	}
}

func TestSimpson(t *testing.T) {
	methods := []SimpsonMethod{CompositeQuadratic, CompositeCubic, Extended, NarrowPeaks1, NarrowPeaks2, Irregularly}
	for _, m := range methods {
		for _, tc := range p6Cases {
			got, err := Simpson(tc.f, tc.a, tc.b, m, 0)
			if err != nil {
				t.Fatalf("method %v: %v", m, err)
			}
			// The 3/8 rule's 3-3-2 weight pattern only closes on an interval
			// count divisible by three, which the default 10^4 is not, so it
			// gets the loose bound; the other rules meet the tight bound on
			// smooth integrands.
			tol := 1e-8
			if m == CompositeCubic {
				tol = 1e-3
			}
			if math.Abs(got-tc.want) > tol {
				t.Errorf("simpson %v %s = %v, want %v", m, tc.name, got, tc.want)
			}
		}
	}
	if _, err := SimpsonSamples(math.Exp, []float64{0, 1}, CompositeQuadratic); err != ErrSampleCount {
		t.Errorf("err = %v", err)
	}
	// Irregular grid.
	got, err := SimpsonSamples(math.Exp, []float64{0, 0.1, 0.35, 0.5, 0.7, 0.85, 1}, Irregularly)
	if err != nil || math.Abs(got-(math.E-1)) > 1e-3 {
		t.Errorf("irregular = %v, %v", got, err)
	}
}

func TestRomberg(t *testing.T) {
	for _, tc := range p6Cases {
		opts := RombergOptions{PAcc: 10}
		if got := Romberg(tc.f, tc.a, tc.b, opts); math.Abs(got-tc.want) > 1e-10 {
			t.Errorf("romberg %s = %v, want %v", tc.name, got, tc.want)
		}
	}
	// Reversed limits swap internally.
	if got := Romberg(math.Sin, math.Pi, 0, RombergOptions{}); math.Abs(got-2) > 1e-8 {
		t.Errorf("reversed = %v", got)
	}
}

func TestRombergAnalysis(t *testing.T) {
	seq := RombergAnalysis(func(x float64) float64 { return x * x }, 0, 1)
	if seq[0][0] != 1 || seq[0][1] != 0.5 {
		t.Fatalf("step row = %v", seq[0])
	}
	// The quadratic is integrated exactly from the Simpson row on.
	if math.Abs(seq[2][0]-1.0/3) > 1e-15 {
		t.Fatalf("simpson row = %v", seq[2])
	}
}

func TestGaussKronrodRule(t *testing.T) {
	r, err := Rule(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.GaussNodes) != 7 || len(r.KronrodNodes) != 15 {
		t.Fatalf("rule sizes: %d/%d", len(r.GaussNodes), len(r.KronrodNodes))
	}
	// Published G7K15 values.
	if math.Abs(r.KronrodNodes[14]-0.991455371120813) > 1e-12 {
		t.Errorf("outer kronrod node = %.15f", r.KronrodNodes[14])
	}
	if math.Abs(r.KronrodWeights[14]-0.022935322010529) > 1e-12 {
		t.Errorf("outer kronrod weight = %.15f", r.KronrodWeights[14])
	}
	if math.Abs(r.KronrodWeights[7]-0.209482141084728) > 1e-12 {
		t.Errorf("central kronrod weight = %.15f", r.KronrodWeights[7])
	}
	// Weights sum to the measure of [-1, 1].
	sum := 0.0
	for _, w := range r.KronrodWeights {
		sum += w
	}
	if math.Abs(sum-2) > 1e-13 {
		t.Errorf("kronrod weight sum = %v", sum)
	}
}

func TestGaussKronrodIntegrals(t *testing.T) {
	for _, n := range []int{7, 10, 15, 20, 25, 30} {
		for _, tc := range p6Cases {
			got, err := GaussKronrod(tc.f, tc.a, tc.b, n)
			if err != nil {
				t.Fatal(err)
			}
			tol := 1e-12
			if n == 7 && tc.name == "runge" {
				// The poles at +-i slow the K15 convergence to ~1e-11.
				tol = 1e-10
			}
			if math.Abs(got-tc.want) > tol {
				t.Errorf("G%dK%d %s = %v, want %v", n, 2*n+1, tc.name, got, tc.want)
			}
		}
	}
}

func TestAdaptiveGaussKronrod(t *testing.T) {
	// A peak the fixed rule cannot capture in one panel; asymmetric bounds
	// keep it away from the bisection midpoints.
	peak := func(x float64) float64 { return math.Exp(-50 * x * x) }
	got, err := AdaptiveGaussKronrod(peak, -3, 4, AdaptiveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(math.Pi / 50)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("adaptive peak = %v, want %v", got, want)
	}
}

// P6: the Gaussian over the whole line through the normaliser.
func TestInfiniteNormalizer(t *testing.T) {
	gauss := func(x float64) float64 { return math.Exp(-x * x) }
	n := Normalize(gauss, WholeLine, 0, true)
	got, err := AdaptiveGaussKronrod(n.Func(), n.LowLimit(), n.UpLimit(), AdaptiveOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-math.Sqrt(math.Pi)) > 1e-11 {
		t.Errorf("whole line = %v, want sqrt(pi)", got)
	}

	// Lower-bounded: integral of exp(-x) over [0, inf) = 1.
	decay := func(x float64) float64 { return math.Exp(-x) }
	ln := Normalize(decay, LowerBounded, 0, true)
	got, err = AdaptiveGaussKronrod(ln.Func(), ln.LowLimit(), ln.UpLimit(), AdaptiveOptions{})
	if err != nil || math.Abs(got-1) > 1e-10 {
		t.Errorf("lower bounded = %v, %v", got, err)
	}

	// Upper-bounded: integral of exp(x) over (-inf, 0] = 1.
	up := Normalize(math.Exp, UpperBounded, 0, true)
	got, err = AdaptiveGaussKronrod(up.Func(), up.LowLimit(), up.UpLimit(), AdaptiveOptions{})
	if err != nil || math.Abs(got-1) > 1e-10 {
		t.Errorf("upper bounded = %v, %v", got, err)
	}

	// Special-case override is honoured.
	n.SetSpecialCase(1, 42)
	if v := n.Func()(1); v != 42 {
		t.Errorf("special case = %v", v)
	}
}
