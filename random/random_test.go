package random

import (
	"math"
	"testing"

	"github.com/avikara/semath/calculus"
)

func TestUniformRange(t *testing.T) {
	e := New(1)
	for i := 0; i < 10000; i++ {
		v := e.Uniform(-2, 5)
		if v < -2 || v >= 5 {
			t.Fatalf("out of range: %v", v)
		}
	}
}

func TestDeterministicSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestNormalMoments(t *testing.T) {
	e := New(2)
	const n = 200000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := e.Normal(3, 2)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean-3) > 0.05 {
		t.Errorf("mean = %v", mean)
	}
	if math.Abs(variance-4) > 0.1 {
		t.Errorf("variance = %v", variance)
	}
}

func TestTriangular(t *testing.T) {
	e := New(3)
	const n = 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := e.Triangular(0, 3, 1)
		if v < 0 || v > 3 {
			t.Fatalf("out of support: %v", v)
		}
		sum += v
	}
	// Mean of a triangular distribution is (a+b+c)/3.
	if mean := sum / n; math.Abs(mean-4.0/3) > 0.02 {
		t.Errorf("mean = %v", mean)
	}
}

func TestBeta(t *testing.T) {
	e := New(4)
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := e.Beta(2, 3)
		if v < 0 || v > 1 {
			t.Fatalf("out of support: %v", v)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean-0.4) > 0.02 {
		t.Errorf("mean = %v, want alpha/(alpha+beta) = 0.4", mean)
	}
}

func TestSafeCustom(t *testing.T) {
	// Linear CDF on [0, 2] is the uniform distribution there.
	d := SafeCustom{
		CDF: func(x float64) float64 { return x / 2 },
		Min: 0, Max: 2,
	}
	e := New(5)
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := d.Sample(e)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || v > 2 {
			t.Fatalf("out of support: %v", v)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean-1) > 0.02 {
		t.Errorf("mean = %v", mean)
	}
	bad := SafeCustom{CDF: func(x float64) float64 { return x }, Min: 1, Max: 0}
	if _, err := bad.Sample(e); err != ErrUnordered {
		t.Fatalf("err = %v", err)
	}
}

func TestFastCustom(t *testing.T) {
	// Exponential with rate 1 through its closed-form PDF/CDF pair.
	d := FastCustom{
		PDF:     func(x float64) float64 { return math.Exp(-x) },
		CDF:     func(x float64) float64 { return 1 - math.Exp(-x) },
		Initial: 0.7,
	}
	e := New(6)
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += d.Sample(e)
	}
	if mean := sum / n; math.Abs(mean-1) > 0.03 {
		t.Errorf("mean = %v", mean)
	}
}

func TestCustomWithIntegratedCDF(t *testing.T) {
	// CDF produced by the quadrature engine rather than a closed form.
	pdf := func(x float64) float64 { return 0.75 * (1 - x*x) } // on [-1, 1]
	cdf := func(x float64) float64 {
		v, _ := calculus.GaussKronrod(pdf, -1, x, 7)
		return v
	}
	d := SafeCustom{CDF: cdf, Min: -1, Max: 1}
	e := New(7)
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		v, err := d.Sample(e)
		if err != nil {
			t.Fatal(err)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean) > 0.02 {
		t.Errorf("mean = %v, want 0", mean)
	}
}
