package calculus

import (
	"sort"

	"github.com/avikara/semath/ieee754"
)

// DefaultLogSteps is the base-10 logarithm of the default interval count of
// the uniform sample-based rules.
const DefaultLogSteps = 4

// Trapezoid integrates f over [a, b] with a uniform grid of 10^logSteps
// intervals (DefaultLogSteps when logSteps is 0).
func Trapezoid(f Function1D, a, b float64, logSteps float64) float64 {
	if logSteps == 0 {
		logSteps = DefaultLogSteps
	}
	n := int(ieee754.Pow(10, logSteps))
	dx := (b - a) / float64(n)
	sum := 0.0
	for k := 1; k < n; k++ {
		sum += f(a + float64(k)*dx)
	}
	return dx * (sum + (f(a)+f(b))/2)
}

// TrapezoidSamples integrates f over the hull of explicit abscissae. The
// sample list is sorted internally; at least two points are required.
func TrapezoidSamples(f Function1D, samples []float64) (float64, error) {
	if len(samples) < 2 {
		return 0, ErrSampleCount
	}
	pts := append([]float64(nil), samples...)
	sort.Float64s(pts)
	sum := 0.0
	for k := 1; k < len(pts); k++ {
		sum += (f(pts[k-1]) + f(pts[k])) * (pts[k] - pts[k-1]) / 2
	}
	return sum, nil
}

// TrapezoidIntervals integrates f from start across consecutive
// sub-interval widths.
func TrapezoidIntervals(f Function1D, start float64, widths []float64) (float64, error) {
	if len(widths) < 1 {
		return 0, ErrSampleCount
	}
	sum := 0.0
	x := start
	for _, w := range widths {
		sum += (f(x) + f(x+w)) * w / 2
		x += w
	}
	return sum, nil
}
