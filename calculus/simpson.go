package calculus

import (
	"sort"

	"github.com/avikara/semath/ieee754"
)

// SimpsonMethod selects a member of the Simpson family.
type SimpsonMethod int

const (
	// CompositeQuadratic is the classical 1/3 rule.
	CompositeQuadratic SimpsonMethod = iota
	// CompositeCubic is the 3/8 rule.
	CompositeCubic
	// Extended combines the 1/3 and 3/8 rules with Gregory-style endpoint
	// corrections.
	Extended
	// NarrowPeaks1 targets sharp peaks and samples one point outside each
	// end of the integration range.
	NarrowPeaks1
	// NarrowPeaks2 targets sharp peaks using interior points only.
	NarrowPeaks2
	// Irregularly is the composite rule for arbitrarily spaced samples.
	Irregularly
)

// minSamples per method.
func (m SimpsonMethod) minSamples() int {
	switch m {
	case CompositeQuadratic:
		return 3
	case CompositeCubic:
		return 4
	case Extended:
		return 9
	case NarrowPeaks1, NarrowPeaks2:
		return 7
	default:
		return 3
	}
}

// Simpson integrates f over [a, b] with the chosen method on a uniform grid
// of 10^logSteps intervals (DefaultLogSteps when logSteps is 0).
func Simpson(f Function1D, a, b float64, method SimpsonMethod, logSteps float64) (float64, error) {
	if logSteps == 0 {
		logSteps = DefaultLogSteps
	}
	// One more point than intervals, and an even interval count so the
	// quadratic rule's 4-2 weight pattern closes cleanly.
	n := int(ieee754.Pow(10, logSteps)) + 1
	step := (b - a) / float64(n-1)
	samples := make([]float64, 0, n+2)
	if method == NarrowPeaks1 {
		samples = append(samples, a-step)
	}
	for i := 0; i < n; i++ {
		samples = append(samples, a+float64(i)*step)
	}
	if method == NarrowPeaks1 {
		samples = append(samples, b+step)
	}
	return SimpsonSamples(f, samples, method)
}

// SimpsonSamples applies the chosen method to explicit abscissae. For
// NarrowPeaks1 the first and last samples must lie outside the integration
// range. The list is sorted internally.
func SimpsonSamples(f Function1D, samples []float64, method SimpsonMethod) (float64, error) {
	if len(samples) < method.minSamples() {
		return 0, ErrSampleCount
	}
	pts := append([]float64(nil), samples...)
	sort.Float64s(pts)
	n := len(pts)

	switch method {
	case CompositeQuadratic:
		h := (pts[n-1] - pts[0]) / float64(n-1)
		sum := f(pts[0])
		for i := 1; i < n-1; i++ {
			w := 4.0
			if i%2 == 0 {
				w = 2.0
			}
			sum += w * f(pts[i])
		}
		sum += f(pts[n-1])
		return h * sum / 3, nil

	case CompositeCubic:
		h := (pts[n-1] - pts[0]) / float64(n-1)
		sum := f(pts[0])
		for i := 1; i < n-1; i++ {
			w := 3.0
			if i%3 == 0 {
				w = 2.0
			}
			sum += w * f(pts[i])
		}
		sum += f(pts[n-1])
		return 0.375 * h * sum, nil

	case Extended:
		h := (pts[n-1] - pts[0]) / float64(n-1)
		sum := 17*f(pts[0]) + 59*f(pts[1]) + 43*f(pts[2]) + 49*f(pts[3])
		for i := 4; i < n-4; i++ {
			sum += 48 * f(pts[i])
		}
		sum += 49*f(pts[n-4]) + 43*f(pts[n-3]) + 59*f(pts[n-2]) + 17*f(pts[n-1])
		return h * sum / 48, nil

	case NarrowPeaks1:
		h := (pts[n-2] - pts[1]) / float64(n-3)
		sum := -1*f(pts[0]) + 12*f(pts[1]) + 25*f(pts[2])
		for i := 3; i < n-3; i++ {
			sum += 24 * f(pts[i])
		}
		sum += 25*f(pts[n-3]) + 12*f(pts[n-2]) + -1*f(pts[n-1])
		return h * sum / 24, nil

	case NarrowPeaks2:
		h := (pts[n-1] - pts[0]) / float64(n-1)
		sum := 9*f(pts[0]) + 28*f(pts[1]) + 23*f(pts[2])
		for i := 3; i < n-3; i++ {
			sum += 24 * f(pts[i])
		}
		sum += 23*f(pts[n-3]) + 28*f(pts[n-2]) + 9*f(pts[n-1])
		return h * sum / 24, nil

	default:
		widths := make([]float64, n-1)
		for i := 1; i < n; i++ {
			widths[i-1] = pts[i] - pts[i-1]
		}
		return simpsonIrregular(f, pts[0], widths)
	}
}

// SimpsonIntervals applies the irregular composite rule to sub-interval
// widths from a start point.
func SimpsonIntervals(f Function1D, start float64, widths []float64) (float64, error) {
	if len(widths) < 2 {
		return 0, ErrSampleCount
	}
	return simpsonIrregular(f, start, widths)
}

// simpsonIrregular is the composite Simpson rule for irregularly spaced
// data; an odd interval count is patched with the standard three-point
// correction on the final pair.
func simpsonIrregular(f Function1D, start float64, widths []float64) (float64, error) {
	n := len(widths)
	pts := make([]float64, n+1)
	pts[0] = start
	for i, w := range widths {
		pts[i+1] = pts[i] + w
	}

	sum := 0.0
	size := n
	if n%2 != 0 {
		size = n - 1
	}
	for i := 0; i <= size/2-1; i++ {
		h0 := widths[2*i]
		h1 := widths[2*i+1]
		sum += (h0 + h1) / 6 *
			((2-h1/h0)*f(pts[2*i]) +
				(h0+h1)*(h0+h1)/(h0*h1)*f(pts[2*i+1]) +
				(2-h0/h1)*f(pts[2*i+2]))
	}

	tail := 0.0
	if n%2 != 0 {
		hN := widths[n-1]
		hP := widths[n-2]
		alf := (2*hN*hN + 3*hN*hP) / (6 * (hP + hN))
		bet := (hN*hN + 3*hN*hP) / (6 * hP)
		gam := hN * hN * hN / (6 * hP * (hP + hN))
		tail = alf*f(pts[n]) + bet*f(pts[n-1]) - gam*f(pts[n-2])
	}
	return sum + tail, nil
}
