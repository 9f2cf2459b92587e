package random

import (
	"errors"

	"github.com/avikara/semath/calculus"
	"github.com/avikara/semath/ieee754"
)

// Custom distributions: the engine supplies a uniform variate u, the
// distribution inverts its CDF at u. The safe variant needs only the CDF
// and bisects, the fast variant needs the PDF as well and runs Newton
// steps seeded at a caller-chosen point.

// ErrUnordered is returned when a custom distribution's support bounds are
// reversed.
var ErrUnordered = errors.New("random: distribution support bounds are reversed")

// SafeCustom inverts a CDF by bisection over a bounded support. Slower
// than the Newton variant but needs no density and cannot diverge.
type SafeCustom struct {
	CDF      calculus.Function1D
	Min, Max float64
	// MaxIterLog is the base-10 logarithm of the bisection budget.
	// Default 3.
	MaxIterLog float64
	// TolLog is the negative logarithm of the acceptance width. Default 8.
	TolLog float64
}

// Sample draws one variate using the engine.
func (d SafeCustom) Sample(e *Engine) (float64, error) {
	if d.Min >= d.Max {
		return 0, ErrUnordered
	}
	maxIterLog := d.MaxIterLog
	if maxIterLog == 0 {
		maxIterLog = 3
	}
	tolLog := d.TolLog
	if tolLog == 0 {
		tolLog = 8
	}
	u := e.rd.Float64()
	lo, hi := d.Min, d.Max
	tol := ieee754.Pow(10, -tolLog)
	budget := int(ieee754.Pow(10, maxIterLog))
	for i := 0; i < budget && hi-lo > tol; i++ {
		mid := (lo + hi) / 2
		if d.CDF(mid) < u {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// FastCustom inverts a CDF by Newton iteration using the matching PDF.
type FastCustom struct {
	PDF calculus.Function1D
	CDF calculus.Function1D
	// Initial is the starting point of the Newton iteration, typically the
	// distribution median.
	Initial float64
	// MaxIterLog is the base-10 logarithm of the iteration budget.
	// Default 3.
	MaxIterLog float64
	// TolLog is the negative logarithm of the step acceptance. Default 8.
	TolLog float64
}

// Sample draws one variate using the engine.
func (d FastCustom) Sample(e *Engine) float64 {
	maxIterLog := d.MaxIterLog
	if maxIterLog == 0 {
		maxIterLog = 3
	}
	tolLog := d.TolLog
	if tolLog == 0 {
		tolLog = 8
	}
	u := e.rd.Float64()
	x := d.Initial
	tol := ieee754.Pow(10, -tolLog)
	budget := int(ieee754.Pow(10, maxIterLog))
	for i := 0; i < budget; i++ {
		den := d.PDF(x)
		if den == 0 {
			break
		}
		step := (d.CDF(x) - u) / den
		x -= step
		if ieee754.Abs(step) < tol {
			break
		}
	}
	return x
}
