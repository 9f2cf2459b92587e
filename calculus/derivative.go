package calculus

import (
	"errors"

	"github.com/avikara/semath/ieee754"
)

// Finite-difference differentiation. The first derivative is expressed as a
// weighted sum of samples at offsets j*h around the evaluation point; the
// weights come from the inverse of the Vandermonde system of the offset set,
// and the step is shrunk geometrically until the estimates stop improving.

// Direction selects where the sample offsets lie.
type Direction int

const (
	Center Direction = iota
	Forward
	Backward
)

// DerivativeOptions parameterises Derivative. The zero value selects the
// defaults listed on each field.
type DerivativeOptions struct {
	// FDMOrder is the number of finite-difference terms; it must be even
	// for the centered scheme. Default 8.
	FDMOrder int
	// InitialStep is the first step size. Default 0.5.
	InitialStep float64
	// StepFactor divides the step every refinement. Default 2.
	StepFactor float64
	// AbsTolLog and RelTolLog are negative logarithms of the absolute and
	// relative acceptance thresholds on successive estimates.
	// Defaults 300 and 7.5.
	AbsTolLog float64
	// RelTolLog: see AbsTolLog.
	RelTolLog float64
	// MaxIterLog is the base-10 logarithm of the refinement budget.
	// Default 1 (ten refinements).
	MaxIterLog float64
	// Direction selects centered or one-sided sampling. Default Center.
	Direction Direction
}

func (o *DerivativeOptions) setDefaults() {
	if o.FDMOrder == 0 {
		o.FDMOrder = 8
	}
	if o.InitialStep == 0 {
		o.InitialStep = 0.5
	}
	if o.StepFactor == 0 {
		o.StepFactor = 2
	}
	if o.AbsTolLog == 0 {
		o.AbsTolLog = 300
	}
	if o.RelTolLog == 0 {
		o.RelTolLog = 7.5
	}
	if o.MaxIterLog == 0 {
		o.MaxIterLog = 1
	}
}

// ErrOddOrder is returned for a centered scheme with an odd term count.
var ErrOddOrder = errors.New("calculus: centered finite differences need an even order")

// DerivativeWeights returns the sample offsets (in units of the step) and
// the first-derivative weights for the requested scheme, solved through the
// explicit Vandermonde inverse.
func DerivativeWeights(order int, dir Direction) (offsets, weights []float64, err error) {
	switch dir {
	case Center:
		if order%2 != 0 {
			return nil, nil, ErrOddOrder
		}
		for j := -order / 2; j <= order/2; j++ {
			if j != 0 {
				offsets = append(offsets, float64(j))
			}
		}
	case Forward:
		for j := 0; j <= order; j++ {
			offsets = append(offsets, float64(j))
		}
	case Backward:
		for j := 0; j <= order; j++ {
			offsets = append(offsets, float64(-j))
		}
	}
	// The weights reproduce the first derivative at the origin:
	// sum w_i d_i^k = [k == 1] for k = 0..n-1, so w_i is the x^1
	// coefficient of node i's Lagrange basis polynomial.
	inv := InverseVandermonde(offsets)
	weights = make([]float64, len(offsets))
	for i := range offsets {
		weights[i] = inv.At(1, i)
	}
	return offsets, weights, nil
}

// Derivative returns a function evaluating the first derivative of f.
func Derivative(f Function1D, opts DerivativeOptions) func(float64) (float64, error) {
	opts.setDefaults()
	offsets, weights, werr := DerivativeWeights(opts.FDMOrder, opts.Direction)
	absTol := ieee754.Pow(10, -opts.AbsTolLog)
	relTol := ieee754.Pow(10, -opts.RelTolLog)
	maxIter := int(ieee754.Pow(10, opts.MaxIterLog))

	return func(x float64) (float64, error) {
		if werr != nil {
			return 0, werr
		}
		h := opts.InitialStep
		estimate := func(h float64) float64 {
			sum := 0.0
			for i, d := range offsets {
				sum += weights[i] * f(x+d*h)
			}
			return sum / h
		}

		best := estimate(h)
		bestErr := ieee754.FromBits(ieee754.PosInfBits)
		prev := best
		for it := 0; it < maxIter; it++ {
			h /= opts.StepFactor
			cur := estimate(h)
			err := ieee754.Abs(cur - prev)
			if err <= absTol && err <= relTol*ieee754.Abs(cur) {
				return cur, nil
			}
			if err < bestErr {
				best, bestErr = cur, err
			} else if err > 2*bestErr {
				// The step has shrunk into the round-off floor.
				break
			}
			prev = cur
		}
		return best, nil
	}
}
