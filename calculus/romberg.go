package calculus

import "github.com/avikara/semath/ieee754"

// RombergOptions parameterises Romberg. The zero value selects the listed
// defaults.
type RombergOptions struct {
	// MaxSteps bounds the number of T-table rows. Default 300.
	MaxSteps int
	// PAcc is the negative logarithm of the desired accuracy on the
	// diagonal. Default 8.
	PAcc float64
}

func (o *RombergOptions) setDefaults() {
	if o.MaxSteps == 0 {
		o.MaxSteps = 300
	}
	if o.PAcc == 0 {
		o.PAcc = 8
	}
}

// Romberg integrates f over [a, b] by the classical Richardson-extrapolated
// trapezoidal table. Iteration stops when consecutive diagonal entries
// agree to 10^-PAcc; running out of rows is not an error, the best estimate
// is returned.
func Romberg(f Function1D, a, b float64, opts RombergOptions) float64 {
	opts.setDefaults()
	if a > b {
		a, b = b, a
	}
	rp := make([]float64, opts.MaxSteps)
	rc := make([]float64, opts.MaxSteps)
	h := b - a
	rp[0] = (f(a) + f(b)) * h * 0.5
	acc := ieee754.Pow(10, -opts.PAcc)

	for i := 1; i < opts.MaxSteps; i++ {
		h /= 2
		c := 0.0
		ep := 1 << uint(i-1)
		for j := 1; j <= ep; j++ {
			c += f(a + float64(2*j-1)*h)
		}
		rc[0] = h*c + 0.5*rp[0]

		for j := 1; j <= i; j++ {
			nk := ieee754.Pow(4, float64(j))
			rc[j] = (nk*rc[j-1] - rp[j-1]) / (nk - 1)
		}

		if i > 1 && ieee754.Abs(rp[i-1]-rc[i]) < acc {
			return rc[i]
		}
		rp, rc = rc, rp
	}
	return rp[opts.MaxSteps-1]
}

// RombergAnalysis returns the first five rows of the Romberg construction
// for debugging: row 0 the halved step sizes, row 1 the trapezoidal
// estimates T, rows 2-4 the Simpson, Cotes and Romberg extrapolations, each
// column one halving level.
func RombergAnalysis(f Function1D, a, b float64) [5][5]float64 {
	const (
		hm = iota
		tRow
		sRow
		cRow
		rRow
	)
	var seq [5][5]float64
	for i := 0; i < 5; i++ {
		seq[hm][i] = (b - a) / ieee754.Pow(2, float64(i))
	}

	fa, fb := f(a), f(b)
	seq[tRow][0] = 0.5 * (b - a) * (fa + fb)
	for i := 1; i < 5; i++ {
		sum := 0.0
		for each := 1.0; each < ieee754.Pow(2, float64(i)); each += 2 {
			sum += seq[hm][i] * f(a+each*seq[hm][i])
		}
		seq[tRow][i] = 0.5*seq[tRow][i-1] + sum
	}
	for i := 0; i < 4; i++ {
		seq[sRow][i] = (4*seq[tRow][i+1] - seq[tRow][i]) / 3
	}
	for i := 0; i < 3; i++ {
		seq[cRow][i] = (16*seq[sRow][i+1] - seq[sRow][i]) / 15
	}
	for i := 0; i < 2; i++ {
		seq[rRow][i] = (64*seq[cRow][i+1] - seq[cRow][i]) / 63
	}
	return seq
}
