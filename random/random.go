// Package random is the random-number facade: an opaque engine with the
// usual built-in distributions plus custom distributions driven by an
// inverse-CDF search.
//
// An Engine is not safe for concurrent use; give each goroutine its own
// engine or guard a shared one externally. The package-level Default engine
// is lazily seeded from the process entropy source on first use.
package random

import (
	"math/rand/v2"
	"sync"

	"github.com/avikara/semath/ieee754"
)

// Engine wraps a deterministic PRNG source and derives distributions
// from it.
type Engine struct {
	rd *rand.Rand
}

// New creates an engine from a 64-bit seed.
func New(seed uint64) *Engine {
	return &Engine{rd: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// NewFromSystem creates an engine seeded from the process entropy source.
func NewFromSystem() *Engine {
	return &Engine{rd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
	defaultMu     sync.Mutex
)

// Default returns the shared package engine, seeding it on first use. The
// returned engine is guarded by an internal mutex only through the
// package-level convenience functions; direct method calls need external
// locking when shared.
func Default() *Engine {
	defaultOnce.Do(func() { defaultEngine = NewFromSystem() })
	return defaultEngine
}

// Uniform draws from the half-open interval [min, max).
func (e *Engine) Uniform(min, max float64) float64 {
	return min + (max-min)*e.rd.Float64()
}

// Uint64 draws a uniformly distributed 64-bit word.
func (e *Engine) Uint64() uint64 { return e.rd.Uint64() }

// IntN draws a uniform integer in [0, n).
func (e *Engine) IntN(n int) int { return e.rd.IntN(n) }

// Normal draws from the normal distribution with the given mean and
// standard deviation.
func (e *Engine) Normal(mean, stddev float64) float64 {
	return mean + stddev*e.rd.NormFloat64()
}

// LogNormal draws from the log-normal distribution whose logarithm has the
// given mean and standard deviation.
func (e *Engine) LogNormal(mean, stddev float64) float64 {
	return ieee754.Exp(e.Normal(mean, stddev))
}

// Exponential draws from the exponential distribution with rate lambda.
func (e *Engine) Exponential(lambda float64) float64 {
	return e.rd.ExpFloat64() / lambda
}

// Triangular draws from the triangular distribution on [a, b] with mode c,
// by the closed-form inverse CDF.
func (e *Engine) Triangular(a, b, c float64) float64 {
	u := e.rd.Float64()
	if u < (c-a)/(b-a) {
		return a + ieee754.Sqrt(u*(b-a)*(c-a))
	}
	return b - ieee754.Sqrt((1-u)*(b-a)*(b-c))
}

// Beta draws from the beta distribution by Johnk's method.
func (e *Engine) Beta(alpha, beta float64) float64 {
	for {
		x := ieee754.Pow(e.rd.Float64(), 1/alpha)
		y := ieee754.Pow(e.rd.Float64(), 1/beta)
		if s := x + y; s > 0 && s <= 1 {
			return x / s
		}
	}
}

// Package-level helpers on the shared default engine.

// Uniform draws from [min, max) on the default engine.
func Uniform(min, max float64) float64 {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Default().Uniform(min, max)
}

// Normal draws a normal variate on the default engine.
func Normal(mean, stddev float64) float64 {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return Default().Normal(mean, stddev)
}
