package calculus

// Improper integrals are folded onto a finite interval by the standard
// substitutions: x = t/(1-t^2) over the whole line, x = b - (1-t)/t for an
// upper-infinite bound, x = a + t/(1-t) for a lower-infinite one, with the
// Jacobian multiplied in. The boundary abscissae of the substituted
// integrand are usually 0/0 forms; a special-case table maps them to their
// analytic limits.

// IntervalKind classifies the improper integral being normalised.
type IntervalKind int

const (
	// WholeLine is (-inf, +inf), mapped onto [-1, 1].
	WholeLine IntervalKind = iota
	// UpperBounded is (-inf, b], mapped onto [0, 1].
	UpperBounded
	// LowerBounded is [a, +inf), mapped onto [0, 1].
	LowerBounded
)

// Normalizer rewrites an improper integral as a proper one.
type Normalizer struct {
	f          Function1D
	kind       IntervalKind
	breakpoint float64
	special    map[float64]float64
}

// Normalize builds a Normalizer for f. breakpoint is the finite bound of a
// semi-infinite interval (ignored for WholeLine). When addDefaults is set
// the problematic boundary abscissae are pre-mapped to zero, the correct
// limit for any integrand that decays at infinity.
func Normalize(f Function1D, kind IntervalKind, breakpoint float64, addDefaults bool) *Normalizer {
	n := &Normalizer{f: f, kind: kind, breakpoint: breakpoint, special: map[float64]float64{}}
	if addDefaults {
		switch kind {
		case WholeLine:
			n.special[-1] = 0
			n.special[1] = 0
		case UpperBounded:
			n.special[0] = 0
		case LowerBounded:
			n.special[1] = 0
		}
	}
	return n
}

// SetSpecialCase maps the abscissa t of the normalised integrand to its
// analytic limit, overriding any previous entry.
func (n *Normalizer) SetSpecialCase(t, limit float64) { n.special[t] = limit }

// DelSpecialCase removes the mapping for t.
func (n *Normalizer) DelSpecialCase(t float64) { delete(n.special, t) }

// LowLimit returns the lower bound of the normalised interval.
func (n *Normalizer) LowLimit() float64 {
	if n.kind == WholeLine {
		return -1
	}
	return 0
}

// UpLimit returns the upper bound of the normalised interval.
func (n *Normalizer) UpLimit() float64 { return 1 }

// Func returns the normalised integrand, Jacobian included.
func (n *Normalizer) Func() Function1D {
	switch n.kind {
	case UpperBounded:
		return func(t float64) float64 {
			if v, ok := n.special[t]; ok {
				return v
			}
			return n.f(n.breakpoint-(1-t)/t) / (t * t)
		}
	case LowerBounded:
		return func(t float64) float64 {
			if v, ok := n.special[t]; ok {
				return v
			}
			u := 1 - t
			return n.f(n.breakpoint+t/u) / (u * u)
		}
	default:
		return func(t float64) float64 {
			if v, ok := n.special[t]; ok {
				return v
			}
			t2 := t * t
			return n.f(t/(1-t2)) * (1 + t2) / ((1 - t2) * (1 - t2))
		}
	}
}
