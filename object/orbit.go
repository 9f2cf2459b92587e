package object

import (
	"github.com/pkg/errors"

	"github.com/avikara/semath/ieee754"
	"github.com/avikara/semath/linalg"
)

// Keplerian state evaluation for a record's orbit block. Angles enter in
// degrees as the scripts store them; positions come back in metres in the
// orbit's reference plane, pericenter direction along +X at the ascending
// node.

// ErrOrbitUnderspecified is returned when neither a semi-major axis nor a
// pericenter distance is present.
var ErrOrbitUnderspecified = errors.New("object: orbit needs SemiMajorAxis or PericenterDist")

// ErrBinaryOrbit is returned when a binary-pair orbit is asked for a
// Keplerian state.
var ErrBinaryOrbit = errors.New("object: binary orbits carry no Keplerian elements")

// StateAt returns the orbital position at the given Julian day.
func (o OrbitParams) StateAt(jd float64) (linalg.Vec3, error) {
	if o.Binary {
		return linalg.Vec3{}, ErrBinaryOrbit
	}
	e := o.Eccentricity
	if IsNoData(e) {
		e = 0
	}

	// Geometry from whichever of a and q is present.
	a := o.SemiMajorAxis
	q := o.PericenterDist
	switch {
	case !IsNoData(a):
		if IsNoData(q) {
			q = a * (1 - e)
		}
	case !IsNoData(q):
		if e < 1 {
			a = q / (1 - e)
		}
	default:
		return linalg.Vec3{}, ErrOrbitUnderspecified
	}

	// Mean motion in rad/s from the period, or from the gravitational
	// parameter when the period is absent.
	var n float64
	switch {
	case !IsNoData(o.Period) && o.Period > 0:
		n = 2 * (piHi + piLo) / o.Period
	case !IsNoData(o.GravParam) && a > 0:
		n = ieee754.Sqrt(o.GravParam / (a * a * a))
	default:
		n = 0
	}

	// Mean anomaly at epoch, advanced to jd.
	m0 := 0.0
	if !IsNoData(o.MeanAnomaly) {
		m0 = ieee754.Radians(o.MeanAnomaly)
	}
	dt := 0.0
	if !IsNoData(o.Epoch) {
		dt = (jd - o.Epoch) * 86400
	}
	m := m0 + n*dt

	var nu, r float64
	switch {
	case e < 1:
		nu, r = solveElliptic(m, e, a)
	case e == 1:
		nu, r = solveParabolic(m/n, q, o.GravParam)
	default:
		nu, r = solveHyperbolic(m, e, q)
	}

	// Perifocal position rotated by argument of pericenter, inclination
	// and ascending node.
	cosNu, sinNu := ieee754.Cos(nu), ieee754.Sin(nu)
	x, y := r*cosNu, r*sinNu

	rot := perifocalMatrix(o.Inclination, o.AscendingNode, o.ArgOfPericenter)
	return rot.MulVec(linalg.Vec3{X: x, Y: y}), nil
}

const (
	piHi = 0x1.921fb54442d18p+1
	piLo = 0x1.1a62633145c07p-53
)

// perifocalMatrix builds the PQW -> reference plane rotation from the
// degree-valued angles; absent angles count as zero.
func perifocalMatrix(incDeg, nodeDeg, periDeg float64) linalg.Mat3 {
	zeroIfNoData := func(v float64) float64 {
		if IsNoData(v) {
			return 0
		}
		return v
	}
	i := zeroIfNoData(incDeg)
	om := zeroIfNoData(nodeDeg)
	w := zeroIfNoData(periDeg)

	sinI, cosI := ieee754.SinDeg(i), ieee754.CosDeg(i)
	sinO, cosO := ieee754.SinDeg(om), ieee754.CosDeg(om)
	sinW, cosW := ieee754.SinDeg(w), ieee754.CosDeg(w)

	// Columns are the P, Q, W unit vectors: R = Rz(-Om) Rx(-i) Rz(-w).
	return linalg.Mat3{
		{cosO*cosW - sinO*sinW*cosI, sinO*cosW + cosO*sinW*cosI, sinW * sinI},
		{-cosO*sinW - sinO*cosW*cosI, -sinO*sinW + cosO*cosW*cosI, cosW * sinI},
		{sinO * sinI, -cosO * sinI, cosI},
	}
}

// solveElliptic solves Kepler's equation M = E - e sin E by Newton
// iteration and returns the true anomaly and radius.
func solveElliptic(m, e, a float64) (nu, r float64) {
	twoPi := 2 * (piHi + piLo)
	m = m - twoPi*floorTo(m/twoPi)
	if m > piHi {
		m -= twoPi
	}

	ecc := e
	eAnom := m
	if ecc > 0.8 {
		if m > 0 {
			eAnom = piHi
		} else {
			eAnom = -piHi
		}
	}
	for iter := 0; iter < 50; iter++ {
		sinE := ieee754.Sin(eAnom)
		cosE := ieee754.Cos(eAnom)
		f := eAnom - ecc*sinE - m
		fp := 1 - ecc*cosE
		dE := -f / fp
		eAnom += dE
		if ieee754.Abs(dE) < 1e-15 {
			break
		}
	}
	sinE := ieee754.Sin(eAnom)
	cosE := ieee754.Cos(eAnom)
	nu = ieee754.Atan2(ieee754.Sqrt(1-ecc*ecc)*sinE, cosE-ecc)
	r = a * (1 - ecc*cosE)
	return
}

// solveParabolic solves Barker's equation; dt is seconds from pericenter.
func solveParabolic(dt, q, mu float64) (nu, r float64) {
	if IsNoData(mu) {
		mu = 0
	}
	w := 3 * ieee754.Sqrt(mu/(2*q*q*q)) * dt
	y := ieee754.Cbrt(w + ieee754.Sqrt(w*w+1))
	d := y - 1/y
	nu = 2 * ieee754.Atan(d)
	r = q * (1 + d*d)
	return
}

// solveHyperbolic solves the hyperbolic Kepler equation
// M = e sinh H - H by Newton iteration.
func solveHyperbolic(m, e, q float64) (nu, r float64) {
	absA := q / (e - 1)
	h := m
	for iter := 0; iter < 50; iter++ {
		expH := ieee754.Exp(h)
		sinhH := (expH - 1/expH) / 2
		coshH := (expH + 1/expH) / 2
		f := e*sinhH - h - m
		fp := e*coshH - 1
		dH := -f / fp
		h += dH
		if ieee754.Abs(dH) < 1e-15 {
			break
		}
	}
	expH := ieee754.Exp(h / 2)
	tanhHalf := (expH - 1/expH) / (expH + 1/expH)
	nu = 2 * ieee754.Atan(ieee754.Sqrt((e+1)/(e-1))*tanhHalf)
	expH = ieee754.Exp(h)
	r = absA * (e*(expH+1/expH)/2 - 1)
	return
}

func floorTo(x float64) float64 {
	i := float64(int64(x))
	if x < 0 && i != x {
		i--
	}
	return i
}
