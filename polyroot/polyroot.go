// Package polyroot finds complex roots of real-coefficient polynomial
// equations. Degrees one and two use the textbook formulae lifted into the
// complex plane, the cubic follows Fan Shengjin's discriminant formulation,
// the quartic Shen Tianheng's, and anything of higher degree goes through
// simultaneous Durand-Kerner iteration.
//
// Coefficients are passed in descending power order. Each closed-form solver
// reports which formula branch produced its roots; the root order within a
// branch is fixed and part of the contract.
package polyroot

import (
	"errors"

	"github.com/avikara/semath/ieee754"
)

var (
	// ErrLeadingZero is returned when the highest-power coefficient is zero.
	ErrLeadingZero = errors.New("polyroot: highest power of polynomial can't be zero")
	// ErrCoeffCount is returned when the coefficient slice length does not
	// match the solver's degree.
	ErrCoeffCount = errors.New("polyroot: number of coefficients does not match")
	// ErrRootCapacity is returned when the output slice is too small.
	ErrRootCapacity = errors.New("polyroot: root container is too small")
)

// DefaultPError is the default negative logarithm of the zero tolerance used
// by the cubic and quartic branch selection: |v| < 10^-DefaultPError reads
// as zero.
const DefaultPError = 10

func isZero(v, tol float64) bool { return -tol < v && v < tol }

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// cAbs returns |z| without overflow in the intermediate squares.
func cAbs(z complex128) float64 {
	re, im := ieee754.Abs(real(z)), ieee754.Abs(imag(z))
	if re < im {
		re, im = im, re
	}
	if re == 0 {
		return 0
	}
	q := im / re
	return re * ieee754.Sqrt(1+q*q)
}

// sqrtC returns the principal complex square root.
func sqrtC(z complex128) complex128 { return ieee754.SqrtC(z)[0] }

// SolveLinear finds the root of a*x + b = 0 from coeffs [a, b] and stores it
// in roots[0]. It returns the formula number used (always 0).
func SolveLinear(coeffs []float64, roots []complex128) (int, error) {
	if len(coeffs) != 2 {
		return 0, ErrCoeffCount
	}
	if len(roots) < 1 {
		return 0, ErrRootCapacity
	}
	a, b := coeffs[0], coeffs[1]
	if a == 0 {
		return 0, ErrLeadingZero
	}
	roots[0] = complex(-b/a, 0)
	return 0, nil
}

// SolveQuadratic finds both roots of a*x^2 + b*x + c = 0 from coeffs
// [a, b, c]. Negative discriminants produce a conjugate pair; the root with
// the + branch of the square root comes first.
func SolveQuadratic(coeffs []float64, roots []complex128) (int, error) {
	if len(coeffs) != 3 {
		return 0, ErrCoeffCount
	}
	if len(roots) < 2 {
		return 0, ErrRootCapacity
	}
	a, b, c := coeffs[0], coeffs[1], coeffs[2]
	if a == 0 {
		return 0, ErrLeadingZero
	}
	del := b*b - 4*a*c
	sd := sqrtC(complex(del, 0))
	roots[0] = (complex(-b, 0) + sd) / complex(2*a, 0)
	roots[1] = (complex(-b, 0) - sd) / complex(2*a, 0)
	return 0, nil
}

// SolveCubic finds the three roots of a*x^3 + b*x^2 + c*x + d = 0 using Fan
// Shengjin's discriminants. pError is the negative logarithm of the zero
// tolerance; pass DefaultPError when in doubt. The return value is the
// formula number used: 1 triple root, 3 one simple and one double root,
// 2 one real root and a conjugate pair, 4 three distinct real roots.
func SolveCubic(coeffs []float64, roots []complex128, pError float64) (int, error) {
	if len(coeffs) != 4 {
		return 0, ErrCoeffCount
	}
	if len(roots) < 3 {
		return 0, ErrRootCapacity
	}
	a, b, c, d := coeffs[0], coeffs[1], coeffs[2], coeffs[3]
	if a == 0 {
		return 0, ErrLeadingZero
	}
	tol := ieee754.Pow(10, -pError)

	A := b*b - 3*a*c
	B := b*c - 9*a*d
	C := c*c - 3*b*d
	del := B*B - 4*A*C

	switch {
	case isZero(A, tol) && isZero(B, tol):
		r := complex(-b/(3*a), 0)
		roots[0], roots[1], roots[2] = r, r, r
		return 1, nil

	case isZero(del, tol):
		k := B / A
		roots[0] = complex(-b/a+k, 0)
		roots[1] = complex(-k/2, 0)
		roots[2] = roots[1]
		return 3, nil

	case del > 0:
		y1 := A*b + 3*a*(-B-ieee754.Sqrt(del))/2
		y2 := A*b + 3*a*(-B+ieee754.Sqrt(del))/2
		cb1, cb2 := ieee754.Cbrt(y1), ieee754.Cbrt(y2)
		sq3 := ieee754.Sqrt(3)
		roots[0] = complex((-b-(cb1+cb2))/(3*a), 0)
		roots[1] = complex((-2*b+cb1+cb2)/(6*a), sq3*(cb1-cb2)/(6*a))
		roots[2] = complex((-2*b+cb1+cb2)/(6*a), -sq3*(cb1-cb2)/(6*a))
		return 2, nil

	default: // del < 0: three real roots through the trigonometric branch
		tet := ieee754.Acos((2*A*b - 3*a*B) / (2 * ieee754.Sqrt(A*A*A)))
		sqA := ieee754.Sqrt(A)
		cosT := ieee754.Cos(tet / 3)
		sinT := ieee754.Sin(tet / 3)
		sq3 := ieee754.Sqrt(3)
		roots[0] = complex((-b-2*sqA*cosT)/(3*a), 0)
		roots[1] = complex((-b+sqA*(cosT+sq3*sinT))/(3*a), 0)
		roots[2] = complex((-b+sqA*(cosT-sq3*sinT))/(3*a), 0)
		return 4, nil
	}
}

// SolveQuartic finds the four roots of a*x^4 + b*x^3 + c*x^2 + d*x + e = 0
// using Shen Tianheng's discriminants. The ten branches are distinguished by
// the zero pattern of the intermediates and the sign of E; the returned
// formula number identifies the branch (1..10). Root order within each
// branch is fixed.
func SolveQuartic(coeffs []float64, roots []complex128, pError float64) (int, error) {
	if len(coeffs) != 5 {
		return 0, ErrCoeffCount
	}
	if len(roots) < 4 {
		return 0, ErrRootCapacity
	}
	a, b, c, d, e := coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4]
	if a == 0 {
		return 0, ErrLeadingZero
	}
	tol := ieee754.Pow(10, -pError)

	D := 3*b*b - 8*a*c
	E := -(b * b * b) + 4*a*b*c - 8*a*a*d
	F := 3*b*b*b*b + 16*a*a*c*c - 16*a*b*b*c + 16*a*a*b*d - 64*a*a*a*e
	A := D*D - 3*F
	B := D*F - 9*E*E
	C := F*F - 3*D*E*E
	del := B*B - 4*A*C

	switch {
	case isZero(D, tol) && isZero(E, tol) && isZero(F, tol):
		r := complex(-b/(4*a), 0)
		roots[0], roots[1], roots[2], roots[3] = r, r, r, r
		return 1, nil

	case !isZero(D*E*F, tol) && isZero(A, tol) && isZero(B, tol) && isZero(C, tol):
		roots[0] = complex((-b*D+9*E)/(4*a*D), 0)
		roots[1] = complex((-b*D-3*E)/(4*a*D), 0)
		roots[2] = roots[1]
		roots[3] = roots[1]
		return 2, nil

	case isZero(E, tol) && isZero(F, tol) && !isZero(D, tol):
		sd := sqrtC(complex(D, 0))
		roots[0] = (complex(-b, 0) + sd) / complex(4*a, 0)
		roots[1] = roots[0]
		roots[2] = (complex(-b, 0) - sd) / complex(4*a, 0)
		roots[3] = roots[2]
		return 3, nil

	case !isZero(A*B*C, tol) && isZero(del, tol):
		sq := sqrtC(complex(2*B/A, 0))
		roots[0] = (complex(-b+2*A*E/B, 0) + sq) / complex(4*a, 0)
		roots[1] = (complex(-b+2*A*E/B, 0) - sq) / complex(4*a, 0)
		roots[2] = complex((-b-2*A*E/B)/(4*a), 0)
		roots[3] = roots[2]
		return 4, nil

	case del > 0:
		z1 := A*D + 3*(-B+ieee754.Sqrt(del))/2
		z2 := A*D + 3*(-B-ieee754.Sqrt(del))/2
		cz := ieee754.Cbrt(z1) + ieee754.Cbrt(z2)
		z := complex(D*D-D*cz+cz*cz-3*A, 0)
		p1 := sgn(E) * ieee754.Sqrt((D+cz)/3)
		q1 := sqrtC((complex(2*D-cz, 0) + 2*sqrtC(z)) / 3)
		q2 := sqrtC((complex(-2*D+cz, 0) + 2*sqrtC(z)) / 3)
		roots[0] = (complex(-b+p1, 0) + q1) / complex(4*a, 0)
		roots[1] = (complex(-b+p1, 0) - q1) / complex(4*a, 0)
		roots[2] = complex((-b-p1)/(4*a), 0) + q2*complex(0, 1)/complex(4*a, 0)
		roots[3] = complex((-b-p1)/(4*a), 0) - q2*complex(0, 1)/complex(4*a, 0)
		return 5, nil

	default: // del < 0
		tet := ieee754.Acos((3*B - 2*A*D) / (2 * A * ieee754.Sqrt(A)))
		sqA := ieee754.Sqrt(A)
		cosT := ieee754.Cos(tet / 3)
		sinT := ieee754.Sin(tet / 3)
		sq3 := ieee754.Sqrt(3)
		y1 := (D - 2*sqA*cosT) / 3
		y2 := (D + sqA*(cosT+sq3*sinT)) / 3
		y3 := (D + sqA*(cosT-sq3*sinT)) / 3

		switch {
		case isZero(E, tol) && D > 0 && F > 0:
			sf := ieee754.Sqrt(F)
			roots[0] = complex((-b+ieee754.Sqrt(D+2*sf))/(4*a), 0)
			roots[1] = complex((-b-ieee754.Sqrt(D+2*sf))/(4*a), 0)
			roots[2] = complex((-b+ieee754.Sqrt(D-2*sf))/(4*a), 0)
			roots[3] = complex((-b-ieee754.Sqrt(D-2*sf))/(4*a), 0)
			return 6, nil

		case isZero(E, tol) && D < 0 && F > 0:
			sf := ieee754.Sqrt(F)
			re := -b / (4 * a)
			roots[0] = complex(re, ieee754.Sqrt(-D+2*sf)/(4*a))
			roots[1] = complex(re, -ieee754.Sqrt(-D+2*sf)/(4*a))
			roots[2] = complex(re, ieee754.Sqrt(-D-2*sf)/(4*a))
			roots[3] = complex(re, -ieee754.Sqrt(-D-2*sf)/(4*a))
			return 7, nil

		case isZero(E, tol) && F < 0:
			saf := ieee754.Sqrt(A - F)
			rp := (-2*b + ieee754.Sqrt(2*D+2*saf)) / (8 * a)
			rm := (-2*b - ieee754.Sqrt(2*D+2*saf)) / (8 * a)
			im := ieee754.Sqrt(-2*D+2*saf) / (8 * a)
			roots[0] = complex(rp, im)
			roots[1] = complex(rp, -im)
			roots[2] = complex(rm, im)
			roots[3] = complex(rm, -im)
			return 8, nil

		case !isZero(E, tol) && D > 0 && F > 0:
			sgE := sgn(E)
			sy1 := ieee754.Sqrt(y1)
			sy2 := ieee754.Sqrt(y2)
			sy3 := ieee754.Sqrt(y3)
			roots[0] = complex((-b+sgE*sy1+(sy2+sy3))/(4*a), 0)
			roots[1] = complex((-b+sgE*sy1-(sy2+sy3))/(4*a), 0)
			roots[2] = complex((-b-sgE*sy1+(sy2-sy3))/(4*a), 0)
			roots[3] = complex((-b-sgE*sy1-(sy2-sy3))/(4*a), 0)
			return 9, nil

		default:
			sgE := sgn(E)
			sy2 := ieee754.Sqrt(y2)
			im1 := (sgE*ieee754.Sqrt(-y1) + ieee754.Sqrt(-y3)) / (4 * a)
			im2 := (sgE*ieee754.Sqrt(-y1) - ieee754.Sqrt(-y3)) / (4 * a)
			roots[0] = complex((-b-sy2)/(4*a), im1)
			roots[1] = complex((-b-sy2)/(4*a), -im1)
			roots[2] = complex((-b+sy2)/(4*a), im2)
			roots[3] = complex((-b+sy2)/(4*a), -im2)
			return 10, nil
		}
	}
}
