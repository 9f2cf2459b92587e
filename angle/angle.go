// Package angle provides the unit-carrying angle type used across semath.
//
// An Angle remembers whether it was built from radians or degrees, and the
// trigonometric facade routes it to the matching kernel in ieee754: degree
// angles go through the exact-quadrant degree tables, radian angles through
// the IBM range-reduction path. Converting between units is always explicit,
// so the caller decides which representation enters a kernel.
package angle

import "github.com/avikara/semath/ieee754"

// Unit tags the representation an Angle was built from.
type Unit int

const (
	Radians Unit = iota
	Degrees
)

// Angle represents an angular measurement together with its native unit.
type Angle struct {
	v    float64
	unit Unit
}

// FromRadians creates an Angle measured in radians.
func FromRadians(rad float64) Angle { return Angle{v: rad, unit: Radians} }

// FromDegrees creates an Angle measured in degrees.
func FromDegrees(deg float64) Angle { return Angle{v: deg, unit: Degrees} }

// FromHours creates an Angle from hours of right ascension (15 degrees each).
func FromHours(hours float64) Angle { return Angle{v: hours * 15, unit: Degrees} }

// FromTurns creates an Angle from whole turns.
func FromTurns(turns float64) Angle { return Angle{v: turns * 360, unit: Degrees} }

// Unit returns the unit the angle natively carries.
func (a Angle) Unit() Unit { return a.unit }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	if a.unit == Radians {
		return a.v
	}
	return ieee754.Radians(a.v)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	if a.unit == Degrees {
		return a.v
	}
	return ieee754.Degrees(a.v)
}

// Hours returns the angle in hours of right ascension.
func (a Angle) Hours() float64 { return a.Degrees() / 15 }

// Arcminutes returns the angle in minutes of arc.
func (a Angle) Arcminutes() float64 { return a.Degrees() * 60 }

// Arcseconds returns the angle in seconds of arc.
func (a Angle) Arcseconds() float64 { return a.Degrees() * 3600 }

// DMS decomposes the angle into sign, integer degrees, integer arcminutes,
// and fractional arcseconds. Sign is +1 or -1.
func (a Angle) DMS() (sign float64, deg, min int, sec float64) {
	total := a.Degrees()
	sign = 1.0
	if total < 0 {
		sign = -1.0
		total = -total
	}
	deg = int(total)
	remainder := (total - float64(deg)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// HMS decomposes the angle (as right ascension) into sign, integer hours,
// integer minutes, and fractional seconds. Sign is +1 or -1.
func (a Angle) HMS() (sign float64, hours, min int, sec float64) {
	total := a.Hours()
	sign = 1.0
	if total < 0 {
		sign = -1.0
		total = -total
	}
	hours = int(total)
	remainder := (total - float64(hours)) * 60.0
	min = int(remainder)
	sec = (remainder - float64(min)) * 60.0
	return
}

// Sin returns the sine through the kernel matching the angle's unit.
func (a Angle) Sin() float64 {
	if a.unit == Degrees {
		return ieee754.SinDeg(a.v)
	}
	return ieee754.Sin(a.v)
}

// Cos returns the cosine through the kernel matching the angle's unit.
func (a Angle) Cos() float64 {
	if a.unit == Degrees {
		return ieee754.CosDeg(a.v)
	}
	return ieee754.Cos(a.v)
}

// Tan returns the tangent through the kernel matching the angle's unit.
func (a Angle) Tan() float64 {
	if a.unit == Degrees {
		return ieee754.TanDeg(a.v)
	}
	return ieee754.Tan(a.v)
}

// Ctg returns the cotangent.
func (a Angle) Ctg() float64 { return 1 / a.Tan() }

// Sec returns the secant.
func (a Angle) Sec() float64 { return 1 / a.Cos() }

// Csc returns the cosecant.
func (a Angle) Csc() float64 { return 1 / a.Sin() }

// Quadrant classifies the angle onto the axes and open quadrants of the
// plane: 0 x-pos, 1 quadrant I, 2 y-pos, ..., 7 quadrant IV.
func (a Angle) Quadrant() int64 { return ieee754.Quadrant(a.Degrees()) }

// Inverse constructors: results carry the requested unit.

// Asin returns the angle whose sine is x, in [-90, 90] degrees or the
// radian equivalent. Asin(1) is exactly a quarter turn in either unit.
func Asin(x float64, unit Unit) Angle {
	if unit == Degrees {
		return Angle{v: ieee754.AsinDeg(x), unit: Degrees}
	}
	return Angle{v: ieee754.Asin(x), unit: Radians}
}

// Acos returns the angle whose cosine is x, in [0, 180] degrees or the
// radian equivalent.
func Acos(x float64, unit Unit) Angle {
	if unit == Degrees {
		return Angle{v: ieee754.AcosDeg(x), unit: Degrees}
	}
	return Angle{v: ieee754.Acos(x), unit: Radians}
}

// Atan returns the angle whose tangent is x, in [-90, 90] degrees or the
// radian equivalent.
func Atan(x float64, unit Unit) Angle {
	if unit == Degrees {
		return Angle{v: ieee754.AtanDeg(x), unit: Degrees}
	}
	return Angle{v: ieee754.Atan(x), unit: Radians}
}

// Arcctg returns the angle whose cotangent is x.
func Arcctg(x float64, unit Unit) Angle {
	r := ieee754.Arccot(x)
	if unit == Degrees {
		return Angle{v: ieee754.Degrees(r), unit: Degrees}
	}
	return Angle{v: r, unit: Radians}
}

// Arcsec returns the angle whose secant is x.
func Arcsec(x float64, unit Unit) Angle { return Acos(1/x, unit) }

// Arccsc returns the angle whose cosecant is x.
func Arccsc(x float64, unit Unit) Angle { return Asin(1/x, unit) }
