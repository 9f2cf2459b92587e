package ieee754

// Arc tangent through a reference-angle table: the 186 entries cover
// arctan(i/128) up to i = 185, stored as split hi/lo pairs in radians and in
// degrees, so the unit facade only picks a table. The remainder
// r = (x - t)/(1 + x t) stays below 1/256 and a four-term odd polynomial
// finishes it.

const atanTableLimit = 185.0/128.0 + 1.0/256.0

// atanPoly evaluates atan r - is accurate to ~2^-70 for |r| <= 2^-8.
func atanPoly(r float64) float64 {
	r2 := r * r
	return r * (1 - r2*(1.0/3.0-r2*(1.0/5.0-r2*(1.0/7.0))))
}

// Atan returns the arc tangent of x in radians, in [-pi/2, pi/2].
//
// Atan(+-0) = +-0, Atan(+-Inf) = +-pi/2, Atan(NaN) = NaN.
func Atan(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	if x < 0 {
		return -Atan(-x)
	}
	if IsInf(x, 1) {
		return piOver2Hi + piOver2Lo
	}
	if x >= atanTableLimit {
		// arctan x = pi/2 - arctan(1/x); 1/x lands inside the table range.
		y := Atan(1 / x)
		return piOver2Hi - y + piOver2Lo
	}
	i := int(x*128 + 0.5)
	t := float64(i) / 128
	r := (x - t) / (1 + x*t)
	return atanHiRad[i] + (atanLoRad[i] + atanPoly(r))
}

// AtanDeg returns the arc tangent of x in degrees, in [-90, 90], read from
// the degree-unit half of the reference table.
func AtanDeg(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	if x < 0 {
		return -AtanDeg(-x)
	}
	if IsInf(x, 1) {
		return 90
	}
	if x >= atanTableLimit {
		return 90 - AtanDeg(1/x)
	}
	i := int(x*128 + 0.5)
	t := float64(i) / 128
	r := (x - t) / (1 + x*t)
	return atanHiDeg[i] + (atanLoDeg[i] + atanPoly(r)*rad2DegHi)
}

// Atan2 returns the angle of the point (x, y) in radians, in (-pi, pi].
func Atan2(y, x float64) float64 {
	switch {
	case IsNaN(y) || IsNaN(x):
		return FromBits(QNaNBits)
	case y == 0:
		if x >= 0 && !SignBit(x) {
			return y
		}
		return CopySign(piOver2Hi*2+piOver2Lo*2, y)
	case x == 0:
		return CopySign(piOver2Hi+piOver2Lo, y)
	case IsInf(x, 0):
		if IsInf(x, 1) {
			if IsInf(y, 0) {
				return CopySign((piOver2Hi+piOver2Lo)/2, y)
			}
			return CopySign(0, y)
		}
		if IsInf(y, 0) {
			return CopySign(3*(piOver2Hi+piOver2Lo)/2, y)
		}
		return CopySign(2*(piOver2Hi+piOver2Lo), y)
	case IsInf(y, 0):
		return CopySign(piOver2Hi+piOver2Lo, y)
	}
	q := Atan(y / x)
	if x < 0 {
		if q <= 0 {
			return q + 2*(piOver2Hi+piOver2Lo)
		}
		return q - 2*(piOver2Hi+piOver2Lo)
	}
	return q
}

// Arccot returns the arc cotangent of x in radians, in (0, pi).
func Arccot(x float64) float64 {
	if x == 0 {
		return piOver2Hi + piOver2Lo
	}
	if x > 0 {
		return Atan(1 / x)
	}
	return 2*(piOver2Hi+piOver2Lo) + Atan(1/x)
}
