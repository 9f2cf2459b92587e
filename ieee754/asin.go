package ieee754

// Arc sine and arc cosine. The input domain is split in two: [0, 0.75] goes
// through the arctangent core asin x = atan(x / sqrt(1 - x^2)), and
// (0.75, 1] through the half-angle identity
// asin x = pi/2 - 2 asin(sqrt((1-x)/2)) so the square root, not the
// division, absorbs the cancellation near 1.

// asinCore maps x in [0, 0.75] through atan(x / sqrt(1 - x^2)).
func asinCore(x float64) float64 {
	return Atan(x / Sqrt((1-x)*(1+x)))
}

// Asin returns the arc sine of x in radians, in [-pi/2, pi/2].
//
// Asin(+-1) is exactly +-pi/2. |x| > 1 and NaN give NaN.
func Asin(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	a := Abs(x)
	switch {
	case a > 1:
		return FromBits(QNaNBits)
	case a == 1:
		return CopySign(piOver2Hi+piOver2Lo, x)
	case a <= 0.75:
		return CopySign(asinCore(a), x)
	default:
		z := Sqrt((1 - a) / 2)
		y := piOver2Hi - 2*asinCore(z) + piOver2Lo
		return CopySign(y, x)
	}
}

// Acos returns the arc cosine of x in radians, in [0, pi].
//
// Acos(0) is exactly pi/2, Acos(1) = +0, Acos(-1) = pi. |x| > 1 and NaN
// give NaN.
func Acos(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	switch {
	case Abs(x) > 1:
		return FromBits(QNaNBits)
	case x == 0:
		return piOver2Hi + piOver2Lo
	case x > 0.75:
		// acos x = 2 asin(sqrt((1-x)/2)); exact zero at x = 1.
		return 2 * asinHalf(x)
	case x < -0.75:
		return 2*(piOver2Hi+piOver2Lo) - 2*asinHalf(-x)
	default:
		y := asinCore(Abs(x))
		if x > 0 {
			return piOver2Hi - y + piOver2Lo
		}
		return piOver2Hi + y + piOver2Lo
	}
}

func asinHalf(a float64) float64 {
	z := Sqrt((1 - a) / 2)
	if z == 0 {
		return 0
	}
	return asinCore(z)
}

// AsinDeg returns the arc sine of x in degrees, in [-90, 90], with
// AsinDeg(+-1) exactly +-90.
func AsinDeg(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	a := Abs(x)
	switch {
	case a > 1:
		return FromBits(QNaNBits)
	case a == 1:
		return CopySign(90, x)
	case a <= 0.75:
		return CopySign(AtanDeg(a/Sqrt((1-a)*(1+a))), x)
	default:
		z := Sqrt((1 - a) / 2)
		return CopySign(90-2*AtanDeg(z/Sqrt((1-z)*(1+z))), x)
	}
}

// AcosDeg returns the arc cosine of x in degrees, in [0, 180], with
// AcosDeg(0) exactly 90.
func AcosDeg(x float64) float64 {
	if IsNaN(x) {
		return x + x
	}
	switch {
	case Abs(x) > 1:
		return FromBits(QNaNBits)
	case x == 0:
		return 90
	case x == 1:
		return 0
	case x == -1:
		return 180
	case x > 0.75:
		z := Sqrt((1 - x) / 2)
		return 2 * AtanDeg(z/Sqrt((1-z)*(1+z)))
	case x < -0.75:
		z := Sqrt((1 + x) / 2)
		return 180 - 2*AtanDeg(z/Sqrt((1-z)*(1+z)))
	default:
		return 90 - AsinDeg(x)
	}
}
