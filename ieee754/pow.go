package ieee754

// Pow is built as a high-precision exp(y * ln x): the logarithm comes back as
// a hi/lo pair from lnInline, y is split in half, and the four cross terms
// keep about 70 bits in the argument handed to the exponential.

// checkInt classifies the bit pattern of a non-zero finite y:
// 0 not an integer, 1 an odd integer, 2 an even integer.
func checkInt(iy uint64) int {
	e := int(iy >> 52 & 0x7ff)
	if e < 0x3ff {
		return 0
	}
	if e > 0x3ff+52 {
		return 2
	}
	if iy&(1<<uint(0x3ff+52-e)-1) != 0 {
		return 0
	}
	if iy&(1<<uint(0x3ff+52-e)) != 0 {
		return 1
	}
	return 2
}

func zeroInfNaN(i uint64) bool {
	return 2*i-1 >= 2*PosInfBits-1
}

func isSignalingNaN(x float64) bool {
	return 2*(Bits(x)^0x0008000000000000) > 2*QNaNBits
}

// Pow returns x**y with the full IEEE-754-2008 special-case table:
// pow(1, y) = 1 and pow(x, +-0) = 1 even for NaN arguments, odd-integer y
// keeps the sign of a negative x, non-integer y on negative x yields NaN,
// and over/underflow round to infinity or signed zero.
func Pow(x, y float64) float64 {
	var signBias uint64
	ix := Bits(x)
	iy := Bits(y)
	topx := uint32(ix >> 52)
	topy := uint32(iy >> 52)

	if topx-1 >= 0x7ff-1 || (topy&0x7ff)-0x3be >= 0x43e-0x3be {
		// Either x is zero/subnormal/inf/nan, or |y| is tiny, huge or nan.
		if zeroInfNaN(iy) {
			if 2*iy == 0 {
				if isSignalingNaN(x) {
					return x + y
				}
				return 1.0
			}
			if ix == Bits(1.0) {
				if isSignalingNaN(y) {
					return x + y
				}
				return 1.0
			}
			if 2*ix > 2*PosInfBits || 2*iy > 2*PosInfBits {
				return x + y
			}
			if 2*ix == 2*Bits(1.0) {
				return 1.0
			}
			if (2*ix < 2*Bits(1.0)) == (iy>>63 == 0) {
				return 0.0 // |x|<1 && y==inf, or |x|>1 && y==-inf
			}
			return y * y
		}
		if zeroInfNaN(ix) {
			x2 := x * x
			if ix>>63 != 0 && checkInt(iy) == 1 {
				x2 = -x2
				signBias = 1
			}
			if 2*ix == 0 && iy>>63 != 0 {
				if signBias != 0 {
					return FromBits(NegInfBits)
				}
				return FromBits(PosInfBits)
			}
			if iy>>63 != 0 {
				return 1 / x2
			}
			return x2
		}
		// Here x and y are non-zero finite.
		if ix>>63 != 0 {
			// Finite x < 0: y must be an integer.
			switch checkInt(iy) {
			case 0:
				return FromBits(QNaNBits)
			case 1:
				signBias = expSignBias
			}
			ix &= 0x7fffffffffffffff
			topx &= 0x7ff
		}
		if (topy&0x7ff)-0x3be >= 0x43e-0x3be {
			// Note: signBias == 0 here because y is not odd.
			if ix == Bits(1.0) {
				return 1.0
			}
			if topy&0x7ff < 0x3be {
				// |y| < 2^-65: x^y ~= 1 + y*ln(x).
				if ix > Bits(1.0) {
					return 1.0 + y
				}
				return 1.0 - y
			}
			if (ix > Bits(1.0)) == (topy < 0x800) {
				big := 0x1p769
				return big * big // overflow
			}
			return 0x1p-767 * 0x1p-767 // underflow
		}
		if topx == 0 {
			// Normalize subnormal x so its exponent goes negative.
			ix = Bits(x * 0x1p52)
			ix &= 0x7fffffffffffffff
			ix -= 52 << 52
		}
	}

	hi, lo := lnInline(ix)

	const mask27 uint64 = 0xfffffffff8000000
	yhi := FromBits(iy & mask27)
	ylo := y - yhi
	lhi := FromBits(Bits(hi) & mask27)
	llo := hi - lhi + lo
	ehi := yhi * lhi
	elo := ylo*lhi + y*llo // |elo| < |ehi| * 2^-25

	return expInternal(ehi, elo, signBias)
}

// Yroot returns the nth root of x, i.e. x^(1/n).
//
// Odd integer roots of negative values are real: Yroot(-8, 3) = -2.
func Yroot(x, n float64) float64 {
	if n == 2 {
		return Sqrt(x)
	}
	if n == 3 {
		return Cbrt(x)
	}
	if x < 0 && checkInt(Bits(n)) == 1 {
		return -Pow(-x, 1/n)
	}
	return Pow(x, 1/n)
}

// InverseSqrt returns 1/sqrt(x).
func InverseSqrt(x float64) float64 { return 1 / Sqrt(x) }
