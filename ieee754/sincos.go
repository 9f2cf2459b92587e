package ieee754

// Circular functions on radians, ported from the IBM Accurate Mathematical
// Library routines: a sin/cos quadruple table at 1/128 spacing, polynomial
// kernels around the nearest table node, a 107-bit reduction for medium
// arguments and a 136-bit Payne-Hanek style reduction (branred) for large
// ones.

const (
	snS1 = -0x1.5555555555555p-03
	snS2 = +0x1.1111111110ECEp-07
	snS3 = -0x1.A01A019DB08B8p-13
	snS4 = +0x1.71DE27B9A7ED9p-19
	snS5 = -0x1.ADDFFC2FCDF59p-26

	snBig = +0x1.8p+45
	snHp0 = +0x1.921FB54442D18p+00
	snHp1 = +0x1.1A62633145C07p-54
	snMp1 = +0x1.921FB58000000p+00
	snMp2 = -0x1.DDE973C000000p-27
	snPp3 = -0x1.CB3B398000000p-55
	snPp4 = -0x1.d747f23e32ed7p-83

	snHpInv = +0x1.45F306DC9C883p-01
	snToInt = +0x1.8p+52

	snSn3 = -1.66666666666666666666666666666667e-01
	snSn5 = +8.33333333333333333333333333333333e-03
	snCs2 = +5.00000000000000000000000000000000e-01
	snCs4 = -4.16666666666666666666666666666667e-02
	snCs6 = +1.38888888888888888888888888888889e-03
)

// sincosLookup returns the table quadruple nearest |x|, addressed through
// the binary offset trick u = big + |x|.
func sincosLookup(u float64) (sn, ssn, cs, ccs float64) {
	k := int(lo32(u)) << 2
	return sincosTab[k], sincosTab[k+1], sincosTab[k+2], sincosTab[k+3]
}

// taylorSin evaluates sin(x + dx) for tiny x by the plain series.
func taylorSin(xx, x, dx float64) float64 {
	t := ((((((snS5*xx+snS4)*xx+snS3)*xx+snS2)*xx)+snS1)*x-0.5*dx)*xx + dx
	return x + t
}

// kernelSin computes sin(x + dx) for |x| < 0.855469 by blending the series
// around the nearest table node with the tabulated sin/cos pair.
func kernelSin(x, dx float64) float64 {
	xold := x
	if Abs(x) < 0.126 {
		return taylorSin(x*x, x, dx)
	}
	if x <= 0 {
		dx = -dx
	}
	u := snBig + Abs(x)
	x = Abs(x) - (u - snBig)

	xx := x * x
	s := x + (dx + x*xx*(snSn3+xx*snSn5))
	c := x*dx + xx*(snCs2+xx*(snCs4+xx*snCs6))
	sn, ssn, cs, ccs := sincosLookup(u)
	cor := (ssn + s*ccs - sn*c) + cs*s
	return CopySign(sn+cor, xold)
}

// kernelCos computes cos(x + dx) for |x| < 0.855469.
func kernelCos(x, dx float64) float64 {
	if x < 0 {
		dx = -dx
	}
	u := snBig + Abs(x)
	x = Abs(x) - (u - snBig) + dx

	xx := x * x
	s := x + x*xx*(snSn3+xx*snSn5)
	c := xx * (snCs2 + xx*(snCs4+xx*snCs6))
	sn, ssn, cs, ccs := sincosLookup(u)
	cor := (ccs - s*ssn - cs*c) - sn*s
	return cs + cor
}

// reduceSincos reduces |x| < 105414350 modulo pi/2 into a + da accurate to
// 107 bits and returns the quadrant.
func reduceSincos(x float64) (a, da float64, n int) {
	t := x*snHpInv + snToInt
	xn := t - snToInt
	n = int(lo32(t)) & 3
	y := (x - xn*snMp1) - xn*snMp2

	t1 := xn * snPp3
	t2 := y - t1
	db := (y - t2) - t1

	t1 = xn * snPp4
	b := t2 - t1
	db += (t2 - b) - t1
	return b, db, n
}

// toverp is 2/pi in base 2^24, the multiplier of the branred reduction.
var toverp = [75]float64{
	10680707.0, 7228996.0, 1387004.0, 2578385.0, 16069853.0,
	12639074.0, 9804092.0, 4427841.0, 16666979.0, 11263675.0,
	12935607.0, 2387514.0, 4345298.0, 14681673.0, 3074569.0,
	13734428.0, 16653803.0, 1880361.0, 10960616.0, 8533493.0,
	3062596.0, 8710556.0, 7349940.0, 6258241.0, 3772886.0,
	3769171.0, 3798172.0, 8675211.0, 12450088.0, 3874808.0,
	9961438.0, 366607.0, 15675153.0, 9132554.0, 7151469.0,
	3571407.0, 2607881.0, 12013382.0, 4155038.0, 6285869.0,
	7677882.0, 13102053.0, 15825725.0, 473591.0, 9065106.0,
	15363067.0, 6271263.0, 9264392.0, 5636912.0, 4652155.0,
	7056368.0, 13614112.0, 10155062.0, 1944035.0, 9527646.0,
	15080200.0, 6658437.0, 6231200.0, 6832269.0, 16767104.0,
	5075751.0, 3212806.0, 1398474.0, 7579849.0, 6349435.0,
	12618859.0, 4703257.0, 12806093.0, 14477321.0, 2786137.0,
	12875403.0, 9837734.0, 14528324.0, 13719321.0, 343717.0,
}

// branred performs the 136-bit range reduction x = n*pi/2 + (a + da) with
// |a + da| < pi/4, for arbitrarily large finite x. Returns n mod 4.
func branred(x float64) (a, da float64, n int) {
	const (
		t576  = 0x1p+576
		tm600 = 0x1p-600
		tm24  = 0x1p-24
		big   = 0x1.8p+52
		big1  = 0x1.8p+54
		split = 0x1.0000002p+27
	)

	var r [6]float64

	x *= tm600
	t := x * split // split x into two halves
	x1 := t - (t - x)
	x2 := x - x1

	reduceHalf := func(xh float64) (b, bb, sum float64) {
		k := int(hi32(xh)>>20) & 2047
		k = (k - 450) / 24
		if k < 0 {
			k = 0
		}
		gor := FromBits(Bits(t576) - uint64(k*24)<<52)
		for i := 0; i < 6; i++ {
			r[i] = xh * toverp[k+i] * gor
			gor *= tm24
		}
		for i := 0; i < 3; i++ {
			s := (r[i] + big) - big
			sum += s
			r[i] -= s
		}
		t := 0.0
		for i := 0; i < 6; i++ {
			t += r[5-i]
		}
		bb = (((((r[0]-t)+r[1])+r[2])+r[3])+r[4]) + r[5]
		s := (t + big) - big
		sum += s
		t -= s
		b = t + bb
		bb = (t - b) + bb
		s = (sum + big1) - big1
		sum -= s
		return
	}

	b1, bb1, sum1 := reduceHalf(x1)
	b2, bb2, sum2 := reduceHalf(x2)

	sum := sum1 + sum2
	b := b1 + b2
	var bb float64
	if Abs(b1) > Abs(b2) {
		bb = (b1 - b) + b2
	} else {
		bb = (b2 - b) + b1
	}
	if b > 0.5 {
		b -= 1.0
		sum += 1.0
	} else if b < -0.5 {
		b += 1.0
		sum -= 1.0
	}
	s := b + (bb + bb1 + bb2)
	t = ((b - s) + bb) + (bb1 + bb2)
	b = s * split
	t1 := b - (b - s)
	t2 := s - t1
	b = s * snHp0
	bb = (((t1*snMp1-b)+t1*snMp2)+t2*snMp1) + (t2*snMp2 + s*snHp1 + t*snHp0)
	s = b + bb
	t = (b - s) + bb
	return s, t, int(int64(sum)) & 3
}

// sincosKernel dispatches sin or cos of a + da by quadrant.
func sincosKernel(a, da float64, n int) float64 {
	var r float64
	if n&1 != 0 {
		r = kernelCos(a, da)
	} else {
		r = kernelSin(a, da)
	}
	if n&2 != 0 {
		return -r
	}
	return r
}

// Sin returns the sine of x (radians).
//
// Sin(+-0) = +-0, Sin(+-Inf) = NaN, Sin(NaN) = NaN.
func Sin(x float64) float64 {
	k := hi32(x) & 0x7fffffff
	switch {
	case k < 0x3e500000: // |x| < 2^-26: sin(x) = x
		return x
	case k < 0x3feb6000: // |x| < 0.855469
		return kernelSin(x, 0)
	case k < 0x400368fd: // |x| < 2.426265
		t := snHp0 - Abs(x)
		return CopySign(kernelCos(t, snHp1), x)
	case k < 0x419921FB: // |x| < 105414350
		a, da, n := reduceSincos(x)
		return sincosKernel(a, da, n)
	case k < 0x7ff00000: // |x| < 2^1024
		a, da, n := branred(x)
		return sincosKernel(a, da, n)
	default:
		return x / x // Inf, NaN
	}
}

// Cos returns the cosine of x (radians).
//
// Cos(+-Inf) = NaN, Cos(NaN) = NaN.
func Cos(x float64) float64 {
	k := hi32(x) & 0x7fffffff
	switch {
	case k < 0x3e400000: // |x| < 2^-27: cos(x) = 1
		return 1.0
	case k < 0x3feb6000:
		return kernelCos(x, 0)
	case k < 0x400368fd:
		y := snHp0 - Abs(x)
		a := y + snHp1
		da := (y - a) + snHp1
		return kernelSin(a, da)
	case k < 0x419921FB:
		a, da, n := reduceSincos(x)
		return sincosKernel(a, da, n+1)
	case k < 0x7ff00000:
		a, da, n := branred(x)
		return sincosKernel(a, da, n+1)
	default:
		return x / x
	}
}

// Tan returns the tangent of x (radians), as the exactly reduced quotient of
// the sine and cosine kernels.
//
// Tan(+-0) = +-0, Tan(+-Inf) = NaN, Tan(NaN) = NaN.
func Tan(x float64) float64 {
	k := hi32(x) & 0x7fffffff
	switch {
	case k < 0x3e400000: // |x| < 2^-27: tan(x) = x
		return x
	case k < 0x3feb6000:
		return kernelSin(x, 0) / kernelCos(x, 0)
	case k < 0x7ff00000:
		var a, da float64
		var n int
		if k < 0x419921FB {
			a, da, n = reduceSincos(x)
		} else {
			a, da, n = branred(x)
		}
		s := kernelSin(a, da)
		c := kernelCos(a, da)
		if n&1 != 0 {
			return -c / s
		}
		return s / c
	default:
		return x / x
	}
}
