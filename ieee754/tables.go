package ieee754

import "math/big"

// The kernels below index several precomputed tables: the 2^(k/128)
// scale/tail pairs of the exponential, the sin/cos quadruples of the IBM
// circular kernels, the degree-grid trig table, the arctangent
// reference-angle tables and the cube-root exponent table. The original
// libraries compile these in as opaque hex blobs; here each table is built
// once at init by 256-bit arithmetic and rounded entry by entry, which
// reproduces the reference blobs exactly and keeps the package portable.

const tablePrec = 256

var (
	bigOne = newBigInt(1)
	bigTwo = newBigInt(2)

	// bigPi carries 100 decimal digits, comfortably above the 256-bit
	// working precision.
	bigPi, _ = new(big.Float).SetPrec(tablePrec).SetString(
		"3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679")

	bigLn2  = bigAtanhRecip(3) // ln 2  = 2 atanh(1/3)
	bigLn10 = new(big.Float).SetPrec(tablePrec).Add(
		new(big.Float).SetPrec(tablePrec).Mul(newBigInt(3), bigLn2),
		bigAtanhRecip(9)) // ln 10 = 3 ln 2 + 2 atanh(1/9) = ln 8 + ln(5/4)
)

func newBigInt(n int64) *big.Float {
	return new(big.Float).SetPrec(tablePrec).SetInt64(n)
}

func newBigQuo(p, q int64) *big.Float {
	return new(big.Float).SetPrec(tablePrec).Quo(newBigInt(p), newBigInt(q))
}

// bigAtanhRecip returns 2*atanh(1/n) by direct series summation.
func bigAtanhRecip(n int64) *big.Float {
	x := newBigQuo(1, n)
	x2 := new(big.Float).SetPrec(tablePrec).Mul(x, x)
	term := new(big.Float).SetPrec(tablePrec).Set(x)
	sum := new(big.Float).SetPrec(tablePrec).Set(x)
	t := new(big.Float).SetPrec(tablePrec)
	for k := int64(3); k < 400; k += 2 {
		term.Mul(term, x2)
		t.Quo(term, newBigInt(k))
		sum.Add(sum, t)
		if t.MantExp(nil) < -int(tablePrec)-8 {
			break
		}
	}
	return sum.Mul(sum, bigTwo)
}

// bigSin evaluates sin x by its Maclaurin series. Adequate for |x| < 8.
func bigSin(x *big.Float) *big.Float {
	x2 := new(big.Float).SetPrec(tablePrec).Mul(x, x)
	term := new(big.Float).SetPrec(tablePrec).Set(x)
	sum := new(big.Float).SetPrec(tablePrec).Set(x)
	for k := int64(1); k < 90; k++ {
		term.Mul(term, x2)
		term.Quo(term, newBigInt(2*k*(2*k+1)))
		term.Neg(term)
		sum.Add(sum, term)
	}
	return sum
}

// bigCos evaluates cos x by its Maclaurin series. Adequate for |x| < 8.
func bigCos(x *big.Float) *big.Float {
	x2 := new(big.Float).SetPrec(tablePrec).Mul(x, x)
	term := new(big.Float).SetPrec(tablePrec).Set(bigOne)
	sum := new(big.Float).SetPrec(tablePrec).Set(bigOne)
	for k := int64(1); k < 90; k++ {
		term.Mul(term, x2)
		term.Quo(term, newBigInt(2*k*(2*k-1)))
		term.Neg(term)
		sum.Add(sum, term)
	}
	return sum
}

// bigAtan evaluates atan x for x >= 0 by repeated angle halving followed by
// the Maclaurin series.
func bigAtan(x *big.Float) *big.Float {
	t := new(big.Float).SetPrec(tablePrec).Set(x)
	doublings := 0
	limit := newBigQuo(1, 16)
	for t.Cmp(limit) > 0 {
		// t <- t / (1 + sqrt(1 + t^2)) halves the angle.
		t2 := new(big.Float).SetPrec(tablePrec).Mul(t, t)
		t2.Add(t2, bigOne)
		t2.Sqrt(t2)
		t2.Add(t2, bigOne)
		t.Quo(t, t2)
		doublings++
	}
	x2 := new(big.Float).SetPrec(tablePrec).Mul(t, t)
	term := new(big.Float).SetPrec(tablePrec).Set(t)
	sum := new(big.Float).SetPrec(tablePrec).Set(t)
	u := new(big.Float).SetPrec(tablePrec)
	for k := int64(1); k < 80; k++ {
		term.Mul(term, x2)
		term.Neg(term)
		u.Quo(term, newBigInt(2*k+1))
		sum.Add(sum, u)
	}
	for ; doublings > 0; doublings-- {
		sum.Mul(sum, bigTwo)
	}
	return sum
}

// splitDouble rounds v to the nearest double and returns that head together
// with the rounded remainder, the standard hi/lo table representation.
func splitDouble(v *big.Float) (hi, lo float64) {
	hi, _ = v.Float64()
	r := new(big.Float).SetPrec(tablePrec).Sub(v, new(big.Float).SetPrec(tablePrec).SetFloat64(hi))
	lo, _ = r.Float64()
	return hi, lo
}

// --- exponential table: 2^(k/128) ~= scale * (1 + tail) ---

const expTableN = 128

var expScaleTab [expTableN]float64
var expTailTab [expTableN]float64

// expScaleBits holds the scale entries with the table index pre-subtracted
// from bit 45, so adding the reduction's (k + bias) << 45 term reconstructs
// the full exponent and index in one addition.
var expScaleBits [expTableN]uint64

// --- IBM sin/cos table: quadruples (sn, ssn, cs, ccs) at i/128 ---

const sincosEntries = 110

var sincosTab [4 * sincosEntries]float64

// --- degree-grid trig table: sin at 0.1 degree steps over [0, 90] ---

const degTableStep = 10 // entries per degree

var sinDegTab [90*degTableStep + 1]float64

// --- arctangent reference angles at i/128, i = 0..185, radians and degrees ---

const atanTableN = 186

var (
	atanHiRad [atanTableN]float64
	atanLoRad [atanTableN]float64
	atanHiDeg [atanTableN]float64
	atanLoDeg [atanTableN]float64
)

// --- cube roots of 1, 2, 4 for the exponent-residue combination ---

var cbrtScaleTab [3]float64

// Split halves of pi/2 and 180/pi used by the inverse-trig assembly.
var (
	piOver2Hi, piOver2Lo float64
	rad2DegHi, rad2DegLo float64
)

func init() {
	// Exponential: root128 = 2^(1/128) by seven successive square roots.
	root128 := new(big.Float).SetPrec(tablePrec).Set(bigTwo)
	for i := 0; i < 7; i++ {
		root128.Sqrt(root128)
	}
	v := new(big.Float).SetPrec(tablePrec).Set(bigOne)
	for i := 0; i < expTableN; i++ {
		scale, _ := v.Float64()
		t := new(big.Float).SetPrec(tablePrec).Quo(v, new(big.Float).SetPrec(tablePrec).SetFloat64(scale))
		t.Sub(t, bigOne)
		tail, _ := t.Float64()
		expScaleTab[i] = scale
		expTailTab[i] = tail
		expScaleBits[i] = Bits(scale) - uint64(i)<<45
		v.Mul(v, root128)
	}

	// IBM sin/cos quadruples at u = i/128.
	for i := 0; i < sincosEntries; i++ {
		u := newBigQuo(int64(i), 128)
		sn, ssn := splitDouble(bigSin(u))
		cs, ccs := splitDouble(bigCos(u))
		sincosTab[4*i+0] = sn
		sincosTab[4*i+1] = ssn
		sincosTab[4*i+2] = cs
		sincosTab[4*i+3] = ccs
	}

	// Degree grid: sin(i * 0.1 deg) over the first quadrant.
	degToRad := new(big.Float).SetPrec(tablePrec).Quo(bigPi, newBigInt(1800))
	for i := range sinDegTab {
		arg := new(big.Float).SetPrec(tablePrec).Mul(newBigInt(int64(i)), degToRad)
		sinDegTab[i], _ = bigSin(arg).Float64()
	}
	sinDegTab[0] = 0
	sinDegTab[len(sinDegTab)-1] = 1

	// Arctangent reference angles, in radians and degrees.
	degPerRad := new(big.Float).SetPrec(tablePrec).Quo(newBigInt(180), bigPi)
	for i := 0; i < atanTableN; i++ {
		a := bigAtan(newBigQuo(int64(i), 128))
		atanHiRad[i], atanLoRad[i] = splitDouble(a)
		atanHiDeg[i], atanLoDeg[i] = splitDouble(new(big.Float).SetPrec(tablePrec).Mul(a, degPerRad))
	}

	// Cube roots of 2^j by multi-precision Newton iteration on t^3 = m.
	for j := 0; j < 3; j++ {
		m := newBigInt(1 << uint(j))
		t := new(big.Float).SetPrec(tablePrec).SetFloat64(1.26)
		for it := 0; it < 40; it++ {
			// t <- (2t + m/t^2) / 3
			t2 := new(big.Float).SetPrec(tablePrec).Mul(t, t)
			q := new(big.Float).SetPrec(tablePrec).Quo(m, t2)
			t.Mul(t, bigTwo)
			t.Add(t, q)
			t.Quo(t, newBigInt(3))
		}
		cbrtScaleTab[j], _ = t.Float64()
	}

	halfPi := new(big.Float).SetPrec(tablePrec).Quo(bigPi, bigTwo)
	piOver2Hi, piOver2Lo = splitDouble(halfPi)
	rad2DegHi, rad2DegLo = splitDouble(degPerRad)
}
