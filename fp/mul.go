package fp

import "math/bits"

func mulAcc(accLo, accHi, x, y uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(x, y)
	lo += accLo
	if lo < accLo {
		hi++
	}
	hi += accHi
	return
}

// Mul sets z = x*y and returns z. Reduction is folded into the
// multiplication the way the fe51 reference does it: products landing in
// the conceptual 6th/7th/... limb are multiplied by 19 and added into the
// low limb before the carry chain runs.
func (z *Element) Mul(x, y *Element) *Element {
	x0, x1, x2, x3, x4 := x[0], x[1], x[2], x[3], x[4]
	y0, y1, y2, y3, y4 := y[0], y[1], y[2], y[3], y[4]

	x1_19 := x1 * 19
	x2_19 := x2 * 19
	x3_19 := x3 * 19
	x4_19 := x4 * 19

	r00, r01 := mulAcc(0, 0, x0, y0)
	r00, r01 = mulAcc(r00, r01, x1_19, y4)
	r00, r01 = mulAcc(r00, r01, x2_19, y3)
	r00, r01 = mulAcc(r00, r01, x3_19, y2)
	r00, r01 = mulAcc(r00, r01, x4_19, y1)

	r10, r11 := mulAcc(0, 0, x0, y1)
	r10, r11 = mulAcc(r10, r11, x1, y0)
	r10, r11 = mulAcc(r10, r11, x2_19, y4)
	r10, r11 = mulAcc(r10, r11, x3_19, y3)
	r10, r11 = mulAcc(r10, r11, x4_19, y2)

	r20, r21 := mulAcc(0, 0, x0, y2)
	r20, r21 = mulAcc(r20, r21, x1, y1)
	r20, r21 = mulAcc(r20, r21, x2, y0)
	r20, r21 = mulAcc(r20, r21, x3_19, y4)
	r20, r21 = mulAcc(r20, r21, x4_19, y3)

	r30, r31 := mulAcc(0, 0, x0, y3)
	r30, r31 = mulAcc(r30, r31, x1, y2)
	r30, r31 = mulAcc(r30, r31, x2, y1)
	r30, r31 = mulAcc(r30, r31, x3, y0)
	r30, r31 = mulAcc(r30, r31, x4_19, y4)

	r40, r41 := mulAcc(0, 0, x0, y4)
	r40, r41 = mulAcc(r40, r41, x1, y3)
	r40, r41 = mulAcc(r40, r41, x2, y2)
	r40, r41 = mulAcc(r40, r41, x3, y1)
	r40, r41 = mulAcc(r40, r41, x4, y0)

	carryReduce(&r00, &r01, &r10, &r11, &r20, &r21, &r30, &r31, &r40, &r41)

	z[0], z[1], z[2], z[3], z[4] = r00, r10, r20, r30, r40
	return z
}

// Square sets z = x*x and returns z.
func (z *Element) Square(x *Element) *Element {
	x0, x1, x2, x3, x4 := x[0], x[1], x[2], x[3], x[4]

	x0_2 := x0 << 1
	x1_2 := x1 << 1

	x1_38 := x1 * 38
	x2_38 := x2 * 38
	x3_38 := x3 * 38

	x3_19 := x3 * 19
	x4_19 := x4 * 19

	r00, r01 := mulAcc(0, 0, x0, x0)
	r00, r01 = mulAcc(r00, r01, x1_38, x4)
	r00, r01 = mulAcc(r00, r01, x2_38, x3)

	r10, r11 := mulAcc(0, 0, x0_2, x1)
	r10, r11 = mulAcc(r10, r11, x2_38, x4)
	r10, r11 = mulAcc(r10, r11, x3_19, x3)

	r20, r21 := mulAcc(0, 0, x0_2, x2)
	r20, r21 = mulAcc(r20, r21, x1, x1)
	r20, r21 = mulAcc(r20, r21, x3_38, x4)

	r30, r31 := mulAcc(0, 0, x0_2, x3)
	r30, r31 = mulAcc(r30, r31, x1_2, x2)
	r30, r31 = mulAcc(r30, r31, x4_19, x4)

	r40, r41 := mulAcc(0, 0, x0_2, x4)
	r40, r41 = mulAcc(r40, r41, x1_2, x3)
	r40, r41 = mulAcc(r40, r41, x2, x2)

	carryReduce(&r00, &r01, &r10, &r11, &r20, &r21, &r30, &r31, &r40, &r41)

	z[0], z[1], z[2], z[3], z[4] = r00, r10, r20, r30, r40
	return z
}

// carryReduce performs the shared post-multiply carry propagation: each
// r_i is held as (lo, hi) with hi representing bits above position 51;
// shld-style recombination folds hi into the next limb's lo, then a final
// ripple carry (with the top limb's overflow folded back in times 19)
// brings every limb below 2^51.
func carryReduce(r00, r01, r10, r11, r20, r21, r30, r31, r40, r41 *uint64) {
	*r01 = (*r01 << 13) | (*r00 >> 51)
	*r00 &= maskLow51Bits

	*r11 = (*r11 << 13) | (*r10 >> 51)
	*r10 &= maskLow51Bits
	*r10 += *r01

	*r21 = (*r21 << 13) | (*r20 >> 51)
	*r20 &= maskLow51Bits
	*r20 += *r11

	*r31 = (*r31 << 13) | (*r30 >> 51)
	*r30 &= maskLow51Bits
	*r30 += *r21

	*r41 = (*r41 << 13) | (*r40 >> 51)
	*r40 &= maskLow51Bits
	*r40 += *r31

	*r41 *= 19
	*r00 += *r41

	*r10 += *r00 >> 51
	*r00 &= maskLow51Bits
	*r20 += *r10 >> 51
	*r10 &= maskLow51Bits
	*r30 += *r20 >> 51
	*r20 &= maskLow51Bits
	*r40 += *r30 >> 51
	*r30 &= maskLow51Bits
	*r00 += (*r40 >> 51) * 19
	*r40 &= maskLow51Bits
}
