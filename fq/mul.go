package fq

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

// recombine splits a (lo, hi) accumulator pair — representing the exact
// value hi*2^64 + lo — into a masked limb below 2^51 and a carry to fold
// into the next limb up, the same shld-style step fp's carryReduce uses.
func recombine(lo, hi uint64) (masked, carry uint64) {
	carry = (hi << 13) | (lo >> 51)
	masked = lo & maskLow51Bits
	return
}

// addCarryInto adds c into the (lo, hi) accumulator pair with overflow
// detection, since lo may already be close to 2^64 — unlike a value that
// has just been through recombine's masking, a raw pre-recombine
// accumulator can't be assumed to have headroom for a plain "+=".
func addCarryInto(lo, hi *uint64, c uint64) {
	newLo := *lo + c
	if newLo < *lo {
		*hi++
	}
	*lo = newLo
}

// Mul sets z = x*y and returns z.
//
// fp folds its wrap-around multiplier (19) into the schoolbook dot
// products directly, because 19 fits in a single limb and stays small
// enough that prescaling an operand by it never risks overflow. gamma =
// 2^64+5223 does not fit in one 51-bit limb (it needs a gammaHigh = 2^13
// term), and prescaling an operand by gammaHigh before the widening
// multiply eats exactly the 13 bits of headroom the recombine step
// depends on — so this runs in two passes instead of fp's one:
//
//  1. Accumulate the 9 raw schoolbook rows (i+j = 0..8, no folding) and
//     carry-propagate them into masked 51-bit limbs r[0..8], plus one
//     small leftover carry out of r[8] (there being no tenth row to
//     receive it).
//  2. Fold r[5..8] and that leftover back into r[0..4] via the identity
//     2^(51*5) ≡ gamma (mod q): every source limb contributes
//     gammaLow*limb to the row five below it and gammaHigh*limb to the
//     row four below it. Each fold term is accumulated with the same
//     mulAcc carry-tracking used in pass 1 — never a plain "+=" on a
//     value that might already be large — so no intermediate sum needs
//     its own magnitude bound reasoned out by hand.
func (z *Element) Mul(x, y *Element) *Element {
	x0, x1, x2, x3, x4 := x[0], x[1], x[2], x[3], x[4]
	y0, y1, y2, y3, y4 := y[0], y[1], y[2], y[3], y[4]

	l0, h0 := mulAcc(0, 0, x0, y0)

	l1, h1 := mulAcc(0, 0, x0, y1)
	l1, h1 = mulAcc(l1, h1, x1, y0)

	l2, h2 := mulAcc(0, 0, x0, y2)
	l2, h2 = mulAcc(l2, h2, x1, y1)
	l2, h2 = mulAcc(l2, h2, x2, y0)

	l3, h3 := mulAcc(0, 0, x0, y3)
	l3, h3 = mulAcc(l3, h3, x1, y2)
	l3, h3 = mulAcc(l3, h3, x2, y1)
	l3, h3 = mulAcc(l3, h3, x3, y0)

	l4, h4 := mulAcc(0, 0, x0, y4)
	l4, h4 = mulAcc(l4, h4, x1, y3)
	l4, h4 = mulAcc(l4, h4, x2, y2)
	l4, h4 = mulAcc(l4, h4, x3, y1)
	l4, h4 = mulAcc(l4, h4, x4, y0)

	l5, h5 := mulAcc(0, 0, x1, y4)
	l5, h5 = mulAcc(l5, h5, x2, y3)
	l5, h5 = mulAcc(l5, h5, x3, y2)
	l5, h5 = mulAcc(l5, h5, x4, y1)

	l6, h6 := mulAcc(0, 0, x2, y4)
	l6, h6 = mulAcc(l6, h6, x3, y3)
	l6, h6 = mulAcc(l6, h6, x4, y2)

	l7, h7 := mulAcc(0, 0, x3, y4)
	l7, h7 = mulAcc(l7, h7, x4, y3)

	l8, h8 := mulAcc(0, 0, x4, y4)

	// Pass 1: sequential recombine, each row masked before the next row's
	// carry is folded in (so the add can never see two large operands at
	// once — exactly the invariant fp's carryReduce relies on).
	var r [9]uint64
	var carry uint64
	r[0], carry = recombine(l0, h0)
	addCarryInto(&l1, &h1, carry)
	r[1], carry = recombine(l1, h1)
	addCarryInto(&l2, &h2, carry)
	r[2], carry = recombine(l2, h2)
	addCarryInto(&l3, &h3, carry)
	r[3], carry = recombine(l3, h3)
	addCarryInto(&l4, &h4, carry)
	r[4], carry = recombine(l4, h4)
	addCarryInto(&l5, &h5, carry)
	r[5], carry = recombine(l5, h5)
	addCarryInto(&l6, &h6, carry)
	r[6], carry = recombine(l6, h6)
	addCarryInto(&l7, &h7, carry)
	r[7], carry = recombine(l7, h7)
	addCarryInto(&l8, &h8, carry)
	r[8], carry = recombine(l8, h8)
	r9 := carry // leftover above r[8]; small (bounded by a single x4*y4 term)

	// Pass 2: fold r[5..8] and r9 into target rows 0..4, accumulating every
	// contribution through mulAcc so no running sum is ever assumed small.
	t0l, t0h := mulAcc(r[0], 0, r[5], gammaLow)

	t1l, t1h := mulAcc(r[1], 0, r[5], gammaHigh)
	t1l, t1h = mulAcc(t1l, t1h, r[6], gammaLow)

	t2l, t2h := mulAcc(r[2], 0, r[6], gammaHigh)
	t2l, t2h = mulAcc(t2l, t2h, r[7], gammaLow)

	t3l, t3h := mulAcc(r[3], 0, r[7], gammaHigh)
	t3l, t3h = mulAcc(t3l, t3h, r[8], gammaLow)

	t4l, t4h := mulAcc(r[4], 0, r[8], gammaHigh)
	t4l, t4h = mulAcc(t4l, t4h, r9, gammaLow)

	// r9 sits at weight 2^(51*9) ≡ gamma*2^(51*4): gammaLow*r9 lands in row 4
	// (folded above), and gammaHigh*r9 lands at weight 2^(51*9)+51 = 2^255's
	// own multiple of gamma again, i.e. a second gamma-reduction one level
	// up: r9*gammaHigh*gammaLow into row 0, r9*gammaHigh*gammaHigh into row 1.
	// The two constant products (both below 2^27) are formed first so that
	// r9, which exceeds 2^51 for loosely reduced inputs, is never scaled in
	// 64-bit arithmetic before mulAcc widens the product to 128 bits.
	t0l, t0h = mulAcc(t0l, t0h, r9, gammaHigh*gammaLow)
	t1l, t1h = mulAcc(t1l, t1h, r9, gammaHigh*gammaHigh)

	// Final recombine of the target rows into canonical-width limbs.
	var out [5]uint64
	out[0], carry = recombine(t0l, t0h)
	addCarryInto(&t1l, &t1h, carry)
	out[1], carry = recombine(t1l, t1h)
	addCarryInto(&t2l, &t2h, carry)
	out[2], carry = recombine(t2l, t2h)
	addCarryInto(&t3l, &t3h, carry)
	out[3], carry = recombine(t3l, t3h)
	addCarryInto(&t4l, &t4h, carry)
	out[4], carry = recombine(t4l, t4h)

	// Any further leftover is utterly negligible in magnitude by this point
	// (it has passed through the gamma fold twice); add it directly.
	out[0] += carry * gammaLow
	out[1] += carry * gammaHigh
	out[1] += out[0] >> 51
	out[0] &= maskLow51Bits
	out[2] += out[1] >> 51
	out[1] &= maskLow51Bits

	z[0], z[1], z[2], z[3], z[4] = out[0], out[1], out[2], out[3], out[4]
	return z
}

// Square sets z = x*x and returns z. Implemented in terms of Mul: the
// cross-term-doubling fast path fp uses is a pure speed optimization over
// the same arithmetic and is not worth the extra surface to hand-verify
// for a newly derived reduction like this one.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}
