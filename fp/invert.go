package fp

// powPublicExponent sets z = x^e for a fixed, public 32-byte big-endian
// exponent e, by square-and-multiply from the top bit down. Because e is a
// compile-time constant (p-2 or (p+3)/8), the sequence of squarings and
// multiplications it produces depends only on the positions of e's set
// bits, never on the secret value of x: every call takes the same path
// through the ladder regardless of which field element is being inverted
// or square-rooted.
func powPublicExponent(z, x *Element, e *[32]byte) {
	var acc Element
	acc.SetOne()
	started := false
	for i := 0; i < 32; i++ {
		byt := e[i]
		for bit := 7; bit >= 0; bit-- {
			if started {
				acc.Square(&acc)
			}
			if byt&(1<<uint(bit)) != 0 {
				if !started {
					acc.Set(x)
					started = true
				} else {
					acc.Mul(&acc, x)
				}
			}
		}
	}
	if !started {
		acc.SetOne()
	}
	*z = acc
}

// Invert sets z = x^-1 and returns (z, true); if x is zero it returns
// (0, false) and leaves z set to zero. Constant-time: the ladder above is
// exponent-driven, not value-driven, and the zero-check at the end only
// decides the boolean result, not the computation performed.
func (z *Element) Invert(x *Element) (*Element, bool) {
	var r Element
	powPublicExponent(&r, x, &invertExponentBE)
	isZero := x.IsZero()
	var zero Element
	r.CMov(&zero, boolToInt(isZero))
	*z = r
	return z, !isZero
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Sqrt sets z to a square root of x, if one exists, and returns (z, true).
// If x is not a quadratic residue, returns (z, false) with z left at an
// undefined (but deterministic) value — callers must check ok.
//
// p ≡ 5 (mod 8): the candidate r = x^((p+3)/8) satisfies r² = ±x. If
// r² = -x, multiplying r by the fixed primitive 4th root of -1 fixes it up.
func (z *Element) Sqrt(x *Element) (*Element, bool) {
	var r, check, negX, sqrtM1 Element
	powPublicExponent(&r, x, &sqrtExponentBE)

	check.Square(&r)
	if check.Equal(x) {
		*z = r
		return z, true
	}

	negX.Neg(x)
	if check.Equal(&negX) {
		sqrtM1.SetBytes(&sqrtMinus1Bytes)
		r.Mul(&r, &sqrtM1)
		*z = r
		return z, true
	}

	*z = r
	return z, false
}

// BatchInvert computes the modular inverse of every element of in,
// writing the results to out (which may alias in), using Montgomery's
// trick: one inversion plus 3(n-1) multiplications. Zero elements of in
// produce a zero in the corresponding slot of out; the zero is substituted
// with one before joining the running product and the output is patched
// back to zero afterward, so the trick degrades gracefully instead of
// propagating a zero through every subsequent slot.
func BatchInvert(out, in []Element) {
	n := len(in)
	if n == 0 {
		return
	}
	if len(out) != n {
		panic("fp.BatchInvert: out and in must have the same length")
	}

	isZero := make([]bool, n)
	vals := make([]Element, n)
	for i := range in {
		if in[i].IsZero() {
			isZero[i] = true
			vals[i] = One
		} else {
			vals[i] = in[i]
		}
	}

	c := make([]Element, n)
	c[0] = vals[0]
	for i := 1; i < n; i++ {
		c[i].Mul(&c[i-1], &vals[i])
	}

	var u Element
	u.Invert(&c[n-1])

	for i := n - 1; i >= 1; i-- {
		out[i].Mul(&u, &c[i-1])
		u.Mul(&u, &vals[i])
	}
	out[0] = u

	for i := 0; i < n; i++ {
		if isZero[i] {
			out[i] = Zero
		}
	}
}
