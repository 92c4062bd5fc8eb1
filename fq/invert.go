package fq

// powPublicExponent sets z = x^e for a fixed, public 32-byte big-endian
// exponent e, by square-and-multiply from the top bit down. Because e is a
// compile-time constant, the sequence of squarings and multiplications it
// produces depends only on the positions of e's set bits, never on the
// secret value of x.
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
// (0, false) and leaves z set to zero.
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
// q ≡ 1 (mod 4), so unlike p's direct (p+3)/8 candidate-and-fixup shortcut,
// this runs the general Tonelli-Shanks loop: q-1 = 2^sExponent * t with t
// odd (sExponent == 3 here), c is a fixed element of order 2^sExponent, and
// the loop below repeatedly finds how many more squarings of the running
// residual reach 1, then folds in a power of c to cancel that distance —
// shrinking the order by at least one bit each pass until it reaches 1.
func (z *Element) Sqrt(x *Element) (*Element, bool) {
	if x.IsZero() {
		z.SetZero()
		return z, true
	}

	var c, t, r Element
	c.SetBytes(&tonelliCBytes)
	powPublicExponent(&t, x, &tOddExponentBE)
	powPublicExponent(&r, x, &tPlus1HalfExponentBE)

	mInt := uint64(sExponent)
	for {
		var one Element
		one.SetOne()
		if t.Equal(&one) {
			break
		}

		// Search i in [1, m-1]: tt^(2^m) == 1 always holds (Fermat), so
		// reaching i==m without a hit proves nothing and must not count —
		// only a hit strictly before that signals x is a residue.
		var tt Element
		tt.Set(&t)
		i := uint64(0)
		found := false
		for i < mInt-1 {
			i++
			tt.Square(&tt)
			if tt.Equal(&one) {
				found = true
				break
			}
		}
		if !found {
			*z = r
			return z, false
		}

		var b Element
		b.Set(&c)
		for j := uint64(0); j < mInt-i-1; j++ {
			b.Square(&b)
		}

		var b2 Element
		b2.Square(&b)
		r.Mul(&r, &b)
		t.Mul(&t, &b2)
		c = b2
		mInt = i
	}

	check := Element{}
	check.Square(&r)
	if !check.Equal(x) {
		*z = r
		return z, false
	}
	*z = r
	return z, true
}

// BatchInvert computes the modular inverse of every element of in,
// writing the results to out (which may alias in), using Montgomery's
// trick: one inversion plus 3(n-1) multiplications. Zero elements of in
// produce a zero in the corresponding slot of out.
func BatchInvert(out, in []Element) {
	n := len(in)
	if n == 0 {
		return
	}
	if len(out) != n {
		panic("fq.BatchInvert: out and in must have the same length")
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
