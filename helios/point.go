package helios

import "github.com/gibme-c/helioselene/fp"

// sswuZ is the fixed non-square constant used by the SSWU map-to-curve
// construction for Helios (A = -3, Z = 7).
var sswuZ fp.Element

func init() {
	sswuZ.SetUint64(7)
}

// ToBytes encodes p in compressed form: 32 little-endian bytes holding the
// affine x-coordinate, with bit 255 set to the parity of y. The identity
// encodes as 32 zero bytes.
func ToBytes(p *Jacobian, out *[32]byte) {
	if p.IsIdentity() {
		*out = [32]byte{}
		return
	}
	a := ToAffine(p)
	a.X.Bytes(out)
	if a.Y.IsOdd() {
		out[31] |= 0x80
	}
}

// FromBytes decodes a compressed point. Returns ok = false if the bytes
// are not a valid on-curve encoding; the all-zero encoding (reserved for
// the identity, which has no compressed form) is also rejected.
func FromBytes(in *[32]byte) (Jacobian, bool) {
	var b [32]byte
	copy(b[:], in[:])
	odd := b[31]&0x80 != 0
	b[31] &^= 0x80

	var x fp.Element
	if !x.SetBytes(&b) {
		return Jacobian{}, false
	}

	t := curveEval(&x)

	var y fp.Element
	if _, ok := y.Sqrt(&t); !ok {
		return Jacobian{}, false
	}
	if y.IsOdd() != odd {
		y.Neg(&y)
	}

	a := Affine{X: x, Y: y}
	return FromAffine(&a), true
}

// sgn0 reports the RFC-9380-style sign of a field element: the parity of
// its canonical representative.
func sgn0(x *fp.Element) bool {
	return x.IsOdd()
}

// MapToCurve implements the simplified SSWU map for A = -3, mapping a base
// field element u to a point on the curve. Deterministic, never returns
// the identity for well-formed input.
func MapToCurve(u *fp.Element) Jacobian {
	var negA, negAInv, negB, negBOverA fp.Element
	negA.SetUint64(3) // A = -3, so -A = 3
	negAInv.Invert(&negA)
	negB.Neg(&curveB)
	negBOverA.Mul(&negB, &negAInv)

	var u2, u4, zu2, tv1 fp.Element
	u2.Square(u)
	u4.Square(&u2)
	zu2.Mul(&sswuZ, &u2)
	tv1.Mul(&sswuZ, &sswuZ)
	tv1.Mul(&tv1, &u4)
	tv1.Add(&tv1, &zu2)

	var x1 fp.Element
	if tv1.IsZero() {
		var zTimesA, inv fp.Element
		zTimesA.Mul(&sswuZ, &negA)
		zTimesA.Neg(&zTimesA) // Z*A = -(Z * -A)
		inv.Invert(&zTimesA)
		x1.Mul(&curveB, &inv)
	} else {
		var tv1Inv, onePlusTv1Inv fp.Element
		tv1Inv.Invert(&tv1)
		onePlusTv1Inv.SetOne()
		onePlusTv1Inv.Add(&onePlusTv1Inv, &tv1Inv)
		x1.Mul(&negBOverA, &onePlusTv1Inv)
	}

	gx1 := curveEval(&x1)
	var x2 fp.Element
	x2.Mul(&zu2, &x1)
	gx2 := curveEval(&x2)

	var x, y fp.Element
	if _, ok := y.Sqrt(&gx1); ok {
		x = x1
	} else {
		y.Sqrt(&gx2)
		x = x2
	}

	if sgn0(u) != sgn0(&y) {
		y.Neg(&y)
	}

	a := Affine{X: x, Y: y}
	return FromAffine(&a)
}

// curveEval computes x^3 - 3x + b.
func curveEval(x *fp.Element) fp.Element {
	var x2, x3, threeX, out fp.Element
	x2.Square(x)
	x3.Mul(&x2, x)
	threeX.Add(x, x)
	threeX.Add(&threeX, x)
	out.Sub(&x3, &threeX)
	out.Add(&out, &curveB)
	return out
}

// MapToCurve2 combines two independent map_to_curve evaluations via the
// standard hash-to-curve construction, giving a point indistinguishable
// from uniform for random (u0, u1).
func MapToCurve2(u0, u1 *fp.Element) Jacobian {
	p0 := MapToCurve(u0)
	p1 := MapToCurve(u1)
	return Add(&p0, &p1)
}
