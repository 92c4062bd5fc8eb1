package selene

import "github.com/gibme-c/helioselene/fq"

// Affine is a point in affine coordinates (x, y). The identity has no
// affine representation; callers track it separately or stay in Jacobian.
type Affine struct {
	X, Y fq.Element
}

// Jacobian is a point in Jacobian projective coordinates (X, Y, Z), where
// the affine coordinates are (X/Z^2, Y/Z^3). The identity is encoded by
// Z = 0; X and Y are then unspecified.
type Jacobian struct {
	X, Y, Z fq.Element
}

// curveB is the Selene curve parameter b in y^2 = x^3 - 3x + b.
var curveB fq.Element

// Generator is the base point of the Selene group, of order p.
var (
	Generator         Affine
	GeneratorJacobian Jacobian
)

func init() {
	curveB.SetUint64(7)

	gx := [32]byte{
		0xd5, 0x01, 0x6a, 0xfd, 0x4a, 0x81, 0x5a, 0xff,
		0x4f, 0xeb, 0x57, 0x0a, 0xd4, 0xfa, 0x95, 0x02,
		0xb5, 0x7e, 0xa5, 0x40, 0xad, 0x5f, 0x29, 0x50,
		0xeb, 0x57, 0x0a, 0xd4, 0xfa, 0x95, 0x02, 0x15,
	}
	gy := [32]byte{
		0xd7, 0x13, 0xf1, 0x55, 0x94, 0xde, 0x98, 0x26,
		0xa4, 0x56, 0x63, 0x79, 0x35, 0xe5, 0xb0, 0x79,
		0xdf, 0x7d, 0x73, 0xba, 0x49, 0xc5, 0xc1, 0x17,
		0xb9, 0x3d, 0x77, 0x50, 0x18, 0x8c, 0xe1, 0x1c,
	}
	if !Generator.X.SetBytes(&gx) {
		panic("selene: generator x out of range")
	}
	if !Generator.Y.SetBytes(&gy) {
		panic("selene: generator y out of range")
	}
	if !IsOnCurve(&Generator) {
		panic("selene: generator is not on curve")
	}
	GeneratorJacobian = FromAffine(&Generator)
}

// Identity returns the point at infinity.
func Identity() Jacobian {
	var z Jacobian
	z.Y.SetOne()
	return z
}

// IsIdentity reports whether p is the point at infinity.
func (p *Jacobian) IsIdentity() bool {
	return p.Z.IsZero()
}

// FromAffine lifts an affine point into Jacobian coordinates with Z = 1.
func FromAffine(a *Affine) Jacobian {
	var p Jacobian
	p.X = a.X
	p.Y = a.Y
	p.Z.SetOne()
	return p
}

// IsOnCurve reports whether a satisfies y^2 = x^3 - 3x + b.
func IsOnCurve(a *Affine) bool {
	var lhs fq.Element
	lhs.Square(&a.Y)
	rhs := curveEval(&a.X)
	return lhs.Equal(&rhs)
}

// Neg returns the negation of p (mirror across the x-axis).
func Neg(p *Jacobian) Jacobian {
	var r Jacobian
	r.X = p.X
	r.Y.Neg(&p.Y)
	r.Z = p.Z
	return r
}

// Dbl computes 2*p in Jacobian coordinates using the standard a = -3
// doubling formula (dbl-2001-b). Complete for the identity: every term
// that would otherwise depend on p's affine coordinates carries a factor
// of Z, so r.Z collapses to zero right along with p.Z.
func Dbl(p *Jacobian) Jacobian {
	var r Jacobian
	var delta, gamma, beta, alpha fq.Element
	var t1, t2, t3 fq.Element

	delta.Square(&p.Z)
	gamma.Square(&p.Y)
	beta.Mul(&p.X, &gamma)

	t1.Sub(&p.X, &delta)
	t2.Add(&p.X, &delta)
	alpha.Mul(&t1, &t2)
	t3.Add(&alpha, &alpha)
	alpha.Add(&alpha, &t3) // alpha = 3*(X-delta)*(X+delta)

	var beta8 fq.Element
	beta8.Add(&beta, &beta)
	beta8.Add(&beta8, &beta8)
	beta8.Add(&beta8, &beta8)
	r.X.Square(&alpha)
	r.X.Sub(&r.X, &beta8)

	var yPlusZ fq.Element
	yPlusZ.Add(&p.Y, &p.Z)
	r.Z.Square(&yPlusZ)
	r.Z.Sub(&r.Z, &gamma)
	r.Z.Sub(&r.Z, &delta)

	var beta4, inner, gamma2, gamma8 fq.Element
	beta4.Add(&beta, &beta)
	beta4.Add(&beta4, &beta4)
	inner.Sub(&beta4, &r.X)
	r.Y.Mul(&alpha, &inner)
	gamma2.Square(&gamma)
	gamma8.Add(&gamma2, &gamma2)
	gamma8.Add(&gamma8, &gamma8)
	gamma8.Add(&gamma8, &gamma8)
	r.Y.Sub(&r.Y, &gamma8)

	return r
}

// addIncomplete computes p+q via add-2007-bl. Undefined when p == q,
// p == -q, or either input is the identity; Add below guards those cases.
func addIncomplete(p, q *Jacobian) Jacobian {
	var r Jacobian
	var z1z1, z2z2, u1, u2, s1, s2, h, i, j, rr, v fq.Element

	z1z1.Square(&p.Z)
	z2z2.Square(&q.Z)
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&q.X, &z1z1)
	s1.Mul(&p.Y, &q.Z)
	s1.Mul(&s1, &z2z2)
	s2.Mul(&q.Y, &p.Z)
	s2.Mul(&s2, &z1z1)

	h.Sub(&u2, &u1)
	var h2 fq.Element
	h2.Add(&h, &h)
	i.Square(&h2)
	j.Mul(&h, &i)
	rr.Sub(&s2, &s1)
	rr.Add(&rr, &rr)
	v.Mul(&u1, &i)

	r.X.Square(&rr)
	r.X.Sub(&r.X, &j)
	var v2 fq.Element
	v2.Add(&v, &v)
	r.X.Sub(&r.X, &v2)

	var vMinusX3, s1j2 fq.Element
	vMinusX3.Sub(&v, &r.X)
	r.Y.Mul(&rr, &vMinusX3)
	s1j2.Mul(&s1, &j)
	s1j2.Add(&s1j2, &s1j2)
	r.Y.Sub(&r.Y, &s1j2)

	var zSum fq.Element
	zSum.Add(&p.Z, &q.Z)
	r.Z.Square(&zSum)
	r.Z.Sub(&r.Z, &z1z1)
	r.Z.Sub(&r.Z, &z2z2)
	r.Z.Mul(&r.Z, &h)

	return r
}

// maddIncomplete computes p+q via madd-2007-bl, where q is affine (Z=1
// implicitly). Same incompleteness as addIncomplete.
func maddIncomplete(p *Jacobian, q *Affine) Jacobian {
	var r Jacobian
	var z1z1, u2, s2, h, hh, i, j, rr, v fq.Element

	z1z1.Square(&p.Z)
	u2.Mul(&q.X, &z1z1)
	s2.Mul(&q.Y, &p.Z)
	s2.Mul(&s2, &z1z1)

	h.Sub(&u2, &p.X)
	hh.Square(&h)
	i.Add(&hh, &hh)
	i.Add(&i, &i)
	j.Mul(&h, &i)
	rr.Sub(&s2, &p.Y)
	rr.Add(&rr, &rr)
	v.Mul(&p.X, &i)

	r.X.Square(&rr)
	r.X.Sub(&r.X, &j)
	var v2 fq.Element
	v2.Add(&v, &v)
	r.X.Sub(&r.X, &v2)

	var vMinusX3, y1j2 fq.Element
	vMinusX3.Sub(&v, &r.X)
	r.Y.Mul(&rr, &vMinusX3)
	y1j2.Mul(&p.Y, &j)
	y1j2.Add(&y1j2, &y1j2)
	r.Y.Sub(&r.Y, &y1j2)

	var zPlusH fq.Element
	zPlusH.Add(&p.Z, &h)
	r.Z.Square(&zPlusH)
	r.Z.Sub(&r.Z, &z1z1)
	r.Z.Sub(&r.Z, &hh)

	return r
}

// equalAffine reports whether the affine coordinates of p and q coincide,
// assuming neither is the identity.
func equalAffine(p, q *Jacobian) (sameX, sameY bool) {
	var z1z1, z2z2, u1, u2, z1z1z1, z2z2z2, s1, s2 fq.Element
	z1z1.Square(&p.Z)
	z2z2.Square(&q.Z)
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&q.X, &z1z1)
	z1z1z1.Mul(&z1z1, &p.Z)
	z2z2z2.Mul(&z2z2, &q.Z)
	s1.Mul(&p.Y, &z2z2z2)
	s2.Mul(&q.Y, &z1z1z1)
	return u1.Equal(&u2), s1.Equal(&s2)
}

// Add computes p+q, handling the identity, equal, and negated-point cases
// that the incomplete addIncomplete formula leaves undefined.
func Add(p, q *Jacobian) Jacobian {
	if p.IsIdentity() {
		return *q
	}
	if q.IsIdentity() {
		return *p
	}
	sameX, sameY := equalAffine(p, q)
	if sameX {
		if sameY {
			return Dbl(p)
		}
		return Identity()
	}
	return addIncomplete(p, q)
}

// Madd computes p+q where q is affine, handling the same corner cases as
// Add.
func Madd(p *Jacobian, q *Affine) Jacobian {
	if p.IsIdentity() {
		return FromAffine(q)
	}
	qj := FromAffine(q)
	sameX, sameY := equalAffine(p, &qj)
	if sameX {
		if sameY {
			return Dbl(p)
		}
		return Identity()
	}
	return maddIncomplete(p, q)
}

// ToAffine converts p to affine coordinates via one field inversion.
// Undefined (returns the zero affine point) when p is the identity.
func ToAffine(p *Jacobian) Affine {
	var a Affine
	if p.IsIdentity() {
		return a
	}
	var zInv, zInv2, zInv3 fq.Element
	zInv.Invert(&p.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	a.X.Mul(&p.X, &zInv2)
	a.Y.Mul(&p.Y, &zInv3)
	return a
}

// BatchToAffine converts many Jacobian points to affine using Montgomery's
// trick: one inversion plus 3(n-1) multiplications instead of n
// inversions. Identity inputs are emitted as the zero affine point and are
// excluded from the shared product chain.
func BatchToAffine(points []Jacobian) []Affine {
	n := len(points)
	out := make([]Affine, n)
	if n == 0 {
		return out
	}

	zs := make([]fq.Element, n)
	for i := range points {
		if points[i].IsIdentity() {
			zs[i].SetOne()
		} else {
			zs[i] = points[i].Z
		}
	}

	zInvs := make([]fq.Element, n)
	fq.BatchInvert(zInvs, zs)

	for i := range points {
		if points[i].IsIdentity() {
			continue
		}
		var zInv2, zInv3 fq.Element
		zInv2.Square(&zInvs[i])
		zInv3.Mul(&zInv2, &zInvs[i])
		out[i].X.Mul(&points[i].X, &zInv2)
		out[i].Y.Mul(&points[i].Y, &zInv3)
	}
	return out
}
