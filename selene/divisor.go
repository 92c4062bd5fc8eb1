package selene

import (
	"github.com/gibme-c/helioselene/divisor"
	"github.com/gibme-c/helioselene/fq"
	"github.com/gibme-c/helioselene/poly"
)

// DivisorT is the divisor type for points on the Selene curve: polynomials
// over F_q, the field Selene's own coordinates live in.
type DivisorT = divisor.Divisor[fq.Element, *fq.Element]

// curveRHSPoly returns x^3 - 3x + b as a degree-3 polynomial over F_q, the
// form divisor.Mul/divisor.TreeReduce need to fold a y^2 term back into an
// x-only polynomial.
func curveRHSPoly() poly.Polynomial[fq.Element, *fq.Element] {
	var negThree, zero, one fq.Element
	one.SetOne()
	negThree.SetUint64(3)
	negThree.Neg(&negThree)
	zero.SetZero()
	return poly.FromCoefficients[fq.Element, *fq.Element]([]fq.Element{curveB, negThree, zero, one})
}

// ComputeDivisor builds the Lagrange-form divisor vanishing at every point
// in points, via the direct construction (batch-inverted barycentric
// weights, computed separately for the a(x) and b(x) interpolations).
func ComputeDivisor(points []Affine) DivisorT {
	xs := make([]fq.Element, len(points))
	ys := make([]fq.Element, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return divisor.FromPoints[fq.Element, *fq.Element](xs, ys, fq.BatchInvert)
}

// EvaluateDivisor computes D(x,y) = a(x) - y*b(x).
func EvaluateDivisor(d DivisorT, x, y *fq.Element) fq.Element {
	return divisor.Evaluate[fq.Element, *fq.Element](d, x, y)
}

// scalarMulDivisorChainLen is the number of doubling-chain points used by
// ScalarMulDivisor, matching the field's bit length (the FCMP++ workload's
// n = ceil(log2 scalar) is essentially this for a uniformly random scalar).
const scalarMulDivisorChainLen = 255

// ScalarMulDivisor produces a divisor whose vanishing set is the doubling
// chain P, 2P, 4P, ..., 2^(n-1)P - the witness the FCMP++ "scalar-mul
// divisor" primitive needs to later prove k*P was computed correctly. The
// chain is built once, converted to affine in a single batch (one
// inversion shared across every point via BatchToAffine), then folded into
// one combined divisor with TreeReduce.
func ScalarMulDivisor(p *Jacobian) DivisorT {
	chain := make([]Jacobian, scalarMulDivisorChainLen)
	chain[0] = *p
	for i := 1; i < scalarMulDivisorChainLen; i++ {
		d := Dbl(&chain[i-1])
		chain[i] = d
	}

	affine := BatchToAffine(chain)
	xs := make([]fq.Element, len(affine))
	ys := make([]fq.Element, len(affine))
	for i, a := range affine {
		xs[i] = a.X
		ys[i] = a.Y
	}
	return divisor.TreeReduce[fq.Element, *fq.Element](xs, ys, curveRHSPoly())
}

// TreeReduceDivisor folds every point's trivial leaf divisor up a
// balanced tree into one combined witness vanishing on all of points, via
// divisor.TreeReduce directly (no doubling chain involved, unlike
// ScalarMulDivisor).
func TreeReduceDivisor(points []Affine) DivisorT {
	xs := make([]fq.Element, len(points))
	ys := make([]fq.Element, len(points))
	for i, a := range points {
		xs[i] = a.X
		ys[i] = a.Y
	}
	return divisor.TreeReduce[fq.Element, *fq.Element](xs, ys, curveRHSPoly())
}
