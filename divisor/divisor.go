// Package divisor builds EC-divisor witnesses: for a set of affine curve
// points, the pair of polynomials (a, b) such that D(x,y) = a(x) - y*b(x)
// vanishes at every point in the set. Parameterized the same way package
// poly is, so one instantiation serves Helios's F_p and Selene's F_q.
package divisor

import "github.com/gibme-c/helioselene/poly"

// Divisor is the pair (a, b) defining D(x,y) = a(x) - y*b(x).
type Divisor[T any, PT poly.Element[T]] struct {
	A poly.Polynomial[T, PT]
	B poly.Polynomial[T, PT]
}

// FromPoints builds the direct Lagrange-form divisor for points
// {(xs[i], ys[i])}: b interpolates the y-coordinates, a interpolates the
// y^2 values, so D(x_i, y_i) = y_i^2 - y_i*y_i = 0 at every input point.
// batchInvert is supplied by the caller (fp.BatchInvert or fq.BatchInvert)
// and passed to both poly.Interpolate calls; each call computes and
// batch-inverts its own barycentric weights, the way poly.Interpolate
// documents, so the weights are not shared between the two.
//
// An empty point set returns the zero divisor (a = b = 0), matching the
// degenerate case of the Lagrange-form construction this is grounded on.
func FromPoints[T any, PT poly.Element[T]](xs, ys []T, batchInvert func(out, in []T)) Divisor[T, PT] {
	if len(xs) == 0 {
		return zeroDivisor[T, PT]()
	}

	ySquares := make([]T, len(ys))
	for i := range ys {
		PT(&ySquares[i]).Square(&ys[i])
	}

	b := poly.Interpolate[T, PT](xs, ys, batchInvert)
	a := poly.Interpolate[T, PT](xs, ySquares, batchInvert)
	return Divisor[T, PT]{A: a, B: b}
}

func zeroDivisor[T any, PT poly.Element[T]]() Divisor[T, PT] {
	var zero T
	PT(&zero).SetZero()
	return Divisor[T, PT]{
		A: poly.FromCoefficients[T, PT]([]T{zero}),
		B: poly.FromCoefficients[T, PT]([]T{zero}),
	}
}

// Evaluate computes D(x,y) = a(x) - y*b(x) via Horner on each polynomial.
func Evaluate[T any, PT poly.Element[T]](d Divisor[T, PT], x, y *T) T {
	ax := poly.Eval[T, PT](d.A, x)
	bx := poly.Eval[T, PT](d.B, x)

	var yb, result T
	PT(&yb).Mul(y, &bx)
	PT(&result).Sub(&ax, &yb)
	return result
}

// Mul combines two divisors into one vanishing on the union of their zero
// sets. Expanding (a1 - y*b1)(a2 - y*b2) gives
// a1*a2 - y*(a1*b2 + a2*b1) + y^2*b1*b2; substituting y^2 = curveRHS(x)
// (valid for any (x,y) actually on the curve, since curveRHS is the
// curve's own x^3 - 3x + b right-hand side as a degree-3 polynomial) folds
// the y^2 term back into an x-only polynomial, giving a combined (a, b) of
// the same D(x,y) = a(x) - y*b(x) shape whose zero set is the union of the
// two inputs'. Degree grows additively rather than staying at the tight
// n-1 bound a partial-sum-aware merge would reach - see DESIGN.md for why
// the tighter construction isn't implemented here.
func Mul[T any, PT poly.Element[T]](d1, d2 Divisor[T, PT], curveRHS poly.Polynomial[T, PT]) Divisor[T, PT] {
	a1a2 := poly.Mul[T, PT](d1.A, d2.A)
	b1b2 := poly.Mul[T, PT](d1.B, d2.B)
	b1b2f := poly.Mul[T, PT](b1b2, curveRHS)
	a := poly.Add[T, PT](a1a2, b1b2f)

	a1b2 := poly.Mul[T, PT](d1.A, d2.B)
	a2b1 := poly.Mul[T, PT](d2.A, d1.B)
	b := poly.Add[T, PT](a1b2, a2b1)

	return Divisor[T, PT]{A: a, B: b}
}

// TreeReduce combines the per-point leaf divisors for {(xs[i], ys[i])}
// into one divisor vanishing on all of them, via a balanced pairwise
// reduction using Mul. Each leaf is the trivial single-point divisor
// FromPoints would produce for n=1 (a = y_i^2, b = y_i): D(x_i,y_i) =
// y_i^2 - y_i*y_i = 0 regardless of x, by construction. curveRHS is the
// curve's x^3 - 3x + b right-hand side as a degree-3 polynomial, needed by
// every Mul step along the tree.
func TreeReduce[T any, PT poly.Element[T]](xs, ys []T, curveRHS poly.Polynomial[T, PT]) Divisor[T, PT] {
	if len(xs) == 0 {
		return zeroDivisor[T, PT]()
	}

	level := make([]Divisor[T, PT], len(xs))
	for i := range xs {
		var ySq T
		PT(&ySq).Square(&ys[i])
		level[i] = Divisor[T, PT]{
			A: poly.FromCoefficients[T, PT]([]T{ySq}),
			B: poly.FromCoefficients[T, PT]([]T{ys[i]}),
		}
	}

	for len(level) > 1 {
		next := make([]Divisor[T, PT], 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, Mul[T, PT](level[i], level[i+1], curveRHS))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}
