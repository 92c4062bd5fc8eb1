// Package poly implements polynomial arithmetic generically over any field
// element type exposing the method set fp.Element and fq.Element both
// provide (add/sub/mul/square/invert/equal/zero-one constructors). A single
// Polynomial[T, PT] instantiation serves both Helios's base field and
// Selene's, instead of hand-duplicating the logic per field.
package poly

// Element constrains a field element type T, via its pointer type PT, to
// the arithmetic surface poly needs. fp.Element and fq.Element both satisfy
// this through their existing method sets.
type Element[T any] interface {
	*T
	Add(x, y *T) *T
	Sub(x, y *T) *T
	Mul(x, y *T) *T
	Square(x *T) *T
	Neg(x *T) *T
	Invert(x *T) (*T, bool)
	Equal(x *T) bool
	IsZero() bool
	SetZero() *T
	SetOne() *T
	Set(x *T) *T
}

// Polynomial holds coefficients in ascending order of degree: Coeffs[0] is
// the constant term. A well-formed (normalized) polynomial never carries a
// trailing zero coefficient except for the zero polynomial, which is
// represented as a single zero coefficient.
type Polynomial[T any, PT Element[T]] struct {
	Coeffs []T
}

// FromCoefficients builds a Polynomial from coefficients in ascending
// order, normalizing away any trailing zeros.
func FromCoefficients[T any, PT Element[T]](coeffs []T) Polynomial[T, PT] {
	p := Polynomial[T, PT]{Coeffs: append([]T(nil), coeffs...)}
	p.normalize()
	return p
}

func (p *Polynomial[T, PT]) normalize() {
	n := len(p.Coeffs)
	for n > 1 {
		var lead T
		PT(&lead).Set(&p.Coeffs[n-1])
		if !PT(&lead).IsZero() {
			break
		}
		n--
	}
	p.Coeffs = p.Coeffs[:n]
	if len(p.Coeffs) == 0 {
		var zero T
		PT(&zero).SetZero()
		p.Coeffs = []T{zero}
	}
}

// Degree returns len(Coeffs)-1, i.e. 0 for the zero polynomial.
func (p *Polynomial[T, PT]) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial[T, PT]) IsZero() bool {
	return len(p.Coeffs) == 1 && PT(&p.Coeffs[0]).IsZero()
}

// FromRoots builds the monic polynomial ∏(x - roots[i]).
func FromRoots[T any, PT Element[T]](roots []T) Polynomial[T, PT] {
	one := oneOf[T, PT]()
	result := Polynomial[T, PT]{Coeffs: []T{one}}
	for i := range roots {
		var negRoot, linear0, linear1 T
		PT(&negRoot).Neg(&roots[i])
		PT(&linear0).Set(&negRoot)
		PT(&linear1).SetOne()
		linear := Polynomial[T, PT]{Coeffs: []T{linear0, linear1}}
		result = Mul[T, PT](result, linear)
	}
	return result
}

func zeroOf[T any, PT Element[T]]() T {
	var z T
	PT(&z).SetZero()
	return z
}

func oneOf[T any, PT Element[T]]() T {
	var o T
	PT(&o).SetOne()
	return o
}

// Eval evaluates p at x via Horner's method.
func Eval[T any, PT Element[T]](p Polynomial[T, PT], x *T) T {
	acc := zeroOf[T, PT]()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		PT(&acc).Mul(&acc, x)
		PT(&acc).Add(&acc, &p.Coeffs[i])
	}
	return acc
}

func coeffAt[T any, PT Element[T]](p Polynomial[T, PT], i int) T {
	if i < len(p.Coeffs) {
		return p.Coeffs[i]
	}
	return zeroOf[T, PT]()
}

// Add returns a+b.
func Add[T any, PT Element[T]](a, b Polynomial[T, PT]) Polynomial[T, PT] {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		ai := coeffAt[T, PT](a, i)
		bi := coeffAt[T, PT](b, i)
		PT(&out[i]).Add(&ai, &bi)
	}
	return FromCoefficients[T, PT](out)
}

// Sub returns a-b.
func Sub[T any, PT Element[T]](a, b Polynomial[T, PT]) Polynomial[T, PT] {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		ai := coeffAt[T, PT](a, i)
		bi := coeffAt[T, PT](b, i)
		PT(&out[i]).Sub(&ai, &bi)
	}
	return FromCoefficients[T, PT](out)
}

// Multiplication strategy threshold: when both operands have at least
// kSchoolbook coefficients, Karatsuba (whether or not their lengths
// match); when either has fewer, schoolbook O(n*m) multiplication.
const kSchoolbook = 32

// Mul returns a*b, dispatching between schoolbook and Karatsuba by operand
// size. Callers wanting the ECFFT path for very large operands go through
// package ecfft's Multiply instead, which falls back to this Mul when no
// ECFFT context is available.
func Mul[T any, PT Element[T]](a, b Polynomial[T, PT]) Polynomial[T, PT] {
	if a.IsZero() || b.IsZero() {
		return FromCoefficients[T, PT]([]T{zeroOf[T, PT]()})
	}
	if len(a.Coeffs) >= kSchoolbook && len(b.Coeffs) >= kSchoolbook {
		return karatsuba[T, PT](a, b)
	}
	return schoolbookMul[T, PT](a, b)
}

func schoolbookMul[T any, PT Element[T]](a, b Polynomial[T, PT]) Polynomial[T, PT] {
	out := make([]T, len(a.Coeffs)+len(b.Coeffs)-1)
	for i := range out {
		PT(&out[i]).SetZero()
	}
	for i, ai := range a.Coeffs {
		if PT(&ai).IsZero() {
			continue
		}
		for j, bj := range b.Coeffs {
			var term T
			PT(&term).Mul(&ai, &bj)
			PT(&out[i+j]).Add(&out[i+j], &term)
		}
	}
	return FromCoefficients[T, PT](out)
}

// karatsuba recursively splits each operand at n/2 and recombines three
// half-size products. Operands of different lengths are handled by
// indexing past the shorter one's end (coeffAt returns zero), without
// allocating padding.
func karatsuba[T any, PT Element[T]](a, b Polynomial[T, PT]) Polynomial[T, PT] {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	if n < kSchoolbook {
		return schoolbookMul[T, PT](a, b)
	}
	half := (n + 1) / 2

	aLo, aHi := splitAt[T, PT](a, half)
	bLo, bHi := splitAt[T, PT](b, half)

	loProd := karatsuba[T, PT](aLo, bLo)
	hiProd := karatsuba[T, PT](aHi, bHi)

	aSum := Add[T, PT](aLo, aHi)
	bSum := Add[T, PT](bLo, bHi)
	midProd := karatsuba[T, PT](aSum, bSum)
	mid := Sub[T, PT](Sub[T, PT](midProd, loProd), hiProd)

	out := make([]T, len(a.Coeffs)+len(b.Coeffs)-1)
	for i := range out {
		PT(&out[i]).SetZero()
	}
	addShifted[T, PT](out, loProd, 0)
	addShifted[T, PT](out, mid, half)
	addShifted[T, PT](out, hiProd, 2*half)
	return FromCoefficients[T, PT](out)
}

func splitAt[T any, PT Element[T]](p Polynomial[T, PT], at int) (lo, hi Polynomial[T, PT]) {
	loCoeffs := make([]T, at)
	for i := 0; i < at; i++ {
		loCoeffs[i] = coeffAt[T, PT](p, i)
	}
	var hiCoeffs []T
	for i := at; i < len(p.Coeffs); i++ {
		hiCoeffs = append(hiCoeffs, p.Coeffs[i])
	}
	if len(hiCoeffs) == 0 {
		hiCoeffs = []T{zeroOf[T, PT]()}
	}
	return FromCoefficients[T, PT](loCoeffs), FromCoefficients[T, PT](hiCoeffs)
}

func addShifted[T any, PT Element[T]](out []T, p Polynomial[T, PT], shift int) {
	for i, c := range p.Coeffs {
		if PT(&c).IsZero() {
			continue
		}
		PT(&out[shift+i]).Add(&out[shift+i], &c)
	}
}

// DivMod divides a by b (deg(b) >= 0, b != 0), returning quotient and
// remainder such that a = q*b + r with deg(r) < deg(b). Panics if b is the
// zero polynomial: dividing by zero is a caller contract violation, not a
// runtime condition this library recovers from.
func DivMod[T any, PT Element[T]](a, b Polynomial[T, PT]) (quot, rem Polynomial[T, PT]) {
	if b.IsZero() {
		panic("poly: division by zero polynomial")
	}
	remCoeffs := append([]T(nil), a.Coeffs...)
	bDeg := b.Degree()
	var leadInv T
	if _, ok := PT(&leadInv).Invert(&b.Coeffs[bDeg]); !ok {
		panic("poly: divisor leading coefficient is zero after normalization")
	}

	aDeg := a.Degree()
	if aDeg < bDeg {
		quot = FromCoefficients[T, PT]([]T{zeroOf[T, PT]()})
		rem = FromCoefficients[T, PT](remCoeffs)
		return quot, rem
	}

	quotCoeffs := make([]T, aDeg-bDeg+1)
	for i := range quotCoeffs {
		PT(&quotCoeffs[i]).SetZero()
	}

	for deg := aDeg; deg >= bDeg; deg-- {
		var coeff T
		PT(&coeff).Set(&remCoeffs[deg])
		if PT(&coeff).IsZero() {
			continue
		}
		var c T
		PT(&c).Mul(&coeff, &leadInv)
		quotCoeffs[deg-bDeg] = c
		for j := 0; j <= bDeg; j++ {
			var term T
			PT(&term).Mul(&c, &b.Coeffs[j])
			PT(&remCoeffs[deg-bDeg+j]).Sub(&remCoeffs[deg-bDeg+j], &term)
		}
	}

	quot = FromCoefficients[T, PT](quotCoeffs)
	rem = FromCoefficients[T, PT](remCoeffs[:bDeg])
	return quot, rem
}

// divLinear divides p by the monic linear factor (x - c) via synthetic
// division, returning the quotient only; used by FromRoots's sibling
// Interpolate for building each L_i(x) = v(x)/(x-x_i).
func divLinear[T any, PT Element[T]](p Polynomial[T, PT], c *T) Polynomial[T, PT] {
	n := len(p.Coeffs)
	out := make([]T, n-1)
	var carry T
	PT(&carry).SetZero()
	for i := n - 1; i >= 1; i-- {
		PT(&out[i-1]).Set(&p.Coeffs[i])
		PT(&out[i-1]).Add(&out[i-1], &carry)
		var next T
		PT(&next).Mul(&out[i-1], c)
		carry = next
	}
	return FromCoefficients[T, PT](out)
}

// Interpolate builds the unique degree-(n-1) polynomial through the n
// points (xs[i], ys[i]) via Lagrange interpolation: the vanishing
// polynomial v(x) = ∏(x-x_i), synthetic division for each L_i(x) =
// v(x)/(x-x_i), barycentric weights w_i = ∏_{j≠i}(x_i-x_j), and a single
// batch inversion over {w_i}. batchInvert is supplied by the caller
// (fp.BatchInvert or fq.BatchInvert) since poly has no field package of
// its own to call it from.
func Interpolate[T any, PT Element[T]](xs, ys []T, batchInvert func(out, in []T)) Polynomial[T, PT] {
	n := len(xs)
	if n == 0 {
		return FromCoefficients[T, PT]([]T{zeroOf[T, PT]()})
	}

	v := FromRoots[T, PT](xs)
	weights := make([]T, n)
	for i := 0; i < n; i++ {
		w := oneOf[T, PT]()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var diff T
			PT(&diff).Sub(&xs[i], &xs[j])
			PT(&w).Mul(&w, &diff)
		}
		weights[i] = w
	}

	invWeights := make([]T, n)
	batchInvert(invWeights, weights)

	acc := FromCoefficients[T, PT]([]T{zeroOf[T, PT]()})
	for i := 0; i < n; i++ {
		li := divLinear[T, PT](v, &xs[i])
		var scale T
		PT(&scale).Mul(&ys[i], &invWeights[i])
		scaled := make([]T, len(li.Coeffs))
		for j, c := range li.Coeffs {
			PT(&scaled[j]).Mul(&c, &scale)
		}
		acc = Add[T, PT](acc, FromCoefficients[T, PT](scaled))
	}
	return acc
}
