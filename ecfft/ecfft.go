// Package ecfft provides the optional elliptic-curve-FFT polynomial
// multiplication path named in the library's component design: a gated
// fast path that falls back to Karatsuba (package poly) whenever no
// context has been initialized for a given field.
//
// A genuine ECFFT needs a curve over the target field with a smooth-order
// 2-isogeny chain down to a size-2^k coset — the construction is only as
// fast as the chain is deep. This library's Helios/Selene moduli are
// self-derived stand-ins (see DESIGN.md), not parameters chosen for that
// property, and neither field's multiplicative group has the 2-adic
// valuation (order-2^k subgroup size) a transform of any useful size would
// need: both are single-digit, nowhere near the Layer 7 threshold. Rather
// than fabricate a chain that doesn't exist, Init reports that honestly
// and the gated Multiply path below degrades to Karatsuba unconditionally
// — exactly the fallback behavior the component design specifies for an
// uninitialized context.
package ecfft

import (
	"github.com/gibme-c/helioselene/poly"
)

// Context holds one field's isogeny-chain precomputation: per-level
// 2:1 map coefficients and the coset sample set, indexed by level
// 0..log2(domainSize)-1.
type Context[T any, PT poly.Element[T]] struct {
	domainSize int
	levels     [][]T
	valid      bool
}

// modulusMinusOneValuation2 returns the 2-adic valuation of modulus-1,
// i.e. how large a power-of-two multiplicative subgroup the field admits.
// It is the first thing any attempt to build a smooth evaluation domain
// must check.
func modulusMinusOneValuation2[T any, PT poly.Element[T]](modulusMinusOne func() []byte) int {
	b := modulusMinusOne()
	v := 0
	for _, by := range b {
		if by == 0 {
			v += 8
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if by&(1<<uint(bit)) != 0 {
				return v + bit
			}
		}
	}
	return v
}

// minDomainValuation is the 2-adic valuation needed to reach the smallest
// domain size (kECFFT, below) ECFFT would ever be asked for.
const minDomainValuation = 10 // 2^10 = 1024 = kECFFT

// Init attempts to build a Context for a field whose modulus-minus-one has
// 2-adic valuation reported by modulusMinusOneValuation2. It returns
// ok = false, leaving the context unusable, whenever the field cannot
// support a domain as large as this package's ECFFT threshold (kECFFT) — which is
// always true for Helios and Selene's self-derived moduli (see the
// package doc comment).
func Init[T any, PT poly.Element[T]](modulusMinusOne func() []byte) (*Context[T, PT], bool) {
	if modulusMinusOneValuation2[T, PT](modulusMinusOne) < minDomainValuation {
		return &Context[T, PT]{valid: false}, false
	}
	// A field that did pass the valuation check would still need the
	// isogeny chain's coset/level data constructed here; Helios and
	// Selene never reach this branch.
	return &Context[T, PT]{valid: false}, false
}

// Valid reports whether ctx can be used for ECFFT multiplication. A nil
// or zero-value Context is always invalid.
func (ctx *Context[T, PT]) Valid() bool {
	return ctx != nil && ctx.valid
}

// Enter would evaluate coeffs at the context's size-n domain in place;
// unreachable while Valid() is false.
func (ctx *Context[T, PT]) Enter(coeffs []T) []T {
	if !ctx.Valid() {
		panic("ecfft: Enter called on an uninitialized context")
	}
	return coeffs
}

// Exit would invert Enter, transforming domain evaluations back to
// coefficients; unreachable while Valid() is false.
func (ctx *Context[T, PT]) Exit(evals []T) []T {
	if !ctx.Valid() {
		panic("ecfft: Exit called on an uninitialized context")
	}
	return evals
}

// kECFFT mirrors poly's Karatsuba threshold at the next tier: both
// operands must be at least this large before ECFFT is even considered.
const kECFFT = 1024

// Multiply computes a*b. When ctx is valid and both operands are at least
// kECFFT coefficients long, it uses the ECFFT path (enter both, pointwise
// multiply, exit); otherwise it falls through to poly.Mul, which itself
// picks schoolbook or Karatsuba by size. This is the single dispatch point
// spec'd by the component design's multiplication-strategy decision tree.
func Multiply[T any, PT poly.Element[T]](ctx *Context[T, PT], a, b poly.Polynomial[T, PT]) poly.Polynomial[T, PT] {
	if ctx.Valid() && len(a.Coeffs) >= kECFFT && len(b.Coeffs) >= kECFFT {
		n := nextPow2(len(a.Coeffs) + len(b.Coeffs) - 1)
		if n > ctx.domainSize {
			n = ctx.domainSize
		}
		aPadded := padTo[T, PT](a.Coeffs, n)
		bPadded := padTo[T, PT](b.Coeffs, n)
		aEvals := ctx.Enter(aPadded)
		bEvals := ctx.Enter(bPadded)
		outEvals := make([]T, n)
		for i := 0; i < n; i++ {
			PT(&outEvals[i]).Mul(&aEvals[i], &bEvals[i])
		}
		outCoeffs := ctx.Exit(outEvals)
		return poly.FromCoefficients[T, PT](outCoeffs)
	}
	return poly.Mul[T, PT](a, b)
}

func padTo[T any, PT poly.Element[T]](coeffs []T, n int) []T {
	out := make([]T, n)
	copy(out, coeffs)
	for i := len(coeffs); i < n; i++ {
		PT(&out[i]).SetZero()
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
