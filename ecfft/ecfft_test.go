package ecfft

import (
	"testing"

	"github.com/gibme-c/helioselene/fp"
	"github.com/gibme-c/helioselene/fq"
	"github.com/gibme-c/helioselene/poly"
)

func TestInitAlwaysInvalidForFp(t *testing.T) {
	ctx, ok := Init[fp.Element, *fp.Element](fp.ModulusMinus1Bytes)
	if ok {
		t.Fatal("Helios's base field modulus has no 2-adic valuation deep enough for ECFFT; Init must report ok=false")
	}
	if ctx.Valid() {
		t.Fatal("a context Init reports not-ok for must never be Valid")
	}
}

func TestInitAlwaysInvalidForFq(t *testing.T) {
	ctx, ok := Init[fq.Element, *fq.Element](fq.ModulusMinus1Bytes)
	if ok {
		t.Fatal("Selene's base field modulus has no 2-adic valuation deep enough for ECFFT either; Init must report ok=false")
	}
	if ctx.Valid() {
		t.Fatal("a context Init reports not-ok for must never be Valid")
	}
}

func TestNilContextIsInvalid(t *testing.T) {
	var ctx *Context[fp.Element, *fp.Element]
	if ctx.Valid() {
		t.Fatal("nil context must never be valid")
	}
}

func TestMultiplyFallsBackToPolyMul(t *testing.T) {
	ctx, _ := Init[fp.Element, *fp.Element](fp.ModulusMinus1Bytes)

	var a1, a2, b1, b2 fp.Element
	a1.SetUint64(1)
	a2.SetUint64(2)
	b1.SetUint64(3)
	b2.SetUint64(4)
	a := poly.FromCoefficients[fp.Element, *fp.Element]([]fp.Element{a1, a2})
	b := poly.FromCoefficients[fp.Element, *fp.Element]([]fp.Element{b1, b2})

	viaECFFT := Multiply[fp.Element, *fp.Element](ctx, a, b)
	viaPoly := poly.Mul[fp.Element, *fp.Element](a, b)

	if len(viaECFFT.Coeffs) != len(viaPoly.Coeffs) {
		t.Fatalf("fallback product length mismatch: %d vs %d", len(viaECFFT.Coeffs), len(viaPoly.Coeffs))
	}
	for i := range viaECFFT.Coeffs {
		if !viaECFFT.Coeffs[i].Equal(&viaPoly.Coeffs[i]) {
			t.Fatalf("fallback product disagrees with poly.Mul at coefficient %d", i)
		}
	}
}

func TestEnterPanicsOnInvalidContext(t *testing.T) {
	ctx, _ := Init[fp.Element, *fp.Element](fp.ModulusMinus1Bytes)

	defer func() {
		if recover() == nil {
			t.Fatal("Enter on an invalid context must panic")
		}
	}()
	ctx.Enter(nil)
}
