package helios

import (
	"testing"

	"github.com/gibme-c/helioselene/fp"
)

func TestToBytesFromBytesRoundtrip(t *testing.T) {
	var buf [32]byte
	ToBytes(&GeneratorJacobian, &buf)

	got, ok := FromBytes(&buf)
	if !ok {
		t.Fatal("encoding of the generator must decode successfully")
	}
	gotA := ToAffine(&got)
	if !gotA.X.Equal(&Generator.X) || !gotA.Y.Equal(&Generator.Y) {
		t.Fatal("ToBytes/FromBytes must roundtrip the generator")
	}
}

func TestToBytesIdentityIsZero(t *testing.T) {
	id := Identity()
	var buf [32]byte
	ToBytes(&id, &buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("identity encoding must be all zero, byte %d was %#x", i, b)
		}
	}
}

func TestFromBytesRejectsIdentityEncoding(t *testing.T) {
	var buf [32]byte
	if _, ok := FromBytes(&buf); ok {
		t.Fatal("all-zero encoding must be rejected, not decoded as a point")
	}
}

func TestFromBytesPreservesParity(t *testing.T) {
	dbl := Dbl(&GeneratorJacobian)
	a := ToAffine(&dbl)

	var buf [32]byte
	ToBytes(&dbl, &buf)
	decoded, ok := FromBytes(&buf)
	if !ok {
		t.Fatal("valid point encoding must decode")
	}
	decodedA := ToAffine(&decoded)
	if !decodedA.X.Equal(&a.X) || !decodedA.Y.Equal(&a.Y) {
		t.Fatal("decoded point must match the original exactly, including y parity")
	}
}

func TestFromBytesRejectsNonResidue(t *testing.T) {
	var buf [32]byte
	ToBytes(&GeneratorJacobian, &buf)
	// Flipping low-order bytes of x very likely leaves a non-residue RHS;
	// FromBytes must reject rather than silently producing an off-curve point.
	buf[0] ^= 0xff
	buf[1] ^= 0xff
	if p, ok := FromBytes(&buf); ok {
		a := ToAffine(&p)
		if !IsOnCurve(&a) {
			t.Fatal("FromBytes must never return an off-curve point")
		}
	}
}

func TestMapToCurveProducesOnCurvePoint(t *testing.T) {
	for i := uint64(0); i < 10; i++ {
		var u fp.Element
		u.SetUint64(i + 1)
		p := MapToCurve(&u)
		a := ToAffine(&p)
		if !IsOnCurve(&a) {
			t.Fatalf("MapToCurve(%d) produced an off-curve point", i+1)
		}
	}
}

func TestMapToCurveDeterministic(t *testing.T) {
	var u fp.Element
	u.SetUint64(42)
	p1 := MapToCurve(&u)
	p2 := MapToCurve(&u)
	a1 := ToAffine(&p1)
	a2 := ToAffine(&p2)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("MapToCurve must be deterministic for the same input")
	}
}

func TestMapToCurve2OnCurve(t *testing.T) {
	var u0, u1 fp.Element
	u0.SetUint64(3)
	u1.SetUint64(19)
	p := MapToCurve2(&u0, &u1)
	a := ToAffine(&p)
	if !IsOnCurve(&a) {
		t.Fatal("MapToCurve2 must produce an on-curve point")
	}
}
