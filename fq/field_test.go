package fq

import (
	"crypto/rand"
	"testing"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	var b [32]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		b[31] &= 0x7f
		var e Element
		if e.SetBytes(&b) {
			return e
		}
	}
}

func TestZeroOne(t *testing.T) {
	var z Element
	z.SetZero()
	if !z.IsZero() {
		t.Error("SetZero should be zero")
	}

	var o Element
	o.SetOne()
	if o.IsZero() {
		t.Error("SetOne should not be zero")
	}
	if !o.IsOdd() {
		t.Error("1 should be odd")
	}
}

func TestSetBytesRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		bytes [32]byte
		ok    bool
	}{
		{
			name:  "zero",
			bytes: [32]byte{},
			ok:    true,
		},
		{
			name:  "one",
			bytes: [32]byte{1},
			ok:    true,
		},
		{
			name: "q_minus_one",
			bytes: [32]byte{
				0x98, 0xeb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
			},
			ok: true,
		},
		{
			name: "equal_to_q_rejected",
			bytes: [32]byte{
				0x99, 0xeb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
			},
			ok: false,
		},
		{
			name: "top_bit_set_rejected",
			bytes: [32]byte{
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0x80,
			},
			ok: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var e Element
			ok := e.SetBytes(&tc.bytes)
			if ok != tc.ok {
				t.Fatalf("SetBytes ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			var out [32]byte
			e.Bytes(&out)
			if out != tc.bytes {
				t.Errorf("round trip mismatch: got %x, want %x", out, tc.bytes)
			}
		})
	}
}

func TestAddSubNeg(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := randomElement(t)
		b := randomElement(t)

		var sum, diff Element
		sum.Add(&a, &b)
		diff.Sub(&sum, &b)
		if !diff.Equal(&a) {
			t.Fatalf("(a+b)-b != a for case %d", i)
		}

		var neg, zero, back Element
		neg.Neg(&a)
		back.Add(&a, &neg)
		if !back.Equal(zero.SetZero()) {
			t.Fatalf("a+(-a) != 0 for case %d", i)
		}
	}
}

func TestMulIdentityAndCommutativity(t *testing.T) {
	one := new(Element).SetOne()
	for i := 0; i < 20; i++ {
		a := randomElement(t)
		b := randomElement(t)

		var prod1 Element
		prod1.Mul(&a, one)
		if !prod1.Equal(&a) {
			t.Fatalf("a*1 != a for case %d", i)
		}

		var ab, ba Element
		ab.Mul(&a, &b)
		ba.Mul(&b, &a)
		if !ab.Equal(&ba) {
			t.Fatalf("a*b != b*a for case %d", i)
		}
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := randomElement(t)
		b := randomElement(t)
		c := randomElement(t)

		var sum, lhs Element
		sum.Add(&b, &c)
		lhs.Mul(&a, &sum)

		var ab, ac, rhs Element
		ab.Mul(&a, &b)
		ac.Mul(&a, &c)
		rhs.Add(&ab, &ac)

		if !lhs.Equal(&rhs) {
			t.Fatalf("a*(b+c) != a*b+a*c for case %d", i)
		}
	}
}

func TestSquareMatchesMul(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := randomElement(t)
		var sq, mul Element
		sq.Square(&a)
		mul.Mul(&a, &a)
		if !sq.Equal(&mul) {
			t.Fatalf("Square(a) != a*a for case %d", i)
		}
	}
}

func TestInvert(t *testing.T) {
	var zero Element
	zero.SetZero()
	inv, ok := new(Element).Invert(&zero)
	if ok {
		t.Error("inverting zero should report ok=false")
	}
	if !inv.IsZero() {
		t.Error("inverting zero should yield zero")
	}

	for i := 0; i < 20; i++ {
		a := randomElement(t)
		if a.IsZero() {
			continue
		}
		aInv, ok := new(Element).Invert(&a)
		if !ok {
			t.Fatalf("Invert reported not ok for nonzero input, case %d", i)
		}
		var prod Element
		prod.Mul(&a, aInv)
		if !prod.Equal(new(Element).SetOne()) {
			t.Fatalf("a * a^-1 != 1 for case %d", i)
		}
	}
}

func TestSqrt(t *testing.T) {
	var zero Element
	zero.SetZero()
	root, ok := new(Element).Sqrt(&zero)
	if !ok || !root.IsZero() {
		t.Error("Sqrt(0) should be (0, true)")
	}

	var nonResidue Element
	nonResidue.SetUint64(7)
	if _, ok := new(Element).Sqrt(&nonResidue); ok {
		t.Error("Sqrt(7) should report ok=false: 7 is the fixed Tonelli-Shanks non-residue")
	}

	for i := 0; i < 20; i++ {
		a := randomElement(t)
		var square Element
		square.Square(&a)

		r, ok := new(Element).Sqrt(&square)
		if !ok {
			t.Fatalf("Sqrt reported not ok for a known square, case %d", i)
		}
		var back Element
		back.Square(r)
		if !back.Equal(&square) {
			t.Fatalf("Sqrt(a^2)^2 != a^2 for case %d", i)
		}
	}
}

func TestBatchInvert(t *testing.T) {
	in := make([]Element, 8)
	for i := range in {
		in[i] = randomElement(t)
	}
	in[3].SetZero()

	out := make([]Element, len(in))
	BatchInvert(out, in)

	for i := range in {
		if in[i].IsZero() {
			if !out[i].IsZero() {
				t.Fatalf("BatchInvert of zero at %d should be zero", i)
			}
			continue
		}
		var prod Element
		prod.Mul(&in[i], &out[i])
		if !prod.Equal(new(Element).SetOne()) {
			t.Fatalf("BatchInvert result wrong at index %d", i)
		}
	}
}

func TestReduceWide(t *testing.T) {
	var allZero [64]byte
	z := ReduceWide(&allZero)
	if !z.IsZero() {
		t.Error("ReduceWide(0) should be 0")
	}

	var allFF [64]byte
	for i := range allFF {
		allFF[i] = 0xff
	}
	a := ReduceWide(&allFF)
	b := ReduceWide(&allFF)
	if !a.Equal(&b) {
		t.Error("ReduceWide should be deterministic")
	}

	for i := 0; i < 10; i++ {
		var b [64]byte
		if _, err := rand.Read(b[:]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		r1 := ReduceWide(&b)
		r2 := ReduceWide(&b)
		if !r1.Equal(&r2) {
			t.Fatalf("ReduceWide not deterministic on random input, case %d", i)
		}
	}
}

func TestMulAdd(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := randomElement(t)
		b := randomElement(t)
		c := randomElement(t)

		var got, ab, want Element
		got.MulAdd(&a, &b, &c)
		ab.Mul(&a, &b)
		want.Add(&ab, &c)
		if !got.Equal(&want) {
			t.Fatalf("MulAdd mismatch for case %d", i)
		}
	}
}

func TestCMov(t *testing.T) {
	a := randomElement(t)
	b := randomElement(t)

	r := a
	r.CMov(&b, 0)
	if !r.Equal(&a) {
		t.Error("CMov with b=0 should not change value")
	}

	r = a
	r.CMov(&b, 1)
	if !r.Equal(&b) {
		t.Error("CMov with b=1 should move value")
	}
}
