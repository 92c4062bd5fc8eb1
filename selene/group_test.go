package selene

import "testing"

func TestGeneratorOnCurve(t *testing.T) {
	if !IsOnCurve(&Generator) {
		t.Fatal("generator must satisfy the curve equation")
	}
}

func TestIdentityRoundtrip(t *testing.T) {
	id := Identity()
	if !id.IsIdentity() {
		t.Fatal("Identity() must report IsIdentity")
	}
	if GeneratorJacobian.IsIdentity() {
		t.Fatal("generator must not be the identity")
	}
}

func TestAddIdentityIsNoop(t *testing.T) {
	id := Identity()
	sum := Add(&GeneratorJacobian, &id)
	got := ToAffine(&sum)
	if !got.X.Equal(&Generator.X) || !got.Y.Equal(&Generator.Y) {
		t.Fatal("P + identity must equal P")
	}

	sum2 := Add(&id, &GeneratorJacobian)
	got2 := ToAffine(&sum2)
	if !got2.X.Equal(&Generator.X) || !got2.Y.Equal(&Generator.Y) {
		t.Fatal("identity + P must equal P")
	}
}

func TestAddNegationIsIdentity(t *testing.T) {
	neg := Neg(&GeneratorJacobian)
	sum := Add(&GeneratorJacobian, &neg)
	if !sum.IsIdentity() {
		t.Fatal("P + (-P) must be the identity")
	}
}

func TestDblMatchesSelfAdd(t *testing.T) {
	dbl := Dbl(&GeneratorJacobian)
	added := Add(&GeneratorJacobian, &GeneratorJacobian)

	dblA := ToAffine(&dbl)
	addedA := ToAffine(&added)
	if !dblA.X.Equal(&addedA.X) || !dblA.Y.Equal(&addedA.Y) {
		t.Fatal("Dbl(P) must equal Add(P, P)")
	}
	if !IsOnCurve(&dblA) {
		t.Fatal("2*generator must remain on the curve")
	}
}

func TestMaddMatchesAdd(t *testing.T) {
	dbl := Dbl(&GeneratorJacobian)
	viaAdd := Add(&dbl, &GeneratorJacobian)
	viaMadd := Madd(&dbl, &Generator)

	a1 := ToAffine(&viaAdd)
	a2 := ToAffine(&viaMadd)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("Madd must agree with Add when the second operand is affine")
	}
}

func TestFromAffineToAffineRoundtrip(t *testing.T) {
	j := FromAffine(&Generator)
	back := ToAffine(&j)
	if !back.X.Equal(&Generator.X) || !back.Y.Equal(&Generator.Y) {
		t.Fatal("FromAffine/ToAffine must roundtrip")
	}
}

func TestBatchToAffineMatchesIndividual(t *testing.T) {
	chain := make([]Jacobian, 6)
	chain[0] = GeneratorJacobian
	for i := 1; i < len(chain); i++ {
		chain[i] = Dbl(&chain[i-1])
	}

	batch := BatchToAffine(chain)
	for i := range chain {
		want := ToAffine(&chain[i])
		if !batch[i].X.Equal(&want.X) || !batch[i].Y.Equal(&want.Y) {
			t.Fatalf("point %d: batch conversion disagrees with individual ToAffine", i)
		}
		if !IsOnCurve(&batch[i]) {
			t.Fatalf("point %d: batch-converted point is not on the curve", i)
		}
	}
}

func TestBatchToAffineHandlesIdentity(t *testing.T) {
	points := []Jacobian{Identity(), GeneratorJacobian, Identity()}
	out := BatchToAffine(points)
	if !out[0].X.IsZero() || !out[0].Y.IsZero() {
		t.Fatal("identity must batch-convert to the zero affine point")
	}
	if !out[1].X.Equal(&Generator.X) || !out[1].Y.Equal(&Generator.Y) {
		t.Fatal("non-identity point must batch-convert correctly alongside identities")
	}
	if !out[2].X.IsZero() || !out[2].Y.IsZero() {
		t.Fatal("trailing identity must batch-convert to the zero affine point")
	}
}

func TestAddCommutative(t *testing.T) {
	a := Dbl(&GeneratorJacobian)
	b := Dbl(&a)

	ab := Add(&a, &b)
	ba := Add(&b, &a)
	abA := ToAffine(&ab)
	baA := ToAffine(&ba)
	if !abA.X.Equal(&baA.X) || !abA.Y.Equal(&baA.Y) {
		t.Fatal("Add must be commutative")
	}
}
