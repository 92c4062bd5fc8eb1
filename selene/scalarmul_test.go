package selene

import "testing"

func scalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

func TestScalarMulZeroIsIdentity(t *testing.T) {
	zero := scalarFromUint64(0)
	r := ScalarMul(&zero, &GeneratorJacobian)
	if !r.IsIdentity() {
		t.Fatal("0*P must be the identity")
	}
}

func TestScalarMulOneIsInput(t *testing.T) {
	one := scalarFromUint64(1)
	r := ScalarMul(&one, &GeneratorJacobian)
	got := ToAffine(&r)
	if !got.X.Equal(&Generator.X) || !got.Y.Equal(&Generator.Y) {
		t.Fatal("1*P must equal P")
	}
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	five := scalarFromUint64(5)
	viaScalar := ScalarMul(&five, &GeneratorJacobian)

	acc := Identity()
	for i := 0; i < 5; i++ {
		acc = Add(&acc, &GeneratorJacobian)
	}

	a1 := ToAffine(&viaScalar)
	a2 := ToAffine(&acc)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("ScalarMul(5, P) must equal P+P+P+P+P")
	}
}

func TestScalarMulVartimeMatchesScalarMul(t *testing.T) {
	k := scalarFromUint64(12345)
	ct := ScalarMul(&k, &GeneratorJacobian)
	vt := ScalarMulVartime(&k, &GeneratorJacobian)

	a1 := ToAffine(&ct)
	a2 := ToAffine(&vt)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("ScalarMulVartime must agree with ScalarMul")
	}
}

func TestScalarMulVartimeZero(t *testing.T) {
	zero := scalarFromUint64(0)
	r := ScalarMulVartime(&zero, &GeneratorJacobian)
	if !r.IsIdentity() {
		t.Fatal("0*P must be the identity under the vartime path too")
	}
}

func TestScalarMulFixedMatchesScalarMul(t *testing.T) {
	table := ScalarMulFixedPrecompute(&GeneratorJacobian)
	k := scalarFromUint64(777)

	viaFixed := ScalarMulFixed(&k, &table)
	viaGeneral := ScalarMul(&k, &GeneratorJacobian)

	a1 := ToAffine(&viaFixed)
	a2 := ToAffine(&viaGeneral)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("ScalarMulFixed must agree with ScalarMul for the same base point and scalar")
	}
}

func TestScalarMulFixedZero(t *testing.T) {
	table := ScalarMulFixedPrecompute(&GeneratorJacobian)
	zero := scalarFromUint64(0)
	r := ScalarMulFixed(&zero, &table)
	if !r.IsIdentity() {
		t.Fatal("0*P via the fixed-base ladder must be the identity")
	}
}

func TestScalarMulDifferentBasePoints(t *testing.T) {
	k := scalarFromUint64(9)
	base := Dbl(&GeneratorJacobian)
	viaScalar := ScalarMul(&k, &base)

	acc := Identity()
	for i := 0; i < 9; i++ {
		acc = Add(&acc, &base)
	}
	a1 := ToAffine(&viaScalar)
	a2 := ToAffine(&acc)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("ScalarMul must work for a non-generator base point")
	}
}
