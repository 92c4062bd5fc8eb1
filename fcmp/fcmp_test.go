package fcmp

import (
	"testing"

	"github.com/gibme-c/helioselene/helios"
	"github.com/gibme-c/helioselene/selene"
)

func heliosTestPoints(t *testing.T, n int) []helios.Affine {
	t.Helper()
	chain := make([]helios.Jacobian, n)
	chain[0] = helios.GeneratorJacobian
	for i := 1; i < n; i++ {
		chain[i] = helios.Dbl(&chain[i-1])
	}
	return helios.BatchToAffine(chain)
}

func seleneTestPoints(t *testing.T, n int) []selene.Affine {
	t.Helper()
	chain := make([]selene.Jacobian, n)
	chain[0] = selene.GeneratorJacobian
	for i := 1; i < n; i++ {
		chain[i] = selene.Dbl(&chain[i-1])
	}
	return selene.BatchToAffine(chain)
}

func TestProveVerifyHeliosBranch(t *testing.T) {
	points := heliosTestPoints(t, 6)
	d := ProveHeliosBranch(points)
	if !VerifyHeliosBranch(d, points) {
		t.Fatal("divisor should vanish on its own construction set")
	}

	other := heliosTestPoints(t, 7)[6:]
	if VerifyHeliosBranch(d, other) {
		t.Fatal("divisor should not vanish at an unrelated point")
	}
}

func TestProveVerifySeleneBranch(t *testing.T) {
	points := seleneTestPoints(t, 6)
	d := ProveSeleneBranch(points)
	if !VerifySeleneBranch(d, points) {
		t.Fatal("divisor should vanish on its own construction set")
	}

	other := seleneTestPoints(t, 7)[6:]
	if VerifySeleneBranch(d, other) {
		t.Fatal("divisor should not vanish at an unrelated point")
	}
}

func TestTreeReduceHeliosBranchMatchesDirect(t *testing.T) {
	points := heliosTestPoints(t, 5)
	direct := ProveHeliosBranch(points)
	reduced := TreeReduceHeliosBranch(points)

	if !VerifyHeliosBranch(direct, points) || !VerifyHeliosBranch(reduced, points) {
		t.Fatal("both constructions should vanish on the same point set")
	}
}

func TestTreeReduceSeleneBranchMatchesDirect(t *testing.T) {
	points := seleneTestPoints(t, 5)
	direct := ProveSeleneBranch(points)
	reduced := TreeReduceSeleneBranch(points)

	if !VerifySeleneBranch(direct, points) || !VerifySeleneBranch(reduced, points) {
		t.Fatal("both constructions should vanish on the same point set")
	}
}

func TestBranchBlindCommitsConsistently(t *testing.T) {
	var r helios.Scalar
	r.SetUint64(7)
	var v1, v2 helios.Scalar
	v1.SetUint64(3)
	v2.SetUint64(11)

	g1 := helios.GeneratorJacobian
	g2 := helios.Dbl(&g1)
	h := helios.Dbl(&g2)

	blind := NewHeliosBranchBlind(&r, &h, []*helios.Scalar{&v1, &v2}, []*helios.Jacobian{&g1, &g2})
	blindAgain := NewHeliosBranchBlind(&r, &h, []*helios.Scalar{&v1, &v2}, []*helios.Jacobian{&g1, &g2})

	a1 := helios.ToAffine(&blind.Commitment)
	a2 := helios.ToAffine(&blindAgain.Commitment)
	if !a1.X.Equal(&a2.X) || !a1.Y.Equal(&a2.Y) {
		t.Fatal("identical inputs should produce identical blinded commitments")
	}
}
