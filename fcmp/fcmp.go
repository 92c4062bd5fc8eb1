// Package fcmp is a thin orchestration layer one level above the curve
// and divisor primitives, showing the calling convention an FCMP++-style
// membership proof would use: Pedersen-blinded branch commitments, a
// per-branch divisor witness, and a batch evaluation check of that
// witness against its claimed point set. It wires helios/selene's
// Pedersen and divisor helpers together the way
// original_source/src/benchmark_fcmpp.cpp calls them in sequence, minus
// the benchmarking harness itself.
//
// This layer has its own narrower tests and is not part of the core
// invariant-testing surface the lower layers carry.
package fcmp

import (
	"github.com/gibme-c/helioselene/helios"
	"github.com/gibme-c/helioselene/selene"
)

// HeliosBranchBlind is a Pedersen-committed blinding for one branch of
// the membership tree on the Helios curve.
type HeliosBranchBlind struct {
	Commitment helios.Jacobian
}

// NewHeliosBranchBlind builds a blinded commitment to values under
// generators, with blinding factor r against base point h, via
// helios.Pedersen.
func NewHeliosBranchBlind(r *helios.Scalar, h *helios.Jacobian, values []*helios.Scalar, generators []*helios.Jacobian) HeliosBranchBlind {
	return HeliosBranchBlind{Commitment: helios.Pedersen(r, h, values, generators)}
}

// SeleneBranchBlind is the Selene-curve counterpart of HeliosBranchBlind.
type SeleneBranchBlind struct {
	Commitment selene.Jacobian
}

// NewSeleneBranchBlind is the Selene-curve counterpart of
// NewHeliosBranchBlind.
func NewSeleneBranchBlind(r *selene.Scalar, h *selene.Jacobian, values []*selene.Scalar, generators []*selene.Jacobian) SeleneBranchBlind {
	return SeleneBranchBlind{Commitment: selene.Pedersen(r, h, values, generators)}
}

// ProveHeliosBranch builds the divisor witness for one layer of the
// membership tree on the Helios curve: the polynomials vanishing on
// exactly the claimed child points.
func ProveHeliosBranch(points []helios.Affine) helios.DivisorT {
	return helios.ComputeDivisor(points)
}

// VerifyHeliosBranch checks d vanishes at every point in points, the
// batch sanity check a verifier runs over a claimed branch.
func VerifyHeliosBranch(d helios.DivisorT, points []helios.Affine) bool {
	for i := range points {
		v := helios.EvaluateDivisor(d, &points[i].X, &points[i].Y)
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// ProveSeleneBranch is the Selene-curve counterpart of ProveHeliosBranch.
func ProveSeleneBranch(points []selene.Affine) selene.DivisorT {
	return selene.ComputeDivisor(points)
}

// VerifySeleneBranch is the Selene-curve counterpart of
// VerifyHeliosBranch.
func VerifySeleneBranch(d selene.DivisorT, points []selene.Affine) bool {
	for i := range points {
		v := selene.EvaluateDivisor(d, &points[i].X, &points[i].Y)
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// TreeReduceHeliosBranch folds every leaf point's trivial divisor up a
// balanced tree into one combined witness for the whole layer, via
// helios.ScalarMulDivisor's same TreeReduce machinery, here driven
// directly off caller-supplied points rather than a doubling chain.
func TreeReduceHeliosBranch(points []helios.Affine) helios.DivisorT {
	return helios.TreeReduceDivisor(points)
}

// TreeReduceSeleneBranch is the Selene-curve counterpart of
// TreeReduceHeliosBranch.
func TreeReduceSeleneBranch(points []selene.Affine) selene.DivisorT {
	return selene.TreeReduceDivisor(points)
}
