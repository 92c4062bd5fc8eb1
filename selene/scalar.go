package selene

import "github.com/gibme-c/helioselene/fp"

// Scalar is an element of the Selene scalar field, F_p.
type Scalar = fp.Element

// ScalarFromWei25519X accepts 32 bytes encoding a canonical F_p element
// (bit 255 clear, value < p) and returns it as a Selene scalar. This is the
// named adapter between an external Curve25519-shaped ecosystem (Wei25519,
// the short-Weierstrass form of Curve25519's base field) and the library's
// Selene scalar, which happens to share the same field.
func ScalarFromWei25519X(b [32]byte) (Scalar, bool) {
	var s Scalar
	ok := s.SetBytes(&b)
	return s, ok
}
