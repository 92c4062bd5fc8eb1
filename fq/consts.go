package fq

// Field modulus q = 2^255 - gamma, the Selene base field / Helios scalar
// field. gamma = 2^64 + 5223 is a representative 65-bit constant (bit 64
// set, low word 5223).
//
// Representation: 5 limbs of radix 2^51, exactly like fp (t = n[0] +
// n[1]*2^51 + n[2]*2^102 + n[3]*2^153 + n[4]*2^204), rather than the
// teacher's 5x52 layout built for secp256k1's 2^256-2^32-977 modulus: q is
// 255 bits, same as p, so the 5x51 split keeps the 2^255 reduction
// boundary sitting exactly at a limb edge (the top of n[4]) the same way
// it does for fp, instead of straddling a limb the way a 52-bit split
// would. Because gamma itself is 65 bits wide (doesn't fit in one 51-bit
// limb the way 19 does for p), folding an overflow back in takes two
// additions instead of fp's one: gammaLow into limb 0, gammaHigh into
// limb 1 — see reduce() and mul.go.
const (
	maskLow51Bits = (1 << 51) - 1

	// gamma = 2^64 + 5223 split across the 51-bit limb boundary:
	// gamma = gammaLow + gammaHigh*2^51.
	gammaLow  = 0x1467 // 5223
	gammaHigh = 0x2000 // 8192 = 2^13, a power of two so the fold is a plain shift

	// q in 5x51 limbs.
	qLimb0 = 0x7FFFFFFFFEB99
	qLimb1 = 0x7FFFFFFFFDFFF
	qLimb2 = 0x7FFFFFFFFFFFF
	qLimb3 = 0x7FFFFFFFFFFFF
	qLimb4 = 0x7FFFFFFFFFFFF
)

// modulusBytes is q = 2^255 - gamma in canonical little-endian form.
var modulusBytes = [32]byte{
	0x99, 0xeb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
}

// invertExponentBE is q-2, big-endian, for the constant-time Fermat
// inversion ladder.
var invertExponentBE = [32]byte{
	0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xeb, 0x97,
}

// Tonelli-Shanks fixed parameters for q, precomputed once since q ≡ 1
// (mod 4) (unlike p, which allows the direct (p+3)/8 candidate-and-fixup
// approach): q-1 = 2^sExponent * tOdd with tOdd odd, c = nonResidue^tOdd
// is a fixed element of order 2^sExponent used to peel off the 2-power
// factor.
const sExponent = 3

// tOddExponentBE is the odd part of q-1, big-endian.
var tOddExponentBE = [32]byte{
	0x0f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xdf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfd, 0x73,
}

// tPlus1HalfExponentBE is (tOdd+1)/2, big-endian.
var tPlus1HalfExponentBE = [32]byte{
	0x07, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xef, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe, 0xba,
}

// tonelliCBytes is the fixed value c = 7^tOdd mod q (7 is a fixed quadratic
// non-residue mod q), little-endian.
var tonelliCBytes = [32]byte{
	0xc2, 0xf2, 0x3f, 0x5e, 0xc8, 0xcb, 0x76, 0x01,
	0x1d, 0xbd, 0x05, 0x24, 0xfd, 0xec, 0xba, 0x99,
	0x24, 0x4f, 0x3f, 0xd2, 0xea, 0x78, 0xad, 0x74,
	0x01, 0x05, 0x2d, 0x52, 0x7a, 0xca, 0x17, 0x54,
}

// pow2to256Bytes is 2^256 mod q, little-endian, used by ReduceWide to fold
// the high half of a 512-bit value down against the low half.
var pow2to256Bytes = [32]byte{
	0xce, 0x28, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
