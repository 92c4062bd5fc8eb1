package fp

// Field modulus p = 2^255 - 19, the Helios base field / Selene scalar field.
//
// Representation: 5 limbs of radix 2^51, t = n[0] + n[1]*2^51 + n[2]*2^102 +
// n[3]*2^153 + n[4]*2^204, ported from the Curve25519 fe51 limb layout
// (SUPERCOP amd64-51-30k), generalized here to operate purely in Go via
// math/bits carry-save multiplication instead of inline assembly.
const (
	maskLow51Bits = (1 << 51) - 1

	// p in 5x51 limbs.
	pLimb0 = 0x7FFFFFFFFFFED
	pLimb1 = 0x7FFFFFFFFFFFF
	pLimb2 = 0x7FFFFFFFFFFFF
	pLimb3 = 0x7FFFFFFFFFFFF
	pLimb4 = 0x7FFFFFFFFFFFF
)

// modulusBytes is p = 2^255-19 in canonical little-endian form.
var modulusBytes = [32]byte{
	0xed, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
}

// invertExponentBE is p-2, big-endian, used by the constant-time Fermat
// inversion ladder.
var invertExponentBE = [32]byte{
	0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xeb,
}

// sqrtExponentBE is (p+3)/8, big-endian. p ≡ 5 (mod 8), so a candidate
// square root is a^((p+3)/8).
var sqrtExponentBE = [32]byte{
	0x0f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
}

// sqrtMinus1Bytes is a fixed primitive 4th root of -1 mod p, little-endian.
// Used to fix up the sqrt candidate when it is the root of -a instead of a.
var sqrtMinus1Bytes = [32]byte{
	0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4,
	0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
	0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b,
	0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
}

// pow2to256Bytes is 2^256 mod p, little-endian, used by ReduceWide to fold
// the high half of a 512-bit value down against the low half.
var pow2to256Bytes = [32]byte{
	0x26, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
