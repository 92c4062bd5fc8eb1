// Package testseed derives deterministic pseudo-random byte material for
// test fixtures, so table-driven tests get varied-looking inputs without
// pulling in crypto/rand (which would make failures unreproducible).
// Grounded on the teacher's own SHA256 wrapper in hash.go, built on the
// same accelerated implementation rather than crypto/sha256 directly.
package testseed

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
)

// Bytes32 derives 32 deterministic bytes from label and an integer index,
// so a test can request seed material for fixture i without every fixture
// in a loop hashing to the same value.
func Bytes32(label string, index int) [32]byte {
	h := sha256simd.New()
	h.Write([]byte(label))
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(index))
	h.Write(idx[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Uint64 derives a deterministic, non-cryptographic uint64 from label and
// index, for tests that just need varied small scalars rather than full
// field elements.
func Uint64(label string, index int) uint64 {
	b := Bytes32(label, index)
	return binary.LittleEndian.Uint64(b[:8])
}
