package selene

import "math/big"

const windowBits = 4
const windowTableSize = 1 << windowBits // 16
const numWindows = 256 / windowBits     // 64

// ctEqUint64 returns 1 if a == b, 0 otherwise, without branching on the
// values (the standard "OR of value and its negation, take the sign bit"
// nonzero test).
func ctEqUint64(a, b uint64) int {
	diff := a ^ b
	isNonZero := (diff | (^diff + 1)) >> 63
	return int(1 - isNonZero)
}

// windowValue extracts the w-th 4-bit window (0 = least significant) from
// the little-endian 32-byte encoding of a scalar.
func windowValue(b *[32]byte, w int) uint64 {
	bitOff := w * windowBits
	byteIdx := bitOff / 8
	shift := uint(bitOff % 8)
	lo := uint64(b[byteIdx]) >> shift
	if shift > 4 && byteIdx+1 < 32 {
		lo |= uint64(b[byteIdx+1]) << (8 - shift)
	}
	return lo & 0xf
}

// buildCTTable returns a 16-entry Jacobian table {0*P, 1*P, ..., 15*P},
// used by the general constant-time ladder (identity is representable in
// Jacobian, unlike in the affine fixed-base table below).
func buildCTTable(p *Jacobian) [windowTableSize]Jacobian {
	var table [windowTableSize]Jacobian
	table[0] = Identity()
	table[1] = *p
	for i := 2; i < windowTableSize; i++ {
		table[i] = Add(&table[i-1], p)
	}
	return table
}

// selectCT performs a constant-time linear scan of table, returning the
// entry at idx without branching on idx.
func selectCT(table *[windowTableSize]Jacobian, idx uint64) Jacobian {
	r := table[0]
	for i := 1; i < windowTableSize; i++ {
		mask := ctEqUint64(uint64(i), idx)
		r.X.CMov(&table[i].X, mask)
		r.Y.CMov(&table[i].Y, mask)
		r.Z.CMov(&table[i].Z, mask)
	}
	return r
}

// ScalarMul computes scalar*p with a fixed 4-bit-window ladder: each
// window doubles the accumulator windowBits times, then adds the table
// entry for that window's nibble via a constant-time masked table scan.
// Zero scalar yields the identity. Timing is independent of the scalar's
// value (the table scan always walks all 16 entries; the surrounding
// group law still uses the incomplete add/dbl formulas from group.go,
// whose corner-case branches depend on point equality rather than on
// scalar bits directly — closing that residual gap needs complete
// addition formulas, the tradeoff this implementation's Add/Madd forgo
// for simplicity).
func ScalarMul(scalar *Scalar, p *Jacobian) Jacobian {
	table := buildCTTable(p)
	var b [32]byte
	scalar.Bytes(&b)

	acc := Identity()
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			acc = Dbl(&acc)
		}
		idx := windowValue(&b, w)
		t := selectCT(&table, idx)
		acc = Add(&acc, &t)
	}
	return acc
}

// wnaf decomposes scalar into a width-w signed non-adjacent form, digit 0
// at the least significant position. Digits are odd or zero, magnitude <
// 2^(w-1). Variable-time: only for publicly known scalars.
func wnaf(scalar *Scalar, w int) []int32 {
	var b [32]byte
	scalar.Bytes(&b)

	be := make([]byte, 32)
	for i := range b {
		be[31-i] = b[i]
	}
	k := new(big.Int).SetBytes(be)

	width := int64(1) << uint(w)
	half := width / 2

	var digits []int32
	zero := big.NewInt(0)
	for k.Cmp(zero) > 0 {
		if k.Bit(0) == 1 {
			mod := new(big.Int).And(k, big.NewInt(width-1))
			d := mod.Int64()
			if d >= half {
				d -= width
			}
			digits = append(digits, int32(d))
			k.Sub(k, big.NewInt(d))
		} else {
			digits = append(digits, 0)
		}
		k.Rsh(k, 1)
	}
	return digits
}

// buildOddMultiples returns {1*p, 3*p, 5*p, ..., (2*halfSize-1)*p}.
func buildOddMultiples(p *Jacobian, halfSize int) []Jacobian {
	table := make([]Jacobian, halfSize)
	table[0] = *p
	double := Dbl(p)
	for i := 1; i < halfSize; i++ {
		table[i] = Add(&table[i-1], &double)
	}
	return table
}

const wnafWindow = 5

// ScalarMulVartime computes scalar*p using a sliding-window wNAF. Branches
// on the scalar's digits; callers must only use it for public scalars
// (MSM, verification), never secret keys.
func ScalarMulVartime(scalar *Scalar, p *Jacobian) Jacobian {
	digits := wnaf(scalar, wnafWindow)
	if len(digits) == 0 {
		return Identity()
	}
	table := buildOddMultiples(p, 1<<(wnafWindow-1))

	acc := Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = Dbl(&acc)
		d := digits[i]
		if d == 0 {
			continue
		}
		mag := d
		if mag < 0 {
			mag = -mag
		}
		t := table[(mag-1)/2]
		if d < 0 {
			t = Neg(&t)
		}
		acc = Add(&acc, &t)
	}
	return acc
}

// FixedTable is a precomputed generator-style table for scalarmult_fixed:
// entries[j] = (j+1)*P for j = 0..15, plus the fixed correction point
// subtracted at the end of every ScalarMulFixed call. Storing multiples
// 1*P..16*P (never 0*P) means every table lookup lands on a real,
// representable affine point; ScalarMulFixed biases every window's digit
// up by one to match, and undoes the total bias in one final subtraction,
// so the per-window table scan never needs to represent the identity.
type FixedTable struct {
	Entries    [windowTableSize]Affine
	Correction Jacobian
}

// ScalarMulFixedPrecompute builds a FixedTable for p. Call once per
// distinct base point (typically a generator); the result is immutable
// and safe to share across calls.
func ScalarMulFixedPrecompute(p *Jacobian) FixedTable {
	var t FixedTable
	acc := *p
	t.Entries[0] = ToAffine(&acc)
	for i := 1; i < windowTableSize; i++ {
		acc = Add(&acc, p)
		t.Entries[i] = ToAffine(&acc)
	}

	corr := Identity()
	for w := 0; w < numWindows; w++ {
		for i := 0; i < windowBits; i++ {
			corr = Dbl(&corr)
		}
		one := FromAffine(&t.Entries[0])
		corr = Add(&corr, &one)
	}
	t.Correction = corr
	return t
}

func selectFixed(table *[windowTableSize]Affine, idx uint64) Affine {
	r := table[0]
	for i := 1; i < windowTableSize; i++ {
		mask := ctEqUint64(uint64(i), idx)
		r.X.CMov(&table[i].X, mask)
		r.Y.CMov(&table[i].Y, mask)
	}
	return r
}

// ScalarMulFixed computes scalar*P using a precomputed FixedTable, with a
// 4-bit-window CT ladder whose per-window table scan never touches the
// identity (see FixedTable).
func ScalarMulFixed(scalar *Scalar, table *FixedTable) Jacobian {
	var b [32]byte
	scalar.Bytes(&b)

	acc := Identity()
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			acc = Dbl(&acc)
		}
		idx := windowValue(&b, w)
		entry := selectFixed(&table.Entries, idx)
		entryJ := FromAffine(&entry)
		acc = Add(&acc, &entryJ)
	}

	negCorrection := Neg(&table.Correction)
	acc = Add(&acc, &negCorrection)
	return acc
}
