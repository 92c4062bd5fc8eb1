package helios

import (
	"math/big"
	"math/bits"
)

// MSM computes the multi-scalar multiplication Σ scalars[i]*points[i].
// Variable-time; scalars and points must both be public. Backend is
// chosen by n: identity for n=0, a single scalar_mul_vartime for n=1,
// Straus for 2..32 points, Pippenger above that.
func MSM(scalars []*Scalar, points []*Jacobian) Jacobian {
	n := len(scalars)
	switch {
	case n == 0:
		return Identity()
	case n == 1:
		return ScalarMulVartime(scalars[0], points[0])
	case n <= 32:
		return straus(scalars, points)
	default:
		return pippenger(scalars, points)
	}
}

const strausWindow = 5

// straus interleaves the wNAF ladders of all n points, doubling the shared
// accumulator once per bit position and adding each point's non-zero
// digit contribution from its own precomputed odd-multiple table.
func straus(scalars []*Scalar, points []*Jacobian) Jacobian {
	n := len(scalars)
	halfSize := 1 << (strausWindow - 1)

	tables := make([][]Jacobian, n)
	digitsAll := make([][]int32, n)
	maxLen := 0
	for i := 0; i < n; i++ {
		tables[i] = buildOddMultiples(points[i], halfSize)
		digitsAll[i] = wnaf(scalars[i], strausWindow)
		if len(digitsAll[i]) > maxLen {
			maxLen = len(digitsAll[i])
		}
	}

	acc := Identity()
	for pos := maxLen - 1; pos >= 0; pos-- {
		acc = Dbl(&acc)
		for i := 0; i < n; i++ {
			if pos >= len(digitsAll[i]) {
				continue
			}
			d := digitsAll[i][pos]
			if d == 0 {
				continue
			}
			mag := d
			if mag < 0 {
				mag = -mag
			}
			t := tables[i][(mag-1)/2]
			if d < 0 {
				t = Neg(&t)
			}
			acc = Add(&acc, &t)
		}
	}
	return acc
}

// bucketWindow picks the Pippenger bucket width c for n points:
// c = floor(log2 n) + 2, clamped to [4, 9].
func bucketWindow(n int) int {
	c := bits.Len(uint(n)) + 1
	if c < 4 {
		c = 4
	}
	if c > 9 {
		c = 9
	}
	return c
}

// signedDigits decomposes scalar into ceil(256/c)+1 signed c-bit digits,
// least significant first, each in [-2^(c-1), 2^(c-1)-1]. The extra
// trailing digit absorbs the carry that can propagate out of the top
// window when the scalar's high bits force a borrow.
func signedDigits(scalar *Scalar, c int) []int32 {
	var b [32]byte
	scalar.Bytes(&b)
	be := make([]byte, 32)
	for i := range b {
		be[31-i] = b[i]
	}
	k := new(big.Int).SetBytes(be)

	width := int64(1) << uint(c)
	half := width / 2
	numWindows := (256 + c - 1) / c
	mask := big.NewInt(width - 1)

	digits := make([]int32, numWindows+1)
	carry := int64(0)
	for i := 0; i < numWindows; i++ {
		chunk := new(big.Int).And(k, mask).Int64() + carry
		if chunk >= half {
			chunk -= width
			carry = 1
		} else {
			carry = 0
		}
		digits[i] = int32(chunk)
		k.Rsh(k, uint(c))
	}
	digits[numWindows] = int32(carry)
	return digits
}

// pippenger implements bucketed-signed-digit MSM: each window buckets
// points by digit magnitude (sign folded in by negating the point before
// the bucket add), combines buckets with the running-sum trick
// (Σ i·B_i = Σ of suffix running sums), then accumulates windows with
// doubling between them.
func pippenger(scalars []*Scalar, points []*Jacobian) Jacobian {
	n := len(scalars)
	c := bucketWindow(n)
	numBuckets := 1 << (c - 1)

	digits := make([][]int32, n)
	numWindows := 0
	for i := 0; i < n; i++ {
		digits[i] = signedDigits(scalars[i], c)
		numWindows = len(digits[i])
	}

	acc := Identity()
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < c; i++ {
			acc = Dbl(&acc)
		}

		buckets := make([]Jacobian, numBuckets+1)
		for i := range buckets {
			buckets[i] = Identity()
		}
		for i := 0; i < n; i++ {
			d := digits[i][w]
			if d == 0 {
				continue
			}
			mag := d
			neg := false
			if mag < 0 {
				mag = -mag
				neg = true
			}
			p := points[i]
			if neg {
				np := Neg(p)
				buckets[mag] = Add(&buckets[mag], &np)
			} else {
				buckets[mag] = Add(&buckets[mag], p)
			}
		}

		runningSum := Identity()
		windowSum := Identity()
		for i := numBuckets; i >= 1; i-- {
			runningSum = Add(&runningSum, &buckets[i])
			windowSum = Add(&windowSum, &runningSum)
		}
		acc = Add(&acc, &windowSum)
	}
	return acc
}

// MSMFixed computes Σ scalars[i]*table[i] using precomputed fixed-base
// tables, one per base point. n = 1 delegates to ScalarMulFixed directly.
func MSMFixed(scalars []*Scalar, tables []*FixedTable) Jacobian {
	n := len(scalars)
	if n == 0 {
		return Identity()
	}
	if n == 1 {
		return ScalarMulFixed(scalars[0], tables[0])
	}
	acc := Identity()
	for i := 0; i < n; i++ {
		t := ScalarMulFixed(scalars[i], tables[i])
		acc = Add(&acc, &t)
	}
	return acc
}

// Pedersen computes r*H + Σ values[i]*generators[i] as a single MSM over
// the combined (n+1)-length array; this is the library's named vector
// commitment entry point, not a distinct algorithm from MSM.
func Pedersen(r *Scalar, h *Jacobian, values []*Scalar, generators []*Jacobian) Jacobian {
	n := len(values)
	scalars := make([]*Scalar, 0, n+1)
	points := make([]*Jacobian, 0, n+1)
	scalars = append(scalars, r)
	points = append(points, h)
	scalars = append(scalars, values...)
	points = append(points, generators...)
	return MSM(scalars, points)
}
