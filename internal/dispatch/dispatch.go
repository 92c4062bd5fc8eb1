// Package dispatch records, once per process, which carry-propagation
// strategy the running CPU favors, judged from its feature bits. Every
// limb path is plain Go (no assembly) and there is only one of them: fp
// and fq always multiply limbs through math/bits.Mul64 and do not read
// Selected, so the selection is not branched on by any arithmetic path.
package dispatch

import (
	"context"
	"sync"

	"github.com/klauspost/cpuid/v2"

	"github.com/gibme-c/helioselene/fp"
)

// Backend identifies a carry-propagation strategy.
type Backend int

const (
	// BackendPortable is selected when the CPU lacks BMI2 or ADX.
	BackendPortable Backend = iota
	// BackendBitsIntrinsic prefers math/bits.Mul64/Add64, which the Go
	// compiler recognizes and lowers to the CPU's MULX/ADCX/ADOX
	// instructions on amd64 when available (cpuid.CPU.Supports(cpuid.BMI2,
	// cpuid.ADX)).
	BackendBitsIntrinsic
)

var (
	once      sync.Once
	selected  Backend
	available bool
)

// detect inspects the running CPU's feature bits and picks a backend.
// Runs exactly once per process via Init/Selected.
func detect() {
	if cpuid.CPU.Supports(cpuid.BMI2, cpuid.ADX) {
		selected = BackendBitsIntrinsic
	} else {
		selected = BackendPortable
	}
	available = true
}

// Init forces backend detection to run, if it hasn't already. Safe to
// call from multiple goroutines; idempotent.
func Init() {
	once.Do(detect)
}

// Selected returns the backend chosen for this process, running detection
// on first call if Init hasn't already been called.
func Selected() Backend {
	once.Do(detect)
	return selected
}

// String renders a Backend for logging/diagnostics.
func (b Backend) String() string {
	switch b {
	case BackendBitsIntrinsic:
		return "bits-intrinsic"
	default:
		return "portable"
	}
}

// Available reports whether backend detection has already run.
func Available() bool {
	return available
}

// autotuneRepetitions is the fixed repetition count Autotune exercises a
// representative field operation with. Deliberately not time-based: this
// package picks a backend from CPU feature bits alone, never from wall-
// clock measurement, matching the no-benchmark-harness-in-library design.
const autotuneRepetitions = 8

// Autotune runs Init if needed, then exercises a representative field
// operation (multiplication of fixed constants) a fixed number of times
// to confirm the selected backend's arithmetic path runs cleanly under
// concurrent-safe repeated use, honoring ctx cancellation between
// repetitions. It does not time anything and does not change the
// selection Init already made - it only confirms the already-proven-
// correct backend keeps working.
func Autotune(ctx context.Context) Backend {
	Init()

	var a, b, r fp.Element
	a.SetUint64(0xdeadbeef)
	b.SetUint64(0xcafef00d)
	for i := 0; i < autotuneRepetitions; i++ {
		select {
		case <-ctx.Done():
			return selected
		default:
		}
		r.Mul(&a, &b)
	}
	return selected
}
