package msort

import (
	"math/bits"
	"runtime"
)

// RecommendedDepth returns the suggested parallel depth budget for this
// machine: floor(log2(P)) for P available processors, so that 2^depth
// leaf workers roughly match the core count. Returns 0 (fully
// sequential) when fewer than two processors are available.
//
// The value is a recommendation only; callers may pass any budget to
// WithMaxDepth. Larger budgets oversubscribe the scheduler but remain
// correct.
func RecommendedDepth() int {
	return recommendedDepthFor(runtime.GOMAXPROCS(0))
}

func recommendedDepthFor(p int) int {
	if p < 2 {
		return 0
	}
	// floor(log2(p)) for p >= 1 is the index of the highest set bit.
	return bits.Len(uint(p)) - 1
}
