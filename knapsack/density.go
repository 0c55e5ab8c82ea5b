package knapsack

import (
	"fmt"
	"math/bits"
	"sort"
)

// densityOrder implements sort.Interface over scaled items, ordering by
// ScaledCost/Weight descending and then by Index ascending.
//
// Densities are compared exactly by cross multiplication,
// a.c·b.w vs b.c·a.w, in 128-bit arithmetic, so equal ratios tie exactly.
type densityOrder []ScaledItem

func (d densityOrder) Len() int { return len(d) }
func (d densityOrder) Less(i, j int) bool {
	c := compareDensity(d[i], d[j])
	if c == 0 {
		return d[i].Index < d[j].Index
	}

	return c > 0
}
func (d densityOrder) Swap(i, j int) { d[i], d[j] = d[j], d[i] }

// compareDensity returns +1 if a is denser than b, −1 if sparser, 0 on a tie.
// Both items must have positive weight and non-negative scaled cost.
func compareDensity(a, b ScaledItem) int {
	lhi, llo := bits.Mul64(uint64(a.ScaledCost), uint64(b.Weight))
	rhi, rlo := bits.Mul64(uint64(b.ScaledCost), uint64(a.Weight))
	switch {
	case lhi != rhi:
		if lhi > rhi {
			return 1
		}

		return -1
	case llo != rlo:
		if llo > rlo {
			return 1
		}

		return -1
	default:
		return 0
	}
}

// SortByDensity reorders items in place by ScaledCost/Weight descending.
// Ties keep ascending Index, so the order is a total order and the result
// is independent of the input permutation.
//
// Errors:
//   - ErrInvalidItem if any item has Weight ≤ 0 or ScaledCost < 0; items is
//     left untouched in that case.
//
// Complexity: O(n log n).
func SortByDensity(items []ScaledItem) error {
	var it ScaledItem
	for _, it = range items {
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d weight=%d has no density", ErrInvalidItem, it.Index, it.Weight)
		}
		if it.ScaledCost < 0 {
			return fmt.Errorf("%w: item %d scaled cost=%d", ErrInvalidItem, it.Index, it.ScaledCost)
		}
	}
	sort.Sort(densityOrder(items))

	return nil
}
