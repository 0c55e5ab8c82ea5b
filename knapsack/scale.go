package knapsack

import (
	"fmt"
	"math"
)

// ScaleCosts derives the FPTAS scale factor and returns the scaled copy of items.
//
//	maxCost    = max(Cost)
//	scale      = ε·maxCost / (n·(1+ε))
//	ScaledCost = ⌊Cost / scale⌋
//
// The input slice is not modified. The returned slice preserves input order.
//
// Errors:
//   - ErrInvalidConfiguration if items is empty or ε is not a positive finite number.
//   - ErrInvalidItem if some cost is negative.
//   - ErrDegenerateScaling if maxCost == 0 or scale underflows to zero.
//   - ErrResourceExhaustion if a scaled cost, or their sum, does not fit in int64.
//
// Complexity: O(n).
func ScaleCosts(items []Item, eps float64) ([]ScaledItem, float64, error) {
	var n = len(items)
	if n == 0 {
		return nil, 0, fmt.Errorf("%w: cannot scale an empty catalog", ErrInvalidConfiguration)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return nil, 0, fmt.Errorf("%w: precision=%v", ErrInvalidConfiguration, eps)
	}

	var (
		maxCost int64
		it      Item
	)
	for _, it = range items {
		if it.Cost < 0 {
			return nil, 0, fmt.Errorf("%w: item %d cost=%d", ErrInvalidItem, it.Index, it.Cost)
		}
		if it.Cost > maxCost {
			maxCost = it.Cost
		}
	}
	if maxCost == 0 {
		return nil, 0, fmt.Errorf("%w: max cost is zero", ErrDegenerateScaling)
	}

	scale := eps * float64(maxCost) / (float64(n) * (1 + eps))
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, 0, fmt.Errorf("%w: scale=%v for precision=%v", ErrDegenerateScaling, scale, eps)
	}

	var (
		out   = make([]ScaledItem, n)
		total int64
		sc    float64
		i     int
	)
	for i, it = range items {
		sc = math.Floor(float64(it.Cost) / scale)
		// float64(MaxInt64) rounds up to 2^63, the first value that does not fit.
		if sc >= float64(math.MaxInt64) {
			return nil, 0, fmt.Errorf("%w: scaled cost of item %d overflows int64", ErrResourceExhaustion, it.Index)
		}
		out[i] = ScaledItem{Index: it.Index, Weight: it.Weight, ScaledCost: int64(sc)}
		if total > math.MaxInt64-out[i].ScaledCost {
			return nil, 0, fmt.Errorf("%w: total scaled value overflows int64", ErrResourceExhaustion)
		}
		total += out[i].ScaledCost
	}

	return out, scale, nil
}
