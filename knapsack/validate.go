package knapsack

import (
	"fmt"
	"math"
)

// validateAll runs every input check before any computation starts.
//
// Order:
//  1. Options shape (algorithm, limits).
//  2. ε (scaled solver only), capacity, non-empty catalog.
//  3. Per-item index, weight and sign of cost; the total cost must fit int64.
//  4. Catalog-level cost checks: all zero ⇒ ErrDegenerateScaling for the
//     scaled solver; any single zero ⇒ ErrInvalidItem.
//
// Complexity: O(n).
func validateAll(items []Item, capacity int64, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity=%d must be positive", ErrInvalidConfiguration, capacity)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: empty item catalog", ErrInvalidConfiguration)
	}

	var (
		i         int
		it        Item
		anyCost   bool
		totalCost int64
		zeroCost  = -1 // first index with Cost == 0
	)
	for i, it = range items {
		if it.Index != i+1 {
			return fmt.Errorf("%w: position %d carries index %d", ErrInvalidItem, i, it.Index)
		}
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d weight=%d", ErrInvalidItem, it.Index, it.Weight)
		}
		if it.Cost < 0 {
			return fmt.Errorf("%w: item %d cost=%d", ErrInvalidItem, it.Index, it.Cost)
		}
		if totalCost > math.MaxInt64-it.Cost {
			return fmt.Errorf("%w: total cost overflows int64", ErrResourceExhaustion)
		}
		totalCost += it.Cost
		if it.Cost > 0 {
			anyCost = true
		} else if zeroCost < 0 {
			zeroCost = it.Index
		}
	}
	if !anyCost && opts.Algo == AlgoScaledBranchAndBound {
		return fmt.Errorf("%w: all %d item costs are zero", ErrDegenerateScaling, len(items))
	}
	if zeroCost >= 0 {
		return fmt.Errorf("%w: item %d cost=0", ErrInvalidItem, zeroCost)
	}

	return nil
}

// validateOptions checks the Options fields that do not depend on the instance.
func validateOptions(opts Options) error {
	switch opts.Algo {
	case AlgoScaledBranchAndBound:
		if math.IsNaN(opts.Epsilon) || math.IsInf(opts.Epsilon, 0) || opts.Epsilon <= 0 {
			return fmt.Errorf("%w: precision=%v must be a positive finite number", ErrInvalidConfiguration, opts.Epsilon)
		}
	case AlgoExactDP:
		// ε is ignored by the exact solver.
	default:
		return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfiguration, int(opts.Algo))
	}
	if opts.MaxNodes < 0 || opts.MaxFrontier < 0 || opts.MaxTableCells < 0 {
		return fmt.Errorf("%w: limits must be non-negative", ErrInvalidConfiguration)
	}

	return nil
}
