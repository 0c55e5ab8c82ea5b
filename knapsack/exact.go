package knapsack

import (
	"fmt"
	"math"
)

// ExactDP solves the instance exactly with the classic dynamic programme over
// capacity and is the reference the approximate solver is measured against.
//
//	best[w]     = max cost using the items seen so far within weight w
//	take[i][w]  = item i improved best[w] when it was added
//
// The table width is min(capacity, Σweight)+1, so a generous capacity does
// not cost memory. Reconstruction walks the take table backwards.
// Indices are returned in ascending index order. Among equal-cost optima the
// one that leaves later items out is reported.
//
// Errors: those of validateAll, plus ErrResourceExhaustion when
// n·(width) exceeds opts.MaxTableCells (0 disables the check) or the
// platform's int range.
//
// Complexity: O(n·width) time, O(n·width) bits of memory plus O(width) int64.
func ExactDP(items []Item, capacity int64, opts Options) (Solution, error) {
	opts.Algo = AlgoExactDP
	if err := validateAll(items, capacity, opts); err != nil {
		return Solution{}, err
	}

	var (
		n      = len(items)
		limit  = capacity
		sumW   int64
		it     Item
		i      int
		w      int64
		cand   int64
		stride int64
	)
	for _, it = range items {
		if sumW > limit-it.Weight {
			sumW = limit

			break
		}
		sumW += it.Weight
	}
	if sumW < limit {
		limit = sumW
	}
	stride = limit + 1

	if stride > int64(math.MaxInt)/int64(n) {
		return Solution{}, fmt.Errorf("%w: DP table %d×%d does not fit in memory", ErrResourceExhaustion, n, stride)
	}
	cells := int64(n) * stride
	if opts.MaxTableCells > 0 && cells > opts.MaxTableCells {
		return Solution{}, fmt.Errorf("%w: DP table needs %d cells, limit %d", ErrResourceExhaustion, cells, opts.MaxTableCells)
	}

	best := make([]int64, stride)
	take := make([]bool, cells)
	for i, it = range items {
		row := take[int64(i)*stride : int64(i+1)*stride]
		for w = limit; w >= it.Weight; w-- {
			cand = best[w-it.Weight] + it.Cost
			if cand > best[w] {
				best[w] = cand
				row[w] = true
			}
		}
	}

	var (
		sol = Solution{Indices: make([]int, 0)}
		rev []int
	)
	w = limit
	for i = n - 1; i >= 0; i-- {
		if take[int64(i)*stride+w] {
			rev = append(rev, items[i].Index)
			sol.TotalWeight += items[i].Weight
			sol.TotalCost += items[i].Cost
			w -= items[i].Weight
		}
	}
	for i = len(rev) - 1; i >= 0; i-- {
		sol.Indices = append(sol.Indices, rev[i])
	}

	return sol, nil
}
