// Entry points.
//
// Solve validates the whole input up front (fail fast, no partial work) and
// routes by Options.Algo:
//
//   - AlgoScaledBranchAndBound: ScaleCosts → SortByDensity → BranchAndBound → Assemble.
//   - AlgoExactDP:              ExactDP.
//
// A caller gets either a well-formed Solution or a sentinel error; an input
// error is never reported as an empty Solution.

package knapsack

// Approximate solves with DefaultOptions and the given ε.
// It is the direct form of the (items, capacity, precision) contract.
func Approximate(items []Item, capacity int64, eps float64) (Solution, error) {
	opts := DefaultOptions()
	opts.Epsilon = eps

	return Solve(items, capacity, opts)
}

// Solve runs the solver selected by opts.Algo.
//
// Contracts:
//   - items[k].Index == k+1 (use NewCatalog); weights > 0; costs > 0.
//   - capacity > 0; opts.Epsilon > 0 for the scaled solver.
//
// Guarantees (scaled solver): TotalWeight ≤ capacity, each index at most once,
// identical output for identical input. TotalCost ≥ (1−ε)·OPT when the item
// with the largest cost weighs at most capacity. The result is not monotone
// in ε: a smaller ε may return a slightly lower cost than a larger one.
//
// Errors: ErrInvalidConfiguration, ErrDegenerateScaling, ErrInvalidItem,
// ErrResourceExhaustion (see types.go).
func Solve(items []Item, capacity int64, opts Options) (Solution, error) {
	sol, _, err := SolveWithStats(items, capacity, opts)

	return sol, err
}

// SolveWithStats is Solve plus search statistics. Stats is zero for AlgoExactDP.
func SolveWithStats(items []Item, capacity int64, opts Options) (Solution, Stats, error) {
	if err := validateAll(items, capacity, opts); err != nil {
		return Solution{}, Stats{}, err
	}
	if opts.Algo == AlgoExactDP {
		sol, err := ExactDP(items, capacity, opts)

		return sol, Stats{}, err
	}

	// 1) Cost Scaler.
	scaled, scale, err := ScaleCosts(items, opts.Epsilon)
	if err != nil {
		return Solution{}, Stats{}, err
	}

	// 2) Density Sorter. The list is owned by this call and never reordered again.
	if err = SortByDensity(scaled); err != nil {
		return Solution{}, Stats{}, err
	}

	// 3) Search Engine.
	inc, stats, err := BranchAndBound(scaled, capacity, opts)
	stats.Scale = scale
	if err != nil {
		return Solution{}, stats, err
	}

	// 4) Solution Assembler.
	return Assemble(inc, scaled, items), stats, nil
}
