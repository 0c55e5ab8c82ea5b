package knapsack

// Assemble maps an Incumbent over the sorted scaled list back to catalog items.
//
// For every position i with inc.Selection[i] set, sorted[i].Index is appended
// to Solution.Indices, so the indices come out in density order. Totals are
// summed from catalog (true weights and costs); scaled costs only guided the
// search.
//
// catalog must be indexed by Index, i.e. catalog[k].Index == k+1, as produced
// by NewCatalog and enforced by Solve. Indices is never nil; an empty
// selection yields an empty, non-nil slice.
//
// Complexity: O(len(inc.Selection)).
func Assemble(inc Incumbent, sorted []ScaledItem, catalog []Item) Solution {
	var (
		sol = Solution{Indices: make([]int, 0, len(inc.Selection))}
		i   int
		on  bool
		it  Item
	)
	for i, on = range inc.Selection {
		if !on {
			continue
		}
		it = catalog[sorted[i].Index-1]
		sol.Indices = append(sol.Indices, it.Index)
		sol.TotalWeight += it.Weight
		sol.TotalCost += it.Cost
	}

	return sol
}
