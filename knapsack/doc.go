// Package knapsack provides an approximate 0/1 knapsack solver.
//
// Given a capacity C and items (weight, cost), it selects a subset of total
// weight ≤ C whose cost is at least (1−ε)·OPT, trading exactness for bounded
// running time. The bound holds when the most valuable item fits on its own
// (maxCost ≤ OPT); otherwise scaling is coarser than OPT needs and the answer
// is only guaranteed to be feasible:
//
//   - Approximate / Solve — FPTAS-style cost scaling followed by a best-first
//     branch-and-bound search pruned with the fractional-relaxation bound.
//
//   - Scaling:  scale = ε·maxCost / (n·(1+ε)), scaled cost = ⌊cost/scale⌋.
//
//   - Ordering: items by scaled density, ties by ascending index.
//
//   - Frontier: max-heap on bound, ties popped FIFO.
//
//   - ExactDP — O(n·C) dynamic programme, the exact reference.
//
// All functions are pure and single-threaded; one call owns all of its
// intermediate state. There is no built-in timeout: bound the work with
// Options.MaxNodes / Options.MaxFrontier, or run the call in a goroutine and
// discard it.
//
// Example:
//
//	items := knapsack.NewCatalog([][2]int64{{10, 60}, {20, 100}, {30, 120}})
//	sol, err := knapsack.Approximate(items, 50, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.TotalWeight, sol.TotalCost, sol.Indices)
package knapsack
