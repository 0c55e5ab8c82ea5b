// Package knapsack_test holds helpers shared by the *_test.go files:
// a brute-force oracle, deterministic instance generators and invariant checks.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/knapsack"
)

const (
	// seedDet keeps generated instances identical across runs.
	seedDet = int64(7)

	// bruteMaxN bounds brute-force instances (2^n subsets).
	bruteMaxN = 14
)

// bruteForceOPT enumerates every subset and returns the optimal cost.
func bruteForceOPT(t *testing.T, items []knapsack.Item, capacity int64) int64 {
	t.Helper()
	require.LessOrEqual(t, len(items), bruteMaxN, "instance too large for brute force")

	var (
		n    = len(items)
		best int64
		mask int
		i    int
		w, c int64
	)
	for mask = 0; mask < 1<<n; mask++ {
		w, c = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				c += items[i].Cost
			}
		}
		if w <= capacity && c > best {
			best = c
		}
	}

	return best
}

// randomInstance builds n items with weights in [1,maxW] and costs in
// [1,maxC], and a capacity of roughly half the total weight. Every item
// fits on its own, so maxCost ≤ OPT holds.
func randomInstance(rng *rand.Rand, n int, maxW, maxC int64) ([]knapsack.Item, int64) {
	pairs := make([][2]int64, n)
	var (
		i    int
		sumW int64
		maxI int64
	)
	for i = 0; i < n; i++ {
		pairs[i] = [2]int64{1 + rng.Int63n(maxW), 1 + rng.Int63n(maxC)}
		sumW += pairs[i][0]
		if pairs[i][0] > maxI {
			maxI = pairs[i][0]
		}
	}
	capacity := sumW / 2
	if capacity < maxI {
		capacity = maxI
	}

	return knapsack.NewCatalog(pairs), capacity
}

// requireFeasible checks that sol is consistent with items and capacity:
// weight within capacity, valid and unique indices, totals recomputed from items.
func requireFeasible(t *testing.T, items []knapsack.Item, capacity int64, sol knapsack.Solution) {
	t.Helper()
	require.LessOrEqual(t, sol.TotalWeight, capacity, "weight exceeds capacity")

	var (
		seen = make(map[int]struct{}, len(sol.Indices))
		w, c int64
		idx  int
		ok   bool
	)
	for _, idx = range sol.Indices {
		require.GreaterOrEqual(t, idx, 1, "index below range")
		require.LessOrEqual(t, idx, len(items), "index above range")
		_, ok = seen[idx]
		require.False(t, ok, "index %d selected twice", idx)
		seen[idx] = struct{}{}
		w += items[idx-1].Weight
		c += items[idx-1].Cost
	}
	require.Equal(t, w, sol.TotalWeight, "TotalWeight must be the true weight")
	require.Equal(t, c, sol.TotalCost, "TotalCost must be the true cost")
}
