package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/knapsack"
)

// TestExactDP_MatchesBruteForce compares the DP optimum with full enumeration.
func TestExactDP_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 3))
	opts := knapsack.DefaultOptions()
	for round := 0; round < 50; round++ {
		items, capacity := randomInstance(rng, 1+round%bruteMaxN, 25, 80)

		sol, err := knapsack.ExactDP(items, capacity, opts)
		require.NoError(t, err)
		requireFeasible(t, items, capacity, sol)
		assert.Equal(t, bruteForceOPT(t, items, capacity), sol.TotalCost, "round=%d", round)
		assert.IsIncreasing(t, sol.Indices, "ascending index order")
	}
}

// TestExactDP_HugeCapacity shrinks the table to Σweight when everything fits.
func TestExactDP_HugeCapacity(t *testing.T) {
	items := knapsack.NewCatalog([][2]int64{{3, 4}, {5, 6}})
	opts := knapsack.DefaultOptions()
	opts.MaxTableCells = 100

	sol, err := knapsack.ExactDP(items, 1<<40, opts)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Solution{TotalWeight: 8, TotalCost: 10, Indices: []int{1, 2}}, sol)
}

// TestExactDP_TableLimit reports ErrResourceExhaustion above MaxTableCells.
func TestExactDP_TableLimit(t *testing.T) {
	items := knapsack.NewCatalog([][2]int64{{30, 4}, {50, 6}})
	opts := knapsack.DefaultOptions()
	opts.MaxTableCells = 10

	_, err := knapsack.ExactDP(items, 60, opts)
	assert.ErrorIs(t, err, knapsack.ErrResourceExhaustion)
}

// TestExactDP_Validation shares validation with Solve but ignores ε.
func TestExactDP_Validation(t *testing.T) {
	opts := knapsack.Options{Epsilon: -1}

	_, err := knapsack.ExactDP(nil, 10, opts)
	assert.ErrorIs(t, err, knapsack.ErrInvalidConfiguration)

	_, err = knapsack.ExactDP(knapsack.NewCatalog([][2]int64{{1, 0}}), 10, opts)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem, "zero cost without scaling is an item error")

	sol, err := knapsack.ExactDP(knapsack.NewCatalog([][2]int64{{2, 7}}), 10, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sol.TotalCost)
}
