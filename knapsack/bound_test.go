package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvknap/knapsack"
)

// sortedTriple is already in density order: 0.4, 0.35, 0.3.
var sortedTriple = []knapsack.ScaledItem{
	{Index: 1, Weight: 10, ScaledCost: 4},
	{Index: 2, Weight: 20, ScaledCost: 7},
	{Index: 3, Weight: 30, ScaledCost: 9},
}

// TestFractionalBound_Root fills items 1 and 2 whole and 20/30 of item 3.
func TestFractionalBound_Root(t *testing.T) {
	got := knapsack.FractionalBound(-1, 0, 0, sortedTriple, 50)
	assert.InDelta(t, 4+7+6.0, got, 1e-12)
}

// TestFractionalBound_Infeasible returns 0 once the weight exceeds capacity.
func TestFractionalBound_Infeasible(t *testing.T) {
	assert.Zero(t, knapsack.FractionalBound(1, 11, 60, sortedTriple, 50))
}

// TestFractionalBound_LastLevel has nothing left to add.
func TestFractionalBound_LastLevel(t *testing.T) {
	assert.Equal(t, 13.0, knapsack.FractionalBound(2, 13, 40, sortedTriple, 50))
}

// TestFractionalBound_AllFit adds every remaining item whole.
func TestFractionalBound_AllFit(t *testing.T) {
	assert.Equal(t, 20.0, knapsack.FractionalBound(-1, 0, 0, sortedTriple, 100))
}

// TestFractionalBound_StopsAtFirstMisfit never skips the boundary item to
// look at later, smaller ones.
func TestFractionalBound_StopsAtFirstMisfit(t *testing.T) {
	items := []knapsack.ScaledItem{
		{Index: 1, Weight: 10, ScaledCost: 10},
		{Index: 2, Weight: 1, ScaledCost: 0},
	}
	// From level −1 with capacity 5: 5/10 of item 1 and stop.
	assert.Equal(t, 5.0, knapsack.FractionalBound(-1, 0, 0, items, 5))
	// After excluding item 1 only item 2 remains, which fits whole.
	assert.Equal(t, 0.0, knapsack.FractionalBound(0, 0, 0, items, 5))
}

// TestFractionalBound_Admissible compares the bound at the root with every
// feasible subset value of a small instance.
func TestFractionalBound_Admissible(t *testing.T) {
	const capacity = 35
	bound := knapsack.FractionalBound(-1, 0, 0, sortedTriple, capacity)

	var mask int
	for mask = 0; mask < 8; mask++ {
		var w, v int64
		for i := 0; i < 3; i++ {
			if mask&(1<<i) != 0 {
				w += sortedTriple[i].Weight
				v += sortedTriple[i].ScaledCost
			}
		}
		if w <= capacity {
			assert.GreaterOrEqual(t, bound, float64(v), "subset %03b", mask)
		}
	}
}
