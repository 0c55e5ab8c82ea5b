// Core types, sentinel errors and options.
//
// Data flow:
//
//	[]Item ─ScaleCosts→ []ScaledItem ─SortByDensity→ sorted list
//	       ─BranchAndBound (FractionalBound inside)→ Incumbent
//	       ─Assemble→ Solution
//
// Errors (sentinel):
//
//	– ErrInvalidConfiguration  precision ≤ 0, capacity ≤ 0, empty catalog, bad Options.
//	– ErrDegenerateScaling     every cost is zero, or the scale factor collapses.
//	– ErrInvalidItem           non-positive weight, negative cost, zero cost, bad index.
//	– ErrResourceExhaustion    a caller-imposed limit (nodes, frontier, DP cells)
//	                           was exceeded, or scaled values overflow int64.

package knapsack

import (
	"errors"
	"slices"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrInvalidConfiguration indicates a bad precision, capacity, empty catalog
	// or malformed Options.
	ErrInvalidConfiguration = errors.New("knapsack: invalid configuration")

	// ErrDegenerateScaling indicates that the cost scale factor is zero or
	// undefined (all costs are zero, or ε is so small the scale underflows).
	ErrDegenerateScaling = errors.New("knapsack: degenerate cost scaling")

	// ErrInvalidItem indicates an item with non-positive weight, non-positive
	// cost, or an index that does not match its position in the catalog.
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrResourceExhaustion indicates that the search (or the exact DP table)
	// grew beyond a limit set in Options, or that scaled values overflow int64.
	ErrResourceExhaustion = errors.New("knapsack: resource limit exceeded")
)

// Item is one catalog record. Index is the 1-based position in input order
// and serves as the item identity.
type Item struct {
	Index  int
	Weight int64
	Cost   int64
}

// NewCatalog builds a catalog from (weight, cost) pairs, assigning 1-based
// indices in order of appearance. Values are not validated here; Solve does.
func NewCatalog(pairs [][2]int64) []Item {
	items := make([]Item, len(pairs))
	var i int
	for i = range pairs {
		items[i] = Item{Index: i + 1, Weight: pairs[i][0], Cost: pairs[i][1]}
	}

	return items
}

// ScaledItem is an Item whose cost has been replaced by ⌊Cost/scale⌋.
// ScaledCost == 0 is a legitimate outcome for cheap items.
type ScaledItem struct {
	Index      int
	Weight     int64
	ScaledCost int64
}

// Incumbent is the best feasible selection found by BranchAndBound.
// Selection[i] reports whether sorted position i is taken; positions past
// len(Selection) are not taken.
type Incumbent struct {
	Value     int64
	Selection []bool
}

// Solution is the final answer in true (unscaled) units.
// Indices follow the density order of the sorted scaled list for the
// approximate solver, and ascending index order for ExactDP.
type Solution struct {
	TotalWeight int64
	TotalCost   int64
	Indices     []int
}

// Len returns the number of selected items.
func (s Solution) Len() int { return len(s.Indices) }

// Contains reports whether the item with the given 1-based index is selected.
func (s Solution) Contains(index int) bool { return slices.Contains(s.Indices, index) }

// Stats describes one approximate search.
type Stats struct {
	Scale         float64 // cost divisor derived from ε
	ScaledValue   int64   // incumbent value in scaled units
	NodesCreated  int     // nodes allocated in the arena, root included
	NodesExpanded int     // nodes popped and branched on
	NodesPruned   int     // nodes popped and discarded by the bound test
	PeakFrontier  int     // largest frontier size observed
}

// Algo selects the solver used by Solve.
type Algo int

const (
	// AlgoScaledBranchAndBound scales costs by ε and runs best-first
	// branch-and-bound with the fractional bound. Result ≥ (1−ε)·OPT when
	// the max-cost item fits on its own.
	AlgoScaledBranchAndBound Algo = iota

	// AlgoExactDP runs the O(n·C) dynamic programme over capacity. Exact,
	// but memory grows with capacity; guarded by Options.MaxTableCells.
	AlgoExactDP
)

// String returns the algorithm name.
func (a Algo) String() string {
	switch a {
	case AlgoScaledBranchAndBound:
		return "scaled-bnb"
	case AlgoExactDP:
		return "exact-dp"
	default:
		return "unknown"
	}
}

// Defaults used by DefaultOptions.
const (
	// DefaultEpsilon is the approximation tolerance used when none is given.
	DefaultEpsilon = 0.1

	// DefaultMaxTableCells caps ExactDP at 64M decision cells.
	DefaultMaxTableCells = 1 << 26
)

// Options configures Solve.
//
//	Epsilon       – approximation tolerance ε > 0 (scaled solver only).
//	Algo          – solver selection.
//	MaxNodes      – cap on search nodes ever created; 0 means unlimited.
//	MaxFrontier   – cap on pending frontier nodes; 0 means unlimited.
//	MaxTableCells – cap on n·(C+1) for ExactDP; 0 means unlimited.
type Options struct {
	Epsilon       float64
	Algo          Algo
	MaxNodes      int
	MaxFrontier   int
	MaxTableCells int64
}

// DefaultOptions returns Options with DefaultEpsilon, the scaled
// branch-and-bound solver, no search limits and DefaultMaxTableCells.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		Algo:          AlgoScaledBranchAndBound,
		MaxNodes:      0,
		MaxFrontier:   0,
		MaxTableCells: DefaultMaxTableCells,
	}
}
