// Best-first branch-and-bound over density-sorted scaled items.
//
// BranchAndBound keeps a max-priority frontier of partial decision paths
// ordered by their fractional-relaxation bound and always expands the most
// promising one:
//
//  1. Push the root (level −1, nothing decided) with its bound.
//  2. Pop the node with the largest bound (equal bounds: FIFO).
//  3. bound ≤ incumbent ⇒ discard. The test is ≤, not <: a node that can only
//     tie the incumbent cannot improve it.
//  4. No undecided item left ⇒ discard.
//  5. Otherwise branch on sorted[level+1]:
//     include – only when it fits; a strictly larger value replaces the
//     incumbent at once (at any depth, not only at leaves); pushed when its
//     bound still beats the (possibly new) incumbent.
//     exclude – pushed when its bound beats the incumbent.
//  6. Stop when the frontier is empty. This is the only terminal state.
//
// Node paths live in a parent-pointer arena (see arena.go); the winning
// decision sequence is rebuilt once at the end.
//
// Complexity:
//   - Per expansion: O(log F) heap work + O(n) for the two bounds.
//   - Nodes: pseudo-polynomial in the scaled value range. A tiny ε relative to
//     the cost magnitude widens that range and can exhaust memory; set
//     Options.MaxNodes / Options.MaxFrontier to turn that into
//     ErrResourceExhaustion instead.

package knapsack

import (
	"container/heap"
	"fmt"
	"math"
)

// bbEngine holds all state of a single search.
type bbEngine struct {
	// Instance (read-only during the search)
	sorted   []ScaledItem
	capacity int64

	// Limits, 0 = unlimited
	maxNodes    int
	maxFrontier int

	// Search state
	arena nodeArena
	pq    frontier
	seq   uint64

	// Incumbent
	bestValue int64
	bestID    int // arena slot, noParent while nothing beats the empty selection

	stats Stats
}

// newNode stores a node, enforcing MaxNodes.
func (e *bbEngine) newNode(n searchNode) (int, error) {
	if e.maxNodes > 0 && e.arena.len() >= e.maxNodes {
		return 0, fmt.Errorf("%w: node limit %d reached", ErrResourceExhaustion, e.maxNodes)
	}
	id := e.arena.add(n)
	e.stats.NodesCreated = e.arena.len()

	return id, nil
}

// push adds a node to the frontier, enforcing MaxFrontier.
func (e *bbEngine) push(id int, bound float64) error {
	if e.maxFrontier > 0 && e.pq.Len() >= e.maxFrontier {
		return fmt.Errorf("%w: frontier limit %d reached", ErrResourceExhaustion, e.maxFrontier)
	}
	heap.Push(&e.pq, frontierEntry{id: id, bound: bound, seq: e.seq})
	e.seq++
	if e.pq.Len() > e.stats.PeakFrontier {
		e.stats.PeakFrontier = e.pq.Len()
	}

	return nil
}

// bound is FractionalBound bound to this instance.
func (e *bbEngine) bound(level int, value, weight int64) float64 {
	return FractionalBound(level, value, weight, e.sorted, e.capacity)
}

// expand branches on the item after node id. The node must have passed the
// bound test and must have an undecided item left.
func (e *bbEngine) expand(id int) error {
	var (
		node = e.arena.at(id)
		lvl  = node.level + 1
		next = e.sorted[lvl]
		cid  int
		b    float64
		err  error
	)

	// include: weights are compared as capacity−w to stay clear of overflow.
	if next.Weight <= e.capacity-node.weight {
		value := node.value + next.ScaledCost
		weight := node.weight + next.Weight
		b = e.bound(lvl, value, weight)
		improves := value > e.bestValue
		if improves || b > float64(e.bestValue) {
			if cid, err = e.newNode(searchNode{
				parent: id, level: lvl, value: value, weight: weight, bound: b, take: true,
			}); err != nil {
				return err
			}
			if improves {
				e.bestValue = value
				e.bestID = cid
			}
			if b > float64(e.bestValue) {
				if err = e.push(cid, b); err != nil {
					return err
				}
			}
		}
	}

	// exclude
	b = e.bound(lvl, node.value, node.weight)
	if b > float64(e.bestValue) {
		if cid, err = e.newNode(searchNode{
			parent: id, level: lvl, value: node.value, weight: node.weight, bound: b, take: false,
		}); err != nil {
			return err
		}
		if err = e.push(cid, b); err != nil {
			return err
		}
	}

	return nil
}

// run drains the frontier.
func (e *bbEngine) run() error {
	var (
		entry frontierEntry
		node  searchNode
		last  = len(e.sorted) - 1
	)
	for e.pq.Len() > 0 {
		entry = heap.Pop(&e.pq).(frontierEntry)
		if entry.bound <= float64(e.bestValue) {
			e.stats.NodesPruned++

			continue
		}
		node = e.arena.at(entry.id)
		if node.level >= last {
			continue
		}
		e.stats.NodesExpanded++
		if err := e.expand(entry.id); err != nil {
			return err
		}
	}

	return nil
}

// checkSorted validates items and the density-order precondition, and makes
// sure the total scaled value fits in int64.
func checkSorted(sorted []ScaledItem) error {
	var (
		total int64
		i     int
		it    ScaledItem
	)
	for i, it = range sorted {
		if it.Weight <= 0 || it.ScaledCost < 0 {
			return fmt.Errorf("%w: item %d weight=%d scaled cost=%d", ErrInvalidItem, it.Index, it.Weight, it.ScaledCost)
		}
		if i > 0 && compareDensity(sorted[i-1], it) < 0 {
			return fmt.Errorf("%w: items not in density order at position %d", ErrInvalidConfiguration, i)
		}
		if total > math.MaxInt64-it.ScaledCost {
			return fmt.Errorf("%w: total scaled value overflows int64", ErrResourceExhaustion)
		}
		total += it.ScaledCost
	}

	return nil
}

// BranchAndBound runs the best-first search over sorted, which must be in
// SortByDensity order and must not change while the search runs.
//
// The returned Incumbent holds the best scaled value and its decision sequence
// over sorted. An empty Incumbent (Value 0, no selection) is a valid answer:
// nothing fits, or every fitting item scales to zero.
//
// Errors:
//   - ErrInvalidConfiguration for capacity ≤ 0, negative limits, or sorted not in density order.
//   - ErrInvalidItem for Weight ≤ 0 or ScaledCost < 0.
//   - ErrResourceExhaustion when opts.MaxNodes or opts.MaxFrontier is hit; the
//     Incumbent returned alongside is the best found before the limit.
//
// Only opts.MaxNodes and opts.MaxFrontier are read.
func BranchAndBound(sorted []ScaledItem, capacity int64, opts Options) (Incumbent, Stats, error) {
	if capacity <= 0 {
		return Incumbent{}, Stats{}, fmt.Errorf("%w: capacity=%d must be positive", ErrInvalidConfiguration, capacity)
	}
	if opts.MaxNodes < 0 || opts.MaxFrontier < 0 {
		return Incumbent{}, Stats{}, fmt.Errorf("%w: limits must be non-negative", ErrInvalidConfiguration)
	}
	if err := checkSorted(sorted); err != nil {
		return Incumbent{}, Stats{}, err
	}

	var e bbEngine
	e.sorted = sorted
	e.capacity = capacity
	e.maxNodes = opts.MaxNodes
	e.maxFrontier = opts.MaxFrontier
	e.bestID = noParent

	rootBound := e.bound(-1, 0, 0)
	root, err := e.newNode(searchNode{parent: noParent, level: -1, bound: rootBound})
	if err == nil {
		err = e.push(root, rootBound)
	}
	if err == nil {
		err = e.run()
	}

	inc := Incumbent{Value: e.bestValue, Selection: e.arena.selection(e.bestID)}
	e.stats.ScaledValue = e.bestValue

	return inc, e.stats, err
}
