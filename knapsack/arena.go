package knapsack

// noParent marks the root node in the arena.
const noParent = -1

// searchNode is one partial decision path. The path itself is not stored:
// each node keeps its parent's arena slot and the decision for its own level,
// so branching costs O(1) instead of copying the whole selection.
type searchNode struct {
	parent int     // arena slot of the parent, noParent for the root
	level  int     // last decided sorted position, −1 for the root
	value  int64   // accumulated scaled cost
	weight int64   // accumulated true weight
	bound  float64 // FractionalBound of this state
	take   bool    // decision for position level
}

// nodeArena owns every node created by one search. Slots are never reused,
// so a slot index stays valid as a back-reference for the whole search.
type nodeArena struct {
	nodes []searchNode
}

// add stores n and returns its slot.
func (a *nodeArena) add(n searchNode) int {
	a.nodes = append(a.nodes, n)

	return len(a.nodes) - 1
}

// at returns a copy of the node in slot id.
func (a *nodeArena) at(id int) searchNode { return a.nodes[id] }

// len returns the number of nodes ever created.
func (a *nodeArena) len() int { return len(a.nodes) }

// selection rebuilds the decision sequence for positions 0..level of node id
// by walking parent links back to the root.
//
// Complexity: O(level).
func (a *nodeArena) selection(id int) []bool {
	if id == noParent {
		return nil
	}
	var (
		n   = a.nodes[id]
		out = make([]bool, n.level+1)
	)
	for id != noParent {
		n = a.nodes[id]
		if n.level >= 0 {
			out[n.level] = n.take
		}
		id = n.parent
	}

	return out
}
