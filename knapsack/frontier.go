package knapsack

// frontierEntry references a pending arena node together with its priority.
type frontierEntry struct {
	id    int     // arena slot
	bound float64 // priority: larger is better
	seq   uint64  // push order, breaks equal bounds FIFO
}

// frontier is a max-heap of pending nodes for container/heap.
//
// Ordering: larger bound first; equal bounds pop in the order they were
// pushed. The pair (bound, seq) is unique per entry, so the pop sequence is
// fully deterministic.
type frontier []frontierEntry

// Len returns the number of pending nodes.
func (f frontier) Len() int { return len(f) }

// Less reports whether entry i must be popped before entry j.
func (f frontier) Less(i, j int) bool {
	if f[i].bound != f[j].bound {
		return f[i].bound > f[j].bound
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be a frontierEntry. Called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(frontierEntry)) }

// Pop removes the last entry. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
