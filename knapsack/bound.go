package knapsack

// FractionalBound returns the fractional-relaxation (greedy LP) upper bound on
// the scaled value reachable from a partial state.
//
// The state is described by the last decided sorted position (level, −1 for
// the root), the accumulated scaled value and the accumulated weight:
//
//   - weight > capacity ⇒ 0 (infeasible; the caller prunes it).
//   - Otherwise walk sorted[level+1:], adding whole items while they fit,
//     then the fraction (capacity−w)·ScaledCost/Weight of the first item
//     that does not fit, and stop.
//
// Because sorted is in density order and the boundary item may be split,
// the result is ≥ the value of every feasible completion (admissible).
// sorted must not be reordered while a search uses it.
//
// Complexity: O(n − level).
func FractionalBound(level int, value, weight int64, sorted []ScaledItem, capacity int64) float64 {
	if weight > capacity {
		return 0
	}

	var (
		result = float64(value)
		w      = weight
		i      int
		it     ScaledItem
	)
	for i = level + 1; i < len(sorted); i++ {
		it = sorted[i]
		if it.Weight <= capacity-w {
			w += it.Weight
			result += float64(it.ScaledCost)

			continue
		}
		result += float64(capacity-w) * float64(it.ScaledCost) / float64(it.Weight)

		break
	}

	return result
}
