// Package lvknap is an approximate 0/1 knapsack toolkit: a library that picks
// a subset of items under a weight capacity with a (1−ε) share of the optimal
// cost whenever the most valuable item fits on its own, plus a command-line
// front end for single and batch runs.
//
// 🚀 What is lvknap?
//
//	A small, deterministic, single-threaded solver core with:
//		• Cost scaling: FPTAS-style rounding of costs to a bounded integer range
//		• Density ordering: exact 128-bit ratio comparison, ties by index
//		• Fractional bound: the greedy LP relaxation used for pruning
//		• Best-first branch and bound: heap frontier, parent-pointer node arena
//		• Exact reference: O(n·C) dynamic programme
//
// ✨ Why choose lvknap?
//
//   - Predictable – identical input gives identical output, every tie is ordered
//   - Bounded – node and frontier limits turn runaway searches into errors
//   - Typed failures – four sentinel errors, wrapped with detail
//
// Layout:
//
//	knapsack/         — solver core: scaling, ordering, bound, search, assembly, exact DP
//	internal/textio/  — plain-text instance format and YAML batch documents
//	internal/config/  — KNAPSACK_* environment configuration
//	internal/logger/  — zerolog setup
//	internal/batch/   — concurrent batch runner with JSON-lines reports
//	cmd/knapsack/     — cobra CLI: solve, exact, batch, version
//
// Quick example:
//
//	$ printf '0.5\n50\n10 60\n20 100\n30 120\n' | knapsack
//	50 220
//	2
//	3
//
//	go get github.com/katalvlaran/lvknap/knapsack
package lvknap
