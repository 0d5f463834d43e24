// Package coalition defines the subset key of the cooperative game and
// implements the two hot stages of the engine: the per-coalition value
// function (one linear program per subset) and the powerset scheduler
// that evaluates all 2ⁿ subsets on a fixed-size worker pool.
//
// Coalition key:
//
//	A Coalition is a bitmask over the topology's sorted operator list
//	(bit i set ⇔ Operators[i] is a member), so subset equality is
//	structural and the powerset enumeration is exactly the integer range
//	[0, 2ⁿ) with no duplicates: 0 is the empty coalition, 2ⁿ−1 the grand
//	coalition.
//
// Value function (Value):
//
//	A linear program over the precomputed admissible-path table. One flow
//	variable per (demand pair, path) column whose links are all visible to
//	the coalition; columns touching an invisible link are dropped rather
//	than capacity-zeroed, which keeps the program small. The objective
//	maximizes Σ unit-value × routed volume, subject to per-link capacity
//	and per-pair volume caps. Solved with gonum's simplex
//	(optimize/convex/lp) after adding one slack variable per constraint
//	to reach standard equality form. Only the optimal objective value is
//	used; alternate optimal flow assignments are immaterial.
//
// Scheduler (EnumerateValues):
//
//	An embarrassingly parallel map over the coalition key space on an
//	ants goroutine pool. Workers receive immutable snapshots (topology
//	and path table are read-only) and each writes exactly one slot of the
//	result vector, so no locks are needed. A single failed solve aborts
//	the whole run: the Shapley formula requires totality over the
//	powerset, so partial results are never reported.
//
// Guard:
//
//	Total work is O(2ⁿ · LP-solve). The operator-count ceiling
//	(Options.MaxOperators, default DefaultMaxOperators) is enforced
//	before any enumeration begins; raising it is a deliberate caller
//	decision via WithMaxOperators, never a silent truncation.
package coalition
