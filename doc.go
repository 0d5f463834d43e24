// Package shapnet computes exact Shapley values for network operators in a
// multi-operator internet topology.
//
// 🚀 What is shapnet?
//
//	A deterministic cooperative-game engine that answers one question:
//	how much of the network's aggregate deliverable value does each
//	operator's private infrastructure actually contribute?
//
// The pipeline runs in four strictly one-directional stages:
//
//	topology/  — normalize the public-link, private-link and demand tables
//	             into an immutable in-memory multigraph with an
//	             operator-ownership map
//	paths/     — enumerate, once, every admissible simple path per demand
//	             pair over the union of all links (hop- and latency-bounded)
//	coalition/ — value any subset of operators by solving a linear program
//	             that allocates demand across the admissible paths whose
//	             links the coalition can see; enumerate all 2ⁿ subsets on a
//	             fixed-size worker pool behind an operator-count guard
//	shapley/   — fold the complete subset→value vector into per-operator
//	             Shapley values and verify the efficiency property
//
// ✨ Guarantees
//
//   - Exact: brute-force powerset enumeration, no sampling — hence the
//     hard ceiling on operator count (total cost is O(2ⁿ · LP-solve)).
//   - Deterministic: path order, LP column order and the result vector are
//     reproducible across runs regardless of worker scheduling.
//   - Monotone by construction: more members ⇒ weakly more visible links
//     ⇒ weakly more deliverable value.
//
// Quick start:
//
//	topo, err := topology.Load(cities, public, private, demands)
//	...
//	res, err := shapley.Compute(ctx, topo)
//	...
//	for i, op := range res.Operators {
//	    fmt.Printf("%s: %.4f\n", op, res.Values[i])
//	}
package shapnet
