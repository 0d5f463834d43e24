// Package paths precomputes, for each demand pair, the finite set of
// admissible simple paths that could ever carry that demand.
//
// Admissibility is a property of the union graph (public links plus every
// private link regardless of owner): a path is admissible in principle;
// whether a given coalition can use it is decided later by the coalition
// valuation, which drops the LP columns of paths traversing links the
// coalition cannot see. This separation is the key efficiency trick of the
// whole engine: the combinatorial path search runs once, while the 2ⁿ
// per-coalition evaluations reduce to linear programs over a fixed column
// set.
//
// Guarantees:
//
//   - Simple paths only: no repeated vertex.
//   - Bounded: at most MaxHops links per path, and aggregate latency within
//     the pair's ceiling when one is set.
//   - Deterministic order: paths are sorted by increasing latency, ties
//     broken by the lexicographic link-ID sequence, so downstream LP column
//     ordering is reproducible across runs.
//   - A demand pair with zero admissible paths is not an error; it simply
//     contributes zero value to every coalition.
//
// Pruning: when a pair carries a latency ceiling, a single-source Dijkstra
// pass over the reversed union graph yields, per vertex, a lower bound on
// the remaining latency to the destination; DFS branches whose partial
// latency plus that bound exceed the ceiling are cut without expansion.
//
// Complexity:
//
//   - Bound pass:  O((V + E) log V) per demand pair with a ceiling.
//   - Enumeration: output-sensitive; worst case O(b^MaxHops) for branching
//     factor b, which is why MaxHops is a hard option rather than a hint.
package paths
