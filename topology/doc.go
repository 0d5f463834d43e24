// Package topology normalizes the three input tables of the valuation
// pipeline (public links, private links, demand pairs) into an immutable
// in-memory directed multigraph with typed links and an operator-ownership
// map.
//
// The package is the root of the pipeline: everything downstream (path
// enumeration, coalition valuation, Shapley aggregation) consumes the
// *Topology produced by Load and never mutates it.
//
// Model:
//
//   - City: a graph vertex, identified by a stable short code.
//   - Link: an ordered (From, To) pair with latency, capacity, kind
//     (public or private) and, for private links, one or two owners.
//     Public links are visible to every coalition unconditionally; a
//     private link is visible to a coalition iff every owner is a member.
//   - DemandPair: (From, To, Volume, UnitValue, optional MaxLatency).
//   - Operators: the sorted set of distinct owners over the private-link
//     table. These are the players of the cooperative game.
//
// Validation (performed by Load, fail-fast):
//
//   - every link and demand endpoint must reference a declared city,
//   - link capacity must be positive, link latency non-negative,
//   - private links must carry at least one owner,
//   - demand volume must be positive, unit value non-negative.
//
// All violations wrap ErrMalformedTopology so callers can match the whole
// family with errors.Is.
//
// Complexity:
//
//   - Load:      O(C + L + D) for C cities, L links, D demand pairs.
//   - VisibleTo: O(L) per call; pure and deterministic, no hidden state.
package topology
