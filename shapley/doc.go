// Package shapley folds a complete coalition-value vector into
// per-operator Shapley values and exposes the end-to-end Compute
// orchestrator over the whole pipeline (topology → paths → coalition →
// aggregation).
//
// For operator i over n operators, the Shapley value is
//
//	φ_i = Σ_{S ⊆ N\{i}}  |S|!·(n−|S|−1)!/n! · (v(S∪{i}) − v(S))
//
// computed exactly over the full powerset (no sampling). The aggregator
// validates totality of the subset→value vector before touching it
// (ErrIncompleteCoalitionMap) even though the coalition scheduler already
// guarantees it: the economic attribution is only meaningful if every
// marginal contribution is present, so the invariant is double-checked at
// the consumption site.
//
// Efficiency post-condition: Σ_i φ_i must equal v(grand) − v(∅) within a
// small numerical tolerance. The v(∅) term is the public-only baseline:
// value deliverable with no operator present belongs to no player, so
// the players share exactly the surplus they create. Violation is
// reported as ErrEfficiencyViolated, never silently accepted.
//
// Diagnostics: VerifyMonotonicity audits the coalition-value vector for
// the set-monotonicity the engine guarantees by construction (S ⊆ T ⇒
// v(S) ≤ v(T)); callers can run it over Result.CoalitionValues when
// validating input data quality.
//
// Complexity: Aggregate is O(n · 2ⁿ); VerifyMonotonicity is O(n · 2ⁿ).
package shapley
