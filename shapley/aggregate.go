package shapley

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/shapnet/coalition"
)

// Aggregate computes per-operator Shapley values from the complete
// coalition-value vector (indexed by coalition bitmask over the sorted
// operator list). The returned slice aligns with operators.
//
// Preconditions, checked in order:
//  1. values must cover exactly the powerset: len(values) == 2^len(operators)
//     (ErrIncompleteCoalitionMap otherwise).
//  2. Every entry must be finite; NaN or ±Inf marks a subset that was
//     never properly valued (ErrIncompleteCoalitionMap).
//
// Post-condition: Σ_i φ_i == v(grand) − v(∅) within Tolerance
// (ErrEfficiencyViolated otherwise). The empty-coalition baseline is
// subtracted because value deliverable by public links alone belongs to
// no player.
//
// Complexity: O(n · 2ⁿ) time, O(n) extra space.
func Aggregate(values []float64, operators []string) ([]float64, error) {
	n := len(operators)
	nCoal := 1 << n
	if len(values) != nCoal {
		return nil, fmt.Errorf("%w: got %d entries, want 2^%d = %d",
			ErrIncompleteCoalitionMap, len(values), n, nCoal)
	}
	for idx, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s has value %g",
				ErrIncompleteCoalitionMap, coalition.Coalition(idx), v)
		}
	}

	// Factorials up to n as float64; n is guard-bounded, so this stays
	// well inside float64 range.
	fact := make([]float64, n+1)
	fact[0] = 1
	for k := 1; k <= n; k++ {
		fact[k] = fact[k-1] * float64(k)
	}

	// φ_i = Σ over subsets S not containing i of
	//       |S|!·(n−|S|−1)!/n! · (v(S ∪ {i}) − v(S)).
	phi := make([]float64, n)
	for i := 0; i < n; i++ {
		for idx := 0; idx < nCoal; idx++ {
			s := coalition.Coalition(idx)
			if s.Contains(i) {
				continue
			}
			w := fact[s.Size()] * fact[n-s.Size()-1] / fact[n]
			phi[i] += w * (values[s.With(i)] - values[idx])
		}
	}

	// Efficiency: the players share exactly the surplus over the
	// public-only baseline.
	var sum float64
	for _, p := range phi {
		sum += p
	}
	surplus := values[nCoal-1] - values[0]
	if !scalar.EqualWithinAbsOrRel(sum, surplus, Tolerance, Tolerance) {
		return nil, fmt.Errorf("%w: Σφ = %.12g, v(grand) − v(∅) = %.12g",
			ErrEfficiencyViolated, sum, surplus)
	}

	return phi, nil
}

// shares normalizes the non-negative part of the Shapley vector into
// percentage shares. Returns all zeros when no operator adds value.
func shares(phi []float64) []float64 {
	out := make([]float64, len(phi))
	var total float64
	for _, p := range phi {
		if p > 0 {
			total += p
		}
	}
	if total <= 0 {
		return out
	}
	for i, p := range phi {
		if p > 0 {
			out[i] = p / total
		}
	}

	return out
}
