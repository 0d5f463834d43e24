package shapley

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/shapnet/coalition"
)

// VerifyMonotonicity audits a coalition-value vector for set
// monotonicity: removing any member from any coalition must not increase
// its value beyond tol. The engine guarantees this by construction (more
// members ⇒ weakly more visible links ⇒ weakly more deliverable value),
// so a failure here points at a numerical issue in the valuation stage.
//
// Checking every covering pair (S \ {i}, S) suffices: monotonicity over
// single-element removals composes to arbitrary S ⊆ T chains.
//
// Complexity: O(n · 2ⁿ).
func VerifyMonotonicity(values []float64, tol float64) error {
	nCoal := len(values)
	if nCoal == 0 || nCoal&(nCoal-1) != 0 {
		return fmt.Errorf("%w: %d entries is not a power of two",
			ErrIncompleteCoalitionMap, nCoal)
	}
	n := bits.TrailingZeros(uint(nCoal))

	for idx := 0; idx < nCoal; idx++ {
		s := coalition.Coalition(idx)
		for i := 0; i < n; i++ {
			if !s.Contains(i) {
				continue
			}
			if values[s.Without(i)] > values[idx]+tol {
				return fmt.Errorf("%w: v(%s) = %.12g exceeds v(%s) = %.12g",
					ErrNotMonotone, s.Without(i), values[s.Without(i)], s, values[idx])
			}
		}
	}

	return nil
}
