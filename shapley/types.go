package shapley

import "errors"

// Sentinel errors for aggregation and verification.
var (
	// ErrNilTopology indicates a nil *topology.Topology was provided to
	// Compute.
	ErrNilTopology = errors.New("shapley: topology is nil")

	// ErrIncompleteCoalitionMap indicates the coalition-value vector does
	// not cover the full powerset of the operator set (wrong length, or a
	// non-finite entry where a value is required).
	ErrIncompleteCoalitionMap = errors.New("shapley: coalition-value map does not cover the powerset")

	// ErrEfficiencyViolated indicates the aggregated Shapley values do not
	// sum to the grand-coalition surplus within tolerance. This signals a
	// numerical problem in the valuation stage, not a data-quality issue.
	ErrEfficiencyViolated = errors.New("shapley: efficiency property violated")

	// ErrNotMonotone is returned by VerifyMonotonicity when some subset
	// outvalues a superset beyond tolerance.
	ErrNotMonotone = errors.New("shapley: coalition values are not monotone")
)

// Tolerance is the relative/absolute tolerance used for the efficiency
// post-condition and monotonicity audits.
const Tolerance = 1e-6

// Result is the final output of Compute.
type Result struct {
	// Operators is the sorted operator list; all vectors below align
	// with it.
	Operators []string

	// Values holds the per-operator Shapley values.
	Values []float64

	// Shares holds the normalized non-negative value shares:
	// max(Values[i], 0) / Σ_j max(Values[j], 0), all zeros when the
	// denominator vanishes.
	Shares []float64

	// CoalitionValues is the full subset→value vector, indexed by
	// coalition bitmask, kept for independent auditing of monotonicity
	// and efficiency.
	CoalitionValues []float64
}

// ValueOf resolves one operator's Shapley value by name.
func (r *Result) ValueOf(op string) (float64, bool) {
	for i, name := range r.Operators {
		if name == op {
			return r.Values[i], true
		}
	}

	return 0, false
}
