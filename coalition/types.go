package coalition

import (
	"errors"
	"fmt"
	"math/bits"
)

// Sentinel errors for coalition valuation and enumeration.
var (
	// ErrNilTopology indicates a nil *topology.Topology was provided.
	ErrNilTopology = errors.New("coalition: topology is nil")

	// ErrNilTable indicates a nil *paths.Table was provided.
	ErrNilTable = errors.New("coalition: path table is nil")

	// ErrTableMismatch indicates the path table was not built from the
	// provided topology (demand-pair counts differ).
	ErrTableMismatch = errors.New("coalition: path table does not match topology")

	// ErrOperatorCountExceeded is returned by the guard before any
	// enumeration begins when the operator count exceeds
	// Options.MaxOperators. Total cost is O(2ⁿ · LP-solve); raise the
	// ceiling only as a deliberate decision via WithMaxOperators.
	ErrOperatorCountExceeded = errors.New("coalition: operator count exceeds configured ceiling")

	// ErrInfeasible indicates the LP solver failed for some coalition
	// (non-convergence or an infeasible program). Fatal for the whole
	// run: the Shapley formula requires every subset's value.
	ErrInfeasible = errors.New("coalition: valuation LP failed")
)

// Coalition is a canonical subset key: bit i set means the operator at
// index i of the topology's sorted operator list is a member. The zero
// value is the empty coalition.
type Coalition uint32

// All returns the grand coalition over n operators.
func All(n int) Coalition { return Coalition(1)<<n - 1 }

// Contains reports whether the operator at index i is a member.
func (c Coalition) Contains(i int) bool { return c&(1<<i) != 0 }

// With returns c extended with the operator at index i.
func (c Coalition) With(i int) Coalition { return c | 1<<i }

// Without returns c with the operator at index i removed.
func (c Coalition) Without(i int) Coalition { return c &^ (1 << i) }

// Size reports the number of members.
func (c Coalition) Size() int { return bits.OnesCount32(uint32(c)) }

// Members resolves the member names against the sorted operator list.
func (c Coalition) Members(operators []string) []string {
	out := make([]string, 0, c.Size())
	for i, op := range operators {
		if c.Contains(i) {
			out = append(out, op)
		}
	}

	return out
}

// String implements fmt.Stringer for diagnostics.
func (c Coalition) String() string {
	return fmt.Sprintf("coalition(%#b)", uint32(c))
}
