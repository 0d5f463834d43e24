package coalition

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/shapnet/paths"
	"github.com/katalvlaran/shapnet/topology"
)

// EnumerateValues evaluates every coalition of topo's operators and
// returns the complete value vector, indexed by coalition bitmask:
// result[0] is the empty coalition, result[2ⁿ−1] the grand coalition.
//
// The guard runs first; if it rejects the configuration no worker is
// spawned. Subsets are then dispatched to a fixed-size ants pool (or run
// serially when Workers == 1). Each worker receives the shared read-only
// topology and path table and writes exactly one slot of the result
// vector, so workers never contend. Evaluation order is irrelevant to
// correctness; the returned vector is deterministic regardless of
// scheduling.
//
// Any single failed solve makes the whole run fail: partial value vectors
// are never returned, because Shapley aggregation requires totality over
// the powerset. Cancellation of ctx stops dispatching and returns
// ctx.Err() after in-flight solves drain.
//
// Complexity: O(2ⁿ · LP-solve) work, O(2ⁿ) memory for the result vector.
func EnumerateValues(ctx context.Context, topo *topology.Topology, table *paths.Table, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if topo == nil {
		return nil, ErrNilTopology
	}
	if table == nil {
		return nil, ErrNilTable
	}
	if len(table.PerPair) != len(topo.Demands) {
		return nil, fmt.Errorf("%w: %d path sets for %d demand pairs",
			ErrTableMismatch, len(table.PerPair), len(topo.Demands))
	}

	n := topo.OperatorCount()
	if err := guard(n, cfg); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	nCoal := 1 << n
	values := make([]float64, nCoal)
	errs := make([]error, nCoal)

	if cfg.Workers == 1 {
		// Serial path: cheaper than a pool for tiny operator counts and
		// handy for bitwise-reproducibility experiments.
		for idx := 0; idx < nCoal; idx++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			values[idx], errs[idx] = value(Coalition(idx), topo, table, cfg)
		}
	} else {
		var wg sync.WaitGroup
		pool, err := ants.NewPoolWithFunc(cfg.Workers, func(arg interface{}) {
			defer wg.Done()
			idx := arg.(int)
			values[idx], errs[idx] = value(Coalition(idx), topo, table, cfg)
		})
		if err != nil {
			return nil, fmt.Errorf("coalition: worker pool: %w", err)
		}
		defer pool.Release()

		for idx := 0; idx < nCoal; idx++ {
			if ctx.Err() != nil {
				break // stop dispatching; drain in-flight solves below
			}
			wg.Add(1)
			if invokeErr := pool.Invoke(idx); invokeErr != nil {
				wg.Done()
				errs[idx] = fmt.Errorf("coalition: dispatch %s: %w", Coalition(idx), invokeErr)
				break
			}
		}
		wg.Wait()

		if err = ctx.Err(); err != nil {
			return nil, err
		}
	}

	// Surface the first failure in subset order for deterministic
	// diagnostics (the solve errors already name the coalition).
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return values, nil
}
