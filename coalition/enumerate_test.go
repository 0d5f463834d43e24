package coalition_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapnet/coalition"
)

// TestEnumerateValuesPowerset verifies all 2ⁿ subsets are valued, indexed
// by bitmask, on the duopoly fixture (public 5 + two private 5s, demand 20).
func TestEnumerateValuesPowerset(t *testing.T) {
	topo, table := duopolyTopo(t)
	require.Equal(t, []string{"X", "Y"}, topo.Operators)

	values, err := coalition.EnumerateValues(context.Background(), topo, table)
	require.NoError(t, err)
	require.Len(t, values, 4)

	require.InDelta(t, 5, values[0], delta)   // ∅: public only
	require.InDelta(t, 10, values[1], delta)  // {X}
	require.InDelta(t, 10, values[2], delta)  // {Y}
	require.InDelta(t, 15, values[3], delta)  // {X, Y}
}

// TestEnumerateValuesDeterministic verifies scheduling does not leak into
// results: a serial run and a pooled run agree exactly.
func TestEnumerateValuesDeterministic(t *testing.T) {
	topo, table := duopolyTopo(t)

	serial, err := coalition.EnumerateValues(context.Background(), topo, table,
		coalition.WithWorkers(1))
	require.NoError(t, err)

	pooled, err := coalition.EnumerateValues(context.Background(), topo, table,
		coalition.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, serial, pooled)
}

// TestEnumerateValuesGuard verifies no valuation starts past the ceiling.
func TestEnumerateValuesGuard(t *testing.T) {
	topo, table := duopolyTopo(t)

	_, err := coalition.EnumerateValues(context.Background(), topo, table,
		coalition.WithMaxOperators(1))
	require.ErrorIs(t, err, coalition.ErrOperatorCountExceeded)
}

// TestEnumerateValuesCancellation verifies a canceled context aborts the run.
func TestEnumerateValuesCancellation(t *testing.T) {
	topo, table := duopolyTopo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coalition.EnumerateValues(ctx, topo, table)
	require.ErrorIs(t, err, context.Canceled)

	_, err = coalition.EnumerateValues(ctx, topo, table, coalition.WithWorkers(1))
	require.ErrorIs(t, err, context.Canceled)
}
