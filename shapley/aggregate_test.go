package shapley_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapnet/shapley"
)

// TestAggregateSinglePlayer: with one operator the Shapley value is the
// full marginal over the empty coalition.
func TestAggregateSinglePlayer(t *testing.T) {
	phi, err := shapley.Aggregate([]float64{5, 10}, []string{"X"})
	require.NoError(t, err)
	require.Len(t, phi, 1)
	require.InDelta(t, 5, phi[0], shapley.Tolerance)
}

// TestAggregateAdditiveGame: in an additive game each player receives
// exactly its standalone contribution.
func TestAggregateAdditiveGame(t *testing.T) {
	// v(S) = Σ over members of {X: 1, Y: 2}; index = bitmask over [X, Y].
	values := []float64{0, 1, 2, 3}

	phi, err := shapley.Aggregate(values, []string{"X", "Y"})
	require.NoError(t, err)
	require.InDelta(t, 1, phi[0], shapley.Tolerance)
	require.InDelta(t, 2, phi[1], shapley.Tolerance)
}

// TestAggregateSymmetricSurplus: two interchangeable players split the
// surplus evenly even over a non-zero public baseline.
func TestAggregateSymmetricSurplus(t *testing.T) {
	values := []float64{5, 10, 10, 15}

	phi, err := shapley.Aggregate(values, []string{"X", "Y"})
	require.NoError(t, err)
	require.InDelta(t, 5, phi[0], shapley.Tolerance)
	require.InDelta(t, 5, phi[1], shapley.Tolerance)
}

// TestAggregateIncompleteMap covers the totality double-check.
func TestAggregateIncompleteMap(t *testing.T) {
	// Wrong cardinality.
	_, err := shapley.Aggregate([]float64{0, 1, 2}, []string{"X", "Y"})
	require.ErrorIs(t, err, shapley.ErrIncompleteCoalitionMap)

	// Right cardinality, but one subset never got a finite value.
	_, err = shapley.Aggregate([]float64{0, 1, math.NaN(), 3}, []string{"X", "Y"})
	require.ErrorIs(t, err, shapley.ErrIncompleteCoalitionMap)

	_, err = shapley.Aggregate([]float64{0, 1, math.Inf(-1), 3}, []string{"X", "Y"})
	require.ErrorIs(t, err, shapley.ErrIncompleteCoalitionMap)
}

// TestVerifyMonotonicity audits both a clean and a tampered vector.
func TestVerifyMonotonicity(t *testing.T) {
	require.NoError(t, shapley.VerifyMonotonicity([]float64{5, 10, 10, 15}, shapley.Tolerance))

	// {X, Y} worth less than {X} alone: not a monotone game.
	err := shapley.VerifyMonotonicity([]float64{5, 10, 10, 9}, shapley.Tolerance)
	require.ErrorIs(t, err, shapley.ErrNotMonotone)

	// A vector that cannot be a powerset is rejected outright.
	err = shapley.VerifyMonotonicity([]float64{1, 2, 3}, shapley.Tolerance)
	require.ErrorIs(t, err, shapley.ErrIncompleteCoalitionMap)
}
