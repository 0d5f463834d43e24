package coalition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapnet/coalition"
)

// TestCoalitionMask exercises the bitmask key operations.
func TestCoalitionMask(t *testing.T) {
	var c coalition.Coalition
	require.Equal(t, 0, c.Size())

	c = c.With(0).With(2)
	require.True(t, c.Contains(0))
	require.False(t, c.Contains(1))
	require.True(t, c.Contains(2))
	require.Equal(t, 2, c.Size())

	require.Equal(t, c, c.With(2), "With is idempotent")
	require.Equal(t, coalition.Coalition(1), c.Without(2))
	require.Equal(t, c, c.Without(1), "Without a non-member is a no-op")

	grand := coalition.All(3)
	require.Equal(t, 3, grand.Size())
	require.Equal(t, []string{"a", "b", "c"}, grand.Members([]string{"a", "b", "c"}))
	require.Equal(t, []string{"a", "c"}, c.Members([]string{"a", "b", "c"}))

	require.Equal(t, coalition.Coalition(0), coalition.All(0), "no operators ⇒ empty grand coalition")
}

// TestGuard verifies the exponential-cost ceiling.
func TestGuard(t *testing.T) {
	require.NoError(t, coalition.Guard(coalition.DefaultMaxOperators))
	require.ErrorIs(t, coalition.Guard(coalition.DefaultMaxOperators+1), coalition.ErrOperatorCountExceeded)

	// Raising the ceiling is explicit, never silent.
	require.NoError(t, coalition.Guard(18, coalition.WithMaxOperators(18)))
	require.ErrorIs(t, coalition.Guard(3, coalition.WithMaxOperators(2)), coalition.ErrOperatorCountExceeded)
}

// TestOptionValidation verifies option constructors reject nonsense early.
func TestOptionValidation(t *testing.T) {
	require.Panics(t, func() { coalition.WithMaxOperators(0) })
	require.Panics(t, func() { coalition.WithWorkers(0) })
	require.Panics(t, func() { coalition.WithUptime(0) })
	require.Panics(t, func() { coalition.WithUptime(1.5) })
	require.Panics(t, func() { coalition.WithDemandMultiplier(0) })
}
