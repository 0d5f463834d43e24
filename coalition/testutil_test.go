package coalition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapnet/paths"
	"github.com/katalvlaran/shapnet/topology"
)

// twoCityTopo builds the canonical two-city fixture: one public A→B link
// (latency 10, capacity 5), one private A→B link (latency 5, capacity 5)
// owned by operator X, and a single A→B demand of the given volume at
// unit value 1.
func twoCityTopo(t *testing.T, volume float64) (*topology.Topology, *paths.Table) {
	t.Helper()
	topo, err := topology.Load(
		[]topology.City{{ID: "A"}, {ID: "B"}},
		[]topology.PublicLink{{From: "A", To: "B", Latency: 10, Capacity: 5}},
		[]topology.PrivateLink{{From: "A", To: "B", Latency: 5, Capacity: 5, Owner: "X"}},
		[]topology.Demand{{From: "A", To: "B", Volume: volume, UnitValue: 1}},
	)
	require.NoError(t, err)

	table, err := paths.Enumerate(topo)
	require.NoError(t, err)

	return topo, table
}

// duopolyTopo builds a two-operator fixture where X and Y own structurally
// identical A→B links (latency 5, capacity 5) next to a public A→B link
// (capacity 5), with one A→B demand of volume 20 at unit value 1.
func duopolyTopo(t *testing.T) (*topology.Topology, *paths.Table) {
	t.Helper()
	topo, err := topology.Load(
		[]topology.City{{ID: "A"}, {ID: "B"}},
		[]topology.PublicLink{{From: "A", To: "B", Latency: 10, Capacity: 5}},
		[]topology.PrivateLink{
			{From: "A", To: "B", Latency: 5, Capacity: 5, Owner: "X"},
			{From: "A", To: "B", Latency: 5, Capacity: 5, Owner: "Y"},
		},
		[]topology.Demand{{From: "A", To: "B", Volume: 20, UnitValue: 1}},
	)
	require.NoError(t, err)

	table, err := paths.Enumerate(topo)
	require.NoError(t, err)

	return topo, table
}
