package paths_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/shapnet/paths"
	"github.com/katalvlaran/shapnet/topology"
)

// BenchmarkEnumerate measures enumeration over a layered mesh: 4 layers
// of 4 cities, full bipartite public links between adjacent layers, one
// demand pair spanning the mesh.
func BenchmarkEnumerate(b *testing.B) {
	const layers, width = 4, 4

	var cities []topology.City
	var pub []topology.PublicLink
	name := func(layer, i int) string { return fmt.Sprintf("L%d_%d", layer, i) }

	for l := 0; l < layers; l++ {
		for i := 0; i < width; i++ {
			cities = append(cities, topology.City{ID: name(l, i)})
		}
	}
	for l := 0; l < layers-1; l++ {
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				pub = append(pub, topology.PublicLink{
					From: name(l, i), To: name(l+1, j),
					Latency:  float64(1 + (i+j)%3),
					Capacity: 10,
				})
			}
		}
	}
	demands := []topology.Demand{
		{From: name(0, 0), To: name(layers-1, width-1), Volume: 5, UnitValue: 1},
	}

	topo, err := topology.Load(cities, pub, nil, demands)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = paths.Enumerate(topo); err != nil {
			b.Fatal(err)
		}
	}
}
