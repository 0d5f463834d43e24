package paths

import (
	"container/heap"

	"github.com/katalvlaran/shapnet/topology"
)

// latencyBound computes, for every city, the minimum achievable latency of
// any link sequence from that city to dst over the union graph. It runs
// Dijkstra from dst on the reversed graph with a lazy-decrease-key heap:
// shorter distances push duplicate entries, stale ones are skipped when
// popped. Cities absent from the result cannot reach dst at all.
//
// The returned map is an admissible lower bound for DFS pruning: it
// ignores the simple-path constraint, so it never overestimates the
// remaining latency.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func latencyBound(topo *topology.Topology, dst string) map[string]float64 {
	// Reverse adjacency: rev[v] lists links arriving at v reversed, i.e.
	// for bound purposes a link From→To is walkable To→From.
	rev := make(map[string][]topology.Link, len(topo.Cities))
	for _, l := range topo.Links {
		rev[l.To] = append(rev[l.To], l)
	}

	dist := make(map[string]float64, len(topo.Cities))
	dist[dst] = 0

	pq := boundPQ{{city: dst, lat: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(boundItem)

		// Skip stale entries left behind by the lazy-decrease-key scheme.
		if item.lat > dist[item.city] {
			continue
		}

		for _, l := range rev[item.city] {
			cand := item.lat + l.Latency
			if best, seen := dist[l.From]; !seen || cand < best {
				dist[l.From] = cand
				heap.Push(&pq, boundItem{city: l.From, lat: cand})
			}
		}
	}

	return dist
}

// boundItem is one (city, tentative latency) entry of the bound heap.
type boundItem struct {
	city string
	lat  float64
}

// boundPQ is a min-heap of boundItem ordered by latency ascending.
type boundPQ []boundItem

func (pq boundPQ) Len() int            { return len(pq) }
func (pq boundPQ) Less(i, j int) bool  { return pq[i].lat < pq[j].lat }
func (pq boundPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *boundPQ) Push(x interface{}) { *pq = append(*pq, x.(boundItem)) }
func (pq *boundPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
