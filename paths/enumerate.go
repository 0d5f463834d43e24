package paths

import (
	"sort"

	"github.com/katalvlaran/shapnet/topology"
)

// Enumerate computes the admissible-path table for every demand pair of
// topo over the union of all links, public and private alike.
//
// Determinism: the adjacency lists are sorted by (destination, link ID)
// and each pair's path set is sorted by (latency, lexicographic link-ID
// sequence), so repeated runs on identical inputs produce identical
// tables and, downstream, identical LP column orderings.
//
// Complexity: one optional Dijkstra bound pass per ceiling-carrying pair,
// then an output-sensitive DFS capped at MaxHops links per path.
func Enumerate(topo *topology.Topology, opts ...Option) (*Table, error) {
	// 1) Resolve and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if topo == nil {
		return nil, ErrNilTopology
	}
	if cfg.MaxHops <= 0 {
		return nil, ErrBadMaxHops
	}

	// 2) Build the union-graph adjacency once: adj[city] lists outgoing
	//    link IDs, sorted for deterministic DFS expansion order.
	adj := buildAdjacency(topo)

	// 3) Enumerate per demand pair.
	table := &Table{PerPair: make([][]Path, len(topo.Demands))}
	for d, dem := range topo.Demands {
		table.PerPair[d] = enumeratePair(topo, adj, dem, cfg.MaxHops)
	}

	return table, nil
}

// buildAdjacency indexes outgoing links by source city. Each list is
// sorted by (To, ID) so DFS expansion order never depends on map
// iteration order.
func buildAdjacency(topo *topology.Topology) map[string][]int {
	adj := make(map[string][]int, len(topo.Cities))
	for _, l := range topo.Links {
		adj[l.From] = append(adj[l.From], l.ID)
	}
	for city := range adj {
		ids := adj[city]
		sort.Slice(ids, func(i, j int) bool {
			a, b := topo.Links[ids[i]], topo.Links[ids[j]]
			if a.To != b.To {
				return a.To < b.To
			}

			return a.ID < b.ID
		})
	}

	return adj
}

// enumeratePair runs the bounded DFS for one demand pair and returns its
// path set in canonical order.
func enumeratePair(topo *topology.Topology, adj map[string][]int, dem topology.Demand, maxHops int) []Path {
	// Degenerate demand (source == destination) admits no path; its value
	// contribution is zero for every coalition.
	if dem.From == dem.To {
		return nil
	}

	// Latency lower bounds toward the destination, used to cut DFS
	// branches that cannot meet the ceiling. Nil when no ceiling is set.
	var bound map[string]float64
	if dem.MaxLatency > 0 {
		bound = latencyBound(topo, dem.To)
	}

	w := &walker{
		topo:    topo,
		adj:     adj,
		dst:     dem.To,
		ceiling: dem.MaxLatency,
		bound:   bound,
		maxHops: maxHops,
		onPath:  map[string]bool{dem.From: true},
	}
	w.visit(dem.From, 0)

	// Canonical order: latency ascending, then lexicographic link IDs.
	sort.Slice(w.found, func(i, j int) bool {
		if w.found[i].Latency != w.found[j].Latency {
			return w.found[i].Latency < w.found[j].Latency
		}

		return lessLinkSeq(w.found[i].Links, w.found[j].Links)
	})

	return w.found
}

// walker carries the mutable DFS state for one demand pair.
type walker struct {
	topo    *topology.Topology
	adj     map[string][]int
	dst     string
	ceiling float64            // ≤ 0 means unconstrained
	bound   map[string]float64 // min remaining latency to dst, nil if no ceiling
	maxHops int

	stack  []int           // link IDs on the current partial path
	onPath map[string]bool // vertices on the current partial path
	found  []Path
}

// visit extends the partial path ending at city u with latency lat.
func (w *walker) visit(u string, lat float64) {
	for _, id := range w.adj[u] {
		l := w.topo.Links[id]

		// Simple-path constraint: never revisit a vertex.
		if w.onPath[l.To] {
			continue
		}

		nlat := lat + l.Latency
		if w.ceiling > 0 {
			// Admissibility requires total latency within the ceiling;
			// the per-vertex lower bound cuts hopeless branches early.
			rem, ok := w.bound[l.To]
			if !ok || nlat+rem > w.ceiling {
				continue
			}
		}

		w.stack = append(w.stack, id)
		if l.To == w.dst {
			w.found = append(w.found, Path{
				Links:   append([]int(nil), w.stack...),
				Latency: nlat,
			})
		} else if len(w.stack) < w.maxHops {
			w.onPath[l.To] = true
			w.visit(l.To, nlat)
			delete(w.onPath, l.To)
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
}

// lessLinkSeq compares two link-ID sequences lexicographically.
func lessLinkSeq(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
