package coalition

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/shapnet/paths"
	"github.com/katalvlaran/shapnet/topology"
)

// Value computes the best achievable aggregate value deliverable by the
// network visible to coalition c: the optimum of a linear program that
// allocates demand across the admissible paths whose links c can see.
//
// Formulation (maximize, then negated for the minimizing simplex):
//
//	max  Σ_d unitValue(d) · Σ_p f(d,p)
//	s.t. Σ_{(d,p) traversing ℓ} f(d,p) ≤ capacity(ℓ)   per visible link ℓ
//	     Σ_p f(d,p) ≤ volume(d)                        per demand pair d
//	     f ≥ 0
//
// Columns of paths that traverse any invisible link are dropped outright,
// which is equivalent to forcing their flow to zero. One slack variable
// per constraint turns the program into the standard equality form
// required by lp.Simplex. The program is always feasible (f = 0) and
// bounded (volume caps), so solver failure signals a genuine numerical
// problem and is fatal.
//
// Value is a pure function of (c, topo, table, options): it shares no
// mutable state and is safe to call concurrently across coalitions.
//
// Complexity: simplex over at most (columns + rows) variables, where
// columns ≤ Σ_d |admissible paths of d| and rows ≤ links + demand pairs.
func Value(c Coalition, topo *topology.Topology, table *paths.Table, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if topo == nil {
		return 0, ErrNilTopology
	}
	if table == nil {
		return 0, ErrNilTable
	}
	if len(table.PerPair) != len(topo.Demands) {
		return 0, fmt.Errorf("%w: %d path sets for %d demand pairs",
			ErrTableMismatch, len(table.PerPair), len(topo.Demands))
	}

	return value(c, topo, table, cfg)
}

// value is the resolved-options form shared with EnumerateValues.
func value(c Coalition, topo *topology.Topology, table *paths.Table, cfg Options) (float64, error) {
	// 1) Resolve link visibility for this coalition.
	visible := make([]bool, len(topo.Links))
	for i, l := range topo.Links {
		visible[i] = l.Visible(c.Contains)
	}

	// 2) Collect usable columns in deterministic order (pair ascending,
	//    then the table's canonical path order).
	type column struct {
		pair int
		path paths.Path
	}
	var cols []column
	for d := range topo.Demands {
		for _, p := range table.PerPair[d] {
			if pathVisible(p, visible) {
				cols = append(cols, column{pair: d, path: p})
			}
		}
	}

	// A coalition with no usable columns (e.g. the empty coalition on a
	// topology without public links) delivers nothing. Not an error.
	if len(cols) == 0 {
		return 0, nil
	}

	// 3) Index the constraint rows: one per link used by some column,
	//    one per demand pair with at least one column. Row order is
	//    deterministic (link IDs ascending, then pair indices ascending).
	usedLink := make(map[int]bool)
	usedPair := make(map[int]bool)
	for _, col := range cols {
		usedPair[col.pair] = true
		for _, id := range col.path.Links {
			usedLink[id] = true
		}
	}
	linkIDs := sortedKeys(usedLink)
	pairIDs := sortedKeys(usedPair)
	linkRow := make(map[int]int, len(linkIDs))
	for r, id := range linkIDs {
		linkRow[id] = r
	}
	pairRow := make(map[int]int, len(pairIDs))
	for r, d := range pairIDs {
		pairRow[d] = len(linkIDs) + r
	}

	// 4) Assemble the standard-form program min cᵀx s.t. Ax = b, x ≥ 0:
	//    flow variables first, then one slack per row.
	nRows := len(linkIDs) + len(pairIDs)
	nVars := len(cols) + nRows

	a := mat.NewDense(nRows, nVars, nil)
	b := make([]float64, nRows)
	obj := make([]float64, nVars)

	for j, col := range cols {
		obj[j] = -topo.Demands[col.pair].UnitValue
		a.Set(pairRow[col.pair], j, 1)
		for _, id := range col.path.Links {
			a.Set(linkRow[id], j, 1)
		}
	}
	for r, id := range linkIDs {
		capacity := topo.Links[id].Capacity
		if topo.Links[id].Kind == topology.Private {
			capacity *= cfg.Uptime
		}
		b[r] = capacity
	}
	for r, d := range pairIDs {
		b[len(linkIDs)+r] = topo.Demands[d].Volume * cfg.DemandMultiplier
	}
	for r := 0; r < nRows; r++ {
		a.Set(r, len(cols)+r, 1) // slack
	}

	// 5) Solve. tol = 0 selects the solver's default tolerance.
	optF, _, err := lp.Simplex(obj, a, b, 0, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInfeasible, c, err)
	}

	// The optimum is non-negative by construction; clamp the negated
	// objective against simplex round-off.
	v := -optF
	if v < 0 {
		v = 0
	}

	return v, nil
}

// pathVisible reports whether every link of p is visible.
func pathVisible(p paths.Path, visible []bool) bool {
	for _, id := range p.Links {
		if !visible[id] {
			return false
		}
	}

	return true
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
