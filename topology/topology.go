package topology

import (
	"fmt"
	"sort"
)

// Load validates the three input tables and builds the normalized Topology.
//
// Validation order (fail-fast, first violation wins):
//  1. City table: non-empty unique IDs.
//  2. Public links: known endpoints, capacity > 0, latency ≥ 0.
//  3. Private links: same as public, plus a non-empty Owner.
//  4. Demands: known endpoints, volume > 0, unit value ≥ 0.
//
// The operator set is derived from the private-link table (distinct owners,
// including secondary owners) and sorted, so operator indices are stable
// across runs regardless of input row order.
//
// Complexity: O(C + L·log L + D) dominated by owner-set sorting.
func Load(cities []City, public []PublicLink, private []PrivateLink, demands []Demand) (*Topology, error) {
	// 1) Index the city table, rejecting blank and duplicate IDs.
	cityIdx := make(map[string]City, len(cities))
	for _, c := range cities {
		if c.ID == "" {
			return nil, ErrEmptyCityID
		}
		if _, dup := cityIdx[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c.ID)
		}
		cityIdx[c.ID] = c
	}

	// 2) Collect the operator set before building links, so that links can
	//    store owner indices rather than names.
	ownerSet := make(map[string]struct{})
	for _, pl := range private {
		if pl.Owner == "" {
			return nil, fmt.Errorf("%w: link %s→%s", ErrMissingOwner, pl.From, pl.To)
		}
		ownerSet[pl.Owner] = struct{}{}
		if pl.SecondOwner != "" {
			ownerSet[pl.SecondOwner] = struct{}{}
		}
	}
	operators := make([]string, 0, len(ownerSet))
	for op := range ownerSet {
		operators = append(operators, op)
	}
	sort.Strings(operators)
	opIndex := make(map[string]int, len(operators))
	for i, op := range operators {
		opIndex[op] = i
	}

	// 3) Normalize links: public rows first, then private, IDs by position.
	links := make([]Link, 0, len(public)+len(private))
	for _, pl := range public {
		if err := checkLinkRow(cityIdx, pl.From, pl.To, pl.Latency, pl.Capacity); err != nil {
			return nil, err
		}
		links = append(links, Link{
			ID:       len(links),
			From:     pl.From,
			To:       pl.To,
			Kind:     Public,
			Latency:  pl.Latency,
			Capacity: pl.Capacity,
		})
	}
	for _, pl := range private {
		if err := checkLinkRow(cityIdx, pl.From, pl.To, pl.Latency, pl.Capacity); err != nil {
			return nil, err
		}
		owners := []int{opIndex[pl.Owner]}
		if pl.SecondOwner != "" && pl.SecondOwner != pl.Owner {
			owners = append(owners, opIndex[pl.SecondOwner])
		}
		links = append(links, Link{
			ID:       len(links),
			From:     pl.From,
			To:       pl.To,
			Kind:     Private,
			Latency:  pl.Latency,
			Capacity: pl.Capacity,
			Owners:   owners,
		})
	}

	// 4) Validate demand rows against the city table.
	for _, d := range demands {
		if _, ok := cityIdx[d.From]; !ok {
			return nil, fmt.Errorf("%w: demand source %q", ErrUnknownCity, d.From)
		}
		if _, ok := cityIdx[d.To]; !ok {
			return nil, fmt.Errorf("%w: demand destination %q", ErrUnknownCity, d.To)
		}
		if d.Volume <= 0 {
			return nil, fmt.Errorf("%w: %s→%s volume %g", ErrBadVolume, d.From, d.To, d.Volume)
		}
		if d.UnitValue < 0 {
			return nil, fmt.Errorf("%w: %s→%s unit value %g", ErrBadUnitValue, d.From, d.To, d.UnitValue)
		}
	}

	return &Topology{
		Cities:    cityIdx,
		Links:     links,
		Operators: operators,
		Demands:   append([]Demand(nil), demands...),
		opIndex:   opIndex,
	}, nil
}

// checkLinkRow applies the shared link-row validation rules.
func checkLinkRow(cities map[string]City, from, to string, latency, capacity float64) error {
	if _, ok := cities[from]; !ok {
		return fmt.Errorf("%w: link source %q", ErrUnknownCity, from)
	}
	if _, ok := cities[to]; !ok {
		return fmt.Errorf("%w: link destination %q", ErrUnknownCity, to)
	}
	if capacity <= 0 {
		return fmt.Errorf("%w: link %s→%s capacity %g", ErrBadCapacity, from, to, capacity)
	}
	if latency < 0 {
		return fmt.Errorf("%w: link %s→%s latency %g", ErrBadLatency, from, to, latency)
	}

	return nil
}

// OperatorIndex returns the position of op in the sorted operator set,
// and whether op is a known operator.
func (t *Topology) OperatorIndex(op string) (int, bool) {
	i, ok := t.opIndex[op]

	return i, ok
}

// OperatorCount reports the number of players of the cooperative game.
func (t *Topology) OperatorCount() int { return len(t.Operators) }
