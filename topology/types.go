package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology loading. Every concrete validation failure
// wraps ErrMalformedTopology, so errors.Is(err, ErrMalformedTopology)
// matches the whole family.
var (
	// ErrMalformedTopology is the umbrella error for invalid input tables.
	ErrMalformedTopology = errors.New("topology: malformed input tables")

	// ErrEmptyCityID indicates a city row with an empty identifier.
	ErrEmptyCityID = fmt.Errorf("%w: empty city ID", ErrMalformedTopology)

	// ErrDuplicateCity indicates two city rows sharing one identifier.
	ErrDuplicateCity = fmt.Errorf("%w: duplicate city ID", ErrMalformedTopology)

	// ErrUnknownCity indicates a link or demand row referencing a city
	// absent from the city table.
	ErrUnknownCity = fmt.Errorf("%w: reference to unknown city", ErrMalformedTopology)

	// ErrBadCapacity indicates a link with non-positive capacity.
	ErrBadCapacity = fmt.Errorf("%w: link capacity must be positive", ErrMalformedTopology)

	// ErrBadLatency indicates a link with negative latency.
	ErrBadLatency = fmt.Errorf("%w: link latency must be non-negative", ErrMalformedTopology)

	// ErrMissingOwner indicates a private link without an owner.
	ErrMissingOwner = fmt.Errorf("%w: private link without owner", ErrMalformedTopology)

	// ErrBadVolume indicates a demand pair with non-positive volume.
	ErrBadVolume = fmt.Errorf("%w: demand volume must be positive", ErrMalformedTopology)

	// ErrBadUnitValue indicates a demand pair with negative unit value.
	ErrBadUnitValue = fmt.Errorf("%w: demand unit value must be non-negative", ErrMalformedTopology)
)

// City is a graph vertex. Immutable after Load; only ID participates in
// routing, coordinates and region are carried through for callers.
type City struct {
	// ID is the stable short code identifying this city (e.g. "FRA").
	ID string

	// Lat and Lon are geographic coordinates in degrees.
	Lat, Lon float64

	// Region is a free-form region tag (e.g. "EU").
	Region string
}

// LinkKind distinguishes unconditionally shared links from operator-owned ones.
type LinkKind uint8

const (
	// Public links are visible to every coalition, including the empty one.
	Public LinkKind = iota

	// Private links are visible only to coalitions containing every owner.
	Private
)

// String implements fmt.Stringer for diagnostics.
func (k LinkKind) String() string {
	if k == Public {
		return "public"
	}

	return "private"
}

// PublicLink is one row of the public-link input table.
type PublicLink struct {
	From, To string  // city codes, ordered (directed link)
	Latency  float64 // cost metric, ≥ 0
	Capacity float64 // bandwidth, > 0
}

// PrivateLink is one row of the private-link input table.
// SecondOwner is optional: when non-empty the link is jointly owned and is
// visible to a coalition only if both owners are members.
type PrivateLink struct {
	From, To    string
	Latency     float64
	Capacity    float64
	Owner       string
	SecondOwner string
}

// Demand is one row of the demand input table. MaxLatency ≤ 0 means the
// pair carries no latency ceiling.
type Demand struct {
	From, To   string
	Volume     float64 // requested traffic volume, > 0
	UnitValue  float64 // economic value per unit routed, ≥ 0
	MaxLatency float64 // aggregate path latency ceiling; ≤ 0 disables it
}

// Link is a normalized, immutable edge of the topology multigraph.
// ID is the link's index in Topology.Links and doubles as the stable key
// used by path enumeration and LP column construction.
type Link struct {
	ID       int
	From, To string
	Kind     LinkKind
	Latency  float64
	Capacity float64

	// Owners holds the operator indices (into Topology.Operators) that
	// must all be coalition members for this link to be visible.
	// Empty for public links.
	Owners []int
}

// Topology is the normalized, immutable output of Load.
// None of its fields may be mutated after construction; VisibleTo and all
// downstream consumers treat it as a read-only snapshot, which is what
// makes concurrent per-coalition valuation safe without locks.
type Topology struct {
	// Cities maps city ID to its record.
	Cities map[string]City

	// Links holds all links, public rows first, then private rows,
	// both in input order. Links[i].ID == i.
	Links []Link

	// Operators is the sorted set of distinct owners over private links.
	Operators []string

	// Demands holds the demand pairs in input order.
	Demands []Demand

	opIndex map[string]int // operator name → index into Operators
}
