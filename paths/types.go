package paths

import "errors"

// Sentinel errors returned by Enumerate.
var (
	// ErrNilTopology indicates a nil *topology.Topology was provided.
	ErrNilTopology = errors.New("paths: topology is nil")

	// ErrBadMaxHops indicates MaxHops was set to zero or a negative value.
	ErrBadMaxHops = errors.New("paths: MaxHops must be positive")
)

// DefaultMaxHops bounds path length when the caller does not override it.
// Six hops is generous for backbone topologies while keeping the
// enumeration tractable on dense graphs.
const DefaultMaxHops = 6

// Path is one admissible route for a single demand pair.
type Path struct {
	// Links holds the traversed link IDs (indices into Topology.Links)
	// in order from the demand source to its destination.
	Links []int

	// Latency is the aggregate latency over Links.
	Latency float64
}

// Table holds the admissible paths of every demand pair. It is computed
// once and then shared, read-only, by all coalition valuations.
type Table struct {
	// PerPair is indexed by the demand pair's position in
	// Topology.Demands. PerPair[d] may be empty (unroutable pair).
	PerPair [][]Path
}

// Options configures Enumerate.
//
// MaxHops – maximum number of links per path. Must be > 0.
type Options struct {
	MaxHops int
}

// Option mutates Options; apply with Enumerate(topo, opts...).
type Option func(*Options)

// DefaultOptions returns the baseline enumeration configuration.
func DefaultOptions() Options {
	return Options{MaxHops: DefaultMaxHops}
}

// WithMaxHops overrides the per-path hop bound.
func WithMaxHops(h int) Option {
	return func(o *Options) { o.MaxHops = h }
}
