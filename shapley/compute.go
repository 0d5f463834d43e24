package shapley

import (
	"context"

	"github.com/katalvlaran/shapnet/coalition"
	"github.com/katalvlaran/shapnet/paths"
	"github.com/katalvlaran/shapnet/topology"
)

// Options configures the end-to-end pipeline. The zero value of the
// struct is not meaningful; use DefaultOptions or the With* options,
// which forward to the paths and coalition packages so every knob keeps
// a single source of validation.
type Options struct {
	pathOpts []paths.Option
	coalOpts []coalition.Option
}

// Option mutates Options; apply with Compute(ctx, topo, opts...).
type Option func(*Options)

// WithMaxHops bounds the number of links per admissible path.
func WithMaxHops(h int) Option {
	return func(o *Options) { o.pathOpts = append(o.pathOpts, paths.WithMaxHops(h)) }
}

// WithMaxOperators raises (or lowers) the operator-count ceiling.
// See coalition.WithMaxOperators for the cost model.
func WithMaxOperators(n int) Option {
	opt := coalition.WithMaxOperators(n)

	return func(o *Options) { o.coalOpts = append(o.coalOpts, opt) }
}

// WithWorkers sets the coalition worker-pool size.
func WithWorkers(w int) Option {
	opt := coalition.WithWorkers(w)

	return func(o *Options) { o.coalOpts = append(o.coalOpts, opt) }
}

// WithUptime scales private-link capacity by an availability factor in (0, 1].
func WithUptime(u float64) Option {
	opt := coalition.WithUptime(u)

	return func(o *Options) { o.coalOpts = append(o.coalOpts, opt) }
}

// WithDemandMultiplier scales every demand volume.
func WithDemandMultiplier(m float64) Option {
	opt := coalition.WithDemandMultiplier(m)

	return func(o *Options) { o.coalOpts = append(o.coalOpts, opt) }
}

// Compute runs the whole attribution pipeline on a loaded topology:
//
//  1. Guard: reject operator counts beyond the ceiling before any work.
//  2. Enumerate admissible paths once over the union graph.
//  3. Value all 2ⁿ coalitions on the worker pool.
//  4. Aggregate Shapley values and normalized shares.
//
// The returned Result carries the per-operator values plus the full
// coalition-value vector, so callers can audit monotonicity and the
// efficiency property independently (see VerifyMonotonicity).
//
// All failure modes are fatal and wrapped with their originating stage's
// sentinel: topology.ErrMalformedTopology never reaches here (Load owns
// it), coalition.ErrOperatorCountExceeded and coalition.ErrInfeasible
// come from stages 1 and 3, ErrIncompleteCoalitionMap and
// ErrEfficiencyViolated from stage 4.
func Compute(ctx context.Context, topo *topology.Topology, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if topo == nil {
		return nil, ErrNilTopology
	}

	// 1) Guard before any enumeration: cost is exponential in operators.
	if err := coalition.Guard(topo.OperatorCount(), cfg.coalOpts...); err != nil {
		return nil, err
	}

	// 2) One-time admissible-path enumeration over the union graph.
	table, err := paths.Enumerate(topo, cfg.pathOpts...)
	if err != nil {
		return nil, err
	}

	// 3) Full powerset valuation.
	values, err := coalition.EnumerateValues(ctx, topo, table, cfg.coalOpts...)
	if err != nil {
		return nil, err
	}

	// 4) Shapley aggregation with the efficiency post-condition.
	phi, err := Aggregate(values, topo.Operators)
	if err != nil {
		return nil, err
	}

	return &Result{
		Operators:       append([]string(nil), topo.Operators...),
		Values:          phi,
		Shares:          shares(phi),
		CoalitionValues: values,
	}, nil
}
