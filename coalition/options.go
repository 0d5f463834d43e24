package coalition

import (
	"fmt"
	"runtime"
)

// DefaultMaxOperators is the default operator-count ceiling. Enumeration
// cost is O(2ⁿ · LP-solve): at 15 operators that is 32 768 solves, which
// stays in interactive territory on commodity hardware; every further
// operator doubles the bill.
const DefaultMaxOperators = 15

// Options configures valuation and enumeration.
//
// MaxOperators     – operator-count ceiling enforced before enumeration.
// Workers          – worker-pool size; 1 forces a serial run.
// Uptime           – scales every private link's effective capacity,
//                    modeling operator availability. In (0, 1].
// DemandMultiplier – scales every demand volume. Must be > 0.
type Options struct {
	MaxOperators     int
	Workers          int
	Uptime           float64
	DemandMultiplier float64
}

// Option mutates Options; apply with Value / EnumerateValues / Guard.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: the default ceiling,
// one worker per CPU, full uptime, unscaled demand.
func DefaultOptions() Options {
	return Options{
		MaxOperators:     DefaultMaxOperators,
		Workers:          runtime.NumCPU(),
		Uptime:           1,
		DemandMultiplier: 1,
	}
}

// WithMaxOperators raises (or lowers) the operator-count ceiling.
// Panics if n < 1: a ceiling below one operator makes every topology
// unguardable.
func WithMaxOperators(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("coalition: WithMaxOperators(%d): ceiling must be ≥ 1", n))
	}

	return func(o *Options) { o.MaxOperators = n }
}

// WithWorkers sets the worker-pool size. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic(fmt.Sprintf("coalition: WithWorkers(%d): pool size must be ≥ 1", w))
	}

	return func(o *Options) { o.Workers = w }
}

// WithUptime scales private-link capacity by the given availability
// factor. Panics unless 0 < u ≤ 1.
func WithUptime(u float64) Option {
	if u <= 0 || u > 1 {
		panic(fmt.Sprintf("coalition: WithUptime(%g): uptime must be in (0, 1]", u))
	}

	return func(o *Options) { o.Uptime = u }
}

// WithDemandMultiplier scales every demand volume. Panics if m ≤ 0.
func WithDemandMultiplier(m float64) Option {
	if m <= 0 {
		panic(fmt.Sprintf("coalition: WithDemandMultiplier(%g): multiplier must be > 0", m))
	}

	return func(o *Options) { o.DemandMultiplier = m }
}
