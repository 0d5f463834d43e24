package coalition

import "fmt"

// Guard validates the operator count against the configured ceiling
// before any enumeration begins. The check exists because enumeration
// cost is exponential: O(2ⁿ · LP-solve) total work. It is never relaxed
// silently; callers accept the bill explicitly via WithMaxOperators.
func Guard(operatorCount int, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return guard(operatorCount, cfg)
}

// guard is the resolved-options form shared with EnumerateValues.
func guard(operatorCount int, cfg Options) error {
	if operatorCount > cfg.MaxOperators {
		return fmt.Errorf("%w: %d operators, ceiling %d (2^%d coalition valuations)",
			ErrOperatorCountExceeded, operatorCount, cfg.MaxOperators, operatorCount)
	}

	return nil
}
