// Package errs defines the sentinel errors shared across the splice packages.
//
// Callers can match these with errors.Is regardless of the contextual
// wrapping added at the failure site.
package errs

import "errors"

var (
	// ErrInvalidChannelCount indicates a channel count below 1. This is a
	// programmer-error precondition; the demux package panics with this
	// value rather than returning it.
	ErrInvalidChannelCount = errors.New("channel count must be at least 1")

	// ErrInvalidStrategy indicates an unknown splitter strategy type.
	ErrInvalidStrategy = errors.New("invalid splitter strategy")

	// ErrInvalidWorkerLimit indicates a parallel worker limit below 1.
	ErrInvalidWorkerLimit = errors.New("worker limit must be at least 1")

	// ErrUnbalancedChannels indicates channel lengths that violate the
	// round-robin balance law and therefore cannot be woven back into a
	// single sequence.
	ErrUnbalancedChannels = errors.New("unbalanced channel lengths")

	// ErrNotEnoughSamples indicates too few (or degenerate) benchmark
	// samples to fit a cost model.
	ErrNotEnoughSamples = errors.New("not enough samples")

	// ErrNoCrossover indicates the candidate strategy never overtakes the
	// base strategy under the fitted cost models.
	ErrNoCrossover = errors.New("no crossover point")
)
