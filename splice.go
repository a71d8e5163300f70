// Package splice provides round-robin demultiplexing of byte sequences into
// N ordered channels, with three interchangeable strategies and an inverse
// weaving operation.
//
// The byte at input position p lands in channel p mod N, in input order. All
// strategies produce byte-identical results and freshly allocated,
// caller-owned channels; they differ only in scan pattern and concurrency:
//
//   - Direct: one ordered pass, scatter-appending across the N channels
//   - Strided: one pass per channel at stride N, sequential writes
//   - Parallel: Strided with per-channel passes on a bounded worker pool
//
// # Basic Usage
//
// Splitting and weaving back:
//
//	import "github.com/arloliu/splice"
//
//	channels := splice.Split(4, data)
//	original, _ := splice.Weave(channels)
//
// Selecting a strategy by type:
//
//	splitter, err := splice.NewSplitter(format.StrategyParallel)
//	if err != nil {
//	    return err
//	}
//	channels := splitter.Split(4, data)
//
// Comparing results across strategies without holding both:
//
//	a := splice.Fingerprint(splice.Split(5, data))
//	b := splice.Fingerprint(splice.SplitParallel(5, data))
//	// a == b for all inputs
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the demux
// package, which holds the strategy implementations. The compress package
// offers per-channel codecs, and the breakeven package fits cost models to
// benchmark results to locate the strided/parallel crossover size.
package splice

import (
	"github.com/arloliu/splice/demux"
	"github.com/arloliu/splice/format"
	"github.com/arloliu/splice/internal/hash"
)

var (
	defaultDirect      = demux.Direct{}
	defaultStrided     = demux.Strided{}
	defaultParallel, _ = demux.NewParallel()
)

// Split demultiplexes data into the given number of round-robin channels
// using the Direct strategy, the best default for typical input sizes.
//
// Panics with errs.ErrInvalidChannelCount if channels < 1.
func Split(channels int, data []byte) [][]byte {
	return defaultDirect.Split(channels, data)
}

// SplitStrided demultiplexes data using the Strided strategy: one pass per
// channel with sequential writes. Output is byte-identical to Split.
func SplitStrided(channels int, data []byte) [][]byte {
	return defaultStrided.Split(channels, data)
}

// SplitParallel demultiplexes data using the Parallel strategy on a shared
// process-wide splitter limited to runtime.GOMAXPROCS(0) workers. Output is
// byte-identical to Split; worth it only for large inputs.
//
// For a custom worker limit, create a splitter with demux.NewParallel.
func SplitParallel(channels int, data []byte) [][]byte {
	return defaultParallel.Split(channels, data)
}

// Weave re-interleaves a channel set produced by any Split variant back into
// the original sequence. See demux.Weave.
func Weave(channels [][]byte) ([]byte, error) {
	return demux.Weave(channels)
}

// NewSplitter creates a splitter for the specified strategy type.
//
// Parameters:
//   - strategy: format.StrategyDirect, StrategyStrided, or StrategyParallel
//
// Returns:
//   - demux.Splitter: The created splitter.
//   - error: errs.ErrInvalidStrategy for unknown strategy types.
func NewSplitter(strategy format.StrategyType) (demux.Splitter, error) {
	return demux.New(strategy)
}

// Fingerprint computes an order-sensitive xxHash64 digest of a split result.
// Two channel sets have equal fingerprints only if they have the same
// channel count and identical per-channel contents in order, which makes it
// a cheap cross-strategy equivalence check for large inputs.
func Fingerprint(channels [][]byte) uint64 {
	return hash.Channels(channels)
}
