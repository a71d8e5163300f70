// Package demux implements round-robin demultiplexing of byte sequences.
//
// A splitter distributes the bytes of an input sequence across N output
// channels by position: the byte at position p lands in channel p mod N,
// and every channel preserves the input's relative order. The inverse
// operation, Weave, re-interleaves a balanced channel set back into the
// original sequence.
//
// Three splitter strategies share the same contract and produce
// byte-identical results:
//
//   - Direct: one pass over the input, scatter-appending into N buffers.
//     Best read locality, write locality degrades as N grows.
//   - Strided: one pass per channel with stride N. Perfect write locality
//     per channel at the cost of strided reads.
//   - Parallel: Strided with the per-channel passes fanned out over a
//     bounded worker pool. Pays a fixed coordination cost that only
//     amortizes above some input size (see the breakeven package).
//
// All strategies allocate fresh output buffers owned by the caller; the
// input is never retained or modified. The result is a pure function of
// the channel count and the input, independent of scheduling.
//
// # Basic Usage
//
//	channels := demux.Direct{}.Split(4, data)
//	original, err := demux.Weave(channels)
//
// Selecting a strategy at runtime:
//
//	splitter, err := demux.New(format.StrategyParallel)
//	if err != nil {
//	    return err
//	}
//	channels := splitter.Split(4, data)
//
// # Preconditions
//
// A channel count below 1 is a programmer error: every Split panics with
// errs.ErrInvalidChannelCount rather than returning a degraded result,
// since N empty channels would be indistinguishable from a successful
// split of empty input.
package demux
