package demux

import (
	"fmt"

	"github.com/arloliu/splice/errs"
	"github.com/arloliu/splice/format"
)

// Splitter demultiplexes a byte sequence into N round-robin channels.
//
// Implementations must be safe for concurrent use: a Split call reads the
// input, allocates its own outputs, and touches no shared mutable state.
type Splitter interface {
	// Split distributes data across the given number of channels by
	// position modulo the channel count, preserving relative order within
	// each channel.
	//
	// The returned channels are freshly allocated and owned by the caller;
	// they never alias the input. Channel i holds exactly the bytes at
	// positions p with p % channels == i, so its length is
	// ceil((len(data)-i)/channels) when i < len(data) and 0 otherwise.
	//
	// Panics with errs.ErrInvalidChannelCount if channels < 1.
	Split(channels int, data []byte) [][]byte
}

// New creates a Splitter for the specified strategy type.
//
// Parameters:
//   - strategy: Strategy type (Direct, Strided, or Parallel)
//
// Returns:
//   - Splitter: Splitter instance for the specified strategy. The Parallel
//     splitter is created with the default worker limit; use NewParallel
//     directly for a custom limit.
//   - error: ErrInvalidStrategy for unknown strategy types.
func New(strategy format.StrategyType) (Splitter, error) {
	switch strategy {
	case format.StrategyDirect:
		return Direct{}, nil
	case format.StrategyStrided:
		return Strided{}, nil
	case format.StrategyParallel:
		return NewParallel()
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidStrategy, strategy)
	}
}

// validateChannels enforces the channels >= 1 precondition shared by all
// strategies. Splitting into zero channels has no meaningful result, so this
// is a panic rather than an error return.
func validateChannels(channels int) {
	if channels < 1 {
		panic(errs.ErrInvalidChannelCount)
	}
}

// Direct is the single-pass splitter: it walks the input once in order and
// appends each byte to its target channel.
//
// Each output buffer is pre-sized to ceil(len/channels), the upper bound on
// any channel's length, so the scan never reallocates. Reads are perfectly
// sequential; writes scatter across the N buffers, so write locality
// degrades as the channel count grows.
type Direct struct{}

var _ Splitter = Direct{}

// Split implements Splitter with a single ordered pass over data.
func (Direct) Split(channels int, data []byte) [][]byte {
	validateChannels(channels)

	bound := (len(data) + channels - 1) / channels
	out := make([][]byte, channels)
	for i := range out {
		out[i] = make([]byte, 0, bound)
	}

	for p, b := range data {
		out[p%channels] = append(out[p%channels], b)
	}

	return out
}

// Strided is the per-channel splitter: for each channel i it performs an
// independent pass over the input starting at offset i and advancing by the
// channel count.
//
// Every channel buffer is allocated at its exact final length and filled
// sequentially, trading the Direct splitter's scattered writes for strided,
// non-contiguous reads of the shared input.
type Strided struct{}

var _ Splitter = Strided{}

// Split implements Splitter with one strided pass per channel.
func (Strided) Split(channels int, data []byte) [][]byte {
	validateChannels(channels)

	out := make([][]byte, channels)
	for i := range out {
		out[i] = collectStride(data, i, channels)
	}

	return out
}

// collectStride gathers data[offset], data[offset+stride], ... into a fresh
// exact-length buffer. This is the shared per-channel pass of the Strided
// and Parallel strategies.
func collectStride(data []byte, offset, stride int) []byte {
	var n int
	if offset < len(data) {
		n = (len(data) - offset + stride - 1) / stride
	}

	ch := make([]byte, n)
	for j, p := 0, offset; j < n; j, p = j+1, p+stride {
		ch[j] = data[p]
	}

	return ch
}
