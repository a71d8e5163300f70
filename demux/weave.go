package demux

import (
	"fmt"

	"github.com/arloliu/splice/errs"
)

// Weave re-interleaves a round-robin channel set back into a single
// sequence, inverting any Splitter's Split.
//
// The channels must satisfy the balance law a split produces: with N
// channels and T total bytes, channel i must hold exactly
// ceil((T-i)/N) bytes when i < T and 0 otherwise. Weave validates the
// shape before assembling so a ragged set never yields a partially woven
// result.
//
// Parameters:
//   - channels: Channel set to re-interleave, indexed by stride offset
//
// Returns:
//   - []byte: The re-interleaved sequence, freshly allocated.
//   - error: ErrUnbalancedChannels (wrapped with the offending channel) if
//     the lengths violate the balance law.
//
// Panics with errs.ErrInvalidChannelCount if channels is empty; an empty
// set is the same precondition violation as splitting into zero channels.
func Weave(channels [][]byte) ([]byte, error) {
	n := len(channels)
	if n < 1 {
		panic(errs.ErrInvalidChannelCount)
	}

	total := 0
	for _, ch := range channels {
		total += len(ch)
	}

	for i, ch := range channels {
		var want int
		if i < total {
			want = (total - i + n - 1) / n
		}
		if len(ch) != want {
			return nil, fmt.Errorf("%w: channel %d holds %d bytes, want %d of %d total",
				errs.ErrUnbalancedChannels, i, len(ch), want, total)
		}
	}

	out := make([]byte, total)
	for i, ch := range channels {
		for j, b := range ch {
			out[i+j*n] = b
		}
	}

	return out, nil
}
