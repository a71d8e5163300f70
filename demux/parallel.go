package demux

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/splice/errs"
)

// Parallel is the concurrent strided splitter: the per-channel passes of the
// Strided strategy are fanned out over a bounded group of workers.
//
// Each worker scans its own strided subsequence of the shared read-only
// input and fills its own output buffer, so no synchronization is needed
// during the scan. Results are assembled by channel index, never by
// completion order; callers index channels by position and may rely on
// channel i always corresponding to stride offset i.
//
// The coordination cost is fixed per call, so for small inputs Parallel is
// expected to be slower than Strided. The breakeven package estimates the
// input size where the per-channel scan cost amortizes it.
type Parallel struct {
	workers int
}

var _ Splitter = (*Parallel)(nil)

// ParallelOption is a functional option for configuring a Parallel splitter.
type ParallelOption func(*Parallel) error

// WithWorkerLimit sets the maximum number of channel passes that may run
// concurrently. The default is runtime.GOMAXPROCS(0).
//
// Returns ErrInvalidWorkerLimit from NewParallel if limit < 1.
func WithWorkerLimit(limit int) ParallelOption {
	return func(p *Parallel) error {
		if limit < 1 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerLimit, limit)
		}
		p.workers = limit

		return nil
	}
}

// NewParallel creates a Parallel splitter with the given options.
//
// Parameters:
//   - opts: Optional configuration functions (see WithWorkerLimit)
//
// Returns:
//   - *Parallel: The created splitter, safe for concurrent use and intended
//     to be reused across calls.
//   - error: An error if an option is invalid.
func NewParallel(opts ...ParallelOption) (*Parallel, error) {
	p := &Parallel{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WorkerLimit returns the configured concurrency limit.
func (p *Parallel) WorkerLimit() int {
	return p.workers
}

// Split implements Splitter by running one strided pass per channel on a
// worker group limited to the configured worker count.
//
// A panic inside a worker is re-raised from the group's Wait, so a failed
// pass propagates to the caller instead of yielding a partially collected
// result.
func (p *Parallel) Split(channels int, data []byte) [][]byte {
	validateChannels(channels)

	out := make([][]byte, channels)

	var group errgroup.Group
	group.SetLimit(p.workers)
	for i := range channels {
		group.Go(func() error {
			out[i] = collectStride(data, i, channels)

			return nil
		})
	}

	// Workers never return errors; failures surface as panics re-raised
	// by Wait.
	_ = group.Wait()

	return out
}
