package splice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/splice/demux"
	"github.com/arloliu/splice/errs"
	"github.com/arloliu/splice/format"
)

// TestSplitVariantsAgree verifies the wrapper variants produce identical
// channel sets for the 8-byte scenario table.
func TestSplitVariantsAgree(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	for channels := 1; channels <= 6; channels++ {
		direct := Split(channels, input)
		strided := SplitStrided(channels, input)
		parallel := SplitParallel(channels, input)

		require.Equal(t, direct, strided, "channels=%d", channels)
		require.Equal(t, direct, parallel, "channels=%d", channels)
	}
}

func TestSplitScenarioTable(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	require.Equal(t, [][]byte{{0, 2, 4, 6}, {1, 3, 5, 7}}, Split(2, input))
	require.Equal(t, [][]byte{{0, 3, 6}, {1, 4, 7}, {2, 5}}, Split(3, input))
	require.Equal(t, [][]byte{{0, 5}, {1, 6}, {2, 7}, {3}, {4}}, Split(5, input))
}

func TestWeaveInvertsSplit(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	woven, err := Weave(Split(3, input))
	require.NoError(t, err)
	require.Equal(t, input, woven)
}

func TestSplitInvalidChannelCount(t *testing.T) {
	require.PanicsWithValue(t, errs.ErrInvalidChannelCount, func() {
		Split(0, []byte{1})
	})
	require.PanicsWithValue(t, errs.ErrInvalidChannelCount, func() {
		SplitParallel(0, []byte{1})
	})
}

func TestNewSplitter(t *testing.T) {
	for _, strategy := range []format.StrategyType{
		format.StrategyDirect,
		format.StrategyStrided,
		format.StrategyParallel,
	} {
		s, err := NewSplitter(strategy)
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	_, err := NewSplitter(format.StrategyType(0x7f))
	require.ErrorIs(t, err, errs.ErrInvalidStrategy)
}

func TestFingerprint(t *testing.T) {
	input := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	require.Equal(t, Fingerprint(Split(4, input)), Fingerprint(SplitStrided(4, input)))
	require.Equal(t, Fingerprint(Split(4, input)), Fingerprint(SplitParallel(4, input)))
	require.NotEqual(t, Fingerprint(Split(4, input)), Fingerprint(Split(2, input)))
}

// TestSplitParallelSharedSplitter confirms the package-level parallel
// splitter is usable concurrently from multiple goroutines.
func TestSplitParallelSharedSplitter(t *testing.T) {
	input := make([]byte, 4096)
	for i := range input {
		input[i] = byte(i)
	}
	want := demux.Strided{}.Split(7, input)

	done := make(chan [][]byte, 8)
	for range 8 {
		go func() {
			done <- SplitParallel(7, input)
		}()
	}
	for range 8 {
		require.Equal(t, want, <-done)
	}
}
