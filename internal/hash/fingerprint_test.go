package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelsDeterministic(t *testing.T) {
	channels := [][]byte{{0, 2, 4}, {1, 3, 5}}

	require.Equal(t, Channels(channels), Channels(channels))
	require.Equal(t, Channels(channels), Channels([][]byte{{0, 2, 4}, {1, 3, 5}}))
}

func TestChannelsOrderSensitive(t *testing.T) {
	a := Channels([][]byte{{0, 2, 4}, {1, 3, 5}})
	b := Channels([][]byte{{1, 3, 5}, {0, 2, 4}})

	require.NotEqual(t, a, b)
}

// TestChannelsBoundarySensitive verifies moving a byte across a channel
// boundary changes the fingerprint even though the concatenated bytes are
// identical.
func TestChannelsBoundarySensitive(t *testing.T) {
	a := Channels([][]byte{{0, 1}, {2, 3}})
	b := Channels([][]byte{{0, 1, 2}, {3}})

	require.NotEqual(t, a, b)
}

func TestChannelsContentSensitive(t *testing.T) {
	a := Channels([][]byte{{0, 1}, {2, 3}})
	b := Channels([][]byte{{0, 1}, {2, 4}})

	require.NotEqual(t, a, b)
}

func TestChannelsEmpty(t *testing.T) {
	// Empty channels still contribute their length prefix, so channel
	// count is always part of the fingerprint.
	require.NotEqual(t, Channels([][]byte{{}}), Channels([][]byte{{}, {}}))
	require.Equal(t, Channels(nil), Channels([][]byte{}))
}
