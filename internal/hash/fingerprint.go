// Package hash provides xxHash64 fingerprints for split results.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Channels computes an order-sensitive xxHash64 fingerprint of a channel
// set. Each channel is folded in as a little-endian 8-byte length prefix
// followed by its bytes, so equal fingerprints imply equal channel count,
// per-channel lengths, and per-channel contents in order. The length prefix
// keeps channel boundaries unambiguous: moving a byte between adjacent
// channels changes the fingerprint even though the concatenation is
// unchanged.
func Channels(channels [][]byte) uint64 {
	digest := xxhash.New()

	var prefix [8]byte
	for _, ch := range channels {
		binary.LittleEndian.PutUint64(prefix[:], uint64(len(ch)))
		_, _ = digest.Write(prefix[:])
		_, _ = digest.Write(ch)
	}

	return digest.Sum64()
}
