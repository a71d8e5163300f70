// Package gen produces the synthetic input corpora used by the benchmark
// harness and the examples.
package gen

import (
	"math"
	"math/rand"

	"github.com/arloliu/splice/endian"
)

// Sizes returns the doubling size sweep 1, 2, 4, ..., 2^maxPow2.
func Sizes(maxPow2 int) []int {
	sizes := make([]int, 0, maxPow2+1)
	for size := 1; size <= 1<<maxPow2; size *= 2 {
		sizes = append(sizes, size)
	}

	return sizes
}

// Sequential returns n bytes following the i mod 256 ramp pattern.
func Sequential(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}

	return data
}

// Random returns n pseudo-random bytes from a fixed-seed source, so repeated
// runs measure the same input.
func Random(n int, seed int64) []byte {
	data := make([]byte, n)
	rng := rand.New(rand.NewSource(seed))
	rng.Read(data)

	return data
}

// FloatDeltas returns a serialized float64 random walk: count values, 8 bytes
// each, in the engine's byte order. Adjacent values differ by small steps, so
// splitting the stream into 8 channels groups same-significance bytes
// together (the byte-stream-split layout studied by the channel_compression
// example).
func FloatDeltas(count int, seed int64, engine endian.EndianEngine) []byte {
	rng := rand.New(rand.NewSource(seed))

	data := make([]byte, 0, count*8)
	value := 100.0
	for range count {
		value += rng.Float64() - 0.5
		data = engine.AppendUint64(data, math.Float64bits(value))
	}

	return data
}
