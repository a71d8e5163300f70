package compress

// ZstdCompressor provides Zstandard compression, the best-ratio codec in the
// package. Per-channel payloads from structured inputs (byte-stream-split
// float streams in particular) compress markedly better than the interleaved
// whole, which is the comparison the channel_compression example quantifies.
//
// The Compress and Decompress methods are supplied by one of two backends
// selected at build time: a pure-Go implementation (klauspost/compress/zstd)
// when cgo is disabled, and a libzstd binding (valyala/gozstd) when cgo is
// available. Both produce standard Zstandard frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(channel)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
