// Package compress provides compression codecs for spliced channel payloads.
//
// Splitting a byte stream round-robin groups bytes of equal position modulo
// N together. For structured inputs — most notably serialized float64
// streams split into 8 channels (byte-stream-split) — the per-channel
// streams are far more self-similar than the original interleaved stream,
// so compressing channels individually often beats compressing the whole.
//
// The package offers four codecs behind a common Codec interface, selected
// by format.CompressionType:
//
//   - None: pass-through baseline
//   - Zstd: best ratio (pure-Go or cgo backend, chosen at build time)
//   - S2: fastest, moderate ratio
//   - LZ4: fast block compression
//
// Codecs are stateless values; the Zstd and LZ4 implementations pool their
// internal encoder state, so all codecs are safe for concurrent use.
package compress
