package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/splice/demux"
	"github.com/arloliu/splice/endian"
	"github.com/arloliu/splice/format"
	"github.com/arloliu/splice/internal/gen"
)

func allCodecs(t *testing.T) map[format.CompressionType]Codec {
	t.Helper()

	codecs := make(map[format.CompressionType]Codec, 4)
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		codecs[ct] = codec
	}

	return codecs
}

// TestCodecRoundTripChannels round-trips every codec over each channel of a
// spliced float corpus, the package's primary payload shape.
func TestCodecRoundTripChannels(t *testing.T) {
	corpus := gen.FloatDeltas(2048, 42, endian.GetLittleEndianEngine())
	channels := demux.Strided{}.Split(8, corpus)

	for ct, codec := range allCodecs(t) {
		t.Run(ct.String(), func(t *testing.T) {
			for i, channel := range channels {
				compressed, err := codec.Compress(channel)
				require.NoError(t, err, "channel %d", i)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err, "channel %d", i)
				require.Equal(t, channel, decompressed, "channel %d", i)
			}
		})
	}
}

func TestCodecRoundTripPatterns(t *testing.T) {
	payloads := map[string][]byte{
		"sequential": gen.Sequential(4096),
		"random":     gen.Random(4096, 42),
		"zeros":      make([]byte, 4096),
		"tiny":       {1, 2, 3},
	}

	for ct, codec := range allCodecs(t) {
		t.Run(ct.String(), func(t *testing.T) {
			for name, payload := range payloads {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err, "%s", name)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err, "%s", name)
				require.Equal(t, payload, decompressed, "%s", name)
			}
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for ct, codec := range allCodecs(t) {
		t.Run(ct.String(), func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestDecompressCorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "channel")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xff), "channel")
	require.Error(t, err)

	_, err = GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	s := Stats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, s.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	require.Zero(t, Stats{}.CompressionRatio())
}

// TestMeasureCompressibleChannels verifies per-channel zstd compression of a
// byte-stream-split float corpus beats compressing the interleaved whole.
func TestMeasureCompressibleChannels(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	corpus := gen.FloatDeltas(8192, 42, endian.GetLittleEndianEngine())

	whole, err := Measure(format.CompressionZstd, codec, corpus)
	require.NoError(t, err)

	channels := demux.Strided{}.Split(8, corpus)

	var perChannel int64
	for _, channel := range channels {
		stats, err := Measure(format.CompressionZstd, codec, channel)
		require.NoError(t, err)
		perChannel += stats.CompressedSize
	}

	require.Less(t, perChannel, whole.CompressedSize)
}
