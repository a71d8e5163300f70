package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/perf/benchfmt"
	"golang.org/x/sys/cpu"

	"github.com/arloliu/splice"
	"github.com/arloliu/splice/compress"
	"github.com/arloliu/splice/demux"
	"github.com/arloliu/splice/format"
)

const (
	// seed fixes the random and float corpora so repeated runs measure the
	// same input.
	seed = 42

	// smokeSize and smokeChannels define the fixed smoke-comparison cell.
	smokeSize     = 7
	smokeChannels = 4
)

type sweepConfig struct {
	sizes      []int
	channels   int
	strategies []format.StrategyType
	pattern    func(int) []byte
	compress   bool
}

// runSweep benchmarks every (strategy, size) cell and writes one benchfmt
// record per cell.
func runSweep(out io.Writer, cfg sweepConfig) error {
	writer := benchfmt.NewWriter(out)
	env := envConfig()

	splitters := make(map[format.StrategyType]demux.Splitter, len(cfg.strategies))
	for _, strategy := range cfg.strategies {
		s, err := demux.New(strategy)
		if err != nil {
			return err
		}
		splitters[strategy] = s
	}

	for _, size := range cfg.sizes {
		data := cfg.pattern(size)

		if err := verifyEquivalence(splitters, cfg.channels, data); err != nil {
			return err
		}

		for _, strategy := range cfg.strategies {
			splitter := splitters[strategy]

			result := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size))
				for b.Loop() {
					_ = splitter.Split(cfg.channels, data)
				}
			})

			record := makeRecord(strategy, size, cfg.channels, result, env)
			if cfg.compress {
				ratio, err := channelCompressionRatio(splitter, cfg.channels, data)
				if err != nil {
					return err
				}
				record.Values = append(record.Values, benchfmt.Value{Value: ratio, Unit: "zstd-ratio"})
			}

			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

// verifyEquivalence is the cross-strategy guard run before timing a cell:
// every enabled strategy must produce a fingerprint-identical channel set.
func verifyEquivalence(splitters map[format.StrategyType]demux.Splitter, channels int, data []byte) error {
	want := splice.Fingerprint(demux.Direct{}.Split(channels, data))

	for strategy, splitter := range splitters {
		got := splice.Fingerprint(splitter.Split(channels, data))
		if got != want {
			return fmt.Errorf("strategy %s diverges on size=%d channels=%d: fingerprint %016x, want %016x",
				strategy, len(data), channels, got, want)
		}
	}

	return nil
}

// makeRecord converts one benchmark result into a benchfmt record named
// Split<Strategy>/size=<n>/channels=<c>.
func makeRecord(strategy format.StrategyType, size, channels int, r testing.BenchmarkResult, env []benchfmt.Config) *benchfmt.Result {
	nsPerOp := float64(r.T.Nanoseconds()) / float64(r.N)

	values := []benchfmt.Value{
		{Value: nsPerOp, Unit: "ns/op"},
		{Value: float64(r.AllocedBytesPerOp()), Unit: "B/op"},
		{Value: float64(r.AllocsPerOp()), Unit: "allocs/op"},
	}
	if nsPerOp > 0 {
		// Elements are bytes; throughput in elements per second.
		values = append(values, benchfmt.Value{Value: float64(size) / (nsPerOp * 1e-9), Unit: "elems/s"})
	}

	return &benchfmt.Result{
		Config: env,
		Name:   benchfmt.Name(fmt.Sprintf("Split%s/size=%d/channels=%d", strategy, size, channels)),
		Iters:  r.N,
		Values: values,
	}
}

// channelCompressionRatio splits data and reports total per-channel
// zstd-compressed size over the input size.
func channelCompressionRatio(splitter demux.Splitter, channels int, data []byte) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	codec, err := compress.GetCodec(format.CompressionZstd)
	if err != nil {
		return 0, err
	}

	var compressed int64
	for _, channel := range splitter.Split(channels, data) {
		stats, err := compress.Measure(format.CompressionZstd, codec, channel)
		if err != nil {
			return 0, err
		}
		compressed += stats.CompressedSize
	}

	return float64(compressed) / float64(len(data)), nil
}

// envConfig captures the execution environment as benchfmt file-level
// configuration lines.
func envConfig() []benchfmt.Config {
	return []benchfmt.Config{
		{Key: "goos", Value: []byte(runtime.GOOS), File: true},
		{Key: "goarch", Value: []byte(runtime.GOARCH), File: true},
		{Key: "gomaxprocs", Value: []byte(fmt.Sprint(runtime.GOMAXPROCS(0))), File: true},
		{Key: "cpu-features", Value: []byte(cpuFeatures()), File: true},
	}
}

// cpuFeatures lists the SIMD-related CPU flags relevant to wide byte
// shuffles, for cross-machine comparison of recorded sweeps.
func cpuFeatures() string {
	var features []string

	switch {
	case cpu.X86.HasAVX512F:
		features = append(features, "avx512")
		fallthrough
	case cpu.X86.HasAVX2:
		features = append(features, "avx2")
	case cpu.ARM64.HasASIMD:
		features = append(features, "asimd")
	}

	if len(features) == 0 {
		return "none"
	}

	return strings.Join(features, ",")
}
