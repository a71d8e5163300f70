// Command splicebench measures splice strategy throughput over input-size
// sweeps and emits the results in Go benchmark format.
//
// Three sweeps mirror the package's benchmark suite: "large" doubles input
// sizes from 1 byte to 64MB, "small" stops at 1KB, and "smoke" runs the
// fixed 7-byte input across all strategies. Before timing a cell the
// harness verifies all enabled strategies produce fingerprint-identical
// output for that input.
//
// With -analyze, the command instead reads a previously recorded results
// file, fits per-strategy cost models, and reports the estimated
// strided/parallel crossover size.
//
// Usage:
//
//	splicebench -sweep large -channels 5 -o results.txt
//	splicebench -analyze results.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/arloliu/splice/endian"
	"github.com/arloliu/splice/format"
	"github.com/arloliu/splice/internal/gen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("splicebench: ")

	var (
		sweepName    = flag.String("sweep", "smoke", "sweep to run: large, small, or smoke")
		channels     = flag.Int("channels", 5, "channel count for size sweeps")
		strategies   = flag.String("strategies", "direct,strided,parallel", "comma-separated strategies to benchmark")
		pattern      = flag.String("pattern", "sequential", "input pattern: sequential, random, or floats")
		compressFlag = flag.Bool("compress", false, "report per-channel zstd compression ratio per cell")
		output       = flag.String("o", "", "write results to file instead of stdout")
		analyzePath  = flag.String("analyze", "", "analyze a recorded results file instead of running sweeps")
		baseName     = flag.String("base", "strided", "base strategy for -analyze")
		candName     = flag.String("candidate", "parallel", "candidate strategy for -analyze")
	)
	flag.Parse()

	if *analyzePath != "" {
		if err := runAnalyze(os.Stdout, *analyzePath, *baseName, *candName); err != nil {
			log.Fatal(err)
		}

		return
	}

	cfg, err := buildConfig(*sweepName, *channels, *strategies, *pattern, *compressFlag)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	if err := runSweep(out, cfg); err != nil {
		log.Fatal(err)
	}
}

// buildConfig validates the flag values into a sweep configuration.
func buildConfig(sweepName string, channels int, strategies, pattern string, compress bool) (sweepConfig, error) {
	cfg := sweepConfig{compress: compress}

	if channels < 1 {
		return cfg, fmt.Errorf("invalid channel count: %d", channels)
	}
	cfg.channels = channels

	switch sweepName {
	case "large":
		cfg.sizes = gen.Sizes(26)
	case "small":
		cfg.sizes = gen.Sizes(10)
	case "smoke":
		// Fixed 7-byte input over 4 channels regardless of -channels.
		cfg.sizes = []int{smokeSize}
		cfg.channels = smokeChannels
	default:
		return cfg, fmt.Errorf("unknown sweep: %q", sweepName)
	}

	for _, name := range strings.Split(strategies, ",") {
		strategy, ok := format.ParseStrategyType(strings.TrimSpace(name))
		if !ok {
			return cfg, fmt.Errorf("unknown strategy: %q", name)
		}
		cfg.strategies = append(cfg.strategies, strategy)
	}
	if len(cfg.strategies) == 0 {
		return cfg, fmt.Errorf("no strategies selected")
	}

	switch pattern {
	case "sequential":
		cfg.pattern = gen.Sequential
	case "random":
		cfg.pattern = func(n int) []byte { return gen.Random(n, seed) }
	case "floats":
		cfg.pattern = func(n int) []byte {
			data := gen.FloatDeltas((n+7)/8, seed, endian.GetLittleEndianEngine())

			return data[:n]
		}
	default:
		return cfg, fmt.Errorf("unknown pattern: %q", pattern)
	}

	return cfg, nil
}
