package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/perf/benchfmt"

	"github.com/arloliu/splice/breakeven"
	"github.com/arloliu/splice/format"
)

// runAnalyze reads a recorded benchfmt results file, groups ns/op samples by
// strategy, and reports the fitted cost models plus the base/candidate
// crossover size.
func runAnalyze(out io.Writer, path, baseName, candName string) error {
	base, ok := format.ParseStrategyType(baseName)
	if !ok {
		return fmt.Errorf("unknown base strategy: %q", baseName)
	}
	candidate, ok := format.ParseStrategyType(candName)
	if !ok {
		return fmt.Errorf("unknown candidate strategy: %q", candName)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, err := readSamples(f, path)
	if err != nil {
		return err
	}

	result, err := breakeven.Analyze(samples[base], samples[candidate])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-10s %s (%d samples)\n", base, result.Base, len(samples[base]))
	fmt.Fprintf(out, "%-10s %s (%d samples)\n", candidate, result.Candidate, len(samples[candidate]))
	fmt.Fprintf(out, "estimated crossover: %s overtakes %s above %.0f bytes\n",
		candidate, base, result.CrossoverSize)

	return nil
}

// readSamples extracts per-strategy (size, ns/op) samples from a benchfmt
// stream, recognizing the Split<Strategy>/size=<n>/... names the sweep emits.
func readSamples(r io.Reader, name string) (map[format.StrategyType][]breakeven.Sample, error) {
	samples := make(map[format.StrategyType][]breakeven.Sample)

	reader := benchfmt.NewReader(r, name)
	for reader.Scan() {
		result, ok := reader.Result().(*benchfmt.Result)
		if !ok {
			continue
		}

		strategy, size, ok := parseCellName(string(result.Name.Full()))
		if !ok {
			continue
		}

		nsPerOp, ok := result.Value("ns/op")
		if !ok {
			continue
		}

		samples[strategy] = append(samples[strategy], breakeven.Sample{Size: size, NsPerOp: nsPerOp})
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("no splice benchmark results in %s", name)
	}

	return samples, nil
}

// parseCellName splits "Split<Strategy>/size=<n>/..." into its strategy and
// size.
func parseCellName(full string) (format.StrategyType, int, bool) {
	parts := strings.Split(full, "/")
	if len(parts) < 2 || !strings.HasPrefix(parts[0], "Split") {
		return 0, 0, false
	}

	strategy, ok := format.ParseStrategyType(strings.TrimPrefix(parts[0], "Split"))
	if !ok {
		return 0, 0, false
	}

	for _, part := range parts[1:] {
		if value, found := strings.CutPrefix(part, "size="); found {
			size, err := strconv.Atoi(value)
			if err != nil {
				return 0, 0, false
			}

			return strategy, size, true
		}
	}

	return 0, 0, false
}
