package breakeven

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/splice/errs"
)

// synthSamples generates samples from a known affine cost line with optional
// multiplicative noise.
func synthSamples(fixed, perByte, noise float64, rng *rand.Rand) []Sample {
	samples := make([]Sample, 0, 20)
	for size := 1; size <= 1<<19; size *= 2 {
		ns := fixed + perByte*float64(size)
		if noise > 0 {
			ns *= 1 + noise*(rng.Float64()-0.5)
		}
		samples = append(samples, Sample{Size: size, NsPerOp: ns})
	}

	return samples
}

func TestFitCostExact(t *testing.T) {
	model, err := FitCost(synthSamples(250, 0.75, 0, nil))
	require.NoError(t, err)

	require.InDelta(t, 250, model.Fixed, 1e-3)
	require.InDelta(t, 0.75, model.PerByte, 1e-9)
	require.InDelta(t, 1.0, model.RSquared, 1e-9)
	require.InDelta(t, 0.0, model.RMSE, 1e-3)

	require.InDelta(t, 250+0.75*1000, model.Estimate(1000), 1e-3)
	require.Equal(t, []float64{model.Fixed, model.PerByte}, model.Coefficients())
	require.Contains(t, model.Formula(), "ns = ")
}

func TestFitCostNoisy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	model, err := FitCost(synthSamples(500, 1.25, 0.05, rng))
	require.NoError(t, err)

	require.InDelta(t, 1.25, model.PerByte, 0.1)
	require.Greater(t, model.RSquared, 0.99)
}

func TestFitCostNotEnoughSamples(t *testing.T) {
	_, err := FitCost(nil)
	require.ErrorIs(t, err, errs.ErrNotEnoughSamples)

	_, err = FitCost([]Sample{{Size: 8, NsPerOp: 100}})
	require.ErrorIs(t, err, errs.ErrNotEnoughSamples)

	// Two samples at one size carry no slope information.
	_, err = FitCost([]Sample{{Size: 8, NsPerOp: 100}, {Size: 8, NsPerOp: 110}})
	require.ErrorIs(t, err, errs.ErrNotEnoughSamples)
}

// TestAnalyzeKnownCrossover recovers a crossover planted in synthetic
// timings: base ns = 100 + 1.0*s, candidate ns = 4100 + 0.5*s cross at 8000.
func TestAnalyzeKnownCrossover(t *testing.T) {
	base := synthSamples(100, 1.0, 0, nil)
	candidate := synthSamples(4100, 0.5, 0, nil)

	result, err := Analyze(base, candidate)
	require.NoError(t, err)
	require.InDelta(t, 8000, result.CrossoverSize, 1)
}

func TestAnalyzeNoisyCrossover(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := synthSamples(100, 1.0, 0.01, rng)
	candidate := synthSamples(4100, 0.5, 0.01, rng)

	result, err := Analyze(base, candidate)
	require.NoError(t, err)
	require.InDelta(t, 8000, result.CrossoverSize, 3000)
}

// TestAnalyzeCandidateAlwaysFaster yields crossover 0: there is no size
// below which the base wins.
func TestAnalyzeCandidateAlwaysFaster(t *testing.T) {
	base := synthSamples(500, 1.0, 0, nil)
	candidate := synthSamples(100, 0.5, 0, nil)

	result, err := Analyze(base, candidate)
	require.NoError(t, err)
	require.Zero(t, result.CrossoverSize)
}

// TestAnalyzeNoCrossover rejects a candidate whose per-byte cost is no
// better than the base's.
func TestAnalyzeNoCrossover(t *testing.T) {
	base := synthSamples(100, 0.5, 0, nil)
	candidate := synthSamples(4100, 1.0, 0, nil)

	_, err := Analyze(base, candidate)
	require.ErrorIs(t, err, errs.ErrNoCrossover)
}

func TestAnalyzePropagatesFitErrors(t *testing.T) {
	good := synthSamples(100, 1.0, 0, nil)

	_, err := Analyze(nil, good)
	require.ErrorIs(t, err, errs.ErrNotEnoughSamples)

	_, err = Analyze(good, nil)
	require.ErrorIs(t, err, errs.ErrNotEnoughSamples)
}
