package breakeven

import (
	"fmt"
	"math"

	"github.com/arloliu/splice/errs"
)

// FitCost fits an affine cost model to benchmark samples by ordinary least
// squares.
//
// Parameters:
//   - samples: Measured (size, ns/op) cells; at least two distinct sizes
//
// Returns:
//   - *CostModel: The fitted model with R² and RMSE populated
//   - error: ErrNotEnoughSamples if fewer than two samples or all samples
//     share one size
func FitCost(samples []Sample) (*CostModel, error) {
	n := len(samples)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d, need at least 2", errs.ErrNotEnoughSamples, n)
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, s := range samples {
		x := float64(s.Size)
		y := s.NsPerOp
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	denom := sumX2 - float64(n)*meanX*meanX
	if denom == 0 {
		return nil, fmt.Errorf("%w: need at least two distinct sizes", errs.ErrNotEnoughSamples)
	}

	perByte := (sumXY - float64(n)*meanX*meanY) / denom
	fixed := meanY - perByte*meanX

	model := &CostModel{Fixed: fixed, PerByte: perByte}
	model.RSquared, model.RMSE = fitStats(samples, model)

	return model, nil
}

// Analyze fits cost models for the base and candidate strategies and
// computes the crossover size where the candidate's modeled cost drops below
// the base's.
//
// Parameters:
//   - base: Samples of the base strategy (typically Strided)
//   - candidate: Samples of the candidate strategy (typically Parallel)
//
// Returns:
//   - *Result: Both fitted models plus the crossover size; CrossoverSize is
//     0 when the candidate is cheaper at every size
//   - error: ErrNotEnoughSamples from fitting, or ErrNoCrossover when the
//     candidate's line never drops below the base's
func Analyze(base, candidate []Sample) (*Result, error) {
	baseModel, err := FitCost(base)
	if err != nil {
		return nil, fmt.Errorf("fitting base model: %w", err)
	}

	candModel, err := FitCost(candidate)
	if err != nil {
		return nil, fmt.Errorf("fitting candidate model: %w", err)
	}

	result := &Result{Base: baseModel, Candidate: candModel}

	switch {
	case candModel.PerByte < baseModel.PerByte:
		// Lines cross exactly once; left of the crossing the candidate's
		// higher fixed cost dominates.
		crossover := (candModel.Fixed - baseModel.Fixed) / (baseModel.PerByte - candModel.PerByte)
		result.CrossoverSize = math.Max(crossover, 0)
	case candModel.PerByte == baseModel.PerByte && candModel.Fixed <= baseModel.Fixed:
		result.CrossoverSize = 0
	default:
		return nil, fmt.Errorf("%w: candidate per-byte cost %.6f never beats base %.6f",
			errs.ErrNoCrossover, candModel.PerByte, baseModel.PerByte)
	}

	return result, nil
}

// fitStats computes R² and RMSE of a fitted model over its samples in a
// single pass.
func fitStats(samples []Sample, model *CostModel) (r2, rmse float64) {
	n := len(samples)
	if n == 0 {
		return 0, 0
	}

	meanY := 0.0
	for _, s := range samples {
		meanY += s.NsPerOp
	}
	meanY /= float64(n)

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for _, s := range samples {
		predicted := model.Estimate(float64(s.Size))
		residual := s.NsPerOp - predicted
		ssRes += residual * residual
		ssTot += (s.NsPerOp - meanY) * (s.NsPerOp - meanY)
	}

	rmse = math.Sqrt(ssRes / float64(n))
	if ssTot == 0 {
		return 0, rmse
	}

	return 1.0 - ssRes/ssTot, rmse
}
