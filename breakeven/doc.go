// Package breakeven fits cost models to splitter benchmark results and
// estimates the input size where a candidate strategy overtakes a base
// strategy.
//
// A splitter's cost over a size sweep is well described by an affine model
//
//	ns = fixed + perByte * size
//
// where fixed captures per-call overhead (allocation, and for the parallel
// strategy, worker coordination) and perByte captures the scan cost. The
// parallel strategy trades a larger fixed term for a smaller perByte term,
// so the two cost lines cross at some input size: below it parallelism is
// pure overhead, above it the cheaper scan wins. That crossover is a
// property to be measured, not assumed, and this package recovers it from
// recorded benchmark samples.
//
// # Usage
//
// Fit a single strategy's cost model:
//
//	model, err := breakeven.FitCost(samples)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(model.Formula())
//
// Compare two strategies:
//
//	result, err := breakeven.Analyze(stridedSamples, parallelSamples)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("parallel pays off above %.0f bytes\n", result.CrossoverSize)
//
// Analyze returns ErrNoCrossover when the candidate's fitted line never
// drops below the base's, and a CrossoverSize of 0 when the candidate is
// already cheaper at every size.
package breakeven
