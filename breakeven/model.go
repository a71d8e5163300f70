package breakeven

import "fmt"

// Sample is one measured benchmark cell: the input size in bytes and the
// observed cost in nanoseconds per operation.
type Sample struct {
	// Size is the input size in bytes.
	Size int
	// NsPerOp is the measured nanoseconds per operation at that size.
	NsPerOp float64
}

// CostModel is a fitted affine cost model: ns = Fixed + PerByte*size.
//
// Fields:
//   - Fixed: Per-call overhead in nanoseconds (intercept)
//   - PerByte: Marginal scan cost in nanoseconds per byte (slope)
//   - RSquared: Coefficient of determination (0-1, higher is better)
//   - RMSE: Root mean square error in nanoseconds (lower is better)
type CostModel struct {
	Fixed    float64
	PerByte  float64
	RSquared float64
	RMSE     float64
}

// Estimate returns the modeled cost in nanoseconds for the given input size.
func (m *CostModel) Estimate(size float64) float64 {
	return m.Fixed + m.PerByte*size
}

// Coefficients returns the model coefficients as [fixed, perByte].
func (m *CostModel) Coefficients() []float64 {
	return []float64{m.Fixed, m.PerByte}
}

// Formula returns a human-readable representation of the model.
func (m *CostModel) Formula() string {
	return fmt.Sprintf("ns = %.2f + %.6f*size", m.Fixed, m.PerByte)
}

// String returns a string representation of the model including fit quality.
func (m *CostModel) String() string {
	return fmt.Sprintf("CostModel{R²: %.4f, RMSE: %.2f, Formula: %s}",
		m.RSquared, m.RMSE, m.Formula())
}

// Result represents the outcome of comparing a candidate strategy against a
// base strategy.
//
// Fields:
//   - Base: Fitted cost model of the base strategy
//   - Candidate: Fitted cost model of the candidate strategy
//   - CrossoverSize: Input size in bytes above which the candidate is
//     expected to be cheaper; 0 when it is cheaper at every size
type Result struct {
	Base          *CostModel
	Candidate     *CostModel
	CrossoverSize float64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Base: %s, Candidate: %s, CrossoverSize: %.0f}",
		r.Base, r.Candidate, r.CrossoverSize)
}
