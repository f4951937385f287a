package regressor

import "fmt"

// Model is a fitted single variable linear model, y = Coefficient*x + Intercept. It is a plain
// value and safe to share once fitted.
type Model struct {
	Coefficient float64 `json:"coefficient"`
	Intercept   float64 `json:"intercept"`
}

// PredictValue applies the model to a single input
func (m Model) PredictValue(x float64) float64 {
	return m.Coefficient*x + m.Intercept
}

// Predict applies the model elementwise preserving order and length. An empty input yields an
// empty, non-nil result.
func (m Model) Predict(x []float64) []float64 {
	res := make([]float64, len(x))
	for i, val := range x {
		res[i] = m.PredictValue(val)
	}
	return res
}

// Eq returns a string representation of the model as y ~ b+m*x
func (m Model) Eq() string {
	return fmt.Sprintf("y ~ %.2f+%.2f*x", m.Intercept, m.Coefficient)
}
