package regressor

import (
	"errors"
	"math"
)

var ErrResLenMismatch = errors.New("predicted and actual have different lengths")

// MSE computes the mean squared error between predicted and actual skipping NaN pairs
func MSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, ErrResLenMismatch
	}

	mse := 0.0
	n := 0
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		mse += math.Pow(actual[i]-predicted[i], 2.0)
		n++
	}
	if n == 0 {
		return math.NaN(), nil
	}
	mse /= float64(n)
	return mse, nil
}

// TrainingSummary describes how well the model fits the data it was trained on
type TrainingSummary struct {
	Samples int     `json:"samples"`
	Seed    uint64  `json:"seed"`
	R2      float64 `json:"r2"`
	MSE     float64 `json:"mse"`
}
