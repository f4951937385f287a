// Package dataset generates and holds the single feature training data for the regressor
package dataset

import (
	"errors"
	"fmt"

	mat_ "github.com/aouyang1/go-regressor/mat"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoTrainingData     = errors.New("no training data")
	ErrDatasetLenMismatch = errors.New("feature has a different length than observations")
)

// Dataset stores paired feature and observation values. Both must be of the same length.
type Dataset struct {
	X []float64
	Y []float64
}

// NewDataset returns an instance of a Dataset holding copies of x and y
func NewDataset(x, y []float64) (*Dataset, error) {
	if len(y) == 0 {
		return nil, ErrNoTrainingData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"feature has length of %d, but values has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &Dataset{
		X: xSeries,
		Y: ySeries,
	}, nil
}

func (d *Dataset) Samples() int {
	return len(d.Y)
}

// FeatureMatrix returns the m x 1 design matrix of the dataset
func (d *Dataset) FeatureMatrix() (mat.Matrix, error) {
	mx, err := mat_.NewColumn(d.X)
	if err != nil {
		return nil, err
	}
	return mx, nil
}

// ObservationMatrix returns the m x 1 target matrix of the dataset
func (d *Dataset) ObservationMatrix() (mat.Matrix, error) {
	mx, err := mat_.NewColumn(d.Y)
	if err != nil {
		return nil, err
	}
	return mx, nil
}
