package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDataset(t *testing.T) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"valid":        {[]float64{1, 2, 3}, []float64{4, 5, 6}, nil},
		"no data":      {nil, nil, ErrNoTrainingData},
		"len mismatch": {[]float64{1, 2}, []float64{4, 5, 6}, ErrDatasetLenMismatch},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			d, err := NewDataset(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.x, d.X)
			assert.Equal(t, td.y, d.Y)
			assert.Equal(t, len(td.y), d.Samples())

			// dataset holds its own copy
			td.x[0] = -1
			assert.NotEqual(t, td.x[0], d.X[0])
		})
	}
}

func TestDatasetMatrices(t *testing.T) {
	d, err := NewDataset([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.Nil(t, err)

	x, err := d.FeatureMatrix()
	require.Nil(t, err)
	m, n := x.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 1, n)
	assert.Equal(t, d.X, mat.Col(nil, 0, x))

	y, err := d.ObservationMatrix()
	require.Nil(t, err)
	assert.Equal(t, d.Y, mat.Col(nil, 0, y))
}
