package service

import (
	"math"
	"sync"
	"testing"

	regressor "github.com/aouyang1/go-regressor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModel = regressor.Model{Coefficient: 2.4, Intercept: 0.3}

func TestPredict(t *testing.T) {
	s := New(testModel)

	testData := map[string]struct {
		x   []float64
		err error
	}{
		"lower bound":       {[]float64{0}, nil},
		"upper bound":       {[]float64{10}, nil},
		"many":              {[]float64{3.3, 0.1, 9.99, 5}, nil},
		"empty":             {[]float64{}, nil},
		"below lower bound": {[]float64{-0.0001}, ErrOutOfRange},
		"above upper bound": {[]float64{10.0001}, ErrOutOfRange},
		"one bad value":     {[]float64{1, 2, 11}, ErrOutOfRange},
		"nan":               {[]float64{math.NaN()}, ErrOutOfRange},
		"missing":           {nil, ErrMissingField},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := s.Predict(PredictionRequest{XTest: td.x})
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			require.Len(t, res.Predictions, len(td.x))
			for i, x := range td.x {
				assert.InDelta(t, testModel.Coefficient*x+testModel.Intercept, res.Predictions[i], 1e-9)
			}
			assert.Equal(t, testModel, res.ModelInfo)
		})
	}
}

func TestPredictOutOfRangeMessage(t *testing.T) {
	_, err := New(testModel).Predict(PredictionRequest{XTest: []float64{-1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Input values must be between 0 and 10")
}

func TestPredictEmptyIsNotNil(t *testing.T) {
	res, err := New(testModel).Predict(PredictionRequest{XTest: []float64{}})
	require.Nil(t, err)
	assert.NotNil(t, res.Predictions)
	assert.Empty(t, res.Predictions)
}

func TestPredictIdempotent(t *testing.T) {
	s := New(testModel)
	req := PredictionRequest{XTest: []float64{1, 2, 3}}

	first, err := s.Predict(req)
	require.Nil(t, err)
	for i := 0; i < 10; i++ {
		res, err := s.Predict(req)
		require.Nil(t, err)
		assert.Equal(t, first, res)
	}
}

func TestPredictConcurrent(t *testing.T) {
	s := New(testModel)
	expected, err := s.Predict(PredictionRequest{XTest: []float64{4, 5}})
	require.Nil(t, err)

	var wg sync.WaitGroup
	results := make([]PredictionResponse, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.Predict(PredictionRequest{XTest: []float64{4, 5}})
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, expected, res)
	}
}

func TestPredictJSON(t *testing.T) {
	s := New(testModel)

	res, err := s.PredictJSON([]byte(`{"X_test": [1, 2]}`))
	require.Nil(t, err)
	assert.InDeltaSlice(t, []float64{2.7, 5.1}, res.Predictions, 1e-9)

	_, err = s.PredictJSON([]byte(`{}`))
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = s.PredictJSON([]byte(`{"X_test": ["a"]}`))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = s.PredictJSON([]byte(`{"X_test": [10.0001]}`))
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPredictTrainedModel(t *testing.T) {
	m, err := regressor.Train(nil)
	require.Nil(t, err)
	s := New(m)

	x := []float64{0, 1.5, 5, 10}
	res, err := s.Predict(PredictionRequest{XTest: x})
	require.Nil(t, err)
	for i := range x {
		assert.InDelta(t, m.Coefficient*x[i]+m.Intercept, res.Predictions[i], 1e-9)
	}
}

func TestStatus(t *testing.T) {
	status := New(testModel).Status()
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, testModel, status.ModelInfo)
}
