// Package service validates prediction requests and applies the fitted model to them
package service

import (
	"fmt"
	"math"

	regressor "github.com/aouyang1/go-regressor"
)

const (
	MinInput = 0.0
	MaxInput = 10.0

	StatusHealthy = "healthy"
)

// PredictionResponse holds the predictions in the order of the request inputs and the model
// that produced them
type PredictionResponse struct {
	Predictions []float64       `json:"predictions"`
	ModelInfo   regressor.Model `json:"model_info"`
}

// StatusResponse reports the service is ready along with the served model
type StatusResponse struct {
	Status    string          `json:"status"`
	ModelInfo regressor.Model `json:"model_info"`
}

// Service serves predictions from a single model. The model is copied in at construction and never
// written again so a Service is safe for concurrent use.
type Service struct {
	model regressor.Model
}

func New(model regressor.Model) *Service {
	return &Service{model: model}
}

// Model returns the served model
func (s *Service) Model() regressor.Model {
	return s.model
}

// Predict checks every input lies in [MinInput, MaxInput] and applies the model elementwise
func (s *Service) Predict(req PredictionRequest) (PredictionResponse, error) {
	if req.XTest == nil {
		return PredictionResponse{}, missingField()
	}
	for i, x := range req.XTest {
		if math.IsNaN(x) || x < MinInput || x > MaxInput {
			return PredictionResponse{}, &Error{
				Kind: KindOutOfRange,
				Msg:  fmt.Sprintf("Input values must be between %g and %g", MinInput, MaxInput),
				Err:  fmt.Errorf("%s[%d] is %g", FieldXTest, i, x),
			}
		}
	}

	return PredictionResponse{
		Predictions: s.model.Predict(req.XTest),
		ModelInfo:   s.model,
	}, nil
}

// PredictJSON decodes a JSON request body and predicts on it
func (s *Service) PredictJSON(body []byte) (PredictionResponse, error) {
	req, err := DecodeRequest(body)
	if err != nil {
		return PredictionResponse{}, err
	}
	return s.Predict(req)
}

// Status always reports healthy; a Service only exists once its model has been fit
func (s *Service) Status() StatusResponse {
	return StatusResponse{
		Status:    StatusHealthy,
		ModelInfo: s.model,
	}
}
