// Package regressor fits a single variable linear regression against a seeded synthetic dataset
// and exposes the resulting model for inference
package regressor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aouyang1/go-regressor/dataset"
	"github.com/aouyang1/go-regressor/linearmodel"
)

var (
	ErrNotFitted       = errors.New("regressor has not been fit")
	ErrUnexpectedCoefs = errors.New("unexpected number of fitted coefficients")
)

// Regressor generates its training data and fits an ordinary least squares model against it
type Regressor struct {
	opt *Options
	src dataset.Source

	trainingData *dataset.Dataset
	model        Model
	summary      TrainingSummary
	fitted       bool
}

// New creates a new instance of a Regressor using the provided options. If no options are provided
// a default is used. Training data is drawn from a source seeded with the options' seed.
func New(opt *Options) (*Regressor, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return NewWithSource(opt, dataset.NewSeededSource(opt.Seed))
}

// NewWithSource creates a Regressor drawing its training data from src instead of a seeded source
func NewWithSource(opt *Options, src dataset.Source) (*Regressor, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = dataset.NewSeededSource(opt.Seed)
	}
	return &Regressor{
		opt: opt,
		src: src,
	}, nil
}

// Fit generates the synthetic training set and fits the model. Fit runs once; subsequent calls
// return the first result without drawing more data.
func (r *Regressor) Fit() error {
	if r.fitted {
		return nil
	}

	td, err := dataset.GenerateLinear(r.src, dataset.LinearOptions{
		Samples:     r.opt.Samples,
		Slope:       r.opt.Slope,
		NoiseStdDev: r.opt.NoiseStdDev,
		XMin:        r.opt.XMin,
		XMax:        r.opt.XMax,
	})
	if err != nil {
		return fmt.Errorf("unable to generate training data, %w", err)
	}

	x, err := td.FeatureMatrix()
	if err != nil {
		return err
	}
	y, err := td.ObservationMatrix()
	if err != nil {
		return err
	}

	ols, err := linearmodel.NewOLSRegression(linearmodel.NewDefaultOLSOptions())
	if err != nil {
		return fmt.Errorf("unable to initialize ols regression, %w", err)
	}
	if err := ols.Fit(x, y); err != nil {
		return fmt.Errorf("unable to fit ols regression, %w", err)
	}
	coef := ols.Coef()
	if len(coef) != 1 {
		return fmt.Errorf("got %d coefficients, %w", len(coef), ErrUnexpectedCoefs)
	}

	r2, err := ols.Score(x, y)
	if err != nil {
		return fmt.Errorf("unable to compute fit score, %w", err)
	}

	m := Model{
		Coefficient: coef[0],
		Intercept:   ols.Intercept(),
	}
	mse, err := MSE(m.Predict(td.X), td.Y)
	if err != nil {
		return fmt.Errorf("unable to compute mean squared error, %w", err)
	}

	r.trainingData = td
	r.model = m
	r.summary = TrainingSummary{
		Samples: td.Samples(),
		Seed:    r.opt.Seed,
		R2:      r2,
		MSE:     mse,
	}
	r.fitted = true

	slog.Info("fitted linear model",
		"equation", m.Eq(),
		"samples", r.summary.Samples,
		"r2", r.summary.R2,
		"mse", r.summary.MSE,
	)
	return nil
}

// Model returns the fitted model
func (r *Regressor) Model() (Model, error) {
	if !r.fitted {
		return Model{}, ErrNotFitted
	}
	return r.model, nil
}

// Summary returns the training fit scores of the model
func (r *Regressor) Summary() (TrainingSummary, error) {
	if !r.fitted {
		return TrainingSummary{}, ErrNotFitted
	}
	return r.summary, nil
}

// TrainingData returns the training data used to fit the current model
func (r *Regressor) TrainingData() *dataset.Dataset {
	return r.trainingData
}

// Train is a convenience to build the regressor, fit it and return the model
func Train(opt *Options) (Model, error) {
	r, err := New(opt)
	if err != nil {
		return Model{}, err
	}
	if err := r.Fit(); err != nil {
		return Model{}, err
	}
	return r.Model()
}
