package regressor

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewSamples    = errors.New("need at least 2 training samples")
	ErrNegativeNoise    = errors.New("noise standard deviation must not be negative")
	ErrInvalidFeatRange = errors.New("feature range upper bound must be greater than lower bound")
)

const (
	DefaultSamples     = 100
	DefaultSeed        = 42
	DefaultSlope       = 2.5
	DefaultNoiseStdDev = 2.0
	DefaultXMin        = 0.0
	DefaultXMax        = 10.0
)

// Options configures the synthetic training set the regressor is fit against. Training data is
// y = Slope*x + N(0, NoiseStdDev^2) with x uniform in [XMin, XMax), drawn from a source seeded
// with Seed.
type Options struct {
	Samples     int     `json:"samples"`
	Seed        uint64  `json:"seed"`
	Slope       float64 `json:"slope"`
	NoiseStdDev float64 `json:"noise_std_dev"`
	XMin        float64 `json:"x_min"`
	XMax        float64 `json:"x_max"`
}

// NewDefaultOptions returns the fixed training configuration: 100 samples, seed 42, slope 2.5,
// noise standard deviation 2 and x in [0, 10).
func NewDefaultOptions() *Options {
	return &Options{
		Samples:     DefaultSamples,
		Seed:        DefaultSeed,
		Slope:       DefaultSlope,
		NoiseStdDev: DefaultNoiseStdDev,
		XMin:        DefaultXMin,
		XMax:        DefaultXMax,
	}
}

// Validate returns the default options if o is nil and otherwise checks o can produce a fittable
// training set
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Samples < 2 {
		return nil, fmt.Errorf("got %d samples, %w", o.Samples, ErrTooFewSamples)
	}
	if o.NoiseStdDev < 0 {
		return nil, fmt.Errorf("got %f, %w", o.NoiseStdDev, ErrNegativeNoise)
	}
	if o.XMax <= o.XMin {
		return nil, fmt.Errorf("got [%f, %f), %w", o.XMin, o.XMax, ErrInvalidFeatRange)
	}
	return o, nil
}
