package dataset

import (
	"gonum.org/v1/gonum/floats"
)

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func (s Series) Scale(c float64) Series {
	floats.Scale(c, s)
	return s
}

func (s Series) AddConst(c float64) Series {
	floats.AddConst(c, s)
	return s
}

func (s Series) Copy() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// GenerateUniform draws n values uniformly from [low, high)
func GenerateUniform(src Source, n int, low, high float64) Series {
	x := make(Series, 0, n)
	width := high - low
	for i := 0; i < n; i++ {
		x = append(x, low+src.Float64()*width)
	}
	return x
}

// GenerateNoise draws n values from a normal distribution with zero mean and the given standard
// deviation
func GenerateNoise(src Source, n int, stddev float64) Series {
	y := make(Series, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, src.NormFloat64()*stddev)
	}
	return y
}

// LinearOptions describes a synthetic dataset y = Slope*x + Intercept + N(0, NoiseStdDev^2)
// with x uniform in [XMin, XMax).
type LinearOptions struct {
	Samples     int
	Slope       float64
	Intercept   float64
	NoiseStdDev float64
	XMin        float64
	XMax        float64
}

// GenerateLinear draws every x first, then every noise term, from the same stream
func GenerateLinear(src Source, opt LinearOptions) (*Dataset, error) {
	x := GenerateUniform(src, opt.Samples, opt.XMin, opt.XMax)
	y := x.Copy().
		Scale(opt.Slope).
		AddConst(opt.Intercept).
		Add(GenerateNoise(src, opt.Samples, opt.NoiseStdDev))
	return NewDataset(x, y)
}
