package regressor

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineXSeries generates an echart multi-line chart for some arbitrary feature/value combination. The
// input y is a slice of series that must have the same length as the input x slice and x is
// expected to be sorted.
func LineXSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	xLabels := make([]string, 0, len(x))
	for _, val := range x {
		xLabels = append(xLabels, fmt.Sprintf("%.2f", val))
	}

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			var val interface{} = y[i][j]
			if math.IsNaN(y[i][j]) {
				val = "-"
			}
			lineData[i] = append(lineData[i], opts.LineData{Value: val})
		}
	}

	line = line.SetXAxis(xLabels)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// PlotFit uses the Apache Echarts library to render an html page showing the training samples
// against the fitted line and the fit residual
func (r *Regressor) PlotFit(w io.Writer) error {
	if !r.fitted {
		return ErrNotFitted
	}
	td := r.trainingData

	idx := make([]int, td.Samples())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return td.X[idx[i]] < td.X[idx[j]]
	})

	x := make([]float64, 0, len(idx))
	actual := make([]float64, 0, len(idx))
	for _, i := range idx {
		x = append(x, td.X[i])
		actual = append(actual, td.Y[i])
	}
	fit := r.model.Predict(x)
	residual := make([]float64, len(fit))
	for i := range fit {
		residual[i] = actual[i] - fit[i]
	}

	page := components.NewPage()
	page.AddCharts(
		LineXSeries(
			fmt.Sprintf("Linear Fit %s", r.model.Eq()),
			[]string{"Actual", "Fit"},
			x,
			[][]float64{actual, fit},
		),
		LineXSeries(
			"Fit Residual",
			[]string{"Residual"},
			x,
			[][]float64{residual},
		),
	)
	return page.Render(w)
}
