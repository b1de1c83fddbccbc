// Package report renders experiment results as line
// charts.
package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/unixpickle/infill-lab/nnet"
)

// A Series is one named line.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Chart describes a line chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Plot builds the chart.
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	for i, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", s.Name)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Save renders the chart to an image whose format follows
// the file extension.
func (c *Chart) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrap(err, "save chart")
	}
	return nil
}

// AccuracyChart plots test accuracy per epoch.
func AccuracyChart(epochs []nnet.Epoch) *Chart {
	pts := make(plotter.XYs, len(epochs))
	for i, e := range epochs {
		pts[i] = plotter.XY{X: float64(e.Index + 1), Y: e.Accuracy()}
	}
	return &Chart{
		Title:  "Stability classifier",
		XLabel: "Epoch",
		YLabel: "Test accuracy",
		Series: []Series{{Name: "accuracy", Points: pts}},
	}
}
