package report

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"

	"github.com/unixpickle/infill-lab/infill"
	"github.com/unixpickle/infill-lab/strength"
)

// A SweepPoint is the score of one generated pattern.
type SweepPoint struct {
	Kind     infill.Kind
	Density  float64
	Voxels   int
	Strength float64
}

// StrengthSweep scores every pattern kind at every density.
// Densities too low for a single stripe are skipped.
func StrengthSweep(est *strength.Estimator, size int, slope float64, kinds []infill.Kind,
	densities []float64) ([]SweepPoint, error) {
	var res []SweepPoint
	for _, kind := range kinds {
		for _, d := range densities {
			g, err := infill.Generate(size, d, kind, slope)
			if errors.Is(err, infill.ErrInvalidGridSize) {
				continue
			} else if err != nil {
				return nil, err
			}
			score, err := est.Score(g)
			if err != nil {
				return nil, errors.Wrapf(err, "score %v at density %v", kind, d)
			}
			res = append(res, SweepPoint{Kind: kind, Density: d, Voxels: g.Count(), Strength: score})
		}
	}
	return res, nil
}

// SweepChart plots strength against density, one line per
// pattern kind.
func SweepChart(points []SweepPoint) *Chart {
	var series []Series
	index := map[infill.Kind]int{}
	for _, p := range points {
		i, ok := index[p.Kind]
		if !ok {
			i = len(series)
			index[p.Kind] = i
			series = append(series, Series{Name: p.Kind.String()})
		}
		series[i].Points = append(series[i].Points, plotter.XY{X: p.Density, Y: p.Strength})
	}
	return &Chart{
		Title:  "Infill strength",
		XLabel: "Density",
		YLabel: "Strength",
		Series: series,
	}
}
