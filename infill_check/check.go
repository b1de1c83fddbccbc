package main

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unixpickle/infill-lab/build"
	"github.com/unixpickle/infill-lab/config"
	"github.com/unixpickle/infill-lab/infill"
	"github.com/unixpickle/infill-lab/objmesh"
	"github.com/unixpickle/infill-lab/report"
	"github.com/unixpickle/infill-lab/shape"
	"github.com/unixpickle/infill-lab/strength"
)

// A Checker fills a mesh with the configured pattern and
// scores it.
type Checker struct {
	Run      config.Run
	Clip     bool
	Simulate bool
	Logger   logrus.FieldLogger
}

// A Report holds the outcome of one check.
type Report struct {
	Regions  int
	Voxels   int
	Clipped  int
	Strength float64

	// Build and BuildStrength are only set when simulating.
	Build         *build.Result
	BuildStrength float64
}

// Check runs the pipeline on obj.
func (c *Checker) Check(obj *objmesh.Object) (*Report, error) {
	log := c.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("run", uuid.New().String())

	res := &Report{Regions: len(objmesh.InfillRegions(obj.Vertices))}
	log.WithFields(logrus.Fields{
		"vertices": len(obj.Vertices),
		"polygons": len(obj.Polygons),
		"regions":  res.Regions,
	}).Info("loaded mesh")

	kind, err := c.Run.InfillKind()
	if err != nil {
		return nil, err
	}
	grid, err := infill.Generate(c.Run.Size, c.Run.Density, kind, c.Run.Slope)
	if err != nil {
		return nil, err
	}
	if c.Clip {
		mesh, err := obj.Mesh()
		if err != nil {
			return nil, errors.Wrap(err, "clip infill")
		}
		res.Clipped = shape.ClipToMesh(grid, mesh)
	}
	res.Voxels = grid.Count()

	est, err := c.Run.Estimator()
	if err != nil {
		return nil, err
	}
	res.Strength, err = est.Score(grid)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"kind":     kind,
		"voxels":   res.Voxels,
		"clipped":  res.Clipped,
		"strength": res.Strength,
	}).Info("scored infill")

	if !c.Simulate {
		return res, nil
	}
	sim, err := c.Run.Simulator(0)
	if err != nil {
		return nil, err
	}
	sim.Logger = log
	res.Build, err = sim.Simulate(grid)
	if err != nil {
		return nil, err
	}
	res.BuildStrength, err = est.Score(res.Build.Grid)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"cost":     res.Build.Cost,
		"flaws":    res.Build.Flaws,
		"repairs":  res.Build.Repairs,
		"strength": res.BuildStrength,
	}).Info("simulated build")
	return res, nil
}

// SweepDensities are the densities plotted by Sweep, from
// 5% to 50% in steps of 5%.
func SweepDensities() []float64 {
	densities := make([]float64, 10)
	for i := range densities {
		densities[i] = float64(i+1) * 0.05
	}
	return densities
}

// Sweep scores both pattern kinds across densities and
// saves the chart to path.
func Sweep(est *strength.Estimator, run config.Run, path string) error {
	kinds := []infill.Kind{infill.Rect, infill.Grid}
	points, err := report.StrengthSweep(est, run.Size, run.Slope, kinds, SweepDensities())
	if err != nil {
		return err
	}
	return report.SweepChart(points).Save(path)
}
