package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/unixpickle/model3d/model3d"

	"github.com/unixpickle/infill-lab/config"
	"github.com/unixpickle/infill-lab/infill"
	"github.com/unixpickle/infill-lab/objmesh"
	"github.com/unixpickle/infill-lab/shape"
)

// A Converter turns meshes into infill grid files.
type Converter struct {
	Run           config.Run
	NumVariations int
	Rotate        bool
	Logger        logrus.FieldLogger
}

// ConvertModel writes NumVariations grids for one mesh,
// named after outPath with the variation index appended.
func (c *Converter) ConvertModel(inPath, outPath string) error {
	log := c.Logger.WithFields(logrus.Fields{
		"run":   uuid.New().String(),
		"model": inPath,
	})
	log.Info("converting")

	obj, err := objmesh.Load(inPath, objmesh.Options{})
	if err != nil {
		return err
	}
	mesh, err := obj.Mesh()
	if err != nil {
		return errors.Wrap(err, inPath)
	}
	kind, err := c.Run.InfillKind()
	if err != nil {
		return err
	}
	pattern, err := infill.Generate(c.Run.Size, c.Run.Density, kind, c.Run.Slope)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(c.Run.Seed))
	outBase := outPath[:len(outPath)-len(filepath.Ext(outPath))]
	for i := 0; i < c.NumVariations; i++ {
		outPath := fmt.Sprintf("%s-%d.npz", outBase, i)
		saveMesh := mesh
		if i != 0 && c.Rotate {
			saveMesh = TransformMesh(rng, saveMesh)
		}

		grid := pattern.Clone()
		removed := shape.ClipToMesh(grid, saveMesh)
		fields := logrus.Fields{"variation": i, "clipped": removed}

		if i != 0 {
			sim, err := c.Run.Simulator(int64(i))
			if err != nil {
				return err
			}
			sim.Logger = log
			res, err := sim.Simulate(grid)
			if err != nil {
				return errors.Wrapf(err, "variation %d", i)
			}
			grid = res.Grid
			fields["cost"] = res.Cost
			fields["flaws"] = res.Flaws
			fields["repairs"] = res.Repairs
		}

		if err := SaveNumpy(outPath, grid); err != nil {
			return err
		}
		log.WithFields(fields).Info("saved ", outPath)
	}

	return nil
}

// TransformMesh applies a random rotation to a mesh.
func TransformMesh(rng *rand.Rand, mesh *model3d.Mesh) *model3d.Mesh {
	v1 := randUnit(rng)
	v2 := randUnit(rng).ProjectOut(v1).Normalize()
	v3 := randUnit(rng).ProjectOut(v1).ProjectOut(v2).Normalize()
	transform := &model3d.Matrix3Transform{
		Matrix: model3d.NewMatrix3Columns(v1, v2, v3),
	}

	// Only use rotations, not mirrors.
	if transform.Matrix.Det() < 0 {
		for i := 0; i < 3; i++ {
			transform.Matrix[i] *= -1
		}
	}

	return mesh.MapCoords(transform.Apply)
}

func randUnit(rng *rand.Rand) model3d.Coord3D {
	return model3d.Coord3D{
		X: rng.NormFloat64(),
		Y: rng.NormFloat64(),
		Z: rng.NormFloat64(),
	}.Normalize()
}
