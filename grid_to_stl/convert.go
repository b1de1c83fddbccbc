package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"github.com/unixpickle/infill-lab/voxel"
)

// Convert reads a JSON grid from r and writes the surface
// of its occupied cells to outPath, scaled into the unit
// cube. It returns the number of triangles written.
func Convert(r io.Reader, threshold float64, outPath string) (int, error) {
	grid, err := voxel.ReadJSON(r, threshold)
	if err != nil {
		return 0, err
	}
	mesh := grid.Mesh(1 / float64(grid.Size))
	triangles := mesh.TriangleSlice()
	if len(triangles) == 0 {
		return 0, errors.New("convert grid: no occupied cells")
	}
	if err := os.WriteFile(outPath, model3d.EncodeSTL(triangles), 0644); err != nil {
		return 0, errors.Wrap(err, "convert grid")
	}
	return len(triangles), nil
}
