package objmesh

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Mesh creates a triangle mesh from the polygons, fanning
// faces with more than three vertices.
//
// Only vertex positions are used. Per-vertex colors after
// the first three components are ignored.
func (o *Object) Mesh() (*model3d.Mesh, error) {
	var triangles []*model3d.Triangle
	for i, poly := range o.Polygons {
		coords := make([]model3d.Coord3D, len(poly))
		for j, fv := range poly {
			if fv.V < 0 || fv.V >= len(o.Vertices) {
				return nil, errors.Errorf("mesh: polygon %d references vertex %d of %d",
					i, fv.V+1, len(o.Vertices))
			}
			coords[j] = vertexCoord(o.Vertices[fv.V])
		}
		for j := 2; j < len(coords); j++ {
			triangles = append(triangles, &model3d.Triangle{coords[0], coords[j-1], coords[j]})
		}
	}
	return model3d.NewMeshTriangles(triangles), nil
}

func vertexCoord(v []float64) model3d.Coord3D {
	var c [3]float64
	copy(c[:], v)
	return model3d.Coord3D{X: c[0], Y: c[1], Z: c[2]}
}
