// Package shape restricts infill grids to the inside of a
// triangle mesh.
package shape

import (
	"sort"

	"github.com/unixpickle/model3d/model3d"
)

// ProbeRays are the ray directions cast by a Solid. None of
// them is parallel to a coordinate plane, so rays from cell
// centres never run along the faces of axis-aligned meshes.
var ProbeRays = []model3d.Coord3D{
	{X: -0.40475415, Y: 0.86174632, Z: -0.30588783},
	{X: -0.81025101, Y: 0.38452447, Z: -0.44230559},
	{X: -0.09226702, Y: -0.74875317, Z: -0.65639584},
	{X: -0.99668947, Y: 0.08087344, Z: 0.00834144},
	{X: 0.67074042, Y: -0.60098173, Z: 0.43465877},
}

// A Solid decides which cell centres lie inside a mesh.
//
// A point is inside when every probe ray leaves the mesh an
// odd number of times. Hits closer together than a tiny
// fraction of the mesh diagonal count once, so shared edges
// and doubled triangles do not flip the parity.
type Solid struct {
	Collider model3d.Collider
	Rays     []model3d.Coord3D

	epsilon float64
}

// NewSolid creates a Solid for a mesh using ProbeRays.
func NewSolid(m *model3d.Mesh) *Solid {
	collider := model3d.MeshToCollider(m)
	return &Solid{
		Collider: collider,
		Rays:     ProbeRays,
		epsilon:  collider.Max().Sub(collider.Min()).Norm() * 1e-8,
	}
}

// Contains checks if a point is inside the mesh.
func (s *Solid) Contains(c model3d.Coord3D) bool {
	lo, hi := s.Collider.Min(), s.Collider.Max()
	if c.X < lo.X || c.Y < lo.Y || c.Z < lo.Z || c.X > hi.X || c.Y > hi.Y || c.Z > hi.Z {
		return false
	}
	for _, d := range s.Rays {
		if s.exits(c, d)%2 == 0 {
			return false
		}
	}
	return true
}

// exits counts distinct surface crossings along a ray.
func (s *Solid) exits(origin, direction model3d.Coord3D) int {
	var dists []float64
	s.Collider.RayCollisions(&model3d.Ray{Origin: origin, Direction: direction},
		func(r model3d.RayCollision) {
			dists = append(dists, r.Scale)
		})
	sort.Float64s(dists)

	var count int
	for i, d := range dists {
		if i == 0 || d-dists[i-1] > s.epsilon {
			count++
		}
	}
	return count
}
