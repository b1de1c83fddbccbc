package shape

import (
	"math"

	"github.com/unixpickle/model3d/model3d"

	"github.com/unixpickle/infill-lab/voxel"
)

// A Space maps interior grid cells to points in mesh space.
type Space struct {
	Origin   model3d.Coord3D
	Size     float64
	GridSize int
}

// Bounds is anything with a bounding box, such as a mesh or
// a collider.
type Bounds interface {
	Min() model3d.Coord3D
	Max() model3d.Coord3D
}

// NewSpace fits a cube of gridSize cells around the bounds
// of b. The cube spans the largest dimension of b and is
// centered on the others.
func NewSpace(b Bounds, gridSize int) *Space {
	sizes := b.Max().Sub(b.Min())
	size := math.Max(math.Max(sizes.X, sizes.Y), sizes.Z)

	unit := model3d.Coord3D{X: 1, Y: 1, Z: 1}
	origin := sizes.Sub(unit.Scale(size)).Scale(0.5).Add(b.Min())

	return &Space{
		Origin:   origin,
		Size:     size,
		GridSize: gridSize,
	}
}

// CellSize is the edge length of one cell in mesh units.
func (s *Space) CellSize() float64 {
	return s.Size / float64(s.GridSize)
}

// Coord gets the center of an interior cell.
func (s *Space) Coord(c voxel.Coord) model3d.Coord3D {
	unit := model3d.Coord3D{X: 1, Y: 1, Z: 1}
	idx := model3d.Coord3D{X: float64(c[1] - 1), Y: float64(c[2] - 1), Z: float64(c[0] - 1)}
	return s.Origin.Add(idx.Add(unit.Scale(0.5)).Scale(s.CellSize()))
}

// A Container reports whether a point is inside a shape.
type Container interface {
	Contains(c model3d.Coord3D) bool
}

// Clip empties every interior cell of g whose center lies
// outside the shape, and returns how many occupied cells
// were removed.
func Clip(g *voxel.Grid, shape Container, space *Space) int {
	var removed int
	g.Interior(func(c voxel.Coord) {
		if !g.Occupied(c) {
			return
		}
		if !shape.Contains(space.Coord(c)) {
			g.Set(c, 0)
			removed++
		}
	})
	return removed
}

// ClipToMesh clips g to a mesh, fitting the grid around the
// mesh bounds. It returns the number of removed cells.
func ClipToMesh(g *voxel.Grid, m *model3d.Mesh) int {
	return Clip(g, NewSolid(m), NewSpace(m, g.Size))
}
