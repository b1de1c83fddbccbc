package voxel

import "github.com/unixpickle/model3d/model3d"

// faceAxes maps a spatial axis (0=X, 1=Y, 2=Z) to the two
// axes spanning a face with that normal, ordered so that
// their cross product points along the axis.
var faceAxes = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

// spatial converts a cell coordinate to (X, Y, Z) space,
// with X=x, Y=y and Z=z.
func spatial(c Coord) [3]int {
	return [3]int{c[1], c[2], c[0]}
}

func cellCoord(s [3]int) Coord {
	return Coord{s[2], s[0], s[1]}
}

// Mesh creates a closed triangle mesh of the occupied
// cells, with one square per exposed cell face.
//
// Each cell (z, x, y) becomes the unit cube at
// [x, x+1] × [y, y+1] × [z, z+1] scaled by cellSize.
func (g *Grid) Mesh(cellSize float64) *model3d.Mesh {
	var triangles []*model3d.Triangle
	side := g.Side()
	for i, v := range g.Data {
		if v == 0 {
			continue
		}
		c := Coord{i / (side * side), (i / side) % side, i % side}
		s := spatial(c)
		for axis := 0; axis < 3; axis++ {
			for _, sign := range []int{-1, 1} {
				n := s
				n[axis] += sign
				if g.Occupied(cellCoord(n)) {
					continue
				}
				triangles = append(triangles, cellFace(s, axis, sign, cellSize)...)
			}
		}
	}
	return model3d.NewMeshTriangles(triangles)
}

func cellFace(s [3]int, axis, sign int, cellSize float64) []*model3d.Triangle {
	base := [3]float64{float64(s[0]), float64(s[1]), float64(s[2])}
	if sign > 0 {
		base[axis]++
	}
	u, v := faceAxes[axis][0], faceAxes[axis][1]
	corner := func(du, dv float64) model3d.Coord3D {
		p := base
		p[u] += du
		p[v] += dv
		return model3d.Coord3D{X: p[0] * cellSize, Y: p[1] * cellSize, Z: p[2] * cellSize}
	}
	p0, p1, p2, p3 := corner(0, 0), corner(1, 0), corner(1, 1), corner(0, 1)
	if sign < 0 {
		p1, p3 = p3, p1
	}
	return []*model3d.Triangle{
		{p0, p1, p2},
		{p0, p2, p3},
	}
}
