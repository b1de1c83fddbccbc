// Package voxel implements padded binary occupancy grids.
//
// A Grid of size n stores (n+2)^3 cells. Indices 0 and n+1
// along every axis are padding and are never part of the
// object; the object itself lives in indices 1 through n.
// Cells are addressed as (z, x, y), with z the outermost
// (build layer) axis and y the innermost.
package voxel

// A Coord addresses a cell as (z, x, y).
type Coord [3]int

// An Offset is a step to one of the 26 neighbours of a
// cell, together with how many coordinate planes the
// neighbour shares with the cell.
type Offset struct {
	D      Coord
	Shared int
}

// Neighborhood lists the 26 neighbour offsets in z, x, y
// order.
var Neighborhood []Offset

func init() {
	for z := -1; z <= 1; z++ {
		for x := -1; x <= 1; x++ {
			for y := -1; y <= 1; y++ {
				if z == 0 && x == 0 && y == 0 {
					continue
				}
				var shared int
				for _, d := range []int{z, x, y} {
					if d == 0 {
						shared++
					}
				}
				Neighborhood = append(Neighborhood, Offset{D: Coord{z, x, y}, Shared: shared})
			}
		}
	}
}

// Grid is a padded cube of 0/1 cells.
type Grid struct {
	Size int
	Data []uint8
}

// New creates an empty grid with the given interior size.
func New(size int) *Grid {
	g := size + 2
	return &Grid{
		Size: size,
		Data: make([]uint8, g*g*g),
	}
}

// Side is the padded side length, Size+2.
func (g *Grid) Side() int {
	return g.Size + 2
}

// InBounds checks if a coordinate is inside the padded
// grid.
func (g *Grid) InBounds(c Coord) bool {
	for _, x := range c {
		if x < 0 || x > g.Size+1 {
			return false
		}
	}
	return true
}

func (g *Grid) index(c Coord) int {
	side := g.Side()
	return (c[0]*side+c[1])*side + c[2]
}

// Get gets the cell at c.
// If c is out of bounds, 0 is returned.
func (g *Grid) Get(c Coord) uint8 {
	if !g.InBounds(c) {
		return 0
	}
	return g.Data[g.index(c)]
}

// Set sets the cell at c.
// Out of bounds writes are dropped.
func (g *Grid) Set(c Coord, v uint8) {
	if !g.InBounds(c) {
		return
	}
	g.Data[g.index(c)] = v
}

// Occupied checks if the cell at c is non-zero.
func (g *Grid) Occupied(c Coord) bool {
	return g.Get(c) != 0
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Size: g.Size,
		Data: append([]uint8{}, g.Data...),
	}
}

// Equal checks if two grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Size != other.Size || len(g.Data) != len(other.Data) {
		return false
	}
	for i, v := range g.Data {
		if other.Data[i] != v {
			return false
		}
	}
	return true
}

// Neighbors calls f for every in-bounds neighbour of a
// coordinate.
func (g *Grid) Neighbors(c Coord, f func(Coord, Offset)) {
	for _, o := range Neighborhood {
		n := Coord{c[0] + o.D[0], c[1] + o.D[1], c[2] + o.D[2]}
		if g.InBounds(n) {
			f(n, o)
		}
	}
}

// Interior calls f for every interior coordinate in
// traversal order (z, then x, then y).
func (g *Grid) Interior(f func(Coord)) {
	for z := 1; z <= g.Size; z++ {
		for x := 1; x <= g.Size; x++ {
			for y := 1; y <= g.Size; y++ {
				f(Coord{z, x, y})
			}
		}
	}
}

// Rank gets the position of an interior coordinate in
// traversal order, starting at 0.
func (g *Grid) Rank(c Coord) int {
	return ((c[0]-1)*g.Size+(c[1]-1))*g.Size + (c[2] - 1)
}

// Unrank is the inverse of Rank.
func (g *Grid) Unrank(rank int) Coord {
	y := rank % g.Size
	rank /= g.Size
	x := rank % g.Size
	z := rank / g.Size
	return Coord{z + 1, x + 1, y + 1}
}

// OnShell checks if an interior coordinate touches the
// outer layer of the object.
func (g *Grid) OnShell(c Coord) bool {
	for _, v := range c {
		if v == 1 || v == g.Size {
			return true
		}
	}
	return false
}

// Count counts the occupied cells.
func (g *Grid) Count() int {
	var n int
	for _, v := range g.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Unbordered returns the interior cells in traversal
// order.
func (g *Grid) Unbordered() []byte {
	res := make([]byte, 0, g.Size*g.Size*g.Size)
	g.Interior(func(c Coord) {
		if g.Occupied(c) {
			res = append(res, 1)
		} else {
			res = append(res, 0)
		}
	})
	return res
}
