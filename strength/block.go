package strength

import "github.com/unixpickle/infill-lab/voxel"

// Weights maps the number of coordinate planes a neighbour
// shares with a cell to its contribution: corner contact
// is 1, edge contact 4 and face contact 16.
var Weights = [3]float64{1, 4, 16}

// FullBlockStrength is the strength of a fully occupied
// 5x5x5 block.
//
// Face pairs: 3 axes × 4×5×5 pairs × 2 directions × 16.
// Edge pairs: 3 planes × 4 signs × 4×4×5 cells × 4.
// Corner pairs: 8 signs × 4×4×4 cells × 1.
const FullBlockStrength = 3*100*2*16 + 3*4*80*4 + 8*64*1

// A Block is a cube of cells cut out of a grid. Reads
// outside the block are empty.
type Block struct {
	Size  int
	Cells []uint8
}

// NewBlock creates an empty block.
func NewBlock(size int) *Block {
	return &Block{Size: size, Cells: make([]uint8, size*size*size)}
}

// SliceBlock copies the block of the given size whose
// lowest corner is origin.
func SliceBlock(g *voxel.Grid, origin voxel.Coord, size int) *Block {
	b := NewBlock(size)
	b.Load(g, origin)
	return b
}

// Load overwrites the block with the cells of g starting
// at origin. Cells past the edge of g are read as empty.
func (b *Block) Load(g *voxel.Grid, origin voxel.Coord) {
	var i int
	for z := 0; z < b.Size; z++ {
		for x := 0; x < b.Size; x++ {
			for y := 0; y < b.Size; y++ {
				b.Cells[i] = g.Get(voxel.Coord{origin[0] + z, origin[1] + x, origin[2] + y})
				i++
			}
		}
	}
}

func (b *Block) inBounds(c voxel.Coord) bool {
	for _, v := range c {
		if v < 0 || v >= b.Size {
			return false
		}
	}
	return true
}

// Get gets a cell, or 0 if c is outside the block.
func (b *Block) Get(c voxel.Coord) uint8 {
	if !b.inBounds(c) {
		return 0
	}
	return b.Cells[(c[0]*b.Size+c[1])*b.Size+c[2]]
}

// Set sets a cell. Writes outside the block are dropped.
func (b *Block) Set(c voxel.Coord, v uint8) {
	if !b.inBounds(c) {
		return
	}
	b.Cells[(c[0]*b.Size+c[1])*b.Size+c[2]] = v
}

// Strength sums, over every occupied cell, the weights of
// its occupied neighbours inside the block.
func (b *Block) Strength() float64 {
	var total float64
	for z := 0; z < b.Size; z++ {
		for x := 0; x < b.Size; x++ {
			for y := 0; y < b.Size; y++ {
				if b.Get(voxel.Coord{z, x, y}) == 0 {
					continue
				}
				for _, o := range voxel.Neighborhood {
					n := voxel.Coord{z + o.D[0], x + o.D[1], y + o.D[2]}
					if b.Get(n) != 0 {
						total += Weights[o.Shared]
					}
				}
			}
		}
	}
	return total
}
