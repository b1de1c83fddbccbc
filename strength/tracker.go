package strength

import "github.com/unixpickle/infill-lab/voxel"

// A Tracker keeps the score of a grid current while single
// cells change. Only the first-pass blocks holding changed
// cells are rescored.
//
// Score returns exactly what Estimator.Score would return
// for the tracked grid.
type Tracker struct {
	est   *Estimator
	grid  *voxel.Grid
	side  int
	level []float64
	dirty map[int]bool
	block *Block
}

// Track starts tracking g. The tracker takes ownership of
// g; callers should pass a copy they no longer modify.
func (e *Estimator) Track(g *voxel.Grid) (*Tracker, error) {
	if err := e.Validate(g.Size); err != nil {
		return nil, err
	}
	side := g.Size / e.BlockSize
	return &Tracker{
		est:   e,
		grid:  g,
		side:  side,
		level: e.firstPass(g, side),
		dirty: map[int]bool{},
		block: NewBlock(e.BlockSize),
	}, nil
}

// Get reads a cell of the tracked grid.
func (t *Tracker) Get(c voxel.Coord) uint8 {
	return t.grid.Get(c)
}

// Set changes an interior cell. Writes to padding or
// outside the grid are ignored.
func (t *Tracker) Set(c voxel.Coord, v uint8) {
	size := t.grid.Size
	for _, x := range c {
		if x < 1 || x > size {
			return
		}
	}
	if t.grid.Get(c) == v {
		return
	}
	t.grid.Set(c, v)
	bs := t.est.BlockSize
	idx := (((c[0]-1)/bs)*t.side+(c[1]-1)/bs)*t.side + (c[2]-1)/bs
	t.dirty[idx] = true
}

// Score rescores changed blocks and combines all blocks
// into the grid score.
func (t *Tracker) Score() float64 {
	bs := t.est.BlockSize
	for idx := range t.dirty {
		by := idx % t.side
		bx := (idx / t.side) % t.side
		bz := idx / (t.side * t.side)
		t.block.Load(t.grid, voxel.Coord{1 + bz*bs, 1 + bx*bs, 1 + by*bs})
		t.level[idx] = t.block.Strength()
		delete(t.dirty, idx)
	}
	return t.est.combine(t.level, t.side)
}
