// Package strength scores voxel grids with a synthetic
// adjacency-based strength heuristic.
//
// The interior of a grid is split into cubic blocks. On the
// first pass every block is replaced by its neighbour
// strength; later passes aggregate blocks of the previous
// pass. The remaining values are summed into the score.
package strength

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/unixpickle/infill-lab/voxel"
)

// Aggregate selects how blocks are combined after the
// first pass.
type Aggregate int

const (
	Sum Aggregate = iota
	Mean
)

func (a Aggregate) String() string {
	if a == Mean {
		return "mean"
	}
	return "sum"
}

// An Estimator computes strength scores.
type Estimator struct {
	BlockSize int
	Passes    int
	Aggregate Aggregate

	// Workers bounds how many first-pass blocks are scored
	// concurrently. Values below 2 score sequentially.
	Workers int
}

// Default returns the canonical estimator: 5x5x5 blocks,
// two passes, summed.
func Default() *Estimator {
	return &Estimator{
		BlockSize: 5,
		Passes:    2,
		Aggregate: Sum,
		Workers:   1,
	}
}

// Validate checks that a grid of the given interior size
// can be scored.
func (e *Estimator) Validate(size int) error {
	if e.BlockSize < 1 || e.Passes < 1 {
		return ErrInvalidEstimator
	}
	side := size
	for i := 0; i < e.Passes; i++ {
		if side < e.BlockSize || side%e.BlockSize != 0 {
			return errors.Wrapf(ErrInvalidGridSize, "size %d, pass %d side %d, block %d",
				size, i+1, side, e.BlockSize)
		}
		side /= e.BlockSize
	}
	return nil
}

// Score computes the strength of the interior of g.
func (e *Estimator) Score(g *voxel.Grid) (float64, error) {
	if err := e.Validate(g.Size); err != nil {
		return 0, err
	}
	side := g.Size / e.BlockSize
	return e.combine(e.firstPass(g, side), side), nil
}

// MustScore is like Score, but panics on invalid sizes.
func (e *Estimator) MustScore(g *voxel.Grid) float64 {
	s, err := e.Score(g)
	if err != nil {
		panic(err)
	}
	return s
}

func (e *Estimator) firstPass(g *voxel.Grid, side int) []float64 {
	level := make([]float64, side*side*side)
	scoreSlab := func(bz int) {
		block := NewBlock(e.BlockSize)
		for bx := 0; bx < side; bx++ {
			for by := 0; by < side; by++ {
				block.Load(g, voxel.Coord{
					1 + bz*e.BlockSize,
					1 + bx*e.BlockSize,
					1 + by*e.BlockSize,
				})
				level[(bz*side+bx)*side+by] = block.Strength()
			}
		}
	}

	if e.Workers < 2 {
		for bz := 0; bz < side; bz++ {
			scoreSlab(bz)
		}
		return level
	}

	var group errgroup.Group
	group.SetLimit(e.Workers)
	for bz := 0; bz < side; bz++ {
		bz := bz
		group.Go(func() error {
			scoreSlab(bz)
			return nil
		})
	}
	group.Wait()
	return level
}

// combine runs the later passes over first-pass block
// scores and sums the result. level is not modified.
func (e *Estimator) combine(level []float64, side int) float64 {
	for i := 1; i < e.Passes; i++ {
		level, side = e.aggregate(level, side)
	}
	var total float64
	for _, v := range level {
		total += v
	}
	return total
}

func (e *Estimator) aggregate(level []float64, side int) ([]float64, int) {
	bs := e.BlockSize
	newSide := side / bs
	res := make([]float64, newSide*newSide*newSide)
	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			for y := 0; y < side; y++ {
				res[((z/bs)*newSide+x/bs)*newSide+y/bs] += level[(z*side+x)*side+y]
			}
		}
	}
	if e.Aggregate == Mean {
		n := float64(bs * bs * bs)
		for i := range res {
			res[i] /= n
		}
	}
	return res, newSide
}
