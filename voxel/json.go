package voxel

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ReadJSON reads the interior of a grid from a JSON array
// laid out as [z][x][y].
//
// Values at or above threshold become occupied cells.
func ReadJSON(r io.Reader, threshold float64) (*Grid, error) {
	var object [][][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&object); err != nil {
		return nil, errors.Wrap(err, "read voxel grid")
	}
	return FromNested(object, threshold)
}

// FromNested creates a grid whose interior is a [z][x][y]
// cube of values.
func FromNested(object [][][]float64, threshold float64) (*Grid, error) {
	size := len(object)
	if size == 0 {
		return nil, ErrInvalidSize
	}
	g := New(size)
	for z, xPlane := range object {
		if len(xPlane) != size {
			return nil, errors.Wrap(ErrDimensions, "read voxel grid")
		}
		for x, yLine := range xPlane {
			if len(yLine) != size {
				return nil, errors.Wrap(ErrDimensions, "read voxel grid")
			}
			for y, v := range yLine {
				if v >= threshold {
					g.Set(Coord{z + 1, x + 1, y + 1}, 1)
				}
			}
		}
	}
	return g, nil
}

// Nested returns the interior as a [z][x][y] cube.
func (g *Grid) Nested() [][][]uint8 {
	res := make([][][]uint8, g.Size)
	for z := range res {
		res[z] = make([][]uint8, g.Size)
		for x := range res[z] {
			line := make([]uint8, g.Size)
			for y := range line {
				line[y] = g.Get(Coord{z + 1, x + 1, y + 1})
			}
			res[z][x] = line
		}
	}
	return res
}

// WriteJSON writes the interior as a [z][x][y] JSON array.
func (g *Grid) WriteJSON(w io.Writer) error {
	// []uint8 would be encoded as base64.
	nested := g.Nested()
	ints := make([][][]int, len(nested))
	for z, plane := range nested {
		ints[z] = make([][]int, len(plane))
		for x, line := range plane {
			ints[z][x] = make([]int, len(line))
			for y, v := range line {
				ints[z][x][y] = int(v)
			}
		}
	}
	if err := json.NewEncoder(w).Encode(ints); err != nil {
		return errors.Wrap(err, "write voxel grid")
	}
	return nil
}
