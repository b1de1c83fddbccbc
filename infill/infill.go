// Package infill generates voxel infill patterns with a
// solid outer shell.
package infill

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/infill-lab/voxel"
)

// Kind selects an infill pattern.
type Kind int

const (
	// Rect fills full planes at periodic x and y offsets.
	Rect Kind = iota
	// Grid fills diagonal lines at periodic offsets.
	Grid
)

// ParseKind parses "rect" or "grid".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "rect":
		return Rect, nil
	case "grid":
		return Grid, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "parse %q", s)
}

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Grid:
		return "grid"
	}
	return "unknown"
}

// Stripes computes the stripe count and spacing for a
// size and density.
func Stripes(size int, density float64) (total, gap int, err error) {
	if size < 1 {
		return 0, 0, ErrInvalidGridSize
	}
	total = int(math.Floor(float64(size) * density))
	if total <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidGridSize, "size %d, density %v", size, density)
	}
	return total, size / total, nil
}

// Rows computes the periodic offsets used by a pattern.
func Rows(size int, density float64, kind Kind) ([]int, error) {
	total, gap, err := Stripes(size, density)
	if err != nil {
		return nil, err
	}
	var rows []int
	switch kind {
	case Rect:
		for i := 1; i < total; i++ {
			rows = append(rows, i*gap+1)
		}
	case Grid:
		for i := -total; i <= 2*total; i++ {
			rows = append(rows, i*gap+1)
		}
	default:
		return nil, ErrUnknownKind
	}
	return rows, nil
}

// Generate creates an infill grid of the given interior
// size.
//
// The slope is only used by the Grid pattern.
func Generate(size int, density float64, kind Kind, slope float64) (*voxel.Grid, error) {
	if kind == Grid && slope == 0 {
		return nil, ErrInvalidSlope
	}
	rows, err := Rows(size, density, kind)
	if err != nil {
		return nil, err
	}
	g := voxel.New(size)
	switch kind {
	case Rect:
		fillRect(g, rows)
	case Grid:
		fillGrid(g, rows, slope)
	}
	return g, nil
}

func fillRect(g *voxel.Grid, rows []int) {
	isRow := map[int]bool{}
	for _, r := range rows {
		isRow[r] = true
	}
	g.Interior(func(c voxel.Coord) {
		if g.OnShell(c) || isRow[c[1]] || isRow[c[2]] {
			g.Set(c, 1)
		}
	})
}

func fillGrid(g *voxel.Grid, rows []int, slope float64) {
	g.Interior(func(c voxel.Coord) {
		if g.OnShell(c) {
			g.Set(c, 1)
			return
		}
		x, y := c[1], c[2]
		if y == g.Size {
			return
		}
		rising := int(float64(x-1) * slope)
		falling := int((-1 / slope) * float64(x-1))
		for _, r := range rows {
			if rising+r == y || falling+r == y {
				g.Set(c, 1)
				return
			}
		}
	})
}
