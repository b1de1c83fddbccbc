package voxel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborhood(t *testing.T) {
	require.Len(t, Neighborhood, 26)
	counts := map[int]int{}
	for _, o := range Neighborhood {
		counts[o.Shared]++
	}
	assert.Equal(t, map[int]int{0: 8, 1: 12, 2: 6}, counts)
}

func TestGridOutOfRange(t *testing.T) {
	g := New(3)
	assert.Equal(t, 5, g.Side())
	assert.Len(t, g.Data, 125)

	for _, c := range []Coord{{-1, 0, 0}, {0, 5, 0}, {0, 0, 100}, {-7, -7, -7}} {
		assert.NotPanics(t, func() {
			g.Set(c, 1)
		})
		assert.Equal(t, uint8(0), g.Get(c))
	}
	assert.Equal(t, 0, g.Count())

	g.Set(Coord{4, 4, 4}, 1)
	assert.True(t, g.Occupied(Coord{4, 4, 4}))
	assert.Equal(t, 1, g.Count())
}

func TestGridNeighborsCorner(t *testing.T) {
	g := New(3)
	var n int
	g.Neighbors(Coord{0, 0, 0}, func(c Coord, o Offset) {
		assert.True(t, g.InBounds(c))
		n++
	})
	assert.Equal(t, 7, n)

	n = 0
	g.Neighbors(Coord{2, 2, 2}, func(Coord, Offset) { n++ })
	assert.Equal(t, 26, n)
}

func TestGridRank(t *testing.T) {
	g := New(4)
	var expected int
	g.Interior(func(c Coord) {
		assert.Equal(t, expected, g.Rank(c))
		assert.Equal(t, c, g.Unrank(expected))
		expected++
	})
	assert.Equal(t, 64, expected)
	assert.Equal(t, Coord{1, 1, 2}, g.Unrank(1))
	assert.Equal(t, Coord{1, 2, 1}, g.Unrank(4))
	assert.Equal(t, Coord{2, 1, 1}, g.Unrank(16))
}

func TestGridOnShell(t *testing.T) {
	g := New(4)
	assert.True(t, g.OnShell(Coord{1, 2, 3}))
	assert.True(t, g.OnShell(Coord{2, 2, 4}))
	assert.False(t, g.OnShell(Coord{2, 3, 2}))
}

func TestGridCloneEqual(t *testing.T) {
	g := New(2)
	g.Set(Coord{1, 2, 1}, 1)
	c := g.Clone()
	assert.True(t, g.Equal(c))
	c.Set(Coord{1, 1, 1}, 1)
	assert.False(t, g.Equal(c))
	assert.False(t, g.Occupied(Coord{1, 1, 1}))
	assert.False(t, g.Equal(New(3)))
}

func TestGridUnbordered(t *testing.T) {
	g := New(2)
	g.Set(Coord{1, 1, 2}, 1)
	g.Set(Coord{2, 2, 2}, 1)
	g.Set(Coord{0, 0, 0}, 1)
	assert.Equal(t, []byte{0, 1, 0, 0, 0, 0, 0, 1}, g.Unbordered())
}

func TestGridJSON(t *testing.T) {
	g := New(3)
	g.Set(Coord{1, 2, 3}, 1)
	g.Set(Coord{3, 1, 1}, 1)

	var buf bytes.Buffer
	require.NoError(t, g.WriteJSON(&buf))
	assert.Contains(t, buf.String(), "[[[0,0,0],[0,0,1],[0,0,0]]")

	read, err := ReadJSON(&buf, 0.5)
	require.NoError(t, err)
	assert.True(t, g.Equal(read))
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(bytes.NewReader([]byte("[[[1,0],[0]],[[0,0],[0,0]]]")), 0.5)
	assert.ErrorIs(t, err, ErrDimensions)

	_, err = ReadJSON(bytes.NewReader([]byte("[]")), 0.5)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = ReadJSON(bytes.NewReader([]byte("{")), 0.5)
	assert.Error(t, err)
}

func TestGridMesh(t *testing.T) {
	g := New(2)
	g.Set(Coord{1, 1, 1}, 1)
	assert.Len(t, g.Mesh(1).TriangleSlice(), 12)

	g.Set(Coord{1, 1, 2}, 1)
	assert.Len(t, g.Mesh(1).TriangleSlice(), 20)

	min, max := g.Mesh(0.5).Min(), g.Mesh(0.5).Max()
	assert.InDelta(t, 0.5, min.X, 1e-9)
	assert.InDelta(t, 1.5, max.Y, 1e-9)
	assert.InDelta(t, 1.0, max.Z, 1e-9)
}
