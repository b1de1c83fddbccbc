package objmesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaceGroupsCube(t *testing.T) {
	obj := loadCube(t, Options{})
	groups := FaceGroups(2, obj.Vertices)
	assert.Equal(t, [][][]float64{
		{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}},
		{{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}},
	}, groups)
}

func TestFaceGroupsDuplicates(t *testing.T) {
	verts := [][]float64{{0, 0, 5}, {1, 2, 3}, {0, 0, 5}, {2, 2, 4}}
	groups := FaceGroups(1, verts)
	assert.Equal(t, [][][]float64{
		{{0, 0, 5}, {0, 0, 5}},
		{{1, 2, 3}, {2, 2, 4}},
	}, groups)
}

func TestInfillRegions(t *testing.T) {
	obj := loadCube(t, Options{})
	regions := InfillRegions(obj.Vertices)
	assert.Equal(t, [][][]float64{
		{{0, 0, 0}, {1, 0, 0}},
		{{0, 1, 0}, {1, 1, 0}},
		{{0, 0, 1}, {1, 0, 1}},
		{{0, 1, 1}, {1, 1, 1}},
	}, regions)
}
