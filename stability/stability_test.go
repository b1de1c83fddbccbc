package stability

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupport(t *testing.T) {
	assert.Equal(t, 0, Support(1))
	assert.Equal(t, 1, Support(2))
	assert.Equal(t, 3, Support(3))
	// c2 < 4: pairs at distance 1 are (1,0) (0,1) (2,1) (1,2) (3,2) (2,3) (4,3);
	// distance 4 is (4,0).
	assert.Equal(t, 8, Support(5))
}

func TestValueSupport(t *testing.T) {
	assert.Equal(t, 0, ValueSupport([]int{3}))
	assert.Equal(t, 1, ValueSupport([]int{3, 4}))
	assert.Equal(t, 0, ValueSupport([]int{3, 5}))
	assert.Equal(t, 1, ValueSupport([]int{0, 6}))
	assert.Equal(t, 0, ValueSupport([]int{0, 7}))
}

func TestGenerate(t *testing.T) {
	samples := Generate(rand.New(rand.NewSource(1)), Config{PerLength: 3})
	require.Len(t, samples, 3*MaxPoints)

	for i, s := range samples {
		n := i/3 + 1
		require.Equal(t, Width, s.Input.Len())
		require.NotNil(t, s.Target)
		assert.Equal(t, 1.0, s.Target.AtVec(s.Label))
		assert.Equal(t, 0.0, s.Target.AtVec(1-s.Label))
		assert.Equal(t, 0.0, s.Input.AtVec(Width-1))

		var set int
		for j := 0; j < Width; j++ {
			v := s.Input.AtVec(j)
			require.True(t, v == 0 || v == 1)
			set += int(v)
		}
		assert.LessOrEqual(t, set, n)
		assert.GreaterOrEqual(t, set, 0)

		expected := 0
		if Support(n) >= n-1 {
			expected = 1
		}
		assert.Equal(t, expected, s.Label, "sample %d", i)
	}
}

func TestGenerateTest(t *testing.T) {
	samples := Generate(rand.New(rand.NewSource(2)), Config{PerLength: 2, Test: true})
	require.Len(t, samples, 2*MaxPoints)
	for _, s := range samples {
		assert.Nil(t, s.Target)
	}
	stable, total := Stats(samples)
	assert.Equal(t, 2*MaxPoints, total)
	assert.LessOrEqual(t, stable, total)
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(9)), Config{PerLength: 5, CompareValues: true})
	b := Generate(rand.New(rand.NewSource(9)), Config{PerLength: 5, CompareValues: true})
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Label, b[i].Label)
		assert.Equal(t, a[i].Input.RawVector().Data, b[i].Input.RawVector().Data)
	}
}

func TestExamples(t *testing.T) {
	samples := Generate(rand.New(rand.NewSource(4)), Config{PerLength: 1})
	examples := Examples(samples)
	require.Len(t, examples, len(samples))
	for i, e := range examples {
		assert.Same(t, samples[i].Input, e.Input)
		assert.Same(t, samples[i].Target, e.Target)
		assert.Equal(t, samples[i].Label, e.Label)
	}
}
