package nnet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func quadraticCost(n *Network, x, y *mat.VecDense) float64 {
	out := n.FeedForward(x)
	var c float64
	for i := 0; i < out.Len(); i++ {
		d := out.AtVec(i) - y.AtVec(i)
		c += d * d
	}
	return c / 2
}

func TestNewShapes(t *testing.T) {
	n := New(rand.New(rand.NewSource(0)), 25, 10, 2)
	require.Len(t, n.Weights, 2)
	r, c := n.Weights[0].Dims()
	assert.Equal(t, []int{10, 25}, []int{r, c})
	r, c = n.Weights[1].Dims()
	assert.Equal(t, []int{2, 10}, []int{r, c})
	assert.Equal(t, 10, n.Biases[0].Len())
	assert.Equal(t, 2, n.Biases[1].Len())

	out := n.FeedForward(mat.NewVecDense(25, nil))
	require.Equal(t, 2, out.Len())
	for i := 0; i < 2; i++ {
		assert.True(t, out.AtVec(i) > 0 && out.AtVec(i) < 1)
	}
}

func TestBackpropGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	n := New(rng, 3, 4, 2)
	x := mat.NewVecDense(3, []float64{0.2, -0.7, 1.1})
	y := mat.NewVecDense(2, []float64{0, 1})

	nablaW, nablaB := n.Backprop(x, y)
	const eps = 1e-5

	for l, w := range n.Weights {
		r, c := w.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				old := w.At(i, j)
				w.Set(i, j, old+eps)
				plus := quadraticCost(n, x, y)
				w.Set(i, j, old-eps)
				minus := quadraticCost(n, x, y)
				w.Set(i, j, old)
				assert.InDelta(t, (plus-minus)/(2*eps), nablaW[l].At(i, j), 1e-6, "w[%d](%d,%d)", l, i, j)
			}
		}
		b := n.Biases[l]
		for i := 0; i < b.Len(); i++ {
			old := b.AtVec(i)
			b.SetVec(i, old+eps)
			plus := quadraticCost(n, x, y)
			b.SetVec(i, old-eps)
			minus := quadraticCost(n, x, y)
			b.SetVec(i, old)
			assert.InDelta(t, (plus-minus)/(2*eps), nablaB[l].AtVec(i), 1e-6, "b[%d](%d)", l, i)
		}
	}
}

func TestEvaluate(t *testing.T) {
	n := New(rand.New(rand.NewSource(0)), 2, 2)
	n.Weights[0] = mat.NewDense(2, 2, []float64{5, -5, -5, 5})
	n.Biases[0] = mat.NewVecDense(2, nil)

	examples := []Example{
		{Input: mat.NewVecDense(2, []float64{1, 0}), Label: 0},
		{Input: mat.NewVecDense(2, []float64{0, 1}), Label: 1},
		{Input: mat.NewVecDense(2, []float64{0, 1}), Label: 0},
	}
	assert.Equal(t, 2, n.Evaluate(examples))
	assert.Equal(t, 0, n.Predict(mat.NewVecDense(2, []float64{0, 0})))
}

func oneHot(size, idx int) *mat.VecDense {
	v := mat.NewVecDense(size, nil)
	v.SetVec(idx, 1)
	return v
}

func TestSGDLearnsSeparablePatterns(t *testing.T) {
	train := []Example{
		{Input: mat.NewVecDense(2, []float64{1, 0}), Target: oneHot(2, 0), Label: 0},
		{Input: mat.NewVecDense(2, []float64{0, 1}), Target: oneHot(2, 1), Label: 1},
	}
	n := New(rand.New(rand.NewSource(5)), 2, 3, 2)
	before := quadraticCost(n, train[0].Input, train[0].Target) +
		quadraticCost(n, train[1].Input, train[1].Target)

	var calls int
	history := n.SGD(train, 300, 1, 3.0, train, func(e Epoch) {
		assert.Equal(t, calls, e.Index)
		calls++
	})
	require.Len(t, history, 300)
	assert.Equal(t, 300, calls)
	assert.Equal(t, 2, history[len(history)-1].Correct)
	assert.Equal(t, 1.0, history[len(history)-1].Accuracy())

	after := quadraticCost(n, train[0].Input, train[0].Target) +
		quadraticCost(n, train[1].Input, train[1].Target)
	assert.Less(t, after, before)
	assert.False(t, math.IsNaN(after))
}

func TestSGDWithoutTestData(t *testing.T) {
	train := []Example{
		{Input: mat.NewVecDense(1, []float64{1}), Target: oneHot(2, 1), Label: 1},
	}
	n := New(rand.New(rand.NewSource(1)), 1, 2)
	history := n.SGD(train, 2, 0, 1, nil, nil)
	require.Len(t, history, 2)
	assert.Equal(t, 0.0, history[0].Accuracy())
}
