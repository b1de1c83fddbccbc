// Package nnet implements a small fully connected network
// with sigmoid activations, trained by mini-batch SGD on a
// quadratic cost.
package nnet

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// An Example is an input with its one-hot target and class
// label. Test examples only need Input and Label.
type Example struct {
	Input  *mat.VecDense
	Target *mat.VecDense
	Label  int
}

// Network is a stack of fully connected sigmoid layers.
//
// Weights[l] maps layer l to layer l+1 and has shape
// Sizes[l+1] x Sizes[l].
type Network struct {
	Sizes   []int
	Weights []*mat.Dense
	Biases  []*mat.VecDense

	rng *rand.Rand
}

// New creates a network with standard normal weights and
// biases.
func New(rng *rand.Rand, sizes ...int) *Network {
	n := &Network{Sizes: append([]int{}, sizes...), rng: rng}
	for l := 1; l < len(sizes); l++ {
		w := mat.NewDense(sizes[l], sizes[l-1], nil)
		for i := 0; i < sizes[l]; i++ {
			for j := 0; j < sizes[l-1]; j++ {
				w.Set(i, j, rng.NormFloat64())
			}
		}
		b := mat.NewVecDense(sizes[l], nil)
		for i := 0; i < sizes[l]; i++ {
			b.SetVec(i, rng.NormFloat64())
		}
		n.Weights = append(n.Weights, w)
		n.Biases = append(n.Biases, b)
	}
	return n
}

// FeedForward computes the output activations for an input.
func (n *Network) FeedForward(a mat.Vector) *mat.VecDense {
	out := mat.VecDenseCopyOf(a)
	for l, w := range n.Weights {
		z := mat.NewVecDense(w.RawMatrix().Rows, nil)
		z.MulVec(w, out)
		z.AddVec(z, n.Biases[l])
		out = sigmoid(z)
	}
	return out
}

// Predict returns the index of the largest output.
func (n *Network) Predict(a mat.Vector) int {
	return argmax(n.FeedForward(a))
}

// Evaluate counts the examples whose prediction matches
// their label.
func (n *Network) Evaluate(examples []Example) int {
	var correct int
	for _, e := range examples {
		if n.Predict(e.Input) == e.Label {
			correct++
		}
	}
	return correct
}

// Backprop computes the gradient of the quadratic cost
// 0.5*|a-y|^2 for one example.
func (n *Network) Backprop(x, y mat.Vector) ([]*mat.Dense, []*mat.VecDense) {
	numLayers := len(n.Weights)
	nablaW := make([]*mat.Dense, numLayers)
	nablaB := make([]*mat.VecDense, numLayers)

	activations := []*mat.VecDense{mat.VecDenseCopyOf(x)}
	var zs []*mat.VecDense
	for l, w := range n.Weights {
		z := mat.NewVecDense(w.RawMatrix().Rows, nil)
		z.MulVec(w, activations[l])
		z.AddVec(z, n.Biases[l])
		zs = append(zs, z)
		activations = append(activations, sigmoid(z))
	}

	delta := mat.NewVecDense(activations[numLayers].Len(), nil)
	delta.SubVec(activations[numLayers], y)
	delta.MulElemVec(delta, sigmoidPrime(zs[numLayers-1]))

	for l := numLayers - 1; l >= 0; l-- {
		if l < numLayers-1 {
			w := n.Weights[l+1]
			next := mat.NewVecDense(w.RawMatrix().Cols, nil)
			next.MulVec(w.T(), delta)
			next.MulElemVec(next, sigmoidPrime(zs[l]))
			delta = next
		}
		nablaB[l] = mat.VecDenseCopyOf(delta)
		nablaW[l] = mat.NewDense(delta.Len(), activations[l].Len(), nil)
		nablaW[l].Outer(1, delta, activations[l])
	}
	return nablaW, nablaB
}

// UpdateMiniBatch applies one gradient descent step
// averaged over a batch.
func (n *Network) UpdateMiniBatch(batch []Example, eta float64) {
	if len(batch) == 0 {
		return
	}
	sumW := make([]*mat.Dense, len(n.Weights))
	sumB := make([]*mat.VecDense, len(n.Biases))
	for l, w := range n.Weights {
		r, c := w.Dims()
		sumW[l] = mat.NewDense(r, c, nil)
		sumB[l] = mat.NewVecDense(r, nil)
	}
	for _, e := range batch {
		dw, db := n.Backprop(e.Input, e.Target)
		for l := range dw {
			sumW[l].Add(sumW[l], dw[l])
			sumB[l].AddVec(sumB[l], db[l])
		}
	}
	scale := eta / float64(len(batch))
	for l, w := range n.Weights {
		sumW[l].Scale(scale, sumW[l])
		w.Sub(w, sumW[l])
		n.Biases[l].AddScaledVec(n.Biases[l], -scale, sumB[l])
	}
}

func sigmoid(z *mat.VecDense) *mat.VecDense {
	res := mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		res.SetVec(i, 1/(1+math.Exp(-z.AtVec(i))))
	}
	return res
}

func sigmoidPrime(z *mat.VecDense) *mat.VecDense {
	s := sigmoid(z)
	for i := 0; i < s.Len(); i++ {
		v := s.AtVec(i)
		s.SetVec(i, v*(1-v))
	}
	return s
}

func argmax(v mat.Vector) int {
	best := 0
	for i := 1; i < v.Len(); i++ {
		if v.AtVec(i) > v.AtVec(best) {
			best = i
		}
	}
	return best
}
