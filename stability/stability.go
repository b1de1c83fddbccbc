// Package stability generates the synthetic 1-D stability
// dataset.
//
// A sample is a set of positions on a 25 cell line, drawn
// with replacement. Whether a sample is stable depends on
// how many pairs of positions sit at a supporting distance
// (1, or 4 through 6).
package stability

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/unixpickle/infill-lab/nnet"
)

const (
	// Width is the length of an input vector.
	Width = 25

	// MaxPoints is the largest number of positions in a
	// sample.
	MaxPoints = 24
)

// Sample is one input vector with its label.
type Sample struct {
	Input *mat.VecDense

	// Target is a one-hot vector for training samples, nil
	// for test samples.
	Target *mat.VecDense

	// Label is 1 for stable samples and 0 otherwise.
	Label int
}

// Config controls generation.
type Config struct {
	// PerLength is the number of samples for every position
	// count from 1 to MaxPoints.
	PerLength int

	// Test omits the one-hot targets.
	Test bool

	// CompareValues counts supporting pairs by the distance
	// between drawn positions rather than by the distance
	// between their draw order.
	CompareValues bool
}

// Generate creates MaxPoints*PerLength samples.
func Generate(rng *rand.Rand, cfg Config) []*Sample {
	res := make([]*Sample, 0, MaxPoints*cfg.PerLength)
	for i := 1; i <= MaxPoints; i++ {
		for n := 0; n < cfg.PerLength; n++ {
			coords := make([]int, i)
			for j := range coords {
				coords[j] = rng.Intn(Width)
			}
			res = append(res, newSample(coords, cfg))
		}
	}
	return res
}

func newSample(coords []int, cfg Config) *Sample {
	var stable int
	if cfg.CompareValues {
		stable = ValueSupport(coords)
	} else {
		stable = Support(len(coords))
	}

	// The last cell is never set.
	input := mat.NewVecDense(Width, nil)
	for _, c := range coords {
		if c < Width-1 {
			input.SetVec(c, 1)
		}
	}

	s := &Sample{Input: input}
	if stable >= len(coords)-1 {
		s.Label = 1
	}
	if !cfg.Test {
		s.Target = mat.NewVecDense(2, nil)
		s.Target.SetVec(s.Label, 1)
	}
	return s
}

func supporting(diff int) bool {
	return diff == 1 || (diff >= 4 && diff <= 6)
}

// Support counts supporting pairs for a sample of n
// positions by draw order: c1 ranges over all n draws, c2
// over the first n-1, and the pair distance is |c1-c2|.
func Support(n int) int {
	var count int
	for c1 := 0; c1 < n; c1++ {
		for c2 := 0; c2 < n-1; c2++ {
			if c1 == c2 {
				continue
			}
			diff := c1 - c2
			if diff < 0 {
				diff = -diff
			}
			if supporting(diff) {
				count++
			}
		}
	}
	return count
}

// ValueSupport is like Support, but measures the distance
// between the drawn positions.
func ValueSupport(coords []int) int {
	var count int
	for c1 := range coords {
		for c2 := 0; c2 < len(coords)-1; c2++ {
			if c1 == c2 {
				continue
			}
			diff := coords[c1] - coords[c2]
			if diff < 0 {
				diff = -diff
			}
			if supporting(diff) {
				count++
			}
		}
	}
	return count
}

// Stats counts stable samples.
func Stats(samples []*Sample) (stable, total int) {
	for _, s := range samples {
		stable += s.Label
	}
	return stable, len(samples)
}

// Examples converts samples for training or evaluation.
func Examples(samples []*Sample) []nnet.Example {
	res := make([]nnet.Example, len(samples))
	for i, s := range samples {
		res[i] = nnet.Example{Input: s.Input, Target: s.Target, Label: s.Label}
	}
	return res
}
