// Package build simulates layer-by-layer construction of a
// voxel grid with random placement errors and greedy
// single-step repairs.
package build

import (
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/unixpickle/infill-lab/strength"
	"github.com/unixpickle/infill-lab/voxel"
)

const (
	DefaultMisplaceProb    = 0.01
	DefaultRepairThreshold = 5
	DefaultRepairPenalty   = 7
)

// A Simulator builds grids voxel by voxel.
type Simulator struct {
	Estimator *strength.Estimator

	// MisplaceProb is the chance that a voxel is written one
	// step further along y than intended.
	MisplaceProb float64

	// A misplacement is repaired when it costs the object
	// some strength, but less than RepairThreshold.
	RepairThreshold float64
	RepairPenalty   int

	Rand   *rand.Rand
	Logger logrus.FieldLogger
}

// NewSimulator creates a Simulator with the default
// probabilities, threshold and penalty.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{
		Estimator:       strength.Default(),
		MisplaceProb:    DefaultMisplaceProb,
		RepairThreshold: DefaultRepairThreshold,
		RepairPenalty:   DefaultRepairPenalty,
		Rand:            rng,
	}
}

// Result summarizes a simulated build.
type Result struct {
	Grid *voxel.Grid

	// Cost is one unit per voxel plus the penalty for each
	// repair.
	Cost    int
	Flaws   int
	Repairs int
	Draws   int
}

// Simulate builds a copy of ref.
//
// The reference grid is only read. Its interior size must be
// accepted by the estimator.
func (s *Simulator) Simulate(ref *voxel.Grid) (*Result, error) {
	if s.Rand == nil {
		return nil, ErrNoRandSource
	}
	est := s.Estimator
	if est == nil {
		est = strength.Default()
	}
	if err := est.Validate(ref.Size); err != nil {
		return nil, errors.Wrap(err, "simulate build")
	}
	log := s.logger()

	res := &Result{Grid: voxel.New(ref.Size)}
	built := res.Grid
	refStrength := -1.0

	// The candidate is built up to just past the current
	// voxel and ref after that. It is created at the first
	// misplacement and then only updated at the cells
	// written since the previous one.
	var candidate *strength.Tracker
	total := ref.Size * ref.Size * ref.Size
	var touched []voxel.Coord
	place := func(c voxel.Coord, v uint8) {
		built.Set(c, v)
		touched = append(touched, c)
	}

	var err error
	ref.Interior(func(c voxel.Coord) {
		if err != nil {
			return
		}
		res.Draws++
		res.Cost++
		misplaced := s.Rand.Float64() < s.MisplaceProb
		if !misplaced {
			place(c, ref.Get(c))
			return
		}

		res.Flaws++
		place(voxel.Coord{c[0], c[1], c[2] + 1}, ref.Get(c))
		rank := ref.Rank(c)
		touched = append(touched, c)
		if rank+1 < total {
			// At the end of a row the deposit lands in padding
			// and the next cell is still unbuilt.
			touched = append(touched, ref.Unrank(rank+1))
		}

		if refStrength < 0 {
			refStrength, err = est.Score(ref)
			if err != nil {
				return
			}
		}
		if candidate == nil {
			candidate, err = est.Track(remainder(built, ref, rank+2))
			if err != nil {
				return
			}
		} else {
			for _, t := range touched {
				candidate.Set(t, built.Get(t))
			}
		}
		touched = touched[:0]

		str := candidate.Score()
		deficit := refStrength - str
		fields := logrus.Fields{"voxel": c, "deficit": deficit}
		if refStrength > str && deficit < s.RepairThreshold {
			place(c, 1)
			res.Cost += s.RepairPenalty
			res.Repairs++
			log.WithFields(fields).Debug("repaired misplaced voxel")
		} else {
			log.WithFields(fields).Debug("left misplaced voxel")
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "simulate build")
	}
	return res, nil
}

func (s *Simulator) logger() logrus.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// remainder copies built and fills in every interior cell
// whose traversal rank is at least start from ref.
func remainder(built, ref *voxel.Grid, start int) *voxel.Grid {
	res := built.Clone()
	total := ref.Size * ref.Size * ref.Size
	for rank := start; rank < total; rank++ {
		c := ref.Unrank(rank)
		res.Set(c, ref.Get(c))
	}
	return res
}
