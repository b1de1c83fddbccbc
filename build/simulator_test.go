package build

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixpickle/infill-lab/infill"
	"github.com/unixpickle/infill-lab/strength"
	"github.com/unixpickle/infill-lab/voxel"
)

// scriptedSource misplaces exactly the draws listed in
// misplace, counting draws from 0.
type scriptedSource struct {
	misplace map[int]bool
	n        int
}

func (s *scriptedSource) Int63() int64 {
	defer func() { s.n++ }()
	if s.misplace[s.n] {
		return 0
	}
	return 1 << 62
}

func (s *scriptedSource) Seed(int64) {}

func scriptedSimulator(draws ...int) *Simulator {
	src := &scriptedSource{misplace: map[int]bool{}}
	for _, d := range draws {
		src.misplace[d] = true
	}
	sim := NewSimulator(rand.New(src))
	sim.Estimator = &strength.Estimator{BlockSize: 5, Passes: 1}
	return sim
}

func gridWith(size int, cells ...voxel.Coord) *voxel.Grid {
	g := voxel.New(size)
	for _, c := range cells {
		g.Set(c, 1)
	}
	return g
}

func TestSimulateRepairsSmallLoss(t *testing.T) {
	ref := gridWith(5, voxel.Coord{1, 1, 2}, voxel.Coord{2, 2, 1})
	res, err := scriptedSimulator(1).Simulate(ref)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Flaws)
	assert.Equal(t, 1, res.Repairs)
	assert.Equal(t, 125, res.Draws)
	assert.Equal(t, 125+7, res.Cost)
	assert.True(t, ref.Equal(res.Grid))
}

func TestSimulateSkipsStrengthGain(t *testing.T) {
	// Misplacing the first voxel turns a corner contact into
	// an edge contact, so the flawed object looks stronger.
	ref := gridWith(5, voxel.Coord{1, 1, 1}, voxel.Coord{2, 2, 2})
	res, err := scriptedSimulator(0).Simulate(ref)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Flaws)
	assert.Equal(t, 0, res.Repairs)
	assert.Equal(t, 125, res.Cost)
	assert.Equal(t, gridWith(5, voxel.Coord{2, 2, 2}).Data, res.Grid.Data)
}

func TestSimulateSkipsLargeLoss(t *testing.T) {
	ref := gridWith(5, voxel.Coord{1, 1, 1}, voxel.Coord{1, 1, 2})
	res, err := scriptedSimulator(0).Simulate(ref)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Flaws)
	assert.Equal(t, 0, res.Repairs)
	assert.Equal(t, 125, res.Cost)
	assert.Equal(t, gridWith(5, voxel.Coord{1, 1, 2}).Data, res.Grid.Data)
}

func TestSimulateEmptyCellFlaw(t *testing.T) {
	ref := gridWith(5, voxel.Coord{3, 3, 3})
	res, err := scriptedSimulator(0, 4, 124).Simulate(ref)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Flaws)
	assert.Equal(t, 0, res.Repairs)
	assert.True(t, ref.Equal(res.Grid))
}

func TestSimulateNoFlaws(t *testing.T) {
	ref, err := infill.Generate(10, 0.2, infill.Grid, 1)
	require.NoError(t, err)
	sim := NewSimulator(rand.New(rand.NewSource(1)))
	sim.Estimator = &strength.Estimator{BlockSize: 5, Passes: 1}
	sim.MisplaceProb = 0

	res, err := sim.Simulate(ref)
	require.NoError(t, err)
	assert.Equal(t, 1000, res.Cost)
	assert.Equal(t, 0, res.Flaws)
	assert.True(t, ref.Equal(res.Grid))
}

func TestSimulateCostInvariant(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		ref, err := infill.Generate(10, 0.3, infill.Rect, 0)
		require.NoError(t, err)
		original := ref.Clone()

		sim := NewSimulator(rand.New(rand.NewSource(seed)))
		sim.Estimator = &strength.Estimator{BlockSize: 5, Passes: 1}
		sim.MisplaceProb = 0.2

		res, err := sim.Simulate(ref)
		require.NoError(t, err)
		assert.Equal(t, 1000, res.Draws)
		assert.Equal(t, 1000+DefaultRepairPenalty*res.Repairs, res.Cost)
		assert.LessOrEqual(t, res.Flaws, res.Draws)
		assert.LessOrEqual(t, res.Repairs, res.Flaws)
		assert.Greater(t, res.Flaws, 0)
		assert.True(t, original.Equal(ref), "reference must not change")
	}
}

func TestSimulateDeterministic(t *testing.T) {
	ref, err := infill.Generate(25, 0.2, infill.Grid, 1)
	require.NoError(t, err)

	run := func() *Result {
		res, err := NewSimulator(rand.New(rand.NewSource(1337))).Simulate(ref)
		require.NoError(t, err)
		return res
	}
	r1, r2 := run(), run()
	assert.Equal(t, r1.Cost, r2.Cost)
	assert.Equal(t, r1.Flaws, r2.Flaws)
	assert.Equal(t, r1.Repairs, r2.Repairs)
	assert.True(t, r1.Grid.Equal(r2.Grid))
	assert.Equal(t, 25*25*25+7*r1.Repairs, r1.Cost)
}

func TestSimulateErrors(t *testing.T) {
	_, err := (&Simulator{}).Simulate(voxel.New(5))
	assert.ErrorIs(t, err, ErrNoRandSource)

	_, err = NewSimulator(rand.New(rand.NewSource(0))).Simulate(voxel.New(10))
	assert.ErrorIs(t, err, strength.ErrInvalidGridSize)
}

func TestSimulateLogsDecisions(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sim := scriptedSimulator(1)
	sim.Logger = logger
	_, err := sim.Simulate(gridWith(5, voxel.Coord{1, 1, 2}, voxel.Coord{2, 2, 1}))
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "repaired misplaced voxel", entry.Message)
	assert.Equal(t, 2.0, entry.Data["deficit"])
}

// rescoreAll runs the build loop rescoring the whole
// candidate grid at every misplacement.
func rescoreAll(s *Simulator, ref *voxel.Grid) *Result {
	res := &Result{Grid: voxel.New(ref.Size)}
	built := res.Grid
	refStrength := s.Estimator.MustScore(ref)
	ref.Interior(func(c voxel.Coord) {
		res.Draws++
		res.Cost++
		if s.Rand.Float64() >= s.MisplaceProb {
			built.Set(c, ref.Get(c))
			return
		}
		res.Flaws++
		built.Set(voxel.Coord{c[0], c[1], c[2] + 1}, ref.Get(c))
		str := s.Estimator.MustScore(remainder(built, ref, ref.Rank(c)+2))
		if refStrength > str && refStrength-str < s.RepairThreshold {
			built.Set(c, 1)
			res.Cost += s.RepairPenalty
			res.Repairs++
		}
	})
	return res
}

func TestSimulateMatchesFullRescoring(t *testing.T) {
	for _, tc := range []struct {
		size  int
		est   *strength.Estimator
		prob  float64
		thres float64
	}{
		{5, &strength.Estimator{BlockSize: 5, Passes: 1}, 0.3, 5},
		{5, &strength.Estimator{BlockSize: 5, Passes: 1}, 0.3, 40},
		{25, strength.Default(), 0.01, 40},
		{25, &strength.Estimator{BlockSize: 5, Passes: 2, Aggregate: strength.Mean}, 0.01, 0.5},
	} {
		for seed := int64(0); seed < 3; seed++ {
			refRng := rand.New(rand.NewSource(seed))
			ref := voxel.New(tc.size)
			ref.Interior(func(c voxel.Coord) {
				if refRng.Float64() < 0.5 {
					ref.Set(c, 1)
				}
			})

			newSim := func() *Simulator {
				sim := NewSimulator(rand.New(rand.NewSource(seed + 100)))
				sim.Estimator = tc.est
				sim.MisplaceProb = tc.prob
				sim.RepairThreshold = tc.thres
				return sim
			}
			expected := rescoreAll(newSim(), ref)
			actual, err := newSim().Simulate(ref)
			require.NoError(t, err)

			assert.Greater(t, expected.Flaws, 0)
			assert.Equal(t, expected.Flaws, actual.Flaws, "size %d seed %d", tc.size, seed)
			assert.Equal(t, expected.Repairs, actual.Repairs, "size %d seed %d", tc.size, seed)
			assert.Equal(t, expected.Cost, actual.Cost, "size %d seed %d", tc.size, seed)
			assert.True(t, expected.Grid.Equal(actual.Grid), "size %d seed %d", tc.size, seed)
		}
	}
}
