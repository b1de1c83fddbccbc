// Package config holds run settings shared by the
// commands: defaults, a JSON override file and flags.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/infill-lab/build"
	"github.com/unixpickle/infill-lab/infill"
	"github.com/unixpickle/infill-lab/strength"
)

// Run is a fully resolved set of experiment settings.
type Run struct {
	Size    int
	Density float64
	Kind    string
	Slope   float64
	Seed    int64

	MisplaceProb    float64
	RepairThreshold float64
	RepairPenalty   int

	BlockSize int
	Passes    int
	Aggregate string
	Workers   int
}

// DefaultRun returns the settings of the reference checker
// run: a 100 voxel cube at 20% density.
func DefaultRun() Run {
	return Run{
		Size:            100,
		Density:         0.2,
		Kind:            "rect",
		Slope:           1,
		Seed:            1,
		MisplaceProb:    build.DefaultMisplaceProb,
		RepairThreshold: build.DefaultRepairThreshold,
		RepairPenalty:   build.DefaultRepairPenalty,
		BlockSize:       5,
		Passes:          2,
		Aggregate:       "sum",
		Workers:         1,
	}
}

// RunConfig overrides parts of a Run. Omitted fields keep
// their current values.
type RunConfig struct {
	Size    *int     `json:"size,omitempty"`
	Density *float64 `json:"density,omitempty"`
	Kind    *string  `json:"kind,omitempty"`
	Slope   *float64 `json:"slope,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`

	MisplaceProb    *float64 `json:"misplace_prob,omitempty"`
	RepairThreshold *float64 `json:"repair_threshold,omitempty"`
	RepairPenalty   *int     `json:"repair_penalty,omitempty"`

	BlockSize *int    `json:"block_size,omitempty"`
	Passes    *int    `json:"passes,omitempty"`
	Aggregate *string `json:"aggregate,omitempty"`
	Workers   *int    `json:"workers,omitempty"`
}

// LoadRunConfig reads a RunConfig from a .json file of at
// most 1MB.
func LoadRunConfig(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Apply copies every set field into run, except the fields
// whose JSON names are in skip.
func (c *RunConfig) Apply(run *Run, skip map[string]bool) {
	setInt := func(name string, src *int, dst *int) {
		if src != nil && !skip[name] {
			*dst = *src
		}
	}
	setFloat := func(name string, src *float64, dst *float64) {
		if src != nil && !skip[name] {
			*dst = *src
		}
	}
	setString := func(name string, src *string, dst *string) {
		if src != nil && !skip[name] {
			*dst = *src
		}
	}
	setInt("size", c.Size, &run.Size)
	setFloat("density", c.Density, &run.Density)
	setString("kind", c.Kind, &run.Kind)
	setFloat("slope", c.Slope, &run.Slope)
	if c.Seed != nil && !skip["seed"] {
		run.Seed = *c.Seed
	}
	setFloat("misplace_prob", c.MisplaceProb, &run.MisplaceProb)
	setFloat("repair_threshold", c.RepairThreshold, &run.RepairThreshold)
	setInt("repair_penalty", c.RepairPenalty, &run.RepairPenalty)
	setInt("block_size", c.BlockSize, &run.BlockSize)
	setInt("passes", c.Passes, &run.Passes)
	setString("aggregate", c.Aggregate, &run.Aggregate)
	setInt("workers", c.Workers, &run.Workers)
}

// RegisterFlags adds a flag for every Run field, named
// after its JSON key with dashes.
func (r *Run) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&r.Size, "size", r.Size, "number of voxels along each dimension")
	fs.Float64Var(&r.Density, "density", r.Density, "infill density")
	fs.StringVar(&r.Kind, "kind", r.Kind, "infill pattern: rect or grid")
	fs.Float64Var(&r.Slope, "slope", r.Slope, "slope of grid pattern lines")
	fs.Int64Var(&r.Seed, "seed", r.Seed, "random seed")
	fs.Float64Var(&r.MisplaceProb, "misplace-prob", r.MisplaceProb, "probability of misplacing a voxel")
	fs.Float64Var(&r.RepairThreshold, "repair-threshold", r.RepairThreshold, "largest strength loss worth repairing")
	fs.IntVar(&r.RepairPenalty, "repair-penalty", r.RepairPenalty, "extra cost of a repair")
	fs.IntVar(&r.BlockSize, "block-size", r.BlockSize, "strength block edge length")
	fs.IntVar(&r.Passes, "passes", r.Passes, "strength aggregation passes")
	fs.StringVar(&r.Aggregate, "aggregate", r.Aggregate, "aggregation after the first pass: sum or mean")
	fs.IntVar(&r.Workers, "workers", r.Workers, "concurrent block scorers")
}

// Resolve applies the config file at path, if any, without
// overriding flags that were set explicitly on fs.
func (r *Run) Resolve(fs *flag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	cfg, err := LoadRunConfig(path)
	if err != nil {
		return err
	}
	skip := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		skip[strings.ReplaceAll(f.Name, "-", "_")] = true
	})
	cfg.Apply(r, skip)
	return nil
}

// InfillKind parses Kind.
func (r *Run) InfillKind() (infill.Kind, error) {
	return infill.ParseKind(r.Kind)
}

// Estimator creates the strength estimator for the run.
func (r *Run) Estimator() (*strength.Estimator, error) {
	e := &strength.Estimator{
		BlockSize: r.BlockSize,
		Passes:    r.Passes,
		Workers:   r.Workers,
	}
	switch r.Aggregate {
	case "sum":
		e.Aggregate = strength.Sum
	case "mean":
		e.Aggregate = strength.Mean
	default:
		return nil, fmt.Errorf("unknown aggregate %q", r.Aggregate)
	}
	return e, nil
}

// Simulator creates a build simulator seeded with
// Seed+offset.
func (r *Run) Simulator(offset int64) (*build.Simulator, error) {
	est, err := r.Estimator()
	if err != nil {
		return nil, err
	}
	return &build.Simulator{
		Estimator:       est,
		MisplaceProb:    r.MisplaceProb,
		RepairThreshold: r.RepairThreshold,
		RepairPenalty:   r.RepairPenalty,
		Rand:            rand.New(rand.NewSource(r.Seed + offset)),
	}, nil
}
