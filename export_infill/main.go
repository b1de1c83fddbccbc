// Command export_infill exports simulated builds of mesh
// infills as binary voxel grids.
//
// Every .obj file below the input directory is filled with
// an infill pattern clipped to the mesh. Variation 0 is the
// clean infill; later variations are simulated builds with
// misplaced voxels.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"

	"github.com/unixpickle/infill-lab/config"
)

func main() {
	run := config.DefaultRun()
	run.Size = 50
	var numVariations int
	var rotate bool
	var configPath string
	var loggingLevel string

	flag.IntVar(&numVariations, "variations", 1, "number of random perturbations to produce")
	flag.BoolVar(&rotate, "rotate", false, "randomly rotate meshes for variations after the first")
	flag.StringVar(&configPath, "config", "", "optional JSON run configuration")
	flag.StringVar(&loggingLevel, "logging-level", "info", "logging level, one of: "+config.LoggingLevelsString)
	run.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input_dir> <output_dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	essentials.Must(run.Resolve(flag.CommandLine, configPath))
	logger, err := config.NewLogger(loggingLevel)
	essentials.Must(err)

	inDir := flag.Args()[0]
	outDir := flag.Args()[1]

	conv := &Converter{
		Run:           run,
		NumVariations: numVariations,
		Rotate:        rotate,
		Logger:        logger,
	}

	err = filepath.Walk(inDir, func(inPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(inDir, inPath)
		essentials.Must(err)
		outPath := filepath.Join(outDir, relPath)

		if info.IsDir() {
			if _, err := os.Stat(outPath); os.IsNotExist(err) {
				essentials.Must(os.Mkdir(outPath, 0755))
			}
			return nil
		}

		if filepath.Ext(inPath) == ".obj" {
			return conv.ConvertModel(inPath, outPath)
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Fatal("export failed")
	}
	logger.WithFields(logrus.Fields{"input": inDir, "output": outDir}).Info("export finished")
}
