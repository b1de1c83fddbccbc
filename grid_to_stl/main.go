// Command grid_to_stl converts a JSON-encoded grid of
// voxel values into a triangle mesh and saves it as an STL
// file.
//
// The JSON input is read from stdin and decoded as a 3D
// array with z on the outer dimension, then x, then y.
// The array should be NxNxN, i.e. a perfect cube.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"

	"github.com/unixpickle/infill-lab/config"
)

func main() {
	var threshold float64
	var outputPath string
	var loggingLevel string
	flag.Float64Var(&threshold, "threshold", 0.5, "minimum value for containment")
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.StringVar(&loggingLevel, "logging-level", "info", "logging level, one of: "+config.LoggingLevelsString)
	flag.Parse()

	logger, err := config.NewLogger(loggingLevel)
	essentials.Must(err)

	numTriangles, err := Convert(os.Stdin, threshold, outputPath)
	if err != nil {
		logger.WithError(err).Fatal("conversion failed")
	}
	logger.WithFields(logrus.Fields{
		"output":    outputPath,
		"triangles": numTriangles,
	}).Info("saved mesh")
}
