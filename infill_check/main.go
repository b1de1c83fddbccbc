// Command infill_check fills a mesh with an infill pattern,
// estimates its strength and optionally simulates building
// it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/unixpickle/infill-lab/config"
	"github.com/unixpickle/infill-lab/objmesh"
)

func main() {
	run := config.DefaultRun()
	var checker Checker
	var meshPath string
	var configPath string
	var saveMeshPath string
	var sweepPath string
	var loggingLevel string

	flag.StringVar(&meshPath, "mesh", "cube.obj", "input OBJ mesh")
	flag.StringVar(&configPath, "config", "", "optional JSON run configuration")
	flag.BoolVar(&checker.Simulate, "simulate", false, "simulate building the infill")
	flag.BoolVar(&checker.Clip, "clip", false, "remove infill outside the mesh")
	flag.StringVar(&saveMeshPath, "save-mesh", "", "write the loaded mesh back out as OBJ")
	flag.StringVar(&sweepPath, "sweep", "", "save a strength by density chart as PNG")
	flag.StringVar(&loggingLevel, "logging-level", "info", "logging level, one of: "+config.LoggingLevelsString)
	run.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 0 {
		flag.Usage()
	}
	essentials.Must(run.Resolve(flag.CommandLine, configPath))
	logger, err := config.NewLogger(loggingLevel)
	essentials.Must(err)
	checker.Run = run
	checker.Logger = logger

	obj, err := objmesh.Load(meshPath, objmesh.Options{})
	if err != nil {
		logger.WithError(err).Fatal("load mesh")
	}
	if _, err := checker.Check(obj); err != nil {
		logger.WithError(err).Fatal("check failed")
	}

	if saveMeshPath != "" {
		if err := obj.Save(saveMeshPath); err != nil {
			logger.WithError(err).Fatal("save mesh")
		}
		logger.WithField("path", saveMeshPath).Info("saved mesh")
	}
	if sweepPath != "" {
		est, err := run.Estimator()
		essentials.Must(err)
		if err := Sweep(est, run, sweepPath); err != nil {
			logger.WithError(err).Fatal("sweep failed")
		}
		logger.WithField("path", sweepPath).Info("saved sweep")
	}
}
