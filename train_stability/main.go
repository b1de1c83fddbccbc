// Command train_stability trains a small network to tell
// stable position sets from unstable ones.
package main

import (
	"flag"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"

	"github.com/unixpickle/infill-lab/config"
	"github.com/unixpickle/infill-lab/nnet"
	"github.com/unixpickle/infill-lab/report"
	"github.com/unixpickle/infill-lab/stability"
)

// A Trainer holds the training settings.
type Trainer struct {
	Seed          int64
	Train         int
	Test          int
	Epochs        int
	BatchSize     int
	Eta           float64
	Hidden        int
	CompareValues bool
	Logger        logrus.FieldLogger
}

// Run generates the data sets, trains a network and
// returns the per-epoch results.
func (t *Trainer) Run() []nnet.Epoch {
	rng := rand.New(rand.NewSource(t.Seed))
	train := stability.Generate(rng, stability.Config{
		PerLength:     t.Train,
		CompareValues: t.CompareValues,
	})
	test := stability.Generate(rng, stability.Config{
		PerLength:     t.Test,
		Test:          true,
		CompareValues: t.CompareValues,
	})
	stable, total := stability.Stats(train)
	t.Logger.WithFields(logrus.Fields{
		"train":  total,
		"test":   len(test),
		"stable": stable,
	}).Info("generated data")

	net := nnet.New(rng, stability.Width, t.Hidden, 2)
	return net.SGD(stability.Examples(train), t.Epochs, t.BatchSize, t.Eta,
		stability.Examples(test), func(e nnet.Epoch) {
			t.Logger.WithFields(logrus.Fields{
				"epoch":   e.Index,
				"correct": e.Correct,
				"total":   e.Total,
			}).Info("epoch complete")
		})
}

func main() {
	var trainer Trainer
	var plotPath string
	var loggingLevel string
	flag.Int64Var(&trainer.Seed, "seed", 1, "random seed")
	flag.IntVar(&trainer.Train, "train", 4000, "training samples per position count")
	flag.IntVar(&trainer.Test, "test", 400, "test samples per position count")
	flag.IntVar(&trainer.Epochs, "epochs", 30, "training epochs")
	flag.IntVar(&trainer.BatchSize, "batch", 10, "mini-batch size")
	flag.Float64Var(&trainer.Eta, "eta", 3, "learning rate")
	flag.IntVar(&trainer.Hidden, "hidden", 10, "hidden layer size")
	flag.BoolVar(&trainer.CompareValues, "compare-values", false,
		"label samples by the distance between drawn positions")
	flag.StringVar(&plotPath, "plot", "", "save an accuracy chart as PNG")
	flag.StringVar(&loggingLevel, "logging-level", "info", "logging level, one of: "+config.LoggingLevelsString)
	flag.Parse()

	logger, err := config.NewLogger(loggingLevel)
	essentials.Must(err)
	trainer.Logger = logger

	epochs := trainer.Run()
	if plotPath != "" {
		if err := report.AccuracyChart(epochs).Save(plotPath); err != nil {
			logger.WithError(err).Fatal("save plot")
		}
		logger.WithField("path", plotPath).Info("saved plot")
	}
}
