package nnet

// Epoch reports test accuracy after one pass over the
// training data.
type Epoch struct {
	Index   int
	Correct int
	Total   int
}

// Accuracy is Correct/Total, or 0 without test data.
func (e Epoch) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// SGD trains the network with mini-batch stochastic
// gradient descent.
//
// The training data is shuffled at the start of every
// epoch. After each epoch the network is evaluated on test
// and, if onEpoch is non-nil, it is called with the result.
func (n *Network) SGD(train []Example, epochs, batchSize int, eta float64, test []Example,
	onEpoch func(Epoch)) []Epoch {
	if batchSize < 1 {
		batchSize = 1
	}
	data := append([]Example{}, train...)
	var history []Epoch
	for i := 0; i < epochs; i++ {
		n.rng.Shuffle(len(data), func(a, b int) {
			data[a], data[b] = data[b], data[a]
		})
		for start := 0; start < len(data); start += batchSize {
			end := start + batchSize
			if end > len(data) {
				end = len(data)
			}
			n.UpdateMiniBatch(data[start:end], eta)
		}
		e := Epoch{Index: i, Total: len(test)}
		if len(test) > 0 {
			e.Correct = n.Evaluate(test)
		}
		history = append(history, e)
		if onEpoch != nil {
			onEpoch(e)
		}
	}
	return history
}
