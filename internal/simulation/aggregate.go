package simulation

import (
	"fmt"
	"math"

	"github.com/corridormc/corridor-pricer/internal/domain"
)

// Aggregate reduces a complete payoff collection to its sample mean and
// the standard error of that mean. The moments accumulate in float64
// regardless of the payoffs' storage precision: with path counts in the
// millions, single-precision accumulation loses significant digits.
func Aggregate(payoffs []float32) (domain.AggregateResult, error) {
	if len(payoffs) == 0 {
		return domain.AggregateResult{}, fmt.Errorf("%w: empty payoff collection", ErrExecution)
	}

	var sum, sumSquares float64
	for _, p := range payoffs {
		v := float64(p)
		sum += v
		sumSquares += v * v
	}

	n := float64(len(payoffs))
	mean := sum / n
	variance := sumSquares/n - mean*mean
	// Cancellation can push the population variance a hair below zero.
	if variance < 0 {
		variance = 0
	}

	return domain.AggregateResult{
		SampleMean:     mean,
		SampleStdError: math.Sqrt(variance / n),
	}, nil
}
