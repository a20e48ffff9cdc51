package domain

import "time"

// AggregateResult is the terminal artifact of a pricing run: the sample
// mean of the discounted payoffs and the standard error of that mean.
type AggregateResult struct {
	SampleMean     float64 `json:"sample_mean"`
	SampleStdError float64 `json:"sample_std_error"`
}

// PhaseTimings records wall-clock durations of the run phases. They are
// reporting-only and have no effect on the numerical result.
type PhaseTimings struct {
	Generation  time.Duration `json:"generation"`
	Simulation  time.Duration `json:"simulation"`
	Transfer    time.Duration `json:"transfer"`
	Aggregation time.Duration `json:"aggregation"`
}

// RunResult bundles everything the output layer needs to report one run.
type RunResult struct {
	Config  SimulationConfig `json:"config"`
	Layout  string           `json:"layout"`
	Workers int              `json:"workers"`
	Result  AggregateResult  `json:"result"`
	Timings PhaseTimings     `json:"timings"`
}
