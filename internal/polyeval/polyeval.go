// Package polyeval is a small data-parallel workload kept alongside the
// corridor pricer: it evaluates a polynomial at every element of a random
// input vector and averages the results. Unlike the pricer there is no
// recurrence, no correlation between elements, and no layout concern, so
// it doubles as a minimal reference for the worker-chunked map.
package polyeval

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Config holds the parameters of one evaluation run.
type Config struct {
	// Coefficients in ascending degree order: c0 + c1*x + c2*x^2 + ...
	Coefficients []float64
	// NumElements is the input vector length.
	NumElements int
	// Seed drives the uniform [0,1) input generation.
	Seed uint64
	// Workers bounds the parallel fan-out; zero means one worker per
	// available element chunk is decided by the caller.
	Workers int
}

// Result is the averaged polynomial value over the inputs.
type Result struct {
	Mean        float64 `json:"mean"`
	NumElements int     `json:"num_elements"`
}

// Run generates the inputs, evaluates the polynomial per element in
// parallel, and averages the values.
func Run(cfg Config) (Result, error) {
	if len(cfg.Coefficients) == 0 {
		return Result{}, fmt.Errorf("at least one coefficient is required")
	}
	if cfg.NumElements <= 0 {
		return Result{}, fmt.Errorf("num_elements must be positive, got %d", cfg.NumElements)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > cfg.NumElements {
		workers = cfg.NumElements
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	inputs := make([]float64, cfg.NumElements)
	for i := range inputs {
		inputs[i] = rng.Float64()
	}

	values := make([]float64, cfg.NumElements)
	chunk := (cfg.NumElements + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < cfg.NumElements; lo += chunk {
		hi := lo + chunk
		if hi > cfg.NumElements {
			hi = cfg.NumElements
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				values[i] = evaluate(cfg.Coefficients, inputs[i])
			}
		}(lo, hi)
	}
	wg.Wait()

	return Result{
		Mean:        stat.Mean(values, nil),
		NumElements: cfg.NumElements,
	}, nil
}

// evaluate computes the polynomial at x by Horner's rule.
func evaluate(coeffs []float64, x float64) float64 {
	v := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}
	return v
}
