package simulation

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/corridormc/corridor-pricer/internal/domain"
)

// kernelParams are the per-step constants of the recurrence, narrowed once
// to the kernel's working precision. The whole recurrence runs in float32
// to match the random-input precision; the accumulated product of N
// multiplicative steps is the principal source of rounding error in the
// estimate.
type kernelParams struct {
	numSteps int
	rho      float32 // correlation between the two legs' shocks
	alpha    float32 // sqrt(1-rho^2)
	con1     float32 // 1 + r*dt
	con2     float32 // sqrt(dt)*sigma
	width    float32 // corridor band half-width
	discount float32 // exp(-r*T), paid by a surviving path
}

func newKernelParams(cfg domain.SimulationConfig) kernelParams {
	return kernelParams{
		numSteps: cfg.NumSteps,
		rho:      float32(cfg.Correlation),
		alpha:    float32(cfg.CrossVolFactor()),
		con1:     float32(cfg.GrowthFactor()),
		con2:     float32(cfg.ShockScale()),
		width:    float32(cfg.CorridorWidth),
		discount: float32(cfg.DiscountFactor()),
	}
}

// pathLevels evolves both legs of one path to maturity. The second shock
// is built from the first and an independent raw draw by the two-variable
// Cholesky construction: y2 = rho*y1 + sqrt(1-rho^2)*raw.
func pathLevels(kp kernelParams, path int, buf []float32, layout Layout) (float32, float32) {
	s1 := float32(1.0)
	s2 := float32(1.0)
	for step := 0; step < kp.numSteps; step++ {
		y1 := buf[layout.Offset(path, step, 0)]
		y2 := kp.rho*y1 + kp.alpha*buf[layout.Offset(path, step, 1)]
		s1 *= kp.con1 + kp.con2*y1
		s2 *= kp.con1 + kp.con2*y2
	}
	return s1, s2
}

// simulatePath computes one path's discounted corridor payoff: the unit
// notional discounted to today if both legs end inside the band around
// their initial level 1.0, zero otherwise.
func simulatePath(kp kernelParams, path int, buf []float32, layout Layout) float32 {
	s1, s2 := pathLevels(kp, path, buf, layout)
	if abs32(s1-1.0) < kp.width && abs32(s2-1.0) < kp.width {
		return kp.discount
	}
	return 0.0
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Engine orchestrates one pricing run: pre-flight sizing, bulk shock
// generation, the data-parallel simulation pass, the payoff transfer, and
// the final reduction.
type Engine struct {
	Config domain.SimulationConfig
	Source RandomSource
	Layout Layout
	Caps   domain.Capabilities
	Logger Logger
}

// NewEngine creates an engine with the default random source and a no-op
// logger.
func NewEngine(cfg domain.SimulationConfig, layout Layout, caps domain.Capabilities) *Engine {
	return &Engine{
		Config: cfg,
		Source: NewGaussianSource(),
		Layout: layout,
		Caps:   caps,
		Logger: NopLogger{},
	}
}

// Run executes the full pricing pipeline. Every error is terminal; partial
// results are never returned because the reduction requires the complete
// payoff collection.
func (e *Engine) Run(ctx context.Context) (*domain.RunResult, error) {
	cfg := e.Config
	if err := CheckBufferFits(cfg, e.Caps); err != nil {
		return nil, err
	}

	var timings domain.PhaseTimings

	// Generation is a single bulk pass: the whole buffer must exist
	// before any path reads from it.
	start := time.Now()
	buf, err := e.Source.Generate(cfg.ShockCount(), cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	timings.Generation = time.Since(start)
	e.Logger.Debugf("generated %d shocks in %s", len(buf), timings.Generation)

	start = time.Now()
	payoffs := make([]float32, cfg.NumPaths)
	if err := e.simulateAll(ctx, buf, payoffs); err != nil {
		return nil, err
	}
	timings.Simulation = time.Since(start)
	e.Logger.Debugf("simulated %d paths in %s", cfg.NumPaths, timings.Simulation)

	start = time.Now()
	collected := make([]float32, cfg.NumPaths)
	if err := TransferPayoffs(collected, payoffs); err != nil {
		return nil, err
	}
	timings.Transfer = time.Since(start)

	start = time.Now()
	result, err := Aggregate(collected)
	if err != nil {
		return nil, err
	}
	timings.Aggregation = time.Since(start)

	return &domain.RunResult{
		Config:  cfg,
		Layout:  e.Layout.Name(),
		Workers: e.Caps.Workers,
		Result:  result,
		Timings: timings,
	}, nil
}

// simulateAll evaluates every path. Paths are independent: each worker
// owns a disjoint range of path ids and writes only its own payoff slots,
// so the pass needs no locking, only the WaitGroup barrier at the end.
func (e *Engine) simulateAll(ctx context.Context, buf, payoffs []float32) error {
	kp := newKernelParams(e.Config)
	numPaths := e.Config.NumPaths
	workers := e.Caps.Workers
	if workers > numPaths {
		workers = numPaths
	}
	chunk := (numPaths + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < numPaths; lo += chunk {
		hi := lo + chunk
		if hi > numPaths {
			hi = numPaths
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for p := lo; p < hi; p++ {
				payoffs[p] = simulatePath(kp, p, buf, e.Layout)
			}
		}(lo, hi)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrExecution, err)
	}
	return nil
}
