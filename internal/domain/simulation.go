package domain

import (
	"fmt"
	"math"
)

// DefaultCorridorWidth is the contract band half-width around the initial
// level 1.0. It is a contract parameter, not a quantity derived from
// volatility.
const DefaultCorridorWidth = 0.1

// SimulationConfig holds the parameters of one pricing run. The value is
// read-only after construction and shared by every path evaluation. The
// derived constants are pure functions of the base fields and are computed
// on demand, so a copy with altered base fields can never observe a stale
// derived value; the engine snapshots them once per run.
type SimulationConfig struct {
	NumSteps      int     `json:"num_steps"`
	NumPaths      int     `json:"num_paths"`
	Horizon       float64 `json:"horizon"`
	RiskFreeRate  float64 `json:"risk_free_rate"`
	Volatility    float64 `json:"volatility"`
	Correlation   float64 `json:"correlation"`
	CorridorWidth float64 `json:"corridor_width"`
	Seed          uint64  `json:"seed"`
}

// NewSimulationConfig validates the base parameters.
func NewSimulationConfig(numSteps, numPaths int, horizon, riskFreeRate, volatility, correlation, corridorWidth float64, seed uint64) (SimulationConfig, error) {
	if numSteps <= 0 {
		return SimulationConfig{}, fmt.Errorf("num_steps must be positive, got %d", numSteps)
	}
	if numPaths <= 0 {
		return SimulationConfig{}, fmt.Errorf("num_paths must be positive, got %d", numPaths)
	}
	if horizon <= 0 {
		return SimulationConfig{}, fmt.Errorf("horizon must be positive, got %g", horizon)
	}
	if volatility < 0 {
		return SimulationConfig{}, fmt.Errorf("volatility cannot be negative, got %g", volatility)
	}
	if correlation < -1 || correlation > 1 {
		return SimulationConfig{}, fmt.Errorf("correlation must be in [-1, 1], got %g", correlation)
	}
	if corridorWidth == 0 {
		corridorWidth = DefaultCorridorWidth
	}
	if corridorWidth < 0 {
		return SimulationConfig{}, fmt.Errorf("corridor_width cannot be negative, got %g", corridorWidth)
	}

	return SimulationConfig{
		NumSteps:      numSteps,
		NumPaths:      numPaths,
		Horizon:       horizon,
		RiskFreeRate:  riskFreeRate,
		Volatility:    volatility,
		Correlation:   correlation,
		CorridorWidth: corridorWidth,
		Seed:          seed,
	}, nil
}

// CrossVolFactor is sqrt(1-rho^2), the weight of the independent raw draw
// in the correlated second shock.
func (c SimulationConfig) CrossVolFactor() float64 {
	return math.Sqrt(1 - c.Correlation*c.Correlation)
}

// StepSize is the time increment T/N.
func (c SimulationConfig) StepSize() float64 {
	return c.Horizon / float64(c.NumSteps)
}

// GrowthFactor is the per-step drift term 1 + r*dt.
func (c SimulationConfig) GrowthFactor() float64 {
	return 1 + c.RiskFreeRate*c.StepSize()
}

// ShockScale is the per-step diffusion term sqrt(dt)*sigma.
func (c SimulationConfig) ShockScale() float64 {
	return math.Sqrt(c.StepSize()) * c.Volatility
}

// ShockCount is the total number of standard-normal draws a run consumes:
// two legs per step per path.
func (c SimulationConfig) ShockCount() int { return 2 * c.NumSteps * c.NumPaths }

// DiscountFactor is exp(-r*T), the amount a surviving path pays.
func (c SimulationConfig) DiscountFactor() float64 {
	return math.Exp(-c.RiskFreeRate * c.Horizon)
}

// Capabilities describes the parallel-compute resources a run may use,
// as reported by the capability query before the run starts.
type Capabilities struct {
	Workers           int   `json:"workers"`
	MemoryBudgetBytes int64 `json:"memory_budget_bytes"`
}
