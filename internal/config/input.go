package config

import (
	"fmt"
	"os"

	"github.com/corridormc/corridor-pricer/internal/domain"
	"gopkg.in/yaml.v3"
)

// RunInput mirrors the YAML run file. Zero values for the optional fields
// mean "use the default": corridor_width falls back to the fixed contract
// band, layout to contiguous, workers and memory budget to the host
// capability query.
type RunInput struct {
	NumSteps     int     `yaml:"num_steps"`
	NumPaths     int     `yaml:"num_paths"`
	Horizon      float64 `yaml:"horizon"`
	RiskFreeRate float64 `yaml:"risk_free_rate"`
	Volatility   float64 `yaml:"volatility"`
	Correlation  float64 `yaml:"correlation"`
	Seed         uint64  `yaml:"seed"`

	CorridorWidth     float64 `yaml:"corridor_width,omitempty"`
	Layout            string  `yaml:"layout,omitempty"`
	GroupWidth        int     `yaml:"group_width,omitempty"`
	Workers           int     `yaml:"workers,omitempty"`
	MemoryBudgetBytes int64   `yaml:"memory_budget_bytes,omitempty"`
}

// InputParser handles parsing of run input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a run input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*RunInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input RunInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRunInput(&input); err != nil {
		return nil, fmt.Errorf("run input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateRunInput validates the loaded run input
func (ip *InputParser) ValidateRunInput(input *RunInput) error {
	if input.NumSteps <= 0 {
		return fmt.Errorf("num_steps must be positive")
	}
	if input.NumPaths <= 0 {
		return fmt.Errorf("num_paths must be positive")
	}
	if input.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive")
	}
	if input.Volatility < 0 {
		return fmt.Errorf("volatility cannot be negative")
	}
	if input.Correlation < -1 || input.Correlation > 1 {
		return fmt.Errorf("correlation must be between -1 and 1")
	}
	if input.CorridorWidth < 0 {
		return fmt.Errorf("corridor_width cannot be negative")
	}
	if input.Layout != "" && input.Layout != "contiguous" && input.Layout != "strided" {
		return fmt.Errorf("layout must be 'contiguous' or 'strided'")
	}
	if input.GroupWidth < 0 {
		return fmt.Errorf("group_width cannot be negative")
	}
	if input.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if input.MemoryBudgetBytes < 0 {
		return fmt.Errorf("memory_budget_bytes cannot be negative")
	}
	return nil
}

// ToSimulationConfig converts a validated run input into the immutable
// simulation configuration with its derived constants.
func (ip *InputParser) ToSimulationConfig(input *RunInput) (domain.SimulationConfig, error) {
	return domain.NewSimulationConfig(
		input.NumSteps,
		input.NumPaths,
		input.Horizon,
		input.RiskFreeRate,
		input.Volatility,
		input.Correlation,
		input.CorridorWidth,
		input.Seed,
	)
}

// CreateExampleRunInput creates an example run input
func (ip *InputParser) CreateExampleRunInput() *RunInput {
	return &RunInput{
		NumSteps:     252,
		NumPaths:     262144,
		Horizon:      1.0,
		RiskFreeRate: 0.02,
		Volatility:   0.3,
		Correlation:  0.5,
		Seed:         12345,
		Layout:       "contiguous",
	}
}
