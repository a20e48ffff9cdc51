package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationConfigDerivedConstants(t *testing.T) {
	cfg, err := NewSimulationConfig(100, 1000, 2.0, 0.05, 0.3, 0.6, 0, 1)
	require.NoError(t, err)

	dt := 2.0 / 100.0
	assert.Equal(t, dt, cfg.StepSize())
	assert.Equal(t, math.Sqrt(1-0.6*0.6), cfg.CrossVolFactor())
	assert.Equal(t, 1+0.05*dt, cfg.GrowthFactor())
	assert.Equal(t, math.Sqrt(dt)*0.3, cfg.ShockScale())
	assert.Equal(t, math.Exp(-0.05*2.0), cfg.DiscountFactor())
	assert.Equal(t, 2*100*1000, cfg.ShockCount())
}

func TestDerivedConstantsTrackBaseFields(t *testing.T) {
	cfg, err := NewSimulationConfig(100, 1000, 2.0, 0.05, 0.3, 0.6, 0, 1)
	require.NoError(t, err)

	// derived values are recomputed from the base fields on every read,
	// so a modified copy can never see stale constants
	modified := cfg
	modified.NumSteps = 50
	modified.Correlation = 0.0
	assert.Equal(t, 2.0/50.0, modified.StepSize())
	assert.Equal(t, 1.0, modified.CrossVolFactor())
	assert.Equal(t, 1+0.05*(2.0/50.0), modified.GrowthFactor())
	assert.Equal(t, math.Sqrt(2.0/50.0)*0.3, modified.ShockScale())
	assert.Equal(t, 2*50*1000, modified.ShockCount())

	// the original copy is untouched
	assert.Equal(t, 2.0/100.0, cfg.StepSize())
	assert.Equal(t, math.Sqrt(1-0.6*0.6), cfg.CrossVolFactor())
}

func TestNewSimulationConfigDefaultCorridorWidth(t *testing.T) {
	cfg, err := NewSimulationConfig(10, 10, 1.0, 0, 0.2, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultCorridorWidth, cfg.CorridorWidth)

	cfg, err = NewSimulationConfig(10, 10, 1.0, 0, 0.2, 0, 0.05, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.CorridorWidth)
}

func TestNewSimulationConfigValidation(t *testing.T) {
	tests := []struct {
		name                          string
		steps, paths                  int
		horizon, vol, corr, bandWidth float64
	}{
		{"zero steps", 0, 10, 1, 0.2, 0, 0},
		{"negative steps", -1, 10, 1, 0.2, 0, 0},
		{"zero paths", 10, 0, 1, 0.2, 0, 0},
		{"zero horizon", 10, 10, 0, 0.2, 0, 0},
		{"negative volatility", 10, 10, 1, -0.2, 0, 0},
		{"correlation above one", 10, 10, 1, 0.2, 1.5, 0},
		{"correlation below minus one", 10, 10, 1, 0.2, -1.5, 0},
		{"negative corridor width", 10, 10, 1, 0.2, 0, -0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimulationConfig(tt.steps, tt.paths, tt.horizon, 0.01, tt.vol, tt.corr, tt.bandWidth, 1)
			assert.Error(t, err)
		})
	}
}

func TestNewSimulationConfigBoundaryCorrelation(t *testing.T) {
	for _, corr := range []float64{-1, 0, 1} {
		cfg, err := NewSimulationConfig(10, 10, 1.0, 0, 0.2, corr, 0, 1)
		require.NoError(t, err)
		// alpha stays real on the closed interval
		assert.False(t, math.IsNaN(cfg.CrossVolFactor()))
	}
	// alpha vanishes at full correlation
	cfg, err := NewSimulationConfig(10, 10, 1.0, 0, 0.2, 1.0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.CrossVolFactor())
}
