package simulation

import (
	"fmt"
	"testing"

	"github.com/corridormc/corridor-pricer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, numSteps, numPaths int) domain.SimulationConfig {
	t.Helper()
	cfg, err := domain.NewSimulationConfig(numSteps, numPaths, 1.0, 0.03, 0.4, 0.5, 0, 99)
	require.NoError(t, err)
	return cfg
}

func TestContiguousLayoutOffsets(t *testing.T) {
	l := ContiguousLayout{NumSteps: 3}

	// path blocks are uninterrupted runs of 2*N values
	assert.Equal(t, 0, l.Offset(0, 0, 0))
	assert.Equal(t, 1, l.Offset(0, 0, 1))
	assert.Equal(t, 2, l.Offset(0, 1, 0))
	assert.Equal(t, 5, l.Offset(0, 2, 1))
	assert.Equal(t, 6, l.Offset(1, 0, 0))
	assert.Equal(t, 12, l.Offset(2, 0, 0))
}

func TestStridedLayoutOffsets(t *testing.T) {
	l := StridedLayout{NumSteps: 2, NumPaths: 4, GroupWidth: 2}

	// lanes within a group sit next to each other at a fixed step
	assert.Equal(t, 0, l.Offset(0, 0, 0))
	assert.Equal(t, 1, l.Offset(1, 0, 0))
	// a path advances by the group width from one shock to the next
	assert.Equal(t, 2, l.Offset(0, 0, 1))
	assert.Equal(t, 3, l.Offset(1, 0, 1))
	assert.Equal(t, 4, l.Offset(0, 1, 0))
	// second group starts after the first group's full block
	assert.Equal(t, 8, l.Offset(2, 0, 0))
}

func TestLayoutBijectivity(t *testing.T) {
	const (
		numSteps = 5
		numPaths = 7 // not a multiple of the group width: trailing partial group
	)
	layouts := []Layout{
		ContiguousLayout{NumSteps: numSteps},
		StridedLayout{NumSteps: numSteps, NumPaths: numPaths, GroupWidth: 3},
	}

	for _, l := range layouts {
		t.Run(l.Name(), func(t *testing.T) {
			total := 2 * numSteps * numPaths
			seen := make([]bool, total)
			for p := 0; p < numPaths; p++ {
				for s := 0; s < numSteps; s++ {
					for leg := 0; leg < 2; leg++ {
						off := l.Offset(p, s, leg)
						require.GreaterOrEqual(t, off, 0, "offset(%d,%d,%d)", p, s, leg)
						require.Less(t, off, total, "offset(%d,%d,%d)", p, s, leg)
						require.False(t, seen[off], "offset(%d,%d,%d) collides at %d", p, s, leg, off)
						seen[off] = true
					}
				}
			}
		})
	}
}

// The two layouts are alternate addressings of the same logical per-path
// shock block. Scattering identical logical shocks through each layout and
// simulating must give bit-identical payoffs.
func TestLayoutEquivalence(t *testing.T) {
	const (
		numSteps = 6
		numPaths = 7
	)
	cfg := testConfig(t, numSteps, numPaths)
	kp := newKernelParams(cfg)

	shocks, err := NewGaussianSource().Generate(cfg.ShockCount(), cfg.Seed)
	require.NoError(t, err)

	contiguous := ContiguousLayout{NumSteps: numSteps}
	strided := StridedLayout{NumSteps: numSteps, NumPaths: numPaths, GroupWidth: 3}

	bufA := make([]float32, cfg.ShockCount())
	bufB := make([]float32, cfg.ShockCount())
	for p := 0; p < numPaths; p++ {
		for s := 0; s < numSteps; s++ {
			for leg := 0; leg < 2; leg++ {
				logical := shocks[(p*numSteps+s)*2+leg]
				bufA[contiguous.Offset(p, s, leg)] = logical
				bufB[strided.Offset(p, s, leg)] = logical
			}
		}
	}

	for p := 0; p < numPaths; p++ {
		a := simulatePath(kp, p, bufA, contiguous)
		b := simulatePath(kp, p, bufB, strided)
		assert.Equal(t, a, b, "path %d payoff differs across layouts", p)
	}
}

func TestNewLayout(t *testing.T) {
	cfg := testConfig(t, 4, 16)

	tests := []struct {
		name       string
		layoutName string
		groupWidth int
		wantErr    bool
	}{
		{"contiguous", LayoutContiguous, 0, false},
		{"default is contiguous", "", 0, false},
		{"strided", LayoutStrided, 8, false},
		{"strided default width", LayoutStrided, 0, false},
		{"strided negative width", LayoutStrided, -1, true},
		{"unknown", "interleaved", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLayout(tt.layoutName, cfg, tt.groupWidth)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestNewLayoutStridedDefaultWidthIsFixed(t *testing.T) {
	// the fallback width is a constant, not a host property, so a default
	// strided run addresses the buffer the same way on every machine
	cfg := testConfig(t, 4, 1000)

	l, err := NewLayout(LayoutStrided, cfg, 0)
	require.NoError(t, err)

	strided, ok := l.(StridedLayout)
	require.True(t, ok)
	assert.Equal(t, DefaultGroupWidth, strided.GroupWidth)
}

func BenchmarkLayoutOffset(b *testing.B) {
	for _, l := range []Layout{
		ContiguousLayout{NumSteps: 252},
		StridedLayout{NumSteps: 252, NumPaths: 1 << 16, GroupWidth: 256},
	} {
		b.Run(l.Name(), func(b *testing.B) {
			var sink int
			for i := 0; i < b.N; i++ {
				sink += l.Offset(i%(1<<16), i%252, i&1)
			}
			_ = fmt.Sprint(sink)
		})
	}
}
