package simulation

import (
	"fmt"
	"runtime"

	"github.com/corridormc/corridor-pricer/internal/domain"
)

// DefaultMemoryBudgetBytes bounds the random buffer when the caller does
// not supply a budget.
const DefaultMemoryBudgetBytes = 1 << 30 // 1 GiB

// shockBytes is the storage size of one standard-normal draw.
const shockBytes = 4

// QueryCapabilities reports the parallel resources available to a run.
// Zero-valued overrides fall back to the host defaults.
func QueryCapabilities(workers int, memoryBudgetBytes int64) domain.Capabilities {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if memoryBudgetBytes <= 0 {
		memoryBudgetBytes = DefaultMemoryBudgetBytes
	}
	return domain.Capabilities{
		Workers:           workers,
		MemoryBudgetBytes: memoryBudgetBytes,
	}
}

// CheckBufferFits verifies, before any generation, that the full random
// buffer of 2*N*P shocks fits within the memory budget. Failing the check
// is a configuration error, not a runtime retry condition.
func CheckBufferFits(cfg domain.SimulationConfig, caps domain.Capabilities) error {
	need := int64(cfg.NumSteps) * int64(cfg.NumPaths) * 2 * shockBytes
	if need <= 0 || need/int64(cfg.NumPaths) != int64(cfg.NumSteps)*2*shockBytes {
		return fmt.Errorf("%w: shock buffer size overflows for %d steps x %d paths", ErrConfiguration, cfg.NumSteps, cfg.NumPaths)
	}
	if need > caps.MemoryBudgetBytes {
		return fmt.Errorf("%w: shock buffer needs %d bytes, budget is %d", ErrConfiguration, need, caps.MemoryBudgetBytes)
	}
	return nil
}
