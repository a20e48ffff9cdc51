package simulation

import "errors"

// All run errors are terminal: a run either completes every path or fails
// as a whole. Callers identify the failed phase with errors.Is; recovery
// policy (for example retrying with a smaller path count) is theirs.
var (
	// ErrConfiguration marks invalid run parameters or a random buffer
	// that exceeds the memory budget. Detected before any generation.
	ErrConfiguration = errors.New("invalid simulation configuration")

	// ErrGeneration marks a random source failure. Never retried: a
	// partial or substituted stream would silently corrupt the estimate.
	ErrGeneration = errors.New("random generation failed")

	// ErrExecution marks a simulation pass that could not complete.
	ErrExecution = errors.New("simulation execution failed")

	// ErrTransfer marks a failed payoff transfer between the simulation
	// and aggregation buffers.
	ErrTransfer = errors.New("payoff transfer failed")
)
