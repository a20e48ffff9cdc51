package simulation

import "fmt"

// TransferPayoffs copies a completed payoff collection from the simulation
// buffer into the aggregation buffer. The copy is an explicit, observable
// step with its own failure mode, mirroring the separation between the
// memory space paths write into and the one the reduction reads from.
func TransferPayoffs(dst, src []float32) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination buffer", ErrTransfer)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: destination holds %d payoffs, source holds %d", ErrTransfer, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}
