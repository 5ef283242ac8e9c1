// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateDoors checks the door probability and that an RNG is present when it is needed.
// The range test is written so that NaN fails it.
func validateDoors(method string, cfg builderConfig) error {
	if !(cfg.doorP >= MinProbability && cfg.doorP <= MaxProbability) {
		return fmt.Errorf("%s: probability must be in [%.1f,%.1f], got %f: %w",
			method, MinProbability, MaxProbability, cfg.doorP, ErrInvalidProbability)
	}
	if cfg.doorP < MaxProbability && cfg.rng == nil {
		return fmt.Errorf("%s: door probability %g: %w", method, cfg.doorP, ErrNeedRandSource)
	}

	return nil
}
