// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w via builderErrorf.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewRooms indicates a size parameter (rows, cols, n) below its minimum.
var ErrTooFewRooms = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a door probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a door probability below 1 without a seeded RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a rejected graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "<method>: <detail>" and wraps ErrTooFewRooms.
func builderErrorf(method string, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrTooFewRooms)
}
