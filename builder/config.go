// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn        ("c1","c2",...)
//   • connIDFn   = DefaultConnIDFn    ("c1-c2")
//   • room size  = 1×1, origin (0,0)
//   • oneWay     = false              (every door emits both directions)
//   • doorP      = 1.0                (every adjacency gets a door)
//   • rng        = nil                (no randomness unless seeded)

package builder

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	connIDFn ConnIDFn

	// room footprint size and the lower-left corner of room (0,0)
	roomW, roomH float64
	origin       r2.Point

	// emit only the forward (right/down) direction of each door
	oneWay bool

	// probability that an adjacency receives a door; < 1 requires rng
	doorP float64
	rng   *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		connIDFn: DefaultConnIDFn,
		roomW:    DefaultRoomWidth,
		roomH:    DefaultRoomHeight,
		doorP:    MaxProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// door decides whether an adjacency receives a door. It consumes one draw per call
// when doorP < 1, so the outcome is deterministic for a fixed seed and call order.
func (c builderConfig) door() bool {
	if c.doorP >= MaxProbability {
		return true
	}

	return c.rng.Float64() < c.doorP
}
