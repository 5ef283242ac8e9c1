// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the cell id generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithConnIDScheme sets the connection id generator. Panics on nil.
func WithConnIDScheme(fn ConnIDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithConnIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.connIDFn = fn
	}
}

// WithRoomSize sets the footprint of every generated room. Panics unless w, h > 0.
func WithRoomSize(w, h float64) BuilderOption {
	if w <= 0 || h <= 0 {
		panic("builder: WithRoomSize(w<=0 || h<=0)")
	}
	return func(c *builderConfig) {
		c.roomW, c.roomH = w, h
	}
}

// WithOrigin places the lower-left corner of room (0,0).
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.origin = r2.Point{X: x, Y: y}
	}
}

// WithOneWay emits only the forward direction (right, then down) of each door.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.oneWay = true
	}
}

// WithDoorProbability keeps each adjacency's door with probability p.
// Range and RNG presence are checked by the constructors.
func WithDoorProbability(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.doorP = p
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
