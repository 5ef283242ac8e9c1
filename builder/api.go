// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Public factories are declared here and implemented in impl_*.go.
//   • Determinism: same options, seed and constructor order ⇒ identical graphs.
//   • Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/indoorjson/indoor"
)

// Constructor applies a deterministic mutation to g using the resolved builderConfig.
// Constructors continue cell numbering from g.CellCount(), so several of them can be
// composed on one graph without id clashes under the default scheme.
type Constructor func(g *indoor.Graph, cfg builderConfig) error

// BuildGraph creates an empty indoor.Graph, resolves the builder configuration from
// bopts and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: %w". Graph sentinels such as
//     indoor.ErrDuplicateID stay matchable with errors.Is.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*indoor.Graph, error) {
	g := indoor.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Grid builds rows×cols rectangular rooms with a door between every pair of
// orthogonal neighbours (rows ≥ 1, cols ≥ 1).
//
// Implemented in impl_grid.go.

// Corridor builds n rooms in a single row, each connected to the next (n ≥ 1).
//
// Implemented in impl_corridor.go.

// Floor wraps a constructor and records the cells it adds as a named Layer.
//
// Implemented in impl_floor.go.
