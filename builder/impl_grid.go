// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// impl_grid.go: implementation of Grid(rows, cols).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewRooms).
//   • Cells are added in row-major order with ids cfg.idFn(base + r*cols + c), where
//     base is the graph's cell count before the call. Each cell carries "row"/"col".
//   • Room (r,c) occupies [c*w, (c+1)*w] × [r*h, (r+1)*h] shifted by the origin.
//   • For each (r,c) the right door is decided first, then the lower one. A door is a
//     connection through the shared wall, plus its reverse unless WithOneWay is set.
//
// Complexity:
//   • O(rows*cols) cells and at most 4*rows*cols connections.
//
// Determinism:
//   • Stable cell order (row-major) and door order (right before lower).
//   • Door sampling draws once per adjacency in that same order.

package builder

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/indoorjson/indoor"
)

// Grid returns a Constructor that builds a rows×cols block of rooms.
func Grid(rows, cols int) Constructor {
	return func(g *indoor.Graph, cfg builderConfig) error {
		return buildGrid(MethodGrid, g, cfg, rows, cols)
	}
}

func buildGrid(method string, g *indoor.Graph, cfg builderConfig, rows, cols int) error {
	// 1) Validate parameters before any mutation.
	if err := validateMin(method, rows, MinGridDim); err != nil {
		return err
	}
	if err := validateMin(method, cols, MinGridDim); err != nil {
		return err
	}
	if err := validateDoors(method, cfg); err != nil {
		return err
	}

	// 2) Place and add rooms in row-major order.
	base := g.CellCount()
	rooms := make([]room, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rm := placeRoom(cfg, cfg.idFn(base+r*cols+c), r, c)
			cell, err := rm.cell(indoor.Properties{PropRow: r, PropCol: c})
			if err != nil {
				return fmt.Errorf("%s: NewCell(%s): %w", method, rm.id, err)
			}
			if err = g.AddCell(cell); err != nil {
				return fmt.Errorf("%s: AddCell(%s): %w", method, rm.id, err)
			}
			rooms = append(rooms, rm)
		}
	}

	// 3) Doors: right neighbour through the shared vertical wall, then lower
	// neighbour through the shared horizontal wall.
	at := func(r, c int) room { return rooms[r*cols+c] }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := at(r, c)
			if c+1 < cols && cfg.door() {
				wallA := r2.Point{X: u.hi.X, Y: u.lo.Y}
				if err := addDoor(g, cfg, method, u, at(r, c+1), wallA, u.hi); err != nil {
					return err
				}
			}
			if r+1 < rows && cfg.door() {
				wallA := r2.Point{X: u.lo.X, Y: u.hi.Y}
				if err := addDoor(g, cfg, method, u, at(r+1, c), wallA, u.hi); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
