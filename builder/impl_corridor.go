// SPDX-License-Identifier: MIT
// Package: indoorjson/builder
//
// impl_corridor.go: implementation of Corridor(n), a single row of rooms.

package builder

import "github.com/katalvlaran/indoorjson/indoor"

// Corridor returns a Constructor that builds n rooms side by side, each with a door
// to the next. It is Grid(1, n) with its own method name in errors.
func Corridor(n int) Constructor {
	return func(g *indoor.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCorridor, n, MinCorridorRooms); err != nil {
			return err
		}

		return buildGrid(MethodCorridor, g, cfg, 1, n)
	}
}
