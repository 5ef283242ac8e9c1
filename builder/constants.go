// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by floor-plan constructors.

package builder

// Method names used to prefix constructor errors.
const (
	MethodGrid     = "Grid"
	MethodCorridor = "Corridor"
	MethodFloor    = "Floor"
)

// Size minima.
const (
	MinGridDim       = 1
	MinCorridorRooms = 1
)

// Probability bounds for WithDoorProbability.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Geometry defaults.
const (
	DefaultRoomWidth  = 1.0
	DefaultRoomHeight = 1.0
)

// Property keys written on generated entities.
const (
	PropRow  = "row"
	PropCol  = "col"
	PropType = "type"

	// DoorType is the PropType value of generated connections.
	DoorType = "door"
)
