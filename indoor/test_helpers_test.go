// SPDX-License-Identifier: MIT
// Package indoor_test contains fixtures shared by the indoor tests.
//
// Purpose:
//   - Build the three-room fixture (c1, c2, c3 with conn1-2 and conn3-1) used throughout.
//   - Keep ids and WKT literals in constants so test bodies stay short.

package indoor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoorjson/geometry"
	"github.com/katalvlaran/indoorjson/indoor"
)

// Common ids used across indoor tests.
const (
	CellC1 = "c1"
	CellC2 = "c2"
	CellC3 = "c3"
	CellC9 = "c9"

	Conn12 = "conn1-2"
	Conn31 = "conn3-1"
)

// Common WKT literals.
const (
	SpaceC1 = "POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))"
	SpaceC2 = "POLYGON ((1 0, 2 0, 2 1, 1 1, 1 0))"
	SpaceC3 = "POLYGON ((0 1, 1 1, 1 2, 0 2, 0 1))"

	NodeC1 = "POINT (0.5 0.5)"
	NodeC2 = "POINT (1.5 0.5)"
	NodeC3 = "POINT (0.5 1.5)"

	BoundDoor = "LINESTRING (1 0, 1 1)"
	EdgeDoor  = "LINESTRING (0.5 0.5, 1.5 0.5)"
)

// mustCell builds a cell or fails the test.
func mustCell(t *testing.T, id, space, node string, props indoor.Properties) *indoor.Cell {
	t.Helper()
	c, err := indoor.NewCell(id, props, geometry.MustParse(space), geometry.MustParse(node))
	require.NoError(t, err)

	return c
}

// mustConn builds a connection with the shared door geometry or fails the test.
func mustConn(t *testing.T, id, from, to string, props indoor.Properties) *indoor.Connection {
	t.Helper()
	c, err := indoor.NewConnection(id, props, from, to, geometry.MustParse(BoundDoor), geometry.MustParse(EdgeDoor))
	require.NoError(t, err)

	return c
}

// newThreeRooms returns the reference graph:
// cells c1, c2, c3; connections conn1-2 (c1→c2) and conn3-1 (c3→c1); one layer with all cells.
func newThreeRooms(t *testing.T) *indoor.Graph {
	t.Helper()
	g := indoor.NewGraph()
	g.AddProperties(indoor.Properties{
		"name":     "indoorjson",
		"labels":   []any{"indoorgml", "GIS"},
		"language": []any{"English", "中文", "한국어"},
	})

	require.NoError(t, g.AddCell(mustCell(t, CellC1, SpaceC1, NodeC1, indoor.Properties{"roomNumber": "1101"})))
	require.NoError(t, g.AddCell(mustCell(t, CellC2, SpaceC2, NodeC2, indoor.Properties{"roomNumber": "1102"})))
	require.NoError(t, g.AddCell(mustCell(t, CellC3, SpaceC3, NodeC3, indoor.Properties{"roomNumber": "1103"})))

	require.NoError(t, g.AddConnection(mustConn(t, Conn12, CellC1, CellC2, indoor.Properties{"type": "door", "开放时间": "全天"})))
	require.NoError(t, g.AddConnection(mustConn(t, Conn31, CellC3, CellC1, indoor.Properties{"type": "window"})))

	g.AddLayer(indoor.Layer{ID: "layer", Cells: []string{CellC1, CellC2, CellC3}})

	return g
}
