// SPDX-License-Identifier: MIT

package indoor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoorjson/indoor"
)

// TestSeedRLines_ThreeRooms verifies only cells with through routes are seeded.
func TestSeedRLines_ThreeRooms(t *testing.T) {
	t.Parallel()
	g := newThreeRooms(t)

	seeded, err := g.SeedRLines()
	require.NoError(t, err)
	require.Equal(t, []indoor.RLine{{
		ID:      "rlines1",
		Cell:    CellC1,
		Ins:     []string{Conn31},
		Outs:    []string{Conn12},
		Closure: []indoor.Pair{},
	}}, seeded)
	require.Equal(t, seeded, g.RLines())

	// seeding does not touch the hypergraph
	h, err := g.Hypergraph()
	require.NoError(t, err)
	require.Len(t, h.HyperEdges, 3)
}

// TestSeedRLines_SkipsUsedIDs verifies generated ids avoid existing ones.
func TestSeedRLines_SkipsUsedIDs(t *testing.T) {
	t.Parallel()
	g := newThreeRooms(t)
	require.NoError(t, g.AddConnection(mustConn(t, "conn1-3", CellC1, CellC3, nil)))
	g.AddRLine(indoor.RLine{ID: "rlines1", Cell: CellC9})

	seeded, err := g.SeedRLines()
	require.NoError(t, err)
	require.Len(t, seeded, 2)
	require.Equal(t, "rlines2", seeded[0].ID)
	require.Equal(t, CellC1, seeded[0].Cell)
	require.Equal(t, "rlines3", seeded[1].ID)
	require.Equal(t, CellC3, seeded[1].Cell)
	require.Len(t, g.RLines(), 3)
}

// TestSeedRLines_None verifies a graph without through routes seeds nothing.
func TestSeedRLines_None(t *testing.T) {
	t.Parallel()

	seeded, err := indoor.NewGraph().SeedRLines()
	require.NoError(t, err)
	require.Empty(t, seeded)
}

// TestCheckRLine pins the closure validation outcomes.
func TestCheckRLine(t *testing.T) {
	t.Parallel()
	g := newThreeRooms(t)

	tests := []struct {
		name string
		r    indoor.RLine
		want error
	}{
		{"valid", indoor.RLine{ID: "r", Cell: CellC1, Closure: []indoor.Pair{{In: Conn31, Out: Conn12}}}, nil},
		{"empty_closure", indoor.RLine{ID: "r", Cell: CellC2}, nil},
		{"unknown_cell", indoor.RLine{ID: "r", Cell: CellC9}, indoor.ErrRLineCell},
		{"reversed_pair", indoor.RLine{ID: "r", Cell: CellC1, Closure: []indoor.Pair{{In: Conn12, Out: Conn31}}}, indoor.ErrRLineClosure},
		{"foreign_connection", indoor.RLine{ID: "r", Cell: CellC2, Closure: []indoor.Pair{{In: Conn12, Out: Conn31}}}, indoor.ErrRLineClosure},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := g.CheckRLine(tc.r)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
